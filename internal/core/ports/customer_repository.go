package ports

import (
	"context"

	"rental/internal/core/domain/model/kernel"
	"rental/internal/core/domain/model/person"
)

// CustomerRepository defines the persistence contract for customer
// records.
type CustomerRepository interface {
	// Add persists a new customer record to storage.
	// Fails with an already-exists error when the email is taken.
	Add(ctx context.Context, aggregate *person.Customer) error

	// Get retrieves a customer record by its unique identifier.
	// Returns a not-found error when no such customer exists.
	Get(ctx context.Context, id kernel.UUID) (*person.Customer, error)
}
