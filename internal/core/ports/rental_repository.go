package ports

import (
	"context"

	"rental/internal/core/domain/model/kernel"
	"rental/internal/core/domain/model/rental"
)

// RentalRepository defines the persistence contract for rental
// aggregates. Storage enforces at most one rental per reservation, so
// a second Add for the same reservation fails with an already-exists
// error whichever transaction commits last.
type RentalRepository interface {
	// Add persists a new rental aggregate to storage.
	Add(ctx context.Context, aggregate *rental.Rental) error

	// Update persists changes to an existing rental aggregate.
	Update(ctx context.Context, aggregate *rental.Rental) error

	// Get retrieves a rental aggregate by its unique identifier.
	// Returns a not-found error when no such rental exists.
	Get(ctx context.Context, id kernel.UUID) (*rental.Rental, error)

	// GetAllActive retrieves all rentals whose car is still out.
	GetAllActive(ctx context.Context) ([]*rental.Rental, error)
}
