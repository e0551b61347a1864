package ports

import (
	"context"

	"rental/internal/core/domain/model/car"
	"rental/internal/core/domain/model/kernel"
)

// CarRepository defines the persistence contract for car aggregates.
type CarRepository interface {
	// Add persists a new car aggregate to storage.
	// Fails with an already-exists error when the licence plate is taken.
	Add(ctx context.Context, aggregate *car.Car) error

	// Update persists changes to an existing car aggregate.
	Update(ctx context.Context, aggregate *car.Car) error

	// Get retrieves a car aggregate by its unique identifier.
	// Returns a not-found error when no such car exists.
	Get(ctx context.Context, id kernel.UUID) (*car.Car, error)

	// GetAllByCategory retrieves the full fleet of a category, in any
	// status. Callers filter by status as their workflow requires.
	GetAllByCategory(ctx context.Context, category car.Category) ([]*car.Car, error)
}
