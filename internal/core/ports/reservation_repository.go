package ports

import (
	"context"
	"time"

	"rental/internal/core/domain/model/car"
	"rental/internal/core/domain/model/kernel"
	"rental/internal/core/domain/model/reservation"
)

// ReservationRepository defines the persistence contract for
// reservation aggregates. Reservations are never deleted; terminal
// ones stay queryable for audit.
type ReservationRepository interface {
	// Add persists a new reservation aggregate to storage.
	Add(ctx context.Context, aggregate *reservation.Reservation) error

	// Update persists changes to an existing reservation aggregate.
	Update(ctx context.Context, aggregate *reservation.Reservation) error

	// Get retrieves a reservation aggregate by its unique identifier.
	// Returns a not-found error when no such reservation exists.
	Get(ctx context.Context, id kernel.UUID) (*reservation.Reservation, error)

	// GetAllByIDs retrieves the reservations with the given
	// identifiers. Missing identifiers are silently skipped.
	GetAllByIDs(ctx context.Context, ids []kernel.UUID) ([]*reservation.Reservation, error)

	// GetConfirmedByCategory retrieves all Confirmed reservations of a
	// category. Used by the capacity check.
	GetConfirmedByCategory(ctx context.Context, category car.Category) ([]*reservation.Reservation, error)

	// GetDraftsCreatedBefore retrieves Draft reservations created at or
	// before the cutoff. Used by the expiry batch.
	GetDraftsCreatedBefore(ctx context.Context, cutoff time.Time) ([]*reservation.Reservation, error)
}
