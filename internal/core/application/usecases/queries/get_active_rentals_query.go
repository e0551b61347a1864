package queries

import (
	"errors"
	"time"

	"rental/internal/core/domain/model/kernel"
	"rental/internal/pkg/guard"
)

var ErrGetActiveRentalsQueryIsNotConstructed = errors.New(
	"GetActiveRentalsQuery must be created via NewGetActiveRentalsQuery constructor",
)

// GetActiveRentalsQuery retrieves all rentals whose car is currently
// out with a customer. Used by operators to see the fleet on the road.
type GetActiveRentalsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetActiveRentalsQuery creates a query to retrieve active rentals.
// This is a parameterless query.
func NewGetActiveRentalsQuery() GetActiveRentalsQuery {
	return GetActiveRentalsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetActiveRentalsQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveRentalsQueryIsNotConstructed)
}

// GetActiveRentalsQueryResponse represents one active rental with the
// hand-over readings.
type GetActiveRentalsQueryResponse struct {
	ID            kernel.UUID
	ReservationID kernel.UUID
	CustomerID    kernel.UUID
	CarID         kernel.UUID
	PickupAt      time.Time
	FuelLevelOut  int
	KmOut         int
}
