// Package queries contains read-only operations over the booking
// book. Query handlers read straight from the database with raw SQL,
// bypassing the aggregates, as the read side of the CQRS split.
package queries

import (
	"errors"
	"time"

	"rental/internal/core/domain/model/kernel"
	"rental/internal/pkg/guard"
)

var ErrGetCustomerReservationsQueryIsNotConstructed = errors.New(
	"GetCustomerReservationsQuery must be created via NewGetCustomerReservationsQuery constructor",
)

// GetCustomerReservationsQuery retrieves a customer's reservations,
// newest first, across every lifecycle status.
type GetCustomerReservationsQuery struct {
	customerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCustomerReservationsQuery creates a query for one customer's
// booking history.
func NewGetCustomerReservationsQuery(customerID kernel.UUID) (GetCustomerReservationsQuery, error) {
	if err := customerID.Validate(); err != nil {
		return GetCustomerReservationsQuery{}, err
	}

	return GetCustomerReservationsQuery{
		customerID: customerID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCustomerReservationsQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerReservationsQueryIsNotConstructed)
}

// CustomerID returns the customer whose reservations are requested.
func (q GetCustomerReservationsQuery) CustomerID() kernel.UUID {
	return q.customerID
}

// GetCustomerReservationsQueryResponse represents one reservation row
// of a customer's booking history.
type GetCustomerReservationsQueryResponse struct {
	ID          kernel.UUID
	Category    string
	Status      string
	PeriodStart time.Time
	PeriodEnd   time.Time
	CreatedAt   time.Time
}
