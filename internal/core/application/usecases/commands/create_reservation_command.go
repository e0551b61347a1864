package commands

import (
	"errors"
	"time"

	"rental/internal/core/domain/model/car"
	"rental/internal/core/domain/model/kernel"
	"rental/internal/pkg/errs"
	"rental/internal/pkg/guard"
)

var ErrCreateReservationCommandIsNotConstructed = errors.New(
	"CreateReservationCommand must be created via NewCreateReservationCommand constructor",
)

// CreateReservationCommand represents a request to open a draft
// reservation: a customer books a car category for a time window.
type CreateReservationCommand struct { //nolint:recvcheck //using for validation
	reservationID kernel.UUID
	customerID    kernel.UUID
	category      car.Category
	start         time.Time
	end           time.Time

	guard guard.ConstructorGuard
}

// NewCreateReservationCommand creates a command to open a draft
// reservation. Validates identifiers and the category; the window
// itself is validated by the handler, which also enforces the
// future-only booking policy.
func NewCreateReservationCommand(
	reservationID kernel.UUID,
	customerID kernel.UUID,
	category car.Category,
	start time.Time,
	end time.Time,
) (CreateReservationCommand, error) {
	command := CreateReservationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setReservationID(reservationID),
		command.setCustomerID(customerID),
		command.setCategory(category),
		command.setWindow(start, end),
	); err != nil {
		return CreateReservationCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateReservationCommand) Validate() error {
	return c.guard.Validate(ErrCreateReservationCommandIsNotConstructed)
}

// ReservationID returns the identifier for the new reservation.
func (c CreateReservationCommand) ReservationID() kernel.UUID {
	return c.reservationID
}

// CustomerID returns the booking customer's identifier.
func (c CreateReservationCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// Category returns the booked car category.
func (c CreateReservationCommand) Category() car.Category {
	return c.category
}

// Start returns the requested window start.
func (c CreateReservationCommand) Start() time.Time {
	return c.start
}

// End returns the requested window end (exclusive).
func (c CreateReservationCommand) End() time.Time {
	return c.end
}

func (c *CreateReservationCommand) setReservationID(reservationID kernel.UUID) error {
	if err := reservationID.Validate(); err != nil {
		return err
	}

	c.reservationID = reservationID
	return nil
}

func (c *CreateReservationCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *CreateReservationCommand) setCategory(category car.Category) error {
	if err := category.Validate(); err != nil {
		return err
	}

	c.category = category
	return nil
}

func (c *CreateReservationCommand) setWindow(start, end time.Time) error {
	if start.IsZero() {
		return errs.NewValueIsRequiredError("start")
	}
	if end.IsZero() {
		return errs.NewValueIsRequiredError("end")
	}

	c.start = start
	c.end = end
	return nil
}
