package commands

import (
	"errors"

	"rental/internal/core/domain/model/kernel"
	"rental/internal/pkg/guard"
)

var ErrCancelReservationCommandIsNotConstructed = errors.New(
	"CancelReservationCommand must be created via NewCancelReservationCommand constructor",
)

// CancelReservationCommand represents a request to withdraw a draft or
// confirmed reservation.
type CancelReservationCommand struct { //nolint:recvcheck //using for validation
	reservationID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCancelReservationCommand creates a command to cancel a reservation.
func NewCancelReservationCommand(reservationID kernel.UUID) (CancelReservationCommand, error) {
	command := CancelReservationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setReservationID(reservationID); err != nil {
		return CancelReservationCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelReservationCommand) Validate() error {
	return c.guard.Validate(ErrCancelReservationCommandIsNotConstructed)
}

// ReservationID returns the reservation to cancel.
func (c CancelReservationCommand) ReservationID() kernel.UUID {
	return c.reservationID
}

func (c *CancelReservationCommand) setReservationID(reservationID kernel.UUID) error {
	if err := reservationID.Validate(); err != nil {
		return err
	}

	c.reservationID = reservationID
	return nil
}
