package commands

import (
	"errors"

	"rental/internal/core/domain/model/kernel"
	"rental/internal/pkg/guard"
)

var ErrConfirmReservationCommandIsNotConstructed = errors.New(
	"ConfirmReservationCommand must be created via NewConfirmReservationCommand constructor",
)

// ConfirmReservationCommand represents a request to confirm a draft
// reservation against category capacity.
type ConfirmReservationCommand struct { //nolint:recvcheck //using for validation
	reservationID kernel.UUID

	guard guard.ConstructorGuard
}

// NewConfirmReservationCommand creates a command to confirm a draft
// reservation.
func NewConfirmReservationCommand(reservationID kernel.UUID) (ConfirmReservationCommand, error) {
	command := ConfirmReservationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setReservationID(reservationID); err != nil {
		return ConfirmReservationCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmReservationCommand) Validate() error {
	return c.guard.Validate(ErrConfirmReservationCommandIsNotConstructed)
}

// ReservationID returns the reservation to confirm.
func (c ConfirmReservationCommand) ReservationID() kernel.UUID {
	return c.reservationID
}

func (c *ConfirmReservationCommand) setReservationID(reservationID kernel.UUID) error {
	if err := reservationID.Validate(); err != nil {
		return err
	}

	c.reservationID = reservationID
	return nil
}
