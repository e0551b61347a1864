package commands

import (
	"errors"
	"time"

	"rental/internal/core/domain/model/kernel"
	"rental/internal/pkg/errs"
	"rental/internal/pkg/guard"
)

var ErrChangeReservationPeriodCommandIsNotConstructed = errors.New(
	"ChangeReservationPeriodCommand must be created via NewChangeReservationPeriodCommand constructor",
)

// ChangeReservationPeriodCommand represents a request to re-plan a
// draft reservation onto a new booking window.
type ChangeReservationPeriodCommand struct { //nolint:recvcheck //using for validation
	reservationID kernel.UUID
	start         time.Time
	end           time.Time

	guard guard.ConstructorGuard
}

// NewChangeReservationPeriodCommand creates a command to replace a
// draft reservation's booking window.
func NewChangeReservationPeriodCommand(
	reservationID kernel.UUID, start, end time.Time,
) (ChangeReservationPeriodCommand, error) {
	command := ChangeReservationPeriodCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setReservationID(reservationID),
		command.setWindow(start, end),
	); err != nil {
		return ChangeReservationPeriodCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeReservationPeriodCommand) Validate() error {
	return c.guard.Validate(ErrChangeReservationPeriodCommandIsNotConstructed)
}

// ReservationID returns the reservation to re-plan.
func (c ChangeReservationPeriodCommand) ReservationID() kernel.UUID {
	return c.reservationID
}

// Start returns the new window start.
func (c ChangeReservationPeriodCommand) Start() time.Time {
	return c.start
}

// End returns the new window end (exclusive).
func (c ChangeReservationPeriodCommand) End() time.Time {
	return c.end
}

func (c *ChangeReservationPeriodCommand) setReservationID(reservationID kernel.UUID) error {
	if err := reservationID.Validate(); err != nil {
		return err
	}

	c.reservationID = reservationID
	return nil
}

func (c *ChangeReservationPeriodCommand) setWindow(start, end time.Time) error {
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
