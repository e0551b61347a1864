package commands

import (
	"errors"

	"rental/internal/core/domain/model/kernel"
	"rental/internal/pkg/errs"
	"rental/internal/pkg/guard"
)

var ErrPickupCarCommandIsNotConstructed = errors.New(
	"PickupCarCommand must be created via NewPickupCarCommand constructor",
)

const (
	minFuelLevel = 0
	maxFuelLevel = 100
)

// PickupCarCommand represents a request to hand a car over against a
// confirmed reservation, recording the outgoing fuel and odometer
// readings.
type PickupCarCommand struct { //nolint:recvcheck //using for validation
	rentalID      kernel.UUID
	reservationID kernel.UUID
	fuelLevelOut  int
	kmOut         int

	guard guard.ConstructorGuard
}

// NewPickupCarCommand creates a command to fulfil a confirmed
// reservation. The rental identifier is supplied by the caller so that
// retried requests stay idempotent at the storage layer.
func NewPickupCarCommand(
	rentalID kernel.UUID,
	reservationID kernel.UUID,
	fuelLevelOut int,
	kmOut int,
) (PickupCarCommand, error) {
	command := PickupCarCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setRentalID(rentalID),
		command.setReservationID(reservationID),
		command.setFuelLevelOut(fuelLevelOut),
		command.setKmOut(kmOut),
	); err != nil {
		return PickupCarCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c PickupCarCommand) Validate() error {
	return c.guard.Validate(ErrPickupCarCommandIsNotConstructed)
}

// RentalID returns the identifier for the new rental.
func (c PickupCarCommand) RentalID() kernel.UUID {
	return c.rentalID
}

// ReservationID returns the reservation being fulfilled.
func (c PickupCarCommand) ReservationID() kernel.UUID {
	return c.reservationID
}

// FuelLevelOut returns the fuel percentage at hand-over.
func (c PickupCarCommand) FuelLevelOut() int {
	return c.fuelLevelOut
}

// KmOut returns the odometer reading at hand-over.
func (c PickupCarCommand) KmOut() int {
	return c.kmOut
}

func (c *PickupCarCommand) setRentalID(rentalID kernel.UUID) error {
	if err := rentalID.Validate(); err != nil {
		return err
	}

	c.rentalID = rentalID
	return nil
}

func (c *PickupCarCommand) setReservationID(reservationID kernel.UUID) error {
	if err := reservationID.Validate(); err != nil {
		return err
	}

	c.reservationID = reservationID
	return nil
}

func (c *PickupCarCommand) setFuelLevelOut(fuelLevelOut int) error {
	if fuelLevelOut < minFuelLevel || fuelLevelOut > maxFuelLevel {
		return errs.NewValueIsOutOfRangeError("fuelLevelOut", fuelLevelOut, minFuelLevel, maxFuelLevel)
	}

	c.fuelLevelOut = fuelLevelOut
	return nil
}

func (c *PickupCarCommand) setKmOut(kmOut int) error {
	if kmOut < 0 {
		return errs.NewValueIsOutOfRangeError("kmOut", kmOut, 0, "unbounded")
	}

	c.kmOut = kmOut
	return nil
}
