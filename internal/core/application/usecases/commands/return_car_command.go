package commands

import (
	"errors"

	"rental/internal/core/domain/model/kernel"
	"rental/internal/pkg/errs"
	"rental/internal/pkg/guard"
)

var ErrReturnCarCommandIsNotConstructed = errors.New(
	"ReturnCarCommand must be created via NewReturnCarCommand constructor",
)

// ReturnCarCommand represents a request to close an active rental with
// the incoming fuel and odometer readings.
type ReturnCarCommand struct { //nolint:recvcheck //using for validation
	rentalID    kernel.UUID
	fuelLevelIn int
	kmIn        int

	guard guard.ConstructorGuard
}

// NewReturnCarCommand creates a command to close an active rental.
func NewReturnCarCommand(rentalID kernel.UUID, fuelLevelIn, kmIn int) (ReturnCarCommand, error) {
	command := ReturnCarCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setRentalID(rentalID),
		command.setFuelLevelIn(fuelLevelIn),
		command.setKmIn(kmIn),
	); err != nil {
		return ReturnCarCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c ReturnCarCommand) Validate() error {
	return c.guard.Validate(ErrReturnCarCommandIsNotConstructed)
}

// RentalID returns the rental to close.
func (c ReturnCarCommand) RentalID() kernel.UUID {
	return c.rentalID
}

// FuelLevelIn returns the fuel percentage at return.
func (c ReturnCarCommand) FuelLevelIn() int {
	return c.fuelLevelIn
}

// KmIn returns the odometer reading at return.
func (c ReturnCarCommand) KmIn() int {
	return c.kmIn
}

func (c *ReturnCarCommand) setRentalID(rentalID kernel.UUID) error {
	if err := rentalID.Validate(); err != nil {
		return err
	}

	c.rentalID = rentalID
	return nil
}

func (c *ReturnCarCommand) setFuelLevelIn(fuelLevelIn int) error {
	if fuelLevelIn < minFuelLevel || fuelLevelIn > maxFuelLevel {
		return errs.NewValueIsOutOfRangeError("fuelLevelIn", fuelLevelIn, minFuelLevel, maxFuelLevel)
	}

	c.fuelLevelIn = fuelLevelIn
	return nil
}

func (c *ReturnCarCommand) setKmIn(kmIn int) error {
	if kmIn < 0 {
		return errs.NewValueIsOutOfRangeError("kmIn", kmIn, 0, "unbounded")
	}

	c.kmIn = kmIn
	return nil
}
