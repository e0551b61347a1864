package commands

import (
	"errors"

	"rental/internal/core/domain/model/kernel"
	"rental/internal/pkg/guard"
)

var ErrRetireCarCommandIsNotConstructed = errors.New(
	"RetireCarCommand must be created via NewRetireCarCommand constructor",
)

// RetireCarCommand represents a request to permanently remove a car
// from service.
type RetireCarCommand struct { //nolint:recvcheck //using for validation
	carID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRetireCarCommand creates a command to retire a car.
func NewRetireCarCommand(carID kernel.UUID) (RetireCarCommand, error) {
	command := RetireCarCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setCarID(carID); err != nil {
		return RetireCarCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c RetireCarCommand) Validate() error {
	return c.guard.Validate(ErrRetireCarCommandIsNotConstructed)
}

// CarID returns the car to retire.
func (c RetireCarCommand) CarID() kernel.UUID {
	return c.carID
}

func (c *RetireCarCommand) setCarID(carID kernel.UUID) error {
	if err := carID.Validate(); err != nil {
		return err
	}

	c.carID = carID
	return nil
}
