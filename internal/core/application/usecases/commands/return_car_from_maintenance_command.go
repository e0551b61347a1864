package commands

import (
	"errors"

	"rental/internal/core/domain/model/kernel"
	"rental/internal/pkg/guard"
)

var ErrReturnCarFromMaintenanceCommandIsNotConstructed = errors.New(
	"ReturnCarFromMaintenanceCommand must be created via NewReturnCarFromMaintenanceCommand constructor",
)

// ReturnCarFromMaintenanceCommand represents a request to put a
// serviced car back into the rentable pool.
type ReturnCarFromMaintenanceCommand struct { //nolint:recvcheck //using for validation
	carID kernel.UUID

	guard guard.ConstructorGuard
}

// NewReturnCarFromMaintenanceCommand creates a command to bring a car
// back from maintenance.
func NewReturnCarFromMaintenanceCommand(carID kernel.UUID) (ReturnCarFromMaintenanceCommand, error) {
	command := ReturnCarFromMaintenanceCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setCarID(carID); err != nil {
		return ReturnCarFromMaintenanceCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c ReturnCarFromMaintenanceCommand) Validate() error {
	return c.guard.Validate(ErrReturnCarFromMaintenanceCommandIsNotConstructed)
}

// CarID returns the serviced car.
func (c ReturnCarFromMaintenanceCommand) CarID() kernel.UUID {
	return c.carID
}

func (c *ReturnCarFromMaintenanceCommand) setCarID(carID kernel.UUID) error {
	if err := carID.Validate(); err != nil {
		return err
	}

	c.carID = carID
	return nil
}
