package commands

import (
	"errors"

	"rental/internal/core/domain/model/kernel"
	"rental/internal/pkg/guard"
)

var ErrSendCarToMaintenanceCommandIsNotConstructed = errors.New(
	"SendCarToMaintenanceCommand must be created via NewSendCarToMaintenanceCommand constructor",
)

// SendCarToMaintenanceCommand represents a request to take an
// available car out of the rentable pool for servicing.
type SendCarToMaintenanceCommand struct { //nolint:recvcheck //using for validation
	carID kernel.UUID

	guard guard.ConstructorGuard
}

// NewSendCarToMaintenanceCommand creates a command to send a car to
// maintenance.
func NewSendCarToMaintenanceCommand(carID kernel.UUID) (SendCarToMaintenanceCommand, error) {
	command := SendCarToMaintenanceCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setCarID(carID); err != nil {
		return SendCarToMaintenanceCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c SendCarToMaintenanceCommand) Validate() error {
	return c.guard.Validate(ErrSendCarToMaintenanceCommandIsNotConstructed)
}

// CarID returns the car to service.
func (c SendCarToMaintenanceCommand) CarID() kernel.UUID {
	return c.carID
}

func (c *SendCarToMaintenanceCommand) setCarID(carID kernel.UUID) error {
	if err := carID.Validate(); err != nil {
		return err
	}

	c.carID = carID
	return nil
}
