package commands

import (
	"errors"

	"rental/internal/core/domain/model/car"
	"rental/internal/core/domain/model/kernel"
	"rental/internal/pkg/errs"
	"rental/internal/pkg/guard"
)

var ErrRegisterCarCommandIsNotConstructed = errors.New(
	"RegisterCarCommand must be created via NewRegisterCarCommand constructor",
)

// RegisterCarCommand represents a request to add a new car to the
// fleet. Registered cars start in the Available pool.
type RegisterCarCommand struct { //nolint:recvcheck //using for validation
	carID        kernel.UUID
	category     car.Category
	licensePlate string
	manufacturer string
	model        string

	guard guard.ConstructorGuard
}

// NewRegisterCarCommand creates a command to register a fleet car.
func NewRegisterCarCommand(
	carID kernel.UUID,
	category car.Category,
	licensePlate string,
	manufacturer string,
	model string,
) (RegisterCarCommand, error) {
	command := RegisterCarCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setCarID(carID),
		command.setCategory(category),
		command.setLicensePlate(licensePlate),
		command.setManufacturer(manufacturer),
		command.setModel(model),
	); err != nil {
		return RegisterCarCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterCarCommand) Validate() error {
	return c.guard.Validate(ErrRegisterCarCommandIsNotConstructed)
}

// CarID returns the identifier for the new car.
func (c RegisterCarCommand) CarID() kernel.UUID {
	return c.carID
}

// Category returns the car's rental category.
func (c RegisterCarCommand) Category() car.Category {
	return c.category
}

// LicensePlate returns the car's licence plate.
func (c RegisterCarCommand) LicensePlate() string {
	return c.licensePlate
}

// Manufacturer returns the car's manufacturer name.
func (c RegisterCarCommand) Manufacturer() string {
	return c.manufacturer
}

// Model returns the car's model name.
func (c RegisterCarCommand) Model() string {
	return c.model
}

func (c *RegisterCarCommand) setCarID(carID kernel.UUID) error {
	if err := carID.Validate(); err != nil {
		return err
	}

	c.carID = carID
	return nil
}

func (c *RegisterCarCommand) setCategory(category car.Category) error {
	if err := category.Validate(); err != nil {
		return err
	}

	c.category = category
	return nil
}

func (c *RegisterCarCommand) setLicensePlate(licensePlate string) error {
	if licensePlate == "" {
		return errs.NewValueIsRequiredError("licensePlate")
	}

	c.licensePlate = licensePlate
	return nil
}

func (c *RegisterCarCommand) setManufacturer(manufacturer string) error {
	if manufacturer == "" {
		return errs.NewValueIsRequiredError("manufacturer")
	}

	c.manufacturer = manufacturer
	return nil
}

func (c *RegisterCarCommand) setModel(model string) error {
	if model == "" {
		return errs.NewValueIsRequiredError("model")
	}

	c.model = model
	return nil
}
