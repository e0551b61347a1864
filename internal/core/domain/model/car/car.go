package car

import (
	"errors"
	"fmt"
	"regexp"

	"rental/internal/core/domain/model/kernel"
	"rental/internal/pkg/errs"
	"rental/internal/pkg/guard"
)

// ErrCarIsNotConstructed is returned when a Car instance was not
// created through the NewCar or RestoreCar factory functions.
var ErrCarIsNotConstructed = errors.New("Car must be created via NewCar constructor")

// licensePlateFormat accepts uppercase alphanumeric plates with
// optional dash or space separators, 2 to 12 characters.
var licensePlateFormat = regexp.MustCompile(`^[A-Z0-9][A-Z0-9 -]{0,10}[A-Z0-9]$`)

// Car represents a vehicle of the rental fleet. It is an aggregate
// root whose only mutable state is the operational status; the
// descriptive fields are fixed at registration.
//
// Invariants:
//   - Valid unique identifier, category, and license-plate format
//   - Manufacturer and model are non-empty
//   - Status changes only through the named transition operations
//   - Retired is terminal; a retired car never re-enters the fleet
type Car struct {
	// id uniquely identifies the car
	id kernel.UUID

	// category is the rental category used for capacity accounting
	category Category

	// status is the current operational state
	status Status

	// licensePlate is the registration plate, unique across the fleet
	licensePlate string

	// manufacturer and model describe the vehicle
	manufacturer string
	model        string

	// guard ensures the car was created via a constructor
	guard guard.ConstructorGuard
}

// NewCar registers a new car in the fleet. The car starts Available.
//
// All fields are validated: the id must be a constructed UUID, the
// category one of the defined values, the license plate must match the
// plate format, and manufacturer/model must be non-empty.
func NewCar(
	id kernel.UUID,
	category Category,
	licensePlate string,
	manufacturer string,
	model string,
) (*Car, error) {
	c := &Car{
		status: Available,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setID(id),
		c.setCategory(category),
		c.setLicensePlate(licensePlate),
		c.setManufacturer(manufacturer),
		c.setModel(model),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreCar reconstructs a Car aggregate from persistent storage,
// preserving its persisted status. The restored car behaves identically
// to one created through normal domain operations.
func RestoreCar(
	id kernel.UUID,
	category Category,
	status Status,
	licensePlate string,
	manufacturer string,
	model string,
) (*Car, error) {
	c := &Car{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setID(id),
		c.setCategory(category),
		c.setStatus(status),
		c.setLicensePlate(licensePlate),
		c.setManufacturer(manufacturer),
		c.setModel(model),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// Validate ensures the Car was created through a factory function.
func (c *Car) Validate() error {
	if c == nil {
		return ErrCarIsNotConstructed
	}
	return c.guard.Validate(ErrCarIsNotConstructed)
}

// IsEqual compares two cars by their unique identifiers.
func (c *Car) IsEqual(other *Car) bool {
	return other != nil && c.id.IsEqual(other.id)
}

// ID returns the car's unique identifier.
func (c *Car) ID() kernel.UUID {
	return c.id
}

// Category returns the rental category.
func (c *Car) Category() Category {
	return c.category
}

// Status returns the current operational status.
func (c *Car) Status() Status {
	return c.status
}

// LicensePlate returns the registration plate.
func (c *Car) LicensePlate() string {
	return c.licensePlate
}

// Manufacturer returns the vehicle manufacturer.
func (c *Car) Manufacturer() string {
	return c.manufacturer
}

// Model returns the vehicle model.
func (c *Car) Model() string {
	return c.model
}

// IsOperational reports whether the car counts toward category
// capacity: it must not be retired and must currently be Available.
func (c *Car) IsOperational() bool {
	return c.status == Available
}

// MarkAsRented flips the car to Rented at pick-up.
// Fails with a car-not-available cause unless the car is Available.
func (c *Car) MarkAsRented() error {
	newStatus, err := c.status.MarkAsRented()
	if err != nil {
		return err
	}

	c.status = newStatus
	return nil
}

// MarkAsAvailable flips the car back to Available at return.
func (c *Car) MarkAsAvailable() error {
	newStatus, err := c.status.MarkAsAvailable()
	if err != nil {
		return err
	}

	c.status = newStatus
	return nil
}

// SendToMaintenance takes an Available car out of service.
func (c *Car) SendToMaintenance() error {
	newStatus, err := c.status.SendToMaintenance()
	if err != nil {
		return err
	}

	c.status = newStatus
	return nil
}

// ReturnFromMaintenance puts a Maintenance car back in service.
func (c *Car) ReturnFromMaintenance() error {
	newStatus, err := c.status.ReturnFromMaintenance()
	if err != nil {
		return err
	}

	c.status = newStatus
	return nil
}

// Retire permanently removes the car from the fleet. Retiring an
// already-retired car succeeds with no change.
func (c *Car) Retire() error {
	newStatus, err := c.status.Retire()
	if err != nil {
		return err
	}

	c.status = newStatus
	return nil
}

func (c *Car) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Car) setCategory(category Category) error {
	if err := category.Validate(); err != nil {
		return err
	}
	c.category = category
	return nil
}

func (c *Car) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	c.status = status
	return nil
}

func (c *Car) setLicensePlate(licensePlate string) error {
	if licensePlate == "" {
		return errs.NewValueIsRequiredError("licensePlate")
	}
	if !licensePlateFormat.MatchString(licensePlate) {
		return errs.NewValueIsInvalidErrorWithCause("licensePlate",
			fmt.Errorf("%q does not match the plate format", licensePlate))
	}
	c.licensePlate = licensePlate
	return nil
}

func (c *Car) setManufacturer(manufacturer string) error {
	if manufacturer == "" {
		return errs.NewValueIsRequiredError("manufacturer")
	}
	c.manufacturer = manufacturer
	return nil
}

func (c *Car) setModel(model string) error {
	if model == "" {
		return errs.NewValueIsRequiredError("model")
	}
	c.model = model
	return nil
}
