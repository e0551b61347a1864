package person

import (
	"errors"
	"fmt"

	"rental/internal/core/domain/model/kernel"
	"rental/internal/pkg/errs"
	"rental/internal/pkg/guard"
)

// ErrCustomerIsNotConstructed is returned when a Customer was not
// created through NewCustomer or RestoreCustomer.
var ErrCustomerIsNotConstructed = errors.New(
	"Customer must be created via NewCustomer constructor")

// Customer is a person who books and rents cars. The driving licence
// number is required: a customer without one cannot pick up a car.
type Customer struct {
	id            kernel.UUID
	firstName     string
	lastName      string
	email         string
	phone         string
	licenceNumber string

	guard guard.ConstructorGuard
}

// NewCustomer creates a customer record with validated contact details.
func NewCustomer(
	id kernel.UUID,
	firstName, lastName, email, phone, licenceNumber string,
) (*Customer, error) {
	c := &Customer{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setID(id),
		c.setContact(firstName, lastName, email, phone),
		c.setLicenceNumber(licenceNumber),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreCustomer reconstructs a Customer record from persistent
// storage.
func RestoreCustomer(
	id kernel.UUID,
	firstName, lastName, email, phone, licenceNumber string,
) (*Customer, error) {
	return NewCustomer(id, firstName, lastName, email, phone, licenceNumber)
}

// Validate ensures the Customer was created through a factory function.
func (c *Customer) Validate() error {
	if c == nil {
		return ErrCustomerIsNotConstructed
	}
	return c.guard.Validate(ErrCustomerIsNotConstructed)
}

// IsEqual compares two customers by their unique identifiers.
func (c *Customer) IsEqual(other *Customer) bool {
	return other != nil && c.id.IsEqual(other.id)
}

// ID returns the customer's unique identifier.
func (c *Customer) ID() kernel.UUID {
	return c.id
}

// FirstName returns the customer's first name.
func (c *Customer) FirstName() string {
	return c.firstName
}

// LastName returns the customer's last name.
func (c *Customer) LastName() string {
	return c.lastName
}

// FullName returns the customer's display name.
func (c *Customer) FullName() string {
	return fmt.Sprintf("%s %s", c.firstName, c.lastName)
}

// Email returns the customer's email address. Unique per customer.
func (c *Customer) Email() string {
	return c.email
}

// Phone returns the customer's phone number, empty when not provided.
func (c *Customer) Phone() string {
	return c.phone
}

// LicenceNumber returns the customer's driving licence number.
func (c *Customer) LicenceNumber() string {
	return c.licenceNumber
}

// UpdateContact replaces the customer's contact details wholesale.
func (c *Customer) UpdateContact(firstName, lastName, email, phone string) error {
	return c.setContact(firstName, lastName, email, phone)
}

func (c *Customer) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Customer) setContact(firstName, lastName, email, phone string) error {
	details := contactDetails{
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		Phone:     phone,
	}
	if err := details.validate("customer"); err != nil {
		return err
	}

	c.firstName = firstName
	c.lastName = lastName
	c.email = email
	c.phone = phone
	return nil
}

func (c *Customer) setLicenceNumber(licenceNumber string) error {
	if licenceNumber == "" {
		return errs.NewValueIsRequiredError("licenceNumber")
	}
	c.licenceNumber = licenceNumber
	return nil
}
