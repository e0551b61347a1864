package commands

import (
	"errors"

	"rental/internal/core/domain/model/kernel"
	"rental/internal/pkg/errs"
	"rental/internal/pkg/guard"
)

var ErrRegisterCustomerCommandIsNotConstructed = errors.New(
	"RegisterCustomerCommand must be created via NewRegisterCustomerCommand constructor",
)

// RegisterCustomerCommand represents a request to register a new
// customer. Contact details are validated by the domain; the command
// only requires the raw fields to be present.
type RegisterCustomerCommand struct { //nolint:recvcheck //using for validation
	customerID    kernel.UUID
	firstName     string
	lastName      string
	email         string
	phone         string
	licenceNumber string

	guard guard.ConstructorGuard
}

// NewRegisterCustomerCommand creates a command to register a customer.
func NewRegisterCustomerCommand(
	customerID kernel.UUID,
	firstName, lastName, email, phone, licenceNumber string,
) (RegisterCustomerCommand, error) {
	command := RegisterCustomerCommand{
		phone: phone,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setCustomerID(customerID),
		command.setFirstName(firstName),
		command.setLastName(lastName),
		command.setEmail(email),
		command.setLicenceNumber(licenceNumber),
	); err != nil {
		return RegisterCustomerCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterCustomerCommand) Validate() error {
	return c.guard.Validate(ErrRegisterCustomerCommandIsNotConstructed)
}

// CustomerID returns the identifier for the new customer.
func (c RegisterCustomerCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// FirstName returns the customer's first name.
func (c RegisterCustomerCommand) FirstName() string {
	return c.firstName
}

// LastName returns the customer's last name.
func (c RegisterCustomerCommand) LastName() string {
	return c.lastName
}

// Email returns the customer's email address.
func (c RegisterCustomerCommand) Email() string {
	return c.email
}

// Phone returns the customer's phone number, empty when not provided.
func (c RegisterCustomerCommand) Phone() string {
	return c.phone
}

// LicenceNumber returns the customer's driving licence number.
func (c RegisterCustomerCommand) LicenceNumber() string {
	return c.licenceNumber
}

func (c *RegisterCustomerCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *RegisterCustomerCommand) setFirstName(firstName string) error {
	if firstName == "" {
		return errs.NewValueIsRequiredError("firstName")
	}

	c.firstName = firstName
	return nil
}

func (c *RegisterCustomerCommand) setLastName(lastName string) error {
	if lastName == "" {
		return errs.NewValueIsRequiredError("lastName")
	}

	c.lastName = lastName
	return nil
}

func (c *RegisterCustomerCommand) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}

	c.email = email
	return nil
}

func (c *RegisterCustomerCommand) setLicenceNumber(licenceNumber string) error {
	if licenceNumber == "" {
		return errs.NewValueIsRequiredError("licenceNumber")
	}

	c.licenceNumber = licenceNumber
	return nil
}
