package person

import (
	"errors"
	"fmt"

	"rental/internal/core/domain/model/kernel"
	"rental/internal/pkg/errs"
	"rental/internal/pkg/guard"
)

// ErrEmployeeIsNotConstructed is returned when an Employee was not
// created through NewEmployee.
var ErrEmployeeIsNotConstructed = errors.New(
	"Employee must be created via NewEmployee constructor")

// Role names an employee's job within the rental operation.
type Role int

const (
	RoleUnknown Role = iota

	// RentalAgent handles bookings, pick-ups, and returns.
	RentalAgent

	// FleetManager manages fleet composition and maintenance.
	FleetManager
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown:  "Unknown",
		RentalAgent:  "RentalAgent",
		FleetManager: "FleetManager",
	}
}

// RoleFromString parses a role name.
func RoleFromString(s string) (Role, error) {
	for role, str := range getRoleStrings() {
		if role != RoleUnknown && str == s {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role",
		fmt.Errorf("%q is not a valid role", s))
}

// Validate checks if the Role value is one of the defined roles.
func (r Role) Validate() error {
	if r == RoleUnknown {
		return errs.NewValueIsInvalidErrorWithCause("role",
			fmt.Errorf("%d is not a valid role", r))
	}
	if _, ok := getRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role",
			fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the role name, or "Unknown" for invalid values.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "Unknown"
}

// Employee is a member of staff operating the rental business.
// Employees share contact validation with customers but are otherwise
// an independent record type.
type Employee struct {
	id        kernel.UUID
	firstName string
	lastName  string
	email     string
	phone     string
	role      Role

	guard guard.ConstructorGuard
}

// NewEmployee creates an employee record with validated contact
// details and role.
func NewEmployee(
	id kernel.UUID,
	firstName, lastName, email, phone string,
	role Role,
) (*Employee, error) {
	e := &Employee{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		e.setID(id),
		e.setContact(firstName, lastName, email, phone),
		e.setRole(role),
	); err != nil {
		return nil, err
	}

	return e, nil
}

// Validate ensures the Employee was created through a factory
// function.
func (e *Employee) Validate() error {
	if e == nil {
		return ErrEmployeeIsNotConstructed
	}
	return e.guard.Validate(ErrEmployeeIsNotConstructed)
}

// ID returns the employee's unique identifier.
func (e *Employee) ID() kernel.UUID {
	return e.id
}

// FirstName returns the employee's first name.
func (e *Employee) FirstName() string {
	return e.firstName
}

// LastName returns the employee's last name.
func (e *Employee) LastName() string {
	return e.lastName
}

// FullName returns the employee's display name.
func (e *Employee) FullName() string {
	return fmt.Sprintf("%s %s", e.firstName, e.lastName)
}

// Email returns the employee's email address.
func (e *Employee) Email() string {
	return e.email
}

// Phone returns the employee's phone number, empty when not provided.
func (e *Employee) Phone() string {
	return e.phone
}

// Role returns the employee's job role.
func (e *Employee) Role() Role {
	return e.role
}

func (e *Employee) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	e.id = id
	return nil
}

func (e *Employee) setContact(firstName, lastName, email, phone string) error {
	details := contactDetails{
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		Phone:     phone,
	}
	if err := details.validate("employee"); err != nil {
		return err
	}

	e.firstName = firstName
	e.lastName = lastName
	e.email = email
	e.phone = phone
	return nil
}

func (e *Employee) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	e.role = role
	return nil
}
