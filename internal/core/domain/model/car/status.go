package car

import (
	"errors"
	"fmt"

	"rental/internal/pkg/errs"
)

// ErrStatusIsTerminal is the cause attached to transition errors on a
// retired car. Retired is the end of a car's lifecycle.
var ErrStatusIsTerminal = errors.New("Retired is a terminal status")

// ErrCarNotAvailable is the cause attached to the MarkAsRented error
// when the car is not currently Available.
var ErrCarNotAvailable = errors.New("car is not available for rent")

// Status represents the operational state of a car.
// It implements a state machine with defined transitions:
//
//	Available ──┬──> Rented ──────────> Available
//	            └──> Maintenance ─────> Available
//	any non-Retired ──> Retired (terminal, idempotent)
//
// Status is a value object that validates transitions and provides
// string representations for persistence and display.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// Available is the initial status: the car is operational and can
	// be rented, sent to maintenance, or retired.
	Available

	// Rented indicates the car is currently bound to an active rental.
	Rented

	// Maintenance indicates the car is temporarily out of service.
	Maintenance

	// Retired indicates the car is permanently removed from the fleet.
	// This is a terminal state.
	Retired
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown: "Unknown",
		Available:     "Available",
		Rented:        "Rented",
		Maintenance:   "Maintenance",
		Retired:       "Retired",
	}
}

// Validate checks if the Status value is one of the defined states.
func (s Status) Validate() error {
	if s == StatusUnknown {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable status name, or "Unknown" for
// invalid values. Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// MarkAsRented transitions the status to Rented.
// Allowed only from Available; any other source status fails with the
// car-not-available cause.
func (s Status) MarkAsRented() (Status, error) {
	if s != Available {
		return 0, errs.NewInvalidStatusTransitionErrorWithCause(
			s.String(), Rented.String(), ErrCarNotAvailable)
	}

	return Rented, nil
}

// MarkAsAvailable transitions the status back to Available after a
// rental closes. Allowed only from Rented.
func (s Status) MarkAsAvailable() (Status, error) {
	if s == Retired {
		return 0, errs.NewInvalidStatusTransitionErrorWithCause(
			s.String(), Available.String(), ErrStatusIsTerminal)
	}
	if s != Rented {
		return 0, errs.NewInvalidStatusTransitionError(s.String(), Available.String())
	}

	return Available, nil
}

// SendToMaintenance transitions the status to Maintenance.
// Allowed only from Available.
func (s Status) SendToMaintenance() (Status, error) {
	if s == Retired {
		return 0, errs.NewInvalidStatusTransitionErrorWithCause(
			s.String(), Maintenance.String(), ErrStatusIsTerminal)
	}
	if s != Available {
		return 0, errs.NewInvalidStatusTransitionError(s.String(), Maintenance.String())
	}

	return Maintenance, nil
}

// ReturnFromMaintenance transitions the status back to Available.
// Allowed only from Maintenance.
func (s Status) ReturnFromMaintenance() (Status, error) {
	if s == Retired {
		return 0, errs.NewInvalidStatusTransitionErrorWithCause(
			s.String(), Available.String(), ErrStatusIsTerminal)
	}
	if s != Maintenance {
		return 0, errs.NewInvalidStatusTransitionError(s.String(), Available.String())
	}

	return Available, nil
}

// Retire transitions the status to Retired from any state.
// Retiring an already-Retired car succeeds with no change, so the
// operation is safe to repeat.
func (s Status) Retire() (Status, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}

	return Retired, nil
}
