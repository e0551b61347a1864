package rental

import (
	"fmt"

	"rental/internal/pkg/errs"
)

// Status represents the lifecycle state of a rental.
//
// State transitions:
//
//	Active ──> Returned
//
// Returned is a final state with no further transitions.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// Active indicates the car is with the customer.
	Active

	// Returned indicates the car came back and the closing readings
	// were recorded. Terminal.
	Returned
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown: "Unknown",
		Active:        "Active",
		Returned:      "Returned",
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

// Return transitions the status to Returned. Allowed only from Active;
// returning a rental twice fails.
func (s Status) Return() (Status, error) {
	if s != Active {
		return 0, errs.NewInvalidStatusTransitionError(s.String(), Returned.String())
	}

	return Returned, nil
}
