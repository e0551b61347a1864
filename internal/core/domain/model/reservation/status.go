package reservation

import (
	"fmt"

	"rental/internal/pkg/errs"
)

// Status represents the lifecycle state of a reservation.
// It implements a state machine with defined transitions to ensure
// bookings follow the correct business workflow.
//
// State transitions:
//
//	Draft ──┬──> Confirmed ──> Cancelled
//	        ├──> Cancelled
//	        └──> Expired
//
// Cancelled and Expired are final states with no further transitions.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// Draft is the initial status: the booking intent exists but has
	// not been confirmed against category capacity.
	Draft

	// Confirmed indicates the reservation holds a capacity slot for
	// its window and can be fulfilled at pick-up.
	Confirmed

	// Cancelled indicates the customer or an operator withdrew the
	// reservation. Terminal.
	Cancelled

	// Expired indicates the draft was never confirmed and aged out.
	// Terminal.
	Expired
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown: "Unknown",
		Draft:         "Draft",
		Confirmed:     "Confirmed",
		Cancelled:     "Cancelled",
		Expired:       "Expired",
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

// ValidateChangePeriod checks that the booking window may still be
// replaced. Only drafts are re-plannable.
func (s Status) ValidateChangePeriod() error {
	if s != Draft {
		return errs.NewInvalidStatusTransitionError(s.String(), Draft.String())
	}
	return nil
}

// Confirm transitions the status to Confirmed. Allowed only from Draft;
// in particular, confirming twice fails.
func (s Status) Confirm() (Status, error) {
	if s != Draft {
		return 0, errs.NewInvalidStatusTransitionError(s.String(), Confirmed.String())
	}

	return Confirmed, nil
}

// Cancel transitions the status to Cancelled.
// Allowed from Draft and Confirmed.
func (s Status) Cancel() (Status, error) {
	if s != Draft && s != Confirmed {
		return 0, errs.NewInvalidStatusTransitionError(s.String(), Cancelled.String())
	}

	return Cancelled, nil
}

// Expire transitions the status to Expired. Allowed only from Draft:
// confirmed reservations never age out.
func (s Status) Expire() (Status, error) {
	if s != Draft {
		return 0, errs.NewInvalidStatusTransitionError(s.String(), Expired.String())
	}

	return Expired, nil
}
