package kernel

import (
	"errors"
	"fmt"
	"time"

	"rental/internal/pkg/errs"
	"rental/internal/pkg/guard"
)

// ErrPeriodIsNotConstructed is returned when attempting to use an
// improperly initialized Period. Periods must be created via NewPeriod.
var ErrPeriodIsNotConstructed = errs.NewValueIsRequiredError(
	"period must be created via NewPeriod constructor")

// Period is a half-open time interval [Start, End) representing a
// booking window. It is an immutable value object: a reservation's
// window is never mutated in place, it is replaced wholesale by a new
// Period.
//
// The half-open convention means two back-to-back windows
// [10:00, 12:00) and [12:00, 14:00) do not overlap.
//
// Example:
//
//	p, err := kernel.NewPeriod(pickup, dropoff)
//	if err != nil {
//	    // start was not strictly before end
//	}
type Period struct { //nolint:recvcheck //using for validation
	start time.Time
	end   time.Time
	guard guard.ConstructorGuard
}

// NewPeriod creates a Period from its bounds. The start must be
// strictly before the end; equal bounds would denote an empty window
// and are rejected.
func NewPeriod(start time.Time, end time.Time) (Period, error) {
	p := Period{
		guard: guard.NewConstructorGuard(),
	}

	if err := p.setBounds(start, end); err != nil {
		return Period{}, err
	}

	return p, nil
}

// Validate checks that the Period was created via NewPeriod.
func (p Period) Validate() error {
	return p.guard.Validate(ErrPeriodIsNotConstructed)
}

// Start returns the inclusive lower bound of the window.
func (p Period) Start() time.Time {
	return p.start
}

// End returns the exclusive upper bound of the window.
func (p Period) End() time.Time {
	return p.end
}

// Duration returns the length of the window.
func (p Period) Duration() time.Duration {
	return p.end.Sub(p.start)
}

// String returns a human-readable representation of the window,
// useful for logging.
func (p Period) String() string {
	return fmt.Sprintf("Period[%s, %s)", p.start.Format(time.RFC3339), p.end.Format(time.RFC3339))
}

// IsEqual compares two periods by their bounds. Periods are pure
// values: equal bounds make interchangeable periods.
func (p Period) IsEqual(other Period) (bool, error) {
	if err := errors.Join(p.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return p.start.Equal(other.start) && p.end.Equal(other.end), nil
}

// Overlaps reports whether two half-open windows intersect:
// [a,b) overlaps [c,d) iff a < d and c < b. The relation is symmetric.
func (p Period) Overlaps(other Period) (bool, error) {
	if err := errors.Join(p.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return p.start.Before(other.end) && other.start.Before(p.end), nil
}

// StartsAfter reports whether the window begins strictly after t.
// Callers use it for the future-only booking policy.
func (p Period) StartsAfter(t time.Time) bool {
	return p.start.After(t)
}

// setBounds sets both bounds with validation.
// Note: pointer receiver on a private setter to keep validation
// self-encapsulated during construction, as elsewhere in the model.
func (p *Period) setBounds(start time.Time, end time.Time) error {
	if !start.Before(end) {
		return errs.NewValueIsInvalidErrorWithCause("period",
			fmt.Errorf("start %s is not before end %s", start.Format(time.RFC3339), end.Format(time.RFC3339)))
	}

	p.start = start
	p.end = end
	return nil
}
