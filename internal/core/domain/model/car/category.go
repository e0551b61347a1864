package car

import (
	"fmt"

	"rental/internal/pkg/errs"
)

// Category is the rental category of a car. Reservations book a
// category, not a concrete car; the category's operational fleet size
// is the capacity bound for overlapping confirmed reservations.
type Category int

const (
	// CategoryUnknown represents an invalid or undefined category.
	CategoryUnknown Category = iota

	// Economy is the smallest, cheapest category.
	Economy

	// Compact covers small city cars.
	Compact

	// Midsize covers standard sedans.
	Midsize

	// Suv covers sport-utility vehicles.
	Suv
)

func getCategoryStrings() map[Category]string {
	return map[Category]string{
		CategoryUnknown: "Unknown",
		Economy:         "Economy",
		Compact:         "Compact",
		Midsize:         "Midsize",
		Suv:             "Suv",
	}
}

// CategoryFromString parses a category name as supplied by external
// callers. The comparison is exact; unknown names fail with an
// invalid-value error.
func CategoryFromString(s string) (Category, error) {
	for category, name := range getCategoryStrings() {
		if category != CategoryUnknown && name == s {
			return category, nil
		}
	}
	return CategoryUnknown, errs.NewValueIsInvalidErrorWithCause("category",
		fmt.Errorf("%q is not a valid category", s))
}

// Validate checks that the Category is one of the defined values.
func (c Category) Validate() error {
	if c == CategoryUnknown {
		return errs.NewValueIsInvalidErrorWithCause("category",
			fmt.Errorf("%d is not a valid category", c))
	}
	if _, ok := getCategoryStrings()[c]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("category",
			fmt.Errorf("%d is not a valid category", c))
	}
	return nil
}

// String returns the human-readable category name, or "Unknown" for
// invalid values. Implements fmt.Stringer.
func (c Category) String() string {
	if str, ok := getCategoryStrings()[c]; ok {
		return str
	}
	return "Unknown"
}
