package person

import (
	"github.com/go-playground/validator/v10"

	"rental/internal/pkg/errs"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// contactDetails carries the fields common to every person record.
// Phone is optional but must be E.164 when present.
type contactDetails struct {
	FirstName string `validate:"required,max=100"`
	LastName  string `validate:"required,max=100"`
	Email     string `validate:"required,email"`
	Phone     string `validate:"omitempty,e164"`
}

func (d contactDetails) validate(paramName string) error {
	if err := validate.Struct(d); err != nil {
		return errs.NewValueIsInvalidErrorWithCause(paramName, err)
	}
	return nil
}
