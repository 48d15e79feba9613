package phone

import (
	"reflect"

	"github.com/go-playground/validator/v10"
)

// Tag is the struct tag registered by RegisterValidation.
const Tag = "nanp"

// RegisterValidation adds the "nanp" tag to v. A string field passes when it
// normalizes to a valid number; empty strings fail, combine with omitempty to
// make the field optional.
func RegisterValidation(v *validator.Validate) error {
	return v.RegisterValidation(Tag, validateNANP)
}

func validateNANP(fl validator.FieldLevel) bool {
	f := fl.Field()
	if f.Kind() != reflect.String {
		return false
	}
	return IsValid(f.String())
}
