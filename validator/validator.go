// Package validator holds the shared go-playground validator with the phone
// tags registered.
package validator

import (
	"github.com/go-playground/validator/v10"

	errs "github.com/vortex-fintech/go-textkit/errors"
	"github.com/vortex-fintech/go-textkit/phone"
)

var v *validator.Validate

func init() {
	v = validator.New(validator.WithRequiredStructEnabled())
	if err := phone.RegisterValidation(v); err != nil {
		panic(err)
	}
}

// Instance returns the shared validator with the "nanp" tag registered.
func Instance() *validator.Validate {
	return v
}

// Struct validates i and returns an errs.ErrorResponse with one violation per
// failed field.
func Struct(i any) error {
	err := v.Struct(i)
	if err == nil {
		return nil
	}
	if ves, ok := err.(validator.ValidationErrors); ok {
		return errs.FromPlayground(ves, tagMap)
	}
	return errs.InvalidArgument().WithReason("validation_failed").WithDetail("_error", err.Error())
}
