package errors

import (
	"fmt"
	"strings"

	play "github.com/go-playground/validator/v10"
)

// FromPlayground maps go-playground validation errors onto InvalidArgument with
// one violation per failed field. Unknown tags get reason "invalid".
func FromPlayground(err play.ValidationErrors, tagToReason map[string]string) ErrorResponse {
	violations := make([]FieldViolation, 0, len(err))
	for _, fe := range err {
		tag := fe.Tag()
		reason := tagToReason[tag]
		if reason == "" {
			reason = "invalid"
		}

		field := fe.StructNamespace()
		if i := strings.Index(field, "."); i >= 0 && i+1 < len(field) {
			// drop the root struct name: "Config.ServiceName" -> "ServiceName"
			field = field[i+1:]
		}
		if field == "" {
			field = fe.Field()
		}

		violations = append(violations, FieldViolation{
			Field:       field,
			Reason:      reason,
			Description: fmt.Sprintf("%s validation failed (%s)", field, tag),
		})
	}
	return ValidationViolations(violations)
}
