package errors

import "google.golang.org/grpc/codes"

func InvalidArgument() ErrorResponse {
	return New("Invalid argument", codes.InvalidArgument, nil).WithReason("invalid_argument")
}

func Unknown() ErrorResponse {
	return New("Unknown error occurred", codes.Unknown, nil).WithReason("unknown")
}

// ValidationViolations reports several rejected fields at once.
func ValidationViolations(v []FieldViolation) ErrorResponse {
	return InvalidArgument().WithReason("validation_failed").WithViolations(v)
}

// Field reports a single rejected input value; reason becomes both the
// response reason and the violation reason.
func Field(field, reason, description string) ErrorResponse {
	return InvalidArgument().
		WithReason(reason).
		WithViolations([]FieldViolation{{Field: field, Reason: reason, Description: description}})
}
