package errors

import (
	"encoding/json"
	"maps"

	"google.golang.org/grpc/codes"
)

// Reason is a stable machine-readable code.
type Reason string

// FieldViolation describes one rejected input field.
type FieldViolation struct {
	Field       string `json:"field"`
	Reason      string `json:"reason,omitempty"`
	Description string `json:"description,omitempty"`
}

// ErrorResponse is the error value returned by the strict APIs of this module.
// It is immutable: every With* method returns a modified copy.
type ErrorResponse struct {
	Code       codes.Code        `json:"code"`
	Reason     Reason            `json:"reason,omitempty"`
	Domain     string            `json:"domain,omitempty"` // emitting package, e.g. "phone"
	Message    string            `json:"message"`
	Details    map[string]string `json:"details,omitempty"`
	Violations []FieldViolation  `json:"violations,omitempty"`
}

func New(message string, code codes.Code, details map[string]string) ErrorResponse {
	e := ErrorResponse{Code: code, Message: message}
	return e.WithDetails(details)
}

func (e ErrorResponse) WithReason(r string) ErrorResponse  { e.Reason = Reason(r); return e }
func (e ErrorResponse) WithDomain(d string) ErrorResponse  { e.Domain = d; return e }
func (e ErrorResponse) WithMessage(m string) ErrorResponse { e.Message = m; return e }

func (e ErrorResponse) WithDetail(k, v string) ErrorResponse {
	return e.WithDetails(map[string]string{k: v})
}

// WithDetails merges m into a fresh map; the receiver's map is never written.
func (e ErrorResponse) WithDetails(m map[string]string) ErrorResponse {
	if len(m) == 0 {
		return e
	}
	merged := make(map[string]string, len(e.Details)+len(m))
	maps.Copy(merged, e.Details)
	maps.Copy(merged, m)
	e.Details = merged
	return e
}

func (e ErrorResponse) WithViolations(v []FieldViolation) ErrorResponse {
	if len(v) == 0 {
		return e
	}
	e.Violations = append([]FieldViolation(nil), v...)
	return e
}

// Is matches another ErrorResponse by code and reason, which lets callers use
// errors.Is(err, errors.InvalidArgument().WithReason("invalid_phone")).
func (e ErrorResponse) Is(target error) bool {
	t, ok := target.(ErrorResponse)
	if !ok {
		return false
	}
	return e.Code == t.Code && e.Reason == t.Reason
}

// Error renders the response as JSON with the code spelled out by name.
func (e ErrorResponse) Error() string {
	rendered := struct {
		ErrorResponse
		Code string `json:"code"`
	}{ErrorResponse: e, Code: e.Code.String()}
	b, _ := json.Marshal(rendered)
	return string(b)
}
