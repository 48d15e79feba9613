package phone

import (
	"strings"

	errs "github.com/vortex-fintech/go-textkit/errors"
)

const (
	// Domain is attached to every error produced by this package.
	Domain = "phone"

	// ReasonInvalidPhone is the ErrorResponse reason for rejected numbers.
	ReasonInvalidPhone = "invalid_phone"

	field = "phone"
)

var causeDescriptions = map[cause]string{
	causeContainsLetters: "phone number must not contain letters",
	causeTooShort:        "phone number must have at least 10 digits",
	causeTooLong:         "phone number must have at most 11 digits",
	causeBadCountryCode:  "11-digit phone number must start with country code 1",
	causeReserved:        "phone number must not be all zeros",
}

// ErrInvalid matches every error returned by Parse via errors.Is.
var ErrInvalid = errs.InvalidArgument().WithReason(ReasonInvalidPhone)

// Number is a normalized 10-digit phone number.
//
// Methods on a Number that is not exactly 10 ASCII digits (the zero value, or
// a value converted from an arbitrary string) behave as if it were Invalid.
type Number string

// Parse is the strict form of Normalize. It returns an errs.ErrorResponse with
// reason ReasonInvalidPhone and a "cause" detail when raw is rejected.
func Parse(raw string) (Number, error) {
	num, c := normalize(raw)
	if c != causeNone {
		return "", parseError(c)
	}
	return Number(num), nil
}

func parseError(c cause) error {
	return errs.Field(field, ReasonInvalidPhone, causeDescriptions[c]).
		WithMessage("Invalid phone number").
		WithDomain(Domain).
		WithDetail("cause", string(c))
}

func (n Number) digits() string {
	if len(n) != Length || strings.Trim(string(n), "0123456789") != "" {
		return Invalid
	}
	return string(n)
}

func (n Number) String() string     { return n.digits() }
func (n Number) AreaCode() string   { return n.digits()[:3] }
func (n Number) Exchange() string   { return n.digits()[3:6] }
func (n Number) Subscriber() string { return n.digits()[6:] }
func (n Number) Pretty() string     { return pretty(n.digits()) }

// E164 renders the number with the +1 country prefix.
func (n Number) E164() string {
	return "+1" + n.digits()
}

// Masked is the pretty form with only the subscriber digits visible:
// "(***) ***-1212".
func (n Number) Masked() string {
	return "(***) ***-" + n.Subscriber()
}
