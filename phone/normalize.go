// Package phone normalizes North American (NANP) phone numbers.
//
// The package-level functions are total: every input string, including the
// empty one, maps to a 10-digit string. Inputs that cannot be a phone number
// map to the Invalid sentinel instead of producing an error. Parse is the
// strict counterpart for callers that need to know why a value was rejected.
package phone

import "strings"

const (
	// Invalid is returned by Normalize for any input that fails validation.
	Invalid = "0000000000"

	// Length is the number of digits in a normalized number.
	Length = 10

	countryCode = '1'
)

type cause string

const (
	causeNone            cause = ""
	causeContainsLetters cause = "contains_letters"
	causeTooShort        cause = "too_short"
	causeTooLong         cause = "too_long"
	causeBadCountryCode  cause = "bad_country_code"
	causeReserved        cause = "reserved"
)

// Normalize strips formatting from raw and returns its 10 digits.
//
// Any ASCII letter anywhere in raw yields Invalid, as does a digit count
// outside 10..11. With 11 digits the leading one must be the country code 1
// and is dropped.
//
//	"123-456-7890"      -> "1234567890"
//	"+1 (303) 555-1212" -> "3035551212"
//	"867.5309"          -> "0000000000"
func Normalize(raw string) string {
	num, _ := normalize(raw)
	return num
}

// AreaCode returns the first three digits of Normalize(raw).
func AreaCode(raw string) string {
	return Normalize(raw)[:3]
}

// Exchange returns digits 4-6 of Normalize(raw).
func Exchange(raw string) string {
	return Normalize(raw)[3:6]
}

// Subscriber returns the last four digits of Normalize(raw).
func Subscriber(raw string) string {
	return Normalize(raw)[6:]
}

// Pretty formats raw as "(AAA) EEE-SSSS".
func Pretty(raw string) string {
	return pretty(Normalize(raw))
}

// IsValid reports whether raw normalizes to something other than Invalid.
// It agrees with Parse: IsValid(raw) is true exactly when Parse(raw) succeeds.
func IsValid(raw string) bool {
	return Normalize(raw) != Invalid
}

func normalize(raw string) (string, cause) {
	digits := make([]byte, 0, Length+1)
	hasLetter := false

	// Multi-byte UTF-8 sequences never contain ASCII bytes, so scanning bytes
	// is equivalent to scanning runes for these two classes.
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		switch {
		case c >= '0' && c <= '9':
			digits = append(digits, c)
		case (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z'):
			hasLetter = true
		}
	}

	switch {
	case hasLetter:
		return Invalid, causeContainsLetters
	case len(digits) < Length:
		return Invalid, causeTooShort
	case len(digits) > Length+1:
		return Invalid, causeTooLong
	case len(digits) == Length+1 && digits[0] != countryCode:
		return Invalid, causeBadCountryCode
	}

	num := string(digits[len(digits)-Length:])
	// An all-zero number is indistinguishable from the sentinel, so it is
	// rejected like any other invalid input.
	if num == Invalid {
		return Invalid, causeReserved
	}
	return num, causeNone
}

func pretty(num string) string {
	var b strings.Builder
	b.Grow(len("(AAA) EEE-SSSS"))
	b.WriteByte('(')
	b.WriteString(num[:3])
	b.WriteString(") ")
	b.WriteString(num[3:6])
	b.WriteByte('-')
	b.WriteString(num[6:])
	return b.String()
}
