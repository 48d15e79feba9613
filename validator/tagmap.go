package validator

import "github.com/vortex-fintech/go-textkit/phone"

// tagMap translates validator tags into violation reasons.
var tagMap = map[string]string{
	"required":   "required",
	"omitempty":  "optional",
	phone.Tag:    phone.ReasonInvalidPhone,
	"e164":       "invalid_phone",
	"max":        "too_long",
	"min":        "too_short",
	"gt":         "too_small",
	"lt":         "too_large",
	"gte":        "too_small_or_equal",
	"lte":        "too_large_or_equal",
	"len":        "invalid_length",
	"oneof":      "invalid_choice",
	"alpha":      "only_letters_allowed",
	"alphanum":   "only_letters_and_digits_allowed",
	"numeric":    "only_numbers_allowed",
	"printascii": "only_printable_ascii_allowed",
}
