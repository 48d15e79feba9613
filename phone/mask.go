package phone

import "unicode"

const (
	shortDigitCount = 4
	keepShortDigits = 1
	keepLongDigits  = 4
	maskRune        = '*'
)

// Mask hides raw phone input for logs while keeping its shape:
//
//	"+1 (303) 555-1212" -> "+* (***) ***-1212"
//	"1234"              -> "***4"
//	"call-me"           -> "****-*e"
//
// With more than four digits the last four stay visible, otherwise only the
// last one does. Input without digits has every letter but the last masked.
func Mask(raw string) string {
	runes := []rune(raw)
	if maskDigits(runes) {
		return string(runes)
	}
	maskLettersKeepLast(runes)
	return string(runes)
}

func maskDigits(runes []rune) bool {
	total := 0
	for _, r := range runes {
		if unicode.IsDigit(r) {
			total++
		}
	}
	if total == 0 {
		return false
	}

	keep := keepLongDigits
	if total <= shortDigitCount {
		keep = keepShortDigits
	}

	seen := 0
	for i := len(runes) - 1; i >= 0; i-- {
		if !unicode.IsDigit(runes[i]) {
			continue
		}
		seen++
		if seen > keep {
			runes[i] = maskRune
		}
	}
	return true
}

func maskLettersKeepLast(runes []rune) {
	last := true
	for i := len(runes) - 1; i >= 0; i-- {
		if !unicode.IsLetter(runes[i]) {
			continue
		}
		if last {
			last = false
			continue
		}
		runes[i] = maskRune
	}
}
