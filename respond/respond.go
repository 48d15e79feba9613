// Package respond answers short text messages with one of four canned replies.
package respond

import "strings"

// Classify evaluates the rules in order and returns the first match:
//
//  1. blank after trimming whitespace -> Silence
//  2. ends with '?' (untrimmed)       -> Question
//  3. has cased letters, all upper    -> Shout
//  4. anything else                   -> Default
func Classify(input string) Category {
	switch {
	case strings.TrimSpace(input) == "":
		return Silence
	case strings.HasSuffix(input, "?"):
		return Question
	case isShouting(input):
		return Shout
	default:
		return Default
	}
}

// Respond returns the canned reply for input.
func Respond(input string) string {
	return Classify(input).Reply()
}

// A string without cased letters upper- and lower-cases to itself, so it is
// never shouting. strings.ToUpper turns invalid UTF-8 into U+FFFD, so input
// holding invalid bytes never equals its upper form and is not shouting either.
func isShouting(s string) bool {
	upper := strings.ToUpper(s)
	return upper == s && upper != strings.ToLower(s)
}
