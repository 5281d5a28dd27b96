package grading

import (
	"strings"
	"unicode"
)

// LengthClass selects the fuzzy-match tolerance for an answer.
type LengthClass string

const (
	LengthShort LengthClass = "short"
	LengthLong  LengthClass = "long"
)

// ShortAnswerLength is the default cutoff, in normalized runes, below which
// an answer is classified as short.
const ShortAnswerLength = 20

// Normalize canonicalizes an answer string for comparison: all whitespace is
// removed (with no replacement), letters are lower-cased, C0/C1 control
// characters are stripped, and the punctuation set `. , ! ? ; :` is stripped.
// Everything else, including accents, digits and other punctuation, is kept.
// Normalize is idempotent.
func Normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case unicode.IsSpace(r):
			// dropped, not replaced
		case r <= 0x1F || (r >= 0x7F && r <= 0x9F):
			// C0/C1 controls
		case strings.ContainsRune(".,!?;:", r):
			// fixed punctuation set
		default:
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return b.String()
}

// Classify buckets an already-normalized answer into a length class.
func Classify(normalized string) LengthClass {
	if len([]rune(normalized)) < ShortAnswerLength {
		return LengthShort
	}
	return LengthLong
}
