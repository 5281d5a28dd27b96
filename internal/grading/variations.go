package grading

import "strings"

// Variations produces the fixed list of heuristic alternate spellings of a
// normalized reference answer, in order: the rune-reversed string, then four
// first-occurrence substitutions ("th"<->"the", "ing"<->"in"). The
// substitutions are crude text replacements, not linguistic transforms; they
// exist to forgive common spelling slips on short answers. The reversed
// variant is first so callers can exclude it by slicing.
func Variations(reference string) []string {
	return []string{
		reverseRunes(reference),
		strings.Replace(reference, "th", "the", 1),
		strings.Replace(reference, "the", "th", 1),
		strings.Replace(reference, "ing", "in", 1),
		strings.Replace(reference, "in", "ing", 1),
	}
}

func reverseRunes(s string) string {
	r := []rune(s)
	for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
		r[i], r[j] = r[j], r[i]
	}
	return string(r)
}
