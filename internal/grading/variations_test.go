package grading

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVariations(t *testing.T) {
	got := Variations("breathing")

	// Exactly five, in a fixed order: reversal first, then the four
	// first-occurrence substitutions.
	assert.Equal(t, []string{
		"gnihtaerb",  // reversed
		"breatheing", // first "th" -> "the"
		"breathing",  // no "the" to replace
		"breathin",   // first "ing" -> "in"
		"breathingg", // first "in" -> "ing"
	}, got)
}

func TestVariations_FirstMatchOnly(t *testing.T) {
	got := Variations("thinthin")

	// Only the first occurrence is substituted, never all of them.
	assert.Equal(t, "theinthin", got[1])
	assert.Equal(t, "thingthin", got[4])
}

func TestVariations_Reversal(t *testing.T) {
	assert.Equal(t, "maerts", Variations("stream")[0])
	assert.Equal(t, "", Variations("")[0])
}
