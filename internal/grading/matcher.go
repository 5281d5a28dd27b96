package grading

import (
	"math"
	"strings"
)

// Matcher options

type Option func(*config)

type config struct {
	ShortTolerance  float64 // edit-distance tolerance for short answers
	LongTolerance   float64 // edit-distance tolerance for long answers
	IncludeReversed bool    // keep the rune-reversed variation (parity with historical grading)
}

func WithShortTolerance(t float64) Option { return func(c *config) { c.ShortTolerance = t } }
func WithLongTolerance(t float64) Option  { return func(c *config) { c.LongTolerance = t } }
func WithReversedVariation(b bool) Option { return func(c *config) { c.IncludeReversed = b } }

// Matcher decides whether a student answer matches a reference answer,
// with a looser tolerance for short answers than for long ones. It is
// stateless after construction and safe for concurrent use.
type Matcher struct {
	cfg config
}

// NewMatcher builds a matcher with the default tolerances (0.30 short,
// 0.20 long) unless overridden by options.
func NewMatcher(opts ...Option) *Matcher {
	cfg := config{
		ShortTolerance:  0.30,
		LongTolerance:   0.20,
		IncludeReversed: true,
	}
	for _, o := range opts {
		o(&cfg)
	}
	return &Matcher{cfg: cfg}
}

// Matches reports whether the student answer matches the reference answer.
//
// Both inputs are normalized first. Single-rune answers are compared by
// strict equality only. Otherwise a match is: containment in either
// direction, edit distance within floor(min(len)*tolerance), or — for short
// answers only — exact equality with one of the heuristic variations of the
// reference.
func (m *Matcher) Matches(studentRaw, correctRaw string, class LengthClass) bool {
	s := Normalize(studentRaw)
	c := Normalize(correctRaw)

	sr := []rune(s)
	cr := []rune(c)

	// Single-character answers get no leniency at all.
	if len(sr) == 1 && len(cr) == 1 {
		return s == c
	}

	if strings.Contains(s, c) || strings.Contains(c, s) {
		return true
	}

	tolerance := m.cfg.ShortTolerance
	if class == LengthLong {
		tolerance = m.cfg.LongTolerance
	}
	shorter := len(sr)
	if len(cr) < shorter {
		shorter = len(cr)
	}
	threshold := int(math.Floor(float64(shorter) * tolerance))
	if Distance(s, c) <= threshold {
		return true
	}

	if class == LengthShort {
		variations := Variations(c)
		if !m.cfg.IncludeReversed {
			variations = variations[1:]
		}
		for _, v := range variations {
			if s == v {
				return true
			}
		}
	}

	return false
}
