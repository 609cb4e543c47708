// Package script classifies raw text by Unicode script composition.
//
// Only Latin and Devanagari are distinguished; everything else folds into
// the other bucket. Whitespace, punctuation, digits and symbols are ignored,
// so "4pm!!" and "pm" see the same letter counts.
package script

import "unicode"

// Script is the writing-system verdict for one input string.
type Script string

const (
	// Latin means Latin letters dominate or are the only letters present
	Latin Script = "latin"
	// Devanagari means Devanagari letters dominate
	Devanagari Script = "devanagari"
	// Mixed means both Latin and Devanagari are meaningfully present
	Mixed Script = "mixed"
	// Other covers empty, numeric-only, and unsupported scripts
	Other Script = "other"
)

// Valid reports whether s is one of the four defined verdicts
func (s Script) Valid() bool {
	switch s {
	case Latin, Devanagari, Mixed, Other:
		return true
	}
	return false
}

// Counts holds per-script letter tallies for one input
type Counts struct {
	Latin      int `json:"latin"`
	Devanagari int `json:"devanagari"`
	Other      int `json:"other"`
}

// Letters returns the total number of letters seen
func (c Counts) Letters() int { return c.Latin + c.Devanagari + c.Other }

// Count tallies letters by script membership. Non-letters never count
func Count(s string) Counts {
	var c Counts
	for _, r := range s {
		if !unicode.IsLetter(r) {
			continue
		}
		switch {
		case unicode.In(r, unicode.Devanagari):
			c.Devanagari++
		case unicode.In(r, unicode.Latin):
			c.Latin++
		default:
			c.Other++
		}
	}
	return c
}

// Verdict maps letter counts to a script verdict.
//
// A couple of stray characters from either script must not flip the verdict,
// so both mixed and devanagari require more than two letters of evidence.
// Any Latin letter at all is enough to call the text latin once devanagari
// is ruled out; short texts therefore default toward latin rather than other
func Verdict(c Counts) Script {
	switch {
	case c.Devanagari > 2 && c.Latin > 2:
		return Mixed
	case c.Devanagari > 2:
		return Devanagari
	case c.Latin > 0:
		return Latin
	default:
		return Other
	}
}

// Detect is Count followed by Verdict. It never fails; every input maps to
// exactly one verdict
func Detect(s string) Script {
	return Verdict(Count(s))
}
