// Package fuzzy matches tokens against the Hindi lexicon by bounded edit
// distance, catching the spelling drift typical of romanized Hindi
// ("nhi" for "nahi", "muje" for "mujhe").
//
// Matching is asymmetric on purpose: English spelling is treated as canonical
// in this domain, so the English lexicon is never fuzzy-matched
package fuzzy

import (
	"github.com/agnivade/levenshtein"

	"lipi/internal/core/lexicon"
)

// Match records one accepted fuzzy hit
type Match struct {
	Token    string `json:"token"`
	Entry    string `json:"entry"`
	Distance int    `json:"distance"`
}

// Threshold returns the maximum accepted edit distance for a token of n
// runes. Zero means the token is too short to fuzzy-match at all; very short
// tokens get a tighter bound so common short English words don't drift into
// the Hindi set
func Threshold(n int) int {
	switch {
	case n >= 4:
		return 2
	case n >= 2:
		return 1
	default:
		return 0
	}
}

// Matcher finds the closest Hindi lexicon entry for a token
type Matcher struct {
	pack *lexicon.Pack
}

// New returns a Matcher over the pack's Hindi set
func New(pack *lexicon.Pack) *Matcher { return &Matcher{pack: pack} }

// Best returns the closest Hindi entry within the token's distance threshold.
// Candidates whose rune length differs from the token by more than the
// threshold cannot be within it, so those buckets are skipped wholesale.
// Ties resolve to the longest then lexicographically first entry: "nhi" sits
// at distance 1 from "hi", "bhi" and "nahi" alike, and the longest of those
// is the word actually being misspelled
func (m *Matcher) Best(tok string) (Match, bool) {
	n := len([]rune(tok))
	thr := Threshold(n)
	if thr == 0 {
		return Match{}, false
	}

	found := false
	var best Match
	for l := n - thr; l <= n+thr; l++ {
		if l < 1 {
			continue
		}
		for _, entry := range m.pack.HindiByLen[l] {
			d := levenshtein.ComputeDistance(tok, entry)
			if d > thr {
				continue
			}
			if !found || closer(d, entry, best) {
				best = Match{Token: tok, Entry: entry, Distance: d}
				found = true
			}
		}
	}
	return best, found
}

// closer reports whether (d, entry) beats the current best match
func closer(d int, entry string, best Match) bool {
	if d != best.Distance {
		return d < best.Distance
	}
	if len(entry) != len(best.Entry) {
		return len(entry) > len(best.Entry)
	}
	return entry < best.Entry
}
