// Package pattern scans token sequences for curated Hindi-grammar phrases.
package pattern

import (
	"strings"

	"lipi/internal/core/lexicon"
)

// Matcher slides fixed-size windows over a token sequence and counts
// membership in the pack's pattern set
type Matcher struct {
	pack *lexicon.Pack
}

// New returns a Matcher over the pack's patterns
func New(pack *lexicon.Pack) *Matcher { return &Matcher{pack: pack} }

// Scan returns the number of matching windows and their canonical forms.
// Windows of every size the pack carries (2 and 3) are tried at every
// position; overlapping matches each count, nothing is consumed
func (m *Matcher) Scan(tokens []string) (int, []string) {
	if len(tokens) < m.pack.MinPattern || m.pack.MinPattern == 0 {
		return 0, nil
	}
	var hits []string
	for size := m.pack.MinPattern; size <= m.pack.MaxPattern; size++ {
		for i := 0; i+size <= len(tokens); i++ {
			win := tokens[i : i+size]
			if m.pack.MatchPattern(win) {
				hits = append(hits, strings.Join(win, " "))
			}
		}
	}
	return len(hits), hits
}
