package pattern

import (
	"reflect"
	"testing"

	"lipi/internal/core/lexicon"
)

func mustMatcher(t *testing.T) *Matcher {
	t.Helper()
	p, err := lexicon.Load()
	if err != nil {
		t.Fatalf("lexicon.Load(): %v", err)
	}
	return New(p)
}

func TestScanTable(t *testing.T) {
	t.Parallel()

	m := mustMatcher(t)
	cases := []struct {
		name   string
		tokens []string
		count  int
		hits   []string
	}{
		{"empty", nil, 0, nil},
		{"single token", []string{"ho"}, 0, nil},
		{"bigram", []string{"kaam", "ho", "gaya"}, 1, []string{"ho gaya"}},
		{"no match", []string{"slept", "really", "late"}, 0, nil},
		{
			// size-2 windows scan first, then size-3, each position independently
			"overlapping windows all count",
			[]string{"iski", "ki", "wajah", "se", "hua"},
			3,
			[]string{"ki wajah", "wajah se", "ki wajah se"},
		},
		{"trigram only", []string{"thakan", "lag", "raha", "hai"}, 1, []string{"lag raha hai"}},
		{"window never spans gaps", []string{"ho", "kaam", "gaya"}, 0, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			count, hits := m.Scan(tc.tokens)
			if count != tc.count || !reflect.DeepEqual(hits, tc.hits) {
				t.Fatalf("Scan(%v) = %d %v, want %d %v", tc.tokens, count, hits, tc.count, tc.hits)
			}
		})
	}
}

func TestScanRepeatsCount(t *testing.T) {
	t.Parallel()

	m := mustMatcher(t)
	count, _ := m.Scan([]string{"ho", "gaya", "ho", "gaya"})
	if count != 2 {
		t.Fatalf("repeated phrase should count twice, got %d", count)
	}
}
