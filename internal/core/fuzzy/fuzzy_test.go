package fuzzy

import (
	"testing"

	"lipi/internal/core/lexicon"
)

func mustPack(t *testing.T) *lexicon.Pack {
	t.Helper()
	p, err := lexicon.Load()
	if err != nil {
		t.Fatalf("lexicon.Load(): %v", err)
	}
	return p
}

func TestThreshold(t *testing.T) {
	t.Parallel()

	for n, want := range map[int]int{0: 0, 1: 0, 2: 1, 3: 1, 4: 2, 5: 2, 12: 2} {
		if got := Threshold(n); got != want {
			t.Fatalf("Threshold(%d) = %d, want %d", n, got, want)
		}
	}
}

func TestBestAccepts(t *testing.T) {
	t.Parallel()

	m := New(mustPack(t))
	cases := []struct {
		tok   string
		entry string
		dist  int
	}{
		{"nhi", "nahi", 1},   // beats "hi" and "bhi" on the length tie-break
		{"muje", "mujhe", 1}, // length 4, threshold 2
		{"gya", "gaya", 1},   // beats "ga" and "kya"
		{"bahot", "bahut", 1},
		{"kaam", "kam", 1},
		{"yarr", "yaar", 1},
		{"subha", "subah", 2},
	}
	for _, tc := range cases {
		got, ok := m.Best(tc.tok)
		if !ok {
			t.Fatalf("Best(%q): no match, want %q", tc.tok, tc.entry)
		}
		if got.Entry != tc.entry || got.Distance != tc.dist {
			t.Fatalf("Best(%q) = %q d=%d, want %q d=%d", tc.tok, got.Entry, got.Distance, tc.entry, tc.dist)
		}
	}
}

func TestBestRejects(t *testing.T) {
	t.Parallel()

	m := New(mustPack(t))
	for _, tok := range []string{
		"office",   // nothing within distance 2
		"headache", // long, no neighbors
		"ok",       // length 2, nothing within distance 1
		"pm",
		"a", // below the minimum fuzzy length
		"",
	} {
		if got, ok := m.Best(tok); ok {
			t.Fatalf("Best(%q) accepted %q d=%d, want reject", tok, got.Entry, got.Distance)
		}
	}
}

func TestBestDeterministic(t *testing.T) {
	t.Parallel()

	m := New(mustPack(t))
	first, ok := m.Best("gya")
	if !ok {
		t.Fatalf("expected a match for %q", "gya")
	}
	for i := 0; i < 50; i++ {
		again, ok := m.Best("gya")
		if !ok || again != first {
			t.Fatalf("nondeterministic result: %v vs %v", again, first)
		}
	}
}
