package lexicon

import "testing"

func TestLoadEmbedded(t *testing.T) {
	p, err := Load()
	if err != nil {
		t.Fatalf("Load(): %v", err)
	}
	if p.Version != 2 {
		t.Fatalf("version = %d, want 2", p.Version)
	}
	en, hi, pat := p.Sizes()
	if en < 90 || hi < 90 {
		t.Fatalf("suspiciously small lexicons: en=%d hi=%d", en, hi)
	}
	if pat == 0 {
		t.Fatalf("no patterns compiled")
	}

	// anchor words from the curated lists
	for _, w := range []string{"the", "feeling", "cramps", "slept", "gym", "me", "scam"} {
		if w == "scam" {
			if p.IsEnglish(w) || p.IsHindi(w) {
				t.Fatalf("%q should be in neither set", w)
			}
			continue
		}
		if !p.IsEnglish(w) {
			t.Fatalf("%q missing from English set", w)
		}
	}
	for _, w := range []string{"hai", "hain", "mein", "aur", "nahi", "bahut", "yaar", "dard", "thakan", "garam"} {
		if !p.IsHindi(w) {
			t.Fatalf("%q missing from Hindi set", w)
		}
	}
}

func TestSetsDisjoint(t *testing.T) {
	p, err := Load()
	if err != nil {
		t.Fatalf("Load(): %v", err)
	}
	for w := range p.Hindi {
		if p.IsEnglish(w) {
			t.Fatalf("%q present in both lexicons", w)
		}
	}
	// ambiguous short words resolved to exactly one side
	if p.IsHindi("me") || p.IsHindi("the") {
		t.Fatalf("English-precedence words leaked into Hindi set")
	}
}

func TestEnglishPrecedenceSafetyNet(t *testing.T) {
	p, err := compile(rawPackV2{
		Version: 2,
		English: []string{"me", "today"},
		Hindi:   []string{"me", "hai"},
	})
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if !p.IsEnglish("me") {
		t.Fatalf("overlap should stay English")
	}
	if p.IsHindi("me") {
		t.Fatalf("overlap should be dropped from Hindi")
	}
	if !p.IsHindi("hai") {
		t.Fatalf("clean Hindi entry lost")
	}
}

func TestPatterns(t *testing.T) {
	p, err := Load()
	if err != nil {
		t.Fatalf("Load(): %v", err)
	}
	if !p.MatchPattern([]string{"ki", "wajah"}) {
		t.Fatalf("bigram pattern missing")
	}
	if !p.MatchPattern([]string{"lag", "raha", "hai"}) {
		t.Fatalf("trigram pattern missing")
	}
	if p.MatchPattern([]string{"wajah", "ki"}) {
		t.Fatalf("patterns must be order-sensitive")
	}
	if p.MatchPattern([]string{"ki"}) || p.MatchPattern([]string{"a", "b", "c", "d"}) {
		t.Fatalf("window size outside 2..3 must never match")
	}
	if p.MinPattern != 2 || p.MaxPattern != 3 {
		t.Fatalf("window bounds = [%d,%d], want [2,3]", p.MinPattern, p.MaxPattern)
	}
}

func TestPatternLengthValidated(t *testing.T) {
	_, err := compile(rawPackV2{
		Version:  2,
		Patterns: [][]string{{"lonely"}},
	})
	if err == nil {
		t.Fatalf("expected error for 1-token pattern")
	}
}
