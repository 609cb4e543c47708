package script

import "testing"

func TestVerdictTable(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   string
		want Script
	}{
		{"plain english", "slept late, feeling okay today", Latin},
		{"plain hinglish", "aaj bahut kaam hai yaar", Latin},
		{"plain devanagari", "मुझे बहुत नींद आ रही है", Devanagari},
		{"mixed scripts", "mood ठीक नहीं hai today", Mixed},
		{"empty", "", Other},
		{"numeric only", "12345 !!!", Other},
		{"punctuation only", "?!?! ...", Other},
		{"single latin letter", "k", Latin},
		{"two latin letters", "ok", Latin},
		{"stray devanagari in latin", "ok न fine sure", Latin},
		{"one dev letter alone", "न", Other},
		{"two dev letters alone", "नह", Other},
		{"three dev letters alone", "नहल", Devanagari},
		{"hangul degrades to other", "안녕하세요", Other},
		{"digits with latin", "meeting at 5 pm", Latin},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := Detect(tc.in); got != tc.want {
				t.Fatalf("Detect(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestCountIgnoresNonLetters(t *testing.T) {
	t.Parallel()

	c := Count("a1! b2? नही")
	if c.Latin != 2 {
		t.Fatalf("latin = %d, want 2", c.Latin)
	}
	// matra U+0940 is a combining mark, not a letter
	if c.Devanagari != 2 {
		t.Fatalf("devanagari = %d, want 2", c.Devanagari)
	}
	if c.Other != 0 {
		t.Fatalf("other = %d, want 0", c.Other)
	}
	if c.Letters() != 4 {
		t.Fatalf("letters = %d, want 4", c.Letters())
	}
}

func TestMixedNeedsBothAboveNoise(t *testing.T) {
	t.Parallel()

	// two dev letters are noise, three are signal
	if got := Detect("abc नह"); got != Latin {
		t.Fatalf("got %q, want latin", got)
	}
	if got := Detect("abc नहल"); got != Mixed {
		t.Fatalf("got %q, want mixed", got)
	}
	// and the same gate applies on the latin side
	if got := Detect("ab नहल"); got != Devanagari {
		t.Fatalf("got %q, want devanagari", got)
	}
}

func TestVerdictValid(t *testing.T) {
	t.Parallel()

	for _, s := range []Script{Latin, Devanagari, Mixed, Other} {
		if !s.Valid() {
			t.Fatalf("%q should be valid", s)
		}
	}
	if Script("greek").Valid() {
		t.Fatalf("unexpected valid verdict")
	}
}
