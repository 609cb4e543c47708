// Package lexicon loads and compiles the curated word lists from the embedded
// v2 lexicon.json. It prepares the English set, the Hindi-in-Latin-script set,
// and the grammar pattern set for the classifier
package lexicon

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

//go:embed lexicon.json
var embedded []byte

// rawPackV2 mirrors the lexicon.json layout produced by lipi-lexpacker
type rawPackV2 struct {
	Version  int            `json:"version"`
	Meta     map[string]any `json:"meta"`
	English  []string       `json:"english"`
	Hindi    []string       `json:"hindi"`
	Patterns [][]string     `json:"patterns"`
}

// Pattern is a compiled contiguous token sequence (length 2 or 3)
type Pattern struct {
	Tokens []string
	key    string
}

// Key returns the canonical space-joined form of the pattern
func (p Pattern) Key() string { return p.key }

// Pack is a compiled, immutable lexicon. Built once at startup, read-only
// afterwards, safe for unsynchronized concurrent use
type Pack struct {
	Version int
	Meta    map[string]any

	// English and Hindi exact-match sets, lowercased and disjoint
	English map[string]struct{}
	Hindi   map[string]struct{}

	// Hindi entries grouped by rune length for the fuzzy prefilter,
	// each bucket sorted for deterministic iteration
	HindiByLen map[int][]string

	// Patterns keyed by space-joined token sequence
	Patterns   []Pattern
	patternSet map[string]struct{}

	// Window sizes present in the pattern set (2 and/or 3)
	MinPattern, MaxPattern int
}

// Load returns the compiled pack from the embedded v2 lexicon.json.
//
// The English and Hindi sets are disjoint by construction (lipi-lexpacker
// refuses overlaps). If a hand-edited pack slips one through anyway, the
// English side wins and the word is dropped from Hindi
func Load() (*Pack, error) {
	var rp rawPackV2
	if err := json.Unmarshal(embedded, &rp); err != nil {
		return nil, fmt.Errorf("lexicon: parse lexicon.json: %w", err)
	}
	return compile(rp)
}

func compile(rp rawPackV2) (*Pack, error) {
	if rp.Version != 2 {
		return nil, fmt.Errorf("lexicon: unsupported lexicon.json version %d (want 2)", rp.Version)
	}

	p := &Pack{
		Version:    rp.Version,
		Meta:       rp.Meta,
		English:    make(map[string]struct{}, len(rp.English)),
		Hindi:      make(map[string]struct{}, len(rp.Hindi)),
		HindiByLen: make(map[int][]string, 12),
		patternSet: make(map[string]struct{}, len(rp.Patterns)),
	}

	for _, w := range rp.English {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		p.English[w] = struct{}{}
	}

	for _, w := range rp.Hindi {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		if _, clash := p.English[w]; clash {
			// English precedence, see doc comment on Load
			continue
		}
		if _, dup := p.Hindi[w]; dup {
			continue
		}
		p.Hindi[w] = struct{}{}
		n := len([]rune(w))
		p.HindiByLen[n] = append(p.HindiByLen[n], w)
	}
	for n := range p.HindiByLen {
		sort.Strings(p.HindiByLen[n])
	}

	for _, seq := range rp.Patterns {
		toks := make([]string, 0, len(seq))
		for _, t := range seq {
			t = strings.ToLower(strings.TrimSpace(t))
			if t == "" {
				continue
			}
			toks = append(toks, t)
		}
		if len(toks) < 2 || len(toks) > 3 {
			return nil, fmt.Errorf("lexicon: pattern %v has %d tokens (want 2 or 3)", seq, len(toks))
		}
		key := strings.Join(toks, " ")
		if _, dup := p.patternSet[key]; dup {
			continue
		}
		p.patternSet[key] = struct{}{}
		p.Patterns = append(p.Patterns, Pattern{Tokens: toks, key: key})
		if p.MinPattern == 0 || len(toks) < p.MinPattern {
			p.MinPattern = len(toks)
		}
		if len(toks) > p.MaxPattern {
			p.MaxPattern = len(toks)
		}
	}

	// Deterministic iteration for tests/debug
	sort.Slice(p.Patterns, func(i, j int) bool { return p.Patterns[i].key < p.Patterns[j].key })

	return p, nil
}

// IsEnglish reports exact membership in the English set
func (p *Pack) IsEnglish(tok string) bool {
	_, ok := p.English[tok]
	return ok
}

// IsHindi reports exact membership in the Hindi set
func (p *Pack) IsHindi(tok string) bool {
	_, ok := p.Hindi[tok]
	return ok
}

// MatchPattern reports whether the window matches a curated pattern
func (p *Pack) MatchPattern(window []string) bool {
	if len(window) < 2 || len(window) > 3 {
		return false
	}
	_, ok := p.patternSet[strings.Join(window, " ")]
	return ok
}

// Sizes returns the English, Hindi, and pattern set sizes
func (p *Pack) Sizes() (english, hindi, patterns int) {
	return len(p.English), len(p.Hindi), len(p.Patterns)
}
