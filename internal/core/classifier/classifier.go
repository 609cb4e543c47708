// Package classifier turns raw journaling text into a script verdict, a
// language label, and a confidence score.
//
// The pipeline is script scan, tokenize, exact lexicon match, fuzzy match,
// pattern match, then an ordered rule table. Classify is a pure function of
// the input and the immutable lexicon pack, so one Classifier is safe for
// unsynchronized concurrent use
package classifier

import (
	"math"

	"lipi/internal/core/fuzzy"
	"lipi/internal/core/lexicon"
	"lipi/internal/core/normalize"
	"lipi/internal/core/pattern"
	"lipi/internal/core/script"
	"lipi/internal/core/token"
)

// Version identifies the decision rules plus lexicon generation. Stored with
// every persisted result so consumers can spot stale classifications
const Version = 2

// Language is the final label for one input
type Language string

const (
	// English means English lexicon hits with no Hindi signal
	English Language = "english"
	// Hindi is the label for Devanagari-script text
	Hindi Language = "hindi"
	// Hinglish means romanized Hindi markers are present, vocabulary aside
	Hinglish Language = "hinglish"
	// Mixed means strong independent signal from both languages or scripts
	Mixed Language = "mixed"
	// Unknown covers empty, too-short, and unclassifiable input
	Unknown Language = "unknown"
)

// Valid reports whether l is one of the five defined labels
func (l Language) Valid() bool {
	switch l {
	case English, Hindi, Hinglish, Mixed, Unknown:
		return true
	}
	return false
}

// Evidence explains a result. Advisory only; consumers may ignore it
type Evidence struct {
	Tokens      int           `json:"tokens"`
	Scripts     script.Counts `json:"scripts"`
	EnExact     int           `json:"en_exact"`
	HiExact     int           `json:"hi_exact"`
	HiFuzzy     int           `json:"hi_fuzzy"`
	Patterns    int           `json:"patterns"`
	EnRatio     float64       `json:"en_ratio"`
	HiRatio     float64       `json:"hi_ratio"`
	Fuzzy       []fuzzy.Match `json:"fuzzy,omitempty"`
	PatternHits []string      `json:"pattern_hits,omitempty"`
	Rule        string        `json:"rule"`
}

// Result is the classification contract: script, language, confidence
type Result struct {
	Script     script.Script `json:"script"`
	Language   Language      `json:"language"`
	Confidence float64       `json:"confidence"`
	Evidence   Evidence      `json:"evidence"`
}

// Classifier binds the pipeline to one lexicon pack
type Classifier struct {
	pack     *lexicon.Pack
	fuzzy    *fuzzy.Matcher
	patterns *pattern.Matcher
}

// New builds a Classifier over pack
func New(pack *lexicon.Pack) *Classifier {
	return &Classifier{
		pack:     pack,
		fuzzy:    fuzzy.New(pack),
		patterns: pattern.New(pack),
	}
}

// Classify maps any input string to a Result. It is total: empty input,
// numeric noise, and unsupported scripts all land on defined outcomes
func (c *Classifier) Classify(text string) Result {
	counts := script.Count(text)
	verdict := script.Verdict(counts)

	switch verdict {
	case script.Devanagari:
		// Devanagari journaling text is Hindi in this corpus
		conf := scriptConfBase + scriptConfSpan*share(counts.Devanagari, counts.Letters())
		return finish(Result{
			Script:     script.Devanagari,
			Language:   Hindi,
			Confidence: conf,
			Evidence:   Evidence{Scripts: counts, Rule: "devanagari"},
		})

	case script.Mixed:
		// both scripts well represented, mixed by definition
		balance := 2 * float64(min(counts.Devanagari, counts.Latin)) / float64(counts.Devanagari+counts.Latin)
		conf := scriptConfBase + scriptConfSpan*clamp01(balance)
		return finish(Result{
			Script:     script.Mixed,
			Language:   Mixed,
			Confidence: conf,
			Evidence:   Evidence{Scripts: counts, Rule: "mixed-script"},
		})

	case script.Other:
		// no Latin letters were counted, so tokens with Latin content are
		// not expected here; if any survive anyway, score them normally
		toks := latinOnly(token.Split(normalize.Fold(text)))
		if len(toks) == 0 {
			return finish(Result{
				Script:     script.Other,
				Language:   Unknown,
				Confidence: 0,
				Evidence:   Evidence{Scripts: counts, Rule: "other-script"},
			})
		}
		return finish(c.score(script.Other, counts, toks))

	default:
		return finish(c.score(script.Latin, counts, token.Split(normalize.Fold(text))))
	}
}

// score runs lexicon, fuzzy, and pattern matching over toks and applies the
// decision rules
func (c *Classifier) score(sc script.Script, counts script.Counts, toks []string) Result {
	ev := Evidence{Tokens: len(toks), Scripts: counts}

	for _, t := range toks {
		switch {
		case c.pack.IsEnglish(t):
			ev.EnExact++
		case c.pack.IsHindi(t):
			ev.HiExact++
		default:
			if m, ok := c.fuzzy.Best(t); ok {
				ev.HiFuzzy++
				ev.Fuzzy = append(ev.Fuzzy, m)
			}
		}
	}
	ev.Patterns, ev.PatternHits = c.patterns.Scan(toks)

	t := tally{
		enExact:  ev.EnExact,
		hiExact:  ev.HiExact,
		hiFuzzy:  ev.HiFuzzy,
		patterns: ev.Patterns,
		tokens:   ev.Tokens,
	}
	ev.EnRatio = round2(t.enRatio())
	ev.HiRatio = round2(t.hiRatio())

	lang, conf, rule := decide(t)
	ev.Rule = rule
	return Result{Script: sc, Language: lang, Confidence: conf, Evidence: ev}
}

// latinOnly keeps tokens containing at least one Latin letter
func latinOnly(toks []string) []string {
	out := toks[:0]
	for _, t := range toks {
		if token.HasLatin(t) {
			out = append(out, t)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// finish clamps and rounds the confidence so callers always see [0,1]
// at two decimals
func finish(r Result) Result {
	r.Confidence = round2(clamp01(r.Confidence))
	return r
}

func share(part, whole int) float64 {
	if whole == 0 {
		return 0
	}
	return float64(part) / float64(whole)
}

func clamp01(f float64) float64 {
	return math.Max(0, math.Min(1, f))
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
