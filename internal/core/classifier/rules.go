package classifier

// Decision thresholds and confidence shaping. Confidence is a heuristic
// signal-strength score, not a calibrated probability
const (
	// below this many tokens a hitless text is just too short to call
	minTokensForCall = 3
	// per-side floor for the both-languages mixed call
	mixedMinPerSide = 2

	// unknown never exceeds this
	unknownCeil = 0.3
	// each token of hitless short text adds this much
	unknownPerToken = 0.1
	// hitless text long enough to call sits here
	unknownLonger = 0.2

	// labeled calls never drop below this
	labelFloor = 0.5

	// non-latin script bypass band, 0.9 to 0.95
	scriptConfBase = 0.9
	scriptConfSpan = 0.05
)

// tally accumulates match counts for a single classification call
type tally struct {
	enExact  int
	hiExact  int
	hiFuzzy  int
	patterns int
	tokens   int
}

// hiScore counts every Hindi marker: exact, fuzzy, and grammar patterns
func (t tally) hiScore() int { return t.hiExact + t.hiFuzzy + t.patterns }

// enScore counts exact English hits only
func (t tally) enScore() int { return t.enExact }

func (t tally) hiRatio() float64 {
	if t.tokens == 0 {
		return 0
	}
	return float64(t.hiScore()) / float64(t.tokens)
}

func (t tally) enRatio() float64 {
	if t.tokens == 0 {
		return 0
	}
	return float64(t.enScore()) / float64(t.tokens)
}

// rule is one predicate/outcome pair in the decision table
type rule struct {
	name string
	when func(tally) bool
	emit func(tally) (Language, float64)
}

// rules is the decision table, evaluated top-down, first match wins.
// The order is the contract: the both-sides mixed call must preempt the
// hinglish call, and any Hindi marker at all preempts an English call
var rules = []rule{
	{
		name: "too-short",
		when: func(t tally) bool {
			return t.tokens < minTokensForCall && t.hiScore() == 0 && t.enScore() == 0
		},
		emit: func(t tally) (Language, float64) {
			return Unknown, min(unknownPerToken*float64(t.tokens), unknownCeil)
		},
	},
	{
		name: "both-languages",
		when: func(t tally) bool {
			return t.hiScore() >= mixedMinPerSide && t.enScore() >= mixedMinPerSide
		},
		emit: func(t tally) (Language, float64) {
			weaker := min(t.hiRatio(), t.enRatio())
			return Mixed, scriptConfBase + scriptConfSpan*clamp01(2*weaker)
		},
	},
	{
		name: "hindi-markers",
		when: func(t tally) bool { return t.hiScore() > 0 },
		emit: func(t tally) (Language, float64) {
			return Hinglish, labelFloor + min(t.hiRatio(), labelFloor)
		},
	},
	{
		name: "english",
		when: func(t tally) bool { return t.enScore() > 0 },
		emit: func(t tally) (Language, float64) {
			return English, labelFloor + min(t.enRatio(), labelFloor)
		},
	},
	{
		name: "no-signal",
		when: func(tally) bool { return true },
		emit: func(tally) (Language, float64) { return Unknown, unknownLonger },
	},
}

// decide walks the rule table and returns the first matching outcome plus
// the rule name for evidence
func decide(t tally) (Language, float64, string) {
	for _, r := range rules {
		if r.when(t) {
			lang, conf := r.emit(t)
			return lang, clamp01(conf), r.name
		}
	}
	// unreachable, the last rule always matches
	return Unknown, 0, "no-signal"
}
