package classifier

import (
	"sync"
	"testing"

	"lipi/internal/core/lexicon"
	"lipi/internal/core/script"
)

func mustClassifier(t *testing.T) *Classifier {
	t.Helper()
	p, err := lexicon.Load()
	if err != nil {
		t.Fatalf("lexicon.Load(): %v", err)
	}
	return New(p)
}

func TestClassifyScenarios(t *testing.T) {
	t.Parallel()

	c := mustClassifier(t)
	cases := []struct {
		name    string
		in      string
		script  script.Script
		lang    Language
		minConf float64
		maxConf float64
	}{
		{
			name:   "exact hindi markers",
			in:     "office mein bahut kaam hai aaj",
			script: script.Latin, lang: Hinglish, minConf: 0.5, maxConf: 1.0,
		},
		{
			name:   "plain english",
			in:     "the meeting is at 5 pm today",
			script: script.Latin, lang: English, minConf: 0.5, maxConf: 1.0,
		},
		{
			name:   "devanagari",
			in:     "मुझे बहुत नींद आ रही है",
			script: script.Devanagari, lang: Hindi, minConf: 0.9, maxConf: 0.95,
		},
		{
			name:   "too short to call",
			in:     "ok",
			script: script.Latin, lang: Unknown, minConf: 0.0, maxConf: 0.3,
		},
		{
			name:   "fuzzy recovers misspellings",
			in:     "nhi ja paya office mein, headache tha",
			script: script.Latin, lang: Hinglish, minConf: 0.5, maxConf: 1.0,
		},
		{
			name:   "mixed scripts",
			in:     "mood ठीक नहीं hai today",
			script: script.Mixed, lang: Mixed, minConf: 0.9, maxConf: 0.95,
		},
		{
			name:   "devanagari with latin noise",
			in:     "आज नींद नहीं आई ok",
			script: script.Devanagari, lang: Hindi, minConf: 0.9, maxConf: 0.95,
		},
		{
			name:   "both languages strong",
			in:     "aaj mood bahut low hai and body pain bhi",
			script: script.Latin, lang: Mixed, minConf: 0.9, maxConf: 0.95,
		},
		{
			name:   "grammar pattern carries the call",
			in:     "deadline ki wajah se cancel",
			script: script.Latin, lang: Hinglish, minConf: 0.5, maxConf: 1.0,
		},
		{
			name:   "latin gibberish",
			in:     "zz qq xx vv",
			script: script.Latin, lang: Unknown, minConf: 0.0, maxConf: 0.3,
		},
		{
			name:   "numeric noise",
			in:     "12345 !!!",
			script: script.Other, lang: Unknown, minConf: 0.0, maxConf: 0.0,
		},
		{
			name:   "empty",
			in:     "",
			script: script.Other, lang: Unknown, minConf: 0.0, maxConf: 0.0,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := c.Classify(tc.in)
			if got.Script != tc.script {
				t.Fatalf("script = %q, want %q (evidence %+v)", got.Script, tc.script, got.Evidence)
			}
			if got.Language != tc.lang {
				t.Fatalf("language = %q, want %q (evidence %+v)", got.Language, tc.lang, got.Evidence)
			}
			if got.Confidence < tc.minConf || got.Confidence > tc.maxConf {
				t.Fatalf("confidence = %v, want [%v,%v]", got.Confidence, tc.minConf, tc.maxConf)
			}
		})
	}
}

func TestClassifyEvidence(t *testing.T) {
	t.Parallel()

	c := mustClassifier(t)
	got := c.Classify("nhi ja paya office mein, headache tha")
	if got.Evidence.HiExact != 2 {
		t.Fatalf("hi_exact = %d, want 2 (mein, tha)", got.Evidence.HiExact)
	}
	if got.Evidence.HiFuzzy != 3 {
		t.Fatalf("hi_fuzzy = %d, want 3 (nhi, ja, paya): %+v", got.Evidence.HiFuzzy, got.Evidence.Fuzzy)
	}
	found := false
	for _, m := range got.Evidence.Fuzzy {
		if m.Token == "nhi" && m.Entry == "nahi" && m.Distance == 1 {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected nhi->nahi in fuzzy evidence, got %+v", got.Evidence.Fuzzy)
	}

	got = c.Classify("deadline ki wajah se cancel")
	if got.Evidence.Patterns < 3 {
		t.Fatalf("patterns = %d, want >= 3: %v", got.Evidence.Patterns, got.Evidence.PatternHits)
	}
}

func TestRuleOrder(t *testing.T) {
	t.Parallel()

	c := mustClassifier(t)

	// a single English hit must not pull a marker-bearing text to english
	got := c.Classify("tired ho gaya yaar")
	if got.Language != Hinglish {
		t.Fatalf("language = %q, want hinglish (rule %q)", got.Language, got.Evidence.Rule)
	}

	// two strong sides go mixed before hinglish gets a look
	got = c.Classify("aaj mood bahut low hai and body pain bhi")
	if got.Language != Mixed || got.Evidence.Rule != "both-languages" {
		t.Fatalf("got %q via %q, want mixed via both-languages", got.Language, got.Evidence.Rule)
	}

	// short hitless scales with token count
	one := c.Classify("zz")
	two := c.Classify("zz qq")
	if one.Language != Unknown || two.Language != Unknown {
		t.Fatalf("want unknown for hitless shorts")
	}
	if !(one.Confidence < two.Confidence) {
		t.Fatalf("confidence should grow with tokens: %v then %v", one.Confidence, two.Confidence)
	}
}

func TestHinglishMonotone(t *testing.T) {
	t.Parallel()

	c := mustClassifier(t)
	chain := []string{
		"skipped gym because thakan",
		"skipped gym because thakan aur",
		"skipped gym because thakan aur dard",
	}
	prev := -1.0
	for _, in := range chain {
		got := c.Classify(in)
		if got.Language != Hinglish {
			t.Fatalf("Classify(%q) = %q, want hinglish", in, got.Language)
		}
		if got.Confidence < prev {
			t.Fatalf("confidence dropped to %v for %q", got.Confidence, in)
		}
		prev = got.Confidence
	}
}

func TestClassifyTotalAndLegal(t *testing.T) {
	t.Parallel()

	c := mustClassifier(t)
	inputs := []string{
		"", " ", "\t\n", "!!!", "12345", "ॐ",
		"안녕하세요 반갑습니다", "مرحبا بالعالم",
		"a", "ok", "k k k k k k k k k k",
		"café déjà vu", "ＨＡＩ ｙａａｒ",
		"na‍hi ho‌ga", "\ufeffaaj kal",
		"मैं ठीक हूँ", "aaj मौसम अच्छा hai bohot",
		string([]byte{0xff, 0xfe, 'h', 'i'}),
	}
	for _, in := range inputs {
		got := c.Classify(in)
		if got.Confidence < 0 || got.Confidence > 1 {
			t.Fatalf("Classify(%q) confidence %v out of range", in, got.Confidence)
		}
		if !got.Script.Valid() || !got.Language.Valid() {
			t.Fatalf("Classify(%q) emitted %q/%q", in, got.Script, got.Language)
		}
		if got.Script == script.Devanagari && got.Language != Hindi {
			t.Fatalf("devanagari script must yield hindi, got %q for %q", got.Language, in)
		}
		if got.Script == script.Mixed && got.Language != Mixed {
			t.Fatalf("mixed script must yield mixed, got %q for %q", got.Language, in)
		}
	}
}

func TestClassifyDeterministic(t *testing.T) {
	t.Parallel()

	c := mustClassifier(t)
	const in = "kal raat nhi so paya, stress ki wajah se"
	want := c.Classify(in)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				got := c.Classify(in)
				if got.Script != want.Script || got.Language != want.Language || got.Confidence != want.Confidence {
					t.Errorf("diverged: %+v vs %+v", got, want)
					return
				}
			}
		}()
	}
	wg.Wait()
}
