package service

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"lipi/internal/core/classifier"
	"lipi/internal/core/lexicon"
	"lipi/internal/core/normalize"
	"lipi/internal/services/backfill/domain"
	entdom "lipi/internal/services/entries/domain"
	resdom "lipi/internal/services/results/domain"
)

type fakeEntries struct {
	inserted []entdom.Entry
}

func (f *fakeEntries) Insert(ctx context.Context, in entdom.NewEntry) (entdom.Entry, error) {
	out, err := f.InsertBatch(ctx, []entdom.NewEntry{in})
	if err != nil {
		return entdom.Entry{}, err
	}
	return out[0], nil
}

func (f *fakeEntries) InsertBatch(_ context.Context, in []entdom.NewEntry) ([]entdom.Entry, error) {
	out := make([]entdom.Entry, 0, len(in))
	for _, ne := range in {
		e := entdom.Entry{
			ID:        ne.ID,
			UserID:    ne.UserID,
			Text:      ne.Text,
			TextNorm:  normalize.Fold(ne.Text),
			Source:    ne.Source,
			CreatedAt: ne.CreatedAt,
		}
		out = append(out, e)
	}
	f.inserted = append(f.inserted, out...)
	return out, nil
}

type fakeResults struct {
	rows []resdom.ResultWrite
}

func (f *fakeResults) WriteBatch(_ context.Context, in []resdom.ResultWrite) error {
	f.rows = append(f.rows, in...)
	return nil
}

type coreClassifier struct{ c *classifier.Classifier }

func (cc coreClassifier) Classify(_ context.Context, text string) classifier.Result {
	return cc.c.Classify(text)
}

func mustClassifier(t *testing.T) coreClassifier {
	t.Helper()
	pack, err := lexicon.Load()
	if err != nil {
		t.Fatalf("lexicon.Load: %v", err)
	}
	return coreClassifier{c: classifier.New(pack)}
}

const importLines = `{"id":"00000000-0000-0000-0000-000000000001","text":"kal office jana hai"}
{"id":"00000000-0000-0000-0000-000000000002","text":"feeling good today"}
{garbage line}
{"id":"00000000-0000-0000-0000-000000000003","text":"आज बहुत खुश हूं"}
`

func TestRunImportsAndClassifies(t *testing.T) {
	entries := &fakeEntries{}
	results := &fakeResults{}
	svc := New(entries, Config{BatchSize: 2, Version: 4})
	svc.Results = results
	svc.Classifier = mustClassifier(t)

	var echo bytes.Buffer
	report, err := svc.Run(
		context.Background(),
		strings.NewReader(importLines),
		&echo,
		domain.RunInput{Classify: true},
	)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if report.Imported != 3 || report.Classified != 3 || report.Malformed != 1 {
		t.Fatalf("report = %+v", report)
	}
	if len(entries.inserted) != 3 || len(results.rows) != 3 {
		t.Fatalf("wrote %d entries, %d results", len(entries.inserted), len(results.rows))
	}
	for _, e := range entries.inserted {
		if e.Source != "import" {
			t.Fatalf("source = %q", e.Source)
		}
	}
	if results.rows[0].Language != "hinglish" || results.rows[0].DetectorVersion != 4 {
		t.Fatalf("first result = %+v", results.rows[0])
	}
	if results.rows[2].Language != "hindi" {
		t.Fatalf("devanagari result = %+v", results.rows[2])
	}
	if got := strings.Count(echo.String(), "\n"); got != 3 {
		t.Fatalf("echoed %d lines", got)
	}
}

func TestRunDryRunWritesNothing(t *testing.T) {
	entries := &fakeEntries{}
	results := &fakeResults{}
	svc := New(entries, Config{})
	svc.Results = results
	svc.Classifier = mustClassifier(t)

	report, err := svc.Run(
		context.Background(),
		strings.NewReader(importLines),
		nil,
		domain.RunInput{Classify: true, DryRun: true},
	)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if report.Imported != 3 {
		t.Fatalf("report = %+v", report)
	}
	if len(entries.inserted) != 0 || len(results.rows) != 0 {
		t.Fatalf("dry run wrote %d entries, %d results", len(entries.inserted), len(results.rows))
	}
}

func TestRunClassifyRequiresWiring(t *testing.T) {
	svc := New(&fakeEntries{}, Config{})
	_, err := svc.Run(
		context.Background(),
		strings.NewReader(importLines),
		nil,
		domain.RunInput{Classify: true},
	)
	if err == nil {
		t.Fatal("expected wiring error")
	}
}
