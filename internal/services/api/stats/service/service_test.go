package service

import (
	"context"
	"testing"

	"lipi/internal/modkit/repokit"
	"lipi/internal/platform/store"
	"lipi/internal/services/api/stats/domain"
	"lipi/internal/services/api/stats/repo"
)

type fakeRepo struct {
	confidence []repo.RowConfidence
	lowCeiling float64
}

func (f *fakeRepo) ByLanguage(context.Context, string, string, string) ([]repo.RowByLanguage, error) {
	return nil, nil
}

func (f *fakeRepo) Daily(context.Context, string, string, string) ([]repo.RowDaily, error) {
	return nil, nil
}

func (f *fakeRepo) Confidence(context.Context, string, string, string) ([]repo.RowConfidence, error) {
	return f.confidence, nil
}

func (f *fakeRepo) LowConfidence(_ context.Context, _, _, _ string, ceiling float64) (int64, error) {
	f.lowCeiling = ceiling
	return 17, nil
}

type fakeTx struct{}

func (fakeTx) Tx(ctx context.Context, fn func(q store.RowQuerier) error) error { return fn(nil) }
func (fakeTx) Exec(context.Context, string, ...any) (store.CommandTag, error) {
	return nil, nil
}
func (fakeTx) Query(context.Context, string, ...any) (store.Rows, error) { return nil, nil }
func (fakeTx) QueryRow(context.Context, string, ...any) store.Row       { return nil }

func newSvc(f *fakeRepo) *Svc {
	binder := repokit.BindFunc[repo.Repo](func(repokit.Queryer) repo.Repo { return f })
	return New(fakeTx{}, binder)
}

func TestConfidenceBucketLabels(t *testing.T) {
	f := &fakeRepo{confidence: []repo.RowConfidence{
		{Bucket: 1, Entries: 2},
		{Bucket: 9, Entries: 5},
		{Bucket: 11, Entries: 1}, // confidence exactly 1.0
	}}
	rows, err := newSvc(f).Confidence(context.Background(), domain.ConfidenceInput{})
	if err != nil {
		t.Fatalf("Confidence: %v", err)
	}
	want := []string{"0.0-0.1", "0.8-0.9", "0.9-1.0"}
	for i, w := range want {
		if rows[i].Bucket != w {
			t.Fatalf("bucket[%d] = %q want %q", i, rows[i].Bucket, w)
		}
	}
}

func TestLowConfidenceDefaultCeiling(t *testing.T) {
	f := &fakeRepo{}
	resp, err := newSvc(f).LowConfidence(context.Background(), domain.LowConfidenceInput{})
	if err != nil {
		t.Fatalf("LowConfidence: %v", err)
	}
	if f.lowCeiling != DefaultCeiling || resp.Ceiling != DefaultCeiling {
		t.Fatalf("ceiling = %v / %v", f.lowCeiling, resp.Ceiling)
	}
	if resp.Entries != 17 {
		t.Fatalf("entries = %d", resp.Entries)
	}
}
