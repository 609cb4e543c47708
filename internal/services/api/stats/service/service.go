// Package service contains stats workflows
package service

import (
	"context"
	"fmt"

	"lipi/internal/modkit/repokit"
	"lipi/internal/services/api/stats/domain"
	"lipi/internal/services/api/stats/repo"
)

// DefaultCeiling applies when the caller leaves the low-confidence ceiling unset
const DefaultCeiling = 0.5

// Service defines the stats service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the stats service
type Svc struct {
	Repo   repo.Repo
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner
}

// New constructs a stats service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo]) *Svc {
	if db == nil {
		panic("stats.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("stats.Service requires a non nil Repo binder")
	}
	return &Svc{Repo: binder.Bind(db), binder: binder, db: db}
}

// ByLanguage returns the language distribution for a day range
func (s *Svc) ByLanguage(ctx context.Context, in domain.ByLanguageInput) ([]domain.ByLanguageRow, error) {
	rows, err := s.Repo.ByLanguage(ctx, in.Range.Start, in.Range.End, in.Source)
	if err != nil {
		return nil, err
	}
	out := make([]domain.ByLanguageRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, domain.ByLanguageRow{
			Language:      r.Language,
			Entries:       r.Entries,
			AvgConfidence: r.AvgConfidence,
		})
	}
	return out, nil
}

// Daily returns entry volume per day and language
func (s *Svc) Daily(ctx context.Context, in domain.DailyInput) ([]domain.DailyRow, error) {
	rows, err := s.Repo.Daily(ctx, in.Range.Start, in.Range.End, in.Language)
	if err != nil {
		return nil, err
	}
	out := make([]domain.DailyRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, domain.DailyRow{Day: r.Day, Language: r.Language, Entries: r.Entries})
	}
	return out, nil
}

// Confidence returns the confidence histogram in 0.1-wide buckets
func (s *Svc) Confidence(ctx context.Context, in domain.ConfidenceInput) ([]domain.ConfidenceRow, error) {
	rows, err := s.Repo.Confidence(ctx, in.Range.Start, in.Range.End, in.Language)
	if err != nil {
		return nil, err
	}
	out := make([]domain.ConfidenceRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, domain.ConfidenceRow{Bucket: bucketLabel(r.Bucket), Entries: r.Entries})
	}
	return out, nil
}

// LowConfidence counts entries whose newest result sits under the ceiling
func (s *Svc) LowConfidence(
	ctx context.Context,
	in domain.LowConfidenceInput,
) (domain.LowConfidenceResponse, error) {
	ceiling := in.Ceiling
	if ceiling <= 0 {
		ceiling = DefaultCeiling
	}
	n, err := s.Repo.LowConfidence(ctx, in.Range.Start, in.Range.End, in.Language, ceiling)
	if err != nil {
		return domain.LowConfidenceResponse{}, err
	}
	return domain.LowConfidenceResponse{Ceiling: ceiling, Entries: n}, nil
}

// bucketLabel renders a 1-based width_bucket index as its 0.1-wide range.
// Bucket 11 catches confidence exactly 1.0 and folds into the top range
func bucketLabel(b int) string {
	if b < 1 {
		b = 1
	}
	if b > 10 {
		b = 10
	}
	lo := float64(b-1) / 10
	hi := float64(b) / 10
	return fmt.Sprintf("%.1f-%.1f", lo, hi)
}
