// Package service contains entries API workflows
package service

import (
	"context"
	"encoding/json"
	"time"

	"lipi/internal/core/classifier"
	"lipi/internal/modkit/repokit"
	"lipi/internal/platform/logger"
	"lipi/internal/services/api/entries/domain"
	"lipi/internal/services/api/entries/repo"
	clsdom "lipi/internal/services/classify/domain"
	entdom "lipi/internal/services/entries/domain"
	resdom "lipi/internal/services/results/domain"
)

// Service defines the service contract for the entries API
type Service interface{ domain.ServicePort }

// Svc implements the Service interface
type Svc struct {
	Repo    repo.Repo
	Entries entdom.WriterPort
	Results resdom.WriterPort
	Cls     clsdom.ClassifyPort
	Sink    clsdom.EventSink // optional; publishes result events when wired
	Version int

	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner
}

// New creates a new entries API service
func New(
	db repokit.TxRunner,
	binder repokit.Binder[repo.Repo],
	entries entdom.WriterPort,
	results resdom.WriterPort,
	cls clsdom.ClassifyPort,
	version int,
) *Svc {
	if db == nil {
		panic("entries.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("entries.Service requires a non nil Repo binder")
	}
	if entries == nil || results == nil || cls == nil {
		panic("entries.Service requires entries, results, and classifier ports")
	}
	if version <= 0 {
		version = classifier.Version
	}
	return &Svc{
		Repo:    binder.Bind(db),
		Entries: entries,
		Results: results,
		Cls:     cls,
		Version: version,
		binder:  binder,
		db:      db,
	}
}

// Submit stores one entry, classifies it inline, and returns the verdict
func (s *Svc) Submit(ctx context.Context, in domain.SubmitInput) (domain.SubmitResponse, error) {
	e, err := s.Entries.Insert(ctx, entdom.NewEntry{
		UserID: in.UserID,
		Text:   in.Text,
		Source: "api",
	})
	if err != nil {
		return domain.SubmitResponse{}, err
	}

	res := s.Cls.Classify(ctx, e.TextNorm)
	evidence, _ := json.Marshal(res.Evidence)
	write := resdom.ResultWrite{
		EntryID:         e.ID,
		Script:          string(res.Script),
		Language:        string(res.Language),
		Confidence:      res.Confidence,
		DetectorVersion: s.Version,
		Evidence:        evidence,
		CreatedAt:       e.CreatedAt,
	}
	if err := s.Results.WriteBatch(ctx, []resdom.ResultWrite{write}); err != nil {
		return domain.SubmitResponse{}, err
	}

	// downstream consumers are advisory; a publish failure never fails the submit
	if s.Sink != nil {
		ev := clsdom.ResultEvent{
			EntryID:         e.ID,
			Script:          write.Script,
			Language:        write.Language,
			Confidence:      write.Confidence,
			DetectorVersion: write.DetectorVersion,
		}
		if err := s.Sink.EmitResults(ctx, []clsdom.ResultEvent{ev}); err != nil {
			logger.Named("entries.api").Warn().Err(err).Str("entry_id", e.ID).Msg("result publish failed")
		}
	}

	return domain.SubmitResponse{
		ID:              e.ID,
		Script:          write.Script,
		Language:        write.Language,
		Confidence:      write.Confidence,
		DetectorVersion: write.DetectorVersion,
		CreatedAt:       e.CreatedAt.UTC().Format(time.RFC3339),
	}, nil
}

// Recent lists the newest entries joined to their latest results
func (s *Svc) Recent(ctx context.Context, in domain.RecentInput) ([]domain.RecentRow, error) {
	rows, err := s.Repo.Recent(ctx, in.UserID, in.Language, in.Limit)
	if err != nil {
		return nil, err
	}
	out := make([]domain.RecentRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, domain.RecentRow{
			ID:              r.ID,
			UserID:          r.UserID,
			Text:            r.Text,
			Source:          r.Source,
			Script:          r.Script,
			Language:        r.Language,
			Confidence:      r.Confidence,
			DetectorVersion: r.DetectorVersion,
			CreatedAt:       r.CreatedAt,
		})
	}
	return out, nil
}
