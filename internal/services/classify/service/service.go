// Package service implements the classify service
package service

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"lipi/internal/core/classifier"
	perrs "lipi/internal/platform/errors"
	"lipi/internal/platform/logger"
	"lipi/internal/platform/metrics"
	"lipi/internal/platform/store"
	dom "lipi/internal/services/classify/domain"
	entdom "lipi/internal/services/entries/domain"
	resdom "lipi/internal/services/results/domain"
)

// Config for the classify service
type Config struct {
	Version  int
	Workers  int
	PageSize int
	DryRun   bool
}

// Service implements domain.RunnerPort and domain.ClassifyPort
type Service struct {
	Entries entdom.ReaderPort
	Results resdom.WriterPort
	Cls     *classifier.Classifier
	Cfg     Config

	// optional sinks; nil disables each
	CH      store.Clickhouse
	Sink    dom.EventSink
	Metrics *metrics.Metrics
}

// New constructs a new classify service
func New(entries entdom.ReaderPort, results resdom.WriterPort, cls *classifier.Classifier, cfg Config) *Service {
	if cfg.Workers <= 0 {
		cfg.Workers = 2
	}
	if cfg.PageSize <= 0 {
		cfg.PageSize = 5000
	}
	if cfg.Version <= 0 {
		cfg.Version = classifier.Version
	}
	return &Service{Entries: entries, Results: results, Cls: cls, Cfg: cfg}
}

// Classify implements domain.ClassifyPort
func (s *Service) Classify(_ context.Context, text string) classifier.Result {
	start := time.Now()
	res := s.Cls.Classify(text)
	if s.Metrics != nil {
		s.Metrics.ObserveClassify(string(res.Language), string(res.Script), time.Since(start).Seconds())
	}
	return res
}

// RunBatch pages pending entries, classifies each with a bounded worker
// pool, and batch-writes the results. Pages repeat until the pending set is
// drained; the keyset cursor keeps already-written rows out of later pages
func (s *Service) RunBatch(ctx context.Context, in dom.BatchInput) (dom.Stats, error) {
	log := logger.Named("classify")

	workers := in.Workers
	if workers <= 0 {
		workers = s.Cfg.Workers
	}
	pageSize := in.PageSize
	if pageSize <= 0 {
		pageSize = s.Cfg.PageSize
	}
	dryRun := in.DryRun || s.Cfg.DryRun

	var stats dom.Stats
	after := entdom.AfterKey{}
	for {
		if err := ctx.Err(); err != nil {
			return stats, err
		}

		rows, next, err := s.Entries.ListPending(ctx, entdom.PendingInput{
			Version: s.Cfg.Version,
			Stale:   in.Stale,
			After:   after,
			Limit:   pageSize,
		})
		if err != nil {
			return stats, err
		}
		if len(rows) == 0 {
			log.Info().
				Int("scanned", stats.Scanned).
				Int("written", stats.Written).
				Int("skipped", stats.Skipped).
				Bool("dry_run", dryRun).
				Msg("batch complete")
			return stats, nil
		}

		out := make([]resdom.ResultWrite, len(rows))
		skipped := make([]bool, len(rows))

		sem := make(chan struct{}, workers)
		wg := sync.WaitGroup{}
		for i := range rows {
			wg.Add(1)
			sem <- struct{}{}
			go func(i int) {
				defer func() { <-sem; wg.Done() }()
				e := rows[i]
				text := e.TextNorm
				if text == "" {
					text = e.Text
				}
				if text == "" {
					skipped[i] = true
					return
				}
				out[i] = s.resultFor(ctx, e.ID, text)
			}(i)
		}
		wg.Wait()

		flat := make([]resdom.ResultWrite, 0, len(rows))
		for i := range out {
			if skipped[i] {
				stats.Skipped++
				continue
			}
			flat = append(flat, out[i])
		}
		stats.Scanned += len(rows)

		if !dryRun && len(flat) > 0 {
			err := s.Results.WriteBatch(ctx, flat)
			if err != nil && perrs.IsRetryable(err) {
				// one retry on serialization/deadlock contention; the write
				// is idempotent per (entry_id, detector_version)
				log.Warn().Err(err).Int("count", len(flat)).Msg("retrying result write")
				err = s.Results.WriteBatch(ctx, flat)
			}
			if err != nil {
				return stats, err
			}
			stats.Written += len(flat)
			if s.Metrics != nil {
				s.Metrics.ResultsWrittenTotal.Add(float64(len(flat)))
			}
			s.fanOut(ctx, flat)
		}

		after = next
	}
}

// resultFor classifies one text and shapes the persistable row
func (s *Service) resultFor(ctx context.Context, entryID, text string) resdom.ResultWrite {
	res := s.Classify(ctx, text)
	evidence, _ := json.Marshal(res.Evidence)
	return resdom.ResultWrite{
		EntryID:         entryID,
		Script:          string(res.Script),
		Language:        string(res.Language),
		Confidence:      res.Confidence,
		DetectorVersion: s.Cfg.Version,
		Evidence:        evidence,
		CreatedAt:       time.Now().UTC(),
	}
}

// fanOut feeds the optional analytics and event sinks, best effort. Result
// rows are already durable in Postgres at this point, so sink failures log
// and move on
func (s *Service) fanOut(ctx context.Context, flat []resdom.ResultWrite) {
	log := logger.Named("classify")

	if s.CH != nil {
		events := make([]chEvent, 0, len(flat))
		for _, r := range flat {
			events = append(events, chEvent{
				EntryID:         r.EntryID,
				Script:          r.Script,
				Language:        r.Language,
				Confidence:      r.Confidence,
				DetectorVersion: r.DetectorVersion,
				CreatedAt:       r.CreatedAt,
			})
		}
		if err := s.CH.Insert(ctx, "classify_events", events); err != nil {
			log.Error().Err(err).Int("count", len(events)).Msg("clickhouse insert failed")
		}
	}

	if s.Sink != nil {
		events := make([]dom.ResultEvent, 0, len(flat))
		for _, r := range flat {
			events = append(events, dom.ResultEvent{
				EntryID:         r.EntryID,
				Script:          r.Script,
				Language:        r.Language,
				Confidence:      r.Confidence,
				DetectorVersion: r.DetectorVersion,
			})
		}
		if err := s.Sink.EmitResults(ctx, events); err != nil {
			log.Error().Err(err).Int("count", len(events)).Msg("result emit failed")
		}
	}
}

// chEvent mirrors the classify_events ClickHouse table
type chEvent struct {
	EntryID         string    `ch:"entry_id"`
	Script          string    `ch:"script"`
	Language        string    `ch:"language"`
	Confidence      float64   `ch:"confidence"`
	DetectorVersion int       `ch:"detector_version"`
	CreatedAt       time.Time `ch:"created_at"`
}
