// Package service implements the backfill JSONL import
package service

import (
	"context"
	"encoding/json"
	"errors"
	"io"

	"lipi/internal/core/classifier"
	"lipi/internal/platform/logger"
	"lipi/internal/services/backfill/domain"
	"lipi/internal/services/backfill/ingest"
	clsdom "lipi/internal/services/classify/domain"
	entdom "lipi/internal/services/entries/domain"
	resdom "lipi/internal/services/results/domain"
)

// Config for the backfill service
type Config struct {
	BatchSize int
	Version   int // detector version stamped when classify is enabled
	Gzip      bool
}

// Service implements domain.RunnerPort
type Service struct {
	Entries    entdom.WriterPort
	Results    resdom.WriterPort  // required when RunInput.Classify
	Classifier clsdom.ClassifyPort // required when RunInput.Classify
	Cfg        Config
}

// New constructs a new backfill service
func New(entries entdom.WriterPort, cfg Config) *Service {
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 500
	}
	if cfg.Version <= 0 {
		cfg.Version = classifier.Version
	}
	return &Service{Entries: entries, Cfg: cfg}
}

// Run implements domain.RunnerPort
func (s *Service) Run(
	ctx context.Context,
	in io.Reader,
	echo io.Writer,
	opts domain.RunInput,
) (domain.Report, error) {
	log := logger.Named("backfill")

	if opts.Classify && (s.Results == nil || s.Classifier == nil) {
		return domain.Report{}, errors.New("backfill: classify requested without classifier wiring")
	}

	rd, err := ingest.NewReader(io.NopCloser(in), s.Cfg.Gzip)
	if err != nil {
		return domain.Report{}, err
	}
	defer func() { _ = rd.Close() }()

	var report domain.Report
	var enc *json.Encoder
	if echo != nil {
		enc = json.NewEncoder(echo)
	}

	batch := make([]domain.Record, 0, s.Cfg.BatchSize)
	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		n, err := s.importBatch(ctx, batch, enc, opts)
		if err != nil {
			return err
		}
		report.Imported += len(batch)
		report.Classified += n
		batch = batch[:0]
		return nil
	}

	for {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		rec, err := rd.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return report, err
		}
		batch = append(batch, rec)
		if len(batch) >= s.Cfg.BatchSize {
			if err := flush(); err != nil {
				return report, err
			}
		}
	}
	if err := flush(); err != nil {
		return report, err
	}

	report.Lines, report.Malformed = rd.Stats()
	log.Info().
		Int("lines", report.Lines).
		Int("imported", report.Imported).
		Int("malformed", report.Malformed).
		Int("classified", report.Classified).
		Bool("dry_run", opts.DryRun).
		Msg("import complete")
	return report, nil
}

// importBatch inserts one batch and optionally classifies it inline.
// Returns the number of results written
func (s *Service) importBatch(
	ctx context.Context,
	batch []domain.Record,
	enc *json.Encoder,
	opts domain.RunInput,
) (int, error) {
	news := make([]entdom.NewEntry, 0, len(batch))
	for _, rec := range batch {
		news = append(news, entdom.NewEntry{
			ID:        rec.ID,
			UserID:    rec.UserID,
			Text:      rec.Text,
			Source:    "import",
			CreatedAt: rec.CreatedAt,
		})
	}

	var entries []entdom.Entry
	if opts.DryRun {
		// validation-only pass keeps the same code path shape
		for _, ne := range news {
			entries = append(entries, entdom.Entry{ID: ne.ID, Text: ne.Text, TextNorm: ne.Text})
		}
	} else {
		var err error
		entries, err = s.Entries.InsertBatch(ctx, news)
		if err != nil {
			return 0, err
		}
	}

	if !opts.Classify {
		return 0, nil
	}

	writes := make([]resdom.ResultWrite, 0, len(entries))
	for _, e := range entries {
		res := s.Classifier.Classify(ctx, e.TextNorm)
		evidence, _ := json.Marshal(res.Evidence)
		writes = append(writes, resdom.ResultWrite{
			EntryID:         e.ID,
			Script:          string(res.Script),
			Language:        string(res.Language),
			Confidence:      res.Confidence,
			DetectorVersion: s.Cfg.Version,
			Evidence:        evidence,
			CreatedAt:       e.CreatedAt,
		})
		if enc != nil {
			if err := enc.Encode(domain.Echo{
				ID:              e.ID,
				Script:          string(res.Script),
				Language:        string(res.Language),
				Confidence:      res.Confidence,
				DetectorVersion: s.Cfg.Version,
			}); err != nil {
				return 0, err
			}
		}
	}
	if opts.DryRun {
		return 0, nil
	}
	if err := s.Results.WriteBatch(ctx, writes); err != nil {
		return 0, err
	}
	return len(writes), nil
}
