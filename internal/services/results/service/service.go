// Package service provides the results service implementation
package service

import (
	"context"

	"lipi/internal/modkit/repokit"
	perrs "lipi/internal/platform/errors"
	dom "lipi/internal/services/results/domain"
	"lipi/internal/services/results/repo"
)

// Config for the results service
type Config struct {
	HardLimit      int
	DefaultCeiling float64
}

// Service implements domain.WriterPort and domain.QueryPort
type Service struct {
	DB     repokit.TxRunner
	Binder repokit.Binder[repo.Storage]
	Cfg    Config
}

// New constructs a new results service
func New(db repokit.TxRunner, b repokit.Binder[repo.Storage], cfg Config) *Service {
	if cfg.HardLimit <= 0 {
		cfg.HardLimit = 500
	}
	if cfg.DefaultCeiling <= 0 {
		cfg.DefaultCeiling = 0.5
	}
	return &Service{DB: db, Binder: b, Cfg: cfg}
}

// WriteBatch implements domain.WriterPort
func (s *Service) WriteBatch(ctx context.Context, xs []dom.ResultWrite) error {
	if len(xs) == 0 {
		return nil
	}
	err := s.DB.Tx(ctx, func(q repokit.Queryer) error {
		return s.Binder.Bind(q).WriteBatch(ctx, xs)
	})
	if err != nil {
		// SQLSTATE decides the code: a missing entry_id surfaces as an FK
		// violation, not a generic DB error
		return perrs.FromPostgres(err, "write results")
	}
	return nil
}

// Latest implements domain.QueryPort
func (s *Service) Latest(ctx context.Context, entryID string) (dom.Row, error) {
	var row dom.Row
	err := s.DB.Tx(ctx, func(q repokit.Queryer) error {
		var err error
		row, err = s.Binder.Bind(q).Latest(ctx, entryID)
		return err
	})
	return row, err
}

// ListLowConfidence implements domain.QueryPort
func (s *Service) ListLowConfidence(
	ctx context.Context,
	in dom.LowConfidenceInput,
) ([]dom.Row, dom.AfterKey, error) {
	if in.Ceiling <= 0 || in.Ceiling > 1 {
		in.Ceiling = s.Cfg.DefaultCeiling
	}
	limit := in.Limit
	if limit <= 0 || limit > s.Cfg.HardLimit {
		limit = s.Cfg.HardLimit
	}

	var rows []dom.Row
	var next dom.AfterKey
	err := s.DB.Tx(ctx, func(q repokit.Queryer) error {
		var err error
		rows, next, err = s.Binder.Bind(q).ListLowConfidence(ctx, in, limit)
		return err
	})
	if err != nil {
		return nil, dom.AfterKey{}, err
	}
	return rows, next, nil
}
