// Package service provides the entries service implementation
package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"lipi/internal/core/normalize"
	"lipi/internal/modkit/repokit"
	perrs "lipi/internal/platform/errors"
	"lipi/internal/services/entries/domain"
	"lipi/internal/services/entries/repo"
)

// Config for the entries service
type Config struct {
	// HardLimit is the maximum allowed limit per page; defaults to 5000 if <=0
	HardLimit int
	// MaxTextBytes rejects absurdly large submissions; defaults to 16 KiB
	MaxTextBytes int
}

// Service implements domain.ReaderPort and domain.WriterPort
type Service struct {
	DB     repokit.TxRunner
	Binder repokit.Binder[repo.Storage]
	Cfg    Config
}

// New constructs a new entries service
func New(db repokit.TxRunner, b repokit.Binder[repo.Storage], cfg Config) *Service {
	if cfg.HardLimit <= 0 {
		cfg.HardLimit = 5000
	}
	if cfg.MaxTextBytes <= 0 {
		cfg.MaxTextBytes = 16 << 10
	}
	return &Service{DB: db, Binder: b, Cfg: cfg}
}

// Insert implements domain.WriterPort
func (s *Service) Insert(ctx context.Context, in domain.NewEntry) (domain.Entry, error) {
	out, err := s.InsertBatch(ctx, []domain.NewEntry{in})
	if err != nil {
		return domain.Entry{}, err
	}
	return out[0], nil
}

// InsertBatch implements domain.WriterPort. Every row is validated and
// normalized before anything is written, so a bad row fails the whole batch
// up front instead of half-applying it
func (s *Service) InsertBatch(ctx context.Context, in []domain.NewEntry) ([]domain.Entry, error) {
	if len(in) == 0 {
		return nil, nil
	}
	now := time.Now().UTC()
	rows := make([]domain.Entry, 0, len(in))
	for i, ne := range in {
		if ne.Text == "" {
			return nil, perrs.InvalidArgf("entry %d: empty text", i)
		}
		if len(ne.Text) > s.Cfg.MaxTextBytes {
			return nil, perrs.InvalidArgf("entry %d: text exceeds %d bytes", i, s.Cfg.MaxTextBytes)
		}
		id := ne.ID
		if id == "" {
			id = uuid.NewString()
		} else if _, err := uuid.Parse(id); err != nil {
			return nil, perrs.InvalidArgf("entry %d: bad id %q", i, ne.ID)
		}
		createdAt := ne.CreatedAt
		if createdAt.IsZero() {
			createdAt = now
		}
		source := ne.Source
		if source == "" {
			source = "api"
		}
		rows = append(rows, domain.Entry{
			ID:        id,
			UserID:    ne.UserID,
			Text:      ne.Text,
			TextNorm:  normalize.Fold(ne.Text),
			Source:    source,
			CreatedAt: createdAt.UTC(),
		})
	}

	err := s.DB.Tx(ctx, func(q repokit.Queryer) error {
		return s.Binder.Bind(q).InsertBatch(ctx, rows)
	})
	if err != nil {
		// SQLSTATE picks the code and the constraint names the field, so a
		// user_id FK miss comes back as invalid input on "user_id" rather
		// than an opaque DB error
		return nil, perrs.FromPostgresWithField(err, "insert entries")
	}
	return rows, nil
}

// List implements domain.ReaderPort
func (s *Service) List(ctx context.Context, in domain.ListInput) ([]domain.Entry, domain.AfterKey, error) {
	limit := in.Limit
	if limit <= 0 || limit > s.Cfg.HardLimit {
		limit = s.Cfg.HardLimit
	}

	var rows []domain.Entry
	var next domain.AfterKey
	err := s.DB.Tx(ctx, func(q repokit.Queryer) error {
		var err error
		rows, next, err = s.Binder.Bind(q).List(ctx, in, limit)
		return err
	})
	if err != nil {
		return nil, domain.AfterKey{}, err
	}
	return rows, next, nil
}

// Get implements domain.ReaderPort
func (s *Service) Get(ctx context.Context, id string) (domain.Entry, error) {
	if _, err := uuid.Parse(id); err != nil {
		return domain.Entry{}, perrs.InvalidArgf("bad entry id %q", id)
	}
	var e domain.Entry
	err := s.DB.Tx(ctx, func(q repokit.Queryer) error {
		var err error
		e, err = s.Binder.Bind(q).Get(ctx, id)
		return err
	})
	return e, err
}

// ListPending implements domain.ReaderPort
func (s *Service) ListPending(ctx context.Context, in domain.PendingInput) ([]domain.Entry, domain.AfterKey, error) {
	limit := in.Limit
	if limit <= 0 || limit > s.Cfg.HardLimit {
		limit = s.Cfg.HardLimit
	}

	var rows []domain.Entry
	var next domain.AfterKey
	err := s.DB.Tx(ctx, func(q repokit.Queryer) error {
		var err error
		rows, next, err = s.Binder.Bind(q).ListPending(ctx, in, limit)
		return err
	})
	if err != nil {
		return nil, domain.AfterKey{}, err
	}
	return rows, next, nil
}
