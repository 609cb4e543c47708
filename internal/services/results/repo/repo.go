// Package repo provides the results repository implementation.
package repo

import (
	"context"
	"fmt"
	"strings"

	"lipi/internal/modkit/repokit"
	"lipi/internal/platform/store"
	"lipi/internal/services/results/domain"
)

type (
	pg     struct{ q repokit.Queryer }
	binder struct{}
)

// NewPG constructs a new repo binder for Postgres
func NewPG() repokit.Binder[Storage] { return binder{} }

// Bind implements repokit.Binder
func (binder) Bind(q repokit.Queryer) Storage { return &pg{q: q} }

// Storage defines the results repository
type Storage interface {
	WriteBatch(ctx context.Context, xs []domain.ResultWrite) error
	Latest(ctx context.Context, entryID string) (domain.Row, error)
	ListLowConfidence(
		ctx context.Context,
		in domain.LowConfidenceInput,
		limit int,
	) ([]domain.Row, domain.AfterKey, error)
}

// WriteBatch implements Storage. Idempotent per (entry_id, detector_version)
func (s *pg) WriteBatch(ctx context.Context, xs []domain.ResultWrite) error {
	if len(xs) == 0 {
		return nil
	}

	var sb strings.Builder
	sb.WriteString(`INSERT INTO results
		(entry_id, script, language, confidence, detector_version, evidence, created_at) VALUES `)

	args := make([]any, 0, len(xs)*7)
	for i, r := range xs {
		if i > 0 {
			sb.WriteByte(',')
		}
		base := i*7 + 1
		fmt.Fprintf(&sb, "($%d::uuid,$%d,$%d,$%d,$%d,$%d,$%d)",
			base, base+1, base+2, base+3, base+4, base+5, base+6)

		args = append(args,
			r.EntryID, r.Script, r.Language, r.Confidence,
			r.DetectorVersion, []byte(r.Evidence), r.CreatedAt,
		)
	}
	sb.WriteString(` ON CONFLICT (entry_id, detector_version) DO NOTHING`)
	_, err := store.Exec(ctx, s.q, sb.String(), args...)
	return err
}

// Latest implements Storage. An entry with no result yields ErrNotFound
func (s *pg) Latest(ctx context.Context, entryID string) (domain.Row, error) {
	const q = `
		SELECT r.entry_id::text, r.script, r.language, r.confidence,
			r.detector_version, COALESCE(r.evidence, 'null'::jsonb), r.created_at
		FROM results r
		WHERE r.entry_id = $1::uuid
		ORDER BY r.detector_version DESC
		LIMIT 1`
	return store.One(ctx, s.q, scanRow, q, entryID)
}

// ListLowConfidence implements Storage. Only the newest result per entry is
// considered; superseded versions are not review candidates
func (s *pg) ListLowConfidence(
	ctx context.Context,
	in domain.LowConfidenceInput,
	limit int,
) ([]domain.Row, domain.AfterKey, error) {
	var sb strings.Builder
	var args []any
	arg := func(v any) string { args = append(args, v); return fmt.Sprintf("$%d", len(args)) }

	sb.WriteString(`
		SELECT r.entry_id::text, r.script, r.language, r.confidence,
			r.detector_version, COALESCE(r.evidence, 'null'::jsonb), r.created_at
		FROM results r
		WHERE r.confidence < ` + arg(in.Ceiling) + `
			AND r.detector_version = (
				SELECT max(r2.detector_version) FROM results r2 WHERE r2.entry_id = r.entry_id
			)
	`)
	if in.Language != "" {
		sb.WriteString("  AND r.language = " + arg(in.Language) + "\n")
	}
	if in.After.EntryID != "" {
		sb.WriteString(
			"  AND (r.created_at, r.entry_id) > (" +
				arg(in.After.CreatedAt) + ", " +
				arg(in.After.EntryID) + "::uuid)\n",
		)
	}
	sb.WriteString("ORDER BY r.created_at, r.entry_id\nLIMIT " + arg(limit))

	out, err := store.Many(ctx, s.q, scanRow, sb.String(), args...)
	if err != nil {
		return nil, domain.AfterKey{}, err
	}
	if out == nil {
		out = []domain.Row{}
	}
	var last domain.AfterKey
	if n := len(out); n > 0 {
		last = domain.AfterKey{CreatedAt: out[n-1].CreatedAt, EntryID: out[n-1].EntryID}
	}
	return out, last, nil
}

func scanRow(r store.Row) (domain.Row, error) {
	var row domain.Row
	err := r.Scan(
		&row.EntryID, &row.Script, &row.Language, &row.Confidence,
		&row.DetectorVersion, &row.Evidence, &row.CreatedAt,
	)
	return row, err
}
