// Package repo provides repository implementations for entries
package repo

import (
	"context"
	"fmt"
	"strings"

	"lipi/internal/modkit/repokit"
	"lipi/internal/platform/store"
	"lipi/internal/services/entries/domain"
)

type binder struct{}

// NewPG constructs a new repo binder for Postgres
func NewPG() repokit.Binder[Storage] { return binder{} }

// Bind implements repokit.Binder
func (binder) Bind(q repokit.Queryer) Storage { return &pg{q: q} }

// Storage defines the entries repository
type Storage interface {
	InsertBatch(ctx context.Context, xs []domain.Entry) error
	List(ctx context.Context, in domain.ListInput, hardLimit int) ([]domain.Entry, domain.AfterKey, error)
	Get(ctx context.Context, id string) (domain.Entry, error)
	ListPending(ctx context.Context, in domain.PendingInput, hardLimit int) ([]domain.Entry, domain.AfterKey, error)
}

type pg struct{ q repokit.Queryer }

// InsertBatch writes entries in one statement; duplicate ids are skipped
func (s *pg) InsertBatch(ctx context.Context, xs []domain.Entry) error {
	if len(xs) == 0 {
		return nil
	}
	var sb strings.Builder
	sb.WriteString(`INSERT INTO entries
		(id, user_id, text_raw, text_normalized, source, created_at) VALUES `)

	args := make([]any, 0, len(xs)*6)
	for i, e := range xs {
		if i > 0 {
			sb.WriteByte(',')
		}
		base := i*6 + 1
		fmt.Fprintf(&sb, "($%d::uuid,$%d,$%d,$%d,$%d,$%d)",
			base, base+1, base+2, base+3, base+4, base+5)
		args = append(args, e.ID, e.UserID, e.Text, e.TextNorm, e.Source, e.CreatedAt)
	}
	sb.WriteString(` ON CONFLICT (id) DO NOTHING`)
	_, err := store.Exec(ctx, s.q, sb.String(), args...)
	return err
}

// List implements keyset-paged listing ordered by (created_at, id)
func (s *pg) List(ctx context.Context, in domain.ListInput, hardLimit int) ([]domain.Entry, domain.AfterKey, error) {
	var sb strings.Builder
	var args []any
	arg := func(v any) string { args = append(args, v); return fmt.Sprintf("$%d", len(args)) }

	sb.WriteString(`
		SELECT
			e.id::text,
			e.user_id,
			e.text_raw,
			COALESCE(e.text_normalized, '') AS text_norm,
			e.source,
			e.created_at
		FROM entries e
		WHERE TRUE
	`)
	if !in.Since.IsZero() {
		sb.WriteString("  AND e.created_at >= " + arg(in.Since) + "\n")
	}
	if !in.Until.IsZero() {
		sb.WriteString("  AND e.created_at < " + arg(in.Until) + "\n")
	}
	// Keyset only when AfterKey is set (avoid ""::uuid on first page)
	if in.After.ID != "" {
		sb.WriteString("  AND (e.created_at, e.id) > (" + arg(in.After.CreatedAt) + ", " + arg(in.After.ID) + "::uuid)\n")
	}
	if in.UserID != "" {
		sb.WriteString("  AND e.user_id = " + arg(in.UserID) + "\n")
	}
	if in.Source != "" {
		sb.WriteString("  AND e.source = " + arg(in.Source) + "\n")
	}
	sb.WriteString("ORDER BY e.created_at, e.id\nLIMIT " + arg(hardLimit))

	return s.page(ctx, sb.String(), args)
}

// Get fetches one entry by id
func (s *pg) Get(ctx context.Context, id string) (domain.Entry, error) {
	const q = `
		SELECT e.id::text, e.user_id, e.text_raw, COALESCE(e.text_normalized, ''), e.source, e.created_at
		FROM entries e
		WHERE e.id = $1::uuid`
	var e domain.Entry
	err := s.q.QueryRow(ctx, q, id).Scan(&e.ID, &e.UserID, &e.Text, &e.TextNorm, &e.Source, &e.CreatedAt)
	return e, err
}

// ListPending returns entries with no result at the requested version.
// Stale widens the miss condition from "no result at all" to "no result at
// or above Version", which re-selects rows classified by older detectors
func (s *pg) ListPending(
	ctx context.Context,
	in domain.PendingInput,
	hardLimit int,
) ([]domain.Entry, domain.AfterKey, error) {
	var sb strings.Builder
	var args []any
	arg := func(v any) string { args = append(args, v); return fmt.Sprintf("$%d", len(args)) }

	sb.WriteString(`
		SELECT
			e.id::text,
			e.user_id,
			e.text_raw,
			COALESCE(e.text_normalized, '') AS text_norm,
			e.source,
			e.created_at
		FROM entries e
	`)
	if in.Stale {
		sb.WriteString(`WHERE NOT EXISTS (
			SELECT 1 FROM results r
			WHERE r.entry_id = e.id AND r.detector_version >= ` + arg(in.Version) + `
		)` + "\n")
	} else {
		sb.WriteString("WHERE NOT EXISTS (SELECT 1 FROM results r WHERE r.entry_id = e.id)\n")
	}
	if in.After.ID != "" {
		sb.WriteString("  AND (e.created_at, e.id) > (" + arg(in.After.CreatedAt) + ", " + arg(in.After.ID) + "::uuid)\n")
	}
	sb.WriteString("ORDER BY e.created_at, e.id\nLIMIT " + arg(hardLimit))

	return s.page(ctx, sb.String(), args)
}

// page runs a list query through store.Many and derives the keyset cursor
// from the final row
func (s *pg) page(ctx context.Context, sql string, args []any) ([]domain.Entry, domain.AfterKey, error) {
	out, err := store.Many(ctx, s.q, scanEntry, sql, args...)
	if err != nil {
		return nil, domain.AfterKey{}, err
	}
	if out == nil {
		out = []domain.Entry{}
	}
	var last domain.AfterKey
	if n := len(out); n > 0 {
		last = domain.AfterKey{CreatedAt: out[n-1].CreatedAt, ID: out[n-1].ID}
	}
	return out, last, nil
}

func scanEntry(r store.Row) (domain.Entry, error) {
	var e domain.Entry
	err := r.Scan(&e.ID, &e.UserID, &e.Text, &e.TextNorm, &e.Source, &e.CreatedAt)
	return e, err
}
