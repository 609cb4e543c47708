// Package repo provides postgres access for the entries API
package repo

import (
	"context"

	"lipi/internal/modkit/repokit"
	"lipi/internal/platform/store"
)

// Repo defines the repository contract for the entries API
type Repo interface {
	Recent(ctx context.Context, userID, language string, limit int) ([]RowRecent, error)
}

// RowRecent represents one entry row joined to its newest result
type RowRecent struct {
	ID              string
	UserID          string
	Text            string
	Source          string
	Script          string
	Language        string
	Confidence      float64
	DetectorVersion int
	CreatedAt       string
}

type (
	// PG implements the Repo interface using Postgres
	PG struct{}

	// queries holds the database query methods
	queries struct{ q repokit.Queryer }
)

// NewPG creates a new Postgres repository binder
func NewPG() repokit.Binder[Repo] { return PG{} }

// Bind binds a Postgres queryer to the Repo implementation
func (PG) Bind(q repokit.Queryer) Repo { return &queries{q: q} }

func (r *queries) Recent(ctx context.Context, userID, language string, limit int) ([]RowRecent, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	const sql = `
select e.id::text, e.user_id, e.text_raw, e.source, e.created_at::text,
coalesce(res.script, ''), coalesce(res.language, ''),
coalesce(res.confidence, 0), coalesce(res.detector_version, 0)
from entries e
left join lateral (
select script, language, confidence, detector_version
from results
where entry_id = e.id
order by detector_version desc
limit 1
) res on true
where ($1 = '' or e.user_id = $1)
and ($2 = '' or res.language = $2)
order by e.created_at desc, e.id desc
limit $3
`
	return store.Many(ctx, r.q, scanRecent, sql, userID, language, limit)
}

func scanRecent(row store.Row) (RowRecent, error) {
	var rr RowRecent
	err := row.Scan(
		&rr.ID,
		&rr.UserID,
		&rr.Text,
		&rr.Source,
		&rr.CreatedAt,
		&rr.Script,
		&rr.Language,
		&rr.Confidence,
		&rr.DetectorVersion,
	)
	return rr, err
}
