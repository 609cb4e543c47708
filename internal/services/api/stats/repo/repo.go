// Package repo provides postgres access for stats
package repo

import (
	"context"

	"lipi/internal/modkit/repokit"
	"lipi/internal/platform/store"
)

// Repo is the minimal persistence surface for stats. Every query reads the
// newest result per entry so re-classified entries count once
type Repo interface {
	ByLanguage(ctx context.Context, start, end, source string) ([]RowByLanguage, error)
	Daily(ctx context.Context, start, end, language string) ([]RowDaily, error)
	Confidence(ctx context.Context, start, end, language string) ([]RowConfidence, error)
	LowConfidence(ctx context.Context, start, end, language string, ceiling float64) (int64, error)
}

// RowByLanguage represents a stats row by detected language
type RowByLanguage struct {
	Language      string  `db:"language"`
	Entries       int64   `db:"entries"`
	AvgConfidence float64 `db:"avg_confidence"`
}

// RowDaily represents a stats row by day and language
type RowDaily struct {
	Day      string `db:"day"`
	Language string `db:"language"`
	Entries  int64  `db:"entries"`
}

// RowConfidence is one raw histogram bucket, 1-based per width_bucket
type RowConfidence struct {
	Bucket  int   `db:"bucket"`
	Entries int64 `db:"entries"`
}

type (
	// PG is a binder that can bind the repo to a Queryer or TxRunner
	PG struct{}
	// queries implements the Repo interface
	queries struct{ q repokit.Queryer }
)

// NewPG returns a binder that can bind the repo to a Queryer or TxRunner
func NewPG() repokit.Binder[Repo] { return PG{} }

// Bind wires a Queryer to the repo
func (PG) Bind(q repokit.Queryer) Repo { return &queries{q: q} }

// The rollup row shapes carry db tags, so scanning goes through
// store.StructsByName instead of per-query scan funcs

func (r *queries) ByLanguage(ctx context.Context, start, end, source string) ([]RowByLanguage, error) {
	const sql = `
with latest as (
select distinct on (entry_id) entry_id, language, confidence
from results
order by entry_id, detector_version desc
)
select l.language, count(1) as entries, coalesce(avg(l.confidence), 0) as avg_confidence
from latest l
join entries e on e.id = l.entry_id
where e.created_at::date between $1 and $2
and ($3 = '' or e.source = $3)
group by l.language
order by entries desc, l.language asc
`
	return store.StructsByName[RowByLanguage](ctx, r.q, sql, start, end, source)
}

func (r *queries) Daily(ctx context.Context, start, end, language string) ([]RowDaily, error) {
	const sql = `
with latest as (
select distinct on (entry_id) entry_id, language
from results
order by entry_id, detector_version desc
)
select e.created_at::date::text as day, l.language, count(1) as entries
from latest l
join entries e on e.id = l.entry_id
where e.created_at::date between $1 and $2
and ($3 = '' or l.language = $3)
group by day, l.language
order by day asc, l.language asc
`
	return store.StructsByName[RowDaily](ctx, r.q, sql, start, end, language)
}

func (r *queries) Confidence(ctx context.Context, start, end, language string) ([]RowConfidence, error) {
	const sql = `
with latest as (
select distinct on (entry_id) entry_id, language, confidence
from results
order by entry_id, detector_version desc
)
select width_bucket(l.confidence, 0.0, 1.0, 10) as bucket, count(1) as entries
from latest l
join entries e on e.id = l.entry_id
where e.created_at::date between $1 and $2
and ($3 = '' or l.language = $3)
group by bucket
order by bucket asc
`
	return store.StructsByName[RowConfidence](ctx, r.q, sql, start, end, language)
}

func (r *queries) LowConfidence(
	ctx context.Context,
	start, end, language string,
	ceiling float64,
) (int64, error) {
	const sql = `
with latest as (
select distinct on (entry_id) entry_id, language, confidence
from results
order by entry_id, detector_version desc
)
select count(1)
from latest l
join entries e on e.id = l.entry_id
where e.created_at::date between $1 and $2
and l.confidence < $3
and ($4 = '' or l.language = $4)
`
	return store.Scalar[int64](ctx, r.q, sql, start, end, ceiling, language)
}
