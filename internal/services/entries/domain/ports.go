package domain

import "context"

// ReaderPort defines the read interface for entries
type ReaderPort interface {
	// List returns up to Limit rows ordered by (created_at, id)
	List(ctx context.Context, in ListInput) (rows []Entry, next AfterKey, err error)
	// Get fetches one entry by id
	Get(ctx context.Context, id string) (Entry, error)
	// ListPending returns entries missing a classification result
	ListPending(ctx context.Context, in PendingInput) (rows []Entry, next AfterKey, err error)
}

// WriterPort defines the write interface for entries
type WriterPort interface {
	// Insert stores one entry and returns it with ID and TextNorm populated
	Insert(ctx context.Context, in NewEntry) (Entry, error)
	// InsertBatch stores many entries in one statement; duplicate IDs are skipped
	InsertBatch(ctx context.Context, in []NewEntry) ([]Entry, error)
}
