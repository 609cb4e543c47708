package domain

import "context"

// WriterPort writes classification results
type WriterPort interface {
	WriteBatch(ctx context.Context, xs []ResultWrite) error
}

// QueryPort reads results back out
type QueryPort interface {
	// Latest returns the highest-version result for one entry
	Latest(ctx context.Context, entryID string) (Row, error)
	// ListLowConfidence pages results under a confidence ceiling
	ListLowConfidence(ctx context.Context, in LowConfidenceInput) ([]Row, AfterKey, error)
}
