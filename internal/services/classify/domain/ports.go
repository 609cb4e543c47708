package domain

import (
	"context"

	"lipi/internal/core/classifier"
	entdom "lipi/internal/services/entries/domain"
	resdom "lipi/internal/services/results/domain"
)

// RunnerPort is the external port for the classify batch job
type RunnerPort interface {
	RunBatch(ctx context.Context, in BatchInput) (Stats, error)
}

// ClassifyPort classifies a single text. Used by the API service and by
// backfill --classify; the implementation layers metrics over the pure core
type ClassifyPort interface {
	Classify(ctx context.Context, text string) classifier.Result
}

// EventSink publishes result events downstream. Optional; nil disables it
type EventSink interface {
	EmitResults(ctx context.Context, xs []ResultEvent) error
}

// Ports are dependencies injected into the classify module
type Ports struct {
	Entries       entdom.ReaderPort // required
	EntriesWriter entdom.WriterPort // required for stream mode only
	Results       resdom.WriterPort // required
}
