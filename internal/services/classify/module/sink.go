package module

import (
	"context"

	"lipi/internal/platform/stream"
	"lipi/internal/services/classify/domain"
)

// kafkaSink adapts a stream.Producer to the domain.EventSink port
type kafkaSink struct{ p *stream.Producer }

// NewKafkaSink wraps a producer as an EventSink for result events
func NewKafkaSink(p *stream.Producer) domain.EventSink { return kafkaSink{p: p} }

// EmitResults publishes one event per result, keyed by entry id
func (s kafkaSink) EmitResults(ctx context.Context, xs []domain.ResultEvent) error {
	evs := make([]stream.Event, 0, len(xs))
	for _, x := range xs {
		evs = append(evs, stream.Event{Key: x.EntryID, Value: x})
	}
	return s.p.PublishBatch(ctx, evs)
}
