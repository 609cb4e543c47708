package service

import (
	"context"

	"lipi/internal/platform/logger"
	"lipi/internal/platform/stream"
	dom "lipi/internal/services/classify/domain"
	entdom "lipi/internal/services/entries/domain"
	resdom "lipi/internal/services/results/domain"
)

// StreamWorker handles entry events arriving over Kafka: persist the entry,
// classify it, persist the result, emit a result event. One instance is
// handed to a stream.Consumer as its Handler
type StreamWorker struct {
	svc     *Service
	entries entdom.WriterPort
}

// NewStreamWorker wires the stream path over the batch service
func NewStreamWorker(svc *Service, entries entdom.WriterPort) *StreamWorker {
	if entries == nil {
		panic("classify stream worker: nil entries writer")
	}
	return &StreamWorker{svc: svc, entries: entries}
}

// Handle implements stream.Handler. A decode failure is a poison message and
// returns nil so the consumer commits past it; persistence failures return
// the error and leave the message uncommitted for redelivery
func (w *StreamWorker) Handle(ctx context.Context, _, value []byte) error {
	log := logger.Named("classify-stream")

	ev, err := stream.DecodeJSON[dom.EntryEvent](value)
	if err != nil || ev.Text == "" {
		log.Warn().Err(err).Msg("dropping undecodable entry event")
		return nil
	}

	entry, err := w.entries.Insert(ctx, entdom.NewEntry{
		ID:        ev.ID,
		UserID:    ev.UserID,
		Text:      ev.Text,
		Source:    "stream",
		CreatedAt: ev.CreatedAt,
	})
	if err != nil {
		return err
	}

	rw := w.svc.resultFor(ctx, entry.ID, entry.TextNorm)
	batch := []resdom.ResultWrite{rw}
	if err := w.svc.Results.WriteBatch(ctx, batch); err != nil {
		return err
	}
	if w.svc.Metrics != nil {
		w.svc.Metrics.EntriesWrittenTotal.Inc()
		w.svc.Metrics.ResultsWrittenTotal.Inc()
	}
	w.svc.fanOut(ctx, batch)
	return nil
}
