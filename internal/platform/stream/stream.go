// Package stream provides Kafka producers and consumers backed by
// segmentio/kafka-go. Events are JSON on the wire; the entry topic carries
// submitted journal entries, the result topic carries classification results
package stream

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"

	"lipi/internal/platform/logger"
)

// Config holds broker addresses and topic names
type Config struct {
	Brokers      []string
	Group        string
	EntryTopic   string
	ResultTopic  string
	BatchSize    int
	BatchTimeout time.Duration
}

// Event is one unit published to Kafka. Key drives partition hashing
type Event struct {
	Key   string
	Value any
}

// Handler is invoked once per consumed message
type Handler func(ctx context.Context, key, value []byte) error

// DecodeJSON unmarshals a message value into T
func DecodeJSON[T any](value []byte) (T, error) {
	var out T
	if err := json.Unmarshal(value, &out); err != nil {
		return out, fmt.Errorf("stream: decode message: %w", err)
	}
	return out, nil
}

// Producer publishes JSON events to one topic
type Producer struct {
	writer *kafka.Writer
	log    logger.Logger
}

// NewProducer builds a synchronous all-acks producer for topic
func NewProducer(cfg Config, topic string) *Producer {
	batch := cfg.BatchSize
	if batch <= 0 {
		batch = 100
	}
	timeout := cfg.BatchTimeout
	if timeout <= 0 {
		timeout = 10 * time.Millisecond
	}
	w := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		BatchSize:    batch,
		BatchTimeout: timeout,
		MaxAttempts:  3,
		RequiredAcks: kafka.RequireAll,
	}
	return &Producer{
		writer: w,
		log:    logger.Named("stream").With().Str("topic", topic).Logger(),
	}
}

// Publish writes one event synchronously
func (p *Producer) Publish(ctx context.Context, ev Event) error {
	return p.PublishBatch(ctx, []Event{ev})
}

// PublishBatch writes events in a single call
func (p *Producer) PublishBatch(ctx context.Context, evs []Event) error {
	if len(evs) == 0 {
		return nil
	}
	msgs := make([]kafka.Message, 0, len(evs))
	for _, ev := range evs {
		value, err := json.Marshal(ev.Value)
		if err != nil {
			return fmt.Errorf("stream: marshal event: %w", err)
		}
		msgs = append(msgs, kafka.Message{Key: []byte(ev.Key), Value: value})
	}
	if err := p.writer.WriteMessages(ctx, msgs...); err != nil {
		p.log.Error().Err(err).Int("count", len(msgs)).Msg("publish failed")
		return fmt.Errorf("stream: publish: %w", err)
	}
	p.log.Debug().Int("count", len(msgs)).Msg("published")
	return nil
}

// Close flushes and closes the writer
func (p *Producer) Close() error { return p.writer.Close() }

// Consumer fetches messages from one topic and hands them to a Handler.
// Handler errors are logged and the message is skipped without commit, so a
// restart re-delivers it
type Consumer struct {
	reader  *kafka.Reader
	log     logger.Logger
	handler Handler
}

// NewConsumer builds a group consumer for topic
func NewConsumer(cfg Config, topic string, handler Handler) *Consumer {
	r := kafka.NewReader(kafka.ReaderConfig{
		Brokers:     cfg.Brokers,
		Topic:       topic,
		GroupID:     cfg.Group,
		MinBytes:    1e3,
		MaxBytes:    10e6,
		StartOffset: kafka.LastOffset,
	})
	return &Consumer{
		reader:  r,
		log:     logger.Named("stream").With().Str("topic", topic).Logger(),
		handler: handler,
	}
}

// Run consumes until ctx is cancelled
func (c *Consumer) Run(ctx context.Context) error {
	c.log.Info().Msg("consumer started")
	for {
		select {
		case <-ctx.Done():
			c.log.Info().AnErr("reason", ctx.Err()).Msg("consumer stopping")
			return c.reader.Close()
		default:
		}

		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return c.reader.Close()
			}
			c.log.Error().Err(err).Msg("fetch failed")
			continue
		}
		if err := c.handler(ctx, msg.Key, msg.Value); err != nil {
			c.log.Error().Err(err).
				Int("partition", msg.Partition).
				Int64("offset", msg.Offset).
				Msg("handler failed, message left uncommitted")
			continue
		}
		if err := c.reader.CommitMessages(ctx, msg); err != nil {
			c.log.Error().Err(err).Int64("offset", msg.Offset).Msg("commit failed")
		}
	}
}

// Close closes the reader
func (c *Consumer) Close() error { return c.reader.Close() }
