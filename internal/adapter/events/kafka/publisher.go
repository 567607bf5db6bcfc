package kafka

import (
	"context"
	"encoding/json"

	"github.com/rs/zerolog/log"
	"github.com/segmentio/kafka-go"

	"github.com/snw/walletd/internal/domain"
)

// writer abstracts *kafka.Writer for testing.
type writer interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Publisher implements usecase.EventPublisher on top of Kafka.
type Publisher struct {
	writer writer
}

// NewPublisher creates a Publisher writing to the given brokers and topic.
func NewPublisher(brokers []string, topic string) *Publisher {
	return &Publisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireAll,
		},
	}
}

// PublishBatchCommitted publishes a batch commit event, keyed by batch ID so
// events of the same batch land on one partition.
func (p *Publisher) PublishBatchCommitted(ctx context.Context, event domain.BatchCommitted) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.BatchID),
		Value: payload,
	})
}

// Close flushes and closes the underlying writer.
func (p *Publisher) Close() error {
	return p.writer.Close()
}

// NullPublisher drops events, logging them at debug level. Used when no
// brokers are configured.
type NullPublisher struct{}

// NewNullPublisher creates a NullPublisher.
func NewNullPublisher() *NullPublisher {
	return &NullPublisher{}
}

// PublishBatchCommitted logs the event and returns nil.
func (p *NullPublisher) PublishBatchCommitted(ctx context.Context, event domain.BatchCommitted) error {
	log.Debug().
		Str("batch_id", event.BatchID).
		Int("record_count", event.RecordCount).
		Msg("event publishing disabled, dropping batch event")

	return nil
}
