package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/snw/walletd/internal/domain"
)

// fakeWriter implements the same methods as *kafka.Writer.
type fakeWriter struct {
	messages []kafka.Message
	err      error
}

func (f *fakeWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	if f.err != nil {
		return f.err
	}
	f.messages = append(f.messages, msgs...)
	return nil
}

func (f *fakeWriter) Close() error { return nil }

func TestPublishBatchCommitted(t *testing.T) {
	fw := &fakeWriter{}
	p := &Publisher{writer: fw}

	event := domain.BatchCommitted{
		BatchID:     "batch-1",
		RecordCount: 2,
		Wallets: []domain.WalletBalance{
			{User: "user1", Credit: decimal.RequireFromString("12.50")},
		},
		OccurredAt: time.Now().UTC(),
	}

	require.NoError(t, p.PublishBatchCommitted(context.Background(), event))
	require.Len(t, fw.messages, 1)

	msg := fw.messages[0]
	require.Equal(t, "batch-1", string(msg.Key))

	var decoded domain.BatchCommitted
	require.NoError(t, json.Unmarshal(msg.Value, &decoded))
	require.Equal(t, event.BatchID, decoded.BatchID)
	require.Equal(t, event.RecordCount, decoded.RecordCount)
}

func TestPublishBatchCommittedWriteError(t *testing.T) {
	writeErr := errors.New("broker unavailable")
	p := &Publisher{writer: &fakeWriter{err: writeErr}}

	err := p.PublishBatchCommitted(context.Background(), domain.BatchCommitted{BatchID: "batch-1"})
	require.ErrorIs(t, err, writeErr)
}

func TestNullPublisher(t *testing.T) {
	p := NewNullPublisher()
	require.NoError(t, p.PublishBatchCommitted(context.Background(), domain.BatchCommitted{BatchID: "batch-1"}))
}
