package broker

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/ticket-order-service/internal/entities"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWriter struct {
	messages []kafka.Message
	err      error
	closed   bool
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.messages = append(w.messages, msgs...)
	return nil
}

func (w *fakeWriter) Close() error {
	w.closed = true
	return nil
}

func newTestPublisher(w messageWriter) *kafkaPublisher {
	return &kafkaPublisher{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		writer: w,
	}
}

func TestKafkaPublisher_PublishOrderEvent(t *testing.T) {
	w := &fakeWriter{}
	p := newTestPublisher(w)

	at := time.Date(2026, 5, 1, 20, 0, 0, 0, time.FixedZone("MSK", 3*60*60))
	err := p.PublishOrderEvent(context.Background(), entities.OrderEvent{
		Type:       entities.OrderClaimed,
		OrderID:    "ORD-1A2B3C4D",
		OwnerID:    "u-1",
		EventID:    7,
		Status:     entities.StatusPartiallyClaimed,
		Total:      decimal.RequireFromString("13.50"),
		OccurredAt: at,
	})
	require.NoError(t, err)
	require.Len(t, w.messages, 1)

	msg := w.messages[0]
	assert.Equal(t, "ORD-1A2B3C4D", string(msg.Key))

	var payload map[string]any
	require.NoError(t, json.Unmarshal(msg.Value, &payload))
	assert.Equal(t, "order.claimed", payload["type"])
	assert.Equal(t, "PARTIALLY_CLAIMED", payload["status"])
	assert.Equal(t, "13.5", payload["total"])
	assert.Equal(t, "2026-05-01T17:00:00Z", payload["occurred_at"])

	require.NoError(t, p.Close())
	assert.True(t, w.closed)
}

func TestKafkaPublisher_WriteError(t *testing.T) {
	p := newTestPublisher(&fakeWriter{err: errors.New("broker down")})

	err := p.PublishOrderEvent(context.Background(), entities.OrderEvent{Type: entities.OrderCreated, OrderID: "ORD-1"})
	assert.ErrorContains(t, err, "broker down")
}
