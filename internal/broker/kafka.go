package broker

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/ticket-order-service/internal/config"
	"github.com/SergeyBogomolovv/ticket-order-service/internal/entities"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type orderEvent struct {
	Type       string          `json:"type"`
	OrderID    string          `json:"order_id"`
	OwnerID    string          `json:"owner_id"`
	EventID    int64           `json:"event_id"`
	Status     string          `json:"status"`
	Total      decimal.Decimal `json:"total"`
	OccurredAt time.Time       `json:"occurred_at"`
}

type kafkaPublisher struct {
	logger *slog.Logger
	writer messageWriter
}

func NewKafkaPublisher(logger *slog.Logger, cfg config.Kafka) *kafkaPublisher {
	return &kafkaPublisher{
		logger: logger.With(slog.String("broker", "kafka")),
		writer: &kafka.Writer{
			Addr:         kafka.TCP(cfg.Brokers...),
			Topic:        cfg.EventsTopic,
			Balancer:     &kafka.Hash{},
			BatchTimeout: cfg.BatchTimeout,
			RequiredAcks: kafka.RequireOne,
		},
	}
}

// PublishOrderEvent отправляет событие заказа. Ключ сообщения - order_id,
// поэтому события одного заказа попадают в одну партицию по порядку.
func (p *kafkaPublisher) PublishOrderEvent(ctx context.Context, e entities.OrderEvent) error {
	value, err := json.Marshal(orderEvent{
		Type:       string(e.Type),
		OrderID:    e.OrderID,
		OwnerID:    e.OwnerID,
		EventID:    e.EventID,
		Status:     string(e.Status),
		Total:      e.Total,
		OccurredAt: e.OccurredAt.UTC(),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal order event: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(e.OrderID),
		Value: value,
		Headers: []kafka.Header{
			{Key: "type", Value: []byte(e.Type)},
		},
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to publish order event: %w", err)
	}

	p.logger.Debug("order event published", slog.String("type", string(e.Type)), slog.String("order_id", e.OrderID))
	return nil
}

func (p *kafkaPublisher) Close() error {
	return p.writer.Close()
}
