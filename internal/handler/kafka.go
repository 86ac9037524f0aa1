package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/ticket-order-service/internal/config"
	"github.com/SergeyBogomolovv/ticket-order-service/internal/entities"
	"github.com/go-playground/validator/v10"
	"github.com/segmentio/kafka-go"
)

type OrderClaimer interface {
	ClaimItems(ctx context.Context, requester entities.Identity, orderID string, lines []entities.ClaimLine, idempotencyKey string) (entities.ClaimResult, error)
}

type kafkaHandler struct {
	dlq      *kafka.Writer
	reader   *kafka.Reader
	logger   *slog.Logger
	validate *validator.Validate
	auth     IdentityResolver
	claimer  OrderClaimer
}

func NewKafkaHandler(logger *slog.Logger, cfg config.Kafka, auth IdentityResolver, claimer OrderClaimer) *kafkaHandler {
	return &kafkaHandler{
		logger: logger.With(slog.String("handler", "kafka")),
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers: cfg.Brokers,
			GroupID: cfg.GroupID,
			Topic:   cfg.ClaimsTopic,
			MaxWait: cfg.ReaderMaxWait,
		}),
		dlq: &kafka.Writer{
			Addr:         kafka.TCP(cfg.Brokers...),
			Balancer:     &kafka.LeastBytes{},
			BatchTimeout: cfg.BatchTimeout,
		},
		validate: validator.New(),
		auth:     auth,
		claimer:  claimer,
	}
}

func (h *kafkaHandler) Consume(ctx context.Context) {
	for {
		m, err := h.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
				break
			} else {
				h.logger.Error("failed to fetch message", slog.Any("error", err))
				continue
			}
		}

		claimsInProgress.Inc()
		start := time.Now()

		if err := h.handleClaim(ctx, m); err != nil {
			claimsFailed.Inc()
			h.logger.Error("failed to handle claim message",
				slog.Any("error", err),
				slog.Int64("offset", m.Offset),
				slog.Int("partition", m.Partition),
			)

			// В библиотеке уже есть retry
			if err := h.WriteToDLQ(ctx, m); err != nil {
				h.logger.Error("failed to write message to DLQ", slog.Any("error", err))
				claimsInProgress.Dec()
				continue
			}
			claimsDLQ.Inc()
		} else {
			claimsProcessed.Inc()
		}

		claimProcessingDuration.Observe(time.Since(start).Seconds())
		claimsInProgress.Dec()

		if err := h.reader.CommitMessages(ctx, m); err != nil {
			commitErrors.Inc()
			h.logger.Error("failed to commit message", slog.Any("error", err))
		}
	}
}

// handleClaim проверяет токен сканера из сообщения и выдаёт позиции.
// Повтор сообщения с тем же idempotency_key не выдаёт позиции второй раз.
func (h *kafkaHandler) handleClaim(ctx context.Context, m kafka.Message) error {
	var msg ClaimMessage
	if err := json.Unmarshal(m.Value, &msg); err != nil {
		return fmt.Errorf("failed to unmarshal claim: %w", err)
	}

	if err := h.validate.Struct(msg); err != nil {
		return fmt.Errorf("invalid claim data: %w", err)
	}

	identity, err := h.auth.Resolve(msg.Credential)
	if err != nil {
		return fmt.Errorf("failed to resolve identity: %w", err)
	}

	lines := ClaimMessageToEntity(msg.Items)
	res, err := h.claimer.ClaimItems(ctx, identity, msg.OrderID, lines, msg.IdempotencyKey)
	if err != nil {
		claimRejections.WithLabelValues(errorCode(err)).Inc()
		return err
	}

	if !res.Replayed {
		itemsClaimed.WithLabelValues("kafka").Add(float64(claimedQuantity(lines)))
	}
	h.logger.Debug("claim processed",
		slog.String("order_id", res.Order.ID),
		slog.String("status", string(res.Order.Status)),
		slog.Bool("replayed", res.Replayed),
	)
	return nil
}

func (h *kafkaHandler) WriteToDLQ(ctx context.Context, m kafka.Message) error {
	m.Topic = fmt.Sprintf("%s-dlq", m.Topic)
	return h.dlq.WriteMessages(ctx, m)
}

func (h *kafkaHandler) Close() error {
	if err := h.reader.Close(); err != nil {
		return err
	}
	return h.dlq.Close()
}
