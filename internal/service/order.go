package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"github.com/SergeyBogomolovv/ticket-order-service/internal/clock"
	"github.com/SergeyBogomolovv/ticket-order-service/internal/config"
	"github.com/SergeyBogomolovv/ticket-order-service/internal/entities"
	"github.com/SergeyBogomolovv/ticket-order-service/pkg/trm"
	"github.com/SergeyBogomolovv/ticket-order-service/pkg/utils"
	"golang.org/x/sync/errgroup"
)

type OrderRepo interface {
	// SaveOrder не перезаписывает существующий заказ: повтор id - ErrOrderIDConflict.
	SaveOrder(ctx context.Context, o entities.Order) error
	GetOrderByID(ctx context.Context, orderID string) (entities.Order, error)
	// GetOrderForUpdate требует транзакцию в контексте.
	GetOrderForUpdate(ctx context.Context, orderID string) (entities.Order, error)
	OrdersByOwner(ctx context.Context, ownerID string) ([]entities.Order, error)
	UpdateClaims(ctx context.Context, o entities.Order) error
	UpdateStatus(ctx context.Context, orderID string, status entities.OrderStatus) error
	ClaimKeyExists(ctx context.Context, orderID, key string) (bool, error)
	SaveClaimKey(ctx context.Context, orderID, key string) error
}

type Catalog interface {
	GetEvent(ctx context.Context, id int64) (entities.EventSnapshot, error)
	GetVariation(ctx context.Context, id int64) (entities.VariationSnapshot, error)
}

type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte)
}

type Publisher interface {
	PublishOrderEvent(ctx context.Context, e entities.OrderEvent) error
}

type orderService struct {
	logger    *slog.Logger
	txManager trm.Manager
	repo      OrderRepo
	catalog   Catalog
	cache     Cache
	publisher Publisher
	clock     clock.Clock
	cfg       config.Orders

	newID      func() string
	retryDelay time.Duration
}

type Option func(*orderService)

// WithIDGenerator подменяет генератор идентификаторов заказов.
func WithIDGenerator(gen func() string) Option {
	return func(s *orderService) {
		s.newID = gen
	}
}

func WithRetryDelay(d time.Duration) Option {
	return func(s *orderService) {
		s.retryDelay = d
	}
}

func NewOrderService(
	logger *slog.Logger,
	txManager trm.Manager,
	repo OrderRepo,
	catalog Catalog,
	cache Cache,
	publisher Publisher,
	clk clock.Clock,
	cfg config.Orders,
	opts ...Option,
) *orderService {
	s := &orderService{
		logger:     logger.With(slog.String("service", "order")),
		txManager:  txManager,
		repo:       repo,
		catalog:    catalog,
		cache:      cache,
		publisher:  publisher,
		clock:      clk,
		cfg:        cfg,
		newID:      entities.NewOrderID,
		retryDelay: 20 * time.Millisecond,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateOrder оформляет заказ по корзине. Любая ошибка каталога отменяет
// создание целиком: частично собранный заказ не сохраняется.
func (s *orderService) CreateOrder(ctx context.Context, ownerID string, eventID int64, lines []entities.CartLine) (entities.OrderView, error) {
	if ownerID == "" {
		return entities.OrderView{}, entities.ErrMissingOwnerID
	}
	if eventID <= 0 {
		return entities.OrderView{}, entities.ErrInvalidEvent
	}

	cart, err := entities.NormalizeCart(lines)
	if err != nil {
		return entities.OrderView{}, err
	}

	event, err := s.catalog.GetEvent(ctx, eventID)
	if err != nil {
		return entities.OrderView{}, fmt.Errorf("failed to get event %d: %w", eventID, err)
	}

	items, err := s.resolveItems(ctx, cart)
	if err != nil {
		return entities.OrderView{}, err
	}

	order := entities.NewOrder(s.newID(), ownerID, eventID, s.clock.Now(), items)

	cfg := utils.RetryConfig{
		MaxAttempts:  s.cfg.IDAttempts,
		InitialDelay: time.Millisecond,
		RetryIf: func(err error) bool {
			return errors.Is(err, entities.ErrOrderIDConflict)
		},
	}
	err = utils.Retry(cfg, func() error {
		err := s.txManager.Do(ctx, func(ctx context.Context) error {
			return s.repo.SaveOrder(ctx, order)
		})
		if errors.Is(err, entities.ErrOrderIDConflict) {
			s.logger.Warn("order id collision", slog.String("order_id", order.ID))
			order = order.WithID(s.newID())
		}
		return err
	})
	if err != nil {
		return entities.OrderView{}, fmt.Errorf("failed to save order: %w", err)
	}

	s.logger.Debug("order created", slog.String("order_id", order.ID), slog.String("owner_id", ownerID))
	s.publish(ctx, entities.OrderCreated, order)

	return entities.OrderView{Order: order, Event: event}, nil
}

// resolveItems запрашивает вариации параллельно и сохраняет порядок корзины.
func (s *orderService) resolveItems(ctx context.Context, cart []entities.CartLine) ([]entities.OrderItem, error) {
	items := make([]entities.OrderItem, len(cart))

	g, gctx := errgroup.WithContext(ctx)
	for i, line := range cart {
		i, line := i, line
		g.Go(func() error {
			v, err := s.catalog.GetVariation(gctx, line.VariationID)
			if err != nil {
				return fmt.Errorf("failed to get variation %d: %w", line.VariationID, err)
			}
			items[i] = entities.NewOrderItem(v, line.Quantity)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return items, nil
}

// ClaimItems выдаёт позиции заказа. Чтение и запись выполняются под блокировкой
// строки заказа, поэтому параллельные выдачи не могут превысить купленное количество.
func (s *orderService) ClaimItems(ctx context.Context, requester entities.Identity, orderID string, lines []entities.ClaimLine, idempotencyKey string) (entities.ClaimResult, error) {
	if requester.OwnerID == "" {
		return entities.ClaimResult{}, entities.ErrMissingOwnerID
	}
	if orderID == "" {
		return entities.ClaimResult{}, entities.ErrInvalidOrderID
	}
	if len(lines) == 0 {
		return entities.ClaimResult{}, entities.ErrEmptyClaim
	}
	for _, l := range lines {
		if l.Quantity < 1 {
			return entities.ClaimResult{}, entities.ErrInvalidQuantity
		}
	}

	var (
		result   entities.Order
		replayed bool
	)

	fn := func() error {
		return s.txManager.Do(ctx, func(ctx context.Context) error {
			order, err := s.repo.GetOrderForUpdate(ctx, orderID)
			if err != nil {
				return err
			}
			if !requester.CanAccess(order) {
				return entities.ErrNotOrderOwner
			}

			if idempotencyKey != "" {
				exists, err := s.repo.ClaimKeyExists(ctx, orderID, idempotencyKey)
				if err != nil {
					return err
				}
				if exists {
					result, replayed = order, true
					return nil
				}
			}

			if err := order.ApplyClaims(lines); err != nil {
				return err
			}
			if err := s.repo.UpdateClaims(ctx, order); err != nil {
				return err
			}
			if idempotencyKey != "" {
				if err := s.repo.SaveClaimKey(ctx, orderID, idempotencyKey); err != nil {
					return err
				}
			}

			result, replayed = order, false
			return nil
		})
	}

	if err := utils.Retry(s.concurrentRetry(), fn); err != nil {
		return entities.ClaimResult{}, fmt.Errorf("failed to claim items of order %s: %w", orderID, err)
	}

	if replayed {
		s.logger.Info("claim replayed", slog.String("order_id", orderID), slog.String("idempotency_key", idempotencyKey))
		return entities.ClaimResult{Order: result, Replayed: true}, nil
	}

	s.logger.Debug("items claimed",
		slog.String("order_id", orderID),
		slog.String("status", string(result.Status)),
		slog.String("requester", requester.OwnerID),
	)
	s.publish(ctx, entities.OrderClaimed, result)
	return entities.ClaimResult{Order: result}, nil
}

// CancelOrder отменяет заказ. Доступно владельцу и администратору.
func (s *orderService) CancelOrder(ctx context.Context, requester entities.Identity, orderID string) (entities.Order, error) {
	if requester.OwnerID == "" {
		return entities.Order{}, entities.ErrMissingOwnerID
	}
	if orderID == "" {
		return entities.Order{}, entities.ErrInvalidOrderID
	}

	var result entities.Order
	fn := func() error {
		return s.txManager.Do(ctx, func(ctx context.Context) error {
			order, err := s.repo.GetOrderForUpdate(ctx, orderID)
			if err != nil {
				return err
			}
			if order.OwnerID != requester.OwnerID && requester.Role != entities.RoleAdmin {
				return entities.ErrNotOrderOwner
			}
			if err := order.Cancel(); err != nil {
				return err
			}
			if err := s.repo.UpdateStatus(ctx, order.ID, order.Status); err != nil {
				return err
			}
			result = order
			return nil
		})
	}

	if err := utils.Retry(s.concurrentRetry(), fn); err != nil {
		return entities.Order{}, fmt.Errorf("failed to cancel order %s: %w", orderID, err)
	}

	s.logger.Info("order cancelled", slog.String("order_id", orderID), slog.String("requester", requester.OwnerID))
	s.publish(ctx, entities.OrderCancelled, result)
	return result, nil
}

func (s *orderService) GetOrder(ctx context.Context, requester entities.Identity, orderID string) (entities.OrderView, error) {
	if orderID == "" {
		return entities.OrderView{}, entities.ErrInvalidOrderID
	}

	order, err := s.loadOrder(ctx, orderID)
	if err != nil {
		return entities.OrderView{}, err
	}
	if !requester.CanAccess(order) {
		return entities.OrderView{}, entities.ErrNotOrderOwner
	}

	return entities.OrderView{Order: order, Event: s.displayEvent(ctx, order.EventID)}, nil
}

// LookupByRedemptionToken находит заказ по содержимому QR кода. Токен не
// подписан, поэтому владелец из токена сверяется с сохранённым.
func (s *orderService) LookupByRedemptionToken(ctx context.Context, requester entities.Identity, token string) (entities.OrderView, error) {
	if !requester.IsOperator() {
		return entities.OrderView{}, entities.ErrOperatorOnly
	}

	parsed, err := entities.ParseRedemptionToken(token)
	if err != nil {
		return entities.OrderView{}, err
	}

	order, err := s.loadOrder(ctx, parsed.OrderID)
	if err != nil {
		return entities.OrderView{}, err
	}
	if order.OwnerID != parsed.OwnerID {
		s.logger.Warn("redemption token owner mismatch",
			slog.String("order_id", order.ID),
			slog.String("scanner", requester.OwnerID),
		)
		return entities.OrderView{}, entities.ErrTokenMismatch
	}

	return entities.OrderView{Order: order, Event: s.displayEvent(ctx, order.EventID)}, nil
}

// GetUserHistory возвращает заказы владельца, новые первыми. Если событие
// недоступно в каталоге, подставляется заглушка.
func (s *orderService) GetUserHistory(ctx context.Context, ownerID string) ([]entities.OrderView, error) {
	if ownerID == "" {
		return nil, entities.ErrMissingOwnerID
	}

	var orders []entities.Order
	fn := func() error {
		var err error
		orders, err = s.repo.OrdersByOwner(ctx, ownerID)
		return err
	}
	if err := utils.Retry(s.readRetry(), fn); err != nil {
		return nil, fmt.Errorf("failed to get orders of %s: %w", ownerID, err)
	}

	events := s.displayEvents(ctx, orders)

	views := make([]entities.OrderView, 0, len(orders))
	for _, o := range orders {
		views = append(views, entities.OrderView{Order: o, Event: events[o.EventID]})
	}
	return views, nil
}

func (s *orderService) loadOrder(ctx context.Context, orderID string) (entities.Order, error) {
	var order entities.Order
	fn := func() error {
		var err error
		order, err = s.repo.GetOrderByID(ctx, orderID)
		return err
	}
	if err := utils.Retry(s.readRetry(), fn, entities.ErrOrderNotFound); err != nil {
		return entities.Order{}, fmt.Errorf("failed to get order %s: %w", orderID, err)
	}
	return order, nil
}

func (s *orderService) displayEvents(ctx context.Context, orders []entities.Order) map[int64]entities.EventSnapshot {
	events := make(map[int64]entities.EventSnapshot)
	for _, o := range orders {
		events[o.EventID] = entities.EventSnapshot{}
	}

	var (
		mu sync.Mutex
		wg sync.WaitGroup
	)
	for id := range events {
		id := id
		wg.Add(1)
		go func() {
			defer wg.Done()
			event := s.displayEvent(ctx, id)
			mu.Lock()
			events[id] = event
			mu.Unlock()
		}()
	}
	wg.Wait()
	return events
}

// displayEvent используется только для отображения сохранённых заказов.
func (s *orderService) displayEvent(ctx context.Context, eventID int64) entities.EventSnapshot {
	key := eventCacheKey(eventID)
	if data, ok := s.cache.Get(key); ok {
		var event entities.EventSnapshot
		err := event.Unmarshal(data)
		if err == nil {
			return event
		}
		s.logger.Error("failed to unmarshal cached event", slog.Int64("event_id", eventID), slog.Any("error", err))
	}

	event, err := s.catalog.GetEvent(ctx, eventID)
	if err != nil {
		s.logger.Warn("event unavailable, using placeholder", slog.Int64("event_id", eventID), slog.Any("error", err))
		return entities.PlaceholderEvent(eventID)
	}

	data, err := event.Marshal()
	if err != nil {
		s.logger.Error("failed to marshal event", slog.Int64("event_id", eventID), slog.Any("error", err))
		return event
	}
	s.cache.Set(key, data)
	return event
}

func (s *orderService) publish(ctx context.Context, t entities.OrderEventType, o entities.Order) {
	// Заказ уже зафиксирован, ошибка публикации не откатывает операцию.
	if err := s.publisher.PublishOrderEvent(ctx, entities.NewOrderEvent(t, o, s.clock.Now())); err != nil {
		s.logger.Error("failed to publish order event",
			slog.String("type", string(t)),
			slog.String("order_id", o.ID),
			slog.Any("error", err),
		)
	}
}

func (s *orderService) concurrentRetry() utils.RetryConfig {
	return utils.RetryConfig{
		MaxAttempts:  s.cfg.ClaimAttempts,
		InitialDelay: s.retryDelay,
		Multiplier:   2,
		RetryIf: func(err error) bool {
			return errors.Is(err, entities.ErrConcurrentUpdate)
		},
	}
}

// readRetry не повторяет чтение, если запрос уже отменён.
func (s *orderService) readRetry() utils.RetryConfig {
	return utils.RetryConfig{
		MaxAttempts:  3,
		InitialDelay: s.retryDelay,
		Multiplier:   2,
		RetryIf: func(err error) bool {
			return !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
		},
	}
}

func eventCacheKey(id int64) string {
	return "event:" + strconv.FormatInt(id, 10)
}
