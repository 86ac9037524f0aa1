package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/SergeyBogomolovv/ticket-order-service/internal/entities"
	"github.com/SergeyBogomolovv/ticket-order-service/pkg/trm"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

const (
	codeUniqueViolation      = "23505"
	codeSerializationFailure = "40001"
	codeDeadlockDetected     = "40P01"

	ordersPrimaryKey = "orders_pkey"
)

type postgresRepo struct {
	db  *sqlx.DB
	qb  sq.StatementBuilderType
	loc *time.Location
}

type Option func(*postgresRepo)

// WithLocation задаёт зону, в которой фиксируется время покупки. purchased_at
// хранится как TIMESTAMPTZ, а драйвер возвращает его в зоне сессии БД.
func WithLocation(loc *time.Location) Option {
	return func(r *postgresRepo) {
		if loc != nil {
			r.loc = loc
		}
	}
}

func NewPostgresRepo(db *sqlx.DB, opts ...Option) *postgresRepo {
	r := &postgresRepo{
		db:  db,
		qb:  sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
		loc: time.UTC,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// SaveOrder вставляет заказ и его позиции. Существующий order_id никогда не
// перезаписывается: повтор возвращает ErrOrderIDConflict.
func (r *postgresRepo) SaveOrder(ctx context.Context, o entities.Order) error {
	query, args := r.qb.Insert("orders").
		Columns(orderColumns...).
		Values(o.ID, o.OwnerID, o.EventID, o.PurchasedAt, o.Total, string(o.Status), o.RedemptionToken).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		if isUniqueViolation(err, ordersPrimaryKey) {
			return entities.ErrOrderIDConflict
		}
		return fmt.Errorf("failed to save order: %w", mapError(err))
	}

	if len(o.Items) == 0 {
		return nil
	}

	q := r.qb.Insert("order_items").Columns(itemColumns...)
	for i, it := range o.Items {
		q = q.Values(
			o.ID,
			i,
			it.VariationID,
			it.ProductName,
			it.VariationName,
			it.Quantity,
			it.Claimed,
			it.PriceAtPurchase,
		)
	}

	query, args = q.MustSql()
	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save items: %w", mapError(err))
	}
	return nil
}

func (r *postgresRepo) GetOrderByID(ctx context.Context, orderID string) (entities.Order, error) {
	return r.getOrder(ctx, orderID, false)
}

// GetOrderForUpdate блокирует строку заказа до конца текущей транзакции.
// Все изменения заказа (выдача, отмена) проходят через эту блокировку.
func (r *postgresRepo) GetOrderForUpdate(ctx context.Context, orderID string) (entities.Order, error) {
	if trm.ExtractTx(ctx) == nil {
		return entities.Order{}, errors.New("order lock requires a transaction")
	}
	return r.getOrder(ctx, orderID, true)
}

func (r *postgresRepo) getOrder(ctx context.Context, orderID string, lock bool) (entities.Order, error) {
	q := r.qb.Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"order_id": orderID})
	if lock {
		q = q.Suffix("FOR UPDATE")
	}
	query, args := q.MustSql()

	var order Order
	err := r.getContext(ctx, &order, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to get order: %w", mapError(err))
	}

	query, args = r.qb.Select(itemColumns...).
		From("order_items").
		Where(sq.Eq{"order_id": orderID}).
		OrderBy("position").
		MustSql()

	var items []Item
	if err := r.selectContext(ctx, &items, query, args...); err != nil {
		return entities.Order{}, fmt.Errorf("failed to get items: %w", mapError(err))
	}

	return OrderToEntity(order, items, r.loc), nil
}

func (r *postgresRepo) OrdersByOwner(ctx context.Context, ownerID string) ([]entities.Order, error) {
	// Новые заказы первыми
	query, args := r.qb.Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"owner_id": ownerID}).
		OrderBy("purchased_at DESC", "order_id").
		MustSql()

	var orders []Order
	if err := r.selectContext(ctx, &orders, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select orders: %w", mapError(err))
	}

	if len(orders) == 0 {
		return []entities.Order{}, nil
	}

	ids := make([]string, len(orders))
	for i, order := range orders {
		ids[i] = order.OrderID
	}

	// Получаем позиции одним запросом
	query, args = r.qb.Select(itemColumns...).
		From("order_items").
		Where(sq.Eq{"order_id": ids}).
		OrderBy("order_id", "position").
		MustSql()

	var items []Item
	if err := r.selectContext(ctx, &items, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select items: %w", mapError(err))
	}
	itemsMap := make(map[string][]Item, len(ids))
	for _, item := range items {
		itemsMap[item.OrderID] = append(itemsMap[item.OrderID], item)
	}

	result := make([]entities.Order, 0, len(orders))
	for _, order := range orders {
		result = append(result, OrderToEntity(order, itemsMap[order.OrderID], r.loc))
	}
	return result, nil
}

// UpdateClaims сохраняет счётчики выдачи всех позиций и статус заказа.
func (r *postgresRepo) UpdateClaims(ctx context.Context, o entities.Order) error {
	for _, it := range o.Items {
		query, args := r.qb.Update("order_items").
			Set("claimed", it.Claimed).
			Where(sq.Eq{"order_id": o.ID, "variation_id": it.VariationID}).
			MustSql()

		if _, err := r.execContext(ctx, query, args...); err != nil {
			return fmt.Errorf("failed to update item %d: %w", it.VariationID, mapError(err))
		}
	}
	return r.UpdateStatus(ctx, o.ID, o.Status)
}

func (r *postgresRepo) UpdateStatus(ctx context.Context, orderID string, status entities.OrderStatus) error {
	query, args := r.qb.Update("orders").
		Set("status", string(status)).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"order_id": orderID}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update order status: %w", mapError(err))
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return entities.ErrOrderNotFound
	}
	return nil
}

func (r *postgresRepo) ClaimKeyExists(ctx context.Context, orderID, key string) (bool, error) {
	query, args := r.qb.Select("1").
		Prefix("SELECT EXISTS (").
		From("order_claim_keys").
		Where(sq.Eq{"order_id": orderID, "idempotency_key": key}).
		Suffix(")").
		MustSql()

	var exists bool
	if err := r.getContext(ctx, &exists, query, args...); err != nil {
		return false, fmt.Errorf("failed to check claim key: %w", mapError(err))
	}
	return exists, nil
}

func (r *postgresRepo) SaveClaimKey(ctx context.Context, orderID, key string) error {
	query, args := r.qb.Insert("order_claim_keys").
		Columns("order_id", "idempotency_key").
		Values(orderID, key).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		if isUniqueViolation(err, "") {
			return entities.ErrConcurrentUpdate
		}
		return fmt.Errorf("failed to save claim key: %w", mapError(err))
	}
	return nil
}

func isUniqueViolation(err error, constraint string) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) || pqErr.Code != codeUniqueViolation {
		return false
	}
	return constraint == "" || pqErr.Constraint == constraint
}

// mapError превращает временные ошибки сериализации в ErrConcurrentUpdate,
// чтобы сервис мог повторить транзакцию.
func mapError(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case codeSerializationFailure, codeDeadlockDetected:
			return errors.Join(entities.ErrConcurrentUpdate, err)
		}
	}
	return err
}

func (r *postgresRepo) execContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.ExecContext(ctx, query, args...)
	}
	return r.db.ExecContext(ctx, query, args...)
}

func (r *postgresRepo) getContext(ctx context.Context, dest any, query string, args ...any) error {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.GetContext(ctx, dest, query, args...)
	}
	return r.db.GetContext(ctx, dest, query, args...)
}

func (r *postgresRepo) selectContext(ctx context.Context, dest any, query string, args ...any) error {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.SelectContext(ctx, dest, query, args...)
	}
	return r.db.SelectContext(ctx, dest, query, args...)
}
