package repo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/SergeyBogomolovv/ticket-order-service/internal/entities"
	"github.com/SergeyBogomolovv/ticket-order-service/pkg/trm"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockRepo(t *testing.T) (*postgresRepo, *sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })

	db := sqlx.NewDb(mockDB, "postgres")
	return NewPostgresRepo(db), db, mock
}

func testOrder() entities.Order {
	items := []entities.OrderItem{
		{VariationID: 1, ProductName: "Beer", VariationName: "0.5L", Quantity: 2, PriceAtPurchase: decimal.RequireFromString("4.50")},
		{VariationID: 2, ProductName: "Ticket", VariationName: "VIP", Quantity: 1, PriceAtPurchase: decimal.RequireFromString("4.50")},
	}
	return entities.NewOrder("ORD-1A2B3C4D", "u-1", 7, time.Date(2026, 5, 1, 20, 0, 0, 0, time.UTC), items)
}

func TestPostgresRepo_SaveOrder(t *testing.T) {
	r, _, mock := newMockRepo(t)
	o := testOrder()

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO orders")).
		WithArgs(o.ID, o.OwnerID, o.EventID, o.PurchasedAt, sqlmock.AnyArg(), "COMPLETED", o.RedemptionToken).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO order_items")).
		WillReturnResult(sqlmock.NewResult(0, 2))

	require.NoError(t, r.SaveOrder(context.Background(), o))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepo_SaveOrder_IDConflict(t *testing.T) {
	r, _, mock := newMockRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO orders")).
		WillReturnError(&pq.Error{Code: codeUniqueViolation, Constraint: ordersPrimaryKey})

	err := r.SaveOrder(context.Background(), testOrder())
	assert.ErrorIs(t, err, entities.ErrOrderIDConflict)
	assert.ErrorIs(t, err, entities.ErrConflict)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepo_GetOrderByID(t *testing.T) {
	r, _, mock := newMockRepo(t)
	purchased := time.Date(2026, 5, 1, 20, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("FROM orders WHERE order_id = $1")).
		WithArgs("ORD-1A2B3C4D").
		WillReturnRows(sqlmock.NewRows(orderColumns).
			AddRow("ORD-1A2B3C4D", "u-1", int64(7), purchased, "13.50", "PARTIALLY_CLAIMED", `{"orderId":"ORD-1A2B3C4D","userId":"u-1"}`))
	mock.ExpectQuery(regexp.QuoteMeta("FROM order_items WHERE order_id = $1 ORDER BY position")).
		WithArgs("ORD-1A2B3C4D").
		WillReturnRows(sqlmock.NewRows(itemColumns).
			AddRow("ORD-1A2B3C4D", 0, int64(1), "Beer", "0.5L", 2, 1, "4.50").
			AddRow("ORD-1A2B3C4D", 1, int64(2), "Ticket", "VIP", 1, 0, "4.50"))

	order, err := r.GetOrderByID(context.Background(), "ORD-1A2B3C4D")
	require.NoError(t, err)

	assert.Equal(t, entities.StatusPartiallyClaimed, order.Status)
	assert.True(t, decimal.RequireFromString("13.5").Equal(order.Total))
	require.Len(t, order.Items, 2)
	assert.Equal(t, int64(1), order.Items[0].VariationID)
	assert.Equal(t, 1, order.Items[0].Claimed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepo_PurchaseTimeInOrderZone(t *testing.T) {
	// Время покупки фиксируется в зоне заказов, а сессия БД отдаёт UTC.
	zone := time.FixedZone("UTC+2", 2*60*60)

	testCases := []struct {
		name     string
		stored   time.Time
		wantDate string
		wantTime string
	}{
		{
			name:     "same day",
			stored:   time.Date(2026, 5, 1, 18, 30, 0, 0, time.UTC),
			wantDate: "2026-05-01",
			wantTime: "20:30:00",
		},
		{
			name:     "crosses midnight",
			stored:   time.Date(2026, 4, 30, 23, 15, 0, 0, time.UTC),
			wantDate: "2026-05-01",
			wantTime: "01:15:00",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockDB, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer mockDB.Close()
			r := NewPostgresRepo(sqlx.NewDb(mockDB, "postgres"), WithLocation(zone))

			mock.ExpectQuery(regexp.QuoteMeta("FROM orders WHERE owner_id = $1")).
				WithArgs("u-1").
				WillReturnRows(sqlmock.NewRows(orderColumns).
					AddRow("ORD-1A2B3C4D", "u-1", int64(7), tc.stored, "9.00", "COMPLETED", `{"orderId":"ORD-1A2B3C4D","userId":"u-1"}`))
			mock.ExpectQuery(regexp.QuoteMeta("FROM order_items")).
				WillReturnRows(sqlmock.NewRows(itemColumns).
					AddRow("ORD-1A2B3C4D", 0, int64(1), "Beer", "0.5L", 2, 0, "4.50"))

			orders, err := r.OrdersByOwner(context.Background(), "u-1")
			require.NoError(t, err)
			require.Len(t, orders, 1)

			assert.True(t, tc.stored.Equal(orders[0].PurchasedAt))
			assert.Equal(t, tc.wantDate, orders[0].PurchasedAt.Format(time.DateOnly))
			assert.Equal(t, tc.wantTime, orders[0].PurchasedAt.Format(time.TimeOnly))
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestPostgresRepo_GetOrderByID_NotFound(t *testing.T) {
	r, _, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM orders")).
		WillReturnRows(sqlmock.NewRows(orderColumns))

	_, err := r.GetOrderByID(context.Background(), "ORD-00000000")
	assert.ErrorIs(t, err, entities.ErrOrderNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepo_GetOrderForUpdate(t *testing.T) {
	r, db, mock := newMockRepo(t)

	_, err := r.GetOrderForUpdate(context.Background(), "ORD-1A2B3C4D")
	require.Error(t, err)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("FOR UPDATE")).
		WillReturnError(&pq.Error{Code: codeSerializationFailure})
	mock.ExpectRollback()

	err = trm.NewManager(db).Do(context.Background(), func(ctx context.Context) error {
		_, err := r.GetOrderForUpdate(ctx, "ORD-1A2B3C4D")
		return err
	})
	assert.ErrorIs(t, err, entities.ErrConcurrentUpdate)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepo_OrdersByOwner_Empty(t *testing.T) {
	r, _, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY purchased_at DESC")).
		WithArgs("u-1").
		WillReturnRows(sqlmock.NewRows(orderColumns))

	orders, err := r.OrdersByOwner(context.Background(), "u-1")
	require.NoError(t, err)
	assert.Empty(t, orders)
	assert.NotNil(t, orders)
}

func TestPostgresRepo_UpdateStatus_NotFound(t *testing.T) {
	r, _, mock := newMockRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE orders SET status = $1")).
		WithArgs("CANCELLED", "ORD-00000000").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := r.UpdateStatus(context.Background(), "ORD-00000000", entities.StatusCancelled)
	assert.ErrorIs(t, err, entities.ErrOrderNotFound)
}

func TestPostgresRepo_ClaimKeys(t *testing.T) {
	r, _, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS")).
		WithArgs("ORD-1A2B3C4D", "key-1").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO order_claim_keys")).
		WithArgs("ORD-1A2B3C4D", "key-2").
		WillReturnError(&pq.Error{Code: codeUniqueViolation, Constraint: "order_claim_keys_pkey"})

	exists, err := r.ClaimKeyExists(context.Background(), "ORD-1A2B3C4D", "key-1")
	require.NoError(t, err)
	assert.True(t, exists)

	err = r.SaveClaimKey(context.Background(), "ORD-1A2B3C4D", "key-2")
	assert.ErrorIs(t, err, entities.ErrConcurrentUpdate)
}

func TestMapError(t *testing.T) {
	testCases := []struct {
		name       string
		err        error
		concurrent bool
	}{
		{name: "serialization failure", err: &pq.Error{Code: codeSerializationFailure}, concurrent: true},
		{name: "deadlock", err: &pq.Error{Code: codeDeadlockDetected}, concurrent: true},
		{name: "other pq error", err: &pq.Error{Code: "23503"}},
		{name: "plain error", err: errors.New("boom")},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := mapError(tc.err)
			assert.Equal(t, tc.concurrent, errors.Is(err, entities.ErrConcurrentUpdate))
			assert.ErrorIs(t, err, tc.err)
		})
	}
}
