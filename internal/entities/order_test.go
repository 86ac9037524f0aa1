package entities_test

import (
	"regexp"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/ticket-order-service/internal/entities"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func item(variationID int64, quantity, claimed int, price string) entities.OrderItem {
	return entities.OrderItem{
		VariationID:     variationID,
		Quantity:        quantity,
		Claimed:         claimed,
		PriceAtPurchase: decimal.RequireFromString(price),
	}
}

func TestDeriveStatus(t *testing.T) {
	testCases := []struct {
		name  string
		items []entities.OrderItem
		want  entities.OrderStatus
	}{
		{
			name:  "nothing claimed",
			items: []entities.OrderItem{item(1, 2, 0, "5"), item(2, 1, 0, "3.5")},
			want:  entities.StatusCompleted,
		},
		{
			name:  "one item partially claimed",
			items: []entities.OrderItem{item(1, 2, 1, "5"), item(2, 1, 0, "3.5")},
			want:  entities.StatusPartiallyClaimed,
		},
		{
			name:  "one item full, other untouched",
			items: []entities.OrderItem{item(1, 2, 2, "5"), item(2, 1, 0, "3.5")},
			want:  entities.StatusPartiallyClaimed,
		},
		{
			name:  "everything claimed",
			items: []entities.OrderItem{item(1, 2, 2, "5"), item(2, 1, 1, "3.5")},
			want:  entities.StatusFullyClaimed,
		},
		{
			name:  "single item partially claimed",
			items: []entities.OrderItem{item(1, 3, 2, "5")},
			want:  entities.StatusPartiallyClaimed,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, entities.DeriveStatus(tc.items))
		})
	}
}

func TestDeriveStatus_SameClaimStateSameStatus(t *testing.T) {
	a := []entities.OrderItem{item(1, 2, 1, "5"), item(2, 1, 1, "3.5")}
	b := []entities.OrderItem{item(7, 2, 1, "100"), item(9, 1, 1, "0.01")}

	assert.Equal(t, entities.DeriveStatus(a), entities.DeriveStatus(b))
}

func newTestOrder() entities.Order {
	items := []entities.OrderItem{item(1, 2, 0, "5.00"), item(2, 1, 0, "3.50")}
	return entities.NewOrder("ORD-TEST0001", "user-1", 10, time.Date(2025, 5, 1, 20, 0, 0, 0, time.UTC), items)
}

func TestNewOrder(t *testing.T) {
	o := newTestOrder()

	assert.True(t, decimal.RequireFromString("13.50").Equal(o.Total), "total %s", o.Total)
	assert.Equal(t, entities.StatusCompleted, o.Status)
	assert.JSONEq(t, `{"orderId":"ORD-TEST0001","userId":"user-1"}`, o.RedemptionToken)
	for _, it := range o.Items {
		assert.Zero(t, it.Claimed)
	}
}

func TestItemsTotal_Exact(t *testing.T) {
	items := []entities.OrderItem{item(1, 3, 0, "0.10"), item(2, 7, 0, "19.99"), item(3, 1, 0, "0.01")}

	assert.Equal(t, "140.24", entities.ItemsTotal(items).StringFixed(2))
}

func TestOrder_WithID(t *testing.T) {
	o := newTestOrder().WithID("ORD-AAAA0000")

	assert.Equal(t, "ORD-AAAA0000", o.ID)
	token, err := entities.ParseRedemptionToken(o.RedemptionToken)
	require.NoError(t, err)
	assert.Equal(t, "ORD-AAAA0000", token.OrderID)
	assert.Equal(t, "user-1", token.OwnerID)
}

func TestOrder_ApplyClaims(t *testing.T) {
	testCases := []struct {
		name        string
		prepare     func(o *entities.Order)
		lines       []entities.ClaimLine
		wantErr     error
		wantClaimed map[int64]int
		wantStatus  entities.OrderStatus
	}{
		{
			name:        "partial claim",
			lines:       []entities.ClaimLine{{VariationID: 1, Quantity: 1}},
			wantClaimed: map[int64]int{1: 1, 2: 0},
			wantStatus:  entities.StatusPartiallyClaimed,
		},
		{
			name:        "full claim in one request",
			lines:       []entities.ClaimLine{{VariationID: 1, Quantity: 2}, {VariationID: 2, Quantity: 1}},
			wantClaimed: map[int64]int{1: 2, 2: 1},
			wantStatus:  entities.StatusFullyClaimed,
		},
		{
			name:        "duplicate lines are summed",
			lines:       []entities.ClaimLine{{VariationID: 1, Quantity: 1}, {VariationID: 1, Quantity: 1}},
			wantClaimed: map[int64]int{1: 2, 2: 0},
			wantStatus:  entities.StatusPartiallyClaimed,
		},
		{
			name:        "duplicate lines exceeding quantity",
			lines:       []entities.ClaimLine{{VariationID: 1, Quantity: 2}, {VariationID: 1, Quantity: 1}},
			wantErr:     entities.ErrOverClaim,
			wantClaimed: map[int64]int{1: 0, 2: 0},
			wantStatus:  entities.StatusCompleted,
		},
		{
			name:        "over claim leaves other lines untouched",
			lines:       []entities.ClaimLine{{VariationID: 1, Quantity: 1}, {VariationID: 2, Quantity: 2}},
			wantErr:     entities.ErrOverClaim,
			wantClaimed: map[int64]int{1: 0, 2: 0},
			wantStatus:  entities.StatusCompleted,
		},
		{
			name:        "unknown variation",
			lines:       []entities.ClaimLine{{VariationID: 1, Quantity: 1}, {VariationID: 99, Quantity: 1}},
			wantErr:     entities.ErrInvalidRequest,
			wantClaimed: map[int64]int{1: 0, 2: 0},
			wantStatus:  entities.StatusCompleted,
		},
		{
			name:        "zero quantity",
			lines:       []entities.ClaimLine{{VariationID: 1, Quantity: 0}},
			wantErr:     entities.ErrInvalidRequest,
			wantClaimed: map[int64]int{1: 0, 2: 0},
			wantStatus:  entities.StatusCompleted,
		},
		{
			name:        "empty claim",
			wantErr:     entities.ErrEmptyClaim,
			wantClaimed: map[int64]int{1: 0, 2: 0},
			wantStatus:  entities.StatusCompleted,
		},
		{
			name: "cancelled order",
			prepare: func(o *entities.Order) {
				o.Status = entities.StatusCancelled
			},
			lines:       []entities.ClaimLine{{VariationID: 1, Quantity: 1}},
			wantErr:     entities.ErrInvalidState,
			wantClaimed: map[int64]int{1: 0, 2: 0},
			wantStatus:  entities.StatusCancelled,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			o := newTestOrder()
			if tc.prepare != nil {
				tc.prepare(&o)
			}

			err := o.ApplyClaims(tc.lines)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
			} else {
				require.NoError(t, err)
			}

			for variationID, claimed := range tc.wantClaimed {
				it, ok := o.Item(variationID)
				require.True(t, ok)
				assert.Equal(t, claimed, it.Claimed, "variation %d", variationID)
			}
			assert.Equal(t, tc.wantStatus, o.Status)
		})
	}
}

func TestOrder_ClaimScenario(t *testing.T) {
	o := newTestOrder()

	require.NoError(t, o.ApplyClaims([]entities.ClaimLine{{VariationID: 1, Quantity: 1}}))
	assert.Equal(t, entities.StatusPartiallyClaimed, o.Status)

	require.NoError(t, o.ApplyClaims([]entities.ClaimLine{{VariationID: 1, Quantity: 1}, {VariationID: 2, Quantity: 1}}))
	assert.Equal(t, entities.StatusFullyClaimed, o.Status)

	before := o.Clone()
	err := o.ApplyClaims([]entities.ClaimLine{{VariationID: 1, Quantity: 1}})
	assert.ErrorIs(t, err, entities.ErrOverClaim)
	assert.Equal(t, before, o)
	assert.True(t, decimal.RequireFromString("13.50").Equal(o.Total))
}

func TestOrder_Cancel(t *testing.T) {
	testCases := []struct {
		name    string
		status  entities.OrderStatus
		wantErr error
	}{
		{name: "completed", status: entities.StatusCompleted},
		{name: "partially claimed", status: entities.StatusPartiallyClaimed},
		{name: "fully claimed", status: entities.StatusFullyClaimed, wantErr: entities.ErrInvalidState},
		{name: "already cancelled", status: entities.StatusCancelled, wantErr: entities.ErrInvalidState},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			o := newTestOrder()
			o.Status = tc.status

			err := o.Cancel()
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				assert.Equal(t, tc.status, o.Status)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, entities.StatusCancelled, o.Status)
		})
	}
}

func TestNormalizeCart(t *testing.T) {
	testCases := []struct {
		name    string
		lines   []entities.CartLine
		want    []entities.CartLine
		wantErr error
	}{
		{
			name:  "merges duplicates keeping first position",
			lines: []entities.CartLine{{VariationID: 2, Quantity: 1}, {VariationID: 1, Quantity: 2}, {VariationID: 2, Quantity: 3}},
			want:  []entities.CartLine{{VariationID: 2, Quantity: 4}, {VariationID: 1, Quantity: 2}},
		},
		{name: "empty", wantErr: entities.ErrEmptyCart},
		{
			name:    "zero quantity",
			lines:   []entities.CartLine{{VariationID: 1, Quantity: 0}},
			wantErr: entities.ErrInvalidQuantity,
		},
		{
			name:    "missing variation",
			lines:   []entities.CartLine{{Quantity: 1}},
			wantErr: entities.ErrInvalidVariation,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := entities.NormalizeCart(tc.lines)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				assert.ErrorIs(t, err, entities.ErrInvalidRequest)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestNewOrderID(t *testing.T) {
	re := regexp.MustCompile(`^ORD-[0-9A-Z]{8}$`)
	seen := make(map[string]struct{})
	for n := 0; n < 100; n++ {
		id := entities.NewOrderID()
		assert.Regexp(t, re, id)
		seen[id] = struct{}{}
	}
	assert.Len(t, seen, 100)
}

func TestParseRedemptionToken(t *testing.T) {
	_, err := entities.ParseRedemptionToken("not json")
	assert.ErrorIs(t, err, entities.ErrInvalidToken)

	_, err = entities.ParseRedemptionToken(`{"orderId":"ORD-1"}`)
	assert.ErrorIs(t, err, entities.ErrInvalidToken)

	token := entities.RedemptionToken{OrderID: "ORD-1", OwnerID: "u"}
	got, err := entities.ParseRedemptionToken(token.Encode())
	require.NoError(t, err)
	assert.Equal(t, token, got)
}

func TestEventSnapshot_Marshal(t *testing.T) {
	e := entities.EventSnapshot{ID: 3, Name: "Fest", Price: decimal.RequireFromString("12.50")}

	data, err := e.Marshal()
	require.NoError(t, err)

	var got entities.EventSnapshot
	require.NoError(t, got.Unmarshal(data))
	assert.Equal(t, e.ID, got.ID)
	assert.Equal(t, e.Name, got.Name)
	assert.True(t, e.Price.Equal(got.Price))
}

func TestIdentity_CanAccess(t *testing.T) {
	o := newTestOrder()

	assert.True(t, entities.Identity{OwnerID: "user-1", Role: entities.RoleUser}.CanAccess(o))
	assert.False(t, entities.Identity{OwnerID: "user-2", Role: entities.RoleUser}.CanAccess(o))
	assert.True(t, entities.Identity{OwnerID: "scanner-1", Role: entities.RoleScanner}.CanAccess(o))
	assert.True(t, entities.Identity{OwnerID: "admin-1", Role: entities.RoleAdmin}.CanAccess(o))
}
