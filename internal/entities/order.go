package entities

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	StatusCompleted        OrderStatus = "COMPLETED"
	StatusPartiallyClaimed OrderStatus = "PARTIALLY_CLAIMED"
	StatusFullyClaimed     OrderStatus = "FULLY_CLAIMED"
	StatusCancelled        OrderStatus = "CANCELLED"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case StatusCompleted, StatusPartiallyClaimed, StatusFullyClaimed, StatusCancelled:
		return true
	}
	return false
}

const orderIDPrefix = "ORD-"

type Order struct {
	ID              string
	OwnerID         string
	EventID         int64
	PurchasedAt     time.Time
	Total           decimal.Decimal
	Status          OrderStatus
	RedemptionToken string

	Items []OrderItem
}

type OrderItem struct {
	VariationID     int64
	ProductName     string
	VariationName   string
	Quantity        int
	PriceAtPurchase decimal.Decimal
	Claimed         int
}

// OrderView - заказ вместе с данными события для отображения.
type OrderView struct {
	Order Order
	Event EventSnapshot
}

// ClaimResult - итог выдачи. Replayed: ключ идемпотентности уже был записан,
// позиции повторно не выдавались.
type ClaimResult struct {
	Order    Order
	Replayed bool
}

type CartLine struct {
	VariationID int64
	Quantity    int
}

type ClaimLine struct {
	VariationID int64
	Quantity    int
}

// NewOrderID возвращает идентификатор вида ORD-3F9A1B2C.
func NewOrderID() string {
	return orderIDPrefix + strings.ToUpper(uuid.NewString()[:8])
}

// NormalizeCart проверяет корзину и объединяет строки с одной вариацией.
func NormalizeCart(lines []CartLine) ([]CartLine, error) {
	if len(lines) == 0 {
		return nil, ErrEmptyCart
	}

	merged := make([]CartLine, 0, len(lines))
	index := make(map[int64]int, len(lines))
	for _, l := range lines {
		if l.VariationID <= 0 {
			return nil, ErrInvalidVariation
		}
		if l.Quantity < 1 {
			return nil, ErrInvalidQuantity
		}
		if i, ok := index[l.VariationID]; ok {
			merged[i].Quantity += l.Quantity
			continue
		}
		index[l.VariationID] = len(merged)
		merged = append(merged, l)
	}
	return merged, nil
}

// NewOrderItem снимает снапшот цены и названий вариации.
func NewOrderItem(v VariationSnapshot, quantity int) OrderItem {
	return OrderItem{
		VariationID:     v.ID,
		ProductName:     v.ProductName,
		VariationName:   v.Name,
		Quantity:        quantity,
		PriceAtPurchase: v.Price,
	}
}

// NewOrder собирает новый заказ. Итог считается один раз и больше не пересчитывается.
func NewOrder(id, ownerID string, eventID int64, purchasedAt time.Time, items []OrderItem) Order {
	o := Order{
		ID:          id,
		OwnerID:     ownerID,
		EventID:     eventID,
		PurchasedAt: purchasedAt,
		Total:       ItemsTotal(items),
		Status:      StatusCompleted,
		Items:       items,
	}
	o.RedemptionToken = RedemptionToken{OrderID: id, OwnerID: ownerID}.Encode()
	return o
}

// WithID возвращает копию заказа с новым идентификатором и токеном.
func (o Order) WithID(id string) Order {
	o.ID = id
	o.RedemptionToken = RedemptionToken{OrderID: id, OwnerID: o.OwnerID}.Encode()
	return o
}

func ItemsTotal(items []OrderItem) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.PriceAtPurchase.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	return total
}

// DeriveStatus вычисляет статус только из пар (claimed, quantity).
func DeriveStatus(items []OrderItem) OrderStatus {
	untouched, full := 0, 0
	for _, it := range items {
		switch {
		case it.Claimed == 0:
			untouched++
		case it.Claimed >= it.Quantity:
			full++
		}
	}

	switch {
	case untouched == len(items):
		return StatusCompleted
	case full == len(items):
		return StatusFullyClaimed
	default:
		return StatusPartiallyClaimed
	}
}

// ApplyClaims применяет все строки или ни одной.
func (o *Order) ApplyClaims(lines []ClaimLine) error {
	if o.Status == StatusCancelled {
		return ErrOrderCancelled
	}
	if len(lines) == 0 {
		return ErrEmptyClaim
	}

	index := make(map[int64]int, len(o.Items))
	for i, it := range o.Items {
		index[it.VariationID] = i
	}

	requested := make(map[int]int, len(lines))
	for _, l := range lines {
		if l.Quantity < 1 {
			return ErrInvalidQuantity
		}
		i, ok := index[l.VariationID]
		if !ok {
			return fmt.Errorf("%w: %d", ErrItemNotInOrder, l.VariationID)
		}
		requested[i] += l.Quantity
	}

	for i, qty := range requested {
		it := o.Items[i]
		if it.Claimed+qty > it.Quantity {
			return fmt.Errorf("%w: variation %d has %d of %d claimed, requested %d",
				ErrOverClaim, it.VariationID, it.Claimed, it.Quantity, qty)
		}
	}

	for i, qty := range requested {
		o.Items[i].Claimed += qty
	}
	o.Status = DeriveStatus(o.Items)
	return nil
}

// Cancel переводит заказ в CANCELLED. Полностью выданный заказ отменить нельзя.
func (o *Order) Cancel() error {
	switch o.Status {
	case StatusCancelled:
		return ErrOrderCancelled
	case StatusFullyClaimed:
		return ErrOrderFullyClaimed
	}
	o.Status = StatusCancelled
	return nil
}

func (o Order) Item(variationID int64) (OrderItem, bool) {
	for _, it := range o.Items {
		if it.VariationID == variationID {
			return it, true
		}
	}
	return OrderItem{}, false
}

// Clone копирует заказ вместе со срезом позиций.
func (o Order) Clone() Order {
	items := make([]OrderItem, len(o.Items))
	copy(items, o.Items)
	o.Items = items
	return o
}
