package repo

import (
	"time"

	"github.com/SergeyBogomolovv/ticket-order-service/internal/entities"
	"github.com/shopspring/decimal"
)

type Order struct {
	OrderID         string          `db:"order_id"`
	OwnerID         string          `db:"owner_id"`
	EventID         int64           `db:"event_id"`
	PurchasedAt     time.Time       `db:"purchased_at"`
	Total           decimal.Decimal `db:"total"`
	Status          string          `db:"status"`
	RedemptionToken string          `db:"redemption_token"`
}

type Item struct {
	OrderID         string          `db:"order_id"`
	Position        int             `db:"position"`
	VariationID     int64           `db:"variation_id"`
	ProductName     string          `db:"product_name"`
	VariationName   string          `db:"variation_name"`
	Quantity        int             `db:"quantity"`
	Claimed         int             `db:"claimed"`
	PriceAtPurchase decimal.Decimal `db:"price_at_purchase"`
}

var orderColumns = []string{
	"order_id", "owner_id", "event_id", "purchased_at",
	"total", "status", "redemption_token",
}

var itemColumns = []string{
	"order_id", "position", "variation_id", "product_name",
	"variation_name", "quantity", "claimed", "price_at_purchase",
}

func ItemToEntity(i Item) entities.OrderItem {
	return entities.OrderItem{
		VariationID:     i.VariationID,
		ProductName:     i.ProductName,
		VariationName:   i.VariationName,
		Quantity:        i.Quantity,
		Claimed:         i.Claimed,
		PriceAtPurchase: i.PriceAtPurchase,
	}
}

// OrderToEntity переводит время покупки в loc, чтобы дата и время покупки
// совпадали с зафиксированными при создании.
func OrderToEntity(o Order, items []Item, loc *time.Location) entities.Order {
	order := entities.Order{
		ID:              o.OrderID,
		OwnerID:         o.OwnerID,
		EventID:         o.EventID,
		PurchasedAt:     o.PurchasedAt.In(loc),
		Total:           o.Total,
		Status:          entities.OrderStatus(o.Status),
		RedemptionToken: o.RedemptionToken,
		Items:           make([]entities.OrderItem, 0, len(items)),
	}

	// Позиции приходят отсортированными по position.
	for _, it := range items {
		order.Items = append(order.Items, ItemToEntity(it))
	}
	return order
}
