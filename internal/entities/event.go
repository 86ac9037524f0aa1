package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderEventType string

const (
	OrderCreated   OrderEventType = "order.created"
	OrderClaimed   OrderEventType = "order.claimed"
	OrderCancelled OrderEventType = "order.cancelled"
)

// OrderEvent публикуется после коммита изменения заказа.
type OrderEvent struct {
	Type       OrderEventType
	OrderID    string
	OwnerID    string
	EventID    int64
	Status     OrderStatus
	Total      decimal.Decimal
	OccurredAt time.Time
}

func NewOrderEvent(t OrderEventType, o Order, at time.Time) OrderEvent {
	return OrderEvent{
		Type:       t,
		OrderID:    o.ID,
		OwnerID:    o.OwnerID,
		EventID:    o.EventID,
		Status:     o.Status,
		Total:      o.Total,
		OccurredAt: at,
	}
}
