package handler

import (
	"github.com/SergeyBogomolovv/ticket-order-service/internal/entities"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04:05"
)

// Order представляет заказ
type Order struct {
	OrderID      string      `json:"orderId" example:"ORD-3F9A1B2C"`
	Event        *Event      `json:"event,omitempty"`
	EventID      int64       `json:"eventId" example:"1"`
	IsoDate      string      `json:"isoDate" example:"2026-05-01"`
	PurchaseTime string      `json:"purchaseTime" example:"20:30:00"`
	Total        string      `json:"total" example:"13.50"`
	Status       string      `json:"status" example:"PARTIALLY_CLAIMED"`
	QRCodeData   string      `json:"qrCodeData" example:"{\"orderId\":\"ORD-3F9A1B2C\",\"userId\":\"42\"}"`
	Items        []OrderItem `json:"items"`
}

// OrderItem позиция заказа
type OrderItem struct {
	VariationID     int64  `json:"variationId" example:"10"`
	ProductName     string `json:"productName" example:"Beer"`
	VariationName   string `json:"variationName" example:"0.5L"`
	Quantity        int    `json:"quantity" example:"2"`
	Claimed         int    `json:"claimed" example:"1"`
	PriceAtPurchase string `json:"priceAtPurchase" example:"5.00"`
}

// Event данные события из каталога
type Event struct {
	ID        int64  `json:"id" example:"1"`
	Name      string `json:"name" example:"Jazz Night"`
	IsoDate   string `json:"isoDate,omitempty" example:"2026-05-01"`
	StartTime string `json:"startTime,omitempty" example:"19:00:00"`
	EndTime   string `json:"endTime,omitempty" example:"23:00:00"`
	Location  string `json:"location,omitempty"`
	ImageURL  string `json:"imageUrl,omitempty"`
}

// CreateOrderRequest запрос на оформление заказа
type CreateOrderRequest struct {
	EventID int64      `json:"eventId" validate:"required,gt=0" example:"1"`
	Items   []CartItem `json:"items" validate:"required,min=1,dive"`
}

type CartItem struct {
	VariationID int64 `json:"variationId" validate:"required,gt=0" example:"10"`
	Quantity    int   `json:"quantity" validate:"required,gte=1" example:"2"`
}

// ClaimOrderRequest запрос на выдачу позиций
type ClaimOrderRequest struct {
	Items []ClaimItem `json:"items" validate:"required,min=1,dive"`
}

type ClaimItem struct {
	VariationID int64 `json:"variationId" validate:"required,gt=0" example:"10"`
	Quantity    int   `json:"quantity" validate:"required,gte=1" example:"1"`
}

// ScanRequest содержимое отсканированного QR кода
type ScanRequest struct {
	Token string `json:"token" validate:"required"`
}

// ClaimMessage сообщение сканера из Kafka
type ClaimMessage struct {
	Credential     string             `json:"credential" validate:"required"`
	OrderID        string             `json:"order_id" validate:"required"`
	IdempotencyKey string             `json:"idempotency_key" validate:"omitempty,max=128"`
	Items          []ClaimMessageItem `json:"items" validate:"required,min=1,dive"`
}

type ClaimMessageItem struct {
	VariationID int64 `json:"variation_id" validate:"required,gt=0"`
	Quantity    int   `json:"quantity" validate:"required,gte=1"`
}

func OrderEntityToJSON(o entities.Order) Order {
	items := make([]OrderItem, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, OrderItem{
			VariationID:     it.VariationID,
			ProductName:     it.ProductName,
			VariationName:   it.VariationName,
			Quantity:        it.Quantity,
			Claimed:         it.Claimed,
			PriceAtPurchase: it.PriceAtPurchase.StringFixed(2),
		})
	}

	return Order{
		OrderID:      o.ID,
		EventID:      o.EventID,
		IsoDate:      o.PurchasedAt.Format(dateLayout),
		PurchaseTime: o.PurchasedAt.Format(timeLayout),
		Total:        o.Total.StringFixed(2),
		Status:       string(o.Status),
		QRCodeData:   o.RedemptionToken,
		Items:        items,
	}
}

func OrderViewToJSON(v entities.OrderView) Order {
	order := OrderEntityToJSON(v.Order)
	event := EventEntityToJSON(v.Event)
	order.Event = &event
	return order
}

func EventEntityToJSON(e entities.EventSnapshot) Event {
	return Event{
		ID:        e.ID,
		Name:      e.Name,
		IsoDate:   e.Date,
		StartTime: e.StartTime,
		EndTime:   e.EndTime,
		Location:  e.Location,
		ImageURL:  e.ImageURL,
	}
}

func CartJSONToEntity(items []CartItem) []entities.CartLine {
	lines := make([]entities.CartLine, 0, len(items))
	for _, it := range items {
		lines = append(lines, entities.CartLine{VariationID: it.VariationID, Quantity: it.Quantity})
	}
	return lines
}

func ClaimJSONToEntity(items []ClaimItem) []entities.ClaimLine {
	lines := make([]entities.ClaimLine, 0, len(items))
	for _, it := range items {
		lines = append(lines, entities.ClaimLine{VariationID: it.VariationID, Quantity: it.Quantity})
	}
	return lines
}

func ClaimMessageToEntity(items []ClaimMessageItem) []entities.ClaimLine {
	lines := make([]entities.ClaimLine, 0, len(items))
	for _, it := range items {
		lines = append(lines, entities.ClaimLine{VariationID: it.VariationID, Quantity: it.Quantity})
	}
	return lines
}

func claimedQuantity(lines []entities.ClaimLine) int {
	total := 0
	for _, l := range lines {
		total += l.Quantity
	}
	return total
}

