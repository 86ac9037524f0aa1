package entities

import "github.com/shopspring/decimal"

// UnknownEventName подставляется в историю заказов, когда каталог недоступен.
const UnknownEventName = "Unknown Event"

// EventSnapshot - данные события из каталога на момент чтения.
type EventSnapshot struct {
	ID        int64
	Name      string
	Date      string
	StartTime string
	EndTime   string
	Location  string
	ImageURL  string
	Price     decimal.Decimal
}

// PlaceholderEvent используется только при отображении уже сохранённых заказов.
func PlaceholderEvent(id int64) EventSnapshot {
	return EventSnapshot{ID: id, Name: UnknownEventName}
}

// VariationSnapshot - текущая цена и названия вариации товара.
type VariationSnapshot struct {
	ID          int64
	Name        string
	ProductName string
	Price       decimal.Decimal
	Stock       int
}
