package entities

import (
	"encoding/json"
	"strings"
)

// RedemptionToken - содержимое QR кода заказа. Не подписан и не является
// учётными данными: владелец перепроверяется на сервере.
type RedemptionToken struct {
	OrderID string `json:"orderId"`
	OwnerID string `json:"userId"`
}

func (t RedemptionToken) Encode() string {
	data, _ := json.Marshal(t)
	return string(data)
}

func ParseRedemptionToken(raw string) (RedemptionToken, error) {
	var t RedemptionToken
	if err := json.Unmarshal([]byte(strings.TrimSpace(raw)), &t); err != nil {
		return RedemptionToken{}, ErrInvalidToken
	}
	if t.OrderID == "" || t.OwnerID == "" {
		return RedemptionToken{}, ErrInvalidToken
	}
	return t, nil
}
