package models

import (
	"time"
)

// Order tracks one charge-purchase transaction, keyed by the payment
// gateway's order id. Paid only ever moves false -> true.
type Order struct {
	OrderID   string     `json:"orderId"`
	Amount    float64    `json:"amount"`
	TimeMs    int64      `json:"timeMs"`
	Paid      bool       `json:"paid"`
	CreatedAt time.Time  `json:"created_at"`
	PaidAt    *time.Time `json:"paid_at,omitempty"`
}
