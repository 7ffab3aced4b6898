// Package store holds order lifecycle records behind an injectable
// interface so a persistent backing store can be substituted without
// touching the order service.
package store

import (
	"errors"

	"github.com/evcharge/chargepay/models"
)

// ErrOrderNotFound is returned when no record exists for an order id.
var ErrOrderNotFound = errors.New("order not found")

// OrderStore persists order lifecycle state.
type OrderStore interface {
	// Save records a new order. The order id must be set and unused.
	Save(order *models.Order) error
	// Get returns a copy of the order with the given id.
	Get(orderID string) (*models.Order, error)
	// MarkPaid atomically flips the order's paid flag. The bool reports
	// whether this call performed the false->true transition, so callers
	// can act exactly once per order under concurrent webhook retries.
	MarkPaid(orderID string) (*models.Order, bool, error)
}
