package store

import (
	"fmt"
	"sync"
	"time"

	"github.com/evcharge/chargepay/models"
)

// MemoryStore is a mutex-guarded in-memory OrderStore. Records are never
// evicted; demo scope only.
type MemoryStore struct {
	mu     sync.RWMutex
	orders map[string]*models.Order
	now    func() time.Time
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		orders: make(map[string]*models.Order),
		now:    time.Now,
	}
}

// Save records a new order with the paid flag as provided (normally false).
func (s *MemoryStore) Save(order *models.Order) error {
	if order == nil || order.OrderID == "" {
		return fmt.Errorf("order id is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.orders[order.OrderID]; exists {
		return fmt.Errorf("order %s already exists", order.OrderID)
	}

	stored := *order
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = s.now()
	}
	s.orders[order.OrderID] = &stored
	return nil
}

// Get returns a copy of the stored order.
func (s *MemoryStore) Get(orderID string) (*models.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	order, ok := s.orders[orderID]
	if !ok {
		return nil, ErrOrderNotFound
	}
	cp := *order
	return &cp, nil
}

// MarkPaid flips the paid flag under the write lock. Only the first caller
// for a given order sees transitioned=true; later calls are no-ops.
func (s *MemoryStore) MarkPaid(orderID string) (*models.Order, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	order, ok := s.orders[orderID]
	if !ok {
		return nil, false, ErrOrderNotFound
	}
	if order.Paid {
		cp := *order
		return &cp, false, nil
	}

	order.Paid = true
	paidAt := s.now()
	order.PaidAt = &paidAt
	cp := *order
	return &cp, true, nil
}
