package store

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/evcharge/chargepay/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreSaveAndGet(t *testing.T) {
	s := NewMemoryStore()

	err := s.Save(&models.Order{OrderID: "order_abc", Amount: 10, TimeMs: 60000})
	require.NoError(t, err)

	got, err := s.Get("order_abc")
	require.NoError(t, err)
	assert.Equal(t, "order_abc", got.OrderID)
	assert.Equal(t, 10.0, got.Amount)
	assert.Equal(t, int64(60000), got.TimeMs)
	assert.False(t, got.Paid)
	assert.False(t, got.CreatedAt.IsZero())

	// Mutating the returned copy must not touch the stored record.
	got.Paid = true
	again, err := s.Get("order_abc")
	require.NoError(t, err)
	assert.False(t, again.Paid)
}

func TestMemoryStoreSaveRejectsBadInput(t *testing.T) {
	s := NewMemoryStore()

	assert.Error(t, s.Save(nil))
	assert.Error(t, s.Save(&models.Order{}))

	require.NoError(t, s.Save(&models.Order{OrderID: "order_dup"}))
	assert.Error(t, s.Save(&models.Order{OrderID: "order_dup"}))
}

func TestMemoryStoreGetMissing(t *testing.T) {
	s := NewMemoryStore()

	_, err := s.Get("nonexistent")
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestMemoryStoreMarkPaidTransitionsOnce(t *testing.T) {
	s := NewMemoryStore()
	require.NoError(t, s.Save(&models.Order{OrderID: "order_abc", Amount: 10, TimeMs: 60000}))

	order, transitioned, err := s.MarkPaid("order_abc")
	require.NoError(t, err)
	assert.True(t, transitioned)
	assert.True(t, order.Paid)
	require.NotNil(t, order.PaidAt)

	// A duplicate webhook delivery must not win the transition again.
	order, transitioned, err = s.MarkPaid("order_abc")
	require.NoError(t, err)
	assert.False(t, transitioned)
	assert.True(t, order.Paid)
}

func TestMemoryStoreMarkPaidMissing(t *testing.T) {
	s := NewMemoryStore()

	_, _, err := s.MarkPaid("nonexistent")
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestMemoryStoreMarkPaidConcurrentSingleWinner(t *testing.T) {
	s := NewMemoryStore()
	require.NoError(t, s.Save(&models.Order{OrderID: "order_abc", TimeMs: 1000}))

	var winners int64
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, transitioned, err := s.MarkPaid("order_abc")
			if err == nil && transitioned {
				atomic.AddInt64(&winners, 1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(1), winners)
}
