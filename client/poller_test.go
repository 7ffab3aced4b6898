package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPoller(maxAttempts int, sleeps *int) *StatusPoller {
	return &StatusPoller{
		Interval:    5 * time.Second,
		MaxAttempts: maxAttempts,
		sleep: func(ctx context.Context, d time.Duration) error {
			*sleeps++
			return nil
		},
	}
}

func TestWaitResolvesWhenPaid(t *testing.T) {
	sleeps := 0
	p := newTestPoller(60, &sleeps)

	checks := 0
	check := func(ctx context.Context, orderID string) (bool, error) {
		checks++
		return checks == 3, nil
	}

	err := p.Wait(context.Background(), "order_abc", check)
	require.NoError(t, err)
	assert.Equal(t, 3, checks)
	assert.Equal(t, 3, sleeps)
}

func TestWaitTimesOutAfterBudget(t *testing.T) {
	sleeps := 0
	p := newTestPoller(60, &sleeps)

	checks := 0
	check := func(ctx context.Context, orderID string) (bool, error) {
		checks++
		return false, nil
	}

	err := p.Wait(context.Background(), "order_abc", check)
	assert.ErrorIs(t, err, ErrPollTimeout)
	assert.Equal(t, 60, checks)
	assert.Equal(t, 60, sleeps)
}

func TestWaitPropagatesCheckErrors(t *testing.T) {
	sleeps := 0
	p := newTestPoller(60, &sleeps)

	boom := errors.New("backend down")
	err := p.Wait(context.Background(), "order_abc", func(ctx context.Context, orderID string) (bool, error) {
		return false, boom
	})
	assert.ErrorIs(t, err, boom)
}

func TestWaitStopsOnCancel(t *testing.T) {
	p := NewStatusPoller()
	p.Interval = time.Hour

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := p.Wait(ctx, "order_abc", func(ctx context.Context, orderID string) (bool, error) {
		t.Fatal("check should not run after cancel")
		return false, nil
	})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestStatusClientCheckPaid(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/check-status/order_paid":
			json.NewEncoder(w).Encode(map[string]interface{}{"paid": true})
		case "/check-status/order_pending":
			json.NewEncoder(w).Encode(map[string]interface{}{"paid": false})
		default:
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(map[string]string{"error": "order_not_found"})
		}
	}))
	defer srv.Close()

	c := NewStatusClient(srv.URL)

	paid, err := c.CheckPaid(context.Background(), "order_paid")
	require.NoError(t, err)
	assert.True(t, paid)

	paid, err = c.CheckPaid(context.Background(), "order_pending")
	require.NoError(t, err)
	assert.False(t, paid)

	_, err = c.CheckPaid(context.Background(), "order_unknown")
	assert.Error(t, err)
}
