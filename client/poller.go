package client

import (
	"context"
	"errors"
	"time"
)

// ErrPollTimeout reports that the attempt budget ran out before payment.
var ErrPollTimeout = errors.New("payment verification timeout")

// StatusFunc reports whether an order has been paid.
type StatusFunc func(ctx context.Context, orderID string) (bool, error)

// StatusPoller checks an order's payment state on a fixed cadence. The
// sleep function is injectable so tests run without wall-clock delays.
type StatusPoller struct {
	Interval    time.Duration
	MaxAttempts int

	sleep func(ctx context.Context, d time.Duration) error
}

// NewStatusPoller returns a poller with the demo cadence: every 5 seconds,
// 60 attempts (about 5 minutes).
func NewStatusPoller() *StatusPoller {
	return &StatusPoller{
		Interval:    5 * time.Second,
		MaxAttempts: 60,
		sleep:       sleepCtx,
	}
}

// Wait polls until the order is paid, the attempt budget is exhausted, or
// ctx ends. Each attempt sleeps one interval and then checks.
func (p *StatusPoller) Wait(ctx context.Context, orderID string, check StatusFunc) error {
	sleep := p.sleep
	if sleep == nil {
		sleep = sleepCtx
	}

	for attempt := 0; attempt < p.MaxAttempts; attempt++ {
		if err := sleep(ctx, p.Interval); err != nil {
			return err
		}
		paid, err := check(ctx, orderID)
		if err != nil {
			return err
		}
		if paid {
			return nil
		}
	}
	return ErrPollTimeout
}

// sleepCtx waits for d unless ctx ends first.
func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
