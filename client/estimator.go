// Package client is the Go counterpart of the browser page: it estimates
// charging cost/time and polls the backend for payment completion.
package client

import "errors"

// ErrInvalidPercent reports an estimate request outside the accepted range.
var ErrInvalidPercent = errors.New("invalid percentage range")

// Estimate is the projected charging time and cost for a battery delta.
type Estimate struct {
	Minutes int
	Cost    float64
	TimeMs  int64
}

// PricingPolicy turns a battery percentage delta into an estimate. The demo
// ships a linear placeholder; a real charging-rate model plugs in here.
type PricingPolicy interface {
	Quote(percent int) Estimate
}

// LinearPricing charges a flat per-percent rate.
type LinearPricing struct {
	MinutesPerPercent int
	CostPerPercent    float64
}

// DefaultPricing matches the demo formula: 1% = 1 minute and 2 currency units.
func DefaultPricing() LinearPricing {
	return LinearPricing{MinutesPerPercent: 1, CostPerPercent: 2}
}

// Quote prices the given percentage delta.
func (p LinearPricing) Quote(percent int) Estimate {
	minutes := percent * p.MinutesPerPercent
	return Estimate{
		Minutes: minutes,
		Cost:    float64(percent) * p.CostPerPercent,
		TimeMs:  int64(minutes) * 60 * 1000,
	}
}

// Estimator validates battery percentages and prices the required charge.
type Estimator struct {
	pricing PricingPolicy
}

// NewEstimator returns an estimator backed by the given policy, or the demo
// linear policy when nil.
func NewEstimator(pricing PricingPolicy) *Estimator {
	if pricing == nil {
		pricing = DefaultPricing()
	}
	return &Estimator{pricing: pricing}
}

// Estimate prices charging from current to required percent. Current must be
// within 0..99 and required above current, up to 100.
func (e *Estimator) Estimate(current, required int) (Estimate, error) {
	if current < 0 || current > 99 || required <= current || required > 100 {
		return Estimate{}, ErrInvalidPercent
	}
	return e.pricing.Quote(required - current), nil
}
