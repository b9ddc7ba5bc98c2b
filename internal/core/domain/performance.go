package domain

import "github.com/shopspring/decimal"

// Direction labels the sign of a performance figure.
type Direction string

const (
	Gain Direction = "gain"
	Loss Direction = "loss"
)

var hundred = decimal.NewFromInt(100)

// Performance is derived on every read and never stored. When Available is false the
// deposit total was zero or negative and no percentage can be given.
type Performance struct {
	Available   bool
	ProfitCents int64
	Percent     decimal.Decimal
	Direction   Direction
}

// ComputePerformance compares a balance with the deposits that funded it.
// Percent is rounded to 2 decimal places, half away from zero.
func ComputePerformance(balanceCents, depositCents int64) Performance {
	if depositCents <= 0 {
		return Performance{}
	}
	profit := balanceCents - depositCents
	pct := decimal.NewFromInt(profit).
		Mul(hundred).
		DivRound(decimal.NewFromInt(depositCents), 2)

	dir := Gain
	if profit < 0 {
		dir = Loss
	}
	return Performance{
		Available:   true,
		ProfitCents: profit,
		Percent:     pct,
		Direction:   dir,
	}
}

// PercentFloat returns the rounded percentage as a float for JSON output, or nil when the
// figure is unavailable.
func (p Performance) PercentFloat() *float64 {
	if !p.Available {
		return nil
	}
	f, _ := p.Percent.Float64()
	return &f
}
