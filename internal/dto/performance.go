package dto

import "github.com/SscSPs/fund_balance_app/internal/core/domain"

// PerformanceResponse is the derived gain/loss. It is serialized as null when deposits are
// zero or negative.
type PerformanceResponse struct {
	ProfitCents int64            `json:"profit_cents"`
	Pct         float64          `json:"pct"`
	Direction   domain.Direction `json:"direction"`
}

// ToPerformanceResponse returns nil when the performance is unavailable.
func ToPerformanceResponse(p domain.Performance) *PerformanceResponse {
	pct := p.PercentFloat()
	if pct == nil {
		return nil
	}
	return &PerformanceResponse{
		ProfitCents: p.ProfitCents,
		Pct:         *pct,
		Direction:   p.Direction,
	}
}
