package domain_test

import (
	"testing"

	"github.com/SscSPs/fund_balance_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestComputePerformance(t *testing.T) {
	tests := []struct {
		name      string
		balance   int64
		deposit   int64
		available bool
		profit    int64
		pct       string
		direction domain.Direction
	}{
		{name: "twenty percent gain", balance: 12000, deposit: 10000, available: true, profit: 2000, pct: "20.00", direction: domain.Gain},
		{name: "break even counts as gain", balance: 5000, deposit: 5000, available: true, profit: 0, pct: "0.00", direction: domain.Gain},
		{name: "loss keeps sign", balance: 7500, deposit: 10000, available: true, profit: -2500, pct: "-25.00", direction: domain.Loss},
		{name: "rounds to two places", balance: 10001, deposit: 30000, available: true, profit: -19999, pct: "-66.66", direction: domain.Loss},
		{name: "rounds half away from zero", balance: 100005, deposit: 100000, available: true, profit: 5, pct: "0.01", direction: domain.Gain},
		{name: "zero deposit has no data", balance: 12000, deposit: 0},
		{name: "negative deposit has no data", balance: 12000, deposit: -100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := domain.ComputePerformance(tt.balance, tt.deposit)
			assert.Equal(t, tt.available, got.Available)
			if !tt.available {
				assert.Nil(t, got.PercentFloat())
				assert.Zero(t, got.ProfitCents)
				return
			}
			assert.Equal(t, tt.profit, got.ProfitCents)
			assert.True(t, decimal.RequireFromString(tt.pct).Equal(got.Percent), "got %s", got.Percent)
			assert.Equal(t, tt.pct, got.Percent.StringFixed(2))
			assert.Equal(t, tt.direction, got.Direction)
		})
	}
}

func TestPercentFloat(t *testing.T) {
	p := domain.ComputePerformance(12000, 10000)
	if assert.NotNil(t, p.PercentFloat()) {
		assert.InDelta(t, 20.0, *p.PercentFloat(), 1e-9)
	}
}

func TestSnapshotPerformanceUsesEndingBalance(t *testing.T) {
	s := domain.YearlySnapshot{Year: 2024, DepositCents: 10000, EndingBalanceCents: 11000}
	assert.Equal(t, int64(1000), s.Performance().ProfitCents)
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "a@x.com", domain.NormalizeEmail("  A@X.com "))
}

func TestRoleAndSettingKeys(t *testing.T) {
	assert.True(t, domain.RoleAdmin.Valid())
	assert.True(t, domain.RoleUser.Valid())
	assert.False(t, domain.Role("owner").Valid())

	assert.True(t, domain.SettingPreloginMessage.Known())
	assert.False(t, domain.SettingKey("theme").Known())
}
