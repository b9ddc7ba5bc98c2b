package mapping

import (
	"github.com/SscSPs/fund_balance_app/internal/core/domain"
	"github.com/SscSPs/fund_balance_app/internal/models"
)

// ToDomainSnapshot converts a model YearlySnapshot to a domain YearlySnapshot
func ToDomainSnapshot(m models.YearlySnapshot) domain.YearlySnapshot {
	return domain.YearlySnapshot{
		AccountID:          m.AccountID,
		Year:               m.Year,
		DepositCents:       m.DepositCents,
		EndingBalanceCents: m.EndingBalanceCents,
	}
}

// ToDomainSnapshotSlice converts a slice of model snapshots to domain snapshots
func ToDomainSnapshotSlice(ms []models.YearlySnapshot) []domain.YearlySnapshot {
	ds := make([]domain.YearlySnapshot, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainSnapshot(m)
	}
	return ds
}
