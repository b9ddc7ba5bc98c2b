package repositories

import (
	"context"

	"github.com/SscSPs/fund_balance_app/internal/core/domain"
)

// SnapshotReader defines read operations for yearly snapshots
type SnapshotReader interface {
	// FindSnapshot returns apperrors.ErrNotFound when no row exists for (accountID, year).
	FindSnapshot(ctx context.Context, accountID int64, year int) (*domain.YearlySnapshot, error)

	// ListSnapshots returns every snapshot of an account, latest year first.
	ListSnapshots(ctx context.Context, accountID int64) ([]domain.YearlySnapshot, error)
}

// SnapshotWriter defines write operations for yearly snapshots
type SnapshotWriter interface {
	// UpsertSnapshot applies a partial update keyed by (account, year) and returns the stored row.
	UpsertSnapshot(ctx context.Context, update domain.SnapshotUpdate) (*domain.YearlySnapshot, error)
}

// SnapshotRepositoryFacade combines all snapshot-related repository interfaces
type SnapshotRepositoryFacade interface {
	SnapshotReader
	SnapshotWriter
}
