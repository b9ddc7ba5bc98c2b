package sqlite

import (
	"context"
	"fmt"

	"github.com/SscSPs/fund_balance_app/internal/core/domain"
	portsrepo "github.com/SscSPs/fund_balance_app/internal/core/ports/repositories"
	"github.com/SscSPs/fund_balance_app/internal/models"
	"github.com/SscSPs/fund_balance_app/internal/utils/mapping"
	"github.com/jmoiron/sqlx"
)

const snapshotColumns = `account_id, year, deposit_cents, ending_balance_cents`

type SQLiteSnapshotRepository struct {
	BaseRepository
}

func newSQLiteSnapshotRepository(db *sqlx.DB) *SQLiteSnapshotRepository {
	return &SQLiteSnapshotRepository{BaseRepository{DB: db}}
}

var _ portsrepo.SnapshotRepositoryFacade = (*SQLiteSnapshotRepository)(nil)

func (r *SQLiteSnapshotRepository) FindSnapshot(ctx context.Context, accountID int64, year int) (*domain.YearlySnapshot, error) {
	var m models.YearlySnapshot
	err := r.DB.GetContext(ctx, &m,
		`SELECT `+snapshotColumns+` FROM yearly_snapshots WHERE account_id = ? AND year = ?`,
		accountID, year)
	if err != nil {
		return nil, mapError(err, "failed to find yearly snapshot")
	}
	s := mapping.ToDomainSnapshot(m)
	return &s, nil
}

func (r *SQLiteSnapshotRepository) ListSnapshots(ctx context.Context, accountID int64) ([]domain.YearlySnapshot, error) {
	var ms []models.YearlySnapshot
	err := r.DB.SelectContext(ctx, &ms,
		`SELECT `+snapshotColumns+` FROM yearly_snapshots WHERE account_id = ? ORDER BY year DESC`,
		accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to list yearly snapshots: %w", err)
	}
	return mapping.ToDomainSnapshotSlice(ms), nil
}

// UpsertSnapshot inserts the row or updates only the supplied columns.
func (r *SQLiteSnapshotRepository) UpsertSnapshot(ctx context.Context, update domain.SnapshotUpdate) (*domain.YearlySnapshot, error) {
	query := `
		INSERT INTO yearly_snapshots (account_id, year, deposit_cents, ending_balance_cents, updated_at)
		VALUES (?1, ?2, COALESCE(?3, 0), COALESCE(?4, 0), CURRENT_TIMESTAMP)
		ON CONFLICT (account_id, year) DO UPDATE SET
			deposit_cents = COALESCE(?3, deposit_cents),
			ending_balance_cents = COALESCE(?4, ending_balance_cents),
			updated_at = CURRENT_TIMESTAMP
		RETURNING ` + snapshotColumns
	var m models.YearlySnapshot
	err := r.DB.GetContext(ctx, &m, query, update.AccountID, update.Year, update.DepositCents, update.EndingBalanceCents)
	if err != nil {
		return nil, mapError(err, "failed to upsert yearly snapshot")
	}
	s := mapping.ToDomainSnapshot(m)
	return &s, nil
}
