package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/fund_balance_app/internal/core/domain"
	portsrepo "github.com/SscSPs/fund_balance_app/internal/core/ports/repositories"
	"github.com/SscSPs/fund_balance_app/internal/models"
	"github.com/SscSPs/fund_balance_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxSnapshotRepository struct {
	BaseRepository
}

func newPgxSnapshotRepository(pool *pgxpool.Pool) *PgxSnapshotRepository {
	return &PgxSnapshotRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.SnapshotRepositoryFacade = (*PgxSnapshotRepository)(nil)

func (r *PgxSnapshotRepository) FindSnapshot(ctx context.Context, accountID int64, year int) (*domain.YearlySnapshot, error) {
	query := `
		SELECT account_id, year, deposit_cents, ending_balance_cents
		FROM yearly_snapshots
		WHERE account_id = $1 AND year = $2;
	`
	rows, err := r.Pool.Query(ctx, query, accountID, year)
	if err != nil {
		return nil, mapError(err, "failed to query yearly snapshot")
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.YearlySnapshot])
	if err != nil {
		return nil, mapError(err, "failed to scan yearly snapshot")
	}
	s := mapping.ToDomainSnapshot(m)
	return &s, nil
}

func (r *PgxSnapshotRepository) ListSnapshots(ctx context.Context, accountID int64) ([]domain.YearlySnapshot, error) {
	query := `
		SELECT account_id, year, deposit_cents, ending_balance_cents
		FROM yearly_snapshots
		WHERE account_id = $1
		ORDER BY year DESC;
	`
	rows, err := r.Pool.Query(ctx, query, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to list yearly snapshots: %w", err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.YearlySnapshot])
	if err != nil {
		return nil, fmt.Errorf("failed to scan yearly snapshots: %w", err)
	}
	return mapping.ToDomainSnapshotSlice(ms), nil
}

// UpsertSnapshot inserts the row or updates only the supplied columns.
func (r *PgxSnapshotRepository) UpsertSnapshot(ctx context.Context, update domain.SnapshotUpdate) (*domain.YearlySnapshot, error) {
	query := `
		INSERT INTO yearly_snapshots (account_id, year, deposit_cents, ending_balance_cents, updated_at)
		VALUES ($1, $2, COALESCE($3::BIGINT, 0), COALESCE($4::BIGINT, 0), NOW())
		ON CONFLICT (account_id, year) DO UPDATE SET
			deposit_cents = COALESCE($3::BIGINT, yearly_snapshots.deposit_cents),
			ending_balance_cents = COALESCE($4::BIGINT, yearly_snapshots.ending_balance_cents),
			updated_at = NOW()
		RETURNING account_id, year, deposit_cents, ending_balance_cents;
	`
	var m models.YearlySnapshot
	err := r.Pool.QueryRow(ctx, query, update.AccountID, update.Year, update.DepositCents, update.EndingBalanceCents).
		Scan(&m.AccountID, &m.Year, &m.DepositCents, &m.EndingBalanceCents)
	if err != nil {
		return nil, mapError(err, "failed to upsert yearly snapshot")
	}
	s := mapping.ToDomainSnapshot(m)
	return &s, nil
}
