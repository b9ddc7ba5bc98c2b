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

const accountColumns = `id, email, password_hash, password_version, role, balance_cents, deposit_cents, created_at`

type PgxAccountRepository struct {
	BaseRepository
}

// newPgxAccountRepository creates a new repository for account data.
func newPgxAccountRepository(pool *pgxpool.Pool) *PgxAccountRepository {
	return &PgxAccountRepository{BaseRepository{Pool: pool}}
}

// Ensure PgxAccountRepository implements portsrepo.AccountRepositoryFacade
var _ portsrepo.AccountRepositoryFacade = (*PgxAccountRepository)(nil)

func (r *PgxAccountRepository) findOne(ctx context.Context, where string, arg any) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE ` + where
	rows, err := r.Pool.Query(ctx, query, arg)
	if err != nil {
		return nil, mapError(err, "failed to query account")
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Account])
	if err != nil {
		return nil, mapError(err, "failed to scan account")
	}
	acc := mapping.ToDomainAccount(m)
	return &acc, nil
}

func (r *PgxAccountRepository) FindAccountByID(ctx context.Context, accountID int64) (*domain.Account, error) {
	return r.findOne(ctx, `id = $1`, accountID)
}

func (r *PgxAccountRepository) FindAccountByEmail(ctx context.Context, email string) (*domain.Account, error) {
	return r.findOne(ctx, `lower(email) = lower($1)`, domain.NormalizeEmail(email))
}

func (r *PgxAccountRepository) ListAccounts(ctx context.Context, limit, offset int) ([]domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts ORDER BY created_at DESC, id DESC LIMIT $1 OFFSET $2`
	rows, err := r.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Account])
	if err != nil {
		return nil, fmt.Errorf("failed to scan accounts: %w", err)
	}
	return mapping.ToDomainAccountSlice(ms), nil
}

func (r *PgxAccountRepository) SaveAccount(ctx context.Context, account *domain.Account) error {
	m := mapping.ToModelAccount(*account)
	query := `
		INSERT INTO accounts (email, password_hash, password_version, role, balance_cents, deposit_cents, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id;
	`
	err := r.Pool.QueryRow(ctx, query,
		domain.NormalizeEmail(m.Email),
		m.PasswordHash,
		m.PasswordVersion,
		m.Role,
		m.BalanceCents,
		m.DepositCents,
		m.CreatedAt,
	).Scan(&account.ID)
	if err != nil {
		return mapError(err, "failed to save account")
	}
	return nil
}

func (r *PgxAccountRepository) UpdateBalance(ctx context.Context, accountID int64, cents int64) error {
	tag, err := r.Pool.Exec(ctx, `UPDATE accounts SET balance_cents = $1 WHERE id = $2`, cents, accountID)
	if err != nil {
		return fmt.Errorf("failed to update balance for account %d: %w", accountID, err)
	}
	return expectOneRow(tag)
}

func (r *PgxAccountRepository) UpdateDeposit(ctx context.Context, accountID int64, cents int64) error {
	tag, err := r.Pool.Exec(ctx, `UPDATE accounts SET deposit_cents = $1 WHERE id = $2`, cents, accountID)
	if err != nil {
		return fmt.Errorf("failed to update deposit for account %d: %w", accountID, err)
	}
	return expectOneRow(tag)
}

func (r *PgxAccountRepository) UpdatePasswordHash(ctx context.Context, accountID int64, passwordHash string) error {
	tag, err := r.Pool.Exec(ctx,
		`UPDATE accounts SET password_hash = $1, password_version = password_version + 1 WHERE id = $2`,
		passwordHash, accountID)
	if err != nil {
		return fmt.Errorf("failed to update password for account %d: %w", accountID, err)
	}
	return expectOneRow(tag)
}

// DeleteAccount removes the account; yearly snapshots go with it via ON DELETE CASCADE.
func (r *PgxAccountRepository) DeleteAccount(ctx context.Context, accountID int64) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM accounts WHERE id = $1`, accountID)
	if err != nil {
		return fmt.Errorf("failed to delete account %d: %w", accountID, err)
	}
	return expectOneRow(tag)
}
