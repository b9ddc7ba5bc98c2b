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

const accountColumns = `id, email, password_hash, password_version, role, balance_cents, deposit_cents, created_at`

type SQLiteAccountRepository struct {
	BaseRepository
}

func newSQLiteAccountRepository(db *sqlx.DB) *SQLiteAccountRepository {
	return &SQLiteAccountRepository{BaseRepository{DB: db}}
}

var _ portsrepo.AccountRepositoryFacade = (*SQLiteAccountRepository)(nil)

func (r *SQLiteAccountRepository) FindAccountByID(ctx context.Context, accountID int64) (*domain.Account, error) {
	var m models.Account
	err := r.DB.GetContext(ctx, &m, `SELECT `+accountColumns+` FROM accounts WHERE id = ?`, accountID)
	if err != nil {
		return nil, mapError(err, fmt.Sprintf("failed to find account %d", accountID))
	}
	acc := mapping.ToDomainAccount(m)
	return &acc, nil
}

// FindAccountByEmail relies on the NOCASE collation of the email column.
func (r *SQLiteAccountRepository) FindAccountByEmail(ctx context.Context, email string) (*domain.Account, error) {
	var m models.Account
	err := r.DB.GetContext(ctx, &m, `SELECT `+accountColumns+` FROM accounts WHERE email = ?`, domain.NormalizeEmail(email))
	if err != nil {
		return nil, mapError(err, "failed to find account by email")
	}
	acc := mapping.ToDomainAccount(m)
	return &acc, nil
}

func (r *SQLiteAccountRepository) ListAccounts(ctx context.Context, limit, offset int) ([]domain.Account, error) {
	var ms []models.Account
	err := r.DB.SelectContext(ctx, &ms,
		`SELECT `+accountColumns+` FROM accounts ORDER BY created_at DESC, id DESC LIMIT ? OFFSET ?`,
		limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	return mapping.ToDomainAccountSlice(ms), nil
}

func (r *SQLiteAccountRepository) SaveAccount(ctx context.Context, account *domain.Account) error {
	m := mapping.ToModelAccount(*account)
	m.Email = domain.NormalizeEmail(m.Email)
	res, err := r.DB.NamedExecContext(ctx, `
		INSERT INTO accounts (email, password_hash, password_version, role, balance_cents, deposit_cents, created_at)
		VALUES (:email, :password_hash, :password_version, :role, :balance_cents, :deposit_cents, :created_at)
	`, m)
	if err != nil {
		return mapError(err, "failed to save account")
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read new account id: %w", err)
	}
	account.ID = id
	return nil
}

func (r *SQLiteAccountRepository) UpdateBalance(ctx context.Context, accountID int64, cents int64) error {
	res, err := r.DB.ExecContext(ctx, `UPDATE accounts SET balance_cents = ? WHERE id = ?`, cents, accountID)
	if err != nil {
		return fmt.Errorf("failed to update balance for account %d: %w", accountID, err)
	}
	return expectOneRow(res, "failed to update balance")
}

func (r *SQLiteAccountRepository) UpdateDeposit(ctx context.Context, accountID int64, cents int64) error {
	res, err := r.DB.ExecContext(ctx, `UPDATE accounts SET deposit_cents = ? WHERE id = ?`, cents, accountID)
	if err != nil {
		return fmt.Errorf("failed to update deposit for account %d: %w", accountID, err)
	}
	return expectOneRow(res, "failed to update deposit")
}

func (r *SQLiteAccountRepository) UpdatePasswordHash(ctx context.Context, accountID int64, passwordHash string) error {
	res, err := r.DB.ExecContext(ctx,
		`UPDATE accounts SET password_hash = ?, password_version = password_version + 1 WHERE id = ?`,
		passwordHash, accountID)
	if err != nil {
		return fmt.Errorf("failed to update password for account %d: %w", accountID, err)
	}
	return expectOneRow(res, "failed to update password")
}

// DeleteAccount removes the account; yearly snapshots go with it via ON DELETE CASCADE.
func (r *SQLiteAccountRepository) DeleteAccount(ctx context.Context, accountID int64) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM accounts WHERE id = ?`, accountID)
	if err != nil {
		return fmt.Errorf("failed to delete account %d: %w", accountID, err)
	}
	return expectOneRow(res, "failed to delete account")
}
