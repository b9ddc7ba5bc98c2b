package repositories

import (
	"context"

	"github.com/SscSPs/fund_balance_app/internal/core/domain"
)

// AccountReader defines read operations for account data
type AccountReader interface {
	// FindAccountByID retrieves an account by its ID. Returns apperrors.ErrNotFound when absent.
	FindAccountByID(ctx context.Context, accountID int64) (*domain.Account, error)

	// FindAccountByEmail retrieves an account by its normalized email.
	FindAccountByEmail(ctx context.Context, email string) (*domain.Account, error)

	// ListAccounts retrieves accounts, newest first.
	ListAccounts(ctx context.Context, limit, offset int) ([]domain.Account, error)
}

// AccountWriter defines write operations for account data
type AccountWriter interface {
	// SaveAccount inserts a new account and fills in its ID.
	// Returns apperrors.ErrDuplicate when the email is taken.
	SaveAccount(ctx context.Context, account *domain.Account) error

	// UpdateBalance overwrites the current balance.
	UpdateBalance(ctx context.Context, accountID int64, cents int64) error

	// UpdateDeposit overwrites the cumulative deposit total.
	UpdateDeposit(ctx context.Context, accountID int64, cents int64) error

	// UpdatePasswordHash stores a new hash and bumps the password version.
	UpdatePasswordHash(ctx context.Context, accountID int64, passwordHash string) error
}

// AccountLifecycleManager defines operations for managing account lifecycle
type AccountLifecycleManager interface {
	// DeleteAccount removes the account and its yearly snapshots.
	DeleteAccount(ctx context.Context, accountID int64) error
}

// AccountRepositoryFacade combines all account-related repository interfaces
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
	AccountLifecycleManager
}
