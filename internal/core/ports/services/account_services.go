package services

import (
	"context"

	"github.com/SscSPs/fund_balance_app/internal/core/domain"
	"github.com/SscSPs/fund_balance_app/internal/dto"
)

// AccountReaderSvc defines read operations for accounts
type AccountReaderSvc interface {
	// ListAccounts is admin-only; newest accounts first.
	ListAccounts(ctx context.Context, actor domain.Identity, limit, offset int) ([]domain.Account, error)

	// GetSelf returns the caller's own account merged with settings and snapshots.
	GetSelf(ctx context.Context, accountID int64) (*domain.InvestorSummary, error)
}

// AccountWriterSvc defines admin write operations for accounts
type AccountWriterSvc interface {
	CreateAccount(ctx context.Context, actor domain.Identity, req dto.CreateAccountRequest) (*domain.Account, error)
	SetBalance(ctx context.Context, actor domain.Identity, accountID int64, cents int64) error
	SetDeposit(ctx context.Context, actor domain.Identity, accountID int64, cents int64) error
}

// AccountCredentialSvc defines password management
type AccountCredentialSvc interface {
	// ResetPassword is admin-only and returns the new 6-digit plaintext exactly once.
	ResetPassword(ctx context.Context, actor domain.Identity, accountID int64) (string, error)

	// ChangePassword is self-service and requires the current password.
	ChangePassword(ctx context.Context, actor domain.Identity, currentPassword, newPassword string) error
}

// AccountLifecycleSvc defines operations for managing account lifecycle
type AccountLifecycleSvc interface {
	// DeleteAccount is admin-only and refuses to delete the caller's own account.
	DeleteAccount(ctx context.Context, actor domain.Identity, accountID int64) error
}

// AccountSvcFacade combines all account-related service interfaces
type AccountSvcFacade interface {
	AccountReaderSvc
	AccountWriterSvc
	AccountCredentialSvc
	AccountLifecycleSvc
}
