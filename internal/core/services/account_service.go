package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/fund_balance_app/internal/apperrors"
	"github.com/SscSPs/fund_balance_app/internal/core/domain"
	portsrepo "github.com/SscSPs/fund_balance_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/fund_balance_app/internal/core/ports/services"
	"github.com/SscSPs/fund_balance_app/internal/dto"
	"github.com/SscSPs/fund_balance_app/internal/utils"
	"github.com/go-playground/validator/v10"
)

const (
	resetCodeDigits   = 6
	minPasswordLength = 6
	maxPasswordLength = 128
	defaultListLimit  = 100
	maxListLimit      = 1000
)

// accountService implements the AccountSvcFacade interface
type accountService struct {
	BaseService
	accountRepo  portsrepo.AccountRepositoryFacade
	settingRepo  portsrepo.SettingRepositoryFacade
	snapshotRepo portsrepo.SnapshotReader
	validate     *validator.Validate
}

// ServiceOption is a functional option for configuring the account service
type ServiceOption func(*accountService)

// WithSettingRepository lets GetSelf include the "last updated" label
func WithSettingRepository(repo portsrepo.SettingRepositoryFacade) ServiceOption {
	return func(s *accountService) {
		s.settingRepo = repo
	}
}

// WithSnapshotRepository lets GetSelf include yearly snapshots
func WithSnapshotRepository(repo portsrepo.SnapshotReader) ServiceOption {
	return func(s *accountService) {
		s.snapshotRepo = repo
	}
}

// NewAccountService creates a new account service with the provided options
func NewAccountService(repo portsrepo.AccountRepositoryFacade, options ...ServiceOption) portssvc.AccountSvcFacade {
	svc := &accountService{
		accountRepo: repo,
		validate:    newValidator(),
	}

	// Apply all options
	for _, option := range options {
		option(svc)
	}

	return svc
}

// newValidator reads the same struct tags gin uses for request binding.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.SetTagName("binding")
	return v
}

var _ portssvc.AccountSvcFacade = (*accountService)(nil)

func (s *accountService) CreateAccount(ctx context.Context, actor domain.Identity, req dto.CreateAccountRequest) (*domain.Account, error) {
	if err := s.RequireAdmin(ctx, actor, "create account"); err != nil {
		return nil, err
	}

	req.Email = domain.NormalizeEmail(req.Email)
	if req.Role == "" {
		req.Role = domain.RoleUser
	}
	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}

	_, err := s.accountRepo.FindAccountByEmail(ctx, req.Email)
	if err == nil {
		return nil, fmt.Errorf("%w: email %s is already registered", apperrors.ErrDuplicate, req.Email)
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to check for existing account")
		return nil, fmt.Errorf("failed to check existing account: %w", err)
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		s.LogError(ctx, err, "Failed to hash password")
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	account := domain.Account{
		Email:           req.Email,
		PasswordHash:    hash,
		PasswordVersion: 1,
		Role:            req.Role,
		CreatedAt:       time.Now().UTC(),
	}
	if err := s.accountRepo.SaveAccount(ctx, &account); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			s.LogError(ctx, err, "Failed to save account")
		}
		return nil, err
	}

	s.LogInfo(ctx, "Account created",
		slog.Int64("account_id", account.ID),
		slog.String("role", string(account.Role)),
		slog.Int64("actor_id", actor.AccountID))
	return &account, nil
}

func (s *accountService) SetBalance(ctx context.Context, actor domain.Identity, accountID int64, cents int64) error {
	if err := s.RequireAdmin(ctx, actor, "set balance"); err != nil {
		return err
	}
	if !dto.ValidCents(cents) {
		return apperrors.Validationf("amount out of range")
	}
	if err := s.accountRepo.UpdateBalance(ctx, accountID, cents); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to update balance", slog.Int64("account_id", accountID))
		}
		return err
	}
	s.LogInfo(ctx, "Balance updated", slog.Int64("account_id", accountID), slog.Int64("balance_cents", cents))
	return nil
}

func (s *accountService) SetDeposit(ctx context.Context, actor domain.Identity, accountID int64, cents int64) error {
	if err := s.RequireAdmin(ctx, actor, "set deposit"); err != nil {
		return err
	}
	if !dto.ValidCents(cents) {
		return apperrors.Validationf("amount out of range")
	}
	if err := s.accountRepo.UpdateDeposit(ctx, accountID, cents); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to update deposit", slog.Int64("account_id", accountID))
		}
		return err
	}
	s.LogInfo(ctx, "Deposit updated", slog.Int64("account_id", accountID), slog.Int64("deposit_cents", cents))
	return nil
}

// ResetPassword replaces the password with a random 6-digit code and returns it.
func (s *accountService) ResetPassword(ctx context.Context, actor domain.Identity, accountID int64) (string, error) {
	if err := s.RequireAdmin(ctx, actor, "reset password"); err != nil {
		return "", err
	}

	code, err := utils.GenerateNumericCode(resetCodeDigits)
	if err != nil {
		s.LogError(ctx, err, "Failed to generate reset code")
		return "", fmt.Errorf("failed to generate reset code: %w", err)
	}
	hash, err := utils.HashPassword(code)
	if err != nil {
		s.LogError(ctx, err, "Failed to hash reset code")
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	if err := s.accountRepo.UpdatePasswordHash(ctx, accountID, hash); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to store reset password", slog.Int64("account_id", accountID))
		}
		return "", err
	}

	s.LogInfo(ctx, "Password reset", slog.Int64("account_id", accountID), slog.Int64("actor_id", actor.AccountID))
	return code, nil
}

func (s *accountService) ChangePassword(ctx context.Context, actor domain.Identity, currentPassword, newPassword string) error {
	if n := len(newPassword); n < minPasswordLength || n > maxPasswordLength {
		return fmt.Errorf("%w: new password must be %d to %d characters", apperrors.ErrValidation, minPasswordLength, maxPasswordLength)
	}

	account, err := s.accountRepo.FindAccountByID(ctx, actor.AccountID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to load account for password change")
		}
		return err
	}
	if !utils.CheckPasswordHash(currentPassword, account.PasswordHash) {
		return fmt.Errorf("current password does not match: %w", apperrors.ErrInvalidCredentials)
	}

	hash, err := utils.HashPassword(newPassword)
	if err != nil {
		s.LogError(ctx, err, "Failed to hash new password")
		return fmt.Errorf("failed to hash password: %w", err)
	}
	if err := s.accountRepo.UpdatePasswordHash(ctx, account.ID, hash); err != nil {
		s.LogError(ctx, err, "Failed to store new password")
		return err
	}

	s.LogInfo(ctx, "Password changed", slog.Int64("account_id", account.ID))
	return nil
}

func (s *accountService) DeleteAccount(ctx context.Context, actor domain.Identity, accountID int64) error {
	if err := s.RequireAdmin(ctx, actor, "delete account"); err != nil {
		return err
	}
	if accountID == actor.AccountID {
		return apperrors.ErrSelfDelete
	}
	if err := s.accountRepo.DeleteAccount(ctx, accountID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete account", slog.Int64("account_id", accountID))
		}
		return err
	}
	s.LogInfo(ctx, "Account deleted", slog.Int64("account_id", accountID), slog.Int64("actor_id", actor.AccountID))
	return nil
}

// ListAccounts retrieves accounts newest first. Out of range limits are clamped.
func (s *accountService) ListAccounts(ctx context.Context, actor domain.Identity, limit, offset int) ([]domain.Account, error) {
	if err := s.RequireAdmin(ctx, actor, "list accounts"); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	if offset < 0 {
		offset = 0
	}

	accounts, err := s.accountRepo.ListAccounts(ctx, limit, offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts", slog.Int("limit", limit), slog.Int("offset", offset))
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	if accounts == nil {
		return []domain.Account{}, nil
	}

	s.LogDebug(ctx, "Accounts listed", slog.Int("count", len(accounts)))
	return accounts, nil
}

// GetSelf returns the caller's own account merged with the "last updated" label and the
// yearly snapshots.
func (s *accountService) GetSelf(ctx context.Context, accountID int64) (*domain.InvestorSummary, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to load own account", slog.Int64("account_id", accountID))
		}
		return nil, err
	}

	summary := &domain.InvestorSummary{
		Account:     *account,
		Performance: account.Performance(),
		Snapshots:   []domain.YearlySnapshot{},
	}

	if s.settingRepo != nil {
		setting, err := s.settingRepo.FindSetting(ctx, domain.SettingLastUpdated)
		switch {
		case err == nil:
			summary.LastUpdated = &setting.Value
		case !errors.Is(err, apperrors.ErrNotFound):
			s.LogError(ctx, err, "Failed to load last updated setting")
			return nil, fmt.Errorf("failed to load last updated: %w", err)
		}
	}

	if s.snapshotRepo != nil {
		snaps, err := s.snapshotRepo.ListSnapshots(ctx, accountID)
		if err != nil {
			s.LogError(ctx, err, "Failed to load yearly snapshots", slog.Int64("account_id", accountID))
			return nil, fmt.Errorf("failed to load yearly snapshots: %w", err)
		}
		if snaps != nil {
			summary.Snapshots = snaps
		}
	}

	return summary, nil
}
