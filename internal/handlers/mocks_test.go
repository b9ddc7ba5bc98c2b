package handlers_test

import (
	"context"

	"github.com/SscSPs/fund_balance_app/internal/core/domain"
	portssvc "github.com/SscSPs/fund_balance_app/internal/core/ports/services"
	"github.com/SscSPs/fund_balance_app/internal/dto"
	"github.com/stretchr/testify/mock"
)

// --- Mock AuthService ---
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (*domain.LoginResult, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LoginResult), args.Error(1)
}

func (m *MockAuthService) Verify(token string) (*domain.Identity, error) {
	args := m.Called(token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Identity), args.Error(1)
}

func (m *MockAuthService) Authenticate(ctx context.Context, token string) (*domain.Identity, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Identity), args.Error(1)
}

func (m *MockAuthService) RequireRole(identity domain.Identity, role domain.Role) error {
	args := m.Called(identity, role)
	return args.Error(0)
}

// Ensure mock implements the interface
var _ portssvc.AuthSvcFacade = (*MockAuthService)(nil)

// --- Mock AccountService ---
type MockAccountService struct {
	mock.Mock
}

func (m *MockAccountService) ListAccounts(ctx context.Context, actor domain.Identity, limit, offset int) ([]domain.Account, error) {
	args := m.Called(ctx, actor, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountService) GetSelf(ctx context.Context, accountID int64) (*domain.InvestorSummary, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InvestorSummary), args.Error(1)
}

func (m *MockAccountService) CreateAccount(ctx context.Context, actor domain.Identity, req dto.CreateAccountRequest) (*domain.Account, error) {
	args := m.Called(ctx, actor, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) SetBalance(ctx context.Context, actor domain.Identity, accountID int64, cents int64) error {
	args := m.Called(ctx, actor, accountID, cents)
	return args.Error(0)
}

func (m *MockAccountService) SetDeposit(ctx context.Context, actor domain.Identity, accountID int64, cents int64) error {
	args := m.Called(ctx, actor, accountID, cents)
	return args.Error(0)
}

func (m *MockAccountService) ResetPassword(ctx context.Context, actor domain.Identity, accountID int64) (string, error) {
	args := m.Called(ctx, actor, accountID)
	return args.String(0), args.Error(1)
}

func (m *MockAccountService) ChangePassword(ctx context.Context, actor domain.Identity, currentPassword, newPassword string) error {
	args := m.Called(ctx, actor, currentPassword, newPassword)
	return args.Error(0)
}

func (m *MockAccountService) DeleteAccount(ctx context.Context, actor domain.Identity, accountID int64) error {
	args := m.Called(ctx, actor, accountID)
	return args.Error(0)
}

var _ portssvc.AccountSvcFacade = (*MockAccountService)(nil)

// --- Mock SettingsService ---
type MockSettingsService struct {
	mock.Mock
}

func (m *MockSettingsService) GetSetting(ctx context.Context, key domain.SettingKey) (*string, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*string), args.Error(1)
}

func (m *MockSettingsService) GetPublicStats(ctx context.Context) (*domain.PublicStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PublicStats), args.Error(1)
}

func (m *MockSettingsService) GetPreloginMessage(ctx context.Context) (*domain.PreloginMessage, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PreloginMessage), args.Error(1)
}

func (m *MockSettingsService) SetSetting(ctx context.Context, actor domain.Identity, key domain.SettingKey, value string) error {
	args := m.Called(ctx, actor, key, value)
	return args.Error(0)
}

func (m *MockSettingsService) GetYearlySnapshot(ctx context.Context, accountID int64, year int) (*domain.YearlySnapshot, error) {
	args := m.Called(ctx, accountID, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.YearlySnapshot), args.Error(1)
}

func (m *MockSettingsService) ListYearlySnapshots(ctx context.Context, accountID int64) ([]domain.YearlySnapshot, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.YearlySnapshot), args.Error(1)
}

func (m *MockSettingsService) SetYearlySnapshot(ctx context.Context, actor domain.Identity, update domain.SnapshotUpdate) (*domain.YearlySnapshot, error) {
	args := m.Called(ctx, actor, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.YearlySnapshot), args.Error(1)
}

var _ portssvc.SettingsSvcFacade = (*MockSettingsService)(nil)
