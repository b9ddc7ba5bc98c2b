package services_test

import (
	"context"

	"github.com/SscSPs/fund_balance_app/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

// --- Mock AccountRepository ---
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, accountID int64) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	var acc *domain.Account
	if args.Get(0) != nil {
		acc = args.Get(0).(*domain.Account)
	}
	return acc, args.Error(1)
}

func (m *MockAccountRepository) FindAccountByEmail(ctx context.Context, email string) (*domain.Account, error) {
	args := m.Called(ctx, email)
	var acc *domain.Account
	if args.Get(0) != nil {
		acc = args.Get(0).(*domain.Account)
	}
	return acc, args.Error(1)
}

func (m *MockAccountRepository) ListAccounts(ctx context.Context, limit, offset int) ([]domain.Account, error) {
	args := m.Called(ctx, limit, offset)
	var accounts []domain.Account
	if args.Get(0) != nil {
		accounts = args.Get(0).([]domain.Account)
	}
	return accounts, args.Error(1)
}

func (m *MockAccountRepository) SaveAccount(ctx context.Context, account *domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) UpdateBalance(ctx context.Context, accountID int64, cents int64) error {
	args := m.Called(ctx, accountID, cents)
	return args.Error(0)
}

func (m *MockAccountRepository) UpdateDeposit(ctx context.Context, accountID int64, cents int64) error {
	args := m.Called(ctx, accountID, cents)
	return args.Error(0)
}

func (m *MockAccountRepository) UpdatePasswordHash(ctx context.Context, accountID int64, passwordHash string) error {
	args := m.Called(ctx, accountID, passwordHash)
	return args.Error(0)
}

func (m *MockAccountRepository) DeleteAccount(ctx context.Context, accountID int64) error {
	args := m.Called(ctx, accountID)
	return args.Error(0)
}

// --- Mock SettingRepository ---
type MockSettingRepository struct {
	mock.Mock
}

func (m *MockSettingRepository) FindSetting(ctx context.Context, key domain.SettingKey) (*domain.Setting, error) {
	args := m.Called(ctx, key)
	var s *domain.Setting
	if args.Get(0) != nil {
		s = args.Get(0).(*domain.Setting)
	}
	return s, args.Error(1)
}

func (m *MockSettingRepository) UpsertSetting(ctx context.Context, setting domain.Setting) error {
	args := m.Called(ctx, setting)
	return args.Error(0)
}

// --- Mock SnapshotRepository ---
type MockSnapshotRepository struct {
	mock.Mock
}

func (m *MockSnapshotRepository) FindSnapshot(ctx context.Context, accountID int64, year int) (*domain.YearlySnapshot, error) {
	args := m.Called(ctx, accountID, year)
	var s *domain.YearlySnapshot
	if args.Get(0) != nil {
		s = args.Get(0).(*domain.YearlySnapshot)
	}
	return s, args.Error(1)
}

func (m *MockSnapshotRepository) ListSnapshots(ctx context.Context, accountID int64) ([]domain.YearlySnapshot, error) {
	args := m.Called(ctx, accountID)
	var snaps []domain.YearlySnapshot
	if args.Get(0) != nil {
		snaps = args.Get(0).([]domain.YearlySnapshot)
	}
	return snaps, args.Error(1)
}

func (m *MockSnapshotRepository) UpsertSnapshot(ctx context.Context, update domain.SnapshotUpdate) (*domain.YearlySnapshot, error) {
	args := m.Called(ctx, update)
	var s *domain.YearlySnapshot
	if args.Get(0) != nil {
		s = args.Get(0).(*domain.YearlySnapshot)
	}
	return s, args.Error(1)
}

var (
	adminActor = domain.Identity{AccountID: 1, Email: "admin@example.com", Role: domain.RoleAdmin, PasswordVersion: 1}
	userActor  = domain.Identity{AccountID: 2, Email: "investor@example.com", Role: domain.RoleUser, PasswordVersion: 1}
)
