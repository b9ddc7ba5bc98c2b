package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/SscSPs/fund_balance_app/internal/apperrors"
	"github.com/SscSPs/fund_balance_app/internal/core/domain"
	portssvc "github.com/SscSPs/fund_balance_app/internal/core/ports/services"
	"github.com/SscSPs/fund_balance_app/internal/core/services"
	"github.com/SscSPs/fund_balance_app/internal/dto"
	"github.com/SscSPs/fund_balance_app/internal/utils"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type AccountServiceTestSuite struct {
	suite.Suite
	mockAccountRepo  *MockAccountRepository
	mockSettingRepo  *MockSettingRepository
	mockSnapshotRepo *MockSnapshotRepository
	service          portssvc.AccountSvcFacade
}

func (suite *AccountServiceTestSuite) SetupTest() {
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.mockSettingRepo = new(MockSettingRepository)
	suite.mockSnapshotRepo = new(MockSnapshotRepository)
	suite.service = services.NewAccountService(
		suite.mockAccountRepo,
		services.WithSettingRepository(suite.mockSettingRepo),
		services.WithSnapshotRepository(suite.mockSnapshotRepo),
	)
}

// --- CreateAccount Tests ---
func (suite *AccountServiceTestSuite) TestCreateAccount_Success() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{Email: " New@Example.com", Password: "482913"}

	suite.mockAccountRepo.On("FindAccountByEmail", ctx, "new@example.com").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockAccountRepo.On("SaveAccount", ctx, mock.MatchedBy(func(acc *domain.Account) bool {
		return acc.Email == "new@example.com" && acc.Role == domain.RoleUser &&
			acc.PasswordVersion == 1 && utils.CheckPasswordHash("482913", acc.PasswordHash)
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*domain.Account).ID = 10
	}).Return(nil).Once()

	acc, err := suite.service.CreateAccount(ctx, adminActor, req)

	suite.Require().NoError(err)
	suite.Equal(int64(10), acc.ID)
	suite.Equal(int64(0), acc.BalanceCents)
	suite.Equal(int64(0), acc.DepositCents)
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestCreateAccount_Admin() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{Email: "second@example.com", Password: "482913", Role: domain.RoleAdmin}

	suite.mockAccountRepo.On("FindAccountByEmail", ctx, "second@example.com").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockAccountRepo.On("SaveAccount", ctx, mock.AnythingOfType("*domain.Account")).Return(nil).Once()

	acc, err := suite.service.CreateAccount(ctx, adminActor, req)
	suite.Require().NoError(err)
	suite.Equal(domain.RoleAdmin, acc.Role)
}

func (suite *AccountServiceTestSuite) TestCreateAccount_Duplicate() {
	ctx := context.Background()
	existing := &domain.Account{ID: 3, Email: "a@x.com"}
	suite.mockAccountRepo.On("FindAccountByEmail", ctx, "a@x.com").Return(existing, nil).Once()

	_, err := suite.service.CreateAccount(ctx, adminActor, dto.CreateAccountRequest{Email: "A@X.com", Password: "482913"})
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "SaveAccount", mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestCreateAccount_DuplicateRace() {
	ctx := context.Background()
	suite.mockAccountRepo.On("FindAccountByEmail", ctx, "a@x.com").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockAccountRepo.On("SaveAccount", ctx, mock.Anything).Return(apperrors.ErrDuplicate).Once()

	_, err := suite.service.CreateAccount(ctx, adminActor, dto.CreateAccountRequest{Email: "a@x.com", Password: "482913"})
	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

func (suite *AccountServiceTestSuite) TestCreateAccount_Validation() {
	ctx := context.Background()
	cases := []dto.CreateAccountRequest{
		{Email: "", Password: "482913"},
		{Email: "not-an-email", Password: "482913"},
		{Email: "a@x.com", Password: ""},
		{Email: "a@x.com", Password: "482913", Role: "owner"},
	}
	for _, req := range cases {
		_, err := suite.service.CreateAccount(ctx, adminActor, req)
		suite.ErrorIs(err, apperrors.ErrValidation, "request %+v", req)
	}
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "FindAccountByEmail", mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestCreateAccount_Forbidden() {
	_, err := suite.service.CreateAccount(context.Background(), userActor, dto.CreateAccountRequest{Email: "a@x.com", Password: "482913"})
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

// --- Balance / Deposit Tests ---
func (suite *AccountServiceTestSuite) TestSetBalance() {
	ctx := context.Background()
	suite.mockAccountRepo.On("UpdateBalance", ctx, int64(2), int64(500000)).Return(nil).Once()
	suite.NoError(suite.service.SetBalance(ctx, adminActor, 2, 500000))

	suite.mockAccountRepo.On("UpdateBalance", ctx, int64(99), int64(1)).Return(apperrors.ErrNotFound).Once()
	suite.ErrorIs(suite.service.SetBalance(ctx, adminActor, 99, 1), apperrors.ErrNotFound)

	suite.ErrorIs(suite.service.SetBalance(ctx, userActor, 2, 1), apperrors.ErrForbidden)
}

func (suite *AccountServiceTestSuite) TestSetDeposit() {
	ctx := context.Background()
	suite.mockAccountRepo.On("UpdateDeposit", ctx, int64(2), int64(-100)).Return(nil).Once()
	suite.NoError(suite.service.SetDeposit(ctx, adminActor, 2, -100))

	suite.ErrorIs(suite.service.SetDeposit(ctx, userActor, 2, 1), apperrors.ErrForbidden)
	suite.ErrorIs(suite.service.SetDeposit(ctx, adminActor, 2, dto.MaxCents+1), apperrors.ErrValidation)
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "UpdateDeposit", ctx, int64(2), dto.MaxCents+1)
}

// --- Password Tests ---
func (suite *AccountServiceTestSuite) TestResetPassword() {
	ctx := context.Background()
	var storedHash string
	suite.mockAccountRepo.On("UpdatePasswordHash", ctx, int64(2), mock.AnythingOfType("string")).
		Run(func(args mock.Arguments) { storedHash = args.String(2) }).
		Return(nil).Once()

	code, err := suite.service.ResetPassword(ctx, adminActor, 2)

	suite.Require().NoError(err)
	suite.Len(code, 6)
	suite.Regexp(`^[0-9]{6}$`, code)
	suite.True(utils.CheckPasswordHash(code, storedHash))
}

func (suite *AccountServiceTestSuite) TestResetPassword_UnknownAccount() {
	ctx := context.Background()
	suite.mockAccountRepo.On("UpdatePasswordHash", ctx, int64(99), mock.Anything).Return(apperrors.ErrNotFound).Once()

	_, err := suite.service.ResetPassword(ctx, adminActor, 99)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *AccountServiceTestSuite) TestChangePassword() {
	ctx := context.Background()
	hash, err := utils.HashPassword("482913")
	suite.Require().NoError(err)
	acc := &domain.Account{ID: 2, PasswordHash: hash, PasswordVersion: 1, Role: domain.RoleUser}

	suite.mockAccountRepo.On("FindAccountByID", ctx, int64(2)).Return(acc, nil)
	suite.mockAccountRepo.On("UpdatePasswordHash", ctx, int64(2), mock.MatchedBy(func(h string) bool {
		return utils.CheckPasswordHash("new-secret", h)
	})).Return(nil).Once()

	suite.NoError(suite.service.ChangePassword(ctx, userActor, "482913", "new-secret"))
	suite.ErrorIs(suite.service.ChangePassword(ctx, userActor, "wrong", "new-secret"), apperrors.ErrInvalidCredentials)
	suite.ErrorIs(suite.service.ChangePassword(ctx, userActor, "482913", "123"), apperrors.ErrValidation)
	suite.mockAccountRepo.AssertNumberOfCalls(suite.T(), "UpdatePasswordHash", 1)
}

// --- Delete Tests ---
func (suite *AccountServiceTestSuite) TestDeleteAccount() {
	ctx := context.Background()
	suite.mockAccountRepo.On("DeleteAccount", ctx, int64(2)).Return(nil).Once()
	suite.NoError(suite.service.DeleteAccount(ctx, adminActor, 2))

	suite.mockAccountRepo.On("DeleteAccount", ctx, int64(99)).Return(apperrors.ErrNotFound).Once()
	suite.ErrorIs(suite.service.DeleteAccount(ctx, adminActor, 99), apperrors.ErrNotFound)
}

func (suite *AccountServiceTestSuite) TestDeleteAccount_Self() {
	err := suite.service.DeleteAccount(context.Background(), adminActor, adminActor.AccountID)
	suite.ErrorIs(err, apperrors.ErrSelfDelete)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "DeleteAccount", mock.Anything, mock.Anything)
}

// --- List / GetSelf Tests ---
func (suite *AccountServiceTestSuite) TestListAccounts_ClampsLimit() {
	ctx := context.Background()
	suite.mockAccountRepo.On("ListAccounts", ctx, 1000, 0).Return(nil, nil).Once()
	suite.mockAccountRepo.On("ListAccounts", ctx, 100, 5).Return([]domain.Account{{ID: 1}}, nil).Once()

	accounts, err := suite.service.ListAccounts(ctx, adminActor, 5000, -1)
	suite.Require().NoError(err)
	suite.NotNil(accounts)
	suite.Empty(accounts)

	accounts, err = suite.service.ListAccounts(ctx, adminActor, 0, 5)
	suite.Require().NoError(err)
	suite.Len(accounts, 1)

	_, err = suite.service.ListAccounts(ctx, userActor, 10, 0)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *AccountServiceTestSuite) TestGetSelf() {
	ctx := context.Background()
	acc := &domain.Account{ID: 2, Email: "investor@example.com", Role: domain.RoleUser, BalanceCents: 12000, DepositCents: 10000}
	suite.mockAccountRepo.On("FindAccountByID", ctx, int64(2)).Return(acc, nil).Once()
	suite.mockSettingRepo.On("FindSetting", ctx, domain.SettingLastUpdated).
		Return(&domain.Setting{Key: domain.SettingLastUpdated, Value: "2025-08-12"}, nil).Once()
	suite.mockSnapshotRepo.On("ListSnapshots", ctx, int64(2)).
		Return([]domain.YearlySnapshot{{AccountID: 2, Year: 2024, DepositCents: 10000, EndingBalanceCents: 11000}}, nil).Once()

	summary, err := suite.service.GetSelf(ctx, 2)

	suite.Require().NoError(err)
	suite.Equal("2025-08-12", *summary.LastUpdated)
	suite.True(summary.Performance.Available)
	suite.Equal(int64(2000), summary.Performance.ProfitCents)
	suite.Len(summary.Snapshots, 1)
}

func (suite *AccountServiceTestSuite) TestGetSelf_NoSettingsOrSnapshots() {
	ctx := context.Background()
	acc := &domain.Account{ID: 2, Role: domain.RoleUser}
	suite.mockAccountRepo.On("FindAccountByID", ctx, int64(2)).Return(acc, nil).Once()
	suite.mockSettingRepo.On("FindSetting", ctx, domain.SettingLastUpdated).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockSnapshotRepo.On("ListSnapshots", ctx, int64(2)).Return(nil, nil).Once()

	summary, err := suite.service.GetSelf(ctx, 2)

	suite.Require().NoError(err)
	suite.Nil(summary.LastUpdated)
	suite.False(summary.Performance.Available)
	suite.NotNil(summary.Snapshots)
}

func (suite *AccountServiceTestSuite) TestGetSelf_StoreFailure() {
	ctx := context.Background()
	suite.mockAccountRepo.On("FindAccountByID", ctx, int64(2)).Return(nil, errors.New("disk I/O error")).Once()

	_, err := suite.service.GetSelf(ctx, 2)
	suite.Error(err)
	suite.NotErrorIs(err, apperrors.ErrNotFound)
}

func TestAccountServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}
