package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/fund_balance_app/internal/apperrors"
	"github.com/SscSPs/fund_balance_app/internal/core/domain"
	portssvc "github.com/SscSPs/fund_balance_app/internal/core/ports/services"
	"github.com/SscSPs/fund_balance_app/internal/core/services"
	"github.com/SscSPs/fund_balance_app/internal/platform/config"
	"github.com/SscSPs/fund_balance_app/internal/utils"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type AuthServiceTestSuite struct {
	suite.Suite
	mockAccountRepo *MockAccountRepository
	cfg             *config.Config
	service         portssvc.AuthSvcFacade
	account         *domain.Account
}

func (suite *AuthServiceTestSuite) SetupSuite() {
	hash, err := utils.HashPassword("482913")
	suite.Require().NoError(err)
	suite.account = &domain.Account{
		ID: 2, Email: "investor@example.com", PasswordHash: hash, PasswordVersion: 1,
		Role: domain.RoleUser, BalanceCents: 12000, DepositCents: 10000,
	}
}

func (suite *AuthServiceTestSuite) SetupTest() {
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.cfg = &config.Config{
		JWTSecret:         "test-secret",
		JWTIssuer:         "fund-test",
		JWTExpiryDuration: time.Hour,
	}
	suite.service = services.NewAuthService(suite.cfg, suite.mockAccountRepo)
}

func (suite *AuthServiceTestSuite) TestLogin_Success() {
	ctx := context.Background()
	suite.mockAccountRepo.On("FindAccountByEmail", ctx, "investor@example.com").Return(suite.account, nil).Once()

	res, err := suite.service.Login(ctx, "  Investor@Example.com ", "482913")

	suite.Require().NoError(err)
	suite.NotEmpty(res.Token)
	suite.Equal(int64(2), res.Account.ID)
	suite.WithinDuration(time.Now().Add(time.Hour), res.ExpiresAt, 5*time.Second)

	identity, err := suite.service.Verify(res.Token)
	suite.Require().NoError(err)
	suite.Equal(int64(2), identity.AccountID)
	suite.Equal(domain.RoleUser, identity.Role)
	suite.Equal(1, identity.PasswordVersion)
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *AuthServiceTestSuite) TestLogin_WrongPassword() {
	ctx := context.Background()
	suite.mockAccountRepo.On("FindAccountByEmail", ctx, "investor@example.com").Return(suite.account, nil).Once()

	_, err := suite.service.Login(ctx, "investor@example.com", "000000")
	suite.ErrorIs(err, apperrors.ErrInvalidCredentials)
}

func (suite *AuthServiceTestSuite) TestLogin_UnknownEmailIsIndistinguishable() {
	ctx := context.Background()
	suite.mockAccountRepo.On("FindAccountByEmail", ctx, "nobody@example.com").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.Login(ctx, "nobody@example.com", "482913")
	suite.ErrorIs(err, apperrors.ErrInvalidCredentials)
	suite.Equal(apperrors.ErrInvalidCredentials.Error(), err.Error())
}

func (suite *AuthServiceTestSuite) TestLogin_EmptyFields() {
	_, err := suite.service.Login(context.Background(), "", "x")
	suite.ErrorIs(err, apperrors.ErrInvalidCredentials)
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "FindAccountByEmail", mock.Anything, mock.Anything)
}

func (suite *AuthServiceTestSuite) TestVerify_Rejections() {
	token, _, err := utils.GenerateJWT(2, "user", "investor@example.com", 1, "test-secret", time.Hour, "fund-test")
	suite.Require().NoError(err)

	_, err = suite.service.Verify(token + "tampered")
	suite.ErrorIs(err, apperrors.ErrInvalidToken)

	expired, _, err := utils.GenerateJWT(2, "user", "investor@example.com", 1, "test-secret", -time.Minute, "fund-test")
	suite.Require().NoError(err)
	_, err = suite.service.Verify(expired)
	suite.ErrorIs(err, apperrors.ErrInvalidToken)
	suite.ErrorIs(err, jwt.ErrTokenExpired)

	foreign, _, err := utils.GenerateJWT(2, "user", "investor@example.com", 1, "test-secret", time.Hour, "someone-else")
	suite.Require().NoError(err)
	_, err = suite.service.Verify(foreign)
	suite.ErrorIs(err, apperrors.ErrInvalidToken)

	badRole, _, err := utils.GenerateJWT(2, "owner", "investor@example.com", 1, "test-secret", time.Hour, "fund-test")
	suite.Require().NoError(err)
	_, err = suite.service.Verify(badRole)
	suite.ErrorIs(err, apperrors.ErrInvalidToken)

	noSubject := jwt.NewWithClaims(jwt.SigningMethodHS256, utils.AccessClaims{
		Role: "user",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "fund-test",
			Subject:   "not-a-number",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	signed, err := noSubject.SignedString([]byte("test-secret"))
	suite.Require().NoError(err)
	identity, err := suite.service.Verify(signed)
	suite.ErrorIs(err, apperrors.ErrInvalidToken)
	suite.Nil(identity)
}

func (suite *AuthServiceTestSuite) TestAuthenticate_RevokedByPasswordChange() {
	ctx := context.Background()
	token, _, err := utils.GenerateJWT(2, "user", "investor@example.com", 1, "test-secret", time.Hour, "fund-test")
	suite.Require().NoError(err)

	changed := *suite.account
	changed.PasswordVersion = 2
	suite.mockAccountRepo.On("FindAccountByID", ctx, int64(2)).Return(&changed, nil).Once()

	_, err = suite.service.Authenticate(ctx, token)
	suite.ErrorIs(err, apperrors.ErrInvalidToken)
}

func (suite *AuthServiceTestSuite) TestAuthenticate_DeletedAccount() {
	ctx := context.Background()
	token, _, err := utils.GenerateJWT(2, "user", "investor@example.com", 1, "test-secret", time.Hour, "fund-test")
	suite.Require().NoError(err)
	suite.mockAccountRepo.On("FindAccountByID", ctx, int64(2)).Return(nil, apperrors.ErrNotFound).Once()

	_, err = suite.service.Authenticate(ctx, token)
	suite.ErrorIs(err, apperrors.ErrInvalidToken)
}

func (suite *AuthServiceTestSuite) TestAuthenticate_RoleComesFromStore() {
	ctx := context.Background()
	token, _, err := utils.GenerateJWT(2, "user", "investor@example.com", 1, "test-secret", time.Hour, "fund-test")
	suite.Require().NoError(err)

	promoted := *suite.account
	promoted.Role = domain.RoleAdmin
	suite.mockAccountRepo.On("FindAccountByID", ctx, int64(2)).Return(&promoted, nil).Once()

	identity, err := suite.service.Authenticate(ctx, token)
	suite.Require().NoError(err)
	suite.Equal(domain.RoleAdmin, identity.Role)
}

func (suite *AuthServiceTestSuite) TestRequireRole() {
	suite.NoError(suite.service.RequireRole(adminActor, domain.RoleAdmin))
	suite.ErrorIs(suite.service.RequireRole(userActor, domain.RoleAdmin), apperrors.ErrForbidden)
}

func TestAuthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}
