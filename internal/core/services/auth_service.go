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
	"github.com/SscSPs/fund_balance_app/internal/platform/config"
	"github.com/SscSPs/fund_balance_app/internal/platform/metrics"
	"github.com/SscSPs/fund_balance_app/internal/utils"
)

// authService implements AuthSvcFacade with HS256 access tokens and bcrypt passwords.
type authService struct {
	BaseService
	accountRepo portsrepo.AccountReader
	secret      string
	issuer      string
	expiry      time.Duration
}

// NewAuthService creates a new instance of authService.
func NewAuthService(cfg *config.Config, accountRepo portsrepo.AccountReader) portssvc.AuthSvcFacade {
	return &authService{
		accountRepo: accountRepo,
		secret:      cfg.JWTSecret,
		issuer:      cfg.JWTIssuer,
		expiry:      cfg.JWTExpiryDuration,
	}
}

var _ portssvc.AuthSvcFacade = (*authService)(nil)

// Login checks the credentials and issues an access token.
func (s *authService) Login(ctx context.Context, email, password string) (*domain.LoginResult, error) {
	email = domain.NormalizeEmail(email)
	if email == "" || password == "" {
		metrics.AuthFailures.With("method", metrics.MethodPassword).Add(1)
		return nil, apperrors.ErrInvalidCredentials
	}

	account, err := s.accountRepo.FindAccountByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			utils.BurnPasswordCheck(password)
			metrics.AuthFailures.With("method", metrics.MethodPassword).Add(1)
			s.LogInfo(ctx, "Login failed", slog.String("reason", "unknown email"))
			return nil, apperrors.ErrInvalidCredentials
		}
		s.LogError(ctx, err, "Failed to look up account for login")
		return nil, fmt.Errorf("failed to look up account: %w", err)
	}

	if !utils.CheckPasswordHash(password, account.PasswordHash) {
		metrics.AuthFailures.With("method", metrics.MethodPassword).Add(1)
		s.LogInfo(ctx, "Login failed", slog.String("reason", "wrong password"), slog.Int64("account_id", account.ID))
		return nil, apperrors.ErrInvalidCredentials
	}

	token, expiresAt, err := utils.GenerateJWT(account.ID, string(account.Role), account.Email, account.PasswordVersion, s.secret, s.expiry, s.issuer)
	if err != nil {
		s.LogError(ctx, err, "Failed to generate access token", slog.Int64("account_id", account.ID))
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}
	metrics.TokenGenerations.With("method", metrics.MethodPassword).Add(1)
	metrics.AuthSuccesses.With("method", metrics.MethodPassword).Add(1)

	s.LogInfo(ctx, "Login succeeded", slog.Int64("account_id", account.ID))
	return &domain.LoginResult{Token: token, ExpiresAt: expiresAt, Account: *account}, nil
}

// Verify checks signature, issuer and expiry. It never touches the store.
func (s *authService) Verify(token string) (*domain.Identity, error) {
	claims, err := utils.ParseAndValidateJWT(token, s.secret, s.issuer)
	if err != nil {
		metrics.AuthFailures.With("method", metrics.MethodToken).Add(1)
		return nil, fmt.Errorf("%w: %w", apperrors.ErrInvalidToken, err)
	}
	role := domain.Role(claims.Role)
	if !role.Valid() {
		metrics.AuthFailures.With("method", metrics.MethodToken).Add(1)
		return nil, fmt.Errorf("%w: unknown role %q", apperrors.ErrInvalidToken, claims.Role)
	}
	id, err := claims.AccountID()
	if err != nil {
		metrics.AuthFailures.With("method", metrics.MethodToken).Add(1)
		return nil, fmt.Errorf("%w: %w", apperrors.ErrInvalidToken, err)
	}
	return &domain.Identity{
		AccountID:       id,
		Email:           claims.Email,
		Role:            role,
		PasswordVersion: claims.PasswordVersion,
	}, nil
}

// Authenticate verifies the token and checks it against the stored account, so deleted
// accounts and changed passwords revoke outstanding tokens.
func (s *authService) Authenticate(ctx context.Context, token string) (*domain.Identity, error) {
	identity, err := s.Verify(token)
	if err != nil {
		return nil, err
	}

	account, err := s.accountRepo.FindAccountByID(ctx, identity.AccountID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			metrics.AuthFailures.With("method", metrics.MethodToken).Add(1)
			return nil, fmt.Errorf("%w: account no longer exists", apperrors.ErrInvalidToken)
		}
		s.LogError(ctx, err, "Failed to load account for token", slog.Int64("account_id", identity.AccountID))
		return nil, fmt.Errorf("failed to load account: %w", err)
	}
	if account.PasswordVersion != identity.PasswordVersion {
		metrics.AuthFailures.With("method", metrics.MethodToken).Add(1)
		return nil, fmt.Errorf("%w: token predates password change", apperrors.ErrInvalidToken)
	}
	metrics.AuthSuccesses.With("method", metrics.MethodToken).Add(1)

	return &domain.Identity{
		AccountID:       account.ID,
		Email:           account.Email,
		Role:            account.Role,
		PasswordVersion: account.PasswordVersion,
	}, nil
}

// RequireRole returns apperrors.ErrForbidden unless identity holds role.
func (s *authService) RequireRole(identity domain.Identity, role domain.Role) error {
	if identity.Role != role {
		return fmt.Errorf("role %s required: %w", role, apperrors.ErrForbidden)
	}
	return nil
}
