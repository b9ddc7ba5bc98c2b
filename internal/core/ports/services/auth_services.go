package services

import (
	"context"

	"github.com/SscSPs/fund_balance_app/internal/core/domain"
)

// TokenVerifierSvc validates bearer tokens.
type TokenVerifierSvc interface {
	// Verify checks signature, issuer and expiry only. It never touches the store.
	Verify(token string) (*domain.Identity, error)

	// Authenticate verifies the token and then confirms the account still exists and that the
	// token was issued for its current password version.
	Authenticate(ctx context.Context, token string) (*domain.Identity, error)
}

// AuthSvcFacade establishes and verifies caller identity.
type AuthSvcFacade interface {
	TokenVerifierSvc

	// Login checks email/password and issues a signed, time-limited token.
	Login(ctx context.Context, email, password string) (*domain.LoginResult, error)

	// RequireRole returns apperrors.ErrForbidden unless identity holds role.
	RequireRole(identity domain.Identity, role domain.Role) error
}
