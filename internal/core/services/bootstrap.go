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
	"github.com/SscSPs/fund_balance_app/internal/utils"
)

// EnsureAdmin seeds the bootstrap admin account when no account uses email.
// When password is empty a random one is generated and logged once.
// It reports whether an account was created, and fails when email belongs to a non-admin.
func EnsureAdmin(ctx context.Context, repo portsrepo.AccountRepositoryFacade, email, password string, logger *slog.Logger) (bool, error) {
	email = domain.NormalizeEmail(email)
	if email == "" {
		return false, fmt.Errorf("%w: admin email must not be empty", apperrors.ErrValidation)
	}

	existing, err := repo.FindAccountByEmail(ctx, email)
	if err == nil {
		if existing.Role != domain.RoleAdmin {
			logger.Error("Bootstrap admin email belongs to a non-admin account",
				slog.String("email", email), slog.String("role", string(existing.Role)))
			return false, fmt.Errorf("%w: account %s exists with role %q", apperrors.ErrValidation, email, existing.Role)
		}
		return false, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return false, fmt.Errorf("failed to look up admin account: %w", err)
	}

	generated := password == ""
	if generated {
		password, err = utils.GenerateSecureRandomString(8)
		if err != nil {
			return false, err
		}
	}
	hash, err := utils.HashPassword(password)
	if err != nil {
		return false, fmt.Errorf("failed to hash admin password: %w", err)
	}

	admin := domain.Account{
		Email:           email,
		PasswordHash:    hash,
		PasswordVersion: 1,
		Role:            domain.RoleAdmin,
		CreatedAt:       time.Now().UTC(),
	}
	if err := repo.SaveAccount(ctx, &admin); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			// Another instance seeded it first
			return false, nil
		}
		return false, fmt.Errorf("failed to seed admin account: %w", err)
	}

	if generated {
		logger.Warn("Seeded admin account with a generated password; change it after first login",
			slog.String("email", email),
			slog.String("password", password))
	} else {
		logger.Info("Seeded admin account", slog.String("email", email))
	}
	return true, nil
}
