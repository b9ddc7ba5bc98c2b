package dto

import (
	"time"

	"github.com/SscSPs/fund_balance_app/internal/core/domain"
)

// LoginRequest represents the credentials posted to the login endpoint.
type LoginRequest struct {
	Email    string `json:"email" binding:"required" example:"investor@example.com"`
	Password string `json:"password" binding:"required" example:"482913"`
}

// UserSummary is the public identity of an account.
type UserSummary struct {
	ID    int64       `json:"id"`
	Email string      `json:"email"`
	Role  domain.Role `json:"role"`
}

// LoginResponse represents the response for a successful login.
type LoginResponse struct {
	Token        string      `json:"token"`
	ExpiresAt    time.Time   `json:"expires_at"`
	User         UserSummary `json:"user"`
	BalanceCents int64       `json:"balance_cents"`
	DepositCents int64       `json:"deposit_cents"`
}

// ChangePasswordRequest is the self-service password change body.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=6,max=128"`
}

// ToUserSummary converts an account to its public identity.
func ToUserSummary(acc *domain.Account) UserSummary {
	return UserSummary{ID: acc.ID, Email: acc.Email, Role: acc.Role}
}

// ToLoginResponse converts a login result to its response DTO.
func ToLoginResponse(res *domain.LoginResult) LoginResponse {
	return LoginResponse{
		Token:        res.Token,
		ExpiresAt:    res.ExpiresAt,
		User:         ToUserSummary(&res.Account),
		BalanceCents: res.Account.BalanceCents,
		DepositCents: res.Account.DepositCents,
	}
}
