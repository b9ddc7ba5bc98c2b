package dto

import (
	"time"

	"github.com/SscSPs/fund_balance_app/internal/core/domain"
)

// CreateAccountRequest defines the data needed to create a new account.
type CreateAccountRequest struct {
	Email    string      `json:"email" binding:"required,email,max=254" example:"investor@example.com"`
	Password string      `json:"password" binding:"required,min=6,max=128" example:"482913"`
	Role     domain.Role `json:"role" binding:"omitempty,oneof=admin user" example:"user"`
}

// CreateAccountResponse is the only response that ever carries the plaintext password.
type CreateAccountResponse struct {
	Created      bool        `json:"created"`
	ID           int64       `json:"id"`
	Email        string      `json:"email"`
	Role         domain.Role `json:"role"`
	BalanceCents int64       `json:"balance_cents"`
	DepositCents int64       `json:"deposit_cents"`
	Password     string      `json:"password"`
}

// AccountResponse is one row of the admin account list.
type AccountResponse struct {
	ID           int64                `json:"id"`
	Email        string               `json:"email"`
	Role         domain.Role          `json:"role"`
	BalanceCents int64                `json:"balance_cents"`
	DepositCents int64                `json:"deposit_cents"`
	CreatedAt    time.Time            `json:"created_at"`
	Performance  *PerformanceResponse `json:"performance"`
}

// ListAccountsParams defines query parameters for listing accounts.
type ListAccountsParams struct {
	Limit  int `form:"limit,default=100" binding:"min=1,max=1000"`
	Offset int `form:"offset,default=0" binding:"min=0"`
}

// AccountURI binds the :id path parameter.
type AccountURI struct {
	ID int64 `uri:"id" binding:"required,min=1"`
}

// SetBalanceRequest overwrites the balance. Non-integer JSON numbers fail to bind.
type SetBalanceRequest struct {
	BalanceCents *int64 `json:"balance_cents" binding:"required,cents" example:"500000"`
}

// SetDepositRequest overwrites the deposit total.
type SetDepositRequest struct {
	DepositCents *int64 `json:"deposit_cents" binding:"required,cents" example:"450000"`
}

// UpdatedResponse acknowledges an update.
type UpdatedResponse struct {
	Updated bool `json:"updated"`
}

// ResetPasswordResponse carries the freshly generated code.
type ResetPasswordResponse struct {
	Updated  bool   `json:"updated"`
	Password string `json:"password"`
}

// DeletedResponse acknowledges a delete.
type DeletedResponse struct {
	Deleted bool `json:"deleted"`
}

// MeResponse is the investor's view of their own account.
type MeResponse struct {
	User         UserSummary          `json:"user"`
	BalanceCents int64                `json:"balance_cents"`
	DepositCents int64                `json:"deposit_cents"`
	LastUpdated  *string              `json:"last_updated"`
	Performance  *PerformanceResponse `json:"performance"`
	Yearly       []SnapshotResponse   `json:"yearly"`
}

// ToCreateAccountResponse echoes the plaintext password given at creation.
func ToCreateAccountResponse(acc *domain.Account, password string) CreateAccountResponse {
	return CreateAccountResponse{
		Created:      true,
		ID:           acc.ID,
		Email:        acc.Email,
		Role:         acc.Role,
		BalanceCents: acc.BalanceCents,
		DepositCents: acc.DepositCents,
		Password:     password,
	}
}

// ToAccountResponse converts a domain.Account to AccountResponse DTO
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		ID:           acc.ID,
		Email:        acc.Email,
		Role:         acc.Role,
		BalanceCents: acc.BalanceCents,
		DepositCents: acc.DepositCents,
		CreatedAt:    acc.CreatedAt,
		Performance:  ToPerformanceResponse(acc.Performance()),
	}
}

// ToListAccountResponse converts a slice of domain.Account to a slice of AccountResponse DTOs
func ToListAccountResponse(accounts []domain.Account) []AccountResponse {
	res := make([]AccountResponse, len(accounts))
	for i := range accounts {
		res[i] = ToAccountResponse(&accounts[i])
	}
	return res
}

// ToMeResponse converts an investor summary to its response DTO.
func ToMeResponse(s *domain.InvestorSummary) MeResponse {
	return MeResponse{
		User:         ToUserSummary(&s.Account),
		BalanceCents: s.Account.BalanceCents,
		DepositCents: s.Account.DepositCents,
		LastUpdated:  s.LastUpdated,
		Performance:  ToPerformanceResponse(s.Performance),
		Yearly:       ToListSnapshotResponse(s.Snapshots),
	}
}
