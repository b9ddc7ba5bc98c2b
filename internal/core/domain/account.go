package domain

import (
	"strings"
	"time"
)

// Role determines the authorization scope of an account.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleUser
}

// Account is one login identity together with its financial snapshot.
// Money fields are whole minor currency units.
type Account struct {
	ID              int64     `json:"id"`
	Email           string    `json:"email"`
	PasswordHash    string    `json:"-"`
	PasswordVersion int       `json:"-"`
	Role            Role      `json:"role"`
	BalanceCents    int64     `json:"balance_cents"`
	DepositCents    int64     `json:"deposit_cents"`
	CreatedAt       time.Time `json:"created_at"`
}

// IsAdmin reports whether the account has the admin role.
func (a *Account) IsAdmin() bool {
	return a.Role == RoleAdmin
}

// Performance derives the gain/loss of the live balance against total deposits.
func (a *Account) Performance() Performance {
	return ComputePerformance(a.BalanceCents, a.DepositCents)
}

// NormalizeEmail lowercases and trims an email so lookups are case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// InvestorSummary is the read model returned to an investor about their own account.
type InvestorSummary struct {
	Account     Account
	LastUpdated *string
	Performance Performance
	Snapshots   []YearlySnapshot
}
