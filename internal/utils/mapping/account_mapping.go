package mapping

import (
	"github.com/SscSPs/fund_balance_app/internal/core/domain"
	"github.com/SscSPs/fund_balance_app/internal/models"
)

// ToModelAccount converts a domain Account to a model Account
func ToModelAccount(d domain.Account) models.Account {
	return models.Account{
		ID:              d.ID,
		Email:           d.Email,
		PasswordHash:    d.PasswordHash,
		PasswordVersion: d.PasswordVersion,
		Role:            string(d.Role),
		BalanceCents:    d.BalanceCents,
		DepositCents:    d.DepositCents,
		CreatedAt:       d.CreatedAt,
	}
}

// ToDomainAccount converts a model Account to a domain Account
func ToDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		ID:              m.ID,
		Email:           m.Email,
		PasswordHash:    m.PasswordHash,
		PasswordVersion: m.PasswordVersion,
		Role:            domain.Role(m.Role),
		BalanceCents:    m.BalanceCents,
		DepositCents:    m.DepositCents,
		CreatedAt:       m.CreatedAt,
	}
}

// ToDomainAccountSlice converts a slice of model Accounts to a slice of domain Accounts
func ToDomainAccountSlice(ms []models.Account) []domain.Account {
	ds := make([]domain.Account, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainAccount(m)
	}
	return ds
}
