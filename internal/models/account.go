package models

import "time"

// Account is the accounts table row.
type Account struct {
	ID              int64     `db:"id"`
	Email           string    `db:"email"`
	PasswordHash    string    `db:"password_hash"`
	PasswordVersion int       `db:"password_version"`
	Role            string    `db:"role"`
	BalanceCents    int64     `db:"balance_cents"`
	DepositCents    int64     `db:"deposit_cents"`
	CreatedAt       time.Time `db:"created_at"`
}
