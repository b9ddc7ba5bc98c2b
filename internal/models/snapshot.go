package models

// YearlySnapshot is the yearly_snapshots table row.
type YearlySnapshot struct {
	AccountID          int64 `db:"account_id"`
	Year               int   `db:"year"`
	DepositCents       int64 `db:"deposit_cents"`
	EndingBalanceCents int64 `db:"ending_balance_cents"`
}
