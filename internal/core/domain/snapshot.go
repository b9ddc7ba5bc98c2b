package domain

const (
	MinSnapshotYear = 1900
	MaxSnapshotYear = 2200
)

// YearlySnapshot freezes an account's deposit total and ending balance for one year.
type YearlySnapshot struct {
	AccountID          int64 `json:"account_id"`
	Year               int   `json:"year"`
	DepositCents       int64 `json:"deposits_cents"`
	EndingBalanceCents int64 `json:"ending_balance_cents"`
}

// Performance of the year: ending balance against that year's deposits.
func (s YearlySnapshot) Performance() Performance {
	return ComputePerformance(s.EndingBalanceCents, s.DepositCents)
}

// SnapshotUpdate is a partial upsert of a YearlySnapshot; nil fields keep their stored value
// (or zero for a new row).
type SnapshotUpdate struct {
	AccountID          int64
	Year               int
	DepositCents       *int64
	EndingBalanceCents *int64
}

// Empty reports whether the update carries no field to change.
func (u SnapshotUpdate) Empty() bool {
	return u.DepositCents == nil && u.EndingBalanceCents == nil
}
