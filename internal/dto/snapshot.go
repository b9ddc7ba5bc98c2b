package dto

import "github.com/SscSPs/fund_balance_app/internal/core/domain"

// YearURI binds the :id and :year path parameters.
type YearURI struct {
	ID   int64 `uri:"id" binding:"required,min=1"`
	Year int   `uri:"year" binding:"required,min=1900,max=2200"`
}

// SnapshotRequest is a partial update; omitted fields keep their stored values.
type SnapshotRequest struct {
	DepositsCents      *int64 `json:"deposits_cents" binding:"omitempty,cents" example:"1000000"`
	EndingBalanceCents *int64 `json:"ending_balance_cents" binding:"omitempty,cents" example:"1125000"`
}

// SnapshotResponse is one stored (or defaulted) yearly snapshot.
type SnapshotResponse struct {
	Year               int                  `json:"year"`
	DepositsCents      int64                `json:"deposits_cents"`
	EndingBalanceCents int64                `json:"ending_balance_cents"`
	Performance        *PerformanceResponse `json:"performance"`
}

// ToSnapshotUpdate maps the request onto a domain update for the given account and year.
func (r SnapshotRequest) ToSnapshotUpdate(accountID int64, year int) domain.SnapshotUpdate {
	return domain.SnapshotUpdate{
		AccountID:          accountID,
		Year:               year,
		DepositCents:       r.DepositsCents,
		EndingBalanceCents: r.EndingBalanceCents,
	}
}

// ToSnapshotResponse converts a snapshot to its response DTO.
func ToSnapshotResponse(s *domain.YearlySnapshot) SnapshotResponse {
	return SnapshotResponse{
		Year:               s.Year,
		DepositsCents:      s.DepositCents,
		EndingBalanceCents: s.EndingBalanceCents,
		Performance:        ToPerformanceResponse(s.Performance()),
	}
}

// ToListSnapshotResponse never returns nil so the JSON is always an array.
func ToListSnapshotResponse(snaps []domain.YearlySnapshot) []SnapshotResponse {
	res := make([]SnapshotResponse, len(snaps))
	for i := range snaps {
		res[i] = ToSnapshotResponse(&snaps[i])
	}
	return res
}
