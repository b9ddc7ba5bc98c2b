package dto

import (
	"github.com/SscSPs/fund_balance_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// LastUpdatedRequest sets the "last updated" label shown to investors.
type LastUpdatedRequest struct {
	LastUpdated string `json:"last_updated" binding:"required,max=64" example:"2025-08-12"`
}

// LastUpdatedResponse returns null when the value has never been set.
type LastUpdatedResponse struct {
	LastUpdated *string `json:"last_updated"`
}

// SavedLastUpdatedResponse acknowledges a write.
type SavedLastUpdatedResponse struct {
	Saved       bool   `json:"saved"`
	LastUpdated string `json:"last_updated"`
}

// SharePriceRequest accepts the price as a JSON number or numeric string.
type SharePriceRequest struct {
	SharePrice *decimal.Decimal `json:"share_price" binding:"required" swaggertype:"number" example:"101.25"`
}

// SharePriceResponse returns null when the price has never been set.
type SharePriceResponse struct {
	SharePrice *float64 `json:"share_price"`
}

// SavedSharePriceResponse acknowledges a write.
type SavedSharePriceResponse struct {
	Saved      bool    `json:"saved"`
	SharePrice float64 `json:"share_price"`
}

// PreloginMessageRequest sets the announcement; an empty message hides it.
type PreloginMessageRequest struct {
	Message *string `json:"message" binding:"required,max=2000" example:"Statements for Q3 are now available."`
}

// PreloginMessageResponse returns null when the message has never been set.
type PreloginMessageResponse struct {
	Message *string `json:"message"`
}

// SavedPreloginMessageResponse acknowledges a write.
type SavedPreloginMessageResponse struct {
	Saved   bool   `json:"saved"`
	Message string `json:"message"`
}

// PublicPreloginMessageResponse adds the rendered HTML for the login page.
type PublicPreloginMessageResponse struct {
	Message *string `json:"message"`
	HTML    string  `json:"html"`
}

// PublicStatsResponse is the unauthenticated landing page summary.
type PublicStatsResponse struct {
	SharePrice  *float64 `json:"share_price"`
	LastUpdated *string  `json:"last_updated"`
}

// SharePriceFromSetting parses a stored share price for JSON output.
func SharePriceFromSetting(value *string) *float64 {
	if value == nil {
		return nil
	}
	d, err := decimal.NewFromString(*value)
	if err != nil {
		return nil
	}
	f, _ := d.Float64()
	return &f
}

// ToPublicStatsResponse converts public stats to the response DTO.
func ToPublicStatsResponse(s *domain.PublicStats) PublicStatsResponse {
	res := PublicStatsResponse{LastUpdated: s.LastUpdated}
	if s.SharePrice != nil {
		f, _ := s.SharePrice.Float64()
		res.SharePrice = &f
	}
	return res
}

// ToPublicPreloginMessageResponse converts the prelogin message to the response DTO.
func ToPublicPreloginMessageResponse(m *domain.PreloginMessage) PublicPreloginMessageResponse {
	return PublicPreloginMessageResponse{Message: m.Message, HTML: m.HTML}
}
