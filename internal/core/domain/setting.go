package domain

import "github.com/shopspring/decimal"

// SettingKey names a global singleton value.
type SettingKey string

const (
	SettingLastUpdated     SettingKey = "last_updated"
	SettingSharePrice      SettingKey = "share_price"
	SettingPreloginMessage SettingKey = "prelogin_message"
)

// Known reports whether k is one of the settings the application manages.
func (k SettingKey) Known() bool {
	switch k {
	case SettingLastUpdated, SettingSharePrice, SettingPreloginMessage:
		return true
	}
	return false
}

// Setting is a named singleton value. A missing row means "unset", which is different from
// an empty Value.
type Setting struct {
	Key   SettingKey
	Value string
}

// PublicStats is the unauthenticated summary shown on the landing page.
type PublicStats struct {
	SharePrice  *decimal.Decimal
	LastUpdated *string
}

// PreloginMessage is the announcement shown above the login form.
type PreloginMessage struct {
	Message *string
	HTML    string
}
