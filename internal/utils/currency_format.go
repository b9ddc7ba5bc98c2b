package utils

import (
	"github.com/shopspring/decimal"
)

// FormatCents formats an amount in minor units as a major-unit string with two decimals.
// Example: 123456 returns "1234.56", -5 returns "-0.05"
func FormatCents(cents int64) string {
	return decimal.New(cents, -2).StringFixed(2)
}

// FormatPercent formats a percentage rounded to two places with a trailing percent sign.
func FormatPercent(pct decimal.Decimal) string {
	return pct.StringFixed(2) + "%"
}
