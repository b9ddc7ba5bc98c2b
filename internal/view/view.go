// Package view turns fetched account and settings data into a render tree the browser client
// draws without any role-specific markup of its own.
package view

import (
	"fmt"
	"strconv"

	"github.com/SscSPs/fund_balance_app/internal/apperrors"
	"github.com/SscSPs/fund_balance_app/internal/core/domain"
	"github.com/SscSPs/fund_balance_app/internal/utils"
)

// Kind identifies how a Node is drawn.
type Kind string

const (
	KindPage    Kind = "page"
	KindSection Kind = "section"
	KindStat    Kind = "stat"
	KindTable   Kind = "table"
	KindRow     Kind = "row"
	KindCell    Kind = "cell"
	KindText    Kind = "text"
)

// Tone hints at colouring for a value.
type Tone string

const (
	ToneNeutral Tone = "neutral"
	ToneGain    Tone = "gain"
	ToneLoss    Tone = "loss"
	ToneMuted   Tone = "muted"
)

const placeholder = "—"

// Node is one element of a render tree.
type Node struct {
	Kind     Kind   `json:"kind"`
	ID       string `json:"id,omitempty"`
	Label    string `json:"label,omitempty"`
	Value    string `json:"value,omitempty"`
	Tone     Tone   `json:"tone,omitempty"`
	Children []Node `json:"children,omitempty"`
}

// Settings is the subset of global settings shown to an admin.
type Settings struct {
	LastUpdated     *string
	SharePrice      *string
	PreloginMessage *string
}

// Data is everything a view may draw. Summary is required for every role; Accounts and
// Settings are only read by the admin view.
type Data struct {
	Summary  *domain.InvestorSummary
	Accounts []domain.Account
	Settings Settings
}

type renderFunc func(Data) Node

var renderers = map[domain.Role]renderFunc{
	domain.RoleAdmin: renderAdmin,
	domain.RoleUser:  renderInvestor,
}

// Render builds the tree for role. It is pure: the same input always yields the same tree.
func Render(role domain.Role, data Data) (Node, error) {
	fn, ok := renderers[role]
	if !ok {
		return Node{}, apperrors.Validationf("no view for role %q", role)
	}
	if data.Summary == nil {
		return Node{}, fmt.Errorf("render %s view: missing account summary: %w", role, apperrors.ErrValidation)
	}
	return fn(data), nil
}

func renderInvestor(data Data) Node {
	s := data.Summary
	return Node{
		Kind:  KindPage,
		ID:    "investor",
		Label: s.Account.Email,
		Children: []Node{
			statsSection(s.Account.BalanceCents, s.Account.DepositCents, s.Performance),
			lastUpdatedText(s.LastUpdated),
			yearlyTable(s.Snapshots),
		},
	}
}

func renderAdmin(data Data) Node {
	s := data.Summary
	return Node{
		Kind:  KindPage,
		ID:    "admin",
		Label: s.Account.Email,
		Children: []Node{
			settingsSection(data.Settings),
			accountsTable(data.Accounts),
		},
	}
}

func statsSection(balance, deposit int64, perf domain.Performance) Node {
	return Node{
		Kind: KindSection,
		ID:   "stats",
		Children: []Node{
			{Kind: KindStat, ID: "balance", Label: "Balance", Value: money(balance), Tone: ToneNeutral},
			{Kind: KindStat, ID: "deposits", Label: "Deposits", Value: money(deposit), Tone: ToneNeutral},
			performanceStat(perf),
		},
	}
}

func performanceStat(perf domain.Performance) Node {
	value, tone := performanceValue(perf)
	return Node{Kind: KindStat, ID: "performance", Label: "Performance", Value: value, Tone: tone}
}

func performanceValue(perf domain.Performance) (string, Tone) {
	if !perf.Available {
		return placeholder, ToneNeutral
	}
	if perf.Direction == domain.Loss {
		return utils.FormatPercent(perf.Percent), ToneLoss
	}
	return "+" + utils.FormatPercent(perf.Percent), ToneGain
}

func lastUpdatedText(lastUpdated *string) Node {
	if lastUpdated == nil || *lastUpdated == "" {
		return Node{Kind: KindText, ID: "last-updated", Tone: ToneMuted}
	}
	return Node{Kind: KindText, ID: "last-updated", Label: "Last Updated", Value: *lastUpdated, Tone: ToneMuted}
}

func yearlyTable(snapshots []domain.YearlySnapshot) Node {
	rows := make([]Node, 0, len(snapshots))
	for _, snap := range snapshots {
		value, tone := performanceValue(snap.Performance())
		rows = append(rows, Node{
			Kind:  KindRow,
			ID:    strconv.Itoa(snap.Year),
			Label: strconv.Itoa(snap.Year),
			Children: []Node{
				{Kind: KindCell, Label: "Deposits", Value: money(snap.DepositCents)},
				{Kind: KindCell, Label: "Ending Balance", Value: money(snap.EndingBalanceCents)},
				{Kind: KindCell, Label: "Performance", Value: value, Tone: tone},
			},
		})
	}
	return Node{Kind: KindTable, ID: "yearly", Label: "Yearly Summary", Children: rows}
}

func settingsSection(settings Settings) Node {
	return Node{
		Kind: KindSection,
		ID:   "settings",
		Children: []Node{
			{Kind: KindStat, ID: "last-updated", Label: "Last Updated", Value: orPlaceholder(settings.LastUpdated)},
			{Kind: KindStat, ID: "share-price", Label: "Share Price", Value: orPlaceholder(settings.SharePrice)},
			{Kind: KindStat, ID: "prelogin-message", Label: "Pre-login Message", Value: orPlaceholder(settings.PreloginMessage)},
		},
	}
}

func accountsTable(accounts []domain.Account) Node {
	rows := make([]Node, 0, len(accounts))
	for _, acc := range accounts {
		value, tone := performanceValue(acc.Performance())
		rows = append(rows, Node{
			Kind:  KindRow,
			ID:    strconv.FormatInt(acc.ID, 10),
			Label: acc.Email,
			Children: []Node{
				{Kind: KindCell, Label: "Role", Value: string(acc.Role)},
				{Kind: KindCell, Label: "Balance", Value: money(acc.BalanceCents)},
				{Kind: KindCell, Label: "Deposits", Value: money(acc.DepositCents)},
				{Kind: KindCell, Label: "Performance", Value: value, Tone: tone},
			},
		})
	}
	return Node{Kind: KindTable, ID: "accounts", Label: "Investors", Children: rows}
}

func money(cents int64) string {
	if cents < 0 {
		return "-$" + utils.FormatCents(-cents)
	}
	return "$" + utils.FormatCents(cents)
}

func orPlaceholder(s *string) string {
	if s == nil || *s == "" {
		return placeholder
	}
	return *s
}
