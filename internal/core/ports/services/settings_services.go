package services

import (
	"context"

	"github.com/SscSPs/fund_balance_app/internal/core/domain"
)

// SettingReaderSvc defines read operations for global settings
type SettingReaderSvc interface {
	// GetSetting returns nil when the key has never been written.
	GetSetting(ctx context.Context, key domain.SettingKey) (*string, error)
	GetPublicStats(ctx context.Context) (*domain.PublicStats, error)
	GetPreloginMessage(ctx context.Context) (*domain.PreloginMessage, error)
}

// SettingWriterSvc defines admin write operations for global settings
type SettingWriterSvc interface {
	SetSetting(ctx context.Context, actor domain.Identity, key domain.SettingKey, value string) error
}

// SnapshotSvc manages per-account yearly snapshots
type SnapshotSvc interface {
	// GetYearlySnapshot returns zero values when no row exists.
	GetYearlySnapshot(ctx context.Context, accountID int64, year int) (*domain.YearlySnapshot, error)
	ListYearlySnapshots(ctx context.Context, accountID int64) ([]domain.YearlySnapshot, error)
	SetYearlySnapshot(ctx context.Context, actor domain.Identity, update domain.SnapshotUpdate) (*domain.YearlySnapshot, error)
}

// SettingsSvcFacade combines all settings-related service interfaces
type SettingsSvcFacade interface {
	SettingReaderSvc
	SettingWriterSvc
	SnapshotSvc
}
