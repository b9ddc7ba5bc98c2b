package repositories

import (
	"context"

	"github.com/SscSPs/fund_balance_app/internal/core/domain"
)

// SettingRepositoryFacade stores the global key/value singletons.
type SettingRepositoryFacade interface {
	// FindSetting returns apperrors.ErrNotFound when the key was never written.
	FindSetting(ctx context.Context, key domain.SettingKey) (*domain.Setting, error)

	// UpsertSetting inserts or replaces the value for key.
	UpsertSetting(ctx context.Context, setting domain.Setting) error
}
