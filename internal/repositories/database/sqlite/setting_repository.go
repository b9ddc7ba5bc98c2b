package sqlite

import (
	"context"
	"fmt"

	"github.com/SscSPs/fund_balance_app/internal/core/domain"
	portsrepo "github.com/SscSPs/fund_balance_app/internal/core/ports/repositories"
	"github.com/SscSPs/fund_balance_app/internal/models"
	"github.com/SscSPs/fund_balance_app/internal/utils/mapping"
	"github.com/jmoiron/sqlx"
)

type SQLiteSettingRepository struct {
	BaseRepository
}

func newSQLiteSettingRepository(db *sqlx.DB) *SQLiteSettingRepository {
	return &SQLiteSettingRepository{BaseRepository{DB: db}}
}

var _ portsrepo.SettingRepositoryFacade = (*SQLiteSettingRepository)(nil)

func (r *SQLiteSettingRepository) FindSetting(ctx context.Context, key domain.SettingKey) (*domain.Setting, error) {
	var m models.Setting
	if err := r.DB.GetContext(ctx, &m, `SELECT key, value FROM settings WHERE key = ?`, string(key)); err != nil {
		return nil, mapError(err, fmt.Sprintf("failed to find setting %s", key))
	}
	s := mapping.ToDomainSetting(m)
	return &s, nil
}

func (r *SQLiteSettingRepository) UpsertSetting(ctx context.Context, setting domain.Setting) error {
	m := mapping.ToModelSetting(setting)
	_, err := r.DB.NamedExecContext(ctx, `
		INSERT INTO settings (key, value, updated_at)
		VALUES (:key, :value, CURRENT_TIMESTAMP)
		ON CONFLICT (key) DO UPDATE SET
			value = excluded.value,
			updated_at = excluded.updated_at
	`, m)
	if err != nil {
		return fmt.Errorf("failed to upsert setting %s: %w", m.Key, err)
	}
	return nil
}
