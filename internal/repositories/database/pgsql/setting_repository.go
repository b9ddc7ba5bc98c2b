package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/fund_balance_app/internal/core/domain"
	portsrepo "github.com/SscSPs/fund_balance_app/internal/core/ports/repositories"
	"github.com/SscSPs/fund_balance_app/internal/models"
	"github.com/SscSPs/fund_balance_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxSettingRepository struct {
	BaseRepository
}

func newPgxSettingRepository(pool *pgxpool.Pool) *PgxSettingRepository {
	return &PgxSettingRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.SettingRepositoryFacade = (*PgxSettingRepository)(nil)

func (r *PgxSettingRepository) FindSetting(ctx context.Context, key domain.SettingKey) (*domain.Setting, error) {
	var m models.Setting
	err := r.Pool.QueryRow(ctx, `SELECT key, value FROM settings WHERE key = $1`, string(key)).Scan(&m.Key, &m.Value)
	if err != nil {
		return nil, mapError(err, fmt.Sprintf("failed to find setting %s", key))
	}
	s := mapping.ToDomainSetting(m)
	return &s, nil
}

func (r *PgxSettingRepository) UpsertSetting(ctx context.Context, setting domain.Setting) error {
	m := mapping.ToModelSetting(setting)
	query := `
		INSERT INTO settings (key, value, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO UPDATE SET
			value = EXCLUDED.value,
			updated_at = EXCLUDED.updated_at;
	`
	if _, err := r.Pool.Exec(ctx, query, m.Key, m.Value); err != nil {
		return fmt.Errorf("failed to upsert setting %s: %w", m.Key, err)
	}
	return nil
}
