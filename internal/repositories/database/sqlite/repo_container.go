package sqlite

import (
	portsrepo "github.com/SscSPs/fund_balance_app/internal/core/ports/repositories"
	"github.com/jmoiron/sqlx"
)

func NewRepositoryProvider(db *sqlx.DB) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AccountRepo:  newSQLiteAccountRepository(db),
		SettingRepo:  newSQLiteSettingRepository(db),
		SnapshotRepo: newSQLiteSnapshotRepository(db),
	}
}
