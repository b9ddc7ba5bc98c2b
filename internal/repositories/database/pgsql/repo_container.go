package pgsql

import (
	portsrepo "github.com/SscSPs/fund_balance_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AccountRepo:  newPgxAccountRepository(dbPool),
		SettingRepo:  newPgxSettingRepository(dbPool),
		SnapshotRepo: newPgxSnapshotRepository(dbPool),
	}
}
