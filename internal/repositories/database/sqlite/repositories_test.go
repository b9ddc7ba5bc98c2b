package sqlite_test

import (
	"context"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/SscSPs/fund_balance_app/internal/apperrors"
	"github.com/SscSPs/fund_balance_app/internal/core/domain"
	portsrepo "github.com/SscSPs/fund_balance_app/internal/core/ports/repositories"
	"github.com/SscSPs/fund_balance_app/internal/repositories/database/sqlite"
	"github.com/SscSPs/fund_balance_app/pkg/database"
	"github.com/stretchr/testify/suite"
)

type SQLiteRepositoryTestSuite struct {
	suite.Suite
	ctx   context.Context
	repos portsrepo.RepositoryProvider
	path  string
}

func (suite *SQLiteRepositoryTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.path = filepath.Join(suite.T().TempDir(), "test.sqlite")

	suite.Require().NoError(database.RunMigrations("sqlite", database.SQLiteDSN(suite.path), slog.Default()))
	db, err := database.NewSQLiteDB(suite.ctx, suite.path)
	suite.Require().NoError(err)
	suite.T().Cleanup(func() { db.Close() })

	suite.repos = sqlite.NewRepositoryProvider(db)
}

func (suite *SQLiteRepositoryTestSuite) newAccount(email string, created time.Time) *domain.Account {
	acc := &domain.Account{
		Email: email, PasswordHash: "hash", PasswordVersion: 1,
		Role: domain.RoleUser, CreatedAt: created,
	}
	suite.Require().NoError(suite.repos.AccountRepo.SaveAccount(suite.ctx, acc))
	suite.Require().NotZero(acc.ID)
	return acc
}

func (suite *SQLiteRepositoryTestSuite) TestMigrationsAreIdempotent() {
	suite.NoError(database.RunMigrations("sqlite", database.SQLiteDSN(suite.path), slog.Default()))
}

func (suite *SQLiteRepositoryTestSuite) TestAccountRoundTrip() {
	created := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	acc := suite.newAccount("investor@example.com", created)

	got, err := suite.repos.AccountRepo.FindAccountByID(suite.ctx, acc.ID)
	suite.Require().NoError(err)
	suite.Equal("investor@example.com", got.Email)
	suite.Equal(domain.RoleUser, got.Role)
	suite.Equal(1, got.PasswordVersion)
	suite.True(created.Equal(got.CreatedAt), "created_at %s", got.CreatedAt)

	byEmail, err := suite.repos.AccountRepo.FindAccountByEmail(suite.ctx, "INVESTOR@example.com")
	suite.Require().NoError(err)
	suite.Equal(acc.ID, byEmail.ID)
}

func (suite *SQLiteRepositoryTestSuite) TestDuplicateEmailIsCaseInsensitive() {
	suite.newAccount("a@x.com", time.Now().UTC())

	dup := &domain.Account{Email: "A@X.COM", PasswordHash: "h", PasswordVersion: 1, Role: domain.RoleUser, CreatedAt: time.Now().UTC()}
	err := suite.repos.AccountRepo.SaveAccount(suite.ctx, dup)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

func (suite *SQLiteRepositoryTestSuite) TestUpdatesAndNotFound() {
	acc := suite.newAccount("a@x.com", time.Now().UTC())
	repo := suite.repos.AccountRepo

	suite.NoError(repo.UpdateBalance(suite.ctx, acc.ID, 12000))
	suite.NoError(repo.UpdateDeposit(suite.ctx, acc.ID, 10000))
	suite.NoError(repo.UpdatePasswordHash(suite.ctx, acc.ID, "new-hash"))

	got, err := repo.FindAccountByID(suite.ctx, acc.ID)
	suite.Require().NoError(err)
	suite.Equal(int64(12000), got.BalanceCents)
	suite.Equal(int64(10000), got.DepositCents)
	suite.Equal("new-hash", got.PasswordHash)
	suite.Equal(2, got.PasswordVersion)

	suite.ErrorIs(repo.UpdateBalance(suite.ctx, 9999, 1), apperrors.ErrNotFound)
	suite.ErrorIs(repo.UpdateDeposit(suite.ctx, 9999, 1), apperrors.ErrNotFound)
	suite.ErrorIs(repo.UpdatePasswordHash(suite.ctx, 9999, "x"), apperrors.ErrNotFound)
	suite.ErrorIs(repo.DeleteAccount(suite.ctx, 9999), apperrors.ErrNotFound)
	_, err = repo.FindAccountByID(suite.ctx, 9999)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *SQLiteRepositoryTestSuite) TestListAccountsNewestFirst() {
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	first := suite.newAccount("first@x.com", base)
	second := suite.newAccount("second@x.com", base.Add(time.Hour))
	third := suite.newAccount("third@x.com", base.Add(time.Hour))

	all, err := suite.repos.AccountRepo.ListAccounts(suite.ctx, 100, 0)
	suite.Require().NoError(err)
	suite.Require().Len(all, 3)
	suite.Equal([]int64{third.ID, second.ID, first.ID}, []int64{all[0].ID, all[1].ID, all[2].ID})

	page, err := suite.repos.AccountRepo.ListAccounts(suite.ctx, 1, 1)
	suite.Require().NoError(err)
	suite.Require().Len(page, 1)
	suite.Equal(second.ID, page[0].ID)
}

func (suite *SQLiteRepositoryTestSuite) TestSettings() {
	repo := suite.repos.SettingRepo

	_, err := repo.FindSetting(suite.ctx, domain.SettingSharePrice)
	suite.ErrorIs(err, apperrors.ErrNotFound)

	suite.NoError(repo.UpsertSetting(suite.ctx, domain.Setting{Key: domain.SettingSharePrice, Value: "100"}))
	suite.NoError(repo.UpsertSetting(suite.ctx, domain.Setting{Key: domain.SettingSharePrice, Value: "101.25"}))
	suite.NoError(repo.UpsertSetting(suite.ctx, domain.Setting{Key: domain.SettingPreloginMessage, Value: ""}))

	got, err := repo.FindSetting(suite.ctx, domain.SettingSharePrice)
	suite.Require().NoError(err)
	suite.Equal("101.25", got.Value)

	empty, err := repo.FindSetting(suite.ctx, domain.SettingPreloginMessage)
	suite.Require().NoError(err)
	suite.Equal("", empty.Value)
}

func (suite *SQLiteRepositoryTestSuite) TestSnapshotPartialUpsertAndCascade() {
	acc := suite.newAccount("a@x.com", time.Now().UTC())
	repo := suite.repos.SnapshotRepo
	deposit := int64(1000000)
	ending := int64(1125000)

	snap, err := repo.UpsertSnapshot(suite.ctx, domain.SnapshotUpdate{AccountID: acc.ID, Year: 2024, DepositCents: &deposit})
	suite.Require().NoError(err)
	suite.Equal(int64(1000000), snap.DepositCents)
	suite.Equal(int64(0), snap.EndingBalanceCents)

	snap, err = repo.UpsertSnapshot(suite.ctx, domain.SnapshotUpdate{AccountID: acc.ID, Year: 2024, EndingBalanceCents: &ending})
	suite.Require().NoError(err)
	suite.Equal(int64(1000000), snap.DepositCents, "omitted field keeps stored value")
	suite.Equal(int64(1125000), snap.EndingBalanceCents)

	_, err = repo.UpsertSnapshot(suite.ctx, domain.SnapshotUpdate{AccountID: acc.ID, Year: 2023, DepositCents: &deposit})
	suite.Require().NoError(err)

	list, err := repo.ListSnapshots(suite.ctx, acc.ID)
	suite.Require().NoError(err)
	suite.Require().Len(list, 2)
	suite.Equal(2024, list[0].Year)
	suite.Equal(2023, list[1].Year)

	_, err = repo.FindSnapshot(suite.ctx, acc.ID, 2020)
	suite.ErrorIs(err, apperrors.ErrNotFound)

	suite.Require().NoError(suite.repos.AccountRepo.DeleteAccount(suite.ctx, acc.ID))
	list, err = repo.ListSnapshots(suite.ctx, acc.ID)
	suite.Require().NoError(err)
	suite.Empty(list)
}

func (suite *SQLiteRepositoryTestSuite) TestSnapshotForUnknownAccount() {
	deposit := int64(1)
	_, err := suite.repos.SnapshotRepo.UpsertSnapshot(suite.ctx, domain.SnapshotUpdate{AccountID: 4242, Year: 2024, DepositCents: &deposit})
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestSQLiteRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(SQLiteRepositoryTestSuite))
}
