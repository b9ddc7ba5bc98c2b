package database

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/fund_balance_app/migrations"
	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" driver
)

// RunMigrations applies every pending "up" migration for driverName ("sqlite" or "postgres").
// It opens its own connection, since closing the migrator closes the database handle.
func RunMigrations(driverName, dsn string, logger *slog.Logger) error {
	sqlDriver := map[string]string{"sqlite": SQLiteDriverName, "postgres": "pgx"}[driverName]
	if sqlDriver == "" {
		return fmt.Errorf("unsupported migration driver %q", driverName)
	}

	migrationDB, err := sql.Open(sqlDriver, dsn)
	if err != nil {
		return fmt.Errorf("failed to open database connection for migrations: %w", err)
	}
	if err := migrationDB.Ping(); err != nil {
		migrationDB.Close()
		return fmt.Errorf("failed to ping database for migrations: %w", err)
	}

	var driver database.Driver
	switch driverName {
	case "sqlite":
		driver, err = sqlite.WithInstance(migrationDB, &sqlite.Config{})
	case "postgres":
		driver, err = postgres.WithInstance(migrationDB, &postgres.Config{})
	}
	if err != nil {
		migrationDB.Close()
		return fmt.Errorf("could not create %s driver instance for migrations: %w", driverName, err)
	}

	source, err := iofs.New(migrations.FS, driverName)
	if err != nil {
		return fmt.Errorf("could not open embedded migrations: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, driverName, driver)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}

	// Apply all available "up" migrations
	upErr := m.Up()

	sourceErr, dbErr := m.Close()
	if upErr != nil && !errors.Is(upErr, migrate.ErrNoChange) {
		return fmt.Errorf("failed to apply migrations: %w", upErr)
	}
	if sourceErr != nil {
		return fmt.Errorf("migration source error: %w", sourceErr)
	}
	if dbErr != nil {
		return fmt.Errorf("migration database error: %w", dbErr)
	}

	if errors.Is(upErr, migrate.ErrNoChange) {
		logger.Info("No new migrations to apply.", slog.String("driver", driverName))
	} else {
		logger.Info("Database migrations applied successfully.", slog.String("driver", driverName))
	}
	return nil
}
