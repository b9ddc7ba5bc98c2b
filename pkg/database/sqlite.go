package database

import (
	"context"
	"fmt"
	"log"
	"net/url"

	"github.com/SscSPs/fund_balance_app/internal/platform/metrics"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // registers the "sqlite" driver
)

// SQLiteDriverName is the database/sql driver registered by modernc.org/sqlite.
const SQLiteDriverName = "sqlite"

// sqlitePragmas are applied to every pooled connection.
var sqlitePragmas = []string{
	"busy_timeout(5000)",
	"journal_mode(WAL)",
	"synchronous(NORMAL)",
	"foreign_keys(1)",
}

// SQLiteDSN builds a connection string for path with the connection pragmas.
func SQLiteDSN(path string) string {
	q := url.Values{}
	for _, p := range sqlitePragmas {
		q.Add("_pragma", p)
	}
	q.Set("_time_format", "sqlite")
	return "file:" + path + "?" + q.Encode()
}

// NewSQLiteDB opens the database file at path, creating it when missing.
func NewSQLiteDB(ctx context.Context, path string) (*sqlx.DB, error) {
	if path == "" {
		return nil, fmt.Errorf("sqlite path cannot be empty")
	}

	db, err := sqlx.Open(SQLiteDriverName, SQLiteDSN(path))
	if err != nil {
		return nil, fmt.Errorf("problem opening sqlite file: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping sqlite database: %w", err)
	}

	log.Printf("Opened SQLite database at %s.\n", path)
	return db, nil
}

// SQLiteStats adapts database/sql pool statistics for the connection gauge.
func SQLiteStats(db *sqlx.DB) func() metrics.ConnStats {
	return func() metrics.ConnStats {
		s := db.Stats()
		return metrics.ConnStats{
			Idle:  s.Idle,
			InUse: s.InUse,
			Open:  s.OpenConnections,
		}
	}
}
