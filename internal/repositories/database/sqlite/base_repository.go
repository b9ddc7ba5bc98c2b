package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/SscSPs/fund_balance_app/internal/apperrors"
	"github.com/jmoiron/sqlx"
	moderncsqlite "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	DB *sqlx.DB
}

// mapError converts driver errors into application errors.
func mapError(err error, op string) error {
	if errors.Is(err, sql.ErrNoRows) {
		return apperrors.ErrNotFound
	}
	var sqliteErr *moderncsqlite.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
			return fmt.Errorf("%s: %w", op, apperrors.ErrDuplicate)
		case sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY:
			return fmt.Errorf("%s: %w", op, apperrors.ErrNotFound)
		}
		// primary result code only
		switch msg := sqliteErr.Error(); {
		case strings.Contains(msg, "UNIQUE constraint failed"):
			return fmt.Errorf("%s: %w", op, apperrors.ErrDuplicate)
		case strings.Contains(msg, "FOREIGN KEY constraint failed"):
			return fmt.Errorf("%s: %w", op, apperrors.ErrNotFound)
		}
	}
	return fmt.Errorf("%s: %w", op, err)
}

// expectOneRow reports ErrNotFound when an update or delete matched nothing.
func expectOneRow(res sql.Result, op string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if n == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
