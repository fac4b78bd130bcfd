package repository

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/eslsoft/luci/internal/entity"
)

const pgUniqueViolation = "23505"

// translateError maps driver-specific unique violations onto
// entity.ErrConstraintViolation.
func translateError(err error) error {
	if err == nil || errors.Is(err, entity.ErrConstraintViolation) {
		return err
	}
	if isUniqueViolation(err) {
		return fmt.Errorf("%w: %v", entity.ErrConstraintViolation, err)
	}
	return err
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == pgUniqueViolation
	}
	var liteErr *sqlite.Error
	if errors.As(err, &liteErr) {
		code := liteErr.Code()
		return code == sqlite3.SQLITE_CONSTRAINT_UNIQUE || code == sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY
	}
	// mattn/go-sqlite3 only exposes typed errors under cgo
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") || strings.Contains(msg, "PRIMARY KEY constraint failed")
}
