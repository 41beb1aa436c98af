package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/sijms/go-ora/v2/network"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// DBTX is an interface abstracting *sqlx.DB and *sqlx.Tx for repository use.
type DBTX interface {
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	NamedExecContext(ctx context.Context, query string, arg interface{}) (sql.Result, error)
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	BindNamed(query string, arg interface{}) (string, []interface{}, error)
}

var (
	_ DBTX = (*sqlx.DB)(nil)
	_ DBTX = (*sqlx.Tx)(nil)
)

// getNamed runs a single-row named query against the executor in ctx.
func getNamed(ctx context.Context, db DBTX, dest interface{}, query string, arg interface{}) error {
	exec := GetExecutor(ctx, db)
	q, args, err := exec.BindNamed(query, arg)
	if err != nil {
		return fmt.Errorf("failed to bind query: %w", err)
	}
	return exec.GetContext(ctx, dest, q, args...)
}

// selectNamed runs a multi-row named query against the executor in ctx.
func selectNamed(ctx context.Context, db DBTX, dest interface{}, query string, arg interface{}) error {
	exec := GetExecutor(ctx, db)
	q, args, err := exec.BindNamed(query, arg)
	if err != nil {
		return fmt.Errorf("failed to bind query: %w", err)
	}
	return exec.SelectContext(ctx, dest, q, args...)
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// oracleUniqueViolation is ORA-00001.
const oracleUniqueViolation = 1

// isUniqueViolation reports whether err is a unique constraint failure from
// either supported driver.
func isUniqueViolation(err error) bool {
	var sqliteErr *sqlite.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.Code() == sqlite3.SQLITE_CONSTRAINT_UNIQUE
	}
	var oraErr *network.OracleError
	if errors.As(err, &oraErr) {
		return oraErr.ErrCode == oracleUniqueViolation
	}
	return false
}
