package database

import (
	"fmt"

	"news-quiz/internal/config"
	"news-quiz/internal/logger"

	"github.com/jmoiron/sqlx"
	_ "github.com/sijms/go-ora/v2" // Oracle driver
	"go.uber.org/zap"
	_ "modernc.org/sqlite" // SQLite driver
)

const (
	DriverOracle = "oracle"
	DriverSQLite = "sqlite"
)

func init() {
	// Repositories write "?" placeholders and named parameters; these
	// registrations let Rebind and BindNamed produce the right form per driver.
	sqlx.BindDriver(DriverOracle, sqlx.NAMED)
	sqlx.BindDriver(DriverSQLite, sqlx.QUESTION)
}

// Connect opens the database configured in cfg.DB and verifies the connection.
func Connect(cfg *config.Config) (*sqlx.DB, error) {
	switch cfg.DB.Driver {
	case DriverOracle:
		return NewSQLXOracleDB(cfg.GetDSN())
	case DriverSQLite:
		return NewSQLXSQLiteDB(cfg.GetDSN())
	default:
		return nil, fmt.Errorf("unsupported database driver: %q", cfg.DB.Driver)
	}
}

func NewSQLXOracleDB(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Connect(DriverOracle, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Oracle database: %w", err)
	}
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)

	logger.Get().Info("Successfully connected to Oracle database")
	return db, nil
}

// NewSQLXSQLiteDB opens a SQLite database. path may be ":memory:".
// SQLite allows one writer at a time, so the pool is capped at one connection.
func NewSQLXSQLiteDB(path string) (*sqlx.DB, error) {
	db, err := sqlx.Open(DriverSQLite, path+"?_time_format=sqlite")
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping SQLite database: %w", err)
	}

	logger.Get().Info("Successfully connected to SQLite database", zap.String("path", path))
	return db, nil
}
