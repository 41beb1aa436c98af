package database

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strconv"
	"strings"

	"news-quiz/internal/logger"

	"github.com/golang-migrate/migrate/v4"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"go.uber.org/zap"
)

//go:embed migrations
var migrationFS embed.FS

// Migrator applies the embedded schema for one driver.
type Migrator interface {
	Up() error
	Down() error
	// Version returns the last applied migration version, 0 when none.
	Version() (uint, error)
}

// NewMigrator returns the migrator matching driver.
func NewMigrator(db *sql.DB, driver string) (Migrator, error) {
	switch driver {
	case DriverSQLite:
		return newSQLiteMigrator(db)
	case DriverOracle:
		return &oracleMigrator{db: db, dir: "migrations/oracle"}, nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %q", driver)
	}
}

// RunMigrations brings the schema up to date.
func RunMigrations(db *sql.DB, driver string) error {
	m, err := NewMigrator(db, driver)
	if err != nil {
		return err
	}
	if err := m.Up(); err != nil {
		return err
	}
	version, err := m.Version()
	if err != nil {
		return err
	}
	logger.Get().Info("Migrations completed successfully", zap.String("driver", driver), zap.Uint("version", version))
	return nil
}

type sqliteMigrator struct {
	m *migrate.Migrate
}

func newSQLiteMigrator(db *sql.DB) (*sqliteMigrator, error) {
	src, err := iofs.New(migrationFS, "migrations/sqlite")
	if err != nil {
		return nil, fmt.Errorf("could not open embedded migrations: %w", err)
	}
	driver, err := migratesqlite.WithInstance(db, &migratesqlite.Config{})
	if err != nil {
		return nil, fmt.Errorf("could not create sqlite migration driver: %w", err)
	}
	m, err := migrate.NewWithInstance("iofs", src, DriverSQLite, driver)
	if err != nil {
		return nil, fmt.Errorf("could not create migrator: %w", err)
	}
	// m.Close would close db, which the caller owns.
	return &sqliteMigrator{m: m}, nil
}

func (s *sqliteMigrator) Up() error {
	if err := s.m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("could not apply migrations: %w", err)
	}
	return nil
}

func (s *sqliteMigrator) Down() error {
	if err := s.m.Down(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("could not revert migrations: %w", err)
	}
	return nil
}

func (s *sqliteMigrator) Version() (uint, error) {
	version, dirty, err := s.m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("could not read migration version: %w", err)
	}
	if dirty {
		return version, fmt.Errorf("database is dirty at version %d", version)
	}
	return version, nil
}

// oracleMigrator runs the embedded Oracle scripts in order and records the
// applied version in schema_migrations. go-ora executes one statement per
// call, so each script is split on ";".
type oracleMigrator struct {
	db  *sql.DB
	dir string
}

type migrationFile struct {
	version uint
	name    string
}

func (o *oracleMigrator) ensureVersionTable() error {
	_, err := o.db.Exec(`CREATE TABLE schema_migrations (version NUMBER NOT NULL PRIMARY KEY)`)
	if err != nil && !isOracleObjectExists(err) {
		return fmt.Errorf("could not create schema_migrations: %w", err)
	}
	return nil
}

func (o *oracleMigrator) Version() (uint, error) {
	if err := o.ensureVersionTable(); err != nil {
		return 0, err
	}
	var version sql.NullInt64
	if err := o.db.QueryRow(`SELECT MAX(version) FROM schema_migrations`).Scan(&version); err != nil {
		return 0, fmt.Errorf("could not read migration version: %w", err)
	}
	return uint(version.Int64), nil
}

func (o *oracleMigrator) Up() error {
	current, err := o.Version()
	if err != nil {
		return err
	}
	files, err := o.list(".up.sql")
	if err != nil {
		return err
	}
	for _, f := range files {
		if f.version <= current {
			continue
		}
		if err := o.exec(f.name); err != nil {
			return err
		}
		if _, err := o.db.Exec(`INSERT INTO schema_migrations (version) VALUES (:1)`, f.version); err != nil {
			return fmt.Errorf("could not record migration %s: %w", f.name, err)
		}
		logger.Get().Info("Executed migration", zap.String("file", f.name))
	}
	return nil
}

func (o *oracleMigrator) Down() error {
	current, err := o.Version()
	if err != nil {
		return err
	}
	files, err := o.list(".down.sql")
	if err != nil {
		return err
	}
	for i := len(files) - 1; i >= 0; i-- {
		f := files[i]
		if f.version > current {
			continue
		}
		if err := o.exec(f.name); err != nil {
			return err
		}
		if _, err := o.db.Exec(`DELETE FROM schema_migrations WHERE version = :1`, f.version); err != nil {
			return fmt.Errorf("could not unrecord migration %s: %w", f.name, err)
		}
		logger.Get().Info("Reverted migration", zap.String("file", f.name))
	}
	return nil
}

func (o *oracleMigrator) list(suffix string) ([]migrationFile, error) {
	entries, err := fs.ReadDir(migrationFS, o.dir)
	if err != nil {
		return nil, fmt.Errorf("could not read migrations directory: %w", err)
	}
	var files []migrationFile
	for _, e := range entries {
		if !strings.HasSuffix(e.Name(), suffix) {
			continue
		}
		version, err := parseVersion(e.Name())
		if err != nil {
			return nil, err
		}
		files = append(files, migrationFile{version: version, name: e.Name()})
	}
	sort.Slice(files, func(i, j int) bool { return files[i].version < files[j].version })
	return files, nil
}

func (o *oracleMigrator) exec(name string) error {
	content, err := fs.ReadFile(migrationFS, path.Join(o.dir, name))
	if err != nil {
		return fmt.Errorf("could not read migration file %s: %w", name, err)
	}
	for _, stmt := range SplitStatements(string(content)) {
		if _, err := o.db.Exec(stmt); err != nil && !isOracleObjectExists(err) {
			return fmt.Errorf("could not execute migration %s: %w", name, err)
		}
	}
	return nil
}

func parseVersion(name string) (uint, error) {
	prefix, _, ok := strings.Cut(name, "_")
	if !ok {
		return 0, fmt.Errorf("migration file %s has no version prefix", name)
	}
	v, err := strconv.ParseUint(prefix, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("migration file %s has an invalid version: %w", name, err)
	}
	return uint(v), nil
}

// SplitStatements splits a script on ";" and drops empty statements.
func SplitStatements(script string) []string {
	var stmts []string
	for _, part := range strings.Split(script, ";") {
		if s := strings.TrimSpace(part); s != "" {
			stmts = append(stmts, s)
		}
	}
	return stmts
}

// ORA-00955: name is already used by an existing object
func isOracleObjectExists(err error) bool {
	return err != nil && strings.Contains(err.Error(), "ORA-00955")
}
