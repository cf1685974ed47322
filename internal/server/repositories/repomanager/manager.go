// Package repomanager vends dialect-specific repositories bound to a DBTX and
// runs the matching schema migrations.
package repomanager

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"

	"github.com/dmitrijs2005/apikeeper/internal/dbx"
	"github.com/dmitrijs2005/apikeeper/internal/server/repositories/admins"
	"github.com/dmitrijs2005/apikeeper/internal/server/repositories/apikeys"
	"github.com/dmitrijs2005/apikeeper/internal/server/repositories/users"
)

// Supported database/sql driver names.
const (
	DriverPostgres = "pgx"
	DriverMySQL    = "mysql"
	DriverSQLite   = "sqlite"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	APIKeys(db dbx.DBTX) apikeys.Repository
	Users(db dbx.DBTX) users.Repository
	Admins(db dbx.DBTX) admins.Repository
}

// NewRepositoryManager returns the manager for a database/sql driver name.
func NewRepositoryManager(driver string) (RepositoryManager, error) {
	switch driver {
	case DriverPostgres:
		return NewPostgresRepositoryManager(), nil
	case DriverMySQL:
		return NewMySQLRepositoryManager(), nil
	case DriverSQLite:
		return NewSQLiteRepositoryManager(), nil
	}
	return nil, fmt.Errorf("unsupported database driver %q", driver)
}

// Open opens and pings a pool for driver and returns it with its manager.
func Open(ctx context.Context, driver, dsn string, maxOpenConns int) (*sql.DB, RepositoryManager, error) {
	m, err := NewRepositoryManager(driver)
	if err != nil {
		return nil, nil, err
	}

	if driver == DriverMySQL {
		if dsn, err = normalizeMySQLDSN(dsn); err != nil {
			return nil, nil, fmt.Errorf("db dsn error: %w", err)
		}
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("db open error: %w", err)
	}

	if maxOpenConns > 0 {
		db.SetMaxOpenConns(maxOpenConns)
		db.SetMaxIdleConns(maxOpenConns)
	}
	db.SetConnMaxIdleTime(5 * time.Minute)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("db ping error: %w", err)
	}

	return db, m, nil
}

// normalizeMySQLDSN makes DATETIME columns scan into time.Time in UTC,
// whatever the operator's DSN says about parseTime and loc.
func normalizeMySQLDSN(dsn string) (string, error) {
	cfg, err := mysql.ParseDSN(dsn)
	if err != nil {
		return "", err
	}
	cfg.ParseTime = true
	cfg.Loc = time.UTC
	return cfg.FormatDSN(), nil
}
