package repomanager

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"

	"github.com/dmitrijs2005/apikeeper/internal/dbx"
	"github.com/dmitrijs2005/apikeeper/internal/server/repositories/admins"
	"github.com/dmitrijs2005/apikeeper/internal/server/repositories/apikeys"
	"github.com/dmitrijs2005/apikeeper/internal/server/repositories/users"
)

// SQLRepositoryManager vends the "?"-placeholder repositories shared by MySQL
// and SQLite; only the migration set differs.
type SQLRepositoryManager struct {
	dialect goose.Dialect
	dir     string
}

func NewMySQLRepositoryManager() *SQLRepositoryManager {
	return &SQLRepositoryManager{dialect: goose.DialectMySQL, dir: "mysql"}
}

func NewSQLiteRepositoryManager() *SQLRepositoryManager {
	return &SQLRepositoryManager{dialect: goose.DialectSQLite3, dir: "sqlite"}
}

func (m *SQLRepositoryManager) APIKeys(db dbx.DBTX) apikeys.Repository {
	return apikeys.NewSQLRepository(db)
}

func (m *SQLRepositoryManager) Users(db dbx.DBTX) users.Repository {
	return users.NewSQLRepository(db)
}

func (m *SQLRepositoryManager) Admins(db dbx.DBTX) admins.Repository {
	return admins.NewSQLRepository(db)
}

func (m *SQLRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	return migrateUp(ctx, db, m.dialect, m.dir)
}
