package migrations

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func openSQLite(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", "file:"+filepath.Join(t.TempDir(), "m.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestUp_SQLite(t *testing.T) {
	db := openSQLite(t)
	ctx := context.Background()

	require.NoError(t, Up(ctx, db, goose.DialectSQLite3, "sqlite"))
	require.NoError(t, Up(ctx, db, goose.DialectSQLite3, "sqlite"))

	for _, table := range []string{"api_keys", "users", "admins"} {
		var name string
		err := db.QueryRowContext(ctx,
			`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table).Scan(&name)
		require.NoError(t, err, table)
	}
}

func TestEmbeddedDialectsHaveSameVersions(t *testing.T) {
	list := func(dir string) []string {
		entries, err := Migrations.ReadDir(dir)
		require.NoError(t, err)
		var names []string
		for _, e := range entries {
			names = append(names, e.Name())
		}
		return names
	}

	pg := list("postgres")
	assert.Len(t, pg, 3)
	assert.Equal(t, pg, list("mysql"))
	assert.Equal(t, pg, list("sqlite"))
}

func TestUp_UnknownDir(t *testing.T) {
	err := Up(context.Background(), openSQLite(t), goose.DialectSQLite3, "oracle")
	assert.Error(t, err)
}
