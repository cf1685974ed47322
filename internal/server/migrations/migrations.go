// Package migrations embeds goose migrations, one directory per SQL dialect.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql mysql/*.sql sqlite/*.sql
var Migrations embed.FS

// Up applies every pending migration found in dir for the given dialect.
// A goose provider is used instead of the package-level goose state so
// several databases can be migrated from the same process.
func Up(ctx context.Context, db *sql.DB, dialect goose.Dialect, dir string) error {
	fsys, err := fs.Sub(Migrations, dir)
	if err != nil {
		return fmt.Errorf("migrations dir %q: %w", dir, err)
	}

	provider, err := goose.NewProvider(dialect, db, fsys)
	if err != nil {
		return fmt.Errorf("goose provider: %w", err)
	}

	if _, err := provider.Up(ctx); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}
	return nil
}
