package admins

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/apikeeper/internal/dbx"
	"github.com/dmitrijs2005/apikeeper/internal/server/models"
)

// SQLRepository serves MySQL and SQLite.
type SQLRepository struct {
	db dbx.DBTX
}

func NewSQLRepository(db dbx.DBTX) *SQLRepository {
	return &SQLRepository{db: db}
}

func (r *SQLRepository) Create(ctx context.Context, admin *models.Admin) (*models.Admin, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO admins (email, password_hash) VALUES (?, ?)`, admin.Email, admin.PasswordHash)
	if err != nil {
		return nil, createError(err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	admin.ID = id
	return admin, nil
}

func (r *SQLRepository) FindByEmail(ctx context.Context, email string) (*models.Admin, error) {
	return scanAdmin(r.db.QueryRowContext(ctx,
		`SELECT id, email, password_hash FROM admins WHERE email = ?`, email))
}
