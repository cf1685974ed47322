package admins

import (
	"context"

	"github.com/dmitrijs2005/apikeeper/internal/dbx"
	"github.com/dmitrijs2005/apikeeper/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, admin *models.Admin) (*models.Admin, error) {
	query :=
		`INSERT INTO admins (email, password_hash)
		 VALUES ($1, $2)
		 RETURNING id
		 `

	if err := r.db.QueryRowContext(ctx, query, admin.Email, admin.PasswordHash).Scan(&admin.ID); err != nil {
		return nil, createError(err)
	}
	return admin, nil
}

func (r *PostgresRepository) FindByEmail(ctx context.Context, email string) (*models.Admin, error) {
	query :=
		`SELECT id, email, password_hash FROM admins
		 WHERE email = $1
		 `

	return scanAdmin(r.db.QueryRowContext(ctx, query, email))
}
