package users

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

func (r *PostgresRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	query :=
		`INSERT INTO users (first_name, last_name, email, api_key_id)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id
		 `

	err := r.db.QueryRowContext(ctx, query,
		user.FirstName, user.LastName, user.Email, user.KeyID).Scan(&user.ID)
	if err != nil {
		return nil, createError(err)
	}

	return user, nil
}

func (r *PostgresRepository) ListWithKeys(ctx context.Context) ([]models.UserWithKey, error) {
	return listWithKeys(ctx, r.db)
}
