package users

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

func (r *SQLRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	query :=
		`INSERT INTO users (first_name, last_name, email, api_key_id)
		 VALUES (?, ?, ?, ?)`

	res, err := r.db.ExecContext(ctx, query, user.FirstName, user.LastName, user.Email, user.KeyID)
	if err != nil {
		return nil, createError(err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	user.ID = id

	return user, nil
}

func (r *SQLRepository) ListWithKeys(ctx context.Context) ([]models.UserWithKey, error) {
	return listWithKeys(ctx, r.db)
}
