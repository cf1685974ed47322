package apikeys

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

func (r *PostgresRepository) Create(ctx context.Context, key *models.APIKey) (*models.APIKey, error) {
	query :=
		`INSERT INTO api_keys (key_value, start_date, out_of_date, status)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id
		 `

	err := r.db.QueryRowContext(ctx, query,
		key.Value, key.StartDate, key.ExpiryDate, key.Status.NullString()).Scan(&key.ID)
	if err != nil {
		return nil, createError(err)
	}

	return key, nil
}

func (r *PostgresRepository) FindByValue(ctx context.Context, value string) (*models.APIKey, error) {
	query :=
		`SELECT id, key_value, start_date, out_of_date, status FROM api_keys
		 WHERE key_value = $1
		 `

	return scanKey(r.db.QueryRowContext(ctx, query, value))
}
