package apikeys

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/apikeeper/internal/dbx"
	"github.com/dmitrijs2005/apikeeper/internal/server/models"
)

// SQLRepository serves MySQL and SQLite, which share "?" placeholders and
// report generated ids through LastInsertId.
type SQLRepository struct {
	db dbx.DBTX
}

func NewSQLRepository(db dbx.DBTX) *SQLRepository {
	return &SQLRepository{db: db}
}

func (r *SQLRepository) Create(ctx context.Context, key *models.APIKey) (*models.APIKey, error) {
	query :=
		`INSERT INTO api_keys (key_value, start_date, out_of_date, status)
		 VALUES (?, ?, ?, ?)`

	res, err := r.db.ExecContext(ctx, query,
		key.Value, key.StartDate, key.ExpiryDate, key.Status.NullString())
	if err != nil {
		return nil, createError(err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	key.ID = id

	return key, nil
}

func (r *SQLRepository) FindByValue(ctx context.Context, value string) (*models.APIKey, error) {
	query :=
		`SELECT id, key_value, start_date, out_of_date, status FROM api_keys
		 WHERE key_value = ?`

	return scanKey(r.db.QueryRowContext(ctx, query, value))
}
