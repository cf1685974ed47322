package apikeys

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/apikeeper/internal/common"
	"github.com/dmitrijs2005/apikeeper/internal/dbx"
	"github.com/dmitrijs2005/apikeeper/internal/server/models"
)

func scanKey(row *sql.Row) (*models.APIKey, error) {
	var (
		key    models.APIKey
		status sql.NullString
	)
	err := row.Scan(&key.ID, &key.Value, &key.StartDate, &key.ExpiryDate, &status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	key.Status = models.ParseKeyStatus(status)
	return &key, nil
}

func createError(err error) error {
	if dbx.IsUniqueViolation(err) {
		return common.ErrDuplicateKey
	}
	return fmt.Errorf("db error: %w", err)
}
