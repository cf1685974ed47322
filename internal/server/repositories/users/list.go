package users

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/apikeeper/internal/common"
	"github.com/dmitrijs2005/apikeeper/internal/dbx"
	"github.com/dmitrijs2005/apikeeper/internal/server/models"
)

const listWithKeysQuery = `SELECT u.id, u.first_name, u.last_name, u.email,
		k.key_value, k.start_date, k.out_of_date, k.status
	FROM users u
	JOIN api_keys k ON u.api_key_id = k.id
	ORDER BY u.id`

// listWithKeys is shared by every dialect; the join has no placeholders.
func listWithKeys(ctx context.Context, db dbx.DBTX) ([]models.UserWithKey, error) {
	rows, err := db.QueryContext(ctx, listWithKeysQuery)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]models.UserWithKey, 0)
	for rows.Next() {
		var (
			item   models.UserWithKey
			status sql.NullString
		)
		if err := rows.Scan(&item.UserID, &item.FirstName, &item.LastName, &item.Email,
			&item.KeyValue, &item.StartDate, &item.ExpiryDate, &status); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		item.Status = models.ParseKeyStatus(status)
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func createError(err error) error {
	if dbx.IsUniqueViolation(err) {
		return common.ErrDuplicateUser
	}
	return fmt.Errorf("db error: %w", err)
}
