package admins

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/apikeeper/internal/common"
	"github.com/dmitrijs2005/apikeeper/internal/dbx"
	"github.com/dmitrijs2005/apikeeper/internal/server/models"
)

func scanAdmin(row *sql.Row) (*models.Admin, error) {
	admin := &models.Admin{}
	if err := row.Scan(&admin.ID, &admin.Email, &admin.PasswordHash); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return admin, nil
}

func createError(err error) error {
	if dbx.IsUniqueViolation(err) {
		return common.ErrDuplicateAdmin
	}
	return fmt.Errorf("db error: %w", err)
}
