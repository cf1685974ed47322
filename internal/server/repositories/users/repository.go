// Package users stores registered API consumers. Emails are unique; a
// violation surfaces as common.ErrDuplicateUser.
package users

import (
	"context"

	"github.com/dmitrijs2005/apikeeper/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	ListWithKeys(ctx context.Context) ([]models.UserWithKey, error)
}
