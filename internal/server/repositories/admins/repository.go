// Package admins stores administrator credentials.
package admins

import (
	"context"

	"github.com/dmitrijs2005/apikeeper/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, admin *models.Admin) (*models.Admin, error)
	FindByEmail(ctx context.Context, email string) (*models.Admin, error)
}
