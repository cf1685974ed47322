// Package apikeys stores API key records. Key values are unique; a
// violation surfaces as common.ErrDuplicateKey.
package apikeys

import (
	"context"

	"github.com/dmitrijs2005/apikeeper/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, key *models.APIKey) (*models.APIKey, error)
	FindByValue(ctx context.Context, value string) (*models.APIKey, error)
}
