package services

import (
	"context"
	"database/sql"
	"errors"

	"github.com/dmitrijs2005/apikeeper/internal/common"
	"github.com/dmitrijs2005/apikeeper/internal/logging"
	"github.com/dmitrijs2005/apikeeper/internal/server/metrics"
	"github.com/dmitrijs2005/apikeeper/internal/server/models"
	"github.com/dmitrijs2005/apikeeper/internal/server/repositories/repomanager"
)

// ValidationService answers whether a presented key is usable now. It only
// reads.
type ValidationService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	clock       Clock
	log         logging.Logger
	metrics     *metrics.Metrics
}

func NewValidationService(db *sql.DB, m repomanager.RepositoryManager, opts ...Option) *ValidationService {
	o := newOptions(opts)
	return &ValidationService{
		db:          db,
		repomanager: m,
		clock:       o.clock,
		log:         o.log.With("module", "validation"),
		metrics:     o.metrics,
	}
}

// ValidateKey looks the key up by exact value and evaluates it with
// models.Evaluate. A key that is unknown, inactive or expired is a normal
// result with Valid=false. Errors are common.ErrBadRequest for an empty key
// and common.ErrStorage when the lookup fails.
func (s *ValidationService) ValidateKey(ctx context.Context, presentedKey string) (*models.ValidationResult, error) {
	presentedKey = trimmed(presentedKey)
	if presentedKey == "" {
		return nil, badRequest(errors.New("api key is required"))
	}

	key, err := s.repomanager.APIKeys(s.db).FindByValue(ctx, presentedKey)
	if err != nil && !errors.Is(err, common.ErrorNotFound) {
		s.log.Error(ctx, "key lookup failed", "error", err)
		return nil, common.ErrStorage
	}

	result := models.Evaluate(key, s.clock.Now())
	if result.Valid {
		s.metrics.Validation("valid")
	} else {
		s.metrics.Validation(string(result.Reason))
	}
	if key != nil && key.Status == models.StatusUnset {
		s.log.Warn(ctx, "key has no status, treated as inactive", "key_id", key.ID)
	}

	return &result, nil
}
