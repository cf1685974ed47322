package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/apikeeper/internal/common"
	"github.com/dmitrijs2005/apikeeper/internal/dbx"
	"github.com/dmitrijs2005/apikeeper/internal/logging"
	"github.com/dmitrijs2005/apikeeper/internal/server/config"
	"github.com/dmitrijs2005/apikeeper/internal/server/metrics"
	"github.com/dmitrijs2005/apikeeper/internal/server/models"
	"github.com/dmitrijs2005/apikeeper/internal/server/repositories/repomanager"
)

// registrationTimeout bounds the key+user transaction once it is detached
// from the caller's context.
const registrationTimeout = 10 * time.Second

// KeyGenerator produces fresh key values.
type KeyGenerator interface {
	Generate() (string, error)
}

// RegistrationService creates a user together with its API key.
type RegistrationService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	generator   KeyGenerator
	keyValidity time.Duration
	attempts    int
	clock       Clock
	log         logging.Logger
	metrics     *metrics.Metrics
}

func NewRegistrationService(db *sql.DB, m repomanager.RepositoryManager, gen KeyGenerator, cfg *config.Config, opts ...Option) *RegistrationService {
	o := newOptions(opts)
	attempts := cfg.KeyCreateAttempts
	if attempts < 1 {
		attempts = 1
	}
	return &RegistrationService{
		db:          db,
		repomanager: m,
		generator:   gen,
		keyValidity: cfg.KeyValidityDuration,
		attempts:    attempts,
		clock:       o.clock,
		log:         o.log.With("module", "registration"),
		metrics:     o.metrics,
	}
}

// RegisterUser validates the input, then stores a new Active key and the user
// referencing it in one transaction. Either both rows exist afterwards or
// neither does.
//
// Errors: common.ErrBadRequest for invalid input, common.ErrDuplicateUser when
// the email is taken, common.ErrStorage for everything else. A generated key
// that collides with a stored one is replaced and the transaction retried.
func (s *RegistrationService) RegisterUser(ctx context.Context, firstName, lastName, email string) (*models.Registration, error) {
	in := UserRegistration{
		FirstName: trimmed(firstName),
		LastName:  trimmed(lastName),
		Email:     trimmed(email),
	}
	if err := in.Validate(); err != nil {
		s.metrics.Registration("bad_request")
		return nil, badRequest(err)
	}

	// The transaction must finish even if the client goes away mid-request.
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), registrationTimeout)
	defer cancel()

	for attempt := 1; attempt <= s.attempts; attempt++ {
		reg, err := s.register(ctx, in)
		switch {
		case err == nil:
			s.metrics.Registration("ok")
			s.log.Info(ctx, "user registered", "user_id", reg.UserID, "key_id", reg.KeyID)
			return reg, nil
		case errors.Is(err, common.ErrDuplicateKey):
			s.metrics.KeyCollision()
			s.log.Warn(ctx, "generated key collided, retrying", "attempt", attempt)
		case errors.Is(err, common.ErrDuplicateUser):
			s.metrics.Registration("duplicate_user")
			return nil, common.ErrDuplicateUser
		default:
			s.metrics.Registration("storage_error")
			s.log.Error(ctx, "registration failed", "error", err)
			return nil, common.ErrStorage
		}
	}

	s.metrics.Registration("storage_error")
	s.log.Error(ctx, "registration failed: key collisions exhausted", "attempts", s.attempts)
	return nil, common.ErrStorage
}

func (s *RegistrationService) register(ctx context.Context, in UserRegistration) (*models.Registration, error) {
	value, err := s.generator.Generate()
	if err != nil {
		return nil, fmt.Errorf("generate key: %w", err)
	}

	// Stored timestamps keep microsecond precision on every backend.
	start := s.clock.Now().UTC().Truncate(time.Microsecond)
	key := &models.APIKey{
		Value:      value,
		StartDate:  start,
		ExpiryDate: start.Add(s.keyValidity),
		Status:     models.StatusActive,
	}

	var user *models.User
	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		created, err := s.repomanager.APIKeys(tx).Create(ctx, key)
		if err != nil {
			return err
		}

		user, err = s.repomanager.Users(tx).Create(ctx, &models.User{
			FirstName: in.FirstName,
			LastName:  in.LastName,
			Email:     in.Email,
			KeyID:     created.ID,
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	return &models.Registration{
		UserID:  user.ID,
		KeyID:   key.ID,
		APIKey:  key.Value,
		Expires: key.ExpiryDate,
	}, nil
}
