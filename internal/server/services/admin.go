package services

import (
	"context"
	"database/sql"
	"errors"
	"sync"
	"time"

	"github.com/dmitrijs2005/apikeeper/internal/common"
	"github.com/dmitrijs2005/apikeeper/internal/logging"
	"github.com/dmitrijs2005/apikeeper/internal/server/auth"
	"github.com/dmitrijs2005/apikeeper/internal/server/config"
	"github.com/dmitrijs2005/apikeeper/internal/server/metrics"
	"github.com/dmitrijs2005/apikeeper/internal/server/models"
	"github.com/dmitrijs2005/apikeeper/internal/server/repositories/repomanager"
)

// AdminService registers and logs in administrators, verifies their session
// tokens and serves the user listing they may audit.
type AdminService struct {
	db              *sql.DB
	repomanager     repomanager.RepositoryManager
	secretKey       []byte
	sessionValidity time.Duration
	clock           Clock
	log             logging.Logger
	metrics         *metrics.Metrics

	dummyOnce sync.Once
	dummyHash string
}

func NewAdminService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config, opts ...Option) *AdminService {
	o := newOptions(opts)
	return &AdminService{
		db:              db,
		repomanager:     m,
		secretKey:       []byte(cfg.SecretKey),
		sessionValidity: cfg.AdminSessionValidityDuration,
		clock:           o.clock,
		log:             o.log.With("module", "admin"),
		metrics:         o.metrics,
	}
}

// RegisterAdmin stores a new administrator with a bcrypt password hash.
func (s *AdminService) RegisterAdmin(ctx context.Context, email, password string) (*models.AdminIdentity, error) {
	in := AdminCredentials{Email: trimmed(email), Password: password}
	if err := in.ValidateForRegistration(); err != nil {
		return nil, badRequest(err)
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		s.log.Error(ctx, "password hashing failed", "error", err)
		return nil, common.ErrStorage
	}

	admin, err := s.repomanager.Admins(s.db).Create(ctx, &models.Admin{Email: in.Email, PasswordHash: hash})
	if err != nil {
		if errors.Is(err, common.ErrDuplicateAdmin) {
			return nil, common.ErrDuplicateAdmin
		}
		s.log.Error(ctx, "admin create failed", "error", err)
		return nil, common.ErrStorage
	}

	s.log.Info(ctx, "admin registered", "admin_id", admin.ID)
	return &models.AdminIdentity{ID: admin.ID, Email: admin.Email}, nil
}

// Login checks credentials and returns a signed session token. Unknown email
// and wrong password both yield common.ErrorUnauthorized.
func (s *AdminService) Login(ctx context.Context, email, password string) (string, error) {
	in := AdminCredentials{Email: trimmed(email), Password: password}
	if err := in.ValidateForLogin(); err != nil {
		return "", badRequest(err)
	}

	admin, err := s.repomanager.Admins(s.db).FindByEmail(ctx, in.Email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			// Spend the same bcrypt time as a real check.
			_, _ = auth.CheckPassword(s.dummyPasswordHash(), in.Password)
			s.metrics.AdminLogin("unauthorized")
			return "", common.ErrorUnauthorized
		}
		s.log.Error(ctx, "admin lookup failed", "error", err)
		return "", common.ErrStorage
	}

	ok, err := auth.CheckPassword(admin.PasswordHash, in.Password)
	if err != nil {
		s.log.Error(ctx, "stored password hash unreadable", "admin_id", admin.ID, "error", err)
		return "", common.ErrStorage
	}
	if !ok {
		s.metrics.AdminLogin("unauthorized")
		return "", common.ErrorUnauthorized
	}

	token, err := auth.GenerateAdminToken(models.AdminIdentity{ID: admin.ID, Email: admin.Email},
		s.secretKey, s.clock.Now(), s.sessionValidity)
	if err != nil {
		s.log.Error(ctx, "token signing failed", "error", err)
		return "", common.ErrStorage
	}

	s.metrics.AdminLogin("ok")
	s.log.Info(ctx, "admin logged in", "admin_id", admin.ID)
	return token, nil
}

// Authenticate verifies a bearer token. An empty token is
// common.ErrorUnauthorized; a bad, expired or foreign token is
// common.ErrInvalidToken.
func (s *AdminService) Authenticate(token string) (*models.AdminIdentity, error) {
	token = trimmed(token)
	if token == "" {
		return nil, common.ErrorUnauthorized
	}
	return auth.ParseAdminToken(token, s.secretKey, s.clock.Now())
}

// ListUsersWithKeys returns every user joined with its key, ordered by user
// id. identity must come from Authenticate.
func (s *AdminService) ListUsersWithKeys(ctx context.Context, identity *models.AdminIdentity) ([]models.UserWithKey, error) {
	if identity == nil {
		return nil, common.ErrorUnauthorized
	}

	rows, err := s.repomanager.Users(s.db).ListWithKeys(ctx)
	if err != nil {
		s.log.Error(ctx, "user listing failed", "error", err)
		return nil, common.ErrStorage
	}

	s.log.Debug(ctx, "users listed", "admin_id", identity.ID, "count", len(rows))
	return rows, nil
}

func (s *AdminService) dummyPasswordHash() string {
	s.dummyOnce.Do(func() {
		h, err := auth.HashPassword("not-a-real-password")
		if err == nil {
			s.dummyHash = h
		}
	})
	return s.dummyHash
}
