package services

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/apikeeper/internal/dbx"
	"github.com/dmitrijs2005/apikeeper/internal/server/config"
	"github.com/dmitrijs2005/apikeeper/internal/server/models"
	"github.com/dmitrijs2005/apikeeper/internal/server/repositories/admins"
	"github.com/dmitrijs2005/apikeeper/internal/server/repositories/apikeys"
	"github.com/dmitrijs2005/apikeeper/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/apikeeper/internal/server/repositories/users"
	"github.com/dmitrijs2005/apikeeper/internal/testutil"
)

var baseTime = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock(t time.Time) *fakeClock { return &fakeClock{now: t} }

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}

// seqGenerator hands out the given values in order, then numbered values.
type seqGenerator struct {
	mu     sync.Mutex
	values []string
	n      int
	err    error
}

func (g *seqGenerator) Generate() (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.err != nil {
		return "", g.err
	}
	g.n++
	if len(g.values) > 0 {
		v := g.values[0]
		g.values = g.values[1:]
		return v, nil
	}
	return fmt.Sprintf("APIKEY_S3CR3T_%032d", g.n), nil
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.DatabaseDriver = "sqlite"
	cfg.SecretKey = "test-secret"
	return cfg
}

type fixture struct {
	db           *sql.DB
	clock        *fakeClock
	gen          *seqGenerator
	registration *RegistrationService
	validation   *ValidationService
	admin        *AdminService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := testutil.NewSQLiteDB(t)
	clock := newFakeClock(baseTime)
	gen := &seqGenerator{}
	cfg := testConfig()
	m := repomanager.NewSQLiteRepositoryManager()

	return &fixture{
		db:           db,
		clock:        clock,
		gen:          gen,
		registration: NewRegistrationService(db, m, gen, cfg, WithClock(clock)),
		validation:   NewValidationService(db, m, WithClock(clock)),
		admin:        NewAdminService(db, m, cfg, WithClock(clock)),
	}
}

// failingManager returns repositories that fail with err.
type failingManager struct {
	err error
}

func (m failingManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m failingManager) APIKeys(dbx.DBTX) apikeys.Repository         { return failingKeys{m.err} }
func (m failingManager) Users(dbx.DBTX) users.Repository             { return failingUsers{m.err} }
func (m failingManager) Admins(dbx.DBTX) admins.Repository           { return failingAdmins{m.err} }

type failingKeys struct{ err error }

func (f failingKeys) Create(context.Context, *models.APIKey) (*models.APIKey, error) { return nil, f.err }
func (f failingKeys) FindByValue(context.Context, string) (*models.APIKey, error)   { return nil, f.err }

type failingUsers struct{ err error }

func (f failingUsers) Create(context.Context, *models.User) (*models.User, error) { return nil, f.err }
func (f failingUsers) ListWithKeys(context.Context) ([]models.UserWithKey, error) { return nil, f.err }

type failingAdmins struct{ err error }

func (f failingAdmins) Create(context.Context, *models.Admin) (*models.Admin, error) { return nil, f.err }
func (f failingAdmins) FindByEmail(context.Context, string) (*models.Admin, error)  { return nil, f.err }
