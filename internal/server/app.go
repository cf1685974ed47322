// Package server wires storage, services and transports together and runs
// the HTTP and gRPC endpoints until shutdown.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrijs2005/apikeeper/internal/logging"
	"github.com/dmitrijs2005/apikeeper/internal/server/config"
	"github.com/dmitrijs2005/apikeeper/internal/server/keygen"
	"github.com/dmitrijs2005/apikeeper/internal/server/metrics"
	"github.com/dmitrijs2005/apikeeper/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/apikeeper/internal/server/services"

	gs "github.com/dmitrijs2005/apikeeper/internal/server/grpc"
	hs "github.com/dmitrijs2005/apikeeper/internal/server/http"
)

type App struct {
	config  *config.Config
	logger  logging.Logger
	db      *sql.DB
	metrics *metrics.Metrics

	registration *services.RegistrationService
	validation   *services.ValidationService
	admin        *services.AdminService
}

// NewApp opens the database, applies migrations and builds the services.
func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("config error: %w", err)
	}

	db, rm, err := repomanager.Open(ctx, c.DatabaseDriver, c.DatabaseDSN, c.DatabaseMaxOpenConns)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	if err := rm.RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration error: %w", err)
	}

	gen, err := keygen.NewGenerator(c.KeyPrefix, c.KeyRandomBytes)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("key generator error: %w", err)
	}

	m := metrics.New()
	opts := []services.Option{services.WithLogger(logger), services.WithMetrics(m)}

	return &App{
		config:       c,
		logger:       logger,
		db:           db,
		metrics:      m,
		registration: services.NewRegistrationService(db, rm, gen, c, opts...),
		validation:   services.NewValidationService(db, rm, opts...),
		admin:        services.NewAdminService(db, rm, c, opts...),
	}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// Run serves both endpoints until ctx is cancelled, a termination signal
// arrives or one of the servers fails. The database is closed on return.
func (app *App) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")
	app.initSignalHandler(cancelFunc)

	httpServer := hs.NewServer(app.config.EndpointAddrHTTP, app.logger, hs.Deps{
		Registration: app.registration,
		Validation:   app.validation,
		Admin:        app.admin,
		Metrics:      app.metrics.Handler(),
		StaticDir:    app.config.StaticDir,
	})
	grpcServer := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.registration, app.validation, app.admin)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return httpServer.Run(gctx) })
	g.Go(func() error { return grpcServer.Run(gctx) })

	err := g.Wait()
	if err != nil {
		app.logger.Error(ctx, "server stopped with error", "error", err)
	}

	if cerr := app.db.Close(); cerr != nil {
		app.logger.Error(ctx, "db close error", "error", cerr)
	}

	app.logger.Info(ctx, "App stopped")
	return err
}
