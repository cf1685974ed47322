// Package http serves the REST API: user registration, key validation and
// the admin endpoints, plus health, metrics and static files.
package http

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dmitrijs2005/apikeeper/internal/logging"
	"github.com/dmitrijs2005/apikeeper/internal/server/models"
)

const (
	shutdownTimeout = 5 * time.Second
	maxBodyBytes    = 1 << 20
)

// Registrar creates users with their keys.
type Registrar interface {
	RegisterUser(ctx context.Context, firstName, lastName, email string) (*models.Registration, error)
}

// KeyValidator evaluates presented keys.
type KeyValidator interface {
	ValidateKey(ctx context.Context, presentedKey string) (*models.ValidationResult, error)
}

// AdminGuard manages administrators and their sessions.
type AdminGuard interface {
	RegisterAdmin(ctx context.Context, email, password string) (*models.AdminIdentity, error)
	Login(ctx context.Context, email, password string) (string, error)
	Authenticate(token string) (*models.AdminIdentity, error)
	ListUsersWithKeys(ctx context.Context, identity *models.AdminIdentity) ([]models.UserWithKey, error)
}

// Deps are the collaborators of the HTTP server. Metrics defaults to the
// global Prometheus handler; an empty StaticDir disables static files.
type Deps struct {
	Registration Registrar
	Validation   KeyValidator
	Admin        AdminGuard
	Metrics      http.Handler
	StaticDir    string
}

type Server struct {
	address string
	deps    Deps
	logger  logging.Logger
}

func NewServer(address string, l logging.Logger, deps Deps) *Server {
	if deps.Metrics == nil {
		deps.Metrics = promhttp.Handler()
	}
	return &Server{
		address: address,
		deps:    deps,
		logger:  l.With("module", "http_server"),
	}
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(s.requestLogger)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Authorization", "Content-Type", requestIDHeader},
		ExposedHeaders: []string{requestIDHeader},
		MaxAge:         300,
	}))

	r.Get("/", s.handleRoot)
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", s.deps.Metrics)

	r.Post("/user/register", s.handleRegisterUser)
	r.Post("/validate-apikey", s.handleValidateKey)

	r.Route("/admin", func(r chi.Router) {
		r.Post("/register", s.handleRegisterAdmin)
		r.Post("/login", s.handleLoginAdmin)
		r.With(s.authMiddleware).Get("/users", s.handleListUsers)
	})

	// Static files share the site root; the routes above take precedence.
	if s.deps.StaticDir != "" {
		r.Get("/*", http.FileServer(http.Dir(s.deps.StaticDir)).ServeHTTP)
	}

	return r
}

// Run serves on the configured address until ctx is done, then shuts down
// gracefully.
func (s *Server) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.Serve(ctx, listen)
}

func (s *Server) Serve(ctx context.Context, listen net.Listener) error {
	srv := &http.Server{
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "HTTP shutdown failed", "error", err)
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", listen.Addr().String())

	if err := srv.Serve(listen); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
