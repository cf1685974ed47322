// Package grpc serves the apikeeper.v1.APIKeeper service and the standard
// gRPC health service.
package grpc

import (
	"context"
	"net"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/dmitrijs2005/apikeeper/internal/logging"
	pb "github.com/dmitrijs2005/apikeeper/internal/proto"
	"github.com/dmitrijs2005/apikeeper/internal/server/models"
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

type GRPCServer struct {
	pb.UnimplementedAPIKeeperServer
	address      string
	registration Registrar
	validation   KeyValidator
	admin        AdminGuard
	logger       logging.Logger
}

func NewGRPCServer(a string, l logging.Logger, reg Registrar, val KeyValidator, adm AdminGuard) *GRPCServer {
	return &GRPCServer{
		address:      a,
		logger:       l.With("module", "grpc_server"),
		registration: reg,
		validation:   val,
		admin:        adm,
	}
}

// Run listens on the configured address and serves until ctx is done.
func (s *GRPCServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.Serve(ctx, listen)
}

// Serve serves on listen until ctx is done, then stops gracefully.
func (s *GRPCServer) Serve(ctx context.Context, listen net.Listener) error {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.requestInterceptor, s.adminSessionInterceptor))

	pb.RegisterAPIKeeperServer(srv, s)

	healthSrv := health.NewServer()
	healthSrv.SetServingStatus(pb.APIKeeper_ServiceDesc.ServiceName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(srv, healthSrv)

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		healthSrv.Shutdown()
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", listen.Addr().String())

	if err := srv.Serve(listen); err != nil {
		return err
	}
	return nil
}
