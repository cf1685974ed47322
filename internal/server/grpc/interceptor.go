package grpc

import (
	"context"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/dmitrijs2005/apikeeper/internal/common"
	pb "github.com/dmitrijs2005/apikeeper/internal/proto"
	"github.com/dmitrijs2005/apikeeper/internal/server/models"
)

type ctxKey string

const (
	adminIdentityKey ctxKey = "adminIdentity"
	requestIDHeader         = "x-request-id"
)

// requestInterceptor tags each call with a request id and logs its outcome.
func (s *GRPCServer) requestInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
	requestID := firstMetadata(ctx, requestIDHeader)
	if requestID == "" {
		requestID = uuid.NewString()
	}
	_ = grpc.SetHeader(ctx, metadata.Pairs(requestIDHeader, requestID))

	started := time.Now()
	resp, err := handler(ctx, req)

	s.logger.Info(ctx, "grpc request",
		"request_id", requestID,
		"method", info.FullMethod,
		"code", status.Code(err).String(),
		"duration", time.Since(started))

	return resp, err
}

// adminSessionInterceptor guards admin-only methods with a bearer token taken
// from the authorization metadata.
func (s *GRPCServer) adminSessionInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
	if info.FullMethod != pb.APIKeeper_ListUsers_FullMethodName {
		return handler(ctx, req)
	}

	raw := firstMetadata(ctx, common.AuthorizationHeaderName)
	token := common.BearerToken(raw)
	if token == "" {
		token = raw
	}

	identity, err := s.admin.Authenticate(token)
	if err != nil {
		return nil, statusError(err)
	}

	return handler(context.WithValue(ctx, adminIdentityKey, identity), req)
}

func adminFromContext(ctx context.Context) *models.AdminIdentity {
	identity, _ := ctx.Value(adminIdentityKey).(*models.AdminIdentity)
	return identity
}

func firstMetadata(ctx context.Context, key string) string {
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if values := md.Get(key); len(values) > 0 {
			return values[0]
		}
	}
	return ""
}

var errMissingSession = status.Error(codes.Unauthenticated, "unauthorized")
