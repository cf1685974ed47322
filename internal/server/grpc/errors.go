package grpc

import (
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dmitrijs2005/apikeeper/internal/common"
)

// statusError maps service errors to gRPC statuses. Internal causes are never
// echoed to the caller.
func statusError(err error) error {
	switch {
	case errors.Is(err, common.ErrBadRequest):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, common.ErrDuplicateUser):
		return status.Error(codes.AlreadyExists, "duplicate_user")
	case errors.Is(err, common.ErrDuplicateAdmin):
		return status.Error(codes.AlreadyExists, "duplicate_admin")
	case errors.Is(err, common.ErrConflict):
		return status.Error(codes.AlreadyExists, "conflict")
	case errors.Is(err, common.ErrInvalidToken):
		return status.Error(codes.Unauthenticated, "invalid_token")
	case errors.Is(err, common.ErrorUnauthorized):
		return status.Error(codes.Unauthenticated, "unauthorized")
	default:
		return status.Error(codes.Internal, "storage_error")
	}
}
