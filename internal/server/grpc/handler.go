package grpc

import (
	"context"

	"google.golang.org/protobuf/types/known/timestamppb"

	pb "github.com/dmitrijs2005/apikeeper/internal/proto"
	"github.com/dmitrijs2005/apikeeper/internal/server/models"
)

func (s *GRPCServer) RegisterUser(ctx context.Context, req *pb.RegisterUserRequest) (*pb.RegisterUserResponse, error) {
	reg, err := s.registration.RegisterUser(ctx, req.GetFirstName(), req.GetLastName(), req.GetEmail())
	if err != nil {
		return nil, statusError(err)
	}

	return &pb.RegisterUserResponse{
		Message: "registration successful",
		UserId:  reg.UserID,
		ApiKey:  reg.APIKey,
		Expires: timestamppb.New(reg.Expires),
	}, nil
}

// ValidateKey always answers with a structured outcome; only bad input and
// storage failures become gRPC errors.
func (s *GRPCServer) ValidateKey(ctx context.Context, req *pb.ValidateKeyRequest) (*pb.ValidateKeyResponse, error) {
	res, err := s.validation.ValidateKey(ctx, req.GetApiKey())
	if err != nil {
		return nil, statusError(err)
	}
	return validationResponse(res), nil
}

func (s *GRPCServer) RegisterAdmin(ctx context.Context, req *pb.RegisterAdminRequest) (*pb.RegisterAdminResponse, error) {
	admin, err := s.admin.RegisterAdmin(ctx, req.GetEmail(), req.GetPassword())
	if err != nil {
		return nil, statusError(err)
	}
	return &pb.RegisterAdminResponse{Message: "admin registered", Id: admin.ID, Email: admin.Email}, nil
}

func (s *GRPCServer) LoginAdmin(ctx context.Context, req *pb.LoginAdminRequest) (*pb.LoginAdminResponse, error) {
	token, err := s.admin.Login(ctx, req.GetEmail(), req.GetPassword())
	if err != nil {
		return nil, statusError(err)
	}
	return &pb.LoginAdminResponse{Message: "login successful", Token: token}, nil
}

func (s *GRPCServer) ListUsers(ctx context.Context, _ *pb.ListUsersRequest) (*pb.ListUsersResponse, error) {
	identity := adminFromContext(ctx)
	if identity == nil {
		return nil, errMissingSession
	}

	rows, err := s.admin.ListUsersWithKeys(ctx, identity)
	if err != nil {
		return nil, statusError(err)
	}

	users := make([]*pb.UserWithKey, 0, len(rows))
	for _, r := range rows {
		users = append(users, &pb.UserWithKey{
			Id:         r.UserID,
			FirstName:  r.FirstName,
			LastName:   r.LastName,
			Email:      r.Email,
			KeyValue:   r.KeyValue,
			StartDate:  timestamppb.New(r.StartDate),
			ExpiryDate: timestamppb.New(r.ExpiryDate),
			Status:     r.Status.String(),
		})
	}
	return &pb.ListUsersResponse{Users: users}, nil
}

func validationResponse(res *models.ValidationResult) *pb.ValidateKeyResponse {
	out := &pb.ValidateKeyResponse{
		Valid:   res.Valid,
		Message: res.Message(),
		Reason:  string(res.Reason),
	}
	if res.Valid {
		out.Expires = timestamppb.New(res.Expires)
	}
	if res.Reason == models.ReasonKeyInactive {
		out.Status = res.Status.String()
	}
	return out
}
