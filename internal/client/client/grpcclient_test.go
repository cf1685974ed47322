package client

import (
	"context"
	"errors"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	"github.com/dmitrijs2005/apikeeper/internal/common"
	"github.com/dmitrijs2005/apikeeper/internal/logging"
	"github.com/dmitrijs2005/apikeeper/internal/server/config"
	gs "github.com/dmitrijs2005/apikeeper/internal/server/grpc"
	"github.com/dmitrijs2005/apikeeper/internal/server/keygen"
	"github.com/dmitrijs2005/apikeeper/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/apikeeper/internal/server/services"
	"github.com/dmitrijs2005/apikeeper/internal/testutil"
)

// newBufClient runs a real server over an in-memory listener and returns a
// client connected to it.
func newBufClient(t *testing.T) *GRPCClient {
	t.Helper()
	db := testutil.NewSQLiteDB(t)
	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.SecretKey = "client-test-secret"

	gen, err := keygen.NewGenerator(cfg.KeyPrefix, cfg.KeyRandomBytes)
	require.NoError(t, err)
	m := repomanager.NewSQLiteRepositoryManager()

	srv := gs.NewGRPCServer("", logging.Nop{},
		services.NewRegistrationService(db, m, gen, cfg),
		services.NewValidationService(db, m),
		services.NewAdminService(db, m, cfg),
	)

	lis := bufconn.Listen(1 << 20)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx, lis) }()

	c, err := NewGRPCClient("passthrough:///bufnet", grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
		return lis.DialContext(ctx)
	}))
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = c.Close()
		cancel()
		<-done
	})
	return c
}

func TestGRPCClient_UserFlow(t *testing.T) {
	t.Parallel()
	c := newBufClient(t)
	ctx := context.Background()

	reg, err := c.RegisterUser(ctx, "Ada", "Lovelace", "ada@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, reg.GetApiKey())

	res, err := c.ValidateKey(ctx, reg.GetApiKey())
	require.NoError(t, err)
	assert.True(t, res.GetValid())
	require.NotNil(t, res.GetExpires())
	assert.True(t, res.GetExpires().AsTime().Equal(reg.GetExpires().AsTime()))

	res, err = c.ValidateKey(ctx, reg.GetApiKey()+"x")
	require.NoError(t, err)
	assert.False(t, res.GetValid())
	assert.Equal(t, "KeyNotFound", res.GetReason())

	_, err = c.RegisterUser(ctx, "Ada", "Byron", "ada@example.com")
	assert.ErrorIs(t, err, ErrAlreadyExists)

	_, err = c.RegisterUser(ctx, "", "", "nope")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGRPCClient_AdminFlow(t *testing.T) {
	t.Parallel()
	c := newBufClient(t)
	ctx := context.Background()

	_, err := c.ListUsers(ctx)
	assert.ErrorIs(t, err, ErrUnauthorized)

	admin, err := c.RegisterAdmin(ctx, "root@example.com", "correct horse")
	require.NoError(t, err)
	assert.Equal(t, "root@example.com", admin.GetEmail())

	_, err = c.LoginAdmin(ctx, "root@example.com", "wrong password")
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Empty(t, c.Token())

	token, err := c.LoginAdmin(ctx, "root@example.com", "correct horse")
	require.NoError(t, err)
	assert.Equal(t, token, c.Token())

	_, err = c.RegisterUser(ctx, "Grace", "Hopper", "grace@example.com")
	require.NoError(t, err)

	users, err := c.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "grace@example.com", users[0].GetEmail())

	c.SetToken("garbage")
	_, err = c.ListUsers(ctx)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestAccessTokenInterceptor(t *testing.T) {
	t.Parallel()
	c := &GRPCClient{}

	var got metadata.MD
	invoker := func(ctx context.Context, _ string, _, _ interface{}, _ *grpc.ClientConn, _ ...grpc.CallOption) error {
		got, _ = metadata.FromOutgoingContext(ctx)
		return nil
	}

	require.NoError(t, c.accessTokenInterceptor(context.Background(), "/m", nil, nil, nil, invoker))
	assert.Empty(t, got.Get(common.AuthorizationHeaderName))

	c.SetToken("abc")
	ctx := metadata.AppendToOutgoingContext(context.Background(), common.AuthorizationHeaderName, "stale")
	require.NoError(t, c.accessTokenInterceptor(ctx, "/m", nil, nil, nil, invoker))
	assert.Equal(t, []string{"Bearer abc"}, got.Get(common.AuthorizationHeaderName))
}

func TestMapError(t *testing.T) {
	t.Parallel()
	c := &GRPCClient{}

	tests := []struct {
		in   error
		want error
	}{
		{status.Error(codes.Unauthenticated, "invalid_token"), ErrUnauthorized},
		{status.Error(codes.PermissionDenied, "no"), ErrUnauthorized},
		{status.Error(codes.Unavailable, "down"), ErrUnavailable},
		{status.Error(codes.DeadlineExceeded, "slow"), ErrUnavailable},
		{status.Error(codes.AlreadyExists, "duplicate_user"), ErrAlreadyExists},
		{status.Error(codes.InvalidArgument, "bad"), ErrInvalidInput},
	}
	for _, tt := range tests {
		assert.ErrorIs(t, c.mapError(tt.in), tt.want, tt.in.Error())
	}

	assert.NoError(t, c.mapError(nil))

	internal := status.Error(codes.Internal, "storage_error")
	err := c.mapError(internal)
	assert.ErrorContains(t, err, "rpc error")
	assert.True(t, errors.Is(err, internal))
}
