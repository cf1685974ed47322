package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/apikeeper/internal/common"
)

func TestAdmin_RegisterLoginAndList(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.admin.RegisterAdmin(ctx, "root@example.com", "correct horse")
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	token, err := f.admin.Login(ctx, "root@example.com", "correct horse")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	identity, err := f.admin.Authenticate(token)
	require.NoError(t, err)
	assert.Equal(t, created, identity)

	_, err = f.registration.RegisterUser(ctx, "Ada", "Lovelace", "ada@example.com")
	require.NoError(t, err)
	_, err = f.registration.RegisterUser(ctx, "Charles", "Babbage", "charles@example.com")
	require.NoError(t, err)

	rows, err := f.admin.ListUsersWithKeys(ctx, identity)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Less(t, rows[0].UserID, rows[1].UserID)
}

func TestAdmin_RegisterDuplicate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.admin.RegisterAdmin(ctx, "root@example.com", "correct horse")
	require.NoError(t, err)

	_, err = f.admin.RegisterAdmin(ctx, "root@example.com", "another pass")
	assert.ErrorIs(t, err, common.ErrDuplicateAdmin)
}

func TestAdmin_RegisterInvalid(t *testing.T) {
	f := newFixture(t)

	_, err := f.admin.RegisterAdmin(context.Background(), "root", "correct horse")
	assert.ErrorIs(t, err, common.ErrBadRequest)

	_, err = f.admin.RegisterAdmin(context.Background(), "root@example.com", "short")
	assert.ErrorIs(t, err, common.ErrBadRequest)
}

func TestAdmin_LoginFailures(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.admin.RegisterAdmin(ctx, "root@example.com", "correct horse")
	require.NoError(t, err)

	_, err = f.admin.Login(ctx, "root@example.com", "wrong password")
	assert.ErrorIs(t, err, common.ErrorUnauthorized)

	_, err = f.admin.Login(ctx, "nobody@example.com", "correct horse")
	assert.ErrorIs(t, err, common.ErrorUnauthorized)

	_, err = f.admin.Login(ctx, "", "")
	assert.ErrorIs(t, err, common.ErrBadRequest)
}

func TestAdmin_Authenticate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.admin.RegisterAdmin(ctx, "root@example.com", "correct horse")
	require.NoError(t, err)
	token, err := f.admin.Login(ctx, "root@example.com", "correct horse")
	require.NoError(t, err)

	_, err = f.admin.Authenticate("  ")
	assert.ErrorIs(t, err, common.ErrorUnauthorized)

	_, err = f.admin.Authenticate("garbage")
	assert.ErrorIs(t, err, common.ErrInvalidToken)

	f.clock.Set(baseTime.Add(time.Hour + time.Second))
	_, err = f.admin.Authenticate(token)
	assert.ErrorIs(t, err, common.ErrInvalidToken)
	assert.ErrorIs(t, err, common.ErrTokenExpired)
}

func TestAdmin_TokenFromOtherSecretRejected(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.admin.RegisterAdmin(ctx, "root@example.com", "correct horse")
	require.NoError(t, err)
	token, err := f.admin.Login(ctx, "root@example.com", "correct horse")
	require.NoError(t, err)

	cfg := testConfig()
	cfg.SecretKey = "other-secret"
	other := NewAdminService(f.db, nil, cfg, WithClock(f.clock))

	_, err = other.Authenticate(token)
	assert.ErrorIs(t, err, common.ErrInvalidToken)
}

func TestAdmin_ListRequiresIdentity(t *testing.T) {
	f := newFixture(t)

	_, err := f.admin.ListUsersWithKeys(context.Background(), nil)
	assert.ErrorIs(t, err, common.ErrorUnauthorized)
}

func TestAdmin_StorageFailures(t *testing.T) {
	s := NewAdminService(nil, failingManager{err: errors.New("db error: down")}, testConfig())
	ctx := context.Background()

	_, err := s.Login(ctx, "root@example.com", "correct horse")
	assert.ErrorIs(t, err, common.ErrStorage)

	_, err = s.RegisterAdmin(ctx, "root@example.com", "correct horse")
	assert.ErrorIs(t, err, common.ErrStorage)
}
