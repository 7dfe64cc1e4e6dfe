package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HyperionMedia/Plated-Free-sub001/internal/service"
	"github.com/HyperionMedia/Plated-Free-sub001/internal/store"
	"github.com/HyperionMedia/Plated-Free-sub001/internal/store/kv"
)

func setupAuthTest(t *testing.T) (*store.Store, *service.AuthService) {
	t.Helper()
	s := store.New(kv.NewMemory())
	require.NoError(t, s.Load(context.Background()))
	return s, service.NewAuthService(s, "test-secret")
}

func TestRegisterAndLogin(t *testing.T) {
	ctx := context.Background()
	s, auth := setupAuthTest(t)

	user, token, err := auth.Register(ctx, "cook@example.com", "cook", "hunter2hunter2")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.NotEmpty(t, user.ID)
	assert.True(t, s.IsAuthenticated())

	claims, err := auth.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, "cook", claims.Username)

	_, loginToken, err := auth.Login(ctx, "cook@example.com", "hunter2hunter2")
	require.NoError(t, err)
	assert.NotEmpty(t, loginToken)
}

func TestLoginIsCaseInsensitiveOnEmail(t *testing.T) {
	ctx := context.Background()
	_, auth := setupAuthTest(t)

	_, _, err := auth.Register(ctx, "Cook@Example.com", "cook", "hunter2hunter2")
	require.NoError(t, err)

	_, _, err = auth.Login(ctx, "cook@example.com", "hunter2hunter2")
	assert.NoError(t, err)

	// Duplicate registration differing only in case is rejected.
	_, _, err = auth.Register(ctx, "COOK@EXAMPLE.COM", "cook2", "hunter2hunter2")
	assert.ErrorIs(t, err, store.ErrUserAlreadyExists)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	ctx := context.Background()
	s, auth := setupAuthTest(t)

	_, _, err := auth.Register(ctx, "cook@example.com", "cook", "hunter2hunter2")
	require.NoError(t, err)

	_, _, err = auth.Login(ctx, "cook@example.com", "wrong-password")
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)

	_, _, err = auth.Login(ctx, "nobody@example.com", "hunter2hunter2")
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)

	require.NoError(t, auth.Logout(ctx))
	assert.False(t, s.IsAuthenticated())
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	_, auth := setupAuthTest(t)

	_, err := auth.ValidateToken("not-a-token")
	assert.Error(t, err)

	other := service.NewAuthService(store.New(kv.NewMemory()), "other-secret")
	_, token, err := otherRegister(other)
	require.NoError(t, err)

	// Token signed with a different secret fails validation.
	_, err = auth.ValidateToken(token)
	assert.Error(t, err)
}

func otherRegister(auth *service.AuthService) (string, string, error) {
	u, token, err := auth.Register(context.Background(), "x@example.com", "x", "hunter2hunter2")
	return u.ID, token, err
}
