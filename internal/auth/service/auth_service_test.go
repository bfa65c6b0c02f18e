package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/recicla-contigo/backend/internal/auth/domain"
	"github.com/recicla-contigo/backend/internal/auth/repository"
	"github.com/recicla-contigo/backend/internal/auth/security"
)

func newTestService() (*AuthService, *repository.MemoryStore, *security.TokenManager) {
	store := repository.NewMemoryStore()
	hasher := security.NewPasswordHasher(security.Argon2Params{
		Memory: 8 * 1024, Iterations: 1, Parallelism: 1, SaltLength: 16, KeyLength: 32,
	})
	tokens := security.NewTokenManager("service-test-secret", 30*24*time.Hour)
	return NewAuthService(store, hasher, tokens, zap.NewNop()), store, tokens
}

func TestRegister_NewUserStartsAtZero(t *testing.T) {
	svc, _, tokens := newTestService()

	res, err := svc.Register(context.Background(), domain.RegisterRequest{
		Nombre: "Carmen", Email: "carmen@example.com", Password: "segura123",
	})
	require.NoError(t, err)

	assert.Equal(t, 0, res.User.Puntos)
	assert.Equal(t, 0, res.User.ReportesEnviados)
	assert.Empty(t, res.User.Logros)
	assert.False(t, res.User.FechaRegistro.IsZero())
	assert.NotEqual(t, "segura123", res.User.PasswordHash)

	userID, err := tokens.Verify(res.Token)
	require.NoError(t, err)
	assert.Equal(t, res.User.ID, userID)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc, store, _ := newTestService()
	ctx := context.Background()

	first, err := svc.Register(ctx, domain.RegisterRequest{
		Nombre: "Carmen", Email: "carmen@example.com", Password: "segura123",
	})
	require.NoError(t, err)

	_, err = svc.Register(ctx, domain.RegisterRequest{
		Nombre: "Otra Carmen", Email: "carmen@example.com", Password: "otra456",
	})
	assert.ErrorIs(t, err, domain.ErrEmailTaken)

	// First user's data is unchanged.
	kept, err := store.GetByID(ctx, first.User.ID)
	require.NoError(t, err)
	assert.Equal(t, "Carmen", kept.Nombre)
	assert.Equal(t, first.User.PasswordHash, kept.PasswordHash)
}

func TestLogin(t *testing.T) {
	svc, _, tokens := newTestService()
	ctx := context.Background()

	reg, err := svc.Register(ctx, domain.RegisterRequest{
		Nombre: "Carmen", Email: "carmen@example.com", Password: "segura123",
	})
	require.NoError(t, err)

	t.Run("valid credentials", func(t *testing.T) {
		res, err := svc.Login(ctx, "carmen@example.com", "segura123")
		require.NoError(t, err)
		assert.Equal(t, reg.User.ID, res.User.ID)

		userID, err := tokens.Verify(res.Token)
		require.NoError(t, err)
		assert.Equal(t, reg.User.ID, userID)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(ctx, "carmen@example.com", "incorrecta")
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := svc.Login(ctx, "nadie@example.com", "segura123")
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})
}

func TestGetUser_MalformedID(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.GetUser(context.Background(), "not-a-uuid")
	assert.ErrorIs(t, err, domain.ErrInvalidUserID)
}

func TestGetUser_NotFound(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.GetUser(context.Background(), "7a9276d6-21f3-4d5e-9d0c-000000000000")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestUpdateProfile(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	reg, err := svc.Register(ctx, domain.RegisterRequest{
		Nombre: "Carmen", Email: "carmen@example.com", Password: "segura123", FotoPerfil: "foto-original",
	})
	require.NoError(t, err)

	t.Run("empty payload", func(t *testing.T) {
		_, err := svc.UpdateProfile(ctx, reg.User.ID, domain.UpdateProfileRequest{})
		assert.ErrorIs(t, err, domain.ErrEmptyUpdate)
	})

	t.Run("name only keeps photo", func(t *testing.T) {
		nombre := "Carmen Quispe"
		updated, err := svc.UpdateProfile(ctx, reg.User.ID, domain.UpdateProfileRequest{Nombre: &nombre})
		require.NoError(t, err)
		assert.Equal(t, "Carmen Quispe", updated.Nombre)
		assert.Equal(t, "foto-original", updated.FotoPerfil)

		fetched, err := svc.GetUser(ctx, reg.User.ID)
		require.NoError(t, err)
		assert.Equal(t, "foto-original", fetched.FotoPerfil)
	})

	t.Run("photo only keeps name", func(t *testing.T) {
		foto := "foto-nueva"
		updated, err := svc.UpdateProfile(ctx, reg.User.ID, domain.UpdateProfileRequest{FotoPerfil: &foto})
		require.NoError(t, err)
		assert.Equal(t, "Carmen Quispe", updated.Nombre)
		assert.Equal(t, "foto-nueva", updated.FotoPerfil)
	})

	t.Run("unknown user", func(t *testing.T) {
		nombre := "Nadie"
		_, err := svc.UpdateProfile(ctx, "7a9276d6-21f3-4d5e-9d0c-000000000000", domain.UpdateProfileRequest{Nombre: &nombre})
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})

	t.Run("malformed id", func(t *testing.T) {
		nombre := "Nadie"
		_, err := svc.UpdateProfile(ctx, "abc", domain.UpdateProfileRequest{Nombre: &nombre})
		assert.ErrorIs(t, err, domain.ErrInvalidUserID)
	})
}
