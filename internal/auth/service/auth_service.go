package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/recicla-contigo/backend/internal/auth/domain"
	"github.com/recicla-contigo/backend/internal/auth/repository"
	"github.com/recicla-contigo/backend/internal/auth/security"
)

// AuthService registers and authenticates users and issues session tokens.
type AuthService struct {
	users  repository.Store
	hasher *security.PasswordHasher
	tokens *security.TokenManager
	log    *zap.Logger
}

func NewAuthService(users repository.Store, hasher *security.PasswordHasher, tokens *security.TokenManager, log *zap.Logger) *AuthService {
	return &AuthService{
		users:  users,
		hasher: hasher,
		tokens: tokens,
		log:    log,
	}
}

// Register creates a user with zero points and zero submitted reports and
// issues a session token. Fails with domain.ErrEmailTaken when the email is
// already registered.
func (s *AuthService) Register(ctx context.Context, req domain.RegisterRequest) (*domain.AuthResult, error) {
	if _, err := s.users.GetByEmail(ctx, req.Email); err == nil {
		return nil, domain.ErrEmailTaken
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, fmt.Errorf("lookup email: %w", err)
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		ID:            uuid.NewString(),
		Nombre:        req.Nombre,
		Email:         req.Email,
		PasswordHash:  hash,
		Latitud:       req.Latitud,
		Longitud:      req.Longitud,
		FotoPerfil:    req.FotoPerfil,
		Logros:        []string{},
		FechaRegistro: time.Now().UTC(),
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	s.log.Info("usuario registrado", zap.String("user_id", user.ID))

	return &domain.AuthResult{User: user, Token: token}, nil
}

// Login verifies the credentials and issues a fresh token. Prior tokens are
// neither rotated nor invalidated.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.AuthResult, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if errors.Is(err, domain.ErrUserNotFound) {
		return nil, domain.ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("lookup email: %w", err)
	}

	ok, err := s.hasher.Verify(password, user.PasswordHash)
	if err != nil || !ok {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	return &domain.AuthResult{User: user, Token: token}, nil
}

// GetUser returns the full profile. A malformed identifier yields
// domain.ErrInvalidUserID rather than a not-found.
func (s *AuthService) GetUser(ctx context.Context, id string) (*domain.User, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrInvalidUserID
	}
	return s.users.GetByID(ctx, id)
}

// UpdateProfile applies a partial update of name and profile photo.
func (s *AuthService) UpdateProfile(ctx context.Context, id string, req domain.UpdateProfileRequest) (*domain.User, error) {
	if req.Nombre == nil && req.FotoPerfil == nil {
		return nil, domain.ErrEmptyUpdate
	}
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrInvalidUserID
	}
	return s.users.UpdateProfile(ctx, id, req)
}
