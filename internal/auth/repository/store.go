package repository

import (
	"context"

	"github.com/recicla-contigo/backend/internal/auth/domain"
)

// Store persists user identity, credentials and the point/report counters.
type Store interface {
	// Create inserts a new user. Returns domain.ErrEmailTaken when the
	// email is already registered.
	Create(ctx context.Context, user *domain.User) error

	// GetByEmail returns the user with the given email, or
	// domain.ErrUserNotFound.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)

	// GetByID returns the user with the given identifier, or
	// domain.ErrUserNotFound.
	GetByID(ctx context.Context, id string) (*domain.User, error)

	// UpdateProfile applies the non-nil fields and returns the updated
	// user. Unspecified fields are left unchanged.
	UpdateProfile(ctx context.Context, id string, req domain.UpdateProfileRequest) (*domain.User, error)

	// AddReportCredit adds points to the balance and increments the
	// submitted-report count as one atomic mutation, so concurrent
	// submissions by the same user never lose an update and no reader
	// observes one counter moved without the other.
	AddReportCredit(ctx context.Context, id string, points int) error

	// GetNombre returns the user's current display name, or
	// domain.ErrUserNotFound.
	GetNombre(ctx context.Context, id string) (string, error)
}
