package repository

import (
	"context"
	"sync"

	"github.com/recicla-contigo/backend/internal/auth/domain"
)

// MemoryStore is a mutex-guarded Store implementation used in tests and
// local development without a database.
type MemoryStore struct {
	mu    sync.RWMutex
	users map[string]*domain.User
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{users: make(map[string]*domain.User)}
}

func (s *MemoryStore) Create(_ context.Context, user *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Email == user.Email {
			return domain.ErrEmailTaken
		}
	}

	s.users[user.ID] = cloneUser(user)
	return nil
}

func (s *MemoryStore) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (s *MemoryStore) GetByID(_ context.Context, id string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (s *MemoryStore) UpdateProfile(_ context.Context, id string, req domain.UpdateProfileRequest) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	if req.Nombre != nil {
		u.Nombre = *req.Nombre
	}
	if req.FotoPerfil != nil {
		u.FotoPerfil = *req.FotoPerfil
	}
	return cloneUser(u), nil
}

func (s *MemoryStore) AddReportCredit(_ context.Context, id string, points int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	// Single critical section: readers never see one counter without the other.
	u.Puntos += points
	u.ReportesEnviados++
	return nil
}

func (s *MemoryStore) GetNombre(_ context.Context, id string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return "", domain.ErrUserNotFound
	}
	return u.Nombre, nil
}

func cloneUser(u *domain.User) *domain.User {
	c := *u
	if u.Latitud != nil {
		lat := *u.Latitud
		c.Latitud = &lat
	}
	if u.Longitud != nil {
		lng := *u.Longitud
		c.Longitud = &lng
	}
	c.Logros = append([]string(nil), u.Logros...)
	return &c
}
