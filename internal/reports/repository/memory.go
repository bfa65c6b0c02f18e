package repository

import (
	"context"
	"sync"

	"github.com/recicla-contigo/backend/internal/reports/domain"
)

// MemoryStore is a mutex-guarded Store implementation used in tests and
// local development without a database. Reports are kept in insertion order.
type MemoryStore struct {
	mu      sync.RWMutex
	reports []domain.Report
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Create(_ context.Context, report *domain.Report) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.reports = append(s.reports, *report)
	return nil
}

func (s *MemoryStore) ListByUser(_ context.Context, usuarioID string) ([]domain.Report, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Report, 0, len(s.reports))
	for _, r := range s.reports {
		if r.UsuarioID == usuarioID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *MemoryStore) ListPublicActive(_ context.Context) ([]domain.Report, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Report, 0, len(s.reports))
	for _, r := range s.reports {
		if r.Publico && r.Estado == domain.EstadoActivo {
			out = append(out, r)
		}
	}
	return out, nil
}
