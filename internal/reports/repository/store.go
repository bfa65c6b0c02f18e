package repository

import (
	"context"

	"github.com/recicla-contigo/backend/internal/reports/domain"
)

// Store persists reports.
type Store interface {
	// Create inserts a new report.
	Create(ctx context.Context, report *domain.Report) error

	// ListByUser returns every report whose stored usuario_id equals the
	// argument, in insertion order.
	ListByUser(ctx context.Context, usuarioID string) ([]domain.Report, error)

	// ListPublicActive returns reports with publico = true and
	// estado = "activo".
	ListPublicActive(ctx context.Context) ([]domain.Report, error)
}
