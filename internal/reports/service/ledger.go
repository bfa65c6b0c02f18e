package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/recicla-contigo/backend/internal/reports/domain"
	"github.com/recicla-contigo/backend/internal/reports/repository"
)

// UserCredits is the slice of the user store the ledger needs: the combined,
// atomic point-and-counter increment.
type UserCredits interface {
	AddReportCredit(ctx context.Context, id string, points int) error
}

// Ledger creates reports and awards submission points.
type Ledger struct {
	reports repository.Store
	users   UserCredits
	log     *zap.Logger
}

func NewLedger(reports repository.Store, users UserCredits, log *zap.Logger) *Ledger {
	return &Ledger{
		reports: reports,
		users:   users,
		log:     log,
	}
}

// Submit creates an active, public report stamped with the current server
// time, then credits the submitter. The credit is best-effort: a usuario_id
// that does not resolve never fails the submission, the report stays created
// and the fixed award is still reported back. With a resolvable usuario_id
// the balance and report count move together in one atomic store update.
func (l *Ledger) Submit(ctx context.Context, req domain.SubmitRequest) (*domain.SubmitResult, error) {
	report := &domain.Report{
		ID:          uuid.NewString(),
		Descripcion: req.Descripcion,
		FotoBase64:  req.FotoBase64,
		Latitud:     req.Latitud,
		Longitud:    req.Longitud,
		Direccion:   req.Direccion,
		UsuarioID:   req.UsuarioID,
		Fecha:       time.Now().UTC(),
		Estado:      domain.EstadoActivo,
		Publico:     true,
	}

	if err := l.reports.Create(ctx, report); err != nil {
		return nil, fmt.Errorf("create report: %w", err)
	}

	if err := l.users.AddReportCredit(ctx, req.UsuarioID, domain.PointsPerReport); err != nil {
		l.log.Warn("puntos no acreditados",
			zap.String("reporte_id", report.ID),
			zap.String("usuario_id", req.UsuarioID),
			zap.Error(err))
	}

	return &domain.SubmitResult{
		ReporteID:     report.ID,
		PuntosGanados: domain.PointsPerReport,
	}, nil
}

// ListByUser returns the submitter's reports in insertion order, unbounded.
func (l *Ledger) ListByUser(ctx context.Context, usuarioID string) ([]domain.OwnedReportView, error) {
	reports, err := l.reports.ListByUser(ctx, usuarioID)
	if err != nil {
		return nil, fmt.Errorf("list reports: %w", err)
	}

	out := make([]domain.OwnedReportView, 0, len(reports))
	for _, r := range reports {
		out = append(out, domain.OwnedReportView{
			Descripcion: r.Descripcion,
			FotoBase64:  r.FotoBase64,
			Latitud:     r.Latitud,
			Longitud:    r.Longitud,
			Direccion:   r.Direccion,
			UsuarioID:   r.UsuarioID,
			Fecha:       r.Fecha,
			Estado:      r.Estado,
			Publico:     r.Publico,
		})
	}
	return out, nil
}
