package service

import (
	"context"
	"fmt"

	"github.com/recicla-contigo/backend/internal/reports/domain"
	"github.com/recicla-contigo/backend/internal/reports/repository"
)

// Placeholder names attached when the owner reference does not resolve; an
// unresolved owner degrades to these, it never fails the feed.
const (
	publicNameFallback = "Usuario Anónimo"
	mapNameFallback    = "Usuario"
)

// NameResolver is the slice of the user store the projections need.
type NameResolver interface {
	GetNombre(ctx context.Context, id string) (string, error)
}

// Projection builds the read-only public views over the report ledger.
type Projection struct {
	reports repository.Store
	names   NameResolver
}

func NewProjection(reports repository.Store, names NameResolver) *Projection {
	return &Projection{
		reports: reports,
		names:   names,
	}
}

// ListPublic returns every public active report with the owner's current
// display name attached and the photo included.
func (p *Projection) ListPublic(ctx context.Context) ([]domain.PublicReportView, error) {
	reports, err := p.reports.ListPublicActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("list public reports: %w", err)
	}

	out := make([]domain.PublicReportView, 0, len(reports))
	for _, r := range reports {
		out = append(out, domain.PublicReportView{
			ID:            r.ID,
			Descripcion:   r.Descripcion,
			FotoBase64:    r.FotoBase64,
			Latitud:       r.Latitud,
			Longitud:      r.Longitud,
			Direccion:     r.Direccion,
			UsuarioID:     r.UsuarioID,
			UsuarioNombre: p.resolveName(ctx, r.UsuarioID, publicNameFallback),
			Fecha:         r.Fecha,
			Estado:        r.Estado,
			Publico:       r.Publico,
		})
	}
	return out, nil
}

// ListForMap returns the same reports projected down to marker fields; the
// photo payload is excluded by the view type itself.
func (p *Projection) ListForMap(ctx context.Context) ([]domain.MapReportView, error) {
	reports, err := p.reports.ListPublicActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("list map reports: %w", err)
	}

	out := make([]domain.MapReportView, 0, len(reports))
	for _, r := range reports {
		out = append(out, domain.MapReportView{
			ID:            r.ID,
			Latitud:       r.Latitud,
			Longitud:      r.Longitud,
			Descripcion:   r.Descripcion,
			Fecha:         r.Fecha,
			Direccion:     r.Direccion,
			UsuarioID:     r.UsuarioID,
			UsuarioNombre: p.resolveName(ctx, r.UsuarioID, mapNameFallback),
		})
	}
	return out, nil
}

func (p *Projection) resolveName(ctx context.Context, usuarioID, fallback string) string {
	nombre, err := p.names.GetNombre(ctx, usuarioID)
	if err != nil || nombre == "" {
		return fallback
	}
	return nombre
}
