package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/recicla-contigo/backend/internal/reports/domain"
)

// PostgresStore is the pgx-backed Store implementation.
type PostgresStore struct {
	db *pgxpool.Pool
}

func NewPostgresStore(db *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Create(ctx context.Context, report *domain.Report) error {
	const q = `
insert into reportes (id, descripcion, foto_base64, latitud, longitud, direccion, usuario_id, fecha, estado, publico)
values ($1::uuid, $2, $3, $4, $5, $6, $7, $8, $9, $10);
`
	_, err := s.db.Exec(ctx, q,
		report.ID, report.Descripcion, report.FotoBase64,
		report.Latitud, report.Longitud, report.Direccion,
		report.UsuarioID, report.Fecha, report.Estado, report.Publico)
	return err
}

func (s *PostgresStore) ListByUser(ctx context.Context, usuarioID string) ([]domain.Report, error) {
	const q = `
select id, descripcion, foto_base64, latitud, longitud, direccion, usuario_id, fecha, estado, publico
from reportes
where usuario_id = $1
order by fecha asc;
`
	rows, err := s.db.Query(ctx, q, usuarioID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanReports(rows)
}

func (s *PostgresStore) ListPublicActive(ctx context.Context) ([]domain.Report, error) {
	const q = `
select id, descripcion, foto_base64, latitud, longitud, direccion, usuario_id, fecha, estado, publico
from reportes
where publico = true and estado = 'activo'
order by fecha asc;
`
	rows, err := s.db.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanReports(rows)
}

func scanReports(rows pgx.Rows) ([]domain.Report, error) {
	out := make([]domain.Report, 0, 16)
	for rows.Next() {
		var r domain.Report
		if err := rows.Scan(
			&r.ID, &r.Descripcion, &r.FotoBase64,
			&r.Latitud, &r.Longitud, &r.Direccion,
			&r.UsuarioID, &r.Fecha, &r.Estado, &r.Publico); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
