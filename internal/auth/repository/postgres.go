package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/recicla-contigo/backend/internal/auth/domain"
)

// PostgresStore is the pgx-backed Store implementation.
type PostgresStore struct {
	db *pgxpool.Pool
}

func NewPostgresStore(db *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{db: db}
}

const userColumns = `id, nombre, email, password_hash, latitud, longitud, foto_perfil, puntos, reportes_enviados, logros, fecha_registro`

func (s *PostgresStore) Create(ctx context.Context, user *domain.User) error {
	const q = `
insert into usuarios (id, nombre, email, password_hash, latitud, longitud, foto_perfil, logros, fecha_registro)
values ($1::uuid, $2, $3, $4, $5, $6, $7, $8, $9);
`
	_, err := s.db.Exec(ctx, q,
		user.ID, user.Nombre, user.Email, user.PasswordHash,
		user.Latitud, user.Longitud, user.FotoPerfil, user.Logros, user.FechaRegistro)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return domain.ErrEmailTaken
	}
	return err
}

func (s *PostgresStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	const q = `select ` + userColumns + ` from usuarios where email = $1;`
	return s.scanUser(s.db.QueryRow(ctx, q, email))
}

func (s *PostgresStore) GetByID(ctx context.Context, id string) (*domain.User, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrUserNotFound
	}
	const q = `select ` + userColumns + ` from usuarios where id = $1::uuid;`
	return s.scanUser(s.db.QueryRow(ctx, q, id))
}

func (s *PostgresStore) UpdateProfile(ctx context.Context, id string, req domain.UpdateProfileRequest) (*domain.User, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrUserNotFound
	}
	const q = `
update usuarios
set nombre = coalesce($2, nombre), foto_perfil = coalesce($3, foto_perfil)
where id = $1::uuid
returning ` + userColumns + `;`
	return s.scanUser(s.db.QueryRow(ctx, q, id, req.Nombre, req.FotoPerfil))
}

func (s *PostgresStore) AddReportCredit(ctx context.Context, id string, points int) error {
	if _, err := uuid.Parse(id); err != nil {
		return domain.ErrUserNotFound
	}
	// Both counters move in one statement; per-row atomicity keeps
	// concurrent submissions from interleaving into a lost update.
	const q = `
update usuarios
set puntos = puntos + $2, reportes_enviados = reportes_enviados + 1
where id = $1::uuid;
`
	ct, err := s.db.Exec(ctx, q, id, points)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (s *PostgresStore) GetNombre(ctx context.Context, id string) (string, error) {
	if _, err := uuid.Parse(id); err != nil {
		return "", domain.ErrUserNotFound
	}
	const q = `select nombre from usuarios where id = $1::uuid;`

	var nombre string
	err := s.db.QueryRow(ctx, q, id).Scan(&nombre)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", domain.ErrUserNotFound
	}
	if err != nil {
		return "", err
	}
	return nombre, nil
}

func (s *PostgresStore) scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	err := row.Scan(
		&u.ID, &u.Nombre, &u.Email, &u.PasswordHash,
		&u.Latitud, &u.Longitud, &u.FotoPerfil,
		&u.Puntos, &u.ReportesEnviados, &u.Logros, &u.FechaRegistro)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}
