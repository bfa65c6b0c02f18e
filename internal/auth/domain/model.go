package domain

import (
	"errors"
	"time"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidUserID      = errors.New("invalid user id")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmptyUpdate        = errors.New("nothing to update")
)

// User is a registered citizen. The password is only ever held as a one-way
// argon2id hash; puntos and reportes_enviados move together, by a fixed
// amount, once per submitted report.
type User struct {
	ID               string
	Nombre           string
	Email            string
	PasswordHash     string
	Latitud          *float64
	Longitud         *float64
	FotoPerfil       string
	Puntos           int
	ReportesEnviados int
	Logros           []string
	FechaRegistro    time.Time
}

// RegisterRequest carries the fields accepted at registration.
type RegisterRequest struct {
	Nombre     string
	Email      string
	Password   string
	Latitud    *float64
	Longitud   *float64
	FotoPerfil string
}

// UpdateProfileRequest carries the mutable profile fields. Nil means
// "leave unchanged"; at least one field must be set.
type UpdateProfileRequest struct {
	Nombre     *string
	FotoPerfil *string
}

// AuthResult is returned by Register and Login.
type AuthResult struct {
	User  *User
	Token string
}
