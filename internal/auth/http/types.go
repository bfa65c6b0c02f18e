package http

import (
	"time"

	"github.com/recicla-contigo/backend/internal/auth/domain"
	"github.com/recicla-contigo/backend/internal/auth/service"
)

type Handler struct {
	authService *service.AuthService
}

func New(authService *service.AuthService) *Handler {
	return &Handler{
		authService: authService,
	}
}

type registerRequest struct {
	Nombre     string   `json:"nombre" binding:"required"`
	Email      string   `json:"email" binding:"required,email"`
	Password   string   `json:"password" binding:"required"`
	Latitud    *float64 `json:"latitud,omitempty"`
	Longitud   *float64 `json:"longitud,omitempty"`
	FotoPerfil string   `json:"foto_perfil,omitempty"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type updateProfileRequest struct {
	Nombre     *string `json:"nombre,omitempty"`
	FotoPerfil *string `json:"foto_perfil,omitempty"`
}

// userSummary is the compact view returned with register/login responses.
type userSummary struct {
	ID     string `json:"id"`
	Nombre string `json:"nombre"`
	Email  string `json:"email"`
	Puntos int    `json:"puntos"`
}

// userProfile is the full profile, minus the password hash.
type userProfile struct {
	ID               string    `json:"id"`
	Nombre           string    `json:"nombre"`
	Email            string    `json:"email"`
	Latitud          *float64  `json:"latitud,omitempty"`
	Longitud         *float64  `json:"longitud,omitempty"`
	FotoPerfil       string    `json:"foto_perfil,omitempty"`
	Puntos           int       `json:"puntos"`
	ReportesEnviados int       `json:"reportes_enviados"`
	Logros           []string  `json:"logros"`
	FechaRegistro    time.Time `json:"fecha_registro"`
}

type authResponse struct {
	Message string      `json:"message"`
	Token   string      `json:"token"`
	UserID  string      `json:"user_id"`
	Usuario userSummary `json:"usuario"`
}

func newUserSummary(u *domain.User) userSummary {
	return userSummary{
		ID:     u.ID,
		Nombre: u.Nombre,
		Email:  u.Email,
		Puntos: u.Puntos,
	}
}

func newUserProfile(u *domain.User) userProfile {
	logros := u.Logros
	if logros == nil {
		logros = []string{}
	}
	return userProfile{
		ID:               u.ID,
		Nombre:           u.Nombre,
		Email:            u.Email,
		Latitud:          u.Latitud,
		Longitud:         u.Longitud,
		FotoPerfil:       u.FotoPerfil,
		Puntos:           u.Puntos,
		ReportesEnviados: u.ReportesEnviados,
		Logros:           logros,
		FechaRegistro:    u.FechaRegistro,
	}
}
