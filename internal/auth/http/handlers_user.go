package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/recicla-contigo/backend/internal/auth/domain"
)

// RegisterUser creates a new citizen account and issues a session token.
func (h *Handler) RegisterUser(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Datos de registro inválidos"})
		return
	}

	res, err := h.authService.Register(c.Request.Context(), domain.RegisterRequest{
		Nombre:     req.Nombre,
		Email:      req.Email,
		Password:   req.Password,
		Latitud:    req.Latitud,
		Longitud:   req.Longitud,
		FotoPerfil: req.FotoPerfil,
	})
	if err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "El email ya está registrado"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "No se pudo registrar el usuario"})
		return
	}

	c.JSON(http.StatusOK, authResponse{
		Message: "Usuario registrado exitosamente",
		Token:   res.Token,
		UserID:  res.User.ID,
		Usuario: newUserSummary(res.User),
	})
}

// Login authenticates by email and password and issues a fresh token.
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Datos de acceso inválidos"})
		return
	}

	res, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"detail": "Credenciales inválidas"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "No se pudo iniciar sesión"})
		return
	}

	c.JSON(http.StatusOK, authResponse{
		Message: "Login exitoso",
		Token:   res.Token,
		UserID:  res.User.ID,
		Usuario: newUserSummary(res.User),
	})
}

// GetUser returns the full profile for an id.
func (h *Handler) GetUser(c *gin.Context) {
	user, err := h.authService.GetUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.renderUserError(c, err)
		return
	}

	c.JSON(http.StatusOK, newUserProfile(user))
}

// UpdateProfile applies a partial update of name and profile photo.
func (h *Handler) UpdateProfile(c *gin.Context) {
	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Cuerpo de solicitud inválido"})
		return
	}

	user, err := h.authService.UpdateProfile(c.Request.Context(), c.Param("id"), domain.UpdateProfileRequest{
		Nombre:     req.Nombre,
		FotoPerfil: req.FotoPerfil,
	})
	if err != nil {
		h.renderUserError(c, err)
		return
	}

	c.JSON(http.StatusOK, newUserProfile(user))
}

func (h *Handler) renderUserError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidUserID):
		c.JSON(http.StatusBadRequest, gin.H{"detail": "ID de usuario inválido"})
	case errors.Is(err, domain.ErrEmptyUpdate):
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Nada que actualizar"})
	case errors.Is(err, domain.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"detail": "Usuario no encontrado"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Error interno"})
	}
}
