package http

import "github.com/gin-gonic/gin"

// Register wires the auth routes. The session middleware is attached to the
// profile-mutation route only; registration, login and profile reads stay
// open.
func (h *Handler) Register(rg *gin.RouterGroup, session gin.HandlerFunc) {
	rg.POST("/usuarios", h.RegisterUser)
	rg.POST("/login", h.Login)
	rg.GET("/usuarios/:id", h.GetUser)
	rg.PUT("/usuarios/:id", session, h.UpdateProfile)
}
