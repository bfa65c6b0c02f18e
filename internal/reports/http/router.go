package http

import "github.com/gin-gonic/gin"

// Register wires the report routes. The session middleware guards the
// submission and owner-scoped listing; the public projections stay open.
func (h *Handler) Register(rg *gin.RouterGroup, session gin.HandlerFunc) {
	rg.POST("/reportes", session, h.SubmitReport)
	rg.GET("/reportes/:usuario_id", session, h.ListUserReports)
	rg.GET("/reportes-publicos", h.ListPublicReports)
	rg.GET("/mapa-reportes", h.ListMapReports)
}
