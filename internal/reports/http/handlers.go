package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/recicla-contigo/backend/internal/reports/domain"
)

// SubmitReport creates a report and awards the fixed submission points.
func (h *Handler) SubmitReport(c *gin.Context) {
	var req submitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Datos de reporte inválidos"})
		return
	}

	res, err := h.ledger.Submit(c.Request.Context(), domain.SubmitRequest{
		Descripcion: req.Descripcion,
		FotoBase64:  req.FotoBase64,
		Latitud:     *req.Latitud,
		Longitud:    *req.Longitud,
		Direccion:   req.Direccion,
		UsuarioID:   req.UsuarioID,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "No se pudo registrar el reporte"})
		return
	}

	c.JSON(http.StatusOK, submitResponse{
		Message:       "Reporte enviado exitosamente y publicado para la comunidad",
		ReporteID:     res.ReporteID,
		PuntosGanados: res.PuntosGanados,
	})
}

// ListUserReports returns all reports submitted by a user.
func (h *Handler) ListUserReports(c *gin.Context) {
	reports, err := h.ledger.ListByUser(c.Request.Context(), c.Param("usuario_id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "No se pudieron obtener los reportes"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"reportes": reports})
}

// ListPublicReports returns the community feed, photos included.
func (h *Handler) ListPublicReports(c *gin.Context) {
	reports, err := h.projection.ListPublic(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "No se pudieron obtener los reportes"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"reportes": reports})
}

// ListMapReports returns the marker projection, photos excluded.
func (h *Handler) ListMapReports(c *gin.Context) {
	reports, err := h.projection.ListForMap(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "No se pudieron obtener los reportes"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"reportes": reports})
}
