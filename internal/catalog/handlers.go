package catalog

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	catalog *Catalog
}

func NewHandler(c *Catalog) *Handler {
	return &Handler{catalog: c}
}

// Register wires the static-catalog routes.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.GET("/incentivos", h.GetIncentivos)
	rg.POST("/canjear", h.Canjear)
	rg.GET("/noticias", h.GetNoticias)
	rg.GET("/educacion", h.GetEducacion)
	rg.GET("/ranking", h.GetRanking)
	rg.GET("/terminos", h.GetTerminos)
	rg.GET("/notificaciones/:usuario_id", h.GetNotificaciones)
	rg.DELETE("/notificaciones/:id", h.DeleteNotificacion)
}

func (h *Handler) GetIncentivos(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"incentivos": h.catalog.Incentivos})
}

type canjearRequest struct {
	IncentivoID string `json:"incentivo_id" binding:"required"`
	UsuarioID   string `json:"usuario_id" binding:"required"`
}

// Canjear acknowledges a redemption. No balance is deducted and no stock is
// tracked; fulfillment happens offline at the participating businesses.
func (h *Handler) Canjear(c *gin.Context) {
	var req canjearRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Datos de canje inválidos"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     "Incentivo canjeado exitosamente",
		"fecha_canje": time.Now().UTC(),
	})
}

func (h *Handler) GetNoticias(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"noticias": h.catalog.Noticias})
}

func (h *Handler) GetEducacion(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"contenido": h.catalog.Educacion})
}

func (h *Handler) GetRanking(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ranking": h.catalog.Ranking})
}

func (h *Handler) GetTerminos(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"terminos": h.catalog.Terminos})
}

func (h *Handler) GetNotificaciones(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"notificaciones": h.catalog.RenderNotificaciones(time.Now().UTC()),
	})
}

func (h *Handler) DeleteNotificacion(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Notificación eliminada"})
}
