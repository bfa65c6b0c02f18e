package http

import "github.com/recicla-contigo/backend/internal/reports/service"

type Handler struct {
	ledger     *service.Ledger
	projection *service.Projection
}

func New(ledger *service.Ledger, projection *service.Projection) *Handler {
	return &Handler{
		ledger:     ledger,
		projection: projection,
	}
}

type submitRequest struct {
	Descripcion string   `json:"descripcion" binding:"required"`
	FotoBase64  string   `json:"foto_base64" binding:"required"`
	Latitud     *float64 `json:"latitud" binding:"required"`
	Longitud    *float64 `json:"longitud" binding:"required"`
	Direccion   string   `json:"direccion,omitempty"`
	UsuarioID   string   `json:"usuario_id" binding:"required"`
}

type submitResponse struct {
	Message       string `json:"message"`
	ReporteID     string `json:"reporte_id"`
	PuntosGanados int    `json:"puntos_ganados"`
}
