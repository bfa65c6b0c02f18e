package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

const dbPingTimeout = time.Second

// HealthHandler answers the liveness probe. The response is always 200: a
// process that can answer is alive, and the database state rides along in
// the body so a dead dependency is distinguishable from a dead process.
type HealthHandler struct {
	service string
	version string
	db      *pgxpool.Pool
}

// NewHealthHandler builds the probe. db may be nil when the stores are not
// Postgres-backed; the probe then reports the database as disabled.
func NewHealthHandler(service, version string, db *pgxpool.Pool) *HealthHandler {
	return &HealthHandler{
		service: service,
		version: version,
		db:      db,
	}
}

type healthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Service   string    `json:"service"`
	Version   string    `json:"version"`
	DB        string    `json:"db,omitempty"`
}

// Check reports liveness plus a bounded database ping.
func (h *HealthHandler) Check(c *gin.Context) {
	db := "disabled"
	if h.db != nil {
		pingCtx, cancel := context.WithTimeout(c.Request.Context(), dbPingTimeout)
		defer cancel()

		db = "up"
		if err := h.db.Ping(pingCtx); err != nil {
			db = "down"
		}
	}

	c.JSON(http.StatusOK, healthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
		Service:   h.service,
		Version:   h.version,
		DB:        db,
	})
}

func (h *HealthHandler) RegisterRoutes(r gin.IRouter) {
	r.GET("/health", h.Check)
}
