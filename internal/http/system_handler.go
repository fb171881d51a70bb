package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// HealthChecker es lo minimo que necesitamos de la base para /healthz.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// SystemHandler sirve /healthz y la pagina del dashboard.
type SystemHandler struct {
	logger *zap.Logger
	db     HealthChecker
}

func NewSystemHandler(logger *zap.Logger, db HealthChecker) *SystemHandler {
	return &SystemHandler{logger: logger, db: db}
}

// Healthz maneja GET /healthz.
func (h *SystemHandler) Healthz(c *gin.Context) {
	if h.db == nil {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "db": "disabled"})
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()
	if err := h.db.Ping(ctx); err != nil {
		h.logger.Warn("db ping failed", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "db": "down"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "db": "up"})
}

// Dashboard maneja GET /: pagina embebida que dibuja los graficos a partir de POST /analysis.
func (h *SystemHandler) Dashboard(c *gin.Context) {
	c.FileFromFS("dashboard.html", dashboardFS())
}
