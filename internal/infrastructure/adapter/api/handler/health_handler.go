package handler

import (
	"net/http"

	coreport "github.com/andreysazonov/office-booking/internal/domain/port/core"
	"github.com/andreysazonov/office-booking/internal/infrastructure/adapter/database"
	"github.com/gin-gonic/gin"
)

// HealthHandler serves liveness and readiness probes
type HealthHandler struct {
	poolMonitor *database.ConnectionPoolMonitor
	logger      coreport.Logger
}

// NewHealthHandler creates a new health handler instance
func NewHealthHandler(poolMonitor *database.ConnectionPoolMonitor, logger coreport.Logger) *HealthHandler {
	return &HealthHandler{
		poolMonitor: poolMonitor,
		logger:      logger,
	}
}

// Check handles the GET /healthz endpoint. It pings the database and
// reports the current connection pool state.
func (h *HealthHandler) Check(c *gin.Context) {
	if err := h.poolMonitor.Ping(c.Request.Context()); err != nil {
		h.logger.Error("Health check failed", map[string]any{
			"error": err.Error(),
		})
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "unhealthy",
			"error":  "database unreachable",
		})
		return
	}

	pool := h.poolMonitor.GetMetrics()
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"database": gin.H{
			"open_connections": pool.OpenConnections,
			"in_use":           pool.InUse,
			"idle":             pool.IdleConnections,
		},
	})
}
