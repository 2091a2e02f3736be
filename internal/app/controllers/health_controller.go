package controllers

import (
	"context"
	"net/http"
	"runtime"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/GeetAtGit/ReportVerse/internal/app/models/dto"
	"github.com/GeetAtGit/ReportVerse/internal/db"
)

const dbPingTimeout = 2 * time.Second

// HealthController reports process and database liveness
type HealthController struct {
	connManager *db.ConnectionManager
	version     string
	startedAt   time.Time
	logger      zerolog.Logger
}

// NewHealthController creates a new HealthController
func NewHealthController(connManager *db.ConnectionManager, version string, logger zerolog.Logger) *HealthController {
	return &HealthController{
		connManager: connManager,
		version:     version,
		startedAt:   time.Now(),
		logger:      logger,
	}
}

// Health reports service status
// @Summary Health check
// @Description Returns process and database health. Always answers 200; a failing database is reported as degraded in the body.
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Router /health [get]
func (c *HealthController) Health(ctx *gin.Context) {
	status := "up"
	database := "up"

	pingCtx, cancel := context.WithTimeout(ctx.Request.Context(), dbPingTimeout)
	defer cancel()

	if err := c.connManager.Ping(pingCtx); err != nil {
		c.logger.Warn().Err(err).Msg("Database ping failed during health check")
		status = "degraded"
		database = "down"
	}

	ctx.JSON(http.StatusOK, dto.HealthResponse{
		Status:    status,
		Timestamp: time.Now().UTC(),
		Version:   c.version,
		Database:  database,
		System: dto.SystemHealth{
			Goroutines: runtime.NumGoroutine(),
			Uptime:     time.Since(c.startedAt).Round(time.Second).String(),
		},
	})
}
