package handlers

import (
	"context"
	"net/http"
	"time"

	"transaction-reports/internal/errors"

	"github.com/labstack/echo/v4"
)

const healthCheckTimeout = 2 * time.Second

// Pinger reports whether a backing store is reachable
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthCheckHandler handles the health check endpoint
type HealthCheckHandler struct {
	backend Pinger
	now     func() time.Time
}

// NewHealthCheckHandler creates a new health check handler
func NewHealthCheckHandler(backend Pinger) *HealthCheckHandler {
	return &HealthCheckHandler{backend: backend, now: time.Now}
}

// HealthCheck adds the health check endpoint
// @Summary Health check
// @Description Check API and transaction store connectivity status
// @Tags Health
// @Produce json
// @Success 200 {object} object{status=string,time=string} "Service is healthy"
// @Failure 503 {object} errors.ErrorResponse "SYSTEM_002 - Service unavailable (transaction store unreachable)"
// @Router /health [get]
func (h *HealthCheckHandler) HealthCheck(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), healthCheckTimeout)
	defer cancel()

	if err := h.backend.Ping(ctx); err != nil {
		return SendError(c, errors.SystemServiceUnavailable, errors.WithDetails("Transaction store connection failed"))
	}

	return c.JSON(http.StatusOK, map[string]string{
		"status": "healthy",
		"time":   h.now().UTC().Format(time.RFC3339),
	})
}
