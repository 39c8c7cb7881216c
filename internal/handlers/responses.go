package handlers

import (
	"net/http"

	"transaction-reports/internal/errors"
	applog "transaction-reports/internal/logger"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// Handlers report failures through SendError or SendSystemError only, so every
// non-2xx body is the {"error": {...}} envelope carrying the request trace id.
// Never return echo.NewHTTPError or a raw error from a handler.

// TraceIDContextKey is the echo context key the request id middleware stores the trace id under
const TraceIDContextKey = "trace_id"

// ErrorResponse is the envelope type handler tests decode error bodies into
type ErrorResponse = errors.ErrorResponse

func getTraceID(c echo.Context) string {
	traceID, _ := c.Get(TraceIDContextKey).(string)
	return traceID
}

// SendError writes the envelope for code with the status the code maps to
func SendError(c echo.Context, code errors.ErrorCode, opts ...errors.ErrorOption) error {
	response := errors.NewErrorResponse(code, getTraceID(c), opts...)
	return c.JSON(response.GetHTTPStatus(), response)
}

// SendSystemError answers 500 SYSTEM_001 without exposing err to the client.
// err is logged with the request trace id.
func SendSystemError(c echo.Context, log *zap.SugaredLogger, err error) error {
	applog.FromContext(c.Request().Context(), log).Errorw("unexpected handler error",
		"path", c.Request().URL.Path,
		"method", c.Request().Method,
		"error", err,
	)
	return c.JSON(http.StatusInternalServerError, errors.NewSystemErrorResponse(getTraceID(c)))
}
