package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"transaction-reports/internal/errors"
	"transaction-reports/internal/handlers"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

const unknownTraceID = "unknown"

// PanicRecovery turns a handler panic into a SYSTEM_001 envelope and logs the stack.
// http.ErrAbortHandler is re-raised so net/http can abort the connection.
func PanicRecovery(log *zap.SugaredLogger) echo.MiddlewareFunc {
	if log == nil {
		log = zap.NewNop().Sugar()
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				r := recover()
				if r == nil {
					return
				}
				if r == http.ErrAbortHandler {
					panic(r)
				}

				if GetTraceID(c) == "" {
					c.Set(TraceIDContextKey, unknownTraceID)
				}
				log.Errorw("panic recovered",
					"trace_id", GetTraceID(c),
					"method", c.Request().Method,
					"path", c.Request().URL.Path,
					"panic", fmt.Sprint(r),
					"stack_trace", string(debug.Stack()),
				)

				if c.Response().Committed {
					return
				}
				err = handlers.SendError(c, errors.SystemInternalError)
			}()

			return next(c)
		}
	}
}
