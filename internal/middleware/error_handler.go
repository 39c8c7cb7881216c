package middleware

import (
	"fmt"
	"net/http"
	"strconv"

	"transaction-reports/internal/errors"
	"transaction-reports/internal/validation"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"
)

type errorHandler struct {
	log            *zap.SugaredLogger
	apiErrorsTotal *prometheus.CounterVec
}

// NewHTTPErrorHandler creates an Echo error handler that formats errors as
// standardized error responses, logs them and counts them in api_errors_total.
// reg defaults to the Prometheus default registerer.
func NewHTTPErrorHandler(log *zap.SugaredLogger, reg prometheus.Registerer) echo.HTTPErrorHandler {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	h := &errorHandler{
		log: log,
		apiErrorsTotal: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Name: "api_errors_total",
				Help: "Total number of API errors by code, endpoint, and status",
			},
			[]string{"code", "endpoint", "status"},
		),
	}
	return h.handle
}

func (h *errorHandler) handle(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	traceID := GetTraceID(c)
	if traceID == "" {
		traceID = "unknown"
	}

	var errorResponse *errors.ErrorResponse
	var httpStatus int

	if echoErr, ok := err.(*echo.HTTPError); ok {
		errorResponse = errors.NewErrorResponse(
			mapHTTPStatusToErrorCode(echoErr.Code),
			traceID,
			errors.WithMessage(fmt.Sprintf("%v", echoErr.Message)),
		)
		httpStatus = echoErr.Code
	} else if _, ok := err.(validator.ValidationErrors); ok {
		errorResponse = errors.NewValidationErrorFromList(validation.FormatErrors(err), traceID)
		httpStatus = http.StatusBadRequest
	} else {
		errorResponse = errors.NewSystemErrorResponse(traceID)
		httpStatus = errorResponse.GetHTTPStatus()
	}

	logFn := h.log.Warnw
	if httpStatus >= http.StatusInternalServerError {
		logFn = h.log.Errorw
	}
	logFn("http error occurred",
		"trace_id", traceID,
		"error_code", errorResponse.Error.Code,
		"status", httpStatus,
		"message", errorResponse.Error.Message,
		"path", c.Request().URL.Path,
		"method", c.Request().Method,
		"error", err,
	)

	h.apiErrorsTotal.WithLabelValues(
		errorResponse.Error.Code,
		c.Path(),
		strconv.Itoa(httpStatus),
	).Inc()

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(httpStatus)
	} else {
		err = c.JSON(httpStatus, errorResponse)
	}
	if err != nil {
		h.log.Errorw("failed to send error response",
			"trace_id", traceID,
			"error", err,
		)
	}
}

// mapHTTPStatusToErrorCode maps HTTP status codes to error codes
func mapHTTPStatusToErrorCode(status int) errors.ErrorCode {
	switch status {
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return errors.ValidationGeneral
	case http.StatusUnauthorized:
		return errors.AuthMissingToken
	case http.StatusNotFound:
		return errors.SystemNotFound
	case http.StatusMethodNotAllowed:
		return errors.SystemMethodNotAllowed
	case http.StatusTooManyRequests:
		return errors.SystemRateLimitExceeded
	case http.StatusServiceUnavailable:
		return errors.SystemServiceUnavailable
	default:
		return errors.SystemInternalError
	}
}
