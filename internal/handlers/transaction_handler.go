package handlers

import (
	stderrors "errors"
	"fmt"
	"net/http"

	"transaction-reports/internal/dto"
	"transaction-reports/internal/errors"
	"transaction-reports/internal/models"
	"transaction-reports/internal/services"
	"transaction-reports/internal/validation"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// TransactionHandlerConfig holds the request defaults applied by the transaction handler
type TransactionHandlerConfig struct {
	DefaultClientID   int64
	DefaultClientName string
	ReportFilename    string
	Logger            *zap.SugaredLogger
}

// TransactionHandler handles transaction query and report requests
type TransactionHandler struct {
	service services.TransactionServiceInterface
	cfg     TransactionHandlerConfig
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(service services.TransactionServiceInterface, cfg TransactionHandlerConfig) *TransactionHandler {
	if cfg.ReportFilename == "" {
		cfg.ReportFilename = "TransactionReport.pdf"
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop().Sugar()
	}
	return &TransactionHandler{
		service: service,
		cfg:     cfg,
	}
}

// GetTransactions returns a filtered, sorted page of the caller's transactions
// @Summary List transactions
// @Tags Transactions
// @Produce json
// @Param pageSize query int false "Page size" default(5)
// @Param pageNumber query int false "Page number" default(1)
// @Param dateFrom query string false "Inclusive lower bound (YYYY-MM-DD or RFC3339)"
// @Param dateTo query string false "Inclusive upper bound (YYYY-MM-DD or RFC3339)"
// @Param voucherNumber query string false "Voucher number prefix"
// @Param merchantIds query string false "Comma-separated merchant ids"
// @Param months query string false "Comma-separated YYYY-MM buckets"
// @Param sortColumn query string false "transaction_date, amount or voucher_number" default(transaction_date)
// @Param sortOrder query string false "ASC or DESC" default(ASC)
// @Success 200 {object} dto.TransactionListResponse
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid parameters"
// @Failure 500 {object} errors.ErrorResponse "TRANSACTION_001 - Query failed"
// @Router /api/transaction/get-transactions [get]
func (h *TransactionHandler) GetTransactions(c echo.Context) error {
	var req dto.TransactionQueryRequest
	params, err := bindQuery(c, &req, &req, dto.DefaultListPageSize)
	if err != nil {
		return h.sendRequestError(c, err)
	}

	result, err := h.service.GetTransactions(c.Request().Context(), h.clientID(c), params)
	if err != nil {
		return h.sendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewTransactionListResponse(result))
}

// TransactionReport renders a page of the caller's transactions as a PDF document
// @Summary Transaction report
// @Tags Transactions
// @Produce application/pdf
// @Param clientName query string false "Client label printed on the report" default(Test Client)
// @Param pageSize query int false "Page size" default(20)
// @Success 200 {file} binary
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid parameters"
// @Failure 500 {object} errors.ErrorResponse "TRANSACTION_001 - Query failed or REPORT_001 - Report generation failed"
// @Router /api/transaction/transaction-report [get]
func (h *TransactionHandler) TransactionReport(c echo.Context) error {
	var req dto.TransactionReportRequest
	params, err := bindQuery(c, &req, &req.TransactionQueryRequest, dto.DefaultReportPageSize)
	if err != nil {
		return h.sendRequestError(c, err)
	}

	label := req.ClientName
	if label == "" {
		label = h.clientName(c)
	}

	document, err := h.service.GenerateReport(c.Request().Context(), models.ReportRequest{
		ClientID:    h.clientID(c),
		ClientLabel: label,
		Params:      params,
	})
	if err != nil {
		return h.sendServiceError(c, err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", h.cfg.ReportFilename))
	return c.Blob(http.StatusOK, "application/pdf", document)
}

// requestError is a rejected query string, reported as a validation envelope
type requestError struct {
	code    errors.ErrorCode
	details []string
}

func (e *requestError) Error() string {
	return fmt.Sprintf("%s: %v", e.code, e.details)
}

// bindQuery binds and validates target, then converts query into engine parameters
func bindQuery(c echo.Context, target interface{}, query *dto.TransactionQueryRequest, defaultPageSize int) (models.QueryParameters, error) {
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, target); err != nil {
		return models.QueryParameters{}, &requestError{code: errors.ValidationInvalidFormat, details: []string{"Invalid query parameters"}}
	}

	if err := validateRequest(c, target); err != nil {
		return models.QueryParameters{}, &requestError{code: errors.ValidationGeneral, details: validation.FormatErrors(err)}
	}

	params, err := query.ToQueryParameters(defaultPageSize)
	if err != nil {
		return models.QueryParameters{}, &requestError{code: errors.ValidationInvalidFormat, details: []string{err.Error()}}
	}

	return params, nil
}

func (h *TransactionHandler) sendRequestError(c echo.Context, err error) error {
	var reqErr *requestError
	if !stderrors.As(err, &reqErr) {
		return SendSystemError(c, h.cfg.Logger, err)
	}
	return SendError(c, reqErr.code, errors.WithDetails(reqErr.details...))
}

func (h *TransactionHandler) sendServiceError(c echo.Context, err error) error {
	switch {
	case stderrors.Is(err, services.ErrQueryFailed):
		return SendError(c, errors.TransactionQueryFailed)
	case stderrors.Is(err, services.ErrReportGenerationFailed):
		return SendError(c, errors.ReportGenerationFailed)
	default:
		return SendSystemError(c, h.cfg.Logger, err)
	}
}

func (h *TransactionHandler) clientID(c echo.Context) int64 {
	if id, ok := getClientIDFromContext(c); ok {
		return id
	}
	return h.cfg.DefaultClientID
}

func (h *TransactionHandler) clientName(c echo.Context) string {
	if name := getClientNameFromContext(c); name != "" {
		return name
	}
	return h.cfg.DefaultClientName
}
