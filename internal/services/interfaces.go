package services

import (
	"context"
	"time"

	"transaction-reports/internal/models"
)

// QueryEngineInterface filters, sorts, paginates and aggregates a candidate set
type QueryEngineInterface interface {
	// Execute runs the query against candidates without modifying them
	Execute(candidates []models.TransactionRecord, params models.QueryParameters) (*models.QueryResult, error)
}

// ReportAssemblerInterface maps a query page onto the report table and parameters
type ReportAssemblerInterface interface {
	Assemble(page []models.TransactionRecord, ctx models.ReportContext) (models.ReportTable, models.ReportParameters)
	ReportDateRange(dateFrom, dateTo *time.Time) (time.Time, time.Time)
}

// ReportRendererInterface turns an assembled table into a document
type ReportRendererInterface interface {
	Render(templateName string, table models.ReportTable, params models.ReportParameters) ([]byte, error)
}

// TransactionServiceInterface defines the transaction query and report operations
type TransactionServiceInterface interface {
	GetTransactions(ctx context.Context, clientID int64, params models.QueryParameters) (*models.QueryResult, error)
	GenerateReport(ctx context.Context, req models.ReportRequest) ([]byte, error)
}

// CircuitBreakerInterface tracks transaction store failures and trips after
// too many in a row
type CircuitBreakerInterface interface {
	IsOpen() bool
	RecordSuccess()
	RecordFailure()
	GetState() models.BreakerState
	GetFailureCount() int
}

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}

type TokenServiceInterface interface {
	GenerateAccessToken(clientID int64, clientName string) (string, time.Time, error)
	ValidateAccessToken(tokenString string) (*models.CustomClaims, error)
	ExtractTokenFromHeader(authHeader string) (string, error)
}
