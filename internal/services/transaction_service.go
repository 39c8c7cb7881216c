package services

import (
	"context"
	"errors"
	"time"

	applog "transaction-reports/internal/logger"
	"transaction-reports/internal/models"
	"transaction-reports/internal/repositories"

	"go.uber.org/zap"
)

var errEmptyDocument = errors.New("renderer produced an empty document")

type transactionService struct {
	repo         repositories.TransactionRepositoryInterface
	engine       QueryEngineInterface
	assembler    ReportAssemblerInterface
	renderer     ReportRendererInterface
	metrics      MetricsRecorderInterface
	logger       *zap.SugaredLogger
	templateName string
}

// NewTransactionService wires the repository, query engine and report pipeline.
// templateName selects the renderer template used for reports.
func NewTransactionService(
	repo repositories.TransactionRepositoryInterface,
	engine QueryEngineInterface,
	assembler ReportAssemblerInterface,
	renderer ReportRendererInterface,
	metrics MetricsRecorderInterface,
	logger *zap.SugaredLogger,
	templateName string,
) TransactionServiceInterface {
	if templateName == "" {
		templateName = models.TransactionReportTemplate
	}
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &transactionService{
		repo:         repo,
		engine:       engine,
		assembler:    assembler,
		renderer:     renderer,
		metrics:      metrics,
		logger:       logger,
		templateName: templateName,
	}
}

func (s *transactionService) GetTransactions(ctx context.Context, clientID int64, params models.QueryParameters) (result *models.QueryResult, err error) {
	start := time.Now()
	defer func() {
		s.record(MetricTransactionQuery, start, err)
	}()

	log := applog.FromContext(ctx, s.logger)

	candidates, err := s.repo.GetCandidates(ctx, clientID)
	if err != nil {
		log.Errorw("failed to load transaction candidates",
			"client_id", clientID,
			"error", err,
		)
		return nil, newQueryError(err)
	}

	result, err = s.engine.Execute(candidates, params)
	if err != nil {
		log.Errorw("transaction query failed",
			"client_id", clientID,
			"candidates", len(candidates),
			"error", causeOf(err),
		)
		var queryErr *QueryError
		if errors.As(err, &queryErr) {
			return nil, err
		}
		return nil, newQueryError(err)
	}

	if s.metrics != nil {
		s.metrics.RecordGauge(MetricQueryPageSize, float64(result.Pagination.PageSize), nil)
	}

	log.Debugw("transaction query completed",
		"client_id", clientID,
		"candidates", len(candidates),
		"returned", len(result.Transactions),
		"total_count", result.Pagination.TotalCount,
	)

	return result, nil
}

func (s *transactionService) GenerateReport(ctx context.Context, req models.ReportRequest) (document []byte, err error) {
	result, err := s.GetTransactions(ctx, req.ClientID, req.Params)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	defer func() {
		s.record(MetricTransactionReport, start, err)
	}()

	from, to := s.assembler.ReportDateRange(req.Params.DateFrom, req.Params.DateTo)
	table, params := s.assembler.Assemble(result.Transactions, models.ReportContext{
		ClientLabel: req.ClientLabel,
		DateFrom:    from,
		DateTo:      to,
		TotalAmount: result.TotalAmount,
	})

	log := applog.FromContext(ctx, s.logger)
	document, err = s.render(table, params)
	if err != nil {
		log.Errorw("failed to render transaction report",
			"client_id", req.ClientID,
			"template", s.templateName,
			"rows", len(table.Rows),
			"error", err,
		)
		return nil, newReportError(err)
	}

	log.Infow("transaction report generated",
		"client_id", req.ClientID,
		"template", s.templateName,
		"rows", len(table.Rows),
		"bytes", len(document),
	)

	return document, nil
}

func (s *transactionService) render(table models.ReportTable, params models.ReportParameters) (document []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			document = nil
			err = recoveredError(r)
		}
	}()

	document, err = s.renderer.Render(s.templateName, table, params)
	if err != nil {
		return nil, err
	}
	if len(document) == 0 {
		return nil, errEmptyDocument
	}
	return document, nil
}

func (s *transactionService) record(name string, start time.Time, err error) {
	if s.metrics == nil {
		return
	}
	s.metrics.IncrementCounter(name, statusTag(err))
	s.metrics.RecordProcessingTime(name, time.Since(start))
}

// causeOf returns the underlying cause of a query or report error
func causeOf(err error) error {
	var queryErr *QueryError
	if errors.As(err, &queryErr) && queryErr.Cause != nil {
		return queryErr.Cause
	}
	var reportErr *ReportError
	if errors.As(err, &reportErr) && reportErr.Cause != nil {
		return reportErr.Cause
	}
	return err
}
