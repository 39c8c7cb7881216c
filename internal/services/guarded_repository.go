package services

import (
	"context"
	"errors"

	"transaction-reports/internal/models"
	"transaction-reports/internal/repositories"

	"go.uber.org/zap"
)

type guardedTransactionRepository struct {
	next    repositories.TransactionRepositoryInterface
	breaker CircuitBreakerInterface
	metrics MetricsRecorderInterface
	logger  *zap.SugaredLogger
}

// NewGuardedTransactionRepository puts a circuit breaker in front of next.
// While the breaker is open GetCandidates fails fast with ErrCircuitBreakerOpen.
// Ping bypasses the breaker so health checks always reach the store.
func NewGuardedTransactionRepository(
	next repositories.TransactionRepositoryInterface,
	breaker CircuitBreakerInterface,
	metrics MetricsRecorderInterface,
	logger *zap.SugaredLogger,
) repositories.TransactionRepositoryInterface {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &guardedTransactionRepository{
		next:    next,
		breaker: breaker,
		metrics: metrics,
		logger:  logger,
	}
}

func (r *guardedTransactionRepository) GetCandidates(ctx context.Context, clientID int64) ([]models.TransactionRecord, error) {
	if r.breaker.IsOpen() {
		if r.metrics != nil {
			r.metrics.IncrementCounter(MetricBreakerRejections, nil)
		}
		r.logger.Warnw("transaction store circuit open, rejecting candidate load",
			"client_id", clientID,
		)
		return nil, ErrCircuitBreakerOpen
	}

	records, err := r.next.GetCandidates(ctx, clientID)
	switch {
	case err == nil:
		r.breaker.RecordSuccess()
	case errors.Is(err, context.Canceled):
		// caller went away, the store is not at fault
	default:
		r.breaker.RecordFailure()
		if r.breaker.GetState() == StateOpen {
			r.logger.Errorw("transaction store circuit opened",
				"client_id", clientID,
				"failures", r.breaker.GetFailureCount(),
				"error", err,
			)
		}
	}
	r.publishState()

	return records, err
}

func (r *guardedTransactionRepository) Ping(ctx context.Context) error {
	return r.next.Ping(ctx)
}

func (r *guardedTransactionRepository) publishState() {
	if r.metrics != nil {
		r.metrics.RecordGauge(MetricBreakerState, float64(r.breaker.GetState()), nil)
	}
}
