package repositories

import (
	"context"
	"time"

	"transaction-reports/internal/models"
)

// TransactionRepositoryInterface supplies the candidate transactions of a client
type TransactionRepositoryInterface interface {
	// GetCandidates returns every transaction of the client. The caller owns the slice.
	GetCandidates(ctx context.Context, clientID int64) ([]models.TransactionRecord, error)
	Ping(ctx context.Context) error
}

// TransactionSeederInterface writes transactions in bulk
type TransactionSeederInterface interface {
	CreateBatch(ctx context.Context, records []models.TransactionRecord) error
}

// CandidateCacheInterface stores candidate sets keyed by client
type CandidateCacheInterface interface {
	// Get reports false without error when the client is not cached
	Get(ctx context.Context, clientID int64) ([]models.TransactionRecord, bool, error)
	Set(ctx context.Context, clientID int64, records []models.TransactionRecord, ttl time.Duration) error
	Ping(ctx context.Context) error
}
