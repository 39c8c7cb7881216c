package repositories

import (
	"context"
	"time"

	"transaction-reports/internal/models"

	"go.uber.org/zap"
)

// cachedTransactionRepository reads candidates through a cache.
// Cache faults are logged and the backing repository is used instead.
type cachedTransactionRepository struct {
	next   TransactionRepositoryInterface
	cache  CandidateCacheInterface
	ttl    time.Duration
	logger *zap.SugaredLogger
	onHit  func(hit bool)
}

// NewCachedTransactionRepository wraps next with a read-through cache.
// onHit, when set, is told the outcome of every lookup.
func NewCachedTransactionRepository(
	next TransactionRepositoryInterface,
	cache CandidateCacheInterface,
	ttl time.Duration,
	logger *zap.SugaredLogger,
	onHit func(hit bool),
) TransactionRepositoryInterface {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &cachedTransactionRepository{
		next:   next,
		cache:  cache,
		ttl:    ttl,
		logger: logger,
		onHit:  onHit,
	}
}

func (r *cachedTransactionRepository) GetCandidates(ctx context.Context, clientID int64) ([]models.TransactionRecord, error) {
	records, ok, err := r.cache.Get(ctx, clientID)
	if err != nil {
		r.logger.Warnw("candidate cache read failed",
			"client_id", clientID,
			"error", err,
		)
	}
	if ok {
		r.report(true)
		return records, nil
	}
	r.report(false)

	records, err = r.next.GetCandidates(ctx, clientID)
	if err != nil {
		return nil, err
	}

	if err := r.cache.Set(ctx, clientID, records, r.ttl); err != nil {
		r.logger.Warnw("candidate cache write failed",
			"client_id", clientID,
			"error", err,
		)
	}

	return records, nil
}

func (r *cachedTransactionRepository) Ping(ctx context.Context) error {
	if err := r.next.Ping(ctx); err != nil {
		return err
	}
	return r.cache.Ping(ctx)
}

func (r *cachedTransactionRepository) report(hit bool) {
	if r.onHit != nil {
		r.onHit(hit)
	}
}
