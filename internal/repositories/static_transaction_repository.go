package repositories

import (
	"context"

	"transaction-reports/internal/models"
)

// staticTransactionRepository serves an in-memory record set
type staticTransactionRepository struct {
	records []models.TransactionRecord
}

// NewStaticTransactionRepository creates a repository over the built-in fixture
func NewStaticTransactionRepository() TransactionRepositoryInterface {
	return NewInMemoryTransactionRepository(FixtureTransactions())
}

// NewInMemoryTransactionRepository creates a repository over records.
// records must not be modified after the call.
func NewInMemoryTransactionRepository(records []models.TransactionRecord) TransactionRepositoryInterface {
	return &staticTransactionRepository{records: records}
}

func (r *staticTransactionRepository) GetCandidates(ctx context.Context, clientID int64) ([]models.TransactionRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	candidates := make([]models.TransactionRecord, 0, len(r.records))
	for i := range r.records {
		if r.records[i].ClientID == clientID {
			candidates = append(candidates, r.records[i].Clone())
		}
	}
	return candidates, nil
}

func (r *staticTransactionRepository) Ping(ctx context.Context) error {
	return ctx.Err()
}
