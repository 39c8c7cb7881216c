package repositories

import (
	"context"
	"fmt"

	"transaction-reports/internal/models"

	"gorm.io/gorm"
)

// transactionRepository loads candidates from a SQL database through gorm
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new gorm-backed transaction repository
func NewTransactionRepository(db *gorm.DB) TransactionRepositoryInterface {
	return &transactionRepository{
		db: db,
	}
}

// GetCandidates retrieves all transactions of a client in storage order
func (r *transactionRepository) GetCandidates(ctx context.Context, clientID int64) ([]models.TransactionRecord, error) {
	var records []models.TransactionRecord
	if err := r.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("transaction_date ASC").
		Order("id ASC").
		Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to get transactions for client %d: %w", clientID, err)
	}
	return records, nil
}

// NewTransactionSeeder creates a writer used to load initial transaction data
func NewTransactionSeeder(db *gorm.DB) TransactionSeederInterface {
	return &transactionRepository{
		db: db,
	}
}

// CreateBatch inserts records in a single transaction
func (r *transactionRepository) CreateBatch(ctx context.Context, records []models.TransactionRecord) error {
	if len(records) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.CreateInBatches(records, 100).Error; err != nil {
			return fmt.Errorf("failed to create transactions: %w", err)
		}
		return nil
	})
}

func (r *transactionRepository) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}
	return sqlDB.PingContext(ctx)
}
