package database

import (
	"context"
	"fmt"
	"time"

	"transaction-reports/internal/config"
	"transaction-reports/internal/models"
	"transaction-reports/internal/repositories"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type DB struct {
	*gorm.DB
	config *config.DatabaseConfig
}

// New opens the SQL backend named by cfg.Backend
func New(cfg *config.DatabaseConfig) (*DB, error) {
	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}

	var dialector gorm.Dialector
	switch cfg.Backend {
	case config.BackendPostgres:
		dialector = postgres.Open(cfg.DSN())
	case config.BackendSQLite:
		dialector = sqlite.Open(cfg.SQLitePath)
	default:
		return nil, fmt.Errorf("unsupported database backend %q", cfg.Backend)
	}

	db, err := gorm.Open(dialector, gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxConnections)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{
		DB:     db,
		config: cfg,
	}, nil
}

func (db *DB) AutoMigrate() error {
	return db.DB.AutoMigrate(&models.TransactionRecord{})
}

func (db *DB) Close() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (db *DB) HealthCheck() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func (db *DB) CreateIndexes(log *zap.SugaredLogger) {
	queries := []string{
		"CREATE INDEX IF NOT EXISTS idx_transaction_records_client_date ON transaction_records(client_id, transaction_date)",
		"CREATE INDEX IF NOT EXISTS idx_transaction_records_client_merchant ON transaction_records(client_id, merchant_id)",
	}

	for _, query := range queries {
		if err := db.DB.Exec(query).Error; err != nil {
			log.Warnw("failed to create index", "query", query, "error", err)
		}
	}
}

// SeedTransactions loads records for every client that has no rows yet
func (db *DB) SeedTransactions(ctx context.Context, records []models.TransactionRecord) (int, error) {
	byClient := make(map[int64][]models.TransactionRecord)
	order := make([]int64, 0)
	for _, record := range records {
		if _, ok := byClient[record.ClientID]; !ok {
			order = append(order, record.ClientID)
		}
		byClient[record.ClientID] = append(byClient[record.ClientID], record)
	}

	seeder := repositories.NewTransactionSeeder(db.DB)
	seeded := 0
	for _, clientID := range order {
		var existing int64
		if err := db.DB.WithContext(ctx).
			Model(&models.TransactionRecord{}).
			Where("client_id = ?", clientID).
			Count(&existing).Error; err != nil {
			return seeded, fmt.Errorf("failed to count transactions for client %d: %w", clientID, err)
		}
		if existing > 0 {
			continue
		}

		if err := seeder.CreateBatch(ctx, byClient[clientID]); err != nil {
			return seeded, err
		}
		seeded += len(byClient[clientID])
	}

	return seeded, nil
}

// Initialize opens the configured database, brings the schema up to date
// and optionally loads the demo transactions
func Initialize(ctx context.Context, cfg *config.Config, log *zap.SugaredLogger) (*DB, error) {
	db, err := New(&cfg.Database)
	if err != nil {
		return nil, err
	}

	if err := applySchema(ctx, db, cfg, log); err != nil {
		db.Close()
		return nil, err
	}

	db.CreateIndexes(log)

	if cfg.Database.Seed {
		records := repositories.DemoTransactions(cfg.Database.SeedGenerated, cfg.Database.SeedClientID)
		seeded, err := db.SeedTransactions(ctx, records)
		if err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to seed transactions: %w", err)
		}
		log.Infow("transaction seed complete", "inserted", seeded)
	}

	log.Infow("database initialized", "backend", cfg.Database.Backend)

	return db, nil
}

func applySchema(ctx context.Context, db *DB, cfg *config.Config, log *zap.SugaredLogger) error {
	if cfg.Database.Backend == config.BackendPostgres && cfg.Database.RunMigrations {
		sqlDB, err := db.DB.DB()
		if err != nil {
			return fmt.Errorf("failed to get sql.DB: %w", err)
		}

		runner := NewMigrationRunner(sqlDB, cfg.Database.MigrationsPath, log)
		err = runner.Run(ctx)
		if err == nil {
			return nil
		}
		log.Warnw("migration runner failed, falling back to AutoMigrate", "error", err)
	}

	if err := db.AutoMigrate(); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}
