package database

import (
	"context"
	"testing"

	"transaction-reports/internal/config"
	"transaction-reports/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SetupTestDB opens a migrated in-memory sqlite transaction store holding records.
// The store is closed when the test ends.
func SetupTestDB(t *testing.T, records ...models.TransactionRecord) *DB {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	// every connection to :memory: is a separate database
	sqlDB, err := gdb.DB()
	if err != nil {
		t.Fatalf("sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	db := &DB{
		DB: gdb,
		config: &config.DatabaseConfig{
			Backend:        config.BackendSQLite,
			MaxConnections: 1,
			MaxIdleConns:   1,
		},
	}
	t.Cleanup(func() { db.Close() })

	if err := db.AutoMigrate(); err != nil {
		t.Fatalf("migrate transaction store: %v", err)
	}
	if len(records) > 0 {
		if _, err := db.SeedTransactions(context.Background(), records); err != nil {
			t.Fatalf("seed transaction store: %v", err)
		}
	}

	return db
}
