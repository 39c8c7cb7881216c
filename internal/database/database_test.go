package database

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"transaction-reports/internal/config"
	"transaction-reports/internal/models"
	"transaction-reports/internal/repositories"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func sqliteConfig(t *testing.T, seed bool) *config.Config {
	t.Helper()

	return &config.Config{
		Database: config.DatabaseConfig{
			Backend:         config.BackendSQLite,
			SQLitePath:      filepath.Join(t.TempDir(), "reports.db"),
			MaxConnections:  1,
			MaxIdleConns:    1,
			ConnMaxLifetime: time.Hour,
			Seed:            seed,
		},
	}
}

func TestNew_UnsupportedBackend(t *testing.T) {
	_, err := New(&config.DatabaseConfig{Backend: config.BackendMemory})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported database backend")
}

func TestInitialize_SQLiteWithSeed(t *testing.T) {
	ctx := context.Background()
	cfg := sqliteConfig(t, true)

	db, err := Initialize(ctx, cfg, zap.NewNop().Sugar())
	require.NoError(t, err)
	defer db.Close()

	assert.NoError(t, db.HealthCheck())

	records, err := repositories.NewTransactionRepository(db.DB).GetCandidates(ctx, repositories.FixtureClientID)
	require.NoError(t, err)
	require.Len(t, records, 15)
	assert.True(t, decimal.RequireFromString("1850.75").Equal(records[0].Amount))
	assert.Equal(t, "2025-08", records[14].MonthBucket())
}

func TestInitialize_SeedIsIdempotent(t *testing.T) {
	ctx := context.Background()
	cfg := sqliteConfig(t, true)

	db, err := Initialize(ctx, cfg, zap.NewNop().Sugar())
	require.NoError(t, err)
	require.NoError(t, db.Close())

	db, err = Initialize(ctx, cfg, zap.NewNop().Sugar())
	require.NoError(t, err)
	defer db.Close()

	var count int64
	require.NoError(t, db.Model(&models.TransactionRecord{}).Count(&count).Error)
	assert.Equal(t, int64(15), count)
}

func TestSeedTransactions_SkipsClientsWithData(t *testing.T) {
	ctx := context.Background()
	fixture := repositories.FixtureTransactions()
	db := SetupTestDB(t, fixture[:3]...)

	other := fixture[0]
	other.ClientID = 2002

	seeded, err := db.SeedTransactions(ctx, append(repositories.FixtureTransactions(), other))
	require.NoError(t, err)
	assert.Equal(t, 1, seeded)

	var count int64
	require.NoError(t, db.Model(&models.TransactionRecord{}).Count(&count).Error)
	assert.Equal(t, int64(4), count)
}

func TestInitialize_SeedsGeneratedTransactions(t *testing.T) {
	ctx := context.Background()
	cfg := sqliteConfig(t, true)
	cfg.Database.SeedGenerated = 40
	cfg.Database.SeedClientID = 2002

	db, err := Initialize(ctx, cfg, zap.NewNop().Sugar())
	require.NoError(t, err)
	defer db.Close()

	repo := repositories.NewTransactionRepository(db.DB)

	fixture, err := repo.GetCandidates(ctx, repositories.FixtureClientID)
	require.NoError(t, err)
	assert.Len(t, fixture, 15)

	generated, err := repo.GetCandidates(ctx, 2002)
	require.NoError(t, err)
	require.Len(t, generated, 40)
	for _, record := range generated {
		assert.Equal(t, int64(2002), record.ClientID)
		assert.True(t, record.Amount.IsPositive())
	}
}
