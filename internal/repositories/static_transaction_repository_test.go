package repositories

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticTransactionRepository_GetCandidates(t *testing.T) {
	repo := NewStaticTransactionRepository()

	records, err := repo.GetCandidates(context.Background(), FixtureClientID)
	require.NoError(t, err)
	require.Len(t, records, 15)

	first := records[0]
	assert.Equal(t, int64(1001), first.MerchantID)
	assert.Equal(t, int64(10101), first.TerminalID)
	assert.Equal(t, "E310000000001", *first.VoucherNumber)
	assert.True(t, decimal.RequireFromString("1850.75").Equal(first.Amount))
	assert.Equal(t, "2025-01", first.MonthBucket())

	last := records[14]
	assert.Equal(t, int64(8001), last.MerchantID)
	assert.Equal(t, "Hotel Caribe Plaza", *last.MerchantName)
}

func TestStaticTransactionRepository_ReturnsFreshCopies(t *testing.T) {
	repo := NewStaticTransactionRepository()
	ctx := context.Background()

	records, err := repo.GetCandidates(ctx, FixtureClientID)
	require.NoError(t, err)
	records[0].MerchantID = 42
	*records[0].VoucherNumber = "changed"

	again, err := repo.GetCandidates(ctx, FixtureClientID)
	require.NoError(t, err)
	assert.Equal(t, int64(1001), again[0].MerchantID)
	assert.Equal(t, "E310000000001", *again[0].VoucherNumber)
}

func TestStaticTransactionRepository_UnknownClient(t *testing.T) {
	repo := NewStaticTransactionRepository()

	records, err := repo.GetCandidates(context.Background(), 9999)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestStaticTransactionRepository_CancelledContext(t *testing.T) {
	repo := NewStaticTransactionRepository()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := repo.GetCandidates(ctx, FixtureClientID)
	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, repo.Ping(ctx), context.Canceled)
}
