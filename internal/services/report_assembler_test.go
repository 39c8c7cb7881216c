package services

import (
	"testing"
	"time"

	"transaction-reports/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportAssembler_Assemble(t *testing.T) {
	assembler := NewReportAssembler(nil)
	page := []models.TransactionRecord{
		{
			MerchantID:      3001,
			TerminalID:      30101,
			TransactionDate: time.Date(2025, 3, 1, 11, 10, 0, 0, time.UTC),
			VoucherNumber:   models.StringPtr("E330000000501"),
			ExpiredDate:     time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
			Description:     models.StringPtr("Lunch invoice - restaurant service"),
			Amount:          decimal.RequireFromString("980.00"),
		},
		{
			MerchantID:      3002,
			TerminalID:      30201,
			TransactionDate: time.Date(2025, 3, 18, 20, 20, 0, 0, time.UTC),
			ExpiredDate:     time.Date(2025, 4, 18, 0, 0, 0, 0, time.UTC),
			Amount:          decimal.RequireFromString("1725.30"),
		},
	}

	table, params := assembler.Assemble(page, models.ReportContext{
		ClientLabel: "Restaurante El Buen Sabor",
		DateFrom:    time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		DateTo:      time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC),
		TotalAmount: decimal.RequireFromString("2705.30"),
	})

	assert.Equal(t, models.TransactionReportDataSource, table.Name)
	assert.Equal(t, models.ReportColumns, table.Columns)
	require.Len(t, table.Rows, 2)

	assert.Equal(t, models.ReportRow{
		AffiliateNumber: "3001",
		TransactionDate: "01/03/2025",
		VoucherNumber:   "E330000000501",
		ExpirationDate:  "01/04/2025",
		Description:     "Lunch invoice - restaurant service",
		Amount:          decimal.RequireFromString("980.00"),
		TerminalID:      "30101",
	}, table.Rows[0])
	assert.Empty(t, table.Rows[1].VoucherNumber)
	assert.Empty(t, table.Rows[1].Description)

	assert.Equal(t, "Restaurante El Buen Sabor", params.MerchantName)
	assert.Equal(t, "3001", params.MerchantID)
	assert.Equal(t, "01/03/2025", params.From)
	assert.Equal(t, "31/03/2025", params.To)
	assert.Equal(t, "2705.3", params.TotalAmount.String())
}

func TestReportAssembler_AssembleEmptyPage(t *testing.T) {
	table, params := NewReportAssembler(nil).Assemble(nil, models.ReportContext{ClientLabel: "Test Client"})

	assert.NotNil(t, table.Rows)
	assert.Empty(t, table.Rows)
	assert.Equal(t, "0", params.MerchantID)
	assert.True(t, params.TotalAmount.IsZero())
}

func TestReportAssembler_ReportDateRange(t *testing.T) {
	now := time.Date(2025, 7, 19, 16, 45, 0, 0, time.UTC)
	assembler := NewReportAssembler(func() time.Time { return now })

	from, to := assembler.ReportDateRange(nil, nil)
	assert.Equal(t, time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC), from)
	assert.Equal(t, now, to)

	explicitFrom := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	explicitTo := time.Date(2025, 2, 28, 0, 0, 0, 0, time.UTC)
	from, to = assembler.ReportDateRange(&explicitFrom, &explicitTo)
	assert.Equal(t, explicitFrom, from)
	assert.Equal(t, explicitTo, to)

	from, to = assembler.ReportDateRange(&explicitFrom, nil)
	assert.Equal(t, explicitFrom, from)
	assert.Equal(t, now, to)
}
