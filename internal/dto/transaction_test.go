package dto

import (
	"testing"
	"time"

	"transaction-reports/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionQueryRequest_ToQueryParametersDefaults(t *testing.T) {
	params, err := TransactionQueryRequest{}.ToQueryParameters(DefaultListPageSize)
	require.NoError(t, err)

	assert.Equal(t, 5, params.PageSize)
	assert.Equal(t, 1, params.PageNumber)
	assert.Equal(t, "transaction_date", params.SortColumn)
	assert.Equal(t, "ASC", params.SortOrder)
	assert.Nil(t, params.DateFrom)
	assert.Nil(t, params.DateTo)
	assert.Nil(t, params.MerchantIDs)
	assert.Nil(t, params.MonthBuckets)
	assert.Empty(t, params.VoucherPrefix)

	params, err = TransactionQueryRequest{}.ToQueryParameters(DefaultReportPageSize)
	require.NoError(t, err)
	assert.Equal(t, 20, params.PageSize)
}

func TestTransactionQueryRequest_ToQueryParameters(t *testing.T) {
	req := TransactionQueryRequest{
		PageSize:      "3",
		PageNumber:    "-2",
		DateFrom:      "2025-01-10",
		DateTo:        "2025-02-01T15:04:05Z",
		VoucherNumber: "E31",
		MerchantIDs:   "1001, 1003,",
		Months:        "2025-01,,2025-03",
		SortColumn:    "voucher_number",
		SortOrder:     "DESC",
	}

	params, err := req.ToQueryParameters(DefaultListPageSize)
	require.NoError(t, err)

	assert.Equal(t, 3, params.PageSize)
	assert.Equal(t, -2, params.PageNumber)
	require.NotNil(t, params.DateFrom)
	require.NotNil(t, params.DateTo)
	assert.Equal(t, time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC), *params.DateFrom)
	assert.Equal(t, time.Date(2025, 2, 1, 15, 4, 5, 0, time.UTC), *params.DateTo)
	assert.Equal(t, "E31", params.VoucherPrefix)
	assert.Equal(t, []int64{1001, 1003}, params.MerchantIDs)
	assert.Equal(t, []string{"2025-01", "2025-03"}, params.MonthBuckets)
	assert.Equal(t, "voucher_number", params.SortColumn)
	assert.Equal(t, "DESC", params.SortOrder)
}

func TestTransactionQueryRequest_ToQueryParametersRejectsMalformedValues(t *testing.T) {
	tests := []struct {
		name string
		req  TransactionQueryRequest
	}{
		{name: "page size", req: TransactionQueryRequest{PageSize: "five"}},
		{name: "page number", req: TransactionQueryRequest{PageNumber: "1e3"}},
		{name: "date from", req: TransactionQueryRequest{DateFrom: "yesterday"}},
		{name: "date to", req: TransactionQueryRequest{DateTo: "2025/01/01"}},
		{name: "merchant ids", req: TransactionQueryRequest{MerchantIDs: "1001;1002"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.req.ToQueryParameters(DefaultListPageSize)
			assert.Error(t, err)
		})
	}
}

func TestNewTransactionListResponse(t *testing.T) {
	count := int64(15)
	result := &models.QueryResult{
		Transactions: []models.TransactionRecord{
			{
				ClientID:        1001,
				MerchantID:      1001,
				TerminalID:      10101,
				TransactionDate: time.Date(2025, 1, 5, 10, 30, 0, 0, time.UTC),
				VoucherNumber:   models.StringPtr("E310000000001"),
				Amount:          decimal.RequireFromString("1850.75"),
				MerchantName:    models.StringPtr("Supermercado Primavera"),
				TotalCount:      &count,
			},
		},
		TotalAmount: decimal.RequireFromString("1850.75"),
		Pagination:  models.PaginationMetadata{CurrentPage: 1, PageSize: 5, TotalCount: 15, TotalPages: 3},
	}

	response := NewTransactionListResponse(result)
	require.Len(t, response.Transactions, 1)
	assert.Equal(t, int64(10101), response.Transactions[0].TerminalID)
	assert.Equal(t, "E310000000001", *response.Transactions[0].VoucherNumber)
	assert.Nil(t, response.Transactions[0].Description)
	assert.Equal(t, &count, response.Transactions[0].TotalCount)
	assert.Equal(t, 3, response.Pagination.TotalPages)
	assert.Equal(t, "1850.75", response.TotalAmount.String())

	empty := NewTransactionListResponse(&models.QueryResult{})
	assert.NotNil(t, empty.Transactions)
	assert.Empty(t, empty.Transactions)
}
