package dto

import (
	"strconv"
	"time"

	"transaction-reports/internal/models"
	"transaction-reports/internal/validation"

	"github.com/shopspring/decimal"
)

const (
	DefaultListPageSize   = 5
	DefaultReportPageSize = 20
	DefaultSortColumn     = "transaction_date"
	DefaultSortOrder      = "ASC"
)

// TransactionQueryRequest holds the raw query parameters of a transaction query
type TransactionQueryRequest struct {
	PageSize      string `query:"pageSize" validate:"omitempty,signed_int"`
	PageNumber    string `query:"pageNumber" validate:"omitempty,signed_int"`
	DateFrom      string `query:"dateFrom" validate:"omitempty,query_date"`
	DateTo        string `query:"dateTo" validate:"omitempty,query_date"`
	VoucherNumber string `query:"voucherNumber" validate:"omitempty,max=50"`
	MerchantIDs   string `query:"merchantIds" validate:"omitempty,id_list"`
	Months        string `query:"months" validate:"omitempty,month_list"`
	SortColumn    string `query:"sortColumn" validate:"omitempty,max=50"`
	SortOrder     string `query:"sortOrder" validate:"omitempty,max=10"`
}

// TransactionReportRequest adds the report header label to a transaction query
type TransactionReportRequest struct {
	TransactionQueryRequest
	ClientName string `query:"clientName" validate:"omitempty,max=255"`
}

// ToQueryParameters converts a validated request, applying defaults for absent values
func (r TransactionQueryRequest) ToQueryParameters(defaultPageSize int) (models.QueryParameters, error) {
	params := models.QueryParameters{
		PageSize:      defaultPageSize,
		PageNumber:    models.DefaultPageNumber,
		VoucherPrefix: r.VoucherNumber,
		SortColumn:    DefaultSortColumn,
		SortOrder:     DefaultSortOrder,
		MonthBuckets:  validation.SplitList(r.Months),
	}

	var err error
	if r.PageSize != "" {
		if params.PageSize, err = strconv.Atoi(r.PageSize); err != nil {
			return models.QueryParameters{}, err
		}
	}
	if r.PageNumber != "" {
		if params.PageNumber, err = strconv.Atoi(r.PageNumber); err != nil {
			return models.QueryParameters{}, err
		}
	}
	if r.DateFrom != "" {
		if params.DateFrom, err = parseDate(r.DateFrom); err != nil {
			return models.QueryParameters{}, err
		}
	}
	if r.DateTo != "" {
		if params.DateTo, err = parseDate(r.DateTo); err != nil {
			return models.QueryParameters{}, err
		}
	}
	if r.MerchantIDs != "" {
		if params.MerchantIDs, err = validation.ParseIDList(r.MerchantIDs); err != nil {
			return models.QueryParameters{}, err
		}
	}
	if r.SortColumn != "" {
		params.SortColumn = r.SortColumn
	}
	if r.SortOrder != "" {
		params.SortOrder = r.SortOrder
	}

	return params, nil
}

func parseDate(value string) (*time.Time, error) {
	t, err := validation.ParseQueryDate(value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// TransactionResponse is one transaction in an API response
type TransactionResponse struct {
	MerchantID      int64           `json:"merchantId"`
	TerminalID      int64           `json:"terminalId"`
	TransactionDate time.Time       `json:"transactionDate"`
	VoucherNumber   *string         `json:"voucherNumber"`
	ExpiredDate     time.Time       `json:"expiredDate"`
	Description     *string         `json:"description"`
	Amount          decimal.Decimal `json:"amount"`
	MerchantName    *string         `json:"merchantName"`
	TotalCount      *int64          `json:"totalCount"`
}

// TransactionListResponse is the response of the transaction query endpoint
type TransactionListResponse struct {
	Transactions []TransactionResponse     `json:"transactions"`
	TotalAmount  decimal.Decimal           `json:"totalAmount"`
	Pagination   models.PaginationMetadata `json:"pagination"`
}

// NewTransactionListResponse maps a query result onto the API response
func NewTransactionListResponse(result *models.QueryResult) TransactionListResponse {
	transactions := make([]TransactionResponse, 0, len(result.Transactions))
	for _, tx := range result.Transactions {
		transactions = append(transactions, TransactionResponse{
			MerchantID:      tx.MerchantID,
			TerminalID:      tx.TerminalID,
			TransactionDate: tx.TransactionDate,
			VoucherNumber:   tx.VoucherNumber,
			ExpiredDate:     tx.ExpiredDate,
			Description:     tx.Description,
			Amount:          tx.Amount,
			MerchantName:    tx.MerchantName,
			TotalCount:      tx.TotalCount,
		})
	}

	return TransactionListResponse{
		Transactions: transactions,
		TotalAmount:  result.TotalAmount,
		Pagination:   result.Pagination,
	}
}
