package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	DefaultPageSize   = 10
	DefaultPageNumber = 1
)

// SortColumn identifies the column a query result is ordered by
type SortColumn string

const (
	SortColumnTransactionDate SortColumn = "transaction_date"
	SortColumnAmount          SortColumn = "amount"
	SortColumnVoucherNumber   SortColumn = "voucher_number"
	SortColumnNone            SortColumn = ""
)

// ParseSortColumn maps a column name, case-insensitively, onto a known column.
// Unknown names map to SortColumnNone.
func ParseSortColumn(column string) SortColumn {
	switch SortColumn(strings.ToLower(strings.TrimSpace(column))) {
	case SortColumnTransactionDate:
		return SortColumnTransactionDate
	case SortColumnAmount:
		return SortColumnAmount
	case SortColumnVoucherNumber:
		return SortColumnVoucherNumber
	default:
		return SortColumnNone
	}
}

// IsAscending reports whether a sort order means ascending.
// Only "asc" (any case) is ascending; every other value sorts descending.
func IsAscending(order string) bool {
	return strings.EqualFold(order, "asc")
}

// QueryParameters describes a single transaction query
type QueryParameters struct {
	PageSize      int
	PageNumber    int
	DateFrom      *time.Time
	DateTo        *time.Time
	VoucherPrefix string
	MerchantIDs   []int64
	SortColumn    string
	SortOrder     string
	MonthBuckets  []string
}

// Normalized returns a copy with non-positive page size and number replaced by defaults
func (p QueryParameters) Normalized() QueryParameters {
	if p.PageSize <= 0 {
		p.PageSize = DefaultPageSize
	}
	if p.PageNumber <= 0 {
		p.PageNumber = DefaultPageNumber
	}
	return p
}

// PaginationMetadata describes the page returned by a query
type PaginationMetadata struct {
	CurrentPage int `json:"currentPage"`
	PageSize    int `json:"pageSize"`
	TotalCount  int `json:"totalCount"`
	TotalPages  int `json:"totalPages"`
}

// QueryResult is the outcome of a transaction query
type QueryResult struct {
	Transactions []TransactionRecord
	Pagination   PaginationMetadata
	TotalAmount  decimal.Decimal
}
