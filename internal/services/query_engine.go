package services

import (
	"sort"
	"strings"

	"transaction-reports/internal/models"

	"github.com/shopspring/decimal"
)

type queryEngine struct{}

// NewQueryEngine creates the in-process filter/sort/paginate/aggregate engine.
// The engine keeps no state and is safe for concurrent use.
func NewQueryEngine() QueryEngineInterface {
	return &queryEngine{}
}

// Execute runs params against candidates. candidates is never modified.
func (e *queryEngine) Execute(candidates []models.TransactionRecord, params models.QueryParameters) (result *models.QueryResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = newQueryError(recoveredError(r))
		}
	}()

	params = params.Normalized()

	records := make([]models.TransactionRecord, 0, len(candidates))
	for i := range candidates {
		if matchesFilters(&candidates[i], params) {
			records = append(records, candidates[i].Clone())
		}
	}

	if params.SortColumn != "" && params.SortOrder != "" {
		sortRecords(records, models.ParseSortColumn(params.SortColumn), models.IsAscending(params.SortOrder))
	}

	overallCount := int64(len(records))
	for i := range records {
		count := overallCount
		records[i].TotalCount = &count
	}

	var totalCount int
	if len(params.MonthBuckets) > 0 {
		records = filterByMonth(records, params.MonthBuckets)
		totalCount = len(records)
	} else {
		totalCount = len(records)
		if len(records) > 0 && records[0].TotalCount != nil {
			totalCount = int(*records[0].TotalCount)
		}
	}

	page := paginate(records, params.PageNumber, params.PageSize)

	return &models.QueryResult{
		Transactions: page,
		Pagination:   ComputePagination(totalCount, params.PageSize, params.PageNumber),
		TotalAmount:  sumAmounts(page),
	}, nil
}

func matchesFilters(record *models.TransactionRecord, params models.QueryParameters) bool {
	if params.DateFrom != nil && record.TransactionDate.Before(*params.DateFrom) {
		return false
	}
	if params.DateTo != nil && record.TransactionDate.After(*params.DateTo) {
		return false
	}
	if params.VoucherPrefix != "" && !(record.HasVoucher() && hasPrefixFold(*record.VoucherNumber, params.VoucherPrefix)) {
		return false
	}
	if len(params.MerchantIDs) > 0 && !containsID(params.MerchantIDs, record.MerchantID) {
		return false
	}
	return true
}

func hasPrefixFold(value, prefix string) bool {
	return len(value) >= len(prefix) && strings.EqualFold(value[:len(prefix)], prefix)
}

func containsID(ids []int64, id int64) bool {
	for _, candidate := range ids {
		if candidate == id {
			return true
		}
	}
	return false
}

func sortRecords(records []models.TransactionRecord, column models.SortColumn, ascending bool) {
	var compare func(a, b *models.TransactionRecord) int

	switch column {
	case models.SortColumnTransactionDate:
		compare = func(a, b *models.TransactionRecord) int {
			return a.TransactionDate.Compare(b.TransactionDate)
		}
	case models.SortColumnAmount:
		compare = func(a, b *models.TransactionRecord) int {
			return a.Amount.Cmp(b.Amount)
		}
	case models.SortColumnVoucherNumber:
		compare = compareVouchers
	default:
		return
	}

	sort.SliceStable(records, func(i, j int) bool {
		c := compare(&records[i], &records[j])
		if ascending {
			return c < 0
		}
		return c > 0
	})
}

// compareVouchers orders absent voucher numbers before present ones
func compareVouchers(a, b *models.TransactionRecord) int {
	switch {
	case !a.HasVoucher() && !b.HasVoucher():
		return 0
	case !a.HasVoucher():
		return -1
	case !b.HasVoucher():
		return 1
	default:
		return strings.Compare(*a.VoucherNumber, *b.VoucherNumber)
	}
}

func filterByMonth(records []models.TransactionRecord, buckets []string) []models.TransactionRecord {
	wanted := make(map[string]struct{}, len(buckets))
	for _, bucket := range buckets {
		wanted[bucket] = struct{}{}
	}

	filtered := records[:0]
	for _, record := range records {
		bucket := record.MonthBucket()
		if bucket == "" {
			continue
		}
		if _, ok := wanted[bucket]; ok {
			filtered = append(filtered, record)
		}
	}
	return filtered
}

// paginate returns page pageNumber of records. pageNumber and pageSize are
// positive; pages past the end are empty.
func paginate(records []models.TransactionRecord, pageNumber, limit int) []models.TransactionRecord {
	// (pageNumber-1)*limit may overflow for pages past the end
	if len(records) == 0 || pageNumber-1 > (len(records)-1)/limit {
		return []models.TransactionRecord{}
	}
	offset := (pageNumber - 1) * limit

	end := len(records)
	if limit < end-offset {
		end = offset + limit
	}

	page := make([]models.TransactionRecord, end-offset)
	copy(page, records[offset:end])
	return page
}

func sumAmounts(records []models.TransactionRecord) decimal.Decimal {
	total := decimal.Zero
	for i := range records {
		total = total.Add(records[i].Amount)
	}
	return total
}
