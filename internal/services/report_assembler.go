package services

import (
	"strconv"
	"time"

	"transaction-reports/internal/models"
)

type reportAssembler struct {
	now func() time.Time
}

// NewReportAssembler creates an assembler that maps query pages onto the
// transaction report table. now supplies the current time for default date ranges.
func NewReportAssembler(now func() time.Time) ReportAssemblerInterface {
	if now == nil {
		now = time.Now
	}
	return &reportAssembler{now: now}
}

// Assemble builds the report table and header parameters for a page of transactions
func (a *reportAssembler) Assemble(page []models.TransactionRecord, ctx models.ReportContext) (models.ReportTable, models.ReportParameters) {
	table := models.ReportTable{
		Name:    models.TransactionReportDataSource,
		Columns: models.ReportColumns,
		Rows:    make([]models.ReportRow, 0, len(page)),
	}

	for i := range page {
		table.Rows = append(table.Rows, buildReportRow(&page[i]))
	}

	merchantID := "0"
	if len(page) > 0 {
		merchantID = strconv.FormatInt(page[0].MerchantID, 10)
	}

	params := models.ReportParameters{
		MerchantName: ctx.ClientLabel,
		MerchantID:   merchantID,
		From:         ctx.DateFrom.Format(models.ReportDateLayout),
		To:           ctx.DateTo.Format(models.ReportDateLayout),
		TotalAmount:  ctx.TotalAmount,
	}

	return table, params
}

// ReportDateRange resolves the date range printed on a report.
// A missing start defaults to the first day of the current month, a missing end to now.
func (a *reportAssembler) ReportDateRange(dateFrom, dateTo *time.Time) (time.Time, time.Time) {
	now := a.now()

	from := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	if dateFrom != nil {
		from = *dateFrom
	}

	to := now
	if dateTo != nil {
		to = *dateTo
	}

	return from, to
}

func buildReportRow(record *models.TransactionRecord) models.ReportRow {
	return models.ReportRow{
		AffiliateNumber: strconv.FormatInt(record.MerchantID, 10),
		TransactionDate: record.TransactionDate.Format(models.ReportDateLayout),
		VoucherNumber:   derefString(record.VoucherNumber),
		ExpirationDate:  record.ExpiredDate.Format(models.ReportDateLayout),
		Description:     derefString(record.Description),
		Amount:          record.Amount,
		TerminalID:      strconv.FormatInt(record.TerminalID, 10),
	}
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
