package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	// ReportDateLayout is the day/month/year layout used on every report
	ReportDateLayout = "02/01/2006"

	// TransactionReportTemplate names the default transaction report layout
	TransactionReportTemplate = "Transaction_Report"

	// TransactionReportDataSource names the table bound to the report template
	TransactionReportDataSource = "TransactionOverview"
)

// ReportColumns lists the transaction report columns in display order
var ReportColumns = []string{
	"AFFILIATE NUMBER",
	"TRANSACTION DATE",
	"VOUCHER NUMBER",
	"EXPIRATION DATE",
	"DESCRIPTION",
	"AMOUNT",
	"TERMINAL ID",
}

// ReportRow is one row of the transaction report table
type ReportRow struct {
	AffiliateNumber string
	TransactionDate string
	VoucherNumber   string
	ExpirationDate  string
	Description     string
	Amount          decimal.Decimal
	TerminalID      string
}

// Cells returns the row values in ReportColumns order
func (r ReportRow) Cells() []string {
	return []string{
		r.AffiliateNumber,
		r.TransactionDate,
		r.VoucherNumber,
		r.ExpirationDate,
		r.Description,
		r.Amount.StringFixed(2),
		r.TerminalID,
	}
}

// ReportTable is the data source bound to a report template
type ReportTable struct {
	Name    string
	Columns []string
	Rows    []ReportRow
}

// ReportParameters are the named values printed in the report header and footer
type ReportParameters struct {
	MerchantName string
	MerchantID   string
	From         string
	To           string
	TotalAmount  decimal.Decimal
}

// ReportContext carries the values the assembler needs besides the page itself
type ReportContext struct {
	ClientLabel string
	DateFrom    time.Time
	DateTo      time.Time
	TotalAmount decimal.Decimal
}

// ReportRequest asks for a transaction report for one client
type ReportRequest struct {
	ClientID    int64
	ClientLabel string
	Params      QueryParameters
}
