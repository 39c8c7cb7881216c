package repositories

import (
	"time"

	"transaction-reports/internal/models"

	"github.com/shopspring/decimal"
)

// FixtureClientID owns every record in the static fixture
const FixtureClientID int64 = 1001

type fixtureRow struct {
	merchantID   int64
	terminalID   int64
	date         time.Time
	voucher      string
	expires      time.Time
	description  string
	amount       string
	merchantName string
}

func at(year int, month time.Month, d, hour, minute int) time.Time {
	return time.Date(year, month, d, hour, minute, 0, 0, time.UTC)
}

func date(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

var fixtureRows = []fixtureRow{
	{1001, 10101, at(2025, 1, 5, 10, 15), "E310000000001", date(2025, 2, 5), "Grocery purchase - supermarket invoice", "1850.75", "Supermercado Primavera"},
	{1001, 10102, at(2025, 1, 12, 18, 30), "E310000000002", date(2025, 2, 12), "Household items and cleaning products", "2360.20", "Supermercado Primavera"},
	{2001, 20101, at(2025, 2, 3, 9, 5), "E320000000101", date(2025, 3, 3), "Fuel purchase - gasoline 95", "4200.00", "Estación de Servicios Central"},
	{2001, 20102, at(2025, 2, 15, 14, 45), "E320000000102", date(2025, 3, 15), "Fuel + car wash service", "3150.50", "Estación de Servicios Central"},
	{3001, 30101, at(2025, 3, 1, 11, 10), "E330000000501", date(2025, 4, 1), "Lunch invoice - restaurant service", "980.00", "Restaurante El Buen Sabor"},
	{3001, 30102, at(2025, 3, 18, 20, 20), "E330000000502", date(2025, 4, 18), "Dinner invoice - restaurant service", "1725.30", "Restaurante El Buen Sabor"},
	{4001, 40101, at(2025, 4, 4, 8, 40), "E340000000801", date(2025, 5, 4), "Pharmacy invoice - medicines", "650.90", "Farmacia Central"},
	{4001, 40102, at(2025, 4, 22, 16, 30), "E340000000802", date(2025, 5, 22), "Personal care products and medicines", "1890.40", "Farmacia Central"},
	{5001, 50101, at(2025, 5, 7, 13, 0), "E350000001201", date(2025, 6, 7), "Electronics purchase - smartphone", "24500.00", "Tecnología Caribe SRL"},
	{5001, 50102, at(2025, 5, 19, 17, 45), "E350000001202", date(2025, 6, 19), "Electronics purchase - laptop", "48500.99", "Tecnología Caribe SRL"},
	{6001, 60101, at(2025, 6, 2, 9, 25), "E360000001801", date(2025, 7, 2), "Taxi / transportation service invoice", "420.00", "Transporte Urbano RD"},
	{6001, 60102, at(2025, 6, 16, 21, 10), "E360000001802", date(2025, 7, 16), "Private transfer service invoice", "1350.00", "Transporte Urbano RD"},
	{7001, 70101, at(2025, 7, 3, 15, 5), "E370000002101", date(2025, 8, 3), "Monthly gym membership", "2500.00", "Gimnasio Vida Sana"},
	{7001, 70102, at(2025, 7, 21, 7, 45), "E370000002102", date(2025, 8, 21), "Personal training session package", "7800.00", "Gimnasio Vida Sana"},
	{8001, 80101, at(2025, 8, 5, 19, 30), "E380000002501", date(2025, 9, 5), "Hotel lodging - 2 nights", "18500.00", "Hotel Caribe Plaza"},
}

// FixtureTransactions builds a fresh copy of the static transaction fixture
func FixtureTransactions() []models.TransactionRecord {
	records := make([]models.TransactionRecord, 0, len(fixtureRows))
	for _, row := range fixtureRows {
		records = append(records, models.TransactionRecord{
			ClientID:        FixtureClientID,
			MerchantID:      row.merchantID,
			TerminalID:      row.terminalID,
			TransactionDate: row.date,
			VoucherNumber:   models.StringPtr(row.voucher),
			ExpiredDate:     row.expires,
			Description:     models.StringPtr(row.description),
			Amount:          decimal.RequireFromString(row.amount),
			MerchantName:    models.StringPtr(row.merchantName),
		})
	}
	return records
}
