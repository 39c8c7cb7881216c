package repositories

import (
	"fmt"
	"math/rand"
	"sort"
	"time"

	"transaction-reports/internal/models"

	"github.com/shopspring/decimal"
)

const (
	hoursInDay         = 24
	expiryDays         = 30
	businessHoursStart = 6
	businessHoursEnd   = 24
	terminalsPerShop   = 3
	missingVoucherRate = 0.05

	// DefaultGeneratorSeed keeps generated demo data stable across restarts
	DefaultGeneratorSeed int64 = 20250101
)

const (
	CategoryGroceries      = "groceries"
	CategoryDining         = "dining"
	CategoryFuel           = "fuel"
	CategoryShopping       = "shopping"
	CategoryElectronics    = "electronics"
	CategoryHealthcare     = "healthcare"
	CategoryTransportation = "transportation"
	CategoryTravel         = "travel"
	CategoryFitness        = "fitness"
	CategoryUtilities      = "utilities"
)

// Merchant is an acquiring merchant that generated transactions are booked against
type Merchant struct {
	ID       int64
	Name     string
	Category string
	MCCCode  string
}

// TransactionGenerator produces plausible card transactions for demo and load data.
// It is not safe for concurrent use.
type TransactionGenerator struct {
	merchantPool []Merchant
	rng          *rand.Rand
	voucherSeq   int64
}

// NewTransactionGenerator creates a generator whose output is fully determined by seed
func NewTransactionGenerator(seed int64) *TransactionGenerator {
	return &TransactionGenerator{
		merchantPool: initializeMerchantPool(),
		rng:          rand.New(rand.NewSource(seed)),
	}
}

func initializeMerchantPool() []Merchant {
	return []Merchant{
		// Groceries
		{9101, "Supermercado Nacional", CategoryGroceries, "5411"},
		{9102, "Jumbo Express", CategoryGroceries, "5411"},
		{9103, "Mercado La Sirena", CategoryGroceries, "5411"},
		{9104, "Colmado Don Pedro", CategoryGroceries, "5499"},

		// Dining
		{9201, "Café Santo Domingo", CategoryDining, "5814"},
		{9202, "Pizzería Napoli", CategoryDining, "5812"},
		{9203, "Asadero El Fogón", CategoryDining, "5812"},
		{9204, "Heladería Tropical", CategoryDining, "5814"},

		// Fuel
		{9301, "Estación Texaco Norte", CategoryFuel, "5542"},
		{9302, "Shell Autopista Duarte", CategoryFuel, "5542"},
		{9303, "Sunix Los Prados", CategoryFuel, "5542"},

		// Shopping
		{9401, "Plaza Lama", CategoryShopping, "5311"},
		{9402, "Zapatería Central", CategoryShopping, "5661"},
		{9403, "Ferretería Americana", CategoryShopping, "5200"},
		{9404, "Librería Cuesta", CategoryShopping, "5942"},

		// Electronics
		{9501, "Tienda Digital Caribe", CategoryElectronics, "5732"},
		{9502, "Celulares Express", CategoryElectronics, "5732"},

		// Healthcare
		{9601, "Farmacia Carol", CategoryHealthcare, "5912"},
		{9602, "Laboratorio Referencia", CategoryHealthcare, "8071"},
		{9603, "Clínica Corazones Unidos", CategoryHealthcare, "8062"},

		// Transportation
		{9701, "Taxi Apolo", CategoryTransportation, "4121"},
		{9702, "Metro Tarjeta Recarga", CategoryTransportation, "4111"},

		// Travel
		{9801, "Hotel Malecón Suites", CategoryTravel, "7011"},
		{9802, "Aerolínea del Caribe", CategoryTravel, "3000"},

		// Fitness
		{9901, "Gimnasio Body Shop", CategoryFitness, "7997"},

		// Utilities
		{9951, "Edesur Pago Factura", CategoryUtilities, "4900"},
		{9952, "Claro Recarga", CategoryUtilities, "4814"},
	}
}

// MerchantPool returns the merchants transactions are drawn from
func (g *TransactionGenerator) MerchantPool() []Merchant {
	return g.merchantPool
}

// SelectRandomMerchant picks a merchant uniformly from the pool
func (g *TransactionGenerator) SelectRandomMerchant() Merchant {
	return g.merchantPool[g.rng.Intn(len(g.merchantPool))]
}

// GenerateAmount draws an amount from the range typical for category
func (g *TransactionGenerator) GenerateAmount(category string) decimal.Decimal {
	minValue, maxValue := amountRange(category)
	amount := minValue + g.rng.Float64()*(maxValue-minValue)
	return decimal.NewFromFloat(amount).Round(2)
}

func amountRange(category string) (float64, float64) {
	ranges := map[string][2]float64{
		CategoryGroceries:      {150.00, 6500.00},
		CategoryDining:         {250.00, 4500.00},
		CategoryFuel:           {500.00, 5000.00},
		CategoryShopping:       {300.00, 12000.00},
		CategoryElectronics:    {2500.00, 65000.00},
		CategoryHealthcare:     {200.00, 9000.00},
		CategoryTransportation: {150.00, 1800.00},
		CategoryTravel:         {4500.00, 40000.00},
		CategoryFitness:        {1500.00, 8000.00},
		CategoryUtilities:      {500.00, 7500.00},
	}

	if r, exists := ranges[category]; exists {
		return r[0], r[1]
	}
	return 100.00, 1000.00
}

// GenerateTimestamp draws a time within business hours on a day between startDate and endDate
func (g *TransactionGenerator) GenerateTimestamp(startDate, endDate time.Time) time.Time {
	diff := endDate.Sub(startDate)
	if diff <= 0 {
		return startDate.UTC()
	}
	day := startDate.Add(time.Duration(g.rng.Int63n(int64(diff))))

	hour := businessHoursStart + g.rng.Intn(businessHoursEnd-businessHoursStart)
	minute := g.rng.Intn(60)
	second := g.rng.Intn(60)

	timestamp := time.Date(day.Year(), day.Month(), day.Day(), hour, minute, second, 0, time.UTC)
	if timestamp.Before(startDate) {
		return startDate.UTC()
	}
	if timestamp.After(endDate) {
		return endDate.UTC()
	}
	return timestamp
}

// Generate produces count transactions for clientID dated within [startDate, endDate],
// ordered by transaction date
func (g *TransactionGenerator) Generate(clientID int64, startDate, endDate time.Time, count int) []models.TransactionRecord {
	if count <= 0 {
		return []models.TransactionRecord{}
	}

	records := make([]models.TransactionRecord, 0, count)
	for i := 0; i < count; i++ {
		records = append(records, g.createTransaction(clientID, startDate, endDate))
	}

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].TransactionDate.Before(records[j].TransactionDate)
	})
	return records
}

func (g *TransactionGenerator) createTransaction(clientID int64, startDate, endDate time.Time) models.TransactionRecord {
	merchant := g.SelectRandomMerchant()
	timestamp := g.GenerateTimestamp(startDate, endDate)
	expires := time.Date(timestamp.Year(), timestamp.Month(), timestamp.Day(), 0, 0, 0, 0, time.UTC).
		Add(expiryDays * hoursInDay * time.Hour)

	return models.TransactionRecord{
		ClientID:        clientID,
		MerchantID:      merchant.ID,
		TerminalID:      merchant.ID*10 + int64(1+g.rng.Intn(terminalsPerShop)),
		TransactionDate: timestamp,
		VoucherNumber:   g.nextVoucher(merchant),
		ExpiredDate:     expires,
		Description:     models.StringPtr(describe(merchant)),
		Amount:          g.GenerateAmount(merchant.Category),
		MerchantName:    models.StringPtr(merchant.Name),
	}
}

// nextVoucher returns a fresh voucher number, or nil for the occasional
// transaction that was never assigned one
func (g *TransactionGenerator) nextVoucher(merchant Merchant) *string {
	if g.rng.Float64() < missingVoucherRate {
		return nil
	}
	g.voucherSeq++
	return models.StringPtr(fmt.Sprintf("E39%s%06d", merchant.MCCCode, g.voucherSeq))
}

func describe(merchant Merchant) string {
	switch merchant.Category {
	case CategoryFuel:
		return "Fuel purchase - " + merchant.Name
	case CategoryDining:
		return "Restaurant invoice - " + merchant.Name
	case CategoryUtilities:
		return "Bill payment - " + merchant.Name
	case CategoryTravel:
		return "Travel booking - " + merchant.Name
	default:
		return "Purchase at " + merchant.Name
	}
}

// GeneratedTransactions returns count deterministic demo transactions for clientID
// spread over calendar year 2025
func GeneratedTransactions(clientID int64, count int) []models.TransactionRecord {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 12, 31, 23, 59, 59, 0, time.UTC)
	return NewTransactionGenerator(DefaultGeneratorSeed).Generate(clientID, start, end, count)
}

// DemoTransactions returns the static fixture followed by generatedCount
// generated transactions for generatedClientID
func DemoTransactions(generatedCount int, generatedClientID int64) []models.TransactionRecord {
	records := FixtureTransactions()
	if generatedCount > 0 {
		records = append(records, GeneratedTransactions(generatedClientID, generatedCount)...)
	}
	return records
}
