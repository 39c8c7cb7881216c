package repositories

import (
	"context"
	"testing"
	"time"

	"transaction-reports/internal/models"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type TransactionRepositoryTestSuite struct {
	suite.Suite
	db     *gorm.DB
	repo   TransactionRepositoryInterface
	seeder TransactionSeederInterface
}

func (s *TransactionRepositoryTestSuite) SetupTest() {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(s.T(), err)

	err = db.AutoMigrate(&models.TransactionRecord{})
	require.NoError(s.T(), err)

	s.db = db
	s.repo = NewTransactionRepository(db)
	s.seeder = NewTransactionSeeder(db)
}

func (s *TransactionRepositoryTestSuite) TearDownTest() {
	sqlDB, err := s.db.DB()
	if err == nil {
		sqlDB.Close()
	}
}

func TestTransactionRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionRepositoryTestSuite))
}

func (s *TransactionRepositoryTestSuite) createTestRecord(clientID int64, date time.Time) models.TransactionRecord {
	return models.TransactionRecord{
		ClientID:        clientID,
		MerchantID:      int64(gofakeit.Number(1000, 9000)),
		TerminalID:      int64(gofakeit.Number(10000, 90000)),
		TransactionDate: date,
		VoucherNumber:   models.StringPtr(gofakeit.Numerify("E3###########")),
		ExpiredDate:     date.AddDate(0, 1, 0),
		Description:     models.StringPtr(gofakeit.Sentence(4)),
		Amount:          decimal.NewFromFloat(gofakeit.Float64Range(1, 5000)).Round(2),
		MerchantName:    models.StringPtr(gofakeit.Company()),
	}
}

func (s *TransactionRepositoryTestSuite) TestGetCandidates_FiltersByClientInDateOrder() {
	ctx := context.Background()
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	records := []models.TransactionRecord{
		s.createTestRecord(1001, base.AddDate(0, 0, 2)),
		s.createTestRecord(2002, base),
		s.createTestRecord(1001, base),
		s.createTestRecord(1001, base.AddDate(0, 0, 1)),
	}
	s.Require().NoError(s.seeder.CreateBatch(ctx, records))

	candidates, err := s.repo.GetCandidates(ctx, 1001)
	s.Require().NoError(err)
	s.Require().Len(candidates, 3)

	for i, candidate := range candidates {
		s.Equal(int64(1001), candidate.ClientID)
		if i > 0 {
			s.False(candidate.TransactionDate.Before(candidates[i-1].TransactionDate))
		}
	}
	s.True(records[2].Amount.Equal(candidates[0].Amount))
	s.Equal(*records[2].VoucherNumber, *candidates[0].VoucherNumber)
	s.Nil(candidates[0].TotalCount)
}

func (s *TransactionRepositoryTestSuite) TestGetCandidates_NullableFieldsRoundTrip() {
	ctx := context.Background()
	record := s.createTestRecord(1001, time.Date(2025, 5, 1, 8, 0, 0, 0, time.UTC))
	record.VoucherNumber = nil
	record.Description = nil

	s.Require().NoError(s.seeder.CreateBatch(ctx, []models.TransactionRecord{record}))

	candidates, err := s.repo.GetCandidates(ctx, 1001)
	s.Require().NoError(err)
	s.Require().Len(candidates, 1)
	s.Nil(candidates[0].VoucherNumber)
	s.Nil(candidates[0].Description)
}

func (s *TransactionRepositoryTestSuite) TestGetCandidates_EmptyClient() {
	candidates, err := s.repo.GetCandidates(context.Background(), 1001)
	s.NoError(err)
	s.Empty(candidates)
}

func (s *TransactionRepositoryTestSuite) TestCreateBatch_Empty() {
	s.NoError(s.seeder.CreateBatch(context.Background(), nil))
}

func (s *TransactionRepositoryTestSuite) TestGetCandidates_ClosedDatabase() {
	sqlDB, err := s.db.DB()
	s.Require().NoError(err)
	s.Require().NoError(sqlDB.Close())

	_, err = s.repo.GetCandidates(context.Background(), 1001)
	s.Error(err)
	s.Error(s.repo.Ping(context.Background()))
}

func (s *TransactionRepositoryTestSuite) TestPing() {
	s.NoError(s.repo.Ping(context.Background()))
}
