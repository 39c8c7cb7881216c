package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"transaction-reports/internal/repositories/repository_mocks"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

type CachedTransactionRepositoryTestSuite struct {
	suite.Suite
	ctrl  *gomock.Controller
	next  *repository_mocks.MockTransactionRepositoryInterface
	cache *repository_mocks.MockCandidateCacheInterface
	repo  TransactionRepositoryInterface
	hits  []bool
	ctx   context.Context
}

func (s *CachedTransactionRepositoryTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.next = repository_mocks.NewMockTransactionRepositoryInterface(s.ctrl)
	s.cache = repository_mocks.NewMockCandidateCacheInterface(s.ctrl)
	s.hits = nil
	s.ctx = context.Background()
	s.repo = NewCachedTransactionRepository(s.next, s.cache, time.Minute, nil, func(hit bool) {
		s.hits = append(s.hits, hit)
	})
}

func (s *CachedTransactionRepositoryTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestCachedTransactionRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(CachedTransactionRepositoryTestSuite))
}

func (s *CachedTransactionRepositoryTestSuite) TestHitSkipsBackingRepository() {
	cached := FixtureTransactions()[:2]
	s.cache.EXPECT().Get(s.ctx, int64(1001)).Return(cached, true, nil)

	records, err := s.repo.GetCandidates(s.ctx, 1001)
	s.NoError(err)
	s.Equal(cached, records)
	s.Equal([]bool{true}, s.hits)
}

func (s *CachedTransactionRepositoryTestSuite) TestMissLoadsAndStores() {
	loaded := FixtureTransactions()
	gomock.InOrder(
		s.cache.EXPECT().Get(s.ctx, int64(1001)).Return(nil, false, nil),
		s.next.EXPECT().GetCandidates(s.ctx, int64(1001)).Return(loaded, nil),
		s.cache.EXPECT().Set(s.ctx, int64(1001), loaded, time.Minute).Return(nil),
	)

	records, err := s.repo.GetCandidates(s.ctx, 1001)
	s.NoError(err)
	s.Len(records, 15)
	s.Equal([]bool{false}, s.hits)
}

func (s *CachedTransactionRepositoryTestSuite) TestCacheFaultsFallBackToRepository() {
	loaded := FixtureTransactions()
	s.cache.EXPECT().Get(s.ctx, int64(1001)).Return(nil, false, errors.New("connection refused"))
	s.next.EXPECT().GetCandidates(s.ctx, int64(1001)).Return(loaded, nil)
	s.cache.EXPECT().Set(s.ctx, int64(1001), loaded, time.Minute).Return(errors.New("connection refused"))

	records, err := s.repo.GetCandidates(s.ctx, 1001)
	s.NoError(err)
	s.Len(records, 15)
}

func (s *CachedTransactionRepositoryTestSuite) TestRepositoryErrorIsNotCached() {
	repoErr := errors.New("database unavailable")
	s.cache.EXPECT().Get(s.ctx, int64(1001)).Return(nil, false, nil)
	s.next.EXPECT().GetCandidates(s.ctx, int64(1001)).Return(nil, repoErr)
	s.cache.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	_, err := s.repo.GetCandidates(s.ctx, 1001)
	s.ErrorIs(err, repoErr)
}

func (s *CachedTransactionRepositoryTestSuite) TestPingChecksBoth() {
	s.next.EXPECT().Ping(s.ctx).Return(nil)
	s.cache.EXPECT().Ping(s.ctx).Return(errors.New("redis down"))

	s.EqualError(s.repo.Ping(s.ctx), "redis down")
}

func (s *CachedTransactionRepositoryTestSuite) TestPingStopsAtRepository() {
	s.next.EXPECT().Ping(s.ctx).Return(errors.New("database down"))

	s.EqualError(s.repo.Ping(s.ctx), "database down")
}
