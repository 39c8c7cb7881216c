package services

import (
	"sync"
	"testing"
	"time"

	"transaction-reports/internal/models"

	"github.com/stretchr/testify/suite"
)

type CircuitBreakerTestSuite struct {
	suite.Suite
	clock   time.Time
	breaker CircuitBreakerInterface
}

func TestCircuitBreakerSuite(t *testing.T) {
	suite.Run(t, new(CircuitBreakerTestSuite))
}

func (s *CircuitBreakerTestSuite) SetupTest() {
	s.clock = time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)
	s.breaker = NewCircuitBreaker(CircuitBreakerConfig{
		MaxFailures:       3,
		ResetTimeout:      10 * time.Second,
		HalfOpenSuccesses: 2,
	}, func() time.Time { return s.clock })
}

func (s *CircuitBreakerTestSuite) trip() {
	for i := 0; i < 3; i++ {
		s.breaker.RecordFailure()
	}
}

func (s *CircuitBreakerTestSuite) TestStartsClosed() {
	s.Equal(StateClosed, s.breaker.GetState())
	s.False(s.breaker.IsOpen())
	s.Equal(0, s.breaker.GetFailureCount())
}

func (s *CircuitBreakerTestSuite) TestOpensAfterMaxFailures() {
	s.breaker.RecordFailure()
	s.breaker.RecordFailure()
	s.False(s.breaker.IsOpen())
	s.Equal(2, s.breaker.GetFailureCount())

	s.breaker.RecordFailure()
	s.True(s.breaker.IsOpen())
	s.Equal(StateOpen, s.breaker.GetState())
}

func (s *CircuitBreakerTestSuite) TestSuccessResetsFailureCount() {
	s.breaker.RecordFailure()
	s.breaker.RecordFailure()
	s.breaker.RecordSuccess()

	s.Equal(0, s.breaker.GetFailureCount())
	s.breaker.RecordFailure()
	s.False(s.breaker.IsOpen())
}

func (s *CircuitBreakerTestSuite) TestHalfOpenAfterResetTimeout() {
	s.trip()

	s.clock = s.clock.Add(5 * time.Second)
	s.True(s.breaker.IsOpen())

	s.clock = s.clock.Add(6 * time.Second)
	s.False(s.breaker.IsOpen())
	s.Equal(StateHalfOpen, s.breaker.GetState())
}

func (s *CircuitBreakerTestSuite) TestHalfOpenClosesAfterSuccesses() {
	s.trip()
	s.clock = s.clock.Add(11 * time.Second)
	s.Require().False(s.breaker.IsOpen())

	s.breaker.RecordSuccess()
	s.Equal(StateHalfOpen, s.breaker.GetState())
	s.breaker.RecordSuccess()
	s.Equal(StateClosed, s.breaker.GetState())
	s.Equal(0, s.breaker.GetFailureCount())
}

func (s *CircuitBreakerTestSuite) TestHalfOpenFailureReopens() {
	s.trip()
	s.clock = s.clock.Add(11 * time.Second)
	s.Require().False(s.breaker.IsOpen())

	s.breaker.RecordFailure()
	s.Equal(StateOpen, s.breaker.GetState())
	s.True(s.breaker.IsOpen())
}

func (s *CircuitBreakerTestSuite) TestDefaultsForInvalidConfig() {
	breaker := NewCircuitBreaker(CircuitBreakerConfig{}, nil).(*CircuitBreaker)
	s.Equal(DefaultCircuitBreakerConfig(), breaker.config)
	s.NotNil(breaker.now)
}

func (s *CircuitBreakerTestSuite) TestConcurrentFailures() {
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.breaker.RecordFailure()
			_ = s.breaker.IsOpen()
		}()
	}
	wg.Wait()

	s.Equal(StateOpen, s.breaker.GetState())
	s.Equal(3, s.breaker.GetFailureCount())
}

func TestBreakerStateString(t *testing.T) {
	tests := map[models.BreakerState]string{
		StateClosed:             "closed",
		StateOpen:               "open",
		StateHalfOpen:           "half_open",
		models.BreakerState(42): "unknown",
	}
	for state, want := range tests {
		if got := state.String(); got != want {
			t.Errorf("BreakerState(%d).String() = %q, want %q", int(state), got, want)
		}
	}
}
