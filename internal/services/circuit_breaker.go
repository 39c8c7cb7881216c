package services

import (
	"errors"
	"sync"
	"time"

	"transaction-reports/internal/models"
)

// ErrCircuitBreakerOpen is returned instead of calling the store while the breaker is open
var ErrCircuitBreakerOpen = errors.New("transaction store circuit breaker is open")

const (
	StateClosed models.BreakerState = iota
	StateOpen
	StateHalfOpen
)

// CircuitBreakerConfig mirrors config.BreakerConfig
type CircuitBreakerConfig struct {
	// MaxFailures consecutive store failures open the breaker
	MaxFailures int
	// ResetTimeout is how long the breaker stays open before probing
	ResetTimeout time.Duration
	// HalfOpenSuccesses probes must succeed before the breaker closes
	HalfOpenSuccesses int
}

func DefaultCircuitBreakerConfig() CircuitBreakerConfig {
	return CircuitBreakerConfig{
		MaxFailures:       5,
		ResetTimeout:      30 * time.Second,
		HalfOpenSuccesses: 3,
	}
}

func (c CircuitBreakerConfig) withDefaults() CircuitBreakerConfig {
	defaults := DefaultCircuitBreakerConfig()
	if c.MaxFailures <= 0 {
		c.MaxFailures = defaults.MaxFailures
	}
	if c.ResetTimeout <= 0 {
		c.ResetTimeout = defaults.ResetTimeout
	}
	if c.HalfOpenSuccesses <= 0 {
		c.HalfOpenSuccesses = defaults.HalfOpenSuccesses
	}
	return c
}

// CircuitBreaker is a consecutive-failure breaker with a half-open probe phase.
// It is safe for concurrent use.
type CircuitBreaker struct {
	mu     sync.Mutex
	config CircuitBreakerConfig
	now    func() time.Time

	state    models.BreakerState
	failures int
	probes   int
	openedAt time.Time
}

// NewCircuitBreaker creates a closed breaker. Non-positive config values take
// their defaults and a nil clock means time.Now.
func NewCircuitBreaker(config CircuitBreakerConfig, now func() time.Time) CircuitBreakerInterface {
	if now == nil {
		now = time.Now
	}
	return &CircuitBreaker{
		config: config.withDefaults(),
		now:    now,
		state:  StateClosed,
	}
}

// moveTo enters state and clears the counters that belong to the previous one
func (cb *CircuitBreaker) moveTo(state models.BreakerState) {
	cb.state = state
	cb.probes = 0
	switch state {
	case StateOpen:
		cb.openedAt = cb.now()
	case StateClosed:
		cb.failures = 0
	}
}

// IsOpen reports whether a call must be rejected. Once ResetTimeout has passed
// the breaker goes half-open and admits probe calls.
func (cb *CircuitBreaker) IsOpen() bool {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	if cb.state == StateOpen && !cb.now().Before(cb.openedAt.Add(cb.config.ResetTimeout)) {
		cb.moveTo(StateHalfOpen)
	}
	return cb.state == StateOpen
}

func (cb *CircuitBreaker) RecordSuccess() {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	switch cb.state {
	case StateClosed:
		cb.failures = 0
	case StateHalfOpen:
		if cb.probes++; cb.probes >= cb.config.HalfOpenSuccesses {
			cb.moveTo(StateClosed)
		}
	}
}

// RecordFailure counts a store failure. A failed probe reopens immediately.
func (cb *CircuitBreaker) RecordFailure() {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	switch cb.state {
	case StateClosed:
		if cb.failures++; cb.failures >= cb.config.MaxFailures {
			cb.moveTo(StateOpen)
		}
	case StateHalfOpen:
		cb.moveTo(StateOpen)
	}
}

func (cb *CircuitBreaker) GetState() models.BreakerState {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	return cb.state
}

// GetFailureCount returns the consecutive failures recorded while closed
func (cb *CircuitBreaker) GetFailureCount() int {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	return cb.failures
}
