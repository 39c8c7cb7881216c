package models

// BreakerState is the state of the transaction store circuit breaker
type BreakerState int

func (s BreakerState) String() string {
	switch s {
	case 0:
		return "closed"
	case 1:
		return "open"
	case 2:
		return "half_open"
	default:
		return "unknown"
	}
}
