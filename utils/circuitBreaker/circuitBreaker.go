package circuitBreaker

import (
	"time"

	"github.com/sony/gobreaker"
)

// CircuitBreakerOption is a functional option for configuring the circuit breaker.
type CircuitBreakerOption func(*gobreaker.Settings)

// WithName sets the name of the circuit breaker.
func WithName(name string) CircuitBreakerOption {
	return func(s *gobreaker.Settings) {
		s.Name = name
	}
}

// WithTimeout sets how long the breaker stays open before probing again.
func WithTimeout(timeout time.Duration) CircuitBreakerOption {
	return func(s *gobreaker.Settings) {
		s.Timeout = timeout
	}
}

// WithMaxRequests sets the maximum number of requests allowed to pass through
// the circuit breaker while it is half-open.
func WithMaxRequests(maxRequests uint32) CircuitBreakerOption {
	return func(s *gobreaker.Settings) {
		s.MaxRequests = maxRequests
	}
}

// WithInterval sets the interval for the circuit breaker.
func WithInterval(interval time.Duration) CircuitBreakerOption {
	return func(s *gobreaker.Settings) {
		s.Interval = interval
	}
}

// WithReadyToTrip sets the ReadyToTrip function for the circuit breaker.
func WithReadyToTrip(readyToTrip func(gobreaker.Counts) bool) CircuitBreakerOption {
	return func(s *gobreaker.Settings) {
		s.ReadyToTrip = readyToTrip
	}
}

// NewCircuitBreaker creates a new circuit breaker with the given options.
func NewCircuitBreaker(options ...CircuitBreakerOption) *gobreaker.CircuitBreaker {
	settings := gobreaker.Settings{
		Name:        DefaultCircuitBreakerName,
		Timeout:     DefaultBreakerTimeout,
		MaxRequests: DefaultBreakerMaxRequests,
		Interval:    DefaultBreakerInterval,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= DefaultBreakerFailureThreshold
		},
	}

	for _, option := range options {
		option(&settings)
	}

	return gobreaker.NewCircuitBreaker(settings)
}
