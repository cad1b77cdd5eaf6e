package circuitBreaker

import "time"

// Default circuit breaker settings, tuned for a remote naming service that
// is expected to flap under load rather than fail cleanly.
const (
	DefaultCircuitBreakerName      = "remote-service"
	DefaultBreakerTimeout          = 30 * time.Second
	DefaultBreakerInterval         = 60 * time.Second
	DefaultBreakerMaxRequests      = 3
	DefaultBreakerFailureThreshold = 5
)
