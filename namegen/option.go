package namegen

import (
	"time"

	"github.com/sony/gobreaker"

	"github.com/abhissng/versename/adapters/log"
)

// ClientOption is a function type for configuring the Client.
type ClientOption func(*Client)

// WithTimeout sets the per-call timeout.
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		if timeout > 0 {
			c.timeout = timeout
		}
	}
}

// WithFastHTTP switches the client to the FastHTTP transport.
func WithFastHTTP(use bool) ClientOption {
	return func(c *Client) {
		c.useFastHTTP = use
	}
}

// WithHeader adds a header sent on every call (e.g. an API key).
func WithHeader(key, value string) ClientOption {
	return func(c *Client) {
		c.headers[key] = value
	}
}

// WithBreaker replaces the default circuit breaker.
func WithBreaker(breaker *gobreaker.CircuitBreaker) ClientOption {
	return func(c *Client) {
		if breaker != nil {
			c.breaker = breaker
		}
	}
}

// WithClientLogger sets the logger for the client.
func WithClientLogger(logger *log.Log) ClientOption {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}
