package dispatcher

import (
	"sync"
	"time"

	"github.com/abhissng/versename/adapters/log"
	"github.com/abhissng/versename/blame"
	"github.com/abhissng/versename/result"
	"github.com/abhissng/versename/utils/helpers"
)

const (
	// DefaultRPM is the default number of call-starts permitted per window span.
	DefaultRPM = 10
	// DefaultWindowSpan is the trailing interval the rpm bound applies to.
	DefaultWindowSpan = time.Minute
	// slotSafetyBuffer pads every computed wait so a waking waiter lands
	// strictly after the slot has actually freed.
	slotSafetyBuffer = 100 * time.Millisecond
)

// Dispatcher drives one batch of tasks through the rate and concurrency gates.
// State is per-instance: independent dispatchers never interfere with each other.
type Dispatcher[T any, U any] struct {
	processor     result.TaskProcessor[T, U] // Task processor
	rpm           int                        // Max call-starts per window span
	maxConcurrent int                        // Max tasks in flight at once
	windowSpan    time.Duration              // Trailing interval for the rpm bound
	window        *rateWindow                // Sliding window + cooldown
	logger        *log.Log                   // Use log.Log

	mu       sync.Mutex // Protects window and active
	slotFree *sync.Cond // Signaled on every settlement
	active   int        // Tasks between admission and settlement
}

// NewDispatcher creates a new Dispatcher with the provided options.
// Invalid configuration fails here, before any dispatch begins.
func NewDispatcher[T any, U any](processor result.TaskProcessor[T, U], options ...Option[T, U]) (*Dispatcher[T, U], blame.Blame) {
	// Default configuration
	d := &Dispatcher[T, U]{
		processor:  processor,
		rpm:        DefaultRPM,
		windowSpan: DefaultWindowSpan,
		logger:     log.NewBasicLogger(helpers.IsProdEnvironment()),
	}

	// Apply options to override defaults
	for _, option := range options {
		option(d)
	}

	if d.processor == nil {
		return nil, blame.DispatchProcessorMissing()
	}
	if d.rpm <= 0 {
		return nil, blame.InvalidDispatcherConfig("rpm must be greater than zero")
	}
	if d.maxConcurrent < 0 {
		return nil, blame.InvalidDispatcherConfig("maxConcurrent must not be negative")
	}
	if d.maxConcurrent == 0 {
		d.maxConcurrent = d.rpm // Default maxConcurrent mirrors the rpm bound
	}
	if d.windowSpan <= 0 {
		return nil, blame.InvalidDispatcherConfig("window span must be greater than zero")
	}

	d.window = newRateWindow(d.rpm, d.windowSpan, slotSafetyBuffer)
	d.slotFree = sync.NewCond(&d.mu)
	return d, nil
}

// Option is a function type for configuring the Dispatcher.
type Option[T any, U any] func(*Dispatcher[T, U])

// WithRPM sets the maximum number of call-starts per window span.
func WithRPM[T any, U any](rpm int) Option[T, U] {
	return func(d *Dispatcher[T, U]) {
		d.rpm = rpm
	}
}

// WithMaxConcurrent sets the maximum number of tasks in flight at once.
// When unset it defaults to the rpm bound.
func WithMaxConcurrent[T any, U any](maxConcurrent int) Option[T, U] {
	return func(d *Dispatcher[T, U]) {
		d.maxConcurrent = maxConcurrent
	}
}

// WithWindowSpan sets the trailing interval the rpm bound applies to.
// The default is one minute.
func WithWindowSpan[T any, U any](span time.Duration) Option[T, U] {
	return func(d *Dispatcher[T, U]) {
		d.windowSpan = span
	}
}

// WithLogger sets the logger for the dispatcher.
func WithLogger[T any, U any](logger *log.Log) Option[T, U] {
	return func(d *Dispatcher[T, U]) {
		if logger != nil {
			d.logger = logger
		}
	}
}
