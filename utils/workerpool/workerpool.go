// Package workerpool runs local CPU-bound work over a bounded set of workers.
// Unlike the dispatcher it applies no rate limiting: it is meant for in-process
// transformation work such as corpus conversion, not remote calls.
package workerpool

import (
	"math"
	"sync"

	"github.com/abhissng/versename/adapters/log"
	"github.com/abhissng/versename/blame"
	"github.com/abhissng/versename/result"
	"github.com/abhissng/versename/utils/helpers"
)

// Pool represents a generic worker pool for concurrent task execution.
type Pool[T any, U any] struct {
	numWorkers int                        // Number of workers
	processor  result.TaskProcessor[T, U] // Task processor
	logger     *log.Log                   // Use log.Log
}

// New creates a new Pool with the provided options.
func New[T any, U any](processor result.TaskProcessor[T, U], options ...Option[T, U]) (*Pool[T, U], blame.Blame) {
	// Default configuration
	p := &Pool[T, U]{
		numWorkers: 5,
		processor:  processor,
		logger:     log.NewBasicLogger(helpers.IsProdEnvironment()),
	}

	// Apply options to override defaults
	for _, option := range options {
		option(p)
	}

	if p.processor == nil {
		return nil, blame.WorkerProcessorMissing()
	}
	if p.numWorkers < 1 {
		p.numWorkers = 1
	}
	return p, nil
}

// Execute processes every input and blocks until all workers are done.
// The returned slice is index-aligned with the inputs.
func (p *Pool[T, U]) Execute(inputs []T) []result.TaskResult[U] {
	results := make([]result.TaskResult[U], len(inputs))
	if len(inputs) == 0 {
		return results
	}

	tasks := make(chan result.Task[T])
	var wg sync.WaitGroup
	for w := 0; w < p.numWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for task := range tasks {
				// Each worker writes only its own task's slot
				results[task.Index] = result.NewTaskResult(task.Index, p.processor.Process(task.Input))
			}
		}()
	}

	for i := range inputs {
		tasks <- result.Task[T]{Index: i, Input: inputs[i]}
	}
	close(tasks)
	wg.Wait()

	p.logger.Debug("worker pool finished", log.Int("tasks", len(inputs)), log.Int("workers", p.numWorkers))
	return results
}

// Option is a function type for configuring the Pool.
type Option[T any, U any] func(*Pool[T, U])

// WithNumWorkers sets the number of workers in the pool.
func WithNumWorkers[T any, U any](numWorkers int) Option[T, U] {
	return func(p *Pool[T, U]) {
		p.numWorkers = numWorkers
	}
}

// WithLogger sets the logger for the pool.
func WithLogger[T any, U any](logger *log.Log) Option[T, U] {
	return func(p *Pool[T, U]) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// OptimalWorkers computes a worker count for the given task count, based on
// sqrt(numTasks) and limited between 1 and 16.
func OptimalWorkers(numTasks int) int {
	if numTasks <= 0 {
		return 1
	}
	return int(math.Max(1, math.Min(16, math.Sqrt(float64(numTasks)))))
}
