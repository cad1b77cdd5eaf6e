package dispatcher

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/abhissng/versename/adapters/log"
	"github.com/abhissng/versename/blame"
	"github.com/abhissng/versename/result"
)

// Run dispatches every input through the processor and blocks until all of
// them have settled. The returned slice has the same length and order as the
// inputs: entry i always holds the outcome for inputs[i], whatever order the
// tasks finished in. A single task failing never aborts the batch.
func (d *Dispatcher[T, U]) Run(inputs []T) []result.TaskResult[U] {
	results := make([]result.TaskResult[U], len(inputs))
	if len(inputs) == 0 {
		return results
	}

	runID := uuid.NewString()
	started := time.Now()
	d.logger.Info("batch started",
		log.String("run_id", runID),
		log.Int("tasks", len(inputs)),
		log.Int("rpm", d.rpm),
		log.Int("max_concurrent", d.maxConcurrent),
	)

	var wg sync.WaitGroup
	for i := range inputs {
		// Both gates must agree before a task starts. Admission order is the
		// submission order: tasks are walked FIFO by this single goroutine.
		d.acquireConcurrencySlot()
		d.acquireRateSlot()

		wg.Add(1)
		go func(index int, input T) {
			defer wg.Done()
			out := d.invoke(index, input)
			results[index] = result.NewTaskResult(index, out)
			d.settle(runID, out)
		}(i, inputs[i])
	}
	wg.Wait()

	d.logger.Info("batch finished",
		log.String("run_id", runID),
		log.Int("tasks", len(inputs)),
		log.Duration("elapsed", time.Since(started)),
	)
	return results
}

// acquireConcurrencySlot blocks until fewer than maxConcurrent tasks are in
// flight, then claims a slot.
func (d *Dispatcher[T, U]) acquireConcurrencySlot() {
	d.mu.Lock()
	defer d.mu.Unlock()
	for d.active >= d.maxConcurrent {
		d.slotFree.Wait()
	}
	d.active++
}

// acquireRateSlot blocks until the sliding window permits another call-start
// and records the start. The wait is a bounded loop: after every sleep the
// window is re-evaluated, because the slot observed before sleeping may be
// gone by the time we wake.
func (d *Dispatcher[T, U]) acquireRateSlot() {
	for {
		d.mu.Lock()
		wait := d.window.timeUntilNextSlot(time.Now())
		if wait == 0 {
			d.window.recordStart(time.Now())
			d.mu.Unlock()
			return
		}
		d.mu.Unlock()

		d.logger.Debug("rate window full; waiting for a slot", log.Duration("wait", wait))
		time.Sleep(wait)
	}
}

// invoke runs the processor for one input. A panicking processor settles as a
// failure at that index instead of tearing the batch down.
func (d *Dispatcher[T, U]) invoke(index int, input T) (out result.Result[U]) {
	defer func() {
		if r := recover(); r != nil {
			out = result.NewFailure[U](blame.TaskPanicked(index, r))
		}
	}()
	return d.processor.Process(input)
}

// settle releases the task's concurrency slot and applies backpressure when
// the failure was a throttle signal: one throttled call means the service is
// globally overloaded, so all new admissions pause, not just this task's.
func (d *Dispatcher[T, U]) settle(runID string, out result.Result[U]) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.active--
	if out.IsError() {
		if b := out.Error(); blame.IsThrottled(b) {
			delay := b.FetchRetryAfter()
			if delay <= 0 {
				delay = blame.DefaultRetryAfter
			}
			d.window.blockUntil(time.Now().Add(delay))
			d.logger.Warn("throttle signal received; pausing all admissions",
				log.String("run_id", runID),
				log.Duration("retry_after", delay),
			)
		}
	}
	d.slotFree.Signal()
}

// RunBatch builds a dispatcher for the given processor and runs one batch.
// It fails as a whole only for invalid configuration; per-task failures are
// reported inside the returned results.
func RunBatch[T any, U any](processor result.TaskProcessor[T, U], inputs []T, options ...Option[T, U]) ([]result.TaskResult[U], blame.Blame) {
	d, err := NewDispatcher(processor, options...)
	if err != nil {
		return nil, err
	}
	return d.Run(inputs), nil
}
