package dispatcher

import (
	"time"
)

// rateWindow tracks the instants recent calls started at and decides when the
// next call may start. It also carries the global backpressure cooldown as an
// explicit blockedUntil instant, kept separate from the real sample history so
// a cooldown never corrupts rate accounting.
//
// The window is not safe for concurrent use; callers hold the dispatcher lock.
type rateWindow struct {
	limit        int           // max call-starts per span
	span         time.Duration // trailing interval length
	buffer       time.Duration // safety margin added to every non-zero wait
	samples      []time.Time   // time-ordered call-start instants inside the span
	blockedUntil time.Time     // no admissions before this instant
}

func newRateWindow(limit int, span, buffer time.Duration) *rateWindow {
	return &rateWindow{
		limit:   limit,
		span:    span,
		buffer:  buffer,
		samples: make([]time.Time, 0, limit),
	}
}

// timeUntilNextSlot returns 0 when a call may start now, otherwise how long
// the caller should wait before re-checking. Waiters must re-evaluate after
// waking: another waiter may have taken the slot in the meantime.
func (w *rateWindow) timeUntilNextSlot(now time.Time) time.Duration {
	if now.Before(w.blockedUntil) {
		return w.blockedUntil.Sub(now) + w.buffer
	}

	w.prune(now)
	if len(w.samples) < w.limit {
		return 0
	}
	// Full window: the slot frees once the oldest sample ages out.
	return w.samples[0].Add(w.span).Sub(now) + w.buffer
}

// recordStart inserts now into the window. Only call immediately after
// observing a zero wait under the same lock.
func (w *rateWindow) recordStart(now time.Time) {
	w.samples = append(w.samples, now)
}

// blockUntil denies all admissions before t. The cooldown only ever moves
// forward; an earlier signal never shortens a later one.
func (w *rateWindow) blockUntil(t time.Time) {
	if t.After(w.blockedUntil) {
		w.blockedUntil = t
	}
}

// prune drops samples older than the span from now.
func (w *rateWindow) prune(now time.Time) {
	cutoff := now.Add(-w.span)
	idx := 0
	for idx < len(w.samples) && !w.samples[idx].After(cutoff) {
		idx++
	}
	if idx > 0 {
		w.samples = append(w.samples[:0], w.samples[idx:]...)
	}
}
