package dispatcher

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWindowAllowsBelowLimit(t *testing.T) {
	now := time.Now()
	w := newRateWindow(3, time.Minute, 100*time.Millisecond)

	assert.Zero(t, w.timeUntilNextSlot(now))
	w.recordStart(now)
	w.recordStart(now)
	assert.Zero(t, w.timeUntilNextSlot(now))
}

func TestWindowDeniesWhenFull(t *testing.T) {
	now := time.Now()
	w := newRateWindow(2, time.Minute, 100*time.Millisecond)

	w.recordStart(now.Add(-40 * time.Second))
	w.recordStart(now.Add(-10 * time.Second))

	// The oldest sample frees its slot 20s from now, plus the safety buffer.
	wait := w.timeUntilNextSlot(now)
	assert.Equal(t, 20*time.Second+100*time.Millisecond, wait)
}

func TestWindowPrunesExpiredSamples(t *testing.T) {
	now := time.Now()
	w := newRateWindow(2, time.Minute, 100*time.Millisecond)

	w.recordStart(now.Add(-2 * time.Minute))
	w.recordStart(now.Add(-90 * time.Second))
	w.recordStart(now.Add(-5 * time.Second))

	assert.Zero(t, w.timeUntilNextSlot(now))
	assert.Len(t, w.samples, 1)
}

func TestWindowBlockedUntilOverridesHistory(t *testing.T) {
	now := time.Now()
	w := newRateWindow(5, time.Minute, 100*time.Millisecond)

	// An empty window would admit immediately; the cooldown must still deny.
	w.blockUntil(now.Add(2 * time.Second))
	wait := w.timeUntilNextSlot(now)
	assert.Equal(t, 2*time.Second+100*time.Millisecond, wait)

	// Cooldown expired: back to normal accounting, history untouched.
	later := now.Add(3 * time.Second)
	assert.Zero(t, w.timeUntilNextSlot(later))
	assert.Empty(t, w.samples)
}

func TestWindowBlockedUntilOnlyMovesForward(t *testing.T) {
	now := time.Now()
	w := newRateWindow(1, time.Minute, 100*time.Millisecond)

	w.blockUntil(now.Add(5 * time.Second))
	w.blockUntil(now.Add(1 * time.Second))

	assert.Equal(t, now.Add(5*time.Second), w.blockedUntil)
}
