// Package override implements the manual-override window: a single-slot
// scheduled action bound to one flag.
//
// A Timer is owned by one event loop. Arm, Cancel and Expire must be called
// from that loop; only the scheduled callback runs elsewhere, and it touches
// nothing but the Dispatch func it was given. Every armed slot carries a
// generation. Expire drops anything that is not the current generation, so an
// expiry already queued on the loop when Cancel or a re-Arm happens is inert.
package override

import (
	"time"

	"github.com/aalvaropc/tempdial/internal/ports"
)

// DefaultWindow is how long automatic updates stay suppressed after a manual edit.
const DefaultWindow = 10 * time.Second

// Expiry is posted to the owning loop when a window elapses.
type Expiry struct {
	gen uint64
}

// Dispatch hands an Expiry to the owning loop. It may be called from any goroutine.
type Dispatch func(Expiry)

// Timer is the single-slot override window.
type Timer struct {
	clock    ports.Clock
	window   time.Duration
	dispatch Dispatch

	active   bool
	slot     ports.Stopper
	gen      uint64
	deadline time.Time
}

// New creates an idle timer. A nil dispatch delivers expiries straight to
// Expire, which is only correct when the clock fires on the owner's goroutine
// (clock.Fake).
func New(clock ports.Clock, window time.Duration, dispatch Dispatch) *Timer {
	if window <= 0 {
		window = DefaultWindow
	}
	t := &Timer{
		clock:    clock,
		window:   window,
		dispatch: dispatch,
	}
	if t.dispatch == nil {
		t.dispatch = func(e Expiry) { t.Expire(e) }
	}
	return t
}

// Arm cancels any pending expiry, raises the flag and schedules a fresh
// expiry one full window from now.
func (t *Timer) Arm() {
	t.stopSlot()

	t.gen++
	gen := t.gen
	dispatch := t.dispatch

	t.active = true
	t.deadline = t.clock.Now().Add(t.window)
	t.slot = t.clock.AfterFunc(t.window, func() {
		dispatch(Expiry{gen: gen})
	})
}

// Cancel drops any pending expiry without touching the flag.
func (t *Timer) Cancel() {
	t.stopSlot()
	t.gen++
}

// Expire applies a delivered expiry. It reports whether the flag was cleared;
// stale or cancelled expiries are ignored.
func (t *Timer) Expire(e Expiry) bool {
	if t.slot == nil || e.gen != t.gen {
		return false
	}
	t.slot = nil
	t.deadline = time.Time{}
	t.active = false
	return true
}

// Active reports the override flag.
func (t *Timer) Active() bool {
	return t.active
}

// Pending reports whether an expiry is scheduled.
func (t *Timer) Pending() bool {
	return t.slot != nil
}

// Remaining is the time left on the pending window, never negative.
func (t *Timer) Remaining() time.Duration {
	if t.slot == nil {
		return 0
	}
	d := t.deadline.Sub(t.clock.Now())
	if d < 0 {
		return 0
	}
	return d
}

func (t *Timer) Window() time.Duration {
	return t.window
}

func (t *Timer) stopSlot() {
	if t.slot != nil {
		t.slot.Stop()
		t.slot = nil
	}
	t.deadline = time.Time{}
}
