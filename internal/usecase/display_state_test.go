package usecase

import (
	"errors"
	"testing"
	"time"

	"github.com/aalvaropc/tempdial/internal/domain"
	"github.com/aalvaropc/tempdial/internal/infra/clock"
	"github.com/aalvaropc/tempdial/internal/usecase/override"
)

var epoch = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestState(opts ...Option) (*DisplayState, *clock.Fake) {
	c := clock.NewFake(epoch)
	tm := override.New(c, 10*time.Second, nil)
	return NewDisplayState(tm, opts...), c
}

func reading(v int, c *clock.Fake) domain.Reading {
	return domain.NewReading(v, c.Now())
}

func TestDisplayState_UnsetTakesFirstReading(t *testing.T) {
	s, c := newTestState()

	if s.Value().Set {
		t.Fatalf("expected unset value at start")
	}
	if !s.Observe(reading(22, c)) {
		t.Fatalf("expected update signalled")
	}
	if s.Value() != domain.Celsius(22) {
		t.Fatalf("expected 22, got %v", s.Value())
	}
}

func TestDisplayState_SameReadingIsNotAnUpdate(t *testing.T) {
	s, c := newTestState()
	s.Observe(reading(22, c))

	if s.Observe(reading(22, c)) {
		t.Fatalf("expected no update for identical reading")
	}
	if s.Value() != domain.Celsius(22) {
		t.Fatalf("expected 22, got %v", s.Value())
	}
}

func TestDisplayState_ManualEditSuppressesThenResumes(t *testing.T) {
	s, c := newTestState()
	s.Observe(reading(22, c))

	s.SetValue(18)
	if s.Value() != domain.Celsius(18) {
		t.Fatalf("expected 18 immediately, got %v", s.Value())
	}
	if !s.Override() {
		t.Fatalf("expected override active")
	}

	c.Advance(2 * time.Second)
	if s.Observe(reading(25, c)) {
		t.Fatalf("reading during override must be ignored")
	}
	if s.Value() != domain.Celsius(18) {
		t.Fatalf("expected 18 during override, got %v", s.Value())
	}

	c.Advance(8 * time.Second)
	if s.Override() {
		t.Fatalf("expected override cleared 10s after the edit")
	}
	if s.Value() != domain.Celsius(18) {
		t.Fatalf("expiry must not touch the value, got %v", s.Value())
	}

	if !s.Observe(reading(27, c)) {
		t.Fatalf("expected reconciliation to resume")
	}
	if s.Value() != domain.Celsius(27) {
		t.Fatalf("expected 27, got %v", s.Value())
	}
}

func TestDisplayState_ReadingIgnoredDuringOverrideIsNotReplayed(t *testing.T) {
	s, c := newTestState()
	s.Observe(reading(22, c))
	s.SetValue(18)

	s.Observe(reading(25, c))
	c.Advance(10 * time.Second)

	if s.Value() != domain.Celsius(18) {
		t.Fatalf("ignored reading must not be applied on expiry, got %v", s.Value())
	}
	if s.Observe(domain.Reading{}) {
		t.Fatalf("absent reading must not update")
	}
	if s.Value() != domain.Celsius(18) {
		t.Fatalf("expected 18, got %v", s.Value())
	}
}

func TestDisplayState_TeardownStopsAllMutation(t *testing.T) {
	c := clock.NewFake(epoch)

	var queued []override.Expiry
	tm := override.New(c, 10*time.Second, func(e override.Expiry) { queued = append(queued, e) })
	s := NewDisplayState(tm)

	s.SetValue(18)
	s.Teardown()

	c.Advance(time.Minute)
	if len(queued) != 0 {
		t.Fatalf("expected no expiry after teardown, got %d", len(queued))
	}
	if c.Pending() != 0 {
		t.Fatalf("expected no scheduled action after teardown, got %d", c.Pending())
	}

	before := s.Snapshot()
	s.Observe(reading(27, c))
	s.SetValue(11)
	s.Step(1)
	s.BeginFetch()
	s.EndFetch(errors.New("boom"))

	after := s.Snapshot()
	if after.Value != before.Value || after.Override != before.Override || after.LastError != nil {
		t.Fatalf("state changed after teardown: before=%+v after=%+v", before, after)
	}
	if !s.Closed() {
		t.Fatalf("expected closed")
	}
}

func TestDisplayState_ExpiryQueuedBeforeTeardownIsInert(t *testing.T) {
	c := clock.NewFake(epoch)

	var queued []override.Expiry
	tm := override.New(c, 10*time.Second, func(e override.Expiry) { queued = append(queued, e) })
	s := NewDisplayState(tm)

	s.SetValue(18)
	c.Advance(10 * time.Second)
	if len(queued) != 1 {
		t.Fatalf("expected one queued expiry, got %d", len(queued))
	}

	s.Teardown()
	if s.Expire(queued[0]) {
		t.Fatalf("expiry delivered after teardown must be dropped")
	}
	if !s.Override() {
		t.Fatalf("override flag must be left as it was")
	}
}

func TestDisplayState_SetValueClampsAndAlwaysArms(t *testing.T) {
	s, c := newTestState()

	s.SetValue(99)
	if s.Value() != domain.Celsius(30) {
		t.Fatalf("expected clamp to 30, got %v", s.Value())
	}

	c.Advance(9 * time.Second)
	s.SetValue(30) // same value still restarts the window
	c.Advance(9 * time.Second)
	if !s.Override() {
		t.Fatalf("expected override extended by repeated edit")
	}
	c.Advance(time.Second)
	if s.Override() {
		t.Fatalf("expected override cleared")
	}
}

func TestDisplayState_StepAndRaw(t *testing.T) {
	s, _ := newTestState()

	s.Step(1)
	if s.Value() != domain.Celsius(21) {
		t.Fatalf("expected unset to step from midpoint to 21, got %v", s.Value())
	}
	s.Step(-5)
	if s.Value() != domain.Celsius(16) {
		t.Fatalf("expected 16, got %v", s.Value())
	}
	s.SetRaw(24.6)
	if s.Value() != domain.Celsius(25) {
		t.Fatalf("expected raw 24.6 to round to 25, got %v", s.Value())
	}
	s.SetRaw(3)
	if s.Value() != domain.Celsius(10) {
		t.Fatalf("expected raw 3 to clamp to 10, got %v", s.Value())
	}
}

func TestDisplayState_FetchFailureFailsOpen(t *testing.T) {
	s, c := newTestState()
	s.BeginFetch()
	s.EndFetch(nil)
	s.Observe(reading(22, c))

	fetchErr := errors.New("source down")
	s.BeginFetch()
	s.EndFetch(fetchErr)

	snap := s.Snapshot()
	if snap.Value != domain.Celsius(22) {
		t.Fatalf("expected last value kept, got %v", snap.Value)
	}
	if !errors.Is(snap.LastError, fetchErr) {
		t.Fatalf("expected last error recorded, got %v", snap.LastError)
	}

	s.BeginFetch()
	s.EndFetch(nil)
	if s.Snapshot().LastError != nil {
		t.Fatalf("expected error cleared after a successful fetch")
	}
}

func TestDisplayState_LoadingModes(t *testing.T) {
	initial, _ := newTestState()
	always, _ := newTestState(WithLoadingMode(domain.LoadingAlways))

	for _, s := range []*DisplayState{initial, always} {
		if s.Loading() {
			t.Fatalf("expected not loading before any fetch")
		}
		s.BeginFetch()
		if !s.Loading() {
			t.Fatalf("expected loading during first fetch")
		}
		s.EndFetch(nil)
		if s.Loading() {
			t.Fatalf("expected not loading after fetch")
		}
		s.BeginFetch()
	}

	if initial.Loading() {
		t.Fatalf("initial mode must not show loading on background refetch")
	}
	if !always.Loading() {
		t.Fatalf("always mode must show loading on every refetch")
	}
}

func TestDisplayState_SnapshotReportsRemaining(t *testing.T) {
	s, c := newTestState(WithRange(domain.Range{Min: 0, Max: 100}))
	s.SetValue(75)
	c.Advance(4 * time.Second)

	snap := s.Snapshot()
	if snap.Value != domain.Celsius(75) {
		t.Fatalf("expected custom range to allow 75, got %v", snap.Value)
	}
	if !snap.Override || snap.Remaining != 6*time.Second {
		t.Fatalf("expected override with 6s remaining, got %+v", snap)
	}
	if snap.Range.Max != 100 {
		t.Fatalf("expected range in snapshot")
	}
}
