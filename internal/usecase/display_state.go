package usecase

import (
	"io"
	"log/slog"
	"time"

	"github.com/aalvaropc/tempdial/internal/domain"
	"github.com/aalvaropc/tempdial/internal/usecase/override"
	"github.com/aalvaropc/tempdial/internal/usecase/reconcile"
)

// Snapshot is what the presentation layer renders.
type Snapshot struct {
	Value       domain.Temperature
	Range       domain.Range
	Override    bool
	Remaining   time.Duration
	Loading     bool
	LastReading domain.Reading
	LastError   error
}

// DisplayState drives the reconcile policy and the override timer against
// incoming readings and user input. It is not safe for concurrent use: one
// event loop owns it and calls every method.
type DisplayState struct {
	rng   domain.Range
	mode  domain.LoadingMode
	timer *override.Timer
	log   *slog.Logger

	value    domain.Temperature
	last     domain.Reading
	fetching bool
	received bool
	lastErr  error
	closed   bool
}

type Option func(*DisplayState)

func WithRange(r domain.Range) Option {
	return func(s *DisplayState) { s.rng = r }
}

func WithLoadingMode(m domain.LoadingMode) Option {
	return func(s *DisplayState) { s.mode = m }
}

func WithLogger(l *slog.Logger) Option {
	return func(s *DisplayState) {
		if l != nil {
			s.log = l
		}
	}
}

func NewDisplayState(timer *override.Timer, opts ...Option) *DisplayState {
	s := &DisplayState{
		rng:   domain.DefaultRange(),
		mode:  domain.LoadingInitial,
		timer: timer,
		log:   slog.New(slog.NewJSONHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Observe feeds one reading through the policy. Readings that arrive while
// the override is active are dropped, not kept for later. It reports whether
// the displayed value changed.
func (s *DisplayState) Observe(r domain.Reading) bool {
	if s.closed {
		return false
	}
	if r.Present {
		s.last = r
	}

	if s.timer.Active() {
		s.log.Debug("reading.ignored",
			"value", r.Value,
			"reason", "override",
			"remaining_ms", s.timer.Remaining().Milliseconds(),
		)
		return false
	}

	if !reconcile.Changed(s.value, r) {
		return false
	}

	prev := s.value
	s.value = reconcile.Apply(s.value, r)
	s.log.Info("reading.applied", "from", prev.String(), "to", s.value.String())
	return true
}

// SetValue assigns a user-chosen value and (re)starts the override window.
func (s *DisplayState) SetValue(v int) {
	if s.closed {
		return
	}
	s.value = domain.Celsius(s.rng.Clamp(v))
	s.timer.Arm()
	s.log.Info("override.armed",
		"value", s.value.Value,
		"window_ms", s.timer.Window().Milliseconds(),
	)
}

// SetRaw is the slider entry point: raw positions are rounded to an integer step.
func (s *DisplayState) SetRaw(raw float64) {
	s.SetValue(s.rng.Round(raw))
}

// Step nudges the value by delta. An unset value starts from the range midpoint.
func (s *DisplayState) Step(delta int) {
	s.SetValue(s.value.Or(s.rng.Midpoint()) + delta)
}

// Expire applies an override expiry delivered to the loop.
func (s *DisplayState) Expire(e override.Expiry) bool {
	if s.closed {
		return false
	}
	if !s.timer.Expire(e) {
		return false
	}
	s.log.Info("override.expired", "value", s.value.String())
	return true
}

// BeginFetch marks the source as fetching.
func (s *DisplayState) BeginFetch() {
	if s.closed {
		return
	}
	s.fetching = true
}

// EndFetch records the outcome of a fetch. A failure keeps the current value.
func (s *DisplayState) EndFetch(err error) {
	if s.closed {
		return
	}
	s.fetching = false
	if err != nil {
		s.lastErr = err
		s.log.Warn("fetch.failed", "err", err, "showing", s.value.String())
		return
	}
	s.lastErr = nil
	s.received = true
}

// Loading reports whether the busy indicator should be shown for the fetch state.
func (s *DisplayState) Loading() bool {
	switch s.mode {
	case domain.LoadingAlways:
		return s.fetching
	default:
		return s.fetching && !s.received
	}
}

// Teardown cancels the override window. Every later call is a no-op.
func (s *DisplayState) Teardown() {
	if s.closed {
		return
	}
	s.closed = true
	s.timer.Cancel()
	s.log.Info("display.teardown", "value", s.value.String())
}

func (s *DisplayState) Closed() bool {
	return s.closed
}

func (s *DisplayState) Value() domain.Temperature {
	return s.value
}

func (s *DisplayState) Override() bool {
	return s.timer.Active()
}

func (s *DisplayState) Snapshot() Snapshot {
	return Snapshot{
		Value:       s.value,
		Range:       s.rng,
		Override:    s.timer.Active(),
		Remaining:   s.timer.Remaining(),
		Loading:     s.Loading(),
		LastReading: s.last,
		LastError:   s.lastErr,
	}
}
