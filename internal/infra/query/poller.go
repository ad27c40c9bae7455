// Package query polls a reading source on a fixed interval and retries
// failed fetches with exponential backoff before reporting them.
package query

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/aalvaropc/tempdial/internal/domain"
	"github.com/aalvaropc/tempdial/internal/ports"
)

type EventKind int

const (
	EventFetching EventKind = iota
	EventReading
	EventFailed
)

func (k EventKind) String() string {
	switch k {
	case EventFetching:
		return "fetching"
	case EventReading:
		return "reading"
	case EventFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Event is one observation emitted by the poller. Every EventFetching is
// followed by exactly one EventReading or EventFailed unless the context ends.
type Event struct {
	Kind     EventKind
	Value    int
	Err      error
	At       time.Time
	Attempts int
}

// Reading converts a reading event to a domain reading; other events are absent.
func (e Event) Reading() domain.Reading {
	if e.Kind != EventReading {
		return domain.Reading{}
	}
	return domain.NewReading(e.Value, e.At)
}

type Config struct {
	Interval time.Duration
	Timeout  time.Duration
	Retries  int

	BackoffBase time.Duration
	BackoffMax  time.Duration
}

func DefaultConfig() Config {
	return Config{
		Interval:    5 * time.Second,
		Timeout:     10 * time.Second,
		Retries:     3,
		BackoffBase: 1 * time.Second,
		BackoffMax:  30 * time.Second,
	}
}

type Poller struct {
	src  ports.ReadingSource
	cfg  Config
	log  *slog.Logger
	now  func() time.Time
	wait func(ctx context.Context, d time.Duration) error
}

type Option func(*Poller)

func WithLogger(l *slog.Logger) Option {
	return func(p *Poller) {
		if l != nil {
			p.log = l
		}
	}
}

// WithNow is useful for tests.
func WithNow(now func() time.Time) Option {
	return func(p *Poller) { p.now = now }
}

// WithWait replaces the backoff sleep; useful for tests.
func WithWait(wait func(ctx context.Context, d time.Duration) error) Option {
	return func(p *Poller) { p.wait = wait }
}

func New(src ports.ReadingSource, cfg Config, opts ...Option) *Poller {
	def := DefaultConfig()
	if cfg.Interval <= 0 {
		cfg.Interval = def.Interval
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = def.Timeout
	}
	if cfg.Retries < 0 {
		cfg.Retries = 0
	}
	if cfg.BackoffBase <= 0 {
		cfg.BackoffBase = def.BackoffBase
	}
	if cfg.BackoffMax <= 0 {
		cfg.BackoffMax = def.BackoffMax
	}

	p := &Poller{
		src:  src,
		cfg:  cfg,
		log:  slog.New(slog.NewJSONHandler(io.Discard, nil)),
		now:  time.Now,
		wait: sleepCtx,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Run fetches immediately and then once per interval until ctx ends.
// onEvent is called from the Run goroutine. Run always returns ctx.Err().
func (p *Poller) Run(ctx context.Context, onEvent func(Event)) error {
	tick := time.NewTicker(p.cfg.Interval)
	defer tick.Stop()

	for {
		p.fetch(ctx, onEvent)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-tick.C:
		}
	}
}

func (p *Poller) fetch(ctx context.Context, onEvent func(Event)) {
	if ctx.Err() != nil {
		return
	}
	onEvent(Event{Kind: EventFetching, At: p.now()})

	for attempt := 0; ; attempt++ {
		actx, cancel := context.WithTimeout(ctx, p.cfg.Timeout)
		v, err := p.src.Fetch(actx)
		cancel()

		if err == nil {
			p.log.Debug("fetch.ok", "value", v, "attempts", attempt+1)
			onEvent(Event{Kind: EventReading, Value: v, At: p.now(), Attempts: attempt + 1})
			return
		}
		if ctx.Err() != nil {
			return
		}
		if attempt >= p.cfg.Retries || !domain.Retryable(err) {
			p.log.Warn("fetch.gave_up", "err", err, "attempts", attempt+1, "retryable", domain.Retryable(err))
			onEvent(Event{
				Kind: EventFailed,
				Err: &domain.OpError{
					Op:   "query.fetch",
					Kind: domain.KindSource,
					Err:  err,
				},
				At:       p.now(),
				Attempts: attempt + 1,
			})
			return
		}

		delay := p.Backoff(attempt)
		p.log.Debug("fetch.retry", "err", err, "attempt", attempt+1, "delay_ms", delay.Milliseconds())
		if p.wait(ctx, delay) != nil {
			return
		}
	}
}

// Backoff is the delay before retry number attempt+1: base*2^attempt, capped.
func (p *Poller) Backoff(attempt int) time.Duration {
	d := p.cfg.BackoffBase
	for i := 0; i < attempt; i++ {
		d *= 2
		if d >= p.cfg.BackoffMax {
			return p.cfg.BackoffMax
		}
	}
	if d > p.cfg.BackoffMax {
		return p.cfg.BackoffMax
	}
	return d
}

// Subscribe runs p in a goroutine and streams its events. The channel is
// closed once ctx ends and Run has returned.
func Subscribe(ctx context.Context, p *Poller) <-chan Event {
	ch := make(chan Event, 8)
	go func() {
		defer close(ch)
		_ = p.Run(ctx, func(e Event) {
			select {
			case ch <- e:
			case <-ctx.Done():
			}
		})
	}()
	return ch
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
