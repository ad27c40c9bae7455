// Package mocksource is a stand-in temperature sensor: after a fixed delay it
// returns a uniformly random integer in the configured range.
package mocksource

import (
	"context"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/aalvaropc/tempdial/internal/domain"
	"github.com/aalvaropc/tempdial/internal/ports"
)

const DefaultLatency = time.Second

type Source struct {
	rng         domain.Range
	latency     time.Duration
	failureRate float64

	mu   sync.Mutex
	rand *rand.Rand
}

type Option func(*Source)

func WithRange(r domain.Range) Option {
	return func(s *Source) { s.rng = r }
}

func WithLatency(d time.Duration) Option {
	return func(s *Source) { s.latency = d }
}

// WithFailureRate makes a share of fetches fail with domain.ErrSource.
func WithFailureRate(p float64) Option {
	return func(s *Source) { s.failureRate = p }
}

// WithRand is useful for tests.
func WithRand(r *rand.Rand) Option {
	return func(s *Source) { s.rand = r }
}

func New(opts ...Option) *Source {
	s := &Source{
		rng:     domain.DefaultRange(),
		latency: DefaultLatency,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rand == nil {
		s.rand = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0x7e3d))
	}
	return s
}

var _ ports.ReadingSource = (*Source)(nil)

func (s *Source) Fetch(ctx context.Context) (int, error) {
	if s.latency > 0 {
		t := time.NewTimer(s.latency)
		defer t.Stop()

		select {
		case <-ctx.Done():
			return 0, &domain.OpError{
				Op:   "mocksource.fetch",
				Kind: domain.KindExecution,
				Err:  ctx.Err(),
			}
		case <-t.C:
		}
	} else if err := ctx.Err(); err != nil {
		return 0, &domain.OpError{
			Op:   "mocksource.fetch",
			Kind: domain.KindExecution,
			Err:  err,
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.failureRate > 0 && s.rand.Float64() < s.failureRate {
		return 0, &domain.OpError{
			Op:   "mocksource.fetch",
			Kind: domain.KindSource,
			Err:  domain.ErrSource,
		}
	}
	return s.rng.Min + s.rand.IntN(s.rng.Span()+1), nil
}
