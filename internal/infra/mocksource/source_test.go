package mocksource

import (
	"context"
	"errors"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/aalvaropc/tempdial/internal/domain"
)

func TestFetch_StaysInRangeAndCoversIt(t *testing.T) {
	s := New(WithLatency(0), WithRand(rand.New(rand.NewPCG(1, 2))))

	seen := map[int]bool{}
	for i := 0; i < 2000; i++ {
		v, err := s.Fetch(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if v < 10 || v > 30 {
			t.Fatalf("value %d out of [10,30]", v)
		}
		seen[v] = true
	}
	if len(seen) != 21 {
		t.Fatalf("expected all 21 values to appear, got %d", len(seen))
	}
}

func TestFetch_CustomRange(t *testing.T) {
	s := New(
		WithLatency(0),
		WithRange(domain.Range{Min: -5, Max: -3}),
		WithRand(rand.New(rand.NewPCG(3, 4))),
	)
	for i := 0; i < 100; i++ {
		v, err := s.Fetch(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if v < -5 || v > -3 {
			t.Fatalf("value %d out of range", v)
		}
	}
}

func TestFetch_HonoursContextDuringLatency(t *testing.T) {
	s := New(WithLatency(time.Hour))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := s.Fetch(ctx)
	if err == nil {
		t.Fatalf("expected error")
	}
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}
	if !domain.IsKind(err, domain.KindExecution) {
		t.Fatalf("expected execution kind, got %v", err)
	}
	if time.Since(start) > time.Second {
		t.Fatalf("fetch did not return promptly on cancel")
	}
}

func TestFetch_CancelledContextWithoutLatency(t *testing.T) {
	s := New(WithLatency(0))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := s.Fetch(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestFetch_FailureRate(t *testing.T) {
	s := New(WithLatency(0), WithFailureRate(1))

	_, err := s.Fetch(context.Background())
	if !errors.Is(err, domain.ErrSource) {
		t.Fatalf("expected ErrSource, got %v", err)
	}
	if !domain.IsKind(err, domain.KindSource) {
		t.Fatalf("expected source kind")
	}
}

func TestFetch_WaitsForLatency(t *testing.T) {
	s := New(WithLatency(30 * time.Millisecond))

	start := time.Now()
	if _, err := s.Fetch(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if time.Since(start) < 30*time.Millisecond {
		t.Fatalf("expected fetch to wait for latency")
	}
}
