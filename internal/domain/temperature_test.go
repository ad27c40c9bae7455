package domain

import (
	"math"
	"testing"
	"time"
)

func TestTemperatureEqual(t *testing.T) {
	cases := []struct {
		a, b Temperature
		want bool
	}{
		{Temperature{}, Temperature{}, true},
		{Celsius(22), Celsius(22), true},
		{Celsius(22), Celsius(18), false},
		{Temperature{}, Celsius(0), false},
		{Temperature{Value: 5}, Temperature{}, true},
	}
	for _, c := range cases {
		if got := c.a.Equal(c.b); got != c.want {
			t.Errorf("%v.Equal(%v) = %v, want %v", c.a, c.b, got, c.want)
		}
	}
}

func TestTemperatureStringAndOr(t *testing.T) {
	if got := Celsius(21).String(); got != "21°C" {
		t.Fatalf("expected 21°C, got %q", got)
	}
	if got := (Temperature{}).String(); got != "unset" {
		t.Fatalf("expected unset, got %q", got)
	}
	if got := (Temperature{}).Or(20); got != 20 {
		t.Fatalf("expected fallback 20, got %d", got)
	}
	if got := Celsius(12).Or(20); got != 12 {
		t.Fatalf("expected 12, got %d", got)
	}
}

func TestRangeRound(t *testing.T) {
	r := DefaultRange()
	cases := []struct {
		raw  float64
		want int
	}{
		{10, 10},
		{17.4, 17},
		{17.5, 18},
		{29.6, 30},
		{31, 30},
		{-4, 10},
		{math.NaN(), 10},
		{math.Inf(1), 30},
		{math.Inf(-1), 10},
		{1e19, 30},
		{1e300, 30},
		{-1e19, 10},
		{-math.MaxFloat64, 10},
	}
	for _, c := range cases {
		if got := r.Round(c.raw); got != c.want {
			t.Errorf("Round(%v) = %d, want %d", c.raw, got, c.want)
		}
	}
}

func TestRangeHelpers(t *testing.T) {
	r := DefaultRange()
	if r.Midpoint() != 20 {
		t.Fatalf("expected midpoint 20, got %d", r.Midpoint())
	}
	if r.Span() != 20 {
		t.Fatalf("expected span 20, got %d", r.Span())
	}
	if r.Clamp(5) != 10 || r.Clamp(35) != 30 || r.Clamp(22) != 22 {
		t.Fatalf("unexpected Clamp results")
	}
}

func TestNewReading(t *testing.T) {
	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	r := NewReading(22, at)
	if !r.Present || r.Value != 22 || !r.At.Equal(at) {
		t.Fatalf("unexpected reading %+v", r)
	}
	if (Reading{}).Present {
		t.Fatalf("zero reading must be absent")
	}
}
