package domain

import (
	"fmt"
	"math"
	"time"
)

// Reading is one sample delivered by a reading source.
// Present=false means the source has not produced data yet.
type Reading struct {
	Value   int
	Present bool
	At      time.Time
}

// NewReading builds a present reading.
func NewReading(v int, at time.Time) Reading {
	return Reading{Value: v, Present: true, At: at}
}

// Temperature is the value shown to the user. The zero value is unset.
type Temperature struct {
	Value int
	Set   bool
}

// Celsius returns a set temperature.
func Celsius(v int) Temperature {
	return Temperature{Value: v, Set: true}
}

// Equal reports whether both temperatures are set with the same value,
// or both are unset.
func (t Temperature) Equal(o Temperature) bool {
	if !t.Set || !o.Set {
		return t.Set == o.Set
	}
	return t.Value == o.Value
}

// Or returns the value, or fallback when unset.
func (t Temperature) Or(fallback int) int {
	if !t.Set {
		return fallback
	}
	return t.Value
}

func (t Temperature) String() string {
	if !t.Set {
		return "unset"
	}
	return fmt.Sprintf("%d°C", t.Value)
}

// Range is the closed interval of values the slider can produce.
type Range struct {
	Min int
	Max int
}

// DefaultRange is the domain of both the mock source and the slider.
func DefaultRange() Range {
	return Range{Min: 10, Max: 30}
}

// Clamp forces v into [Min, Max].
func (r Range) Clamp(v int) int {
	if v < r.Min {
		return r.Min
	}
	if v > r.Max {
		return r.Max
	}
	return v
}

// Round converts a continuous slider position to an integer step in range.
func (r Range) Round(raw float64) int {
	if math.IsNaN(raw) {
		return r.Min
	}
	// Clamp before converting: int() of an out-of-range float is undefined.
	raw = math.Max(float64(r.Min), math.Min(float64(r.Max), raw))
	return r.Clamp(int(math.Round(raw)))
}

// Span is Max-Min.
func (r Range) Span() int {
	return r.Max - r.Min
}

// Midpoint is where the slider rests while no value is set.
func (r Range) Midpoint() int {
	return r.Min + r.Span()/2
}
