package tui

import (
	"math"
	"strconv"
	"strings"

	"github.com/aalvaropc/tempdial/internal/domain"
)

const (
	defaultTrackWidth = 41
	minTrackWidth     = 11
)

// Slider is a horizontal track over a closed integer range.
type Slider struct {
	Range domain.Range
	Width int
}

func NewSlider(r domain.Range) Slider {
	return Slider{Range: r, Width: defaultTrackWidth}
}

// Fit shrinks the track to the available columns.
func (s Slider) Fit(avail int) Slider {
	w := defaultTrackWidth
	if avail < w {
		w = avail
	}
	if w < minTrackWidth {
		w = minTrackWidth
	}
	s.Width = w
	return s
}

// Column is the track cell holding value v.
func (s Slider) Column(v int) int {
	span := s.Range.Span()
	if span <= 0 || s.Width <= 1 {
		return 0
	}
	v = s.Range.Clamp(v)
	pos := float64(v-s.Range.Min) / float64(span) * float64(s.Width-1)
	return int(math.Round(pos))
}

// ValueAt maps a track column to a continuous position in the range.
func (s Slider) ValueAt(col int) float64 {
	if s.Width <= 1 {
		return float64(s.Range.Min)
	}
	if col < 0 {
		col = 0
	}
	if col > s.Width-1 {
		col = s.Width - 1
	}
	return float64(s.Range.Min) + float64(col)/float64(s.Width-1)*float64(s.Range.Span())
}

func (s Slider) View(v int, th Theme) string {
	knob := s.Column(v)

	var b strings.Builder
	b.WriteString(th.TrackFilled.Render(strings.Repeat("━", knob)))
	b.WriteString(th.Knob.Render("●"))
	b.WriteString(th.TrackEmpty.Render(strings.Repeat("─", s.Width-knob-1)))
	return b.String()
}

// Scale labels both ends of the track.
func (s Slider) Scale() string {
	lo := strconv.Itoa(s.Range.Min)
	hi := strconv.Itoa(s.Range.Max)
	gap := s.Width - len(lo) - len(hi)
	if gap < 1 {
		gap = 1
	}
	return lo + strings.Repeat(" ", gap) + hi
}
