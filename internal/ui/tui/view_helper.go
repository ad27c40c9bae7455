package tui

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/aalvaropc/tempdial/internal/domain"
	"github.com/aalvaropc/tempdial/internal/usecase"
)

// RenderTemperature returns the temperature text, or busy=true when a busy
// indicator should be shown instead.
func RenderTemperature(loading bool, t domain.Temperature) (text string, busy bool) {
	if loading || !t.Set {
		return "", true
	}
	return fmt.Sprintf("%d°C", t.Value), false
}

func clampString(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))

	n := 0
	for _, r := range s {
		if n >= maxLen {
			break
		}
		b.WriteRune(r)
		n++
	}
	return b.String() + "…"
}

func renderStatus(s usecase.Snapshot, th Theme) string {
	if s.Override {
		secs := int((s.Remaining + time.Second - 1) / time.Second)
		return th.Manual.Render(fmt.Sprintf("manual override · %ds left", secs))
	}

	line := th.Auto.Render("auto")
	if s.LastReading.Present {
		line += th.Help.Render(fmt.Sprintf(" · last reading %d°C at %s",
			s.LastReading.Value,
			s.LastReading.At.Format("15:04:05"),
		))
	}
	return line
}

// debugLine points at the log file of this run; empty outside debug mode.
func debugLine(d Deps) string {
	if !d.Debug || d.LogPath == "" {
		return ""
	}
	line := "log " + d.LogPath
	if d.Session != "" {
		sess := d.Session
		if len(sess) > 8 {
			sess = sess[:8]
		}
		line += " · session " + sess
	}
	return line
}
