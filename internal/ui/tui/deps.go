package tui

import (
	"log/slog"

	"github.com/aalvaropc/tempdial/internal/domain"
	"github.com/aalvaropc/tempdial/internal/ports"
)

type Deps struct {
	Config domain.Config
	Source ports.ReadingSource
	Clock  ports.Clock

	ConfigPath string

	Logger *slog.Logger
	Debug  bool

	// LogPath and Session are shown in the footer in debug mode.
	LogPath string
	Session string
}
