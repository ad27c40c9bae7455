package tui

import (
	"context"
	"errors"
	"path/filepath"
	"strings"

	"github.com/aalvaropc/tempdial/internal/domain"
)

func userMessage(err error) string {
	if err == nil {
		return ""
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return "Sensor timed out, showing last value"
	}

	var oe *domain.OpError
	if errors.As(err, &oe) {
		switch oe.Kind {
		case domain.KindSource:
			return "Sensor unavailable, showing last value"

		case domain.KindInvalidConfig:
			base := "config"
			if strings.TrimSpace(oe.Path) != "" {
				base = filepath.Base(oe.Path)
			}
			return "Invalid config at " + base

		case domain.KindNotFound:
			return "Not found"

		default:
			return "Unexpected error (see logs)"
		}
	}

	return "Unexpected error (see logs)"
}
