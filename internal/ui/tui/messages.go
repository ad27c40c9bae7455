package tui

import (
	"github.com/aalvaropc/tempdial/internal/infra/query"
	"github.com/aalvaropc/tempdial/internal/usecase/override"
)

type pollEventMsg query.Event

type pollClosedMsg struct{}

type overrideExpiredMsg override.Expiry

type statusTickMsg struct{}
