package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/aalvaropc/tempdial/internal/infra/query"
	"github.com/aalvaropc/tempdial/internal/usecase/override"
)

// startPolling runs the poller until the returned cancel func is called.
func startPolling(deps Deps) (<-chan query.Event, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())

	cfg := deps.Config.Source
	p := query.New(deps.Source, query.Config{
		Interval: cfg.Interval,
		Timeout:  cfg.Timeout,
		Retries:  cfg.Retries,
	}, query.WithLogger(deps.Logger))

	deps.Logger.Info("poll.start",
		"interval_ms", cfg.Interval.Milliseconds(),
		"retries", cfg.Retries,
	)
	return query.Subscribe(ctx, p), cancel
}

func listenPoller(ch <-chan query.Event) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		e, ok := <-ch
		if !ok {
			return pollClosedMsg{}
		}
		return pollEventMsg(e)
	}
}

// expiryDispatch hands override expiries from timer goroutines to the
// program loop; sends are abandoned once done is closed.
func expiryDispatch(ch chan<- override.Expiry, done <-chan struct{}) override.Dispatch {
	return func(e override.Expiry) {
		select {
		case ch <- e:
		case <-done:
		}
	}
}

func listenExpiry(ch <-chan override.Expiry, done <-chan struct{}) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case e := <-ch:
			return overrideExpiredMsg(e)
		case <-done:
			return nil
		}
	}
}

// tickStatus refreshes the override countdown.
func tickStatus() tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg { return statusTickMsg{} })
}
