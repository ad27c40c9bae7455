package tui

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/aalvaropc/tempdial/internal/infra/clock"
	"github.com/aalvaropc/tempdial/internal/infra/query"
	"github.com/aalvaropc/tempdial/internal/usecase"
	"github.com/aalvaropc/tempdial/internal/usecase/override"
)

// Screen geometry used to map mouse events onto the slider track:
// outer padding (1,2), header (2 lines + blank), card border and padding,
// then the value line and a blank line above the track.
const (
	sliderRow = 1 + 3 + 1 + 1 + 2
	sliderCol = 2 + 1 + 2
)

type model struct {
	theme Theme
	deps  Deps
	keys  keyMap
	help  help.Model
	spin  spinner.Model

	slider Slider
	state  *usecase.DisplayState

	events   <-chan query.Event
	expiries <-chan override.Expiry
	done     chan struct{}
	stop     context.CancelFunc
	stopOnce *sync.Once

	toast string
}

func Run(deps Deps) error {
	if deps.Logger == nil {
		deps.Logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	if deps.Clock == nil {
		deps.Clock = clock.NewReal()
	}

	deps.Logger.Info("tui.start", "config", deps.ConfigPath, "debug", deps.Debug)

	events, stop := startPolling(deps)
	expiries := make(chan override.Expiry)
	done := make(chan struct{})

	m := newModel(deps, events, expiries, done, stop)
	p := tea.NewProgram(wrapSafe(m, deps.Logger), tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()

	// The program may also end on a signal without passing through Update.
	m.shutdown()
	return err
}

func newModel(
	deps Deps,
	events <-chan query.Event,
	expiries chan override.Expiry,
	done chan struct{},
	stop context.CancelFunc,
) model {
	if deps.Logger == nil {
		deps.Logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	if deps.Clock == nil {
		deps.Clock = clock.NewReal()
	}
	if stop == nil {
		stop = func() {}
	}

	var dispatch override.Dispatch
	if expiries != nil {
		dispatch = expiryDispatch(expiries, done)
	}

	cfg := deps.Config
	timer := override.New(deps.Clock, cfg.Override.Window, dispatch)
	state := usecase.NewDisplayState(timer,
		usecase.WithRange(cfg.Range),
		usecase.WithLoadingMode(cfg.Display.Loading),
		usecase.WithLogger(deps.Logger),
	)

	sp := spinner.New(spinner.WithSpinner(spinner.Dot))

	return model{
		theme:    DefaultTheme(),
		deps:     deps,
		keys:     defaultKeys(),
		help:     help.New(),
		spin:     sp,
		slider:   NewSlider(cfg.Range),
		state:    state,
		events:   events,
		expiries: expiries,
		done:     done,
		stop:     stop,
		stopOnce: &sync.Once{},
	}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(
		m.spin.Tick,
		listenPoller(m.events),
		listenExpiry(m.expiries, m.done),
		tickStatus(),
	)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width - 4
		m.slider = m.slider.Fit(msg.Width - 2*sliderCol)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil

	case pollEventMsg:
		m.applyEvent(query.Event(msg))
		return m, listenPoller(m.events)

	case pollClosedMsg:
		return m, nil

	case overrideExpiredMsg:
		m.state.Expire(override.Expiry(msg))
		return m, listenExpiry(m.expiries, m.done)

	case statusTickMsg:
		if m.state.Closed() {
			return m, nil
		}
		return m, tickStatus()

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	rng := m.deps.Config.Range

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.shutdown()
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Down):
		m.state.Step(-1)
	case key.Matches(msg, m.keys.Up):
		m.state.Step(1)
	case key.Matches(msg, m.keys.PageDown):
		m.state.Step(-5)
	case key.Matches(msg, m.keys.PageUp):
		m.state.Step(5)
	case key.Matches(msg, m.keys.Min):
		m.state.SetValue(rng.Min)
	case key.Matches(msg, m.keys.Max):
		m.state.SetValue(rng.Max)
	default:
		return m, nil
	}

	m.toast = ""
	return m, nil
}

func (m model) handleMouse(msg tea.MouseMsg) {
	if msg.Button != tea.MouseButtonLeft {
		return
	}
	if msg.Action != tea.MouseActionPress && msg.Action != tea.MouseActionMotion {
		return
	}
	if msg.Y != sliderRow {
		return
	}
	col := msg.X - sliderCol
	if col < 0 || col >= m.slider.Width {
		return
	}
	m.state.SetRaw(m.slider.ValueAt(col))
}

func (m model) applyEvent(e query.Event) {
	switch e.Kind {
	case query.EventFetching:
		m.state.BeginFetch()
	case query.EventReading:
		m.state.EndFetch(nil)
		m.state.Observe(e.Reading())
	case query.EventFailed:
		m.state.EndFetch(e.Err)
	}
}

// shutdown tears the display state down and stops background work. Safe to
// call more than once.
func (m model) shutdown() {
	m.stopOnce.Do(func() {
		m.state.Teardown()
		m.stop()
		if m.done != nil {
			close(m.done)
		}
	})
}

func (m model) View() string {
	wrap := lipgloss.NewStyle().Padding(1, 2)
	header := m.theme.Title.Render("tempdial") + "\n" +
		m.theme.Subtitle.Render("live temperature with manual override") + "\n"

	snap := m.state.Snapshot()

	text, busy := RenderTemperature(snap.Loading, snap.Value)
	value := m.theme.Value.Render(text)
	if busy {
		value = m.spin.View()
	}

	body := "Temperature: " + value + "\n\n" +
		m.slider.View(snap.Value.Or(snap.Range.Midpoint()), m.theme) + "\n" +
		m.theme.Help.Render(m.slider.Scale()) + "\n\n" +
		renderStatus(snap, m.theme)

	if snap.LastError != nil {
		body += "\n" + m.theme.Error.Render("⚠ "+clampString(userMessage(snap.LastError), 60))
	}
	if m.toast != "" {
		body += "\n" + m.theme.Error.Render(m.toast)
	}

	footer := m.help.View(m.keys)
	if line := debugLine(m.deps); line != "" {
		footer += "\n" + m.theme.Help.Render(line)
	}

	return wrap.Render(header + "\n" + m.theme.Card.Render(body) + "\n" + footer)
}
