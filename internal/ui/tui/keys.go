package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Down     key.Binding
	Up       key.Binding
	PageDown key.Binding
	PageUp   key.Binding
	Min      key.Binding
	Max      key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Down:     key.NewBinding(key.WithKeys("left", "h", "down", "j"), key.WithHelp("←/h", "-1°")),
		Up:       key.NewBinding(key.WithKeys("right", "l", "up", "k"), key.WithHelp("→/l", "+1°")),
		PageDown: key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "-5°")),
		PageUp:   key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "+5°")),
		Min:      key.NewBinding(key.WithKeys("home"), key.WithHelp("home", "min")),
		Max:      key.NewBinding(key.WithKeys("end"), key.WithHelp("end", "max")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c", "esc"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Down, k.Up, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Down, k.Up, k.PageDown, k.PageUp},
		{k.Min, k.Max},
		{k.Help, k.Quit},
	}
}
