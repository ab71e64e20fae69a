package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap declares the demo's key bindings for bubbles/help.
type keyMap struct {
	PlayPause key.Binding
	Boost     key.Binding
	Quit      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		PlayPause: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "play/pause"),
		),
		Boost: key.NewBinding(
			key.WithKeys("up", "down"),
			key.WithHelp("↑/↓ or wheel", "speed boost"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.PlayPause, k.Boost, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.PlayPause, k.Boost, k.Quit}}
}
