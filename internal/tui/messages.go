package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/algolds/ixgov/internal/domain"
)

// StateMsg carries a fresh snapshot from the container's subscription
// into the update loop.
type StateMsg struct {
	State domain.UnifiedState
}

// keyMap defines the dashboard keybindings.
type keyMap struct {
	Up         key.Binding
	Down       key.Binding
	NextFamily key.Binding
	PrevFamily key.Binding
	Toggle     key.Binding
	Clear      key.Binding
	Help       key.Binding
	Quit       key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "move down"),
		),
		NextFamily: key.NewBinding(
			key.WithKeys("tab", "l", "right"),
			key.WithHelp("tab", "next family"),
		),
		PrevFamily: key.NewBinding(
			key.WithKeys("shift+tab", "h", "left"),
			key.WithHelp("shift+tab", "previous family"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "toggle component"),
		),
		Clear: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "clear family"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
