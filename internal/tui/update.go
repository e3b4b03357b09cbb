package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles key input and snapshot delivery.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case StateMsg:
		m.state = msg.State
		return m, m.waitForUpdate()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.unsubscribe()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.currentKinds())-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.NextFamily):
		m.familyIndex = (m.familyIndex + 1) % len(families)
		m.cursor = 0

	case key.Matches(msg, m.keys.PrevFamily):
		m.familyIndex = (m.familyIndex + len(families) - 1) % len(families)
		m.cursor = 0

	case key.Matches(msg, m.keys.Toggle):
		kinds := m.currentKinds()
		if m.cursor < len(kinds) {
			kind := kinds[m.cursor]
			if m.selectionFor(m.currentFamily()).Contains(kind) {
				m.container.RemoveComponent(kind)
			} else {
				m.container.AddComponent(kind)
			}
		}

	case key.Matches(msg, m.keys.Clear):
		m.container.ReplaceSelection(m.currentFamily(), nil)
	}

	return m, nil
}
