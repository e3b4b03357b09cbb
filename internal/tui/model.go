// Package tui is the interactive component dashboard. It drives a live
// state container: every toggle mutates the container, and the view
// re-renders from the snapshots the container publishes, including the
// ones produced by the periodic metrics refresh.
package tui

import (
	"sort"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/algolds/ixgov/internal/catalog"
	"github.com/algolds/ixgov/internal/domain"
	"github.com/algolds/ixgov/internal/state"
)

var families = []domain.ComponentFamily{
	domain.FamilyGovernance,
	domain.FamilyEconomic,
	domain.FamilyTax,
}

// Model is the dashboard state.
type Model struct {
	container   *state.Container
	cat         *catalog.Catalog
	updates     chan domain.UnifiedState
	unsubscribe func()

	// component browser
	familyIndex int
	cursor      int
	kinds       map[domain.ComponentFamily][]domain.ComponentKind

	// latest published snapshot
	state domain.UnifiedState

	keys     keyMap
	showHelp bool
	width    int
	height   int
}

// NewModel wires a dashboard to a running container. The caller owns the
// container and closes it after the program exits.
func NewModel(container *state.Container, cat *catalog.Catalog) Model {
	kinds := make(map[domain.ComponentFamily][]domain.ComponentKind, len(families))
	for _, family := range families {
		list := cat.Kinds(family)
		sort.Slice(list, func(i, j int) bool { return list[i] < list[j] })
		kinds[family] = list
	}

	updates := make(chan domain.UnifiedState, 16)
	unsubscribe := container.Subscribe(func(s domain.UnifiedState) {
		select {
		case updates <- s:
		default: // dashboard lagging; the next snapshot supersedes this one
		}
	})

	return Model{
		container:   container,
		cat:         cat,
		updates:     updates,
		unsubscribe: unsubscribe,
		kinds:       kinds,
		state:       container.State(),
		keys:        defaultKeyMap(),
		width:       100,
		height:      30,
	}
}

// Init starts the subscription pump.
func (m Model) Init() tea.Cmd {
	return m.waitForUpdate()
}

// waitForUpdate blocks on the subscription channel and converts the next
// snapshot into a StateMsg.
func (m Model) waitForUpdate() tea.Cmd {
	return func() tea.Msg {
		return StateMsg{State: <-m.updates}
	}
}

func (m Model) currentFamily() domain.ComponentFamily {
	return families[m.familyIndex]
}

func (m Model) currentKinds() []domain.ComponentKind {
	return m.kinds[m.currentFamily()]
}

func (m Model) selectionFor(family domain.ComponentFamily) domain.Selection {
	switch family {
	case domain.FamilyEconomic:
		return m.state.Economic
	case domain.FamilyTax:
		return m.state.Tax
	default:
		return m.state.Governance
	}
}
