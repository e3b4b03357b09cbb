package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/algolds/ixgov/internal/catalog"
	"github.com/algolds/ixgov/internal/config"
	"github.com/algolds/ixgov/internal/domain"
	"github.com/algolds/ixgov/internal/state"
	"github.com/algolds/ixgov/internal/tui"
)

func main() {
	var opts []state.Option
	var seed *domain.Scenario

	// An optional simulation file seeds the country context and baseline;
	// its first scenario seeds the initial selection.
	if len(os.Args) > 1 {
		parser := config.NewInputParser()
		sim, err := parser.LoadFromFile(os.Args[1])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading simulation: %v\n", err)
			os.Exit(1)
		}
		opts = append(opts,
			state.WithContext(sim.Context),
			state.WithBaseline(sim.Baseline),
		)
		seed = &sim.Scenarios[0]
	}

	container := state.New(opts...)
	defer container.Close()

	if seed != nil {
		container.ReplaceSelection(domain.FamilyGovernance, seed.Governance)
		container.ReplaceSelection(domain.FamilyEconomic, seed.Economic)
		container.ReplaceSelection(domain.FamilyTax, seed.Tax)
	}

	model := tui.NewModel(container, catalog.Default())

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running dashboard: %v\n", err)
		os.Exit(1)
	}
}
