package integration

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/algolds/ixgov/internal/calculation"
	"github.com/algolds/ixgov/internal/catalog"
	"github.com/algolds/ixgov/internal/config"
	"github.com/algolds/ixgov/internal/domain"
	"github.com/algolds/ixgov/internal/output"
	"github.com/algolds/ixgov/internal/state"
)

const exampleSimulation = "../testdata/example_simulation.yaml"

func loadExample(t *testing.T) *domain.Simulation {
	t.Helper()
	parser := config.NewInputParser()
	sim, err := parser.LoadFromFile(exampleSimulation)
	require.NoError(t, err, "example simulation should load cleanly")
	return sim
}

func TestEndToEndSimulation(t *testing.T) {
	sim := loadExample(t)

	assert.Equal(t, "Ardenne", sim.Country)
	require.Len(t, sim.Scenarios, 3)

	comparison := calculation.RunSimulation(catalog.Default(), catalog.DefaultRules(), *sim, time.Now())
	require.Len(t, comparison.Summaries, 3)

	byName := map[string]domain.ScenarioSummary{}
	for _, summary := range comparison.Summaries {
		byName[summary.Name] = summary
	}

	technocratic := byName["Technocratic State"]
	contested := byName["Contested Rule"]

	assert.Greater(t, technocratic.SynergyCount, 0, "the technocratic build activates synergies")
	assert.Greater(t, contested.ConflictCount, 0, "the contested build activates conflicts")
	assert.True(t, technocratic.EffectivenessScore.GreaterThan(contested.EffectivenessScore),
		"coherent selections must outperform contradictory ones")
	assert.True(t, technocratic.Enhanced.GDPGrowthRate.GreaterThan(contested.Enhanced.GDPGrowthRate))

	assert.NotEqual(t, "Contested Rule", comparison.BestScenario)
	for _, summary := range comparison.Summaries {
		assert.Equal(t, int64(20_000_000), summary.Enhanced.Population,
			"population passes through every scenario untouched")
		assert.False(t, summary.Enhanced.UnemploymentRate.IsNegative())
	}
}

func TestEndToEndReports(t *testing.T) {
	sim := loadExample(t)
	comparison := calculation.RunSimulation(catalog.Default(), catalog.DefaultRules(), *sim, time.Now())

	for _, format := range []string{"console", "json", "csv"} {
		assert.NoError(t, output.GenerateReport(&comparison, format), "format %s", format)
	}
	assert.Error(t, output.GenerateReport(&comparison, "html"))
}

func TestEndToEndContainerLifecycle(t *testing.T) {
	sim := loadExample(t)

	container := state.New(
		state.WithContext(sim.Context),
		state.WithBaseline(sim.Baseline),
		state.WithRefreshInterval(time.Hour),
	)
	defer container.Close()

	var notifications int
	unsubscribe := container.Subscribe(func(domain.UnifiedState) { notifications++ })
	defer unsubscribe()

	scenario := sim.Scenarios[0]
	container.ReplaceSelection(domain.FamilyGovernance, scenario.Governance)
	container.ReplaceSelection(domain.FamilyEconomic, scenario.Economic)
	container.ReplaceSelection(domain.FamilyTax, scenario.Tax)

	assert.Equal(t, 3, notifications)

	snapshot := container.State()
	assert.True(t, snapshot.EffectivenessScore.GreaterThan(decimal.NewFromInt(70)),
		"the technocratic example build should score well, got %s", snapshot.EffectivenessScore)
	assert.NotEmpty(t, snapshot.ActiveSynergies)
	assert.NotEmpty(t, snapshot.Structure.Departments)
	assert.True(t, snapshot.Enhanced.GDPGrowthRate.GreaterThan(sim.Baseline.GDPGrowthRate))

	// The container's one-shot result matches the batch pipeline's.
	batch := calculation.EvaluateScenario(catalog.Default(), catalog.DefaultRules(),
		scenario, sim.Context, sim.Baseline, snapshot.UpdatedAt)
	assert.True(t, snapshot.EffectivenessScore.Equal(batch.EffectivenessScore))
	assert.True(t, snapshot.Enhanced.GDPGrowthRate.Equal(batch.Enhanced.GDPGrowthRate))

	health := container.SystemHealth()
	assert.Contains(t, []string{"excellent", "good"}, health.Rating)
}

func TestEndToEndValidationFailures(t *testing.T) {
	parser := config.NewInputParser()

	_, err := parser.Parse([]byte("country: \"Nowhere\"\nscenarios: []\n"))
	require.Error(t, err)

	sim := loadExample(t)
	sim.Baseline.Population = -1
	assert.Error(t, parser.ValidateSimulation(sim))
}
