package calculation

import (
	"time"

	"github.com/algolds/ixgov/internal/catalog"
	"github.com/algolds/ixgov/internal/domain"
)

// EvaluateScenario runs the full pipeline once for a scenario against
// the simulation's context and baseline.
func EvaluateScenario(cat *catalog.Catalog, rules catalog.Rules, scenario domain.Scenario, ctx domain.CountryContext, baseline domain.EconomicBaseline, now time.Time) domain.ScenarioSummary {
	state := BuildState(cat, rules,
		domain.Selection(scenario.Governance),
		domain.Selection(scenario.Economic),
		domain.Selection(scenario.Tax),
		ctx, baseline, nil, now)

	return domain.ScenarioSummary{
		Name:               scenario.Name,
		EffectivenessScore: state.EffectivenessScore,
		LegitimacyScore:    state.LegitimacyScore,
		SynergyCount:       len(state.ActiveSynergies),
		ConflictCount:      len(state.ActiveConflicts),
		Enhanced:           state.Enhanced,
		Health:             AssessHealth(state),
		State:              state,
	}
}

// RunSimulation evaluates every scenario in a simulation and selects the
// strongest candidates by effectiveness, projected growth and stability.
func RunSimulation(cat *catalog.Catalog, rules catalog.Rules, sim domain.Simulation, now time.Time) domain.ScenarioComparison {
	comparison := domain.ScenarioComparison{
		Country:  sim.Country,
		Baseline: sim.Baseline,
	}

	for _, scenario := range sim.Scenarios {
		summary := EvaluateScenario(cat, rules, scenario, sim.Context, sim.Baseline, now)
		comparison.Summaries = append(comparison.Summaries, summary)
	}

	best, growth, stability := -1, -1, -1
	for i, summary := range comparison.Summaries {
		if best < 0 || summary.EffectivenessScore.GreaterThan(comparison.Summaries[best].EffectivenessScore) {
			best = i
		}
		if growth < 0 || summary.Enhanced.GDPGrowthRate.GreaterThan(comparison.Summaries[growth].Enhanced.GDPGrowthRate) {
			growth = i
		}
		if stability < 0 || summary.State.Metrics.StabilityIndex.GreaterThan(comparison.Summaries[stability].State.Metrics.StabilityIndex) {
			stability = i
		}
	}
	if best >= 0 {
		comparison.BestScenario = comparison.Summaries[best].Name
		comparison.BestGrowth = comparison.Summaries[growth].Name
		comparison.BestStability = comparison.Summaries[stability].Name
	}

	return comparison
}
