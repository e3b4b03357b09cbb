package domain

import (
	"github.com/shopspring/decimal"
)

// Scenario is one named component-selection variant in a simulation
// file. Empty family lists are legal and compose to neutral bundles.
type Scenario struct {
	Name       string          `yaml:"name" json:"name"`
	Governance []ComponentKind `yaml:"governance,omitempty" json:"governance,omitempty"`
	Economic   []ComponentKind `yaml:"economic,omitempty" json:"economic,omitempty"`
	Tax        []ComponentKind `yaml:"tax,omitempty" json:"tax,omitempty"`
}

// Simulation is the complete input configuration for a run: one country
// context and baseline, evaluated against one or more scenarios.
type Simulation struct {
	Country   string           `yaml:"country" json:"country"`
	Context   CountryContext   `yaml:"context" json:"context"`
	Baseline  EconomicBaseline `yaml:"baseline" json:"baseline"`
	Scenarios []Scenario       `yaml:"scenarios" json:"scenarios"`
}

// ScenarioSummary is the evaluated outcome of one scenario.
type ScenarioSummary struct {
	Name               string          `json:"name"`
	EffectivenessScore decimal.Decimal `json:"effectiveness_score"`
	LegitimacyScore    decimal.Decimal `json:"legitimacy_score"`
	SynergyCount       int             `json:"synergy_count"`
	ConflictCount      int             `json:"conflict_count"`
	Enhanced           EnhancedEconomy `json:"enhanced"`
	Health             SystemHealth    `json:"health"`
	State              UnifiedState    `json:"state"`
}

// ScenarioComparison holds the evaluated summaries for every scenario in
// a simulation plus the cross-scenario recommendation.
type ScenarioComparison struct {
	Country       string            `json:"country"`
	Baseline      EconomicBaseline  `json:"baseline"`
	Summaries     []ScenarioSummary `json:"summaries"`
	BestScenario  string            `json:"best_scenario"`
	BestGrowth    string            `json:"best_growth"`
	BestStability string            `json:"best_stability"`
}
