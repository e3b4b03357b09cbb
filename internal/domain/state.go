package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// GovernmentStructure is the deterministic descriptive structure derived
// from the governance selection.
type GovernmentStructure struct {
	StructureType   string   `json:"structure_type"`
	GovernanceStyle string   `json:"governance_style"`
	Departments     []string `json:"departments"`
	Notes           []string `json:"notes,omitempty"`
}

// IntelligenceCategory classifies an advisory feed entry.
type IntelligenceCategory string

const (
	IntelligenceAlert       IntelligenceCategory = "alert"
	IntelligenceOpportunity IntelligenceCategory = "opportunity"
	IntelligenceRisk        IntelligenceCategory = "risk"
	IntelligenceTrend       IntelligenceCategory = "trend"
)

// IntelligenceItem is one templated advisory entry, generated from
// threshold crossings during recompute. The feed is regenerated whole on
// every recompute, never appended to.
type IntelligenceItem struct {
	Category    IntelligenceCategory `json:"category"`
	Title       string               `json:"title"`
	Description string               `json:"description"`
	Severity    string               `json:"severity"` // low, medium, high
	Timestamp   time.Time            `json:"timestamp"`
}

// RealTimeMetrics is the continuously-refreshed metric block. It is the
// only part of the snapshot the periodic timer recomputes on its own.
type RealTimeMetrics struct {
	OverallEffectiveness decimal.Decimal `json:"overall_effectiveness"`
	StabilityIndex       decimal.Decimal `json:"stability_index"`
	PolicyCoherence      decimal.Decimal `json:"policy_coherence"`
	Momentum             decimal.Decimal `json:"momentum"`
	UpdatedAt            time.Time       `json:"updated_at"`
}

// EffectivenessSample is one entry of the rolling performance history.
type EffectivenessSample struct {
	Score decimal.Decimal `json:"score"`
	At    time.Time       `json:"at"`
}

// TaxEffectiveness breaks the tax-family composition down into the
// qualities the dashboard reports.
type TaxEffectiveness struct {
	CollectionEfficiency decimal.Decimal `json:"collection_efficiency"` // 0..100
	ComplianceRate       decimal.Decimal `json:"compliance_rate"`       // 0..100
	AuditCapacity        decimal.Decimal `json:"audit_capacity"`        // 0..100
	OverallScore         decimal.Decimal `json:"overall_score"`         // 0..100
}

// SystemHealth is the aggregate qualitative assessment exposed through
// the read accessor.
type SystemHealth struct {
	Rating          string   `json:"rating"` // excellent, good, fair, poor
	Issues          []string `json:"issues,omitempty"`
	Recommendations []string `json:"recommendations,omitempty"`
}

// ComponentContribution is the per-kind breakdown exposed through the
// read accessor.
type ComponentContribution struct {
	Kind             ComponentKind   `json:"kind"`
	Name             string          `json:"name"`
	Family           ComponentFamily `json:"family"`
	Effectiveness    decimal.Decimal `json:"effectiveness"`
	EconomicImpact   decimal.Decimal `json:"economic_impact"`
	TaxImpact        decimal.Decimal `json:"tax_impact"`
	StabilityImpact  decimal.Decimal `json:"stability_impact"`
	LegitimacyImpact decimal.Decimal `json:"legitimacy_impact"`
	StructureImpacts []string        `json:"structure_impacts,omitempty"`
	Selected         bool            `json:"selected"`
}

// UnifiedState is the full snapshot published to subscribers. Every field
// is derived from the current selection and context in one synchronous
// recompute pass; subscribers always receive independent copies.
type UnifiedState struct {
	Governance Selection      `json:"governance"`
	Economic   Selection      `json:"economic"`
	Tax        Selection      `json:"tax"`
	Context    CountryContext `json:"context"`

	EffectivenessScore decimal.Decimal `json:"effectiveness_score"` // 0..100
	LegitimacyScore    decimal.Decimal `json:"legitimacy_score"`    // 0..100

	ActiveSynergies []SynergyRule  `json:"active_synergies,omitempty"`
	ActiveConflicts []ConflictRule `json:"active_conflicts,omitempty"`

	GovernanceModifiers ModifierBundle    `json:"governance_modifiers"`
	EconomicModifiers   ModifierBundle    `json:"economic_modifiers"`
	TaxModifiers        ModifierBundle    `json:"tax_modifiers"`
	Combined            CombinedModifiers `json:"combined"`

	TaxEffectiveness TaxEffectiveness    `json:"tax_effectiveness"`
	Structure        GovernmentStructure `json:"structure"`
	Intelligence     []IntelligenceItem  `json:"intelligence,omitempty"`
	Metrics          RealTimeMetrics     `json:"metrics"`

	Baseline EconomicBaseline `json:"baseline"`
	Enhanced EnhancedEconomy  `json:"enhanced"`

	History   []EffectivenessSample `json:"history,omitempty"`
	UpdatedAt time.Time             `json:"updated_at"`
}

// Clone returns a deep copy of the snapshot, safe to hand to consumers.
func (u UnifiedState) Clone() UnifiedState {
	out := u
	out.Governance = u.Governance.Clone()
	out.Economic = u.Economic.Clone()
	out.Tax = u.Tax.Clone()
	out.Context = u.Context.Clone()
	out.Combined = u.Combined.Clone()
	if u.ActiveSynergies != nil {
		out.ActiveSynergies = make([]SynergyRule, len(u.ActiveSynergies))
		copy(out.ActiveSynergies, u.ActiveSynergies)
	}
	if u.ActiveConflicts != nil {
		out.ActiveConflicts = make([]ConflictRule, len(u.ActiveConflicts))
		copy(out.ActiveConflicts, u.ActiveConflicts)
	}
	if u.Structure.Departments != nil {
		out.Structure.Departments = make([]string, len(u.Structure.Departments))
		copy(out.Structure.Departments, u.Structure.Departments)
	}
	if u.Structure.Notes != nil {
		out.Structure.Notes = make([]string, len(u.Structure.Notes))
		copy(out.Structure.Notes, u.Structure.Notes)
	}
	if u.Intelligence != nil {
		out.Intelligence = make([]IntelligenceItem, len(u.Intelligence))
		copy(out.Intelligence, u.Intelligence)
	}
	if u.History != nil {
		out.History = make([]EffectivenessSample, len(u.History))
		copy(out.History, u.History)
	}
	return out
}
