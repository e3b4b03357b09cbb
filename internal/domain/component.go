package domain

import (
	"github.com/shopspring/decimal"
)

// ComponentFamily identifies which of the three independent component
// families a kind belongs to. Families are composed separately and only
// meet in the cross-domain combiner.
type ComponentFamily string

const (
	FamilyGovernance ComponentFamily = "governance"
	FamilyEconomic   ComponentFamily = "economic"
	FamilyTax        ComponentFamily = "tax"
)

// ComponentKind is an atomic, mutually-selectable building block of a
// governance, economic or tax system. Kinds have no lifecycle of their
// own; they exist only as members of a Selection.
type ComponentKind string

// Governance components, grouped by the aspect of government they shape.
const (
	// Power distribution
	CentralizedPower  ComponentKind = "CENTRALIZED_POWER"
	FederalSystem     ComponentKind = "FEDERAL_SYSTEM"
	ConfederateSystem ComponentKind = "CONFEDERATE_SYSTEM"
	UnitarySystem     ComponentKind = "UNITARY_SYSTEM"

	// Decision process
	DemocraticProcess   ComponentKind = "DEMOCRATIC_PROCESS"
	AutocraticProcess   ComponentKind = "AUTOCRATIC_PROCESS"
	TechnocraticProcess ComponentKind = "TECHNOCRATIC_PROCESS"
	ConsensusProcess    ComponentKind = "CONSENSUS_PROCESS"
	OligarchicProcess   ComponentKind = "OLIGARCHIC_PROCESS"

	// Legitimacy source
	ElectoralLegitimacy   ComponentKind = "ELECTORAL_LEGITIMACY"
	TraditionalLegitimacy ComponentKind = "TRADITIONAL_LEGITIMACY"
	PerformanceLegitimacy ComponentKind = "PERFORMANCE_LEGITIMACY"
	CharismaticLegitimacy ComponentKind = "CHARISMATIC_LEGITIMACY"
	ReligiousLegitimacy   ComponentKind = "RELIGIOUS_LEGITIMACY"

	// Institutions
	ProfessionalBureaucracy ComponentKind = "PROFESSIONAL_BUREAUCRACY"
	MilitaryAdministration  ComponentKind = "MILITARY_ADMINISTRATION"
	IndependentJudiciary    ComponentKind = "INDEPENDENT_JUDICIARY"
	PartisanInstitutions    ComponentKind = "PARTISAN_INSTITUTIONS"
	TechnocraticAgencies    ComponentKind = "TECHNOCRATIC_AGENCIES"

	// Control mechanisms
	RuleOfLaw          ComponentKind = "RULE_OF_LAW"
	SurveillanceSystem ComponentKind = "SURVEILLANCE_SYSTEM"
)

// Economic policy components.
const (
	FreeMarketSystem         ComponentKind = "FREE_MARKET_SYSTEM"
	PlannedEconomy           ComponentKind = "PLANNED_ECONOMY"
	MixedEconomy             ComponentKind = "MIXED_ECONOMY"
	StateCapitalism          ComponentKind = "STATE_CAPITALISM"
	CentralBankIndependence  ComponentKind = "CENTRAL_BANK_INDEPENDENCE"
	OpenTradePolicy          ComponentKind = "OPEN_TRADE_POLICY"
	ProtectionistPolicy      ComponentKind = "PROTECTIONIST_POLICY"
	InnovationInvestment     ComponentKind = "INNOVATION_INVESTMENT"
	InfrastructureInvestment ComponentKind = "INFRASTRUCTURE_INVESTMENT"
	LaborProtections         ComponentKind = "LABOR_PROTECTIONS"
)

// Tax policy components.
const (
	ProgressiveIncomeTax     ComponentKind = "PROGRESSIVE_INCOME_TAX"
	FlatIncomeTax            ComponentKind = "FLAT_INCOME_TAX"
	ConsumptionTax           ComponentKind = "CONSUMPTION_TAX"
	CorporateTaxRegime       ComponentKind = "CORPORATE_TAX_REGIME"
	WealthTax                ComponentKind = "WEALTH_TAX"
	DigitalTaxAdministration ComponentKind = "DIGITAL_TAX_ADMINISTRATION"
	TaxEnforcementAgency     ComponentKind = "TAX_ENFORCEMENT_AGENCY"
	BroadTaxBase             ComponentKind = "BROAD_TAX_BASE"
	TaxIncentiveProgram      ComponentKind = "TAX_INCENTIVE_PROGRAM"
)

// ComponentProfile holds the per-kind attributes the composer reads.
// Kinds without a profile in the catalog degrade to NeutralProfile.
type ComponentProfile struct {
	Kind              ComponentKind   `yaml:"kind" json:"kind"`
	Name              string          `yaml:"name" json:"name"`
	Family            ComponentFamily `yaml:"family" json:"family"`
	BaseEffectiveness decimal.Decimal `yaml:"base_effectiveness" json:"base_effectiveness"` // 0..100
	EconomicImpact    decimal.Decimal `yaml:"economic_impact" json:"economic_impact"`       // multiplicative, ~0.8-1.3
	TaxImpact         decimal.Decimal `yaml:"tax_impact" json:"tax_impact"`                 // multiplicative
	StabilityImpact   decimal.Decimal `yaml:"stability_impact" json:"stability_impact"`     // signed points
	LegitimacyImpact  decimal.Decimal `yaml:"legitimacy_impact" json:"legitimacy_impact"`   // signed points
	KnowledgeDriven   bool            `yaml:"knowledge_driven" json:"knowledge_driven"`
	RuleOfLawBonus    bool            `yaml:"rule_of_law_bonus" json:"rule_of_law_bonus"`
	StructureImpacts  []string        `yaml:"structure_impacts,omitempty" json:"structure_impacts,omitempty"`
}

// NeutralProfile is the degradation profile for unknown kinds: an
// "average" component that disturbs nothing.
func NeutralProfile(kind ComponentKind) ComponentProfile {
	return ComponentProfile{
		Kind:              kind,
		Name:              string(kind),
		BaseEffectiveness: decimal.NewFromInt(50),
		EconomicImpact:    decimal.NewFromInt(1),
		TaxImpact:         decimal.NewFromInt(1),
		StabilityImpact:   decimal.Zero,
		LegitimacyImpact:  decimal.Zero,
	}
}

// Selection is the set of active component kinds for one family.
// Membership is what matters; insertion order is preserved only for
// stable display and never influences computation.
type Selection []ComponentKind

// Contains reports whether kind is in the selection.
func (s Selection) Contains(kind ComponentKind) bool {
	for _, k := range s {
		if k == kind {
			return true
		}
	}
	return false
}

// ContainsAll reports whether every kind in kinds is in the selection.
func (s Selection) ContainsAll(kinds []ComponentKind) bool {
	for _, k := range kinds {
		if !s.Contains(k) {
			return false
		}
	}
	return true
}

// With returns a selection with kind added. Adding a kind that is already
// present returns the selection unchanged (set semantics).
func (s Selection) With(kind ComponentKind) Selection {
	if s.Contains(kind) {
		return s
	}
	out := make(Selection, len(s), len(s)+1)
	copy(out, s)
	return append(out, kind)
}

// Without returns a selection with kind removed. Removing an absent kind
// returns the selection unchanged.
func (s Selection) Without(kind ComponentKind) Selection {
	if !s.Contains(kind) {
		return s
	}
	out := make(Selection, 0, len(s)-1)
	for _, k := range s {
		if k != kind {
			out = append(out, k)
		}
	}
	return out
}

// Clone returns an independent copy of the selection.
func (s Selection) Clone() Selection {
	if s == nil {
		return nil
	}
	out := make(Selection, len(s))
	copy(out, s)
	return out
}
