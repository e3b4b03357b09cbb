package domain

import (
	"github.com/shopspring/decimal"
)

// SynergyRule activates when every kind in Components is present in the
// current selection. Bonuses are signed fractional adjustments
// (0.15 = +15%); StabilityBonus is additive points and only populated for
// governance-family rules.
type SynergyRule struct {
	Components     []ComponentKind `yaml:"components" json:"components"`
	Description    string          `yaml:"description" json:"description"`
	EconomicBonus  decimal.Decimal `yaml:"economic_bonus" json:"economic_bonus"`
	TaxBonus       decimal.Decimal `yaml:"tax_bonus" json:"tax_bonus"`
	StabilityBonus decimal.Decimal `yaml:"stability_bonus" json:"stability_bonus"`
}

// ConflictRule mirrors SynergyRule with penalty semantics. Synergies and
// conflicts are evaluated independently: a selection satisfying both a
// synergy and a conflict applies both effects.
type ConflictRule struct {
	Components       []ComponentKind `yaml:"components" json:"components"`
	Description      string          `yaml:"description" json:"description"`
	EconomicPenalty  decimal.Decimal `yaml:"economic_penalty" json:"economic_penalty"`
	TaxPenalty       decimal.Decimal `yaml:"tax_penalty" json:"tax_penalty"`
	StabilityPenalty decimal.Decimal `yaml:"stability_penalty" json:"stability_penalty"`
}

// RuleSet bundles the synergy and conflict rules for one component family.
// Rule sets are static configuration, never mutated at runtime.
type RuleSet struct {
	Synergies []SynergyRule  `yaml:"synergies" json:"synergies"`
	Conflicts []ConflictRule `yaml:"conflicts" json:"conflicts"`
}

// CrossDomainSynergy is a hand-authored combination spanning the three
// families. It activates only when every member is present in its own
// family's selection, and contributes a flat additive bonus to the
// combined modifier set.
type CrossDomainSynergy struct {
	Name        string          `yaml:"name" json:"name"`
	Description string          `yaml:"description" json:"description"`
	Governance  []ComponentKind `yaml:"governance,omitempty" json:"governance,omitempty"`
	Economic    []ComponentKind `yaml:"economic,omitempty" json:"economic,omitempty"`
	Tax         []ComponentKind `yaml:"tax,omitempty" json:"tax,omitempty"`
	Bonus       decimal.Decimal `yaml:"bonus" json:"bonus"` // fractional, e.g. 0.03 = +3%
}

// Active reports whether every member of the cross-domain synergy is
// present in its respective family selection.
func (c CrossDomainSynergy) Active(governance, economic, tax Selection) bool {
	return governance.ContainsAll(c.Governance) &&
		economic.ContainsAll(c.Economic) &&
		tax.ContainsAll(c.Tax)
}
