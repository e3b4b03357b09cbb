package domain

import (
	"github.com/shopspring/decimal"
)

// ModifierBundle is the per-family output of the modifier composer.
// It is derived and ephemeral: recomputed wholesale on every mutation,
// never persisted, never partially updated.
type ModifierBundle struct {
	TaxCollectionMultiplier        decimal.Decimal `json:"tax_collection_multiplier"`
	GDPGrowthModifier              decimal.Decimal `json:"gdp_growth_modifier"`
	StabilityBonus                 decimal.Decimal `json:"stability_bonus"` // additive points
	InnovationMultiplier           decimal.Decimal `json:"innovation_multiplier"`
	InternationalTradeBonus        decimal.Decimal `json:"international_trade_bonus"` // additive points
	GovernmentEfficiencyMultiplier decimal.Decimal `json:"government_efficiency_multiplier"`
}

// NeutralBundle is the identity element for bundle combination: all
// multiplicative fields 1.0, all additive fields 0. It is also the
// defined result of composing an empty selection.
func NeutralBundle() ModifierBundle {
	one := decimal.NewFromInt(1)
	return ModifierBundle{
		TaxCollectionMultiplier:        one,
		GDPGrowthModifier:              one,
		StabilityBonus:                 decimal.Zero,
		InnovationMultiplier:           one,
		InternationalTradeBonus:        decimal.Zero,
		GovernmentEfficiencyMultiplier: one,
	}
}

// CombinedModifiers is the unified, cross-family modifier set applied to
// baseline economic figures. Multiplicative fields are field-wise
// products of the family bundles; the unemployment, inflation and
// stability multipliers are derived during combination.
type CombinedModifiers struct {
	TaxCollectionMultiplier        decimal.Decimal `json:"tax_collection_multiplier"`
	GDPGrowthModifier              decimal.Decimal `json:"gdp_growth_modifier"`
	InnovationMultiplier           decimal.Decimal `json:"innovation_multiplier"`
	GovernmentEfficiencyMultiplier decimal.Decimal `json:"government_efficiency_multiplier"`
	UnemploymentRateMultiplier     decimal.Decimal `json:"unemployment_rate_multiplier"`
	InflationRateMultiplier        decimal.Decimal `json:"inflation_rate_multiplier"`
	StabilityMultiplier            decimal.Decimal `json:"stability_multiplier"`
	StabilityBonus                 decimal.Decimal `json:"stability_bonus"`            // additive points
	InternationalTradeBonus        decimal.Decimal `json:"international_trade_bonus"`  // additive points
	NetSynergyBonus                decimal.Decimal `json:"net_synergy_bonus"`          // Σ synergy - Σ conflict, fractional
	ActiveCrossSynergies           []string        `json:"active_cross_synergies,omitempty"`
}

// NeutralCombined returns the combined set produced by three neutral
// bundles: every multiplier 1.0, every additive term 0.
func NeutralCombined() CombinedModifiers {
	one := decimal.NewFromInt(1)
	return CombinedModifiers{
		TaxCollectionMultiplier:        one,
		GDPGrowthModifier:              one,
		InnovationMultiplier:           one,
		GovernmentEfficiencyMultiplier: one,
		UnemploymentRateMultiplier:     one,
		InflationRateMultiplier:        one,
		StabilityMultiplier:            one,
		StabilityBonus:                 decimal.Zero,
		InternationalTradeBonus:        decimal.Zero,
		NetSynergyBonus:                decimal.Zero,
	}
}

// Clone returns an independent copy of the combined modifier set.
func (m CombinedModifiers) Clone() CombinedModifiers {
	out := m
	if m.ActiveCrossSynergies != nil {
		out.ActiveCrossSynergies = make([]string, len(m.ActiveCrossSynergies))
		copy(out.ActiveCrossSynergies, m.ActiveCrossSynergies)
	}
	return out
}
