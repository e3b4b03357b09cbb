package calculation

import (
	"github.com/algolds/ixgov/internal/domain"
)

// Apply projects baseline country figures through a combined modifier
// set. The net synergy multiplier, 1 + (Σ synergy bonuses − Σ conflict
// penalties), stacks on top of the per-field modifiers for growth,
// nominal output, per-capita output and tax share.
//
// Unemployment is divided by its multiplier rather than multiplied, so a
// reducing modifier below 1.0 increases the improvement; the result is
// floored at zero. Population is never touched by governance modifiers.
func Apply(baseline domain.EconomicBaseline, m domain.CombinedModifiers) domain.EnhancedEconomy {
	netSynergy := one.Add(m.NetSynergyBonus)
	growthFactor := m.GDPGrowthModifier.Mul(netSynergy)

	out := domain.EnhancedEconomy{
		GDPGrowthRate:        baseline.GDPGrowthRate.Mul(growthFactor),
		NominalGDP:           baseline.NominalGDP.Mul(growthFactor),
		GDPPerCapita:         baseline.GDPPerCapita.Mul(growthFactor),
		TaxRevenuePercent:    baseline.TaxRevenuePercent.Mul(m.TaxCollectionMultiplier).Mul(netSynergy),
		InflationRate:        baseline.InflationRate.Mul(m.InflationRateMultiplier),
		Population:           baseline.Population,
		NetSynergyMultiplier: netSynergy,
	}

	if m.UnemploymentRateMultiplier.IsPositive() {
		out.UnemploymentRate = baseline.UnemploymentRate.Div(m.UnemploymentRateMultiplier)
	} else {
		out.UnemploymentRate = baseline.UnemploymentRate
	}
	if out.UnemploymentRate.IsNegative() {
		out.UnemploymentRate = zero
	}

	return out
}
