package calculation

import (
	"github.com/algolds/ixgov/internal/domain"
)

// Combine merges the three family bundles into one unified modifier set.
// Multiplicative fields are field-wise products, additive fields are
// sums, so combination is associative and order-independent and a
// neutral bundle is an identity element.
//
// The stability multiplier is derived from the governance bundle's
// stability points; the unemployment and inflation multipliers are
// derived from efficiency and stability respectively (neutral inputs
// stay neutral at 1.0).
func Combine(gov, econ, tax domain.ModifierBundle, govSel, econSel, taxSel domain.Selection, cross []domain.CrossDomainSynergy) domain.CombinedModifiers {
	m := domain.NeutralCombined()

	m.TaxCollectionMultiplier = gov.TaxCollectionMultiplier.Mul(econ.TaxCollectionMultiplier).Mul(tax.TaxCollectionMultiplier)
	m.GDPGrowthModifier = gov.GDPGrowthModifier.Mul(econ.GDPGrowthModifier).Mul(tax.GDPGrowthModifier)
	m.InnovationMultiplier = gov.InnovationMultiplier.Mul(econ.InnovationMultiplier).Mul(tax.InnovationMultiplier)
	m.GovernmentEfficiencyMultiplier = gov.GovernmentEfficiencyMultiplier.Mul(econ.GovernmentEfficiencyMultiplier).Mul(tax.GovernmentEfficiencyMultiplier)

	m.StabilityBonus = gov.StabilityBonus.Add(econ.StabilityBonus).Add(tax.StabilityBonus)
	m.InternationalTradeBonus = gov.InternationalTradeBonus.Add(econ.InternationalTradeBonus).Add(tax.InternationalTradeBonus)

	m.StabilityMultiplier = clampMultiplier(one.Add(gov.StabilityBonus.Div(hundred)))
	m.UnemploymentRateMultiplier = clampMultiplier(two.Sub(m.GovernmentEfficiencyMultiplier))
	m.InflationRateMultiplier = clampMultiplier(two.Sub(m.StabilityMultiplier))

	for _, c := range cross {
		if !c.Active(govSel, econSel, taxSel) {
			continue
		}
		m.GDPGrowthModifier = m.GDPGrowthModifier.Add(c.Bonus)
		m.TaxCollectionMultiplier = m.TaxCollectionMultiplier.Add(c.Bonus.Div(two))
		m.ActiveCrossSynergies = append(m.ActiveCrossSynergies, c.Name)
	}

	return m
}
