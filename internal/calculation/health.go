package calculation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/algolds/ixgov/internal/catalog"
	"github.com/algolds/ixgov/internal/domain"
)

// AssessHealth derives the qualitative system rating plus issue and
// recommendation strings from simple thresholds over the snapshot.
func AssessHealth(state domain.UnifiedState) domain.SystemHealth {
	health := domain.SystemHealth{Rating: healthRating(state.EffectivenessScore)}

	for _, conflict := range state.ActiveConflicts {
		health.Issues = append(health.Issues, fmt.Sprintf("Active conflict: %s", conflict.Description))
	}
	if state.EffectivenessScore.LessThan(decimal.NewFromInt(50)) {
		health.Issues = append(health.Issues, fmt.Sprintf("Overall effectiveness %s is below the operational floor of 50", state.EffectivenessScore.StringFixed(1)))
	}
	if state.Combined.StabilityBonus.IsNegative() {
		health.Issues = append(health.Issues, "Net stability impact of the current selection is negative")
	}

	if len(state.ActiveSynergies) < 2 {
		health.Recommendations = append(health.Recommendations, "Add complementary components to activate additional synergies")
	}
	if len(state.ActiveConflicts) > 0 {
		health.Recommendations = append(health.Recommendations, "Remove one side of each conflicting component pair")
	}
	if state.Combined.GovernmentEfficiencyMultiplier.LessThan(one) {
		health.Recommendations = append(health.Recommendations, "Replace below-average components to raise government efficiency")
	}

	return health
}

func healthRating(effectiveness decimal.Decimal) string {
	switch {
	case effectiveness.GreaterThanOrEqual(decimal.NewFromInt(85)):
		return "excellent"
	case effectiveness.GreaterThanOrEqual(decimal.NewFromInt(70)):
		return "good"
	case effectiveness.GreaterThanOrEqual(decimal.NewFromInt(50)):
		return "fair"
	default:
		return "poor"
	}
}

// Contribution reports one kind's catalogued impacts and whether it is
// currently selected in any family. Unknown kinds report the neutral
// profile, consistent with the composer's degradation policy.
func Contribution(kind domain.ComponentKind, cat *catalog.Catalog, governance, economic, tax domain.Selection) domain.ComponentContribution {
	profile := cat.Profile(kind)
	return domain.ComponentContribution{
		Kind:             kind,
		Name:             profile.Name,
		Family:           cat.FamilyOf(kind),
		Effectiveness:    profile.BaseEffectiveness,
		EconomicImpact:   profile.EconomicImpact,
		TaxImpact:        profile.TaxImpact,
		StabilityImpact:  profile.StabilityImpact,
		LegitimacyImpact: profile.LegitimacyImpact,
		StructureImpacts: append([]string(nil), profile.StructureImpacts...),
		Selected:         governance.Contains(kind) || economic.Contains(kind) || tax.Contains(kind),
	}
}
