package calculation

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/algolds/ixgov/internal/catalog"
	"github.com/algolds/ixgov/internal/domain"
)

// BuildState runs the full synchronous recompute pass (composition per
// family, cross-domain combination, baseline application and derived
// artifact generation) and assembles one internally consistent
// snapshot. The returned history includes a fresh sample for this pass.
func BuildState(cat *catalog.Catalog, rules catalog.Rules, governance, economic, tax domain.Selection, ctx domain.CountryContext, baseline domain.EconomicBaseline, history []domain.EffectivenessSample, now time.Time) domain.UnifiedState {
	govComp := Compose(governance, cat, rules.Governance, ctx)
	econComp := Compose(economic, cat, rules.Economic, ctx)
	taxComp := Compose(tax, cat, rules.Tax, ctx)

	var synergies []domain.SynergyRule
	synergies = append(synergies, govComp.ActiveSynergies...)
	synergies = append(synergies, econComp.ActiveSynergies...)
	synergies = append(synergies, taxComp.ActiveSynergies...)

	var conflicts []domain.ConflictRule
	conflicts = append(conflicts, govComp.ActiveConflicts...)
	conflicts = append(conflicts, econComp.ActiveConflicts...)
	conflicts = append(conflicts, taxComp.ActiveConflicts...)

	combined := Combine(govComp.Bundle, econComp.Bundle, taxComp.Bundle, governance, economic, tax, rules.Cross)
	combined.NetSynergyBonus = NetRuleAdjustment(synergies, conflicts)

	enhanced := Apply(baseline, combined)

	score := familyMean(
		scoreEntry{govComp.EffectivenessScore, len(governance) > 0},
		scoreEntry{econComp.EffectivenessScore, len(economic) > 0},
		scoreEntry{taxComp.EffectivenessScore, len(tax) > 0},
	)
	legitimacy := familyMean(
		scoreEntry{govComp.LegitimacyScore, len(governance) > 0},
		scoreEntry{econComp.LegitimacyScore, len(economic) > 0},
		scoreEntry{taxComp.LegitimacyScore, len(tax) > 0},
	)

	newHistory := AppendSample(history, score, now)

	return domain.UnifiedState{
		Governance: governance.Clone(),
		Economic:   economic.Clone(),
		Tax:        tax.Clone(),
		Context:    ctx.Normalized().Clone(),

		EffectivenessScore: score,
		LegitimacyScore:    legitimacy,

		ActiveSynergies: synergies,
		ActiveConflicts: conflicts,

		GovernanceModifiers: govComp.Bundle,
		EconomicModifiers:   econComp.Bundle,
		TaxModifiers:        taxComp.Bundle,
		Combined:            combined,

		TaxEffectiveness: ComputeTaxEffectiveness(tax, cat, taxComp.Bundle),
		Structure:        GenerateStructure(governance, cat),
		Intelligence:     GenerateIntelligence(score, synergies, conflicts, combined, now),
		Metrics:          ComputeMetrics(score, combined, len(synergies), len(conflicts), newHistory, now),

		Baseline: baseline,
		Enhanced: enhanced,

		History:   newHistory,
		UpdatedAt: now,
	}
}

type scoreEntry struct {
	score    decimal.Decimal
	occupied bool
}

// familyMean averages the scores of the non-empty families; with every
// family empty the overall score is zero.
func familyMean(entries ...scoreEntry) decimal.Decimal {
	sum := decimal.Zero
	count := 0
	for _, e := range entries {
		if e.occupied {
			sum = sum.Add(e.score)
			count++
		}
	}
	if count == 0 {
		return decimal.Zero
	}
	return sum.Div(decimal.NewFromInt(int64(count)))
}
