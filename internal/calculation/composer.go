// Package calculation implements the modifier composition pipeline: per
// family composition, cross-domain combination, baseline application and
// the derived artifacts (structure, intelligence feed, metrics). Every
// function here is total: lookups degrade to neutral defaults and no
// operation can fail.
package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/algolds/ixgov/internal/catalog"
	"github.com/algolds/ixgov/internal/domain"
)

var (
	zero    = decimal.Zero
	one     = decimal.NewFromInt(1)
	two     = decimal.NewFromInt(2)
	hundred = decimal.NewFromInt(100)

	// efficiencyMidpoint calibrates government efficiency: a component
	// with base effectiveness 70 is efficiency-neutral.
	efficiencyMidpoint = decimal.NewFromInt(70)

	// knowledgeInnovationFactor applies once per knowledge-driven
	// component in the selection.
	knowledgeInnovationFactor = decimal.NewFromFloat(1.15)

	// ruleOfLawTradePoints is added per rule-of-law-like component.
	ruleOfLawTradePoints = decimal.NewFromInt(5)
)

// Composition is the outcome of composing one family's selection: the
// modifier bundle, the raw scores and the activated rules.
type Composition struct {
	Bundle             domain.ModifierBundle
	EffectivenessScore decimal.Decimal
	LegitimacyScore    decimal.Decimal
	ActiveSynergies    []domain.SynergyRule
	ActiveConflicts    []domain.ConflictRule
}

// Compose derives a modifier bundle and effectiveness score from one
// family's selection. An empty selection returns neutral defaults with
// effectiveness zero. Synergies and conflicts are evaluated
// independently; a selection satisfying both applies both.
func Compose(selection domain.Selection, cat *catalog.Catalog, rules domain.RuleSet, ctx domain.CountryContext) Composition {
	if len(selection) == 0 {
		return Composition{Bundle: domain.NeutralBundle()}
	}

	bundle := domain.NeutralBundle()
	effectivenessSum := zero
	legitimacySum := zero

	for _, kind := range selection {
		profile := cat.Profile(kind)
		bundle.TaxCollectionMultiplier = bundle.TaxCollectionMultiplier.Mul(profile.TaxImpact)
		bundle.GDPGrowthModifier = bundle.GDPGrowthModifier.Mul(profile.EconomicImpact)
		bundle.StabilityBonus = bundle.StabilityBonus.Add(profile.StabilityImpact)
		bundle.GovernmentEfficiencyMultiplier = bundle.GovernmentEfficiencyMultiplier.Mul(profile.BaseEffectiveness.Div(efficiencyMidpoint))
		if profile.KnowledgeDriven {
			bundle.InnovationMultiplier = bundle.InnovationMultiplier.Mul(knowledgeInnovationFactor)
		}
		if profile.RuleOfLawBonus {
			bundle.InternationalTradeBonus = bundle.InternationalTradeBonus.Add(ruleOfLawTradePoints)
		}
		effectivenessSum = effectivenessSum.Add(profile.BaseEffectiveness)
		legitimacySum = legitimacySum.Add(profile.LegitimacyImpact)
	}

	var synergies []domain.SynergyRule
	var conflicts []domain.ConflictRule
	ruleAdjustment := zero

	for _, rule := range rules.Synergies {
		if !selection.ContainsAll(rule.Components) {
			continue
		}
		bundle.GDPGrowthModifier = bundle.GDPGrowthModifier.Mul(one.Add(rule.EconomicBonus))
		bundle.TaxCollectionMultiplier = bundle.TaxCollectionMultiplier.Mul(one.Add(rule.TaxBonus))
		bundle.StabilityBonus = bundle.StabilityBonus.Add(rule.StabilityBonus)
		ruleAdjustment = ruleAdjustment.Add(rule.EconomicBonus).Add(rule.TaxBonus)
		synergies = append(synergies, rule)
	}
	for _, rule := range rules.Conflicts {
		if !selection.ContainsAll(rule.Components) {
			continue
		}
		bundle.GDPGrowthModifier = bundle.GDPGrowthModifier.Mul(one.Sub(rule.EconomicPenalty))
		bundle.TaxCollectionMultiplier = bundle.TaxCollectionMultiplier.Mul(one.Sub(rule.TaxPenalty))
		bundle.StabilityBonus = bundle.StabilityBonus.Sub(rule.StabilityPenalty)
		ruleAdjustment = ruleAdjustment.Sub(rule.EconomicPenalty).Sub(rule.TaxPenalty)
		conflicts = append(conflicts, rule)
	}

	mean := effectivenessSum.Div(decimal.NewFromInt(int64(len(selection))))
	score := mean.Add(ruleAdjustment.Mul(hundred)).Mul(ctx.Multiplier())

	return Composition{
		Bundle:             bundle,
		EffectivenessScore: clampScore(score),
		LegitimacyScore:    clampScore(decimal.NewFromInt(50).Add(legitimacySum)),
		ActiveSynergies:    synergies,
		ActiveConflicts:    conflicts,
	}
}

// NetRuleAdjustment sums the fractional economic and tax adjustments of
// the activated rules: synergy bonuses positive, conflict penalties
// negative. The applicator turns this into the net synergy multiplier.
func NetRuleAdjustment(synergies []domain.SynergyRule, conflicts []domain.ConflictRule) decimal.Decimal {
	total := zero
	for _, rule := range synergies {
		total = total.Add(rule.EconomicBonus).Add(rule.TaxBonus)
	}
	for _, rule := range conflicts {
		total = total.Sub(rule.EconomicPenalty).Sub(rule.TaxPenalty)
	}
	return total
}

// clampScore bounds a score to [0, 100].
func clampScore(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return zero
	}
	if d.GreaterThan(hundred) {
		return hundred
	}
	return d
}

// clampMultiplier bounds a derived multiplier to [0.5, 1.5].
func clampMultiplier(d decimal.Decimal) decimal.Decimal {
	lo := decimal.NewFromFloat(0.5)
	hi := decimal.NewFromFloat(1.5)
	if d.LessThan(lo) {
		return lo
	}
	if d.GreaterThan(hi) {
		return hi
	}
	return d
}
