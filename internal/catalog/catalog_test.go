package catalog

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/algolds/ixgov/internal/domain"
)

func TestDefaultCatalogCoversDeclaredKinds(t *testing.T) {
	cat := Default()

	kinds := []domain.ComponentKind{
		// governance
		domain.CentralizedPower, domain.FederalSystem, domain.ConfederateSystem, domain.UnitarySystem,
		domain.DemocraticProcess, domain.AutocraticProcess, domain.TechnocraticProcess,
		domain.ConsensusProcess, domain.OligarchicProcess,
		domain.ElectoralLegitimacy, domain.TraditionalLegitimacy, domain.PerformanceLegitimacy,
		domain.CharismaticLegitimacy, domain.ReligiousLegitimacy,
		domain.ProfessionalBureaucracy, domain.MilitaryAdministration, domain.IndependentJudiciary,
		domain.PartisanInstitutions, domain.TechnocraticAgencies,
		domain.RuleOfLaw, domain.SurveillanceSystem,
		// economic
		domain.FreeMarketSystem, domain.PlannedEconomy, domain.MixedEconomy, domain.StateCapitalism,
		domain.CentralBankIndependence, domain.OpenTradePolicy, domain.ProtectionistPolicy,
		domain.InnovationInvestment, domain.InfrastructureInvestment, domain.LaborProtections,
		// tax
		domain.ProgressiveIncomeTax, domain.FlatIncomeTax, domain.ConsumptionTax,
		domain.CorporateTaxRegime, domain.WealthTax, domain.DigitalTaxAdministration,
		domain.TaxEnforcementAgency, domain.BroadTaxBase, domain.TaxIncentiveProgram,
	}

	for _, kind := range kinds {
		assert.True(t, cat.Has(kind), "missing profile for %s", kind)
	}
}

func TestDefaultProfilesAreInRange(t *testing.T) {
	cat := Default()

	lowImpact := decimal.NewFromFloat(0.8)
	highImpact := decimal.NewFromFloat(1.3)

	for _, family := range []domain.ComponentFamily{domain.FamilyGovernance, domain.FamilyEconomic, domain.FamilyTax} {
		for _, kind := range cat.Kinds(family) {
			p := cat.Profile(kind)
			assert.Equal(t, kind, p.Kind)
			assert.Equal(t, family, p.Family)
			assert.NotEmpty(t, p.Name, "%s needs a display name", kind)

			assert.False(t, p.BaseEffectiveness.IsNegative(), "%s effectiveness below 0", kind)
			assert.True(t, p.BaseEffectiveness.LessThanOrEqual(decimal.NewFromInt(100)),
				"%s effectiveness above 100", kind)

			assert.True(t, p.EconomicImpact.GreaterThanOrEqual(lowImpact) &&
				p.EconomicImpact.LessThanOrEqual(highImpact),
				"%s economic impact %s outside [0.8, 1.3]", kind, p.EconomicImpact)
			assert.True(t, p.TaxImpact.GreaterThanOrEqual(lowImpact) &&
				p.TaxImpact.LessThanOrEqual(highImpact),
				"%s tax impact %s outside [0.8, 1.3]", kind, p.TaxImpact)
		}
	}
}

func TestProfileDegradesToNeutral(t *testing.T) {
	cat := Default()
	p := cat.Profile("SOMETHING_NEW")

	assert.Equal(t, domain.ComponentKind("SOMETHING_NEW"), p.Kind)
	assert.True(t, p.BaseEffectiveness.Equal(decimal.NewFromInt(50)))
	assert.True(t, p.EconomicImpact.Equal(decimal.NewFromInt(1)))
	assert.True(t, p.TaxImpact.Equal(decimal.NewFromInt(1)))
	assert.True(t, p.StabilityImpact.IsZero())
	assert.False(t, cat.Has("SOMETHING_NEW"))
}

func TestFamilyOf(t *testing.T) {
	cat := Default()

	assert.Equal(t, domain.FamilyGovernance, cat.FamilyOf(domain.RuleOfLaw))
	assert.Equal(t, domain.FamilyEconomic, cat.FamilyOf(domain.FreeMarketSystem))
	assert.Equal(t, domain.FamilyTax, cat.FamilyOf(domain.BroadTaxBase))
	assert.Equal(t, domain.FamilyGovernance, cat.FamilyOf("SOMETHING_NEW"),
		"unknown kinds fall back to the governance family")
}

func TestSpecialFlagAssignments(t *testing.T) {
	cat := Default()

	assert.True(t, cat.Profile(domain.TechnocraticProcess).KnowledgeDriven)
	assert.True(t, cat.Profile(domain.InnovationInvestment).KnowledgeDriven)
	assert.True(t, cat.Profile(domain.DigitalTaxAdministration).KnowledgeDriven)
	assert.True(t, cat.Profile(domain.RuleOfLaw).RuleOfLawBonus)
	assert.True(t, cat.Profile(domain.IndependentJudiciary).RuleOfLawBonus)
	assert.False(t, cat.Profile(domain.ProfessionalBureaucracy).KnowledgeDriven)
}

func TestDefaultRulesReferenceCataloguedKinds(t *testing.T) {
	cat := Default()
	rules := DefaultRules()

	check := func(t *testing.T, kinds []domain.ComponentKind, where string) {
		t.Helper()
		require.NotEmpty(t, kinds, "%s has no components", where)
		for _, kind := range kinds {
			assert.True(t, cat.Has(kind), "%s references uncatalogued kind %s", where, kind)
		}
	}

	for _, set := range []domain.RuleSet{rules.Governance, rules.Economic, rules.Tax} {
		for _, rule := range set.Synergies {
			check(t, rule.Components, rule.Description)
		}
		for _, rule := range set.Conflicts {
			check(t, rule.Components, rule.Description)
		}
	}

	for _, cross := range rules.Cross {
		members := 0
		for _, kinds := range [][]domain.ComponentKind{cross.Governance, cross.Economic, cross.Tax} {
			members += len(kinds)
			for _, kind := range kinds {
				assert.True(t, cat.Has(kind), "%s references uncatalogued kind %s", cross.Name, kind)
			}
		}
		assert.GreaterOrEqual(t, members, 2, "%s must span at least two kinds", cross.Name)
		assert.True(t, cross.Bonus.IsPositive(), "%s needs a positive bonus", cross.Name)
	}
}

func TestRuleBonusesAreFractional(t *testing.T) {
	rules := DefaultRules()
	ceiling := decimal.NewFromFloat(0.5)

	for _, set := range []domain.RuleSet{rules.Governance, rules.Economic, rules.Tax} {
		for _, rule := range set.Synergies {
			assert.True(t, rule.EconomicBonus.LessThan(ceiling),
				"%s economic bonus %s looks like percentage points, not a fraction", rule.Description, rule.EconomicBonus)
			assert.False(t, rule.EconomicBonus.IsNegative())
			assert.False(t, rule.TaxBonus.IsNegative())
		}
		for _, rule := range set.Conflicts {
			assert.True(t, rule.EconomicPenalty.LessThan(ceiling),
				"%s economic penalty %s looks like percentage points, not a fraction", rule.Description, rule.EconomicPenalty)
			assert.False(t, rule.EconomicPenalty.IsNegative())
		}
	}
}
