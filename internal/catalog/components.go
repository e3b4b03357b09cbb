// Package catalog holds the static component profiles and the synergy,
// conflict and cross-domain rule tables the engine computes over. The
// tables are immutable configuration: built once, never mutated. Callers
// that need different tables (tests, alternate rule packs) construct
// their own Catalog instead of editing the defaults.
package catalog

import (
	"github.com/shopspring/decimal"

	"github.com/algolds/ixgov/internal/domain"
)

func dec(f float64) decimal.Decimal { return decimal.NewFromFloat(f) }

// Catalog maps component kinds to their profiles. Lookups never fail:
// unknown kinds degrade to the neutral profile.
type Catalog struct {
	profiles map[domain.ComponentKind]domain.ComponentProfile
}

// New builds a catalog from explicit profile lists.
func New(profiles ...[]domain.ComponentProfile) *Catalog {
	c := &Catalog{profiles: make(map[domain.ComponentKind]domain.ComponentProfile)}
	for _, list := range profiles {
		for _, p := range list {
			c.profiles[p.Kind] = p
		}
	}
	return c
}

// Default returns the standard catalog covering all three families.
func Default() *Catalog {
	return New(governanceProfiles(), economicProfiles(), taxProfiles())
}

// Profile returns the profile for kind, or the neutral profile when the
// kind is unmapped. It never fails.
func (c *Catalog) Profile(kind domain.ComponentKind) domain.ComponentProfile {
	if p, ok := c.profiles[kind]; ok {
		return p
	}
	return domain.NeutralProfile(kind)
}

// Has reports whether kind has an explicit profile.
func (c *Catalog) Has(kind domain.ComponentKind) bool {
	_, ok := c.profiles[kind]
	return ok
}

// FamilyOf returns the family a kind belongs to. Unknown kinds are
// treated as governance components, consistent with the neutral-profile
// degradation policy.
func (c *Catalog) FamilyOf(kind domain.ComponentKind) domain.ComponentFamily {
	if p, ok := c.profiles[kind]; ok {
		return p.Family
	}
	return domain.FamilyGovernance
}

// Kinds returns every catalogued kind in the given family.
func (c *Catalog) Kinds(family domain.ComponentFamily) []domain.ComponentKind {
	var out []domain.ComponentKind
	for k, p := range c.profiles {
		if p.Family == family {
			out = append(out, k)
		}
	}
	return out
}

func governanceProfiles() []domain.ComponentProfile {
	g := func(kind domain.ComponentKind, name string, eff, econ, tax, stab, legit float64, impacts ...string) domain.ComponentProfile {
		return domain.ComponentProfile{
			Kind:              kind,
			Name:              name,
			Family:            domain.FamilyGovernance,
			BaseEffectiveness: dec(eff),
			EconomicImpact:    dec(econ),
			TaxImpact:         dec(tax),
			StabilityImpact:   dec(stab),
			LegitimacyImpact:  dec(legit),
			StructureImpacts:  impacts,
		}
	}

	profiles := []domain.ComponentProfile{
		// Power distribution
		g(domain.CentralizedPower, "Centralized Power", 70, 1.05, 1.10, -5, -3, "Central Planning Office"),
		g(domain.FederalSystem, "Federal System", 72, 1.02, 0.95, 8, 6, "Council of Regions"),
		g(domain.ConfederateSystem, "Confederate System", 55, 0.92, 0.85, -8, 4, "Assembly of Members"),
		g(domain.UnitarySystem, "Unitary System", 75, 1.06, 1.08, 3, 2, "National Administration"),

		// Decision process
		g(domain.DemocraticProcess, "Democratic Process", 75, 1.05, 1.02, 10, 12, "National Legislature", "Electoral Commission"),
		g(domain.AutocraticProcess, "Autocratic Process", 60, 0.95, 1.05, -10, -8, "Executive Directorate"),
		g(domain.ConsensusProcess, "Consensus Process", 62, 0.96, 0.98, 12, 10, "Deliberative Council"),
		g(domain.OligarchicProcess, "Oligarchic Process", 58, 1.00, 0.92, -6, -6, "Council of Notables"),

		// Legitimacy source
		g(domain.ElectoralLegitimacy, "Electoral Legitimacy", 72, 1.03, 1.04, 8, 15),
		g(domain.TraditionalLegitimacy, "Traditional Legitimacy", 60, 0.94, 0.96, 6, 8),
		g(domain.PerformanceLegitimacy, "Performance Legitimacy", 78, 1.10, 1.05, 4, 6),
		g(domain.CharismaticLegitimacy, "Charismatic Legitimacy", 55, 0.98, 0.94, -12, 5),
		g(domain.ReligiousLegitimacy, "Religious Legitimacy", 58, 0.92, 0.98, 5, 7),

		// Institutions
		g(domain.MilitaryAdministration, "Military Administration", 65, 0.90, 1.02, -4, -10, "Defense Directorate"),
		g(domain.PartisanInstitutions, "Partisan Institutions", 50, 0.93, 0.90, -8, -5),
		g(domain.SurveillanceSystem, "Surveillance System", 68, 0.97, 1.12, -3, -12, "Internal Security Bureau"),
	}

	// The technocratic pair is calibrated at 85 so the pair synergy is
	// visible above the unweighted mean.
	technocratic := g(domain.TechnocraticProcess, "Technocratic Process", 85, 1.15, 1.08, 2, -2, "Policy Analysis Office")
	technocratic.KnowledgeDriven = true

	agencies := g(domain.TechnocraticAgencies, "Technocratic Agencies", 80, 1.12, 1.06, 3, 0, "Regulatory Agencies")
	agencies.KnowledgeDriven = true

	bureaucracy := g(domain.ProfessionalBureaucracy, "Professional Bureaucracy", 85, 1.10, 1.15, 6, 4, "Civil Service Commission")

	ruleOfLaw := g(domain.RuleOfLaw, "Rule of Law", 82, 1.12, 1.10, 15, 12, "Ministry of Justice")
	ruleOfLaw.RuleOfLawBonus = true

	judiciary := g(domain.IndependentJudiciary, "Independent Judiciary", 78, 1.06, 1.04, 12, 10, "Supreme Court")
	judiciary.RuleOfLawBonus = true

	return append(profiles, technocratic, agencies, bureaucracy, ruleOfLaw, judiciary)
}

func economicProfiles() []domain.ComponentProfile {
	e := func(kind domain.ComponentKind, name string, eff, econ, tax, stab, legit float64) domain.ComponentProfile {
		return domain.ComponentProfile{
			Kind:              kind,
			Name:              name,
			Family:            domain.FamilyEconomic,
			BaseEffectiveness: dec(eff),
			EconomicImpact:    dec(econ),
			TaxImpact:         dec(tax),
			StabilityImpact:   dec(stab),
			LegitimacyImpact:  dec(legit),
		}
	}

	profiles := []domain.ComponentProfile{
		e(domain.FreeMarketSystem, "Free Market System", 76, 1.18, 0.95, -2, 3),
		e(domain.PlannedEconomy, "Planned Economy", 58, 0.85, 1.10, 4, -4),
		e(domain.MixedEconomy, "Mixed Economy", 70, 1.05, 1.03, 6, 5),
		e(domain.StateCapitalism, "State Capitalism", 68, 1.08, 1.08, -1, -2),
		e(domain.OpenTradePolicy, "Open Trade Policy", 74, 1.12, 0.98, 1, 2),
		e(domain.ProtectionistPolicy, "Protectionist Policy", 56, 0.88, 1.04, 3, 1),
		e(domain.InfrastructureInvestment, "Infrastructure Investment", 75, 1.10, 1.02, 5, 4),
		e(domain.LaborProtections, "Labor Protections", 66, 0.96, 1.01, 8, 9),
	}

	centralBank := e(domain.CentralBankIndependence, "Central Bank Independence", 80, 1.08, 1.02, 10, 4)
	centralBank.RuleOfLawBonus = true

	innovation := e(domain.InnovationInvestment, "Innovation Investment", 78, 1.20, 0.97, 0, 2)
	innovation.KnowledgeDriven = true

	return append(profiles, centralBank, innovation)
}

func taxProfiles() []domain.ComponentProfile {
	t := func(kind domain.ComponentKind, name string, eff, econ, tax, stab, legit float64) domain.ComponentProfile {
		return domain.ComponentProfile{
			Kind:              kind,
			Name:              name,
			Family:            domain.FamilyTax,
			BaseEffectiveness: dec(eff),
			EconomicImpact:    dec(econ),
			TaxImpact:         dec(tax),
			StabilityImpact:   dec(stab),
			LegitimacyImpact:  dec(legit),
		}
	}

	profiles := []domain.ComponentProfile{
		t(domain.ProgressiveIncomeTax, "Progressive Income Tax", 72, 0.98, 1.15, 4, 8),
		t(domain.FlatIncomeTax, "Flat Income Tax", 65, 1.04, 1.05, 1, -2),
		t(domain.ConsumptionTax, "Consumption Tax", 68, 1.00, 1.10, 0, -3),
		t(domain.CorporateTaxRegime, "Corporate Tax Regime", 70, 0.96, 1.12, 2, 3),
		t(domain.WealthTax, "Wealth Tax", 55, 0.90, 1.06, -2, 6),
		t(domain.TaxEnforcementAgency, "Tax Enforcement Agency", 75, 0.99, 1.20, 3, 2),
		t(domain.BroadTaxBase, "Broad Tax Base", 74, 1.02, 1.14, 4, 3),
		t(domain.TaxIncentiveProgram, "Tax Incentive Program", 62, 1.10, 0.88, 0, 1),
	}

	digital := t(domain.DigitalTaxAdministration, "Digital Tax Administration", 80, 1.03, 1.18, 2, 2)
	digital.KnowledgeDriven = true

	return append(profiles, digital)
}
