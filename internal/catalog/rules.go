package catalog

import (
	"github.com/shopspring/decimal"

	"github.com/algolds/ixgov/internal/domain"
)

// Rules bundles every rule table the engine evaluates: one synergy/
// conflict set per family plus the hand-authored cross-domain table.
type Rules struct {
	Governance domain.RuleSet
	Economic   domain.RuleSet
	Tax        domain.RuleSet
	Cross      []domain.CrossDomainSynergy
}

// DefaultRules returns the standard rule tables.
func DefaultRules() Rules {
	return Rules{
		Governance: governanceRules(),
		Economic:   economicRules(),
		Tax:        taxRules(),
		Cross:      crossDomainSynergies(),
	}
}

func syn(desc string, econ, tax, stab float64, kinds ...domain.ComponentKind) domain.SynergyRule {
	return domain.SynergyRule{
		Components:     kinds,
		Description:    desc,
		EconomicBonus:  dec(econ),
		TaxBonus:       dec(tax),
		StabilityBonus: dec(stab),
	}
}

func conf(desc string, econ, tax, stab float64, kinds ...domain.ComponentKind) domain.ConflictRule {
	return domain.ConflictRule{
		Components:       kinds,
		Description:      desc,
		EconomicPenalty:  dec(econ),
		TaxPenalty:       dec(tax),
		StabilityPenalty: dec(stab),
	}
}

func governanceRules() domain.RuleSet {
	return domain.RuleSet{
		Synergies: []domain.SynergyRule{
			syn("Expert-led decision making backed by a professional civil service",
				0.15, 0.10, 5, domain.TechnocraticProcess, domain.ProfessionalBureaucracy),
			syn("Elections grounded in an accepted electoral mandate",
				0.08, 0.05, 8, domain.DemocraticProcess, domain.ElectoralLegitimacy),
			syn("Courts able to enforce the law without interference",
				0.12, 0.08, 10, domain.RuleOfLaw, domain.IndependentJudiciary),
			syn("Regional autonomy channelled through democratic institutions",
				0.05, 0.03, 4, domain.FederalSystem, domain.DemocraticProcess),
			syn("A disciplined bureaucracy amplifies central direction",
				0.07, 0.09, 2, domain.CentralizedPower, domain.ProfessionalBureaucracy),
			syn("Agencies judged on delivery reinforce performance legitimacy",
				0.10, 0.06, 3, domain.PerformanceLegitimacy, domain.TechnocraticAgencies),
			syn("Unitary administration, career officials and legal restraint",
				0.09, 0.07, 6, domain.UnitarySystem, domain.ProfessionalBureaucracy, domain.RuleOfLaw),
		},
		Conflicts: []domain.ConflictRule{
			conf("Democratic and autocratic decision processes undermine each other",
				0.20, 0.10, 12, domain.DemocraticProcess, domain.AutocraticProcess),
			conf("Centralized power contradicts federal power sharing",
				0.15, 0.08, 10, domain.CentralizedPower, domain.FederalSystem),
			conf("Military administration erodes an electoral mandate",
				0.10, 0.05, 8, domain.MilitaryAdministration, domain.ElectoralLegitimacy),
			conf("Pervasive surveillance corrodes democratic participation",
				0.08, 0.04, 6, domain.SurveillanceSystem, domain.DemocraticProcess),
			conf("Personality-driven rule bypasses the career bureaucracy",
				0.06, 0.05, 4, domain.CharismaticLegitimacy, domain.ProfessionalBureaucracy),
			conf("A confederation cannot host centralized power",
				0.12, 0.08, 9, domain.ConfederateSystem, domain.CentralizedPower),
			conf("Partisan capture compromises judicial independence",
				0.07, 0.06, 5, domain.PartisanInstitutions, domain.IndependentJudiciary),
		},
	}
}

func economicRules() domain.RuleSet {
	return domain.RuleSet{
		Synergies: []domain.SynergyRule{
			syn("Open markets compound with open borders",
				0.12, 0.04, 0, domain.FreeMarketSystem, domain.OpenTradePolicy),
			syn("Research investment needs infrastructure to scale",
				0.10, 0.05, 0, domain.InnovationInvestment, domain.InfrastructureInvestment),
			syn("Independent monetary policy anchors market confidence",
				0.08, 0.03, 0, domain.CentralBankIndependence, domain.FreeMarketSystem),
			syn("A mixed economy with labor protections sustains demand",
				0.05, 0.04, 0, domain.MixedEconomy, domain.LaborProtections),
			syn("State-directed capital builds out public infrastructure",
				0.07, 0.06, 0, domain.StateCapitalism, domain.InfrastructureInvestment),
		},
		Conflicts: []domain.ConflictRule{
			conf("Market allocation and central planning cannot coexist",
				0.18, 0.08, 0, domain.FreeMarketSystem, domain.PlannedEconomy),
			conf("Open trade is negated by protectionist barriers",
				0.14, 0.05, 0, domain.OpenTradePolicy, domain.ProtectionistPolicy),
			conf("Central planning overrides independent monetary policy",
				0.08, 0.04, 0, domain.PlannedEconomy, domain.CentralBankIndependence),
			conf("State champions crowd out private competition",
				0.06, 0.03, 0, domain.StateCapitalism, domain.FreeMarketSystem),
		},
	}
}

func taxRules() domain.RuleSet {
	return domain.RuleSet{
		Synergies: []domain.SynergyRule{
			syn("Progressive rates only collect with real enforcement",
				0.03, 0.12, 0, domain.ProgressiveIncomeTax, domain.TaxEnforcementAgency),
			syn("Digital administration over a broad base maximizes capture",
				0.04, 0.15, 0, domain.DigitalTaxAdministration, domain.BroadTaxBase),
			syn("Consumption taxes are most efficient over a broad base",
				0.02, 0.08, 0, domain.ConsumptionTax, domain.BroadTaxBase),
			syn("Corporate assessment backed by audit capacity",
				0.02, 0.07, 0, domain.CorporateTaxRegime, domain.TaxEnforcementAgency),
		},
		Conflicts: []domain.ConflictRule{
			conf("Progressive and flat schedules cannot both apply",
				0.04, 0.15, 0, domain.ProgressiveIncomeTax, domain.FlatIncomeTax),
			conf("Wealth taxation undercut by incentive carve-outs",
				0.03, 0.10, 0, domain.WealthTax, domain.TaxIncentiveProgram),
			conf("A flat schedule paired with wealth levies confuses compliance",
				0.02, 0.06, 0, domain.FlatIncomeTax, domain.WealthTax),
		},
	}
}

// crossDomainSynergies is intentionally small and hand-authored; it is
// not derived from the single-family tables.
func crossDomainSynergies() []domain.CrossDomainSynergy {
	return []domain.CrossDomainSynergy{
		{
			Name:        "Democratic Markets",
			Description: "Democratic oversight legitimizes market outcomes",
			Governance:  []domain.ComponentKind{domain.DemocraticProcess},
			Economic:    []domain.ComponentKind{domain.FreeMarketSystem},
			Bonus:       decimal.NewFromFloat(0.03),
		},
		{
			Name:        "Technocratic Planning",
			Description: "Expert government makes planned allocation workable",
			Governance:  []domain.ComponentKind{domain.TechnocraticProcess},
			Economic:    []domain.ComponentKind{domain.PlannedEconomy},
			Bonus:       decimal.NewFromFloat(0.02),
		},
		{
			Name:        "Institutional Compliance",
			Description: "Legal certainty makes tax enforcement credible",
			Governance:  []domain.ComponentKind{domain.RuleOfLaw},
			Tax:         []domain.ComponentKind{domain.TaxEnforcementAgency},
			Bonus:       decimal.NewFromFloat(0.025),
		},
		{
			Name:        "Digital State",
			Description: "Technocratic agencies, innovation funding and digital collection",
			Governance:  []domain.ComponentKind{domain.TechnocraticAgencies},
			Economic:    []domain.ComponentKind{domain.InnovationInvestment},
			Tax:         []domain.ComponentKind{domain.DigitalTaxAdministration},
			Bonus:       decimal.NewFromFloat(0.04),
		},
		{
			Name:        "Stable Investment Climate",
			Description: "Independent courts and an independent central bank",
			Governance:  []domain.ComponentKind{domain.IndependentJudiciary},
			Economic:    []domain.ComponentKind{domain.CentralBankIndependence},
			Bonus:       decimal.NewFromFloat(0.02),
		},
	}
}
