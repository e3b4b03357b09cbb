package domain

import (
	"github.com/shopspring/decimal"
)

// EconomicBaseline is the set of unmodified country figures the effect
// applicator starts from. Rates are fractions (0.03 = 3%).
type EconomicBaseline struct {
	GDPGrowthRate     decimal.Decimal `yaml:"gdp_growth_rate" json:"gdp_growth_rate"`
	NominalGDP        decimal.Decimal `yaml:"nominal_gdp" json:"nominal_gdp"`
	GDPPerCapita      decimal.Decimal `yaml:"gdp_per_capita" json:"gdp_per_capita"`
	TaxRevenuePercent decimal.Decimal `yaml:"tax_revenue_percent" json:"tax_revenue_percent"`
	UnemploymentRate  decimal.Decimal `yaml:"unemployment_rate" json:"unemployment_rate"`
	InflationRate     decimal.Decimal `yaml:"inflation_rate" json:"inflation_rate"`
	Population        int64           `yaml:"population" json:"population"`
}

// EnhancedEconomy is the projected figure set after applying a combined
// modifier set to a baseline. Population is carried through unchanged:
// governance modifiers never touch it.
type EnhancedEconomy struct {
	GDPGrowthRate        decimal.Decimal `json:"gdp_growth_rate"`
	NominalGDP           decimal.Decimal `json:"nominal_gdp"`
	GDPPerCapita         decimal.Decimal `json:"gdp_per_capita"`
	TaxRevenuePercent    decimal.Decimal `json:"tax_revenue_percent"`
	UnemploymentRate     decimal.Decimal `json:"unemployment_rate"`
	InflationRate        decimal.Decimal `json:"inflation_rate"`
	Population           int64           `json:"population"`
	NetSynergyMultiplier decimal.Decimal `json:"net_synergy_multiplier"`
}
