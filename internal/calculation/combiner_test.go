package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/algolds/ixgov/internal/domain"
)

func TestCombineNeutralIdentity(t *testing.T) {
	neutral := domain.NeutralBundle()
	m := Combine(neutral, neutral, neutral, nil, nil, nil, nil)

	assert.True(t, m.TaxCollectionMultiplier.Equal(decimal.NewFromInt(1)))
	assert.True(t, m.GDPGrowthModifier.Equal(decimal.NewFromInt(1)))
	assert.True(t, m.InnovationMultiplier.Equal(decimal.NewFromInt(1)))
	assert.True(t, m.GovernmentEfficiencyMultiplier.Equal(decimal.NewFromInt(1)))
	assert.True(t, m.UnemploymentRateMultiplier.Equal(decimal.NewFromInt(1)))
	assert.True(t, m.InflationRateMultiplier.Equal(decimal.NewFromInt(1)))
	assert.True(t, m.StabilityMultiplier.Equal(decimal.NewFromInt(1)))
	assert.True(t, m.StabilityBonus.IsZero())
	assert.Empty(t, m.ActiveCrossSynergies)
}

func TestCombineNeutralLeavesOtherUnchanged(t *testing.T) {
	other := domain.NeutralBundle()
	other.GDPGrowthModifier = decimal.NewFromFloat(1.25)
	other.TaxCollectionMultiplier = decimal.NewFromFloat(0.9)
	other.StabilityBonus = decimal.NewFromInt(7)

	neutral := domain.NeutralBundle()
	m := Combine(other, neutral, neutral, nil, nil, nil, nil)

	assert.True(t, m.GDPGrowthModifier.Equal(other.GDPGrowthModifier))
	assert.True(t, m.TaxCollectionMultiplier.Equal(other.TaxCollectionMultiplier))
	assert.True(t, m.StabilityBonus.Equal(other.StabilityBonus))
}

func TestCombineFieldWiseProducts(t *testing.T) {
	gov := domain.NeutralBundle()
	gov.GDPGrowthModifier = decimal.NewFromFloat(1.1)
	gov.TaxCollectionMultiplier = decimal.NewFromFloat(1.2)
	gov.StabilityBonus = decimal.NewFromInt(10)
	gov.InternationalTradeBonus = decimal.NewFromInt(5)

	econ := domain.NeutralBundle()
	econ.GDPGrowthModifier = decimal.NewFromFloat(1.2)
	econ.StabilityBonus = decimal.NewFromInt(-4)

	tax := domain.NeutralBundle()
	tax.TaxCollectionMultiplier = decimal.NewFromFloat(1.1)

	m := Combine(gov, econ, tax, nil, nil, nil, nil)

	assert.True(t, m.GDPGrowthModifier.Equal(decimal.NewFromFloat(1.1).Mul(decimal.NewFromFloat(1.2))))
	assert.True(t, m.TaxCollectionMultiplier.Equal(decimal.NewFromFloat(1.2).Mul(decimal.NewFromFloat(1.1))))
	assert.True(t, m.StabilityBonus.Equal(decimal.NewFromInt(6)), "10 - 4 stability points")
	assert.True(t, m.InternationalTradeBonus.Equal(decimal.NewFromInt(5)))
}

func TestCombineOrderIndependence(t *testing.T) {
	a := domain.NeutralBundle()
	a.GDPGrowthModifier = decimal.NewFromFloat(1.3)
	b := domain.NeutralBundle()
	b.GDPGrowthModifier = decimal.NewFromFloat(0.8)
	c := domain.NeutralBundle()
	c.GDPGrowthModifier = decimal.NewFromFloat(1.05)

	first := Combine(a, b, c, nil, nil, nil, nil)
	second := Combine(c, a, b, nil, nil, nil, nil)

	assert.True(t, first.GDPGrowthModifier.Equal(second.GDPGrowthModifier))
}

func TestCombineDerivedMultipliers(t *testing.T) {
	tests := []struct {
		name             string
		stabilityPoints  int64
		efficiency       float64
		wantStability    decimal.Decimal
		wantUnemployment decimal.Decimal
		wantInflation    decimal.Decimal
	}{
		{
			name:             "neutral inputs stay neutral",
			stabilityPoints:  0,
			efficiency:       1.0,
			wantStability:    decimal.NewFromInt(1),
			wantUnemployment: decimal.NewFromInt(1),
			wantInflation:    decimal.NewFromInt(1),
		},
		{
			name:             "positive stability and efficiency",
			stabilityPoints:  20,
			efficiency:       1.2,
			wantStability:    decimal.NewFromFloat(1.2),
			wantUnemployment: decimal.NewFromFloat(0.8),
			wantInflation:    decimal.NewFromFloat(0.8),
		},
		{
			name:             "extreme inputs clamp to the band",
			stabilityPoints:  90,
			efficiency:       0.3,
			wantStability:    decimal.NewFromFloat(1.5),
			wantUnemployment: decimal.NewFromFloat(1.5),
			wantInflation:    decimal.NewFromFloat(0.5),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gov := domain.NeutralBundle()
			gov.StabilityBonus = decimal.NewFromInt(tt.stabilityPoints)
			gov.GovernmentEfficiencyMultiplier = decimal.NewFromFloat(tt.efficiency)

			m := Combine(gov, domain.NeutralBundle(), domain.NeutralBundle(), nil, nil, nil, nil)

			assert.True(t, m.StabilityMultiplier.Equal(tt.wantStability),
				"stability: expected %s, got %s", tt.wantStability, m.StabilityMultiplier)
			assert.True(t, m.UnemploymentRateMultiplier.Equal(tt.wantUnemployment),
				"unemployment: expected %s, got %s", tt.wantUnemployment, m.UnemploymentRateMultiplier)
			assert.True(t, m.InflationRateMultiplier.Equal(tt.wantInflation),
				"inflation: expected %s, got %s", tt.wantInflation, m.InflationRateMultiplier)
		})
	}
}

func TestCombineCrossDomainSynergy(t *testing.T) {
	cross := []domain.CrossDomainSynergy{{
		Name:       "Democratic Markets",
		Governance: []domain.ComponentKind{domain.DemocraticProcess},
		Economic:   []domain.ComponentKind{domain.FreeMarketSystem},
		Bonus:      decimal.NewFromFloat(0.03),
	}}

	neutral := domain.NeutralBundle()

	// Only one family satisfied: no activation.
	m := Combine(neutral, neutral, neutral,
		domain.Selection{domain.DemocraticProcess}, nil, nil, cross)
	assert.Empty(t, m.ActiveCrossSynergies)
	assert.True(t, m.GDPGrowthModifier.Equal(decimal.NewFromInt(1)))

	// Both families satisfied: flat additive bonus.
	m = Combine(neutral, neutral, neutral,
		domain.Selection{domain.DemocraticProcess},
		domain.Selection{domain.FreeMarketSystem}, nil, cross)
	require.Len(t, m.ActiveCrossSynergies, 1)
	assert.Equal(t, "Democratic Markets", m.ActiveCrossSynergies[0])
	assert.True(t, m.GDPGrowthModifier.Equal(decimal.NewFromFloat(1.03)),
		"expected 1.03, got %s", m.GDPGrowthModifier)
	assert.True(t, m.TaxCollectionMultiplier.Equal(decimal.NewFromFloat(1.015)),
		"half the bonus flows to tax collection, got %s", m.TaxCollectionMultiplier)
}
