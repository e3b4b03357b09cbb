package domain

import (
	"github.com/shopspring/decimal"
)

// CountrySize buckets a nation by scale for the context multiplier.
type CountrySize string

const (
	SizeSmall  CountrySize = "small"
	SizeMedium CountrySize = "medium"
	SizeLarge  CountrySize = "large"
)

// DevelopmentLevel buckets a nation by economic maturity.
type DevelopmentLevel string

const (
	DevelopmentDeveloping DevelopmentLevel = "developing"
	DevelopmentEmerging   DevelopmentLevel = "emerging"
	DevelopmentDeveloped  DevelopmentLevel = "developed"
)

// Challenge is a named national challenge with a qualitative severity.
// Challenges are descriptive context; they do not feed the multiplier.
type Challenge struct {
	Name     string `yaml:"name" json:"name"`
	Severity string `yaml:"severity" json:"severity"` // low, medium, high
}

// CountryContext is the opaque country profile handed in by the host.
// Its only computational role is the scalar effectiveness multiplier.
type CountryContext struct {
	Size               CountrySize      `yaml:"size" json:"size"`
	DevelopmentLevel   DevelopmentLevel `yaml:"development_level" json:"development_level"`
	PoliticalTradition string           `yaml:"political_tradition" json:"political_tradition"`
	Challenges         []Challenge      `yaml:"challenges,omitempty" json:"challenges,omitempty"`
}

// ContextPatch is a partial country-context update; nil fields are left
// unchanged.
type ContextPatch struct {
	Size               *CountrySize
	DevelopmentLevel   *DevelopmentLevel
	PoliticalTradition *string
	Challenges         *[]Challenge
}

// Normalized returns the context with missing fields defaulted to
// medium size, emerging development and a mixed tradition, which yield a
// multiplier of exactly 1.0.
func (c CountryContext) Normalized() CountryContext {
	out := c
	if out.Size == "" {
		out.Size = SizeMedium
	}
	if out.DevelopmentLevel == "" {
		out.DevelopmentLevel = DevelopmentEmerging
	}
	if out.PoliticalTradition == "" {
		out.PoliticalTradition = "mixed"
	}
	return out
}

// Multiplier returns the scalar applied to the raw effectiveness score:
// small ×1.10, large ×0.95, developed ×1.05, developing ×0.90. Size and
// development multipliers compose multiplicatively.
func (c CountryContext) Multiplier() decimal.Decimal {
	n := c.Normalized()
	m := decimal.NewFromInt(1)
	switch n.Size {
	case SizeSmall:
		m = m.Mul(decimal.NewFromFloat(1.10))
	case SizeLarge:
		m = m.Mul(decimal.NewFromFloat(0.95))
	}
	switch n.DevelopmentLevel {
	case DevelopmentDeveloped:
		m = m.Mul(decimal.NewFromFloat(1.05))
	case DevelopmentDeveloping:
		m = m.Mul(decimal.NewFromFloat(0.90))
	}
	return m
}

// Apply returns the context with the patch's non-nil fields applied.
func (c CountryContext) Apply(patch ContextPatch) CountryContext {
	out := c
	if patch.Size != nil {
		out.Size = *patch.Size
	}
	if patch.DevelopmentLevel != nil {
		out.DevelopmentLevel = *patch.DevelopmentLevel
	}
	if patch.PoliticalTradition != nil {
		out.PoliticalTradition = *patch.PoliticalTradition
	}
	if patch.Challenges != nil {
		out.Challenges = make([]Challenge, len(*patch.Challenges))
		copy(out.Challenges, *patch.Challenges)
	}
	return out
}

// Clone returns an independent copy of the context.
func (c CountryContext) Clone() CountryContext {
	out := c
	if c.Challenges != nil {
		out.Challenges = make([]Challenge, len(c.Challenges))
		copy(out.Challenges, c.Challenges)
	}
	return out
}
