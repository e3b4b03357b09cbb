// Package config parses and validates simulation input files.
package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/algolds/ixgov/internal/domain"
)

// InputParser handles parsing of simulation input files.
type InputParser struct{}

// NewInputParser creates a new input parser.
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a simulation from a YAML file.
func (ip *InputParser) LoadFromFile(filename string) (*domain.Simulation, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse parses and validates simulation YAML.
func (ip *InputParser) Parse(data []byte) (*domain.Simulation, error) {
	var sim domain.Simulation
	if err := yaml.Unmarshal(data, &sim); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateSimulation(&sim); err != nil {
		return nil, fmt.Errorf("simulation validation failed: %w", err)
	}

	return &sim, nil
}

// ValidateSimulation validates the loaded simulation.
func (ip *InputParser) ValidateSimulation(sim *domain.Simulation) error {
	if sim.Country == "" {
		return fmt.Errorf("country name is required")
	}

	if err := ip.validateContext(&sim.Context); err != nil {
		return fmt.Errorf("context validation failed: %w", err)
	}
	if err := ip.validateBaseline(&sim.Baseline); err != nil {
		return fmt.Errorf("baseline validation failed: %w", err)
	}

	if len(sim.Scenarios) == 0 {
		return fmt.Errorf("no scenarios provided")
	}
	seen := map[string]bool{}
	for i, scenario := range sim.Scenarios {
		if scenario.Name == "" {
			return fmt.Errorf("scenario %d: name is required", i)
		}
		if seen[scenario.Name] {
			return fmt.Errorf("scenario %d: duplicate name %q", i, scenario.Name)
		}
		seen[scenario.Name] = true
	}

	return nil
}

// validateContext accepts empty fields (the engine defaults them) but
// rejects values outside the known enumerations.
func (ip *InputParser) validateContext(ctx *domain.CountryContext) error {
	switch ctx.Size {
	case "", domain.SizeSmall, domain.SizeMedium, domain.SizeLarge:
	default:
		return fmt.Errorf("unknown country size %q", ctx.Size)
	}
	switch ctx.DevelopmentLevel {
	case "", domain.DevelopmentDeveloping, domain.DevelopmentEmerging, domain.DevelopmentDeveloped:
	default:
		return fmt.Errorf("unknown development level %q", ctx.DevelopmentLevel)
	}
	for i, challenge := range ctx.Challenges {
		if challenge.Name == "" {
			return fmt.Errorf("challenge %d: name is required", i)
		}
		switch challenge.Severity {
		case "low", "medium", "high":
		default:
			return fmt.Errorf("challenge %d (%s): severity must be low, medium or high, got %q", i, challenge.Name, challenge.Severity)
		}
	}
	return nil
}

// validateBaseline caps the figures at plausible extremes. Unknown
// component kinds in scenarios are deliberately not rejected: the
// engine degrades them to neutral profiles.
func (ip *InputParser) validateBaseline(baseline *domain.EconomicBaseline) error {
	if baseline.Population <= 0 {
		return fmt.Errorf("population must be positive, got %d", baseline.Population)
	}
	if baseline.NominalGDP.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("nominal GDP must be positive, got %s", baseline.NominalGDP)
	}
	if baseline.GDPGrowthRate.LessThan(decimal.NewFromFloat(-0.25)) || baseline.GDPGrowthRate.GreaterThan(decimal.NewFromFloat(0.30)) {
		return fmt.Errorf("GDP growth rate must be between -25%% and 30%%, got %s%%",
			baseline.GDPGrowthRate.Mul(decimal.NewFromInt(100)).StringFixed(2))
	}
	if baseline.UnemploymentRate.IsNegative() || baseline.UnemploymentRate.GreaterThan(decimal.NewFromInt(1)) {
		return fmt.Errorf("unemployment rate must be between 0 and 1, got %s", baseline.UnemploymentRate)
	}
	if baseline.TaxRevenuePercent.IsNegative() || baseline.TaxRevenuePercent.GreaterThan(decimal.NewFromInt(1)) {
		return fmt.Errorf("tax revenue share must be between 0 and 1, got %s", baseline.TaxRevenuePercent)
	}
	if baseline.InflationRate.LessThan(decimal.NewFromFloat(-0.10)) || baseline.InflationRate.GreaterThan(decimal.NewFromFloat(0.50)) {
		return fmt.Errorf("inflation rate must be between -10%% and 50%%, got %s%%",
			baseline.InflationRate.Mul(decimal.NewFromInt(100)).StringFixed(2))
	}
	return nil
}
