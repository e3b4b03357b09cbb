// Package output renders scenario comparisons as console, JSON or CSV
// reports.
package output

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/algolds/ixgov/internal/domain"
)

// ReportGenerator handles report generation in the supported formats.
type ReportGenerator struct{}

// NewReportGenerator creates a new report generator.
func NewReportGenerator() *ReportGenerator {
	return &ReportGenerator{}
}

// GenerateReport generates a report in the specified format.
func GenerateReport(results *domain.ScenarioComparison, format string) error {
	generator := NewReportGenerator()

	switch format {
	case "console":
		return generator.GenerateConsoleReport(results)
	case "json":
		return generator.GenerateJSONReport(results)
	case "csv":
		return generator.GenerateCSVReport(results)
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}

// GenerateConsoleReport prints a detailed console-formatted report.
func (rg *ReportGenerator) GenerateConsoleReport(results *domain.ScenarioComparison) error {
	fmt.Println("=================================================================================")
	fmt.Printf("GOVERNANCE SCENARIO ANALYSIS: %s\n", results.Country)
	fmt.Println("=================================================================================")
	fmt.Println()

	fmt.Println("BASELINE FIGURES")
	fmt.Println("================")
	fmt.Printf("GDP Growth Rate:     %s\n", FormatPercent(results.Baseline.GDPGrowthRate))
	fmt.Printf("Nominal GDP:         %s\n", FormatAmount(results.Baseline.NominalGDP))
	fmt.Printf("GDP per Capita:      %s\n", FormatAmount(results.Baseline.GDPPerCapita))
	fmt.Printf("Tax Revenue Share:   %s\n", FormatPercent(results.Baseline.TaxRevenuePercent))
	fmt.Printf("Unemployment Rate:   %s\n", FormatPercent(results.Baseline.UnemploymentRate))
	fmt.Printf("Inflation Rate:      %s\n", FormatPercent(results.Baseline.InflationRate))
	fmt.Printf("Population:          %d\n", results.Baseline.Population)
	fmt.Println()

	for i, summary := range results.Summaries {
		fmt.Printf("SCENARIO %d: %s\n", i+1, summary.Name)
		fmt.Println(strings.Repeat("=", 50))
		fmt.Printf("Effectiveness Score:  %s / 100\n", FormatScore(summary.EffectivenessScore))
		fmt.Printf("Legitimacy Score:     %s / 100\n", FormatScore(summary.LegitimacyScore))
		fmt.Printf("Active Synergies:     %d\n", summary.SynergyCount)
		fmt.Printf("Active Conflicts:     %d\n", summary.ConflictCount)
		fmt.Printf("System Health:        %s\n", summary.Health.Rating)
		fmt.Println()

		fmt.Println("  PROJECTED FIGURES")
		fmt.Printf("  GDP Growth Rate:    %s (baseline %s)\n", FormatPercent(summary.Enhanced.GDPGrowthRate), FormatPercent(results.Baseline.GDPGrowthRate))
		fmt.Printf("  Nominal GDP:        %s\n", FormatAmount(summary.Enhanced.NominalGDP))
		fmt.Printf("  Tax Revenue Share:  %s\n", FormatPercent(summary.Enhanced.TaxRevenuePercent))
		fmt.Printf("  Unemployment Rate:  %s\n", FormatPercent(summary.Enhanced.UnemploymentRate))
		fmt.Printf("  Inflation Rate:     %s\n", FormatPercent(summary.Enhanced.InflationRate))
		fmt.Printf("  Net Synergy:        %s\n", FormatMultiplier(summary.Enhanced.NetSynergyMultiplier))
		fmt.Println()

		fmt.Printf("  GOVERNMENT STRUCTURE: %s\n", summary.State.Structure.StructureType)
		fmt.Printf("  %s\n", summary.State.Structure.GovernanceStyle)
		for _, department := range summary.State.Structure.Departments {
			fmt.Printf("    - %s\n", department)
		}
		fmt.Println()

		if len(summary.State.Intelligence) > 0 {
			fmt.Println("  INTELLIGENCE FEED")
			for _, item := range summary.State.Intelligence {
				fmt.Printf("    [%s/%s] %s: %s\n", item.Category, item.Severity, item.Title, item.Description)
			}
			fmt.Println()
		}

		if len(summary.Health.Issues) > 0 {
			fmt.Println("  ISSUES")
			for _, issue := range summary.Health.Issues {
				fmt.Printf("    - %s\n", issue)
			}
		}
		if len(summary.Health.Recommendations) > 0 {
			fmt.Println("  RECOMMENDATIONS")
			for _, rec := range summary.Health.Recommendations {
				fmt.Printf("    - %s\n", rec)
			}
		}
		fmt.Println()
	}

	fmt.Println("COMPARISON")
	fmt.Println("==========")
	fmt.Printf("Best overall effectiveness: %s\n", results.BestScenario)
	fmt.Printf("Best projected growth:      %s\n", results.BestGrowth)
	fmt.Printf("Best stability outlook:     %s\n", results.BestStability)

	return nil
}

// GenerateJSONReport prints the comparison as indented JSON.
func (rg *ReportGenerator) GenerateJSONReport(results *domain.ScenarioComparison) error {
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal comparison: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

// GenerateCSVReport prints a one-row-per-scenario summary CSV.
func (rg *ReportGenerator) GenerateCSVReport(results *domain.ScenarioComparison) error {
	data, err := rg.FormatCSV(results)
	if err != nil {
		return err
	}
	fmt.Print(string(data))
	return nil
}

// FormatCSV renders the summary CSV (one row per scenario).
func (rg *ReportGenerator) FormatCSV(results *domain.ScenarioComparison) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Scenario", "Effectiveness", "Legitimacy", "Synergies", "Conflicts", "GrowthRate", "TaxShare", "Unemployment", "Inflation", "Health"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, summary := range results.Summaries {
		row := []string{
			summary.Name,
			summary.EffectivenessScore.StringFixed(2),
			summary.LegitimacyScore.StringFixed(2),
			fmt.Sprintf("%d", summary.SynergyCount),
			fmt.Sprintf("%d", summary.ConflictCount),
			summary.Enhanced.GDPGrowthRate.StringFixed(4),
			summary.Enhanced.TaxRevenuePercent.StringFixed(4),
			summary.Enhanced.UnemploymentRate.StringFixed(4),
			summary.Enhanced.InflationRate.StringFixed(4),
			summary.Health.Rating,
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
