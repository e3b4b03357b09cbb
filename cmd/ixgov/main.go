package main

import (
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"time"

	"github.com/spf13/cobra"

	"github.com/algolds/ixgov/internal/calculation"
	"github.com/algolds/ixgov/internal/catalog"
	"github.com/algolds/ixgov/internal/config"
	"github.com/algolds/ixgov/internal/domain"
	"github.com/algolds/ixgov/internal/output"
)

// simpleCLILogger implements calculation.Logger using the standard log package
type simpleCLILogger struct{}

func (simpleCLILogger) Debugf(format string, args ...any) { log.Printf("DEBUG: "+format, args...) }
func (simpleCLILogger) Infof(format string, args ...any)  { log.Printf("INFO: "+format, args...) }
func (simpleCLILogger) Warnf(format string, args ...any)  { log.Printf("WARN: "+format, args...) }
func (simpleCLILogger) Errorf(format string, args ...any) { log.Printf("ERROR: "+format, args...) }

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(os.Stdout, "ixgov %s (commit %s, built %s)\n", version, commit, date)
			if info := buildInfo(); info != "" {
				fmt.Fprintln(os.Stdout, info)
			}
		},
	}
}

func buildInfo() string {
	if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
		return bi.String()
	}
	return ""
}

var rootCmd = &cobra.Command{
	Use:   "ixgov",
	Short: "Atomic governance modifier engine CLI",
	Long:  "Evaluates governance, economic and tax component selections against a country baseline",
}

var evaluateCmd = &cobra.Command{
	Use:   "evaluate [simulation-file]",
	Short: "Evaluate the scenarios in a simulation file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		parser := config.NewInputParser()
		sim, err := parser.LoadFromFile(args[0])
		if err != nil {
			return err
		}

		format, _ := cmd.Flags().GetString("format")
		verbose, _ := cmd.Flags().GetBool("verbose")

		var logger calculation.Logger = calculation.NopLogger{}
		if verbose {
			logger = simpleCLILogger{}
		}
		logger.Infof("evaluating %d scenario(s) for %s", len(sim.Scenarios), sim.Country)

		comparison := calculation.RunSimulation(catalog.Default(), catalog.DefaultRules(), *sim, time.Now())
		return output.GenerateReport(&comparison, format)
	},
}

var contributionCmd = &cobra.Command{
	Use:   "contribution [component-kind]",
	Short: "Show one component's catalogued impacts",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cat := catalog.Default()
		kind := domain.ComponentKind(args[0])
		if !cat.Has(kind) {
			fmt.Printf("Note: %s is not catalogued; showing the neutral default profile\n\n", kind)
		}
		c := calculation.Contribution(kind, cat, nil, nil, nil)

		fmt.Printf("Component:         %s (%s)\n", c.Name, c.Family)
		fmt.Printf("Base Effectiveness: %s\n", output.FormatScore(c.Effectiveness))
		fmt.Printf("Economic Impact:    %s\n", output.FormatMultiplier(c.EconomicImpact))
		fmt.Printf("Tax Impact:         %s\n", output.FormatMultiplier(c.TaxImpact))
		fmt.Printf("Stability Impact:   %s points\n", c.StabilityImpact.StringFixed(0))
		fmt.Printf("Legitimacy Impact:  %s points\n", c.LegitimacyImpact.StringFixed(0))
		for _, label := range c.StructureImpacts {
			fmt.Printf("Structure:          %s\n", label)
		}
		return nil
	},
}

var healthCmd = &cobra.Command{
	Use:   "health [simulation-file]",
	Short: "Assess system health for a scenario",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		parser := config.NewInputParser()
		sim, err := parser.LoadFromFile(args[0])
		if err != nil {
			return err
		}

		name, _ := cmd.Flags().GetString("scenario")
		scenario := sim.Scenarios[0]
		if name != "" {
			found := false
			for _, s := range sim.Scenarios {
				if s.Name == name {
					scenario = s
					found = true
					break
				}
			}
			if !found {
				return fmt.Errorf("scenario %q not found in %s", name, args[0])
			}
		}

		summary := calculation.EvaluateScenario(catalog.Default(), catalog.DefaultRules(), scenario, sim.Context, sim.Baseline, time.Now())

		fmt.Printf("Scenario:      %s\n", summary.Name)
		fmt.Printf("Effectiveness: %s / 100\n", output.FormatScore(summary.EffectivenessScore))
		fmt.Printf("Rating:        %s\n", summary.Health.Rating)
		if len(summary.Health.Issues) > 0 {
			fmt.Println("Issues:")
			for _, issue := range summary.Health.Issues {
				fmt.Printf("  - %s\n", issue)
			}
		}
		if len(summary.Health.Recommendations) > 0 {
			fmt.Println("Recommendations:")
			for _, rec := range summary.Health.Recommendations {
				fmt.Printf("  - %s\n", rec)
			}
		}
		return nil
	},
}

func init() {
	evaluateCmd.Flags().String("format", "console", "Output format: console, json, csv")
	evaluateCmd.Flags().Bool("verbose", false, "Enable verbose logging")
	healthCmd.Flags().String("scenario", "", "Scenario name (defaults to the first scenario)")

	rootCmd.AddCommand(evaluateCmd)
	rootCmd.AddCommand(contributionCmd)
	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(versionCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
