package calculation

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/algolds/ixgov/internal/domain"
)

// Advisory feed thresholds.
var (
	effectivenessAlertFloor = decimal.NewFromInt(50)
	growthTrendThreshold    = decimal.NewFromFloat(1.10)
	taxOpportunityThreshold = decimal.NewFromFloat(1.15)
)

// GenerateIntelligence produces the templated advisory feed from
// threshold crossings. The feed is rebuilt whole on every recompute so
// it always reflects the current snapshot.
func GenerateIntelligence(effectiveness decimal.Decimal, synergies []domain.SynergyRule, conflicts []domain.ConflictRule, combined domain.CombinedModifiers, now time.Time) []domain.IntelligenceItem {
	var feed []domain.IntelligenceItem

	if effectiveness.LessThan(effectivenessAlertFloor) {
		feed = append(feed, domain.IntelligenceItem{
			Category:    domain.IntelligenceAlert,
			Title:       "Governance effectiveness critical",
			Description: fmt.Sprintf("Overall effectiveness is %s, below the operational floor of 50", effectiveness.StringFixed(1)),
			Severity:    "high",
			Timestamp:   now,
		})
	}

	if len(synergies) > 0 {
		feed = append(feed, domain.IntelligenceItem{
			Category:    domain.IntelligenceOpportunity,
			Title:       "Component synergies active",
			Description: fmt.Sprintf("%d synergy combination(s) in effect, including: %s", len(synergies), synergies[0].Description),
			Severity:    "low",
			Timestamp:   now,
		})
	}

	if len(conflicts) > 0 {
		feed = append(feed, domain.IntelligenceItem{
			Category:    domain.IntelligenceRisk,
			Title:       "Component conflicts detected",
			Description: fmt.Sprintf("%d conflicting combination(s) degrading performance, including: %s", len(conflicts), conflicts[0].Description),
			Severity:    "medium",
			Timestamp:   now,
		})
	}

	if combined.GDPGrowthModifier.GreaterThan(growthTrendThreshold) {
		feed = append(feed, domain.IntelligenceItem{
			Category:    domain.IntelligenceTrend,
			Title:       "Growth outlook improving",
			Description: fmt.Sprintf("Combined GDP growth modifier at %s exceeds the 1.10 trend threshold", combined.GDPGrowthModifier.StringFixed(3)),
			Severity:    "low",
			Timestamp:   now,
		})
	}

	if combined.TaxCollectionMultiplier.GreaterThan(taxOpportunityThreshold) {
		feed = append(feed, domain.IntelligenceItem{
			Category:    domain.IntelligenceOpportunity,
			Title:       "Tax capacity expanding",
			Description: fmt.Sprintf("Combined tax collection multiplier at %s exceeds the 1.15 opportunity threshold", combined.TaxCollectionMultiplier.StringFixed(3)),
			Severity:    "low",
			Timestamp:   now,
		})
	}

	return feed
}
