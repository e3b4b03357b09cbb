package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/algolds/ixgov/internal/domain"
	"github.com/algolds/ixgov/internal/output"
)

var sparkRunes = []rune("▁▂▃▄▅▆▇█")

// View renders the dashboard.
func (m Model) View() string {
	header := TitleStyle.Render("ixgov - Governance Component Dashboard")

	left := m.renderBrowser()
	right := lipgloss.JoinVertical(lipgloss.Left,
		m.renderScores(),
		m.renderModifiers(),
		m.renderEconomy(),
		m.renderStructure(),
		m.renderIntelligence(),
	)

	body := lipgloss.JoinHorizontal(lipgloss.Top, left, right)

	return lipgloss.JoinVertical(lipgloss.Left, header, body, m.renderStatusBar())
}

func (m Model) renderBrowser() string {
	var b strings.Builder

	var tabs []string
	for i, family := range families {
		label := familyLabel(family)
		if i == m.familyIndex {
			tabs = append(tabs, TabActiveStyle.Render(label))
		} else {
			tabs = append(tabs, TabInactiveStyle.Render(label))
		}
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
	b.WriteString("\n\n")

	selection := m.selectionFor(m.currentFamily())
	for i, kind := range m.currentKinds() {
		marker := "[ ]"
		style := UnselectedItemStyle
		if selection.Contains(kind) {
			marker = "[x]"
			style = SelectedItemStyle
		}
		line := fmt.Sprintf("%s %s", marker, m.cat.Profile(kind).Name)
		if i == m.cursor {
			line = CursorItemStyle.Render("> " + line)
		} else {
			line = "  " + style.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	return PanelStyle.Width(40).Render(
		PanelTitleStyle.Render("Components") + "\n" + b.String())
}

func (m Model) renderScores() string {
	s := m.state

	rows := []string{
		metricRow("Effectiveness", scoreStyle(s.EffectivenessScore).Render(output.FormatScore(s.EffectivenessScore)+" / 100")),
		metricRow("Legitimacy", MetricValueStyle.Render(output.FormatScore(s.LegitimacyScore)+" / 100")),
		metricRow("Stability Index", MetricValueStyle.Render(output.FormatScore(s.Metrics.StabilityIndex))),
		metricRow("Policy Coherence", MetricValueStyle.Render(output.FormatScore(s.Metrics.PolicyCoherence))),
		metricRow("Momentum", momentumStyle(s.Metrics.Momentum).Render(s.Metrics.Momentum.StringFixed(1))),
		metricRow("Synergies / Conflicts", MetricValueStyle.Render(
			fmt.Sprintf("%d / %d", len(s.ActiveSynergies), len(s.ActiveConflicts)))),
	}

	history := metricRow("History", MetricValueStyle.Render(sparkline(s.History)))

	return PanelStyle.Width(56).Render(
		PanelTitleStyle.Render("Scores") + "\n" +
			strings.Join(append(rows, history), "\n"))
}

func (m Model) renderModifiers() string {
	c := m.state.Combined

	rows := []string{
		metricRow("GDP Growth", output.FormatMultiplier(c.GDPGrowthModifier)),
		metricRow("Tax Collection", output.FormatMultiplier(c.TaxCollectionMultiplier)),
		metricRow("Innovation", output.FormatMultiplier(c.InnovationMultiplier)),
		metricRow("Gov Efficiency", output.FormatMultiplier(c.GovernmentEfficiencyMultiplier)),
		metricRow("Stability", output.FormatMultiplier(c.StabilityMultiplier)),
		metricRow("Net Synergy", signedPoints(c.NetSynergyBonus)),
	}
	if len(c.ActiveCrossSynergies) > 0 {
		rows = append(rows, metricRow("Cross-Domain", strings.Join(c.ActiveCrossSynergies, ", ")))
	}

	return PanelStyle.Width(56).Render(
		PanelTitleStyle.Render("Combined Modifiers") + "\n" + strings.Join(rows, "\n"))
}

func (m Model) renderEconomy() string {
	s := m.state

	rows := []string{
		metricRow("GDP Growth", fmt.Sprintf("%s → %s",
			output.FormatPercent(s.Baseline.GDPGrowthRate), output.FormatPercent(s.Enhanced.GDPGrowthRate))),
		metricRow("Tax Share", fmt.Sprintf("%s → %s",
			output.FormatPercent(s.Baseline.TaxRevenuePercent), output.FormatPercent(s.Enhanced.TaxRevenuePercent))),
		metricRow("Unemployment", fmt.Sprintf("%s → %s",
			output.FormatPercent(s.Baseline.UnemploymentRate), output.FormatPercent(s.Enhanced.UnemploymentRate))),
		metricRow("Inflation", fmt.Sprintf("%s → %s",
			output.FormatPercent(s.Baseline.InflationRate), output.FormatPercent(s.Enhanced.InflationRate))),
		metricRow("Tax Effectiveness", output.FormatScore(s.TaxEffectiveness.OverallScore)),
	}

	return PanelStyle.Width(56).Render(
		PanelTitleStyle.Render("Projected Economy") + "\n" + strings.Join(rows, "\n"))
}

func (m Model) renderStructure() string {
	s := m.state.Structure

	var b strings.Builder
	b.WriteString(MetricValueStyle.Render(s.StructureType))
	b.WriteString("\n")
	b.WriteString(MetricLabelStyle.Render(s.GovernanceStyle))
	for _, note := range s.Notes {
		b.WriteString("\n")
		b.WriteString(FeedRiskStyle.Render("* " + note))
	}

	return PanelStyle.Width(56).Render(
		PanelTitleStyle.Render("Government Structure") + "\n" + b.String())
}

func (m Model) renderIntelligence() string {
	if len(m.state.Intelligence) == 0 {
		return PanelStyle.Width(56).Render(
			PanelTitleStyle.Render("Intelligence Feed") + "\n" +
				MetricLabelStyle.Render("No advisories"))
	}

	var rows []string
	for _, item := range m.state.Intelligence {
		style := FeedTrendStyle
		switch item.Category {
		case domain.IntelligenceAlert:
			style = FeedAlertStyle
		case domain.IntelligenceRisk:
			style = FeedRiskStyle
		case domain.IntelligenceOpportunity:
			style = FeedOpportunityStyle
		}
		rows = append(rows, style.Render(fmt.Sprintf("[%s] %s", item.Category, item.Title)))
	}

	return PanelStyle.Width(56).Render(
		PanelTitleStyle.Render("Intelligence Feed") + "\n" + strings.Join(rows, "\n"))
}

func (m Model) renderStatusBar() string {
	if m.showHelp {
		pairs := []struct{ k, d string }{
			{"↑/↓", "move"}, {"tab", "family"}, {"enter", "toggle"},
			{"c", "clear family"}, {"?", "help"}, {"q", "quit"},
		}
		var parts []string
		for _, p := range pairs {
			parts = append(parts, HelpKeyStyle.Render(p.k)+" "+HelpDescStyle.Render(p.d))
		}
		return StatusBarStyle.Render(" " + strings.Join(parts, "  ") + " ")
	}
	return StatusBarStyle.Render(fmt.Sprintf(" %s | updated %s | ? for help ",
		m.state.Structure.StructureType, m.state.UpdatedAt.Format("15:04:05")))
}

func familyLabel(family domain.ComponentFamily) string {
	s := string(family)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// signedPoints renders a fractional rule adjustment as signed points.
func signedPoints(bonus decimal.Decimal) string {
	pts := bonus.Mul(decimal.NewFromInt(100)).StringFixed(1)
	if !bonus.IsNegative() {
		pts = "+" + pts
	}
	return pts + " pts"
}

func metricRow(label, value string) string {
	return fmt.Sprintf("%s %s", MetricLabelStyle.Width(22).Render(label), value)
}

func scoreStyle(score decimal.Decimal) lipgloss.Style {
	switch {
	case score.GreaterThanOrEqual(decimal.NewFromInt(70)):
		return MetricGoodStyle
	case score.LessThan(decimal.NewFromInt(50)):
		return MetricBadStyle
	default:
		return MetricValueStyle
	}
}

func momentumStyle(momentum decimal.Decimal) lipgloss.Style {
	switch {
	case momentum.IsPositive():
		return MetricGoodStyle
	case momentum.IsNegative():
		return MetricBadStyle
	default:
		return MetricValueStyle
	}
}

// sparkline renders the effectiveness history as a block-rune strip.
func sparkline(history []domain.EffectivenessSample) string {
	if len(history) == 0 {
		return "no samples"
	}
	var b strings.Builder
	for _, sample := range history {
		score, _ := sample.Score.Float64()
		if score < 0 {
			score = 0
		}
		if score > 100 {
			score = 100
		}
		idx := int(score / 100 * float64(len(sparkRunes)-1))
		b.WriteRune(sparkRunes[idx])
	}
	return b.String()
}
