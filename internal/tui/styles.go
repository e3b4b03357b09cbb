package tui

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	ColorPrimary   = lipgloss.Color("#7D56F4")
	ColorSecondary = lipgloss.Color("#5A56E0")
	ColorSuccess   = lipgloss.Color("#04B575")
	ColorWarning   = lipgloss.Color("#FFB454")
	ColorDanger    = lipgloss.Color("#FF5F87")
	ColorInfo      = lipgloss.Color("#5FD7FF")
	ColorMuted     = lipgloss.Color("#6C6C6C")
	ColorBorder    = lipgloss.Color("#444444")
)

var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(ColorPrimary).
			Padding(0, 1)

	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)

	PanelTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSecondary)

	TabActiveStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(ColorSecondary).
			Padding(0, 1)

	TabInactiveStyle = lipgloss.NewStyle().
				Foreground(ColorMuted).
				Padding(0, 1)

	SelectedItemStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorSuccess)

	CursorItemStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(ColorSecondary)

	UnselectedItemStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#BBBBBB"))

	MetricLabelStyle = lipgloss.NewStyle().
				Foreground(ColorMuted)

	MetricValueStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorInfo)

	MetricGoodStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSuccess)

	MetricBadStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorDanger)

	StatusBarStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#C1C6B2")).
			Background(lipgloss.Color("#353533"))

	HelpKeyStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorInfo)

	HelpDescStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	FeedAlertStyle       = lipgloss.NewStyle().Foreground(ColorDanger)
	FeedRiskStyle        = lipgloss.NewStyle().Foreground(ColorWarning)
	FeedOpportunityStyle = lipgloss.NewStyle().Foreground(ColorSuccess)
	FeedTrendStyle       = lipgloss.NewStyle().Foreground(ColorInfo)
)
