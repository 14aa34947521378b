package tui

import "github.com/charmbracelet/lipgloss"

// Styles
var (
	baseFg    = lipgloss.Color("#E6E6E6")
	baseDimFg = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#6B7280"}
	accentFg  = lipgloss.Color("#7C3AED")
	borderCol = lipgloss.Color("#243141")
	errFg     = lipgloss.Color("#F87171")

	appStyle   = lipgloss.NewStyle().Foreground(baseFg)
	boxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(borderCol).Padding(0, 1)
	titleStyle = lipgloss.NewStyle().Foreground(accentFg).Bold(true)
	dimStyle   = lipgloss.NewStyle().Foreground(baseDimFg)
	errStyle   = lipgloss.NewStyle().Foreground(errFg)
)

const defaultMarkerColor = "#e41a1c"

// styles are the per-model map styles; the marker color is configurable.
type styles struct {
	marker lipgloss.Style
	label  lipgloss.Style
	hover  lipgloss.Style
}

func newStyles(markerColor string) styles {
	if markerColor == "" {
		markerColor = defaultMarkerColor
	}
	return styles{
		marker: lipgloss.NewStyle().Foreground(lipgloss.Color(markerColor)).Bold(true),
		label:  lipgloss.NewStyle().Foreground(baseFg),
		hover:  lipgloss.NewStyle().Foreground(lipgloss.Color("#FFA500")),
	}
}
