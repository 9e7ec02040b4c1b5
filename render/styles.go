package render

import "github.com/charmbracelet/lipgloss"

// Layout constants
const (
	cellW     = 11 // width of each position column in characters
	labelW    = 7  // visual width of the wire label area
	gateNameW = 5  // width of a gate name inside its box
	gateBoxW  = 7  // ┤ + gateNameW + ├
)

var (
	gateStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#73daca"))

	wireLabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#7dcfff"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#565f89"))

	cbitLabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#e0af68"))

	cbitWireStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#565f89"))

	cbitConnectorStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#e0af68")).
				Bold(true)

	barStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#7aa2f7"))

	countStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#c0caf5"))
)
