package theme

import "github.com/charmbracelet/lipgloss"

var (
	Surface1 = lipgloss.Color("#45475a")
	Subtext0 = lipgloss.Color("#a6adc8")
	Sapphire = lipgloss.Color("#74c7ec")
	Green    = lipgloss.Color("#a6e3a1")
	Peach    = lipgloss.Color("#fab387")

	Title = lipgloss.NewStyle().Foreground(Sapphire).Bold(true)
	Muted = lipgloss.NewStyle().Foreground(Subtext0)
	Dim   = lipgloss.NewStyle().Foreground(Surface1)
	Good  = lipgloss.NewStyle().Foreground(Green).Bold(true)
	Warn  = lipgloss.NewStyle().Foreground(Peach).Bold(true)
)

// Heat is the activity intensity ramp: index 0 is no work, 4 is a full day
// or more. The green steps match the 256-color progression of the graph.
var Heat = [5]lipgloss.Style{
	lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("49")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("47")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("40")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("28")),
}

// Overflow marks weekday hours beyond the daily goal in the week bars.
var Overflow = lipgloss.NewStyle().Foreground(Sapphire)
