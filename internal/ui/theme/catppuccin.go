package theme

import "github.com/charmbracelet/lipgloss"

var (
	Base     = lipgloss.Color("#1e1e2e")
	Mantle   = lipgloss.Color("#181825")
	Surface0 = lipgloss.Color("#313244")
	Surface1 = lipgloss.Color("#45475a")
	Text     = lipgloss.Color("#cdd6f4")
	Subtext0 = lipgloss.Color("#a6adc8")
	Lavender = lipgloss.Color("#b4befe")
	Sapphire = lipgloss.Color("#74c7ec")
	Green    = lipgloss.Color("#a6e3a1")
	Peach    = lipgloss.Color("#fab387")
	Yellow   = lipgloss.Color("#f9e2af")
	Red      = lipgloss.Color("#f38ba8")

	App = lipgloss.NewStyle().
		Background(Base).
		Foreground(Text).
		Padding(1, 2)

	Pane = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Surface1).
		Background(Mantle).
		Foreground(Text).
		Padding(1)

	PaneActive = Pane.BorderForeground(Lavender)

	Title = lipgloss.NewStyle().Foreground(Sapphire).Bold(true)
	Muted = lipgloss.NewStyle().Foreground(Subtext0)
	Hot   = lipgloss.NewStyle().Foreground(Peach).Bold(true)
	Ok    = lipgloss.NewStyle().Foreground(Green)
	Warn  = lipgloss.NewStyle().Foreground(Yellow).Bold(true)

	// Danger marks red-flag advisories that need medical attention.
	Danger = lipgloss.NewStyle().Foreground(Base).Background(Red).Bold(true)

	Label    = lipgloss.NewStyle().Foreground(Subtext0).Width(24)
	Selected = lipgloss.NewStyle().Foreground(Lavender).Bold(true)
)

var (
	calm  = lipgloss.NewStyle().Foreground(Subtext0)
	low   = lipgloss.NewStyle().Foreground(Green)
	mid   = lipgloss.NewStyle().Foreground(Yellow)
	high  = lipgloss.NewStyle().Foreground(Red).Bold(true)
	plain = lipgloss.NewStyle().Foreground(Text)
)

var levels = map[string]lipgloss.Style{
	"none": calm, "no": calm, "no_change": calm,
	"mild": low, "clear": low, "dry": low, "localized": low, "slightly_better": low, "much_better": low,
	"moderate": mid, "thick": mid, "productive": mid, "facial": mid,
	"severe": high, "bloody": high, "persistent": high, "generalized": high, "lips_eyes": high, "worsening": high,
}

// Level colors an enum symptom value from calm to alarming. Unknown values
// render plain.
func Level(value string) lipgloss.Style {
	if style, ok := levels[value]; ok {
		return style
	}
	return plain
}
