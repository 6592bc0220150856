package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the colors the UI renders with.
type Theme struct {
	Name string

	Text    string
	Muted   string
	Faint   string
	Accent  string
	Success string
	Danger  string
	Border  string
}

// Styles returns Lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)).
			Bold(true),

		Label: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),

		Value: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)),

		Accent: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)),

		Success: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Success)),

		Danger: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Danger)).
			Bold(true),

		Hint: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Faint)),

		Footer: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),

		InputBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.Border)).
			Padding(0, 1),
	}
}

// Styles holds the resolved lipgloss styles for rendering.
type Styles struct {
	Title    lipgloss.Style
	Label    lipgloss.Style
	Value    lipgloss.Style
	Accent   lipgloss.Style
	Success  lipgloss.Style
	Danger   lipgloss.Style
	Hint     lipgloss.Style
	Footer   lipgloss.Style
	InputBox lipgloss.Style
}

func nightfoxTheme() Theme {
	return Theme{
		Name:    "Nightfox",
		Text:    "#cdcecf",
		Muted:   "#71839b",
		Faint:   "#575f6b",
		Accent:  "#719cd6",
		Success: "#81b29a",
		Danger:  "#c94f6d",
		Border:  "#39506d",
	}
}

func kanagawaTheme() Theme {
	return Theme{
		Name:    "Kanagawa",
		Text:    "#dcd7ba",
		Muted:   "#727169",
		Faint:   "#54546d",
		Accent:  "#7e9cd8",
		Success: "#98bb6c",
		Danger:  "#e82424",
		Border:  "#2a2a37",
	}
}

func slateTheme() Theme {
	return Theme{
		Name:    "Slate",
		Text:    "#e2e8f0",
		Muted:   "#94a3b8",
		Faint:   "#64748b",
		Accent:  "#38bdf8",
		Success: "#4ade80",
		Danger:  "#f87171",
		Border:  "#334155",
	}
}

var themes = map[string]Theme{
	"Nightfox": nightfoxTheme(),
	"Kanagawa": kanagawaTheme(),
	"Slate":    slateTheme(),
}

var themeOrder = []string{"Nightfox", "Kanagawa", "Slate"}

// GetTheme returns the named theme, defaulting to Nightfox.
func GetTheme(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return nightfoxTheme()
}

// NextTheme returns the theme name after current in cycle order.
func NextTheme(current string) string {
	for i, name := range themeOrder {
		if name == current {
			return themeOrder[(i+1)%len(themeOrder)]
		}
	}
	return themeOrder[0]
}

// ThemeNames lists the available themes in cycle order.
func ThemeNames() []string {
	return themeOrder
}
