package theme

import "github.com/charmbracelet/lipgloss"

// Theme holds all colors for the application.
type Theme struct {
	Name string

	// Base colors
	Base    lipgloss.Color
	Surface lipgloss.Color
	Overlay lipgloss.Color

	// Text
	Text    lipgloss.Color
	Subtext lipgloss.Color
	Muted   lipgloss.Color

	// Accents
	Blue   lipgloss.Color
	Mauve  lipgloss.Color
	Teal   lipgloss.Color
	Green  lipgloss.Color
	Yellow lipgloss.Color
	Red    lipgloss.Color

	// Semantic
	BorderFocused   lipgloss.Color
	BorderUnfocused lipgloss.Color
	SidebarFill     lipgloss.Color
	MainFill        lipgloss.Color
}

// TriggerColor returns the accent color for a recompute trigger.
func (t Theme) TriggerColor(trigger string) lipgloss.Color {
	switch trigger {
	case "load":
		return t.Green
	case "resize":
		return t.Yellow
	case "transitionend":
		return t.Mauve
	case "manual":
		return t.Teal
	default:
		return t.Text
	}
}

// Slate is the default theme.
func Slate() Theme {
	return Theme{
		Name: "slate",

		Base:    lipgloss.Color("#1e2030"),
		Surface: lipgloss.Color("#2a2d41"),
		Overlay: lipgloss.Color("#3b3f58"),

		Text:    lipgloss.Color("#cdd6f4"),
		Subtext: lipgloss.Color("#a6adc8"),
		Muted:   lipgloss.Color("#6c7086"),

		Blue:   lipgloss.Color("#89b4fa"),
		Mauve:  lipgloss.Color("#cba6f7"),
		Teal:   lipgloss.Color("#94e2d5"),
		Green:  lipgloss.Color("#a6e3a1"),
		Yellow: lipgloss.Color("#f9e2af"),
		Red:    lipgloss.Color("#f38ba8"),

		BorderFocused:   lipgloss.Color("#89b4fa"),
		BorderUnfocused: lipgloss.Color("#45475a"),
		SidebarFill:     lipgloss.Color("#313244"),
		MainFill:        lipgloss.Color("#262637"),
	}
}

// Mono is a low-color theme for limited terminals.
func Mono() Theme {
	return Theme{
		Name: "mono",

		Base:    lipgloss.Color("0"),
		Surface: lipgloss.Color("8"),
		Overlay: lipgloss.Color("8"),

		Text:    lipgloss.Color("15"),
		Subtext: lipgloss.Color("7"),
		Muted:   lipgloss.Color("8"),

		Blue:   lipgloss.Color("12"),
		Mauve:  lipgloss.Color("13"),
		Teal:   lipgloss.Color("14"),
		Green:  lipgloss.Color("10"),
		Yellow: lipgloss.Color("11"),
		Red:    lipgloss.Color("9"),

		BorderFocused:   lipgloss.Color("12"),
		BorderUnfocused: lipgloss.Color("8"),
		SidebarFill:     lipgloss.Color("8"),
		MainFill:        lipgloss.Color("0"),
	}
}

// Default returns the default theme.
func Default() Theme { return Slate() }

// ByName returns the named theme, falling back to the default.
func ByName(name string) Theme {
	switch name {
	case "mono":
		return Mono()
	case "slate", "":
		return Slate()
	default:
		return Slate()
	}
}
