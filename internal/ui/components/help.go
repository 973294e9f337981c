package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/okvist/pagesync/internal/ui/theme"
)

type helpSection struct {
	Title    string
	Bindings []helpBinding
}

type helpBinding struct {
	Key  string
	Desc string
}

var helpSections = []helpSection{
	{
		Title: "Page",
		Bindings: []helpBinding{
			{"b", "Toggle sidebar (animated)"},
			{"r", "Replay load event"},
			{"+ / -", "Grow / shrink simulated viewport"},
		},
	},
	{
		Title: "Inspector",
		Bindings: []helpBinding{
			{"y", "Copy min-width expression"},
			{"Tab", "Cycle panel focus"},
			{"j / k", "Scroll log"},
			{"/", "Filter log"},
		},
	},
	{
		Title: "General",
		Bindings: []helpBinding{
			{"Ctrl+K", "Command palette"},
			{"?", "Toggle this help"},
			{"q / Ctrl+C", "Quit"},
		},
	},
}

// Help is the help overlay.
type Help struct {
	Visible bool
	theme   theme.Theme
	styles  theme.Styles
}

// NewHelp creates the help overlay.
func NewHelp(t theme.Theme, s theme.Styles) Help {
	return Help{theme: t, styles: s}
}

// Toggle flips visibility.
func (m *Help) Toggle() { m.Visible = !m.Visible }

// View renders the overlay.
func (m Help) View() string {
	if !m.Visible {
		return ""
	}

	var b strings.Builder
	keyStyle := lipgloss.NewStyle().Foreground(m.theme.Blue).Width(10)
	for i, sec := range helpSections {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(m.styles.Title.Render(sec.Title))
		b.WriteString("\n")
		for _, bind := range sec.Bindings {
			b.WriteString(keyStyle.Render(bind.Key))
			b.WriteString(m.styles.Normal.Render(bind.Desc))
			b.WriteString("\n")
		}
	}

	return m.styles.FocusedBorder.
		Padding(0, 2).
		Render(b.String())
}
