package theme

import "github.com/charmbracelet/lipgloss"

// Styles holds pre-computed Lip Gloss styles for the current theme.
type Styles struct {
	// Panel borders
	FocusedBorder   lipgloss.Style
	UnfocusedBorder lipgloss.Style

	// Text styles
	Title      lipgloss.Style
	Subtitle   lipgloss.Style
	Normal     lipgloss.Style
	Muted      lipgloss.Style
	Error      lipgloss.Style
	Success    lipgloss.Style
	Hint       lipgloss.Style
	StatusText lipgloss.Style

	// Skeleton panes
	SidebarPane lipgloss.Style
	MainPane    lipgloss.Style

	// Measurements
	PropName  lipgloss.Style
	PropValue lipgloss.Style
	Expr      lipgloss.Style

	// Log pane
	Selected lipgloss.Style
	Cursor   lipgloss.Style
}

// NewStyles creates a Styles set from a Theme.
func NewStyles(t Theme) Styles {
	return Styles{
		FocusedBorder: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.BorderFocused),
		UnfocusedBorder: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.BorderUnfocused),

		Title:    lipgloss.NewStyle().Foreground(t.Text).Bold(true),
		Subtitle: lipgloss.NewStyle().Foreground(t.Subtext),
		Normal:   lipgloss.NewStyle().Foreground(t.Text),
		Muted:    lipgloss.NewStyle().Foreground(t.Muted),
		Error:    lipgloss.NewStyle().Foreground(t.Red),
		Success:  lipgloss.NewStyle().Foreground(t.Green),
		Hint:     lipgloss.NewStyle().Foreground(t.Muted).Italic(true),
		StatusText: lipgloss.NewStyle().
			Foreground(t.Text).
			Background(t.Surface).
			Padding(0, 1),

		SidebarPane: lipgloss.NewStyle().
			Background(t.SidebarFill).
			Foreground(t.Subtext),
		MainPane: lipgloss.NewStyle().
			Background(t.MainFill).
			Foreground(t.Subtext),

		PropName:  lipgloss.NewStyle().Foreground(t.Mauve),
		PropValue: lipgloss.NewStyle().Foreground(t.Text),
		Expr:      lipgloss.NewStyle().Foreground(t.Teal),

		Selected: lipgloss.NewStyle().Foreground(t.Text).Background(t.Overlay),
		Cursor:   lipgloss.NewStyle().Foreground(t.Blue).Bold(true),
	}
}
