package components

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/okvist/pagesync/internal/ui/theme"
)

// StatusBar is a full-width bottom status bar.
type StatusBar struct {
	viewportW int
	viewportH int
	expr      string
	trigger   string
	lastAt    time.Time
	message   string
	isError   bool

	width  int
	theme  theme.Theme
	styles theme.Styles
}

// NewStatusBar creates a new status bar.
func NewStatusBar(t theme.Theme, s theme.Styles) StatusBar {
	return StatusBar{theme: t, styles: s}
}

// SetWidth sets the render width.
func (m *StatusBar) SetWidth(w int) { m.width = w }

// SetViewport records the simulated viewport size.
func (m *StatusBar) SetViewport(w, h int) {
	m.viewportW = w
	m.viewportH = h
}

// SetRecompute records the last applied recomputation.
func (m *StatusBar) SetRecompute(trigger, expr string, at time.Time) {
	m.trigger = trigger
	m.expr = expr
	m.lastAt = at
}

// SetMessage sets a transient message; empty clears it.
func (m *StatusBar) SetMessage(text string, isError bool) {
	m.message = text
	m.isError = isError
}

// View renders the status bar.
func (m StatusBar) View() string {
	var left []string
	left = append(left, fmt.Sprintf("viewport %d×%d", m.viewportW, m.viewportH))
	if m.trigger != "" {
		tstyle := lipgloss.NewStyle().Foreground(m.theme.TriggerColor(m.trigger)).Bold(true)
		left = append(left, tstyle.Render(m.trigger))
		left = append(left, m.styles.Expr.Render(m.expr))
	}

	var right string
	switch {
	case m.message != "" && m.isError:
		right = m.styles.Error.Render(m.message)
	case m.message != "":
		right = m.styles.Success.Render(m.message)
	case !m.lastAt.IsZero():
		right = m.styles.Muted.Render("recomputed " + humanize.Time(m.lastAt))
	}

	leftStr := m.styles.StatusText.Render(strings.Join(left, "  "))
	gap := m.width - lipgloss.Width(leftStr) - lipgloss.Width(right) - 1
	if gap < 1 {
		gap = 1
	}
	bar := leftStr + strings.Repeat(" ", gap) + right
	return lipgloss.NewStyle().Background(m.theme.Surface).Width(m.width).Render(bar)
}
