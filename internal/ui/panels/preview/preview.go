// Package preview renders the simulated page skeleton: the sidebar and
// main content panes drawn to scale inside the terminal.
package preview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/okvist/pagesync/internal/css"
	"github.com/okvist/pagesync/internal/page"
	"github.com/okvist/pagesync/internal/ui/theme"
)

// Model is the preview panel.
type Model struct {
	doc *page.Document

	width   int
	height  int
	focused bool

	theme  theme.Theme
	styles theme.Styles
}

// New creates a preview panel for doc.
func New(doc *page.Document, t theme.Theme, s theme.Styles) Model {
	return Model{doc: doc, theme: t, styles: s}
}

// SetSize sets the panel dimensions.
func (m *Model) SetSize(w, h int) {
	m.width = w
	m.height = h
}

// SetFocused sets whether this panel has focus.
func (m *Model) SetFocused(f bool) { m.focused = f }

// geometry resolves the sidebar's current box against the viewport.
// Unresolvable styles degrade to zero; the preview is decorative.
func (m Model) geometry() (sidebarW, sidebarLeft float64) {
	vp := m.doc.Viewport()
	ctx := css.Context{
		ViewportWidth:  float64(vp.Width),
		ViewportHeight: float64(vp.Height),
	}
	sb := m.doc.Sidebar()
	if sb == nil {
		return 0, 0
	}
	if l, err := css.Parse(sb.Computed("width")); err == nil {
		sidebarW, _ = l.ResolvePx(ctx)
	}
	if l, err := css.Parse(sb.Computed("left")); err == nil {
		sidebarLeft, _ = l.ResolvePx(ctx)
	}
	return sidebarW, sidebarLeft
}

// View renders the skeleton.
func (m Model) View() string {
	border := m.styles.UnfocusedBorder
	if m.focused {
		border = m.styles.FocusedBorder
	}

	innerW := m.width - 2
	innerH := m.height - 2
	if innerW < 10 || innerH < 4 {
		return border.Width(max(0, innerW)).Height(max(0, innerH)).Render("")
	}

	vp := m.doc.Viewport()
	title := fmt.Sprintf(" page %d×%d ", vp.Width, vp.Height)

	sidebarW, sidebarLeft := m.geometry()
	scale := float64(innerW) / float64(vp.Width)

	// Visible sidebar portion: the part not slid off-screen.
	visible := sidebarW + sidebarLeft
	if visible < 0 {
		visible = 0
	}
	sbCells := int(visible*scale + 0.5)
	if sbCells > innerW {
		sbCells = innerW
	}
	mainCells := innerW - sbCells

	bodyH := innerH - 1
	var sbPane string
	if sbCells > 0 {
		label := truncate("sidebar", sbCells)
		sbPane = m.styles.SidebarPane.
			Width(sbCells).
			Height(bodyH).
			Align(lipgloss.Center, lipgloss.Center).
			Render(label)
	}

	mainLabel := "main"
	if mc := m.doc.Main(); mc != nil {
		if ov, ok := mc.Inline("min-width"); ok {
			mainLabel = "main\nmin-width " + ov
		}
	}
	mainPane := m.styles.MainPane.
		Width(mainCells).
		Height(bodyH).
		Align(lipgloss.Center, lipgloss.Center).
		Render(truncateLines(mainLabel, mainCells))

	var body string
	if sbCells > 0 {
		body = lipgloss.JoinHorizontal(lipgloss.Top, sbPane, mainPane)
	} else {
		body = mainPane
	}

	content := m.styles.Title.Render(title) + "\n" + body
	return border.Width(innerW).Height(innerH).Render(content)
}

func truncate(s string, w int) string {
	if lipgloss.Width(s) <= w {
		return s
	}
	if w <= 1 {
		return ""
	}
	r := []rune(s)
	if len(r) > w-1 {
		r = r[:w-1]
	}
	return string(r) + "…"
}

func truncateLines(s string, w int) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = truncate(l, w)
	}
	return strings.Join(lines, "\n")
}
