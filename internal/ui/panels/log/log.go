// Package log is the recompute history pane: every applied override,
// newest first, filterable.
package log

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"
	"github.com/sahilm/fuzzy"

	"github.com/okvist/pagesync/internal/history"
	"github.com/okvist/pagesync/internal/ui/theme"
)

// Model is the log panel.
type Model struct {
	entries  []history.Entry
	filtered []int // indices into entries that match the filter

	vp viewport.Model

	filtering   bool
	filterInput textinput.Model

	width   int
	height  int
	focused bool

	theme  theme.Theme
	styles theme.Styles
}

// New creates a new log panel.
func New(t theme.Theme, s theme.Styles) Model {
	ti := textinput.New()
	ti.Prompt = "/ "
	ti.CharLimit = 64

	return Model{
		vp:          viewport.New(0, 0),
		filterInput: ti,
		theme:       t,
		styles:      s,
	}
}

// SetEntries replaces the displayed entries (newest first).
func (m *Model) SetEntries(entries []history.Entry) {
	m.entries = entries
	m.applyFilter()
}

// Append adds a new entry at the top.
func (m *Model) Append(e history.Entry) {
	m.entries = append([]history.Entry{e}, m.entries...)
	m.applyFilter()
}

// Entries returns the backing entries, newest first.
func (m Model) Entries() []history.Entry { return m.entries }

// SetSize sets the panel dimensions.
func (m *Model) SetSize(w, h int) {
	m.width = w
	m.height = h
	m.vp.Width = w - 2
	vpH := h - 3 // border + title line
	if m.filtering {
		vpH--
	}
	if vpH < 1 {
		vpH = 1
	}
	m.vp.Height = vpH
	m.render()
}

// SetFocused sets whether this panel has focus.
func (m *Model) SetFocused(f bool) { m.focused = f }

// Filtering reports whether the filter input is capturing keys.
func (m Model) Filtering() bool { return m.filtering }

// Update implements the panel's key handling.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.filtering {
		switch key.String() {
		case "esc":
			m.filtering = false
			m.filterInput.SetValue("")
			m.filterInput.Blur()
			m.applyFilter()
			return m, nil
		case "enter":
			m.filtering = false
			m.filterInput.Blur()
			return m, nil
		}
		var cmd tea.Cmd
		m.filterInput, cmd = m.filterInput.Update(msg)
		m.applyFilter()
		return m, cmd
	}

	switch key.String() {
	case "/":
		m.filtering = true
		m.filterInput.Focus()
		return m, textinput.Blink
	case "j", "down":
		m.vp.ScrollDown(1)
	case "k", "up":
		m.vp.ScrollUp(1)
	case "g":
		m.vp.GotoTop()
	case "G":
		m.vp.GotoBottom()
	}
	return m, nil
}

func (m *Model) applyFilter() {
	query := m.filterInput.Value()
	if query == "" {
		m.filtered = make([]int, len(m.entries))
		for i := range m.entries {
			m.filtered[i] = i
		}
		m.render()
		return
	}

	haystack := make([]string, len(m.entries))
	for i, e := range m.entries {
		haystack[i] = e.Trigger + " " + e.Expr
	}
	matches := fuzzy.Find(query, haystack)
	m.filtered = make([]int, 0, len(matches))
	for _, match := range matches {
		m.filtered = append(m.filtered, match.Index)
	}
	m.render()
}

func (m *Model) render() {
	var b strings.Builder
	for _, idx := range m.filtered {
		e := m.entries[idx]
		tstyle := m.styles.Normal.Foreground(m.theme.TriggerColor(e.Trigger))
		b.WriteString(tstyle.Render(fmt.Sprintf("%-13s", e.Trigger)))
		b.WriteString(m.styles.Expr.Render(e.Expr))
		if e.Resolved {
			b.WriteString(m.styles.Muted.Render(fmt.Sprintf("  = %.4gpx", e.Px)))
		}
		b.WriteString(m.styles.Hint.Render("  " + humanize.Time(e.Timestamp)))
		b.WriteString("\n")
	}
	if len(m.filtered) == 0 {
		b.WriteString(m.styles.Muted.Render("no recomputes yet"))
	}
	m.vp.SetContent(b.String())
}

// View renders the panel.
func (m Model) View() string {
	border := m.styles.UnfocusedBorder
	if m.focused {
		border = m.styles.FocusedBorder
	}

	innerW := m.width - 2
	innerH := m.height - 2
	if innerW < 10 || innerH < 2 {
		return border.Width(max(0, innerW)).Height(max(0, innerH)).Render("")
	}

	var b strings.Builder
	b.WriteString(m.styles.Title.Render(" history "))
	b.WriteString(m.styles.Hint.Render(fmt.Sprintf(" %d", len(m.filtered))))
	b.WriteString("\n")
	if m.filtering {
		b.WriteString(m.filterInput.View())
		b.WriteString("\n")
	}
	b.WriteString(m.vp.View())

	return border.Width(innerW).Height(innerH).Render(b.String())
}
