// Package inspector shows the synchronizer's current measurements and
// the composed min-width expression, highlighted as CSS.
package inspector

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	chromastyles "github.com/alecthomas/chroma/v2/styles"

	"github.com/okvist/pagesync/internal/history"
	"github.com/okvist/pagesync/internal/ui/theme"
)

// Highlighting is configured once at construction and reused per render.
type highlighter struct {
	lexer     chroma.Lexer
	formatter chroma.Formatter
	style     *chroma.Style
}

func newHighlighter() highlighter {
	lexer := lexers.Get("css")
	if lexer == nil {
		lexer = lexers.Fallback
	}
	formatter := formatters.Get("terminal256")
	if formatter == nil {
		formatter = formatters.Fallback
	}
	style := chromastyles.Get("monokai")
	if style == nil {
		style = chromastyles.Fallback
	}
	return highlighter{lexer: chroma.Coalesce(lexer), formatter: formatter, style: style}
}

func (h highlighter) render(src string) string {
	iterator, err := h.lexer.Tokenise(nil, src)
	if err != nil {
		return src
	}
	var buf bytes.Buffer
	if err := h.formatter.Format(&buf, h.style, iterator); err != nil {
		return src
	}
	return strings.TrimRight(buf.String(), "\n")
}

// Model is the inspector panel.
type Model struct {
	entry    history.Entry
	hasEntry bool

	hl highlighter

	width   int
	height  int
	focused bool

	theme  theme.Theme
	styles theme.Styles
}

// New creates an inspector panel.
func New(t theme.Theme, s theme.Styles) Model {
	return Model{theme: t, styles: s, hl: newHighlighter()}
}

// SetSize sets the panel dimensions.
func (m *Model) SetSize(w, h int) {
	m.width = w
	m.height = h
}

// SetFocused sets whether this panel has focus.
func (m *Model) SetFocused(f bool) { m.focused = f }

// SetEntry shows the latest applied recomputation.
func (m *Model) SetEntry(e history.Entry) {
	m.entry = e
	m.hasEntry = true
}

// Expr returns the current expression, if any.
func (m Model) Expr() (string, bool) {
	if !m.hasEntry {
		return "", false
	}
	return m.entry.Expr, true
}

// View renders the panel.
func (m Model) View() string {
	border := m.styles.UnfocusedBorder
	if m.focused {
		border = m.styles.FocusedBorder
	}

	innerW := m.width - 2
	innerH := m.height - 2
	if innerW < 10 || innerH < 3 {
		return border.Width(max(0, innerW)).Height(max(0, innerH)).Render("")
	}

	var b strings.Builder
	b.WriteString(m.styles.Title.Render(" measurements "))
	b.WriteString("\n")

	if !m.hasEntry {
		b.WriteString(m.styles.Muted.Render("waiting for the first recompute"))
	} else {
		rows := []struct{ name, value string }{
			{"intrinsic min-width", m.entry.Intrinsic},
			{"sidebar width", m.entry.Width},
			{"sidebar left", m.entry.Left},
		}
		for _, row := range rows {
			b.WriteString(m.styles.PropName.Render(fmt.Sprintf("%-20s", row.name)))
			b.WriteString(m.styles.PropValue.Render(row.value))
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(m.hl.render("#main { min-width: " + m.entry.Expr + "; }"))
		b.WriteString("\n")
		if m.entry.Resolved {
			b.WriteString(m.styles.Success.Render(
				fmt.Sprintf("resolves to %.4gpx at %d×%d",
					m.entry.Px, m.entry.ViewportW, m.entry.ViewportH)))
		} else {
			b.WriteString(m.styles.Hint.Render("not resolvable outside the rendering engine"))
		}
	}

	return border.Width(innerW).Height(innerH).Render(b.String())
}
