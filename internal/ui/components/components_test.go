package components

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/okvist/pagesync/internal/ui/msgs"
	"github.com/okvist/pagesync/internal/ui/theme"
)

func testStyles() (theme.Theme, theme.Styles) {
	t := theme.Default()
	return t, theme.NewStyles(t)
}

func typeString(m CommandPalette, s string) CommandPalette {
	for _, r := range s {
		m, _, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func TestPalette_FuzzyFilter(t *testing.T) {
	th, st := testStyles()
	p := NewCommandPalette(th, st)
	p.Open()

	p = typeString(p, "sidebar")

	if len(p.filtered) == 0 {
		t.Fatal("filter should match Toggle Sidebar")
	}
	if p.filtered[0].Name != "Toggle Sidebar" {
		t.Errorf("best match = %q", p.filtered[0].Name)
	}
}

func TestPalette_Select(t *testing.T) {
	th, st := testStyles()
	p := NewCommandPalette(th, st)
	p.Open()

	p = typeString(p, "copy")
	p, _, chosen := p.Update(tea.KeyMsg{Type: tea.KeyEnter})

	if _, ok := chosen.(msgs.CopyExprMsg); !ok {
		t.Errorf("chosen = %T, want CopyExprMsg", chosen)
	}
	if p.Visible {
		t.Error("palette should close on selection")
	}
}

func TestPalette_Escape(t *testing.T) {
	th, st := testStyles()
	p := NewCommandPalette(th, st)
	p.Open()

	p, _, chosen := p.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if chosen != nil || p.Visible {
		t.Error("esc should close without choosing")
	}
}

func TestToast_Dismiss(t *testing.T) {
	th, st := testStyles()
	toast := NewToast(th, st)

	cmd := toast.Show("copied", false)
	if cmd == nil || !toast.Visible {
		t.Fatal("show should make the toast visible and schedule dismiss")
	}

	toast, _ = toast.Update(toastDismissMsg{})
	if toast.Visible {
		t.Error("toast should dismiss")
	}
}

func TestStatusBar_View(t *testing.T) {
	th, st := testStyles()
	sb := NewStatusBar(th, st)
	sb.SetWidth(80)
	sb.SetViewport(1280, 800)

	if sb.View() == "" {
		t.Error("status bar should render")
	}
}
