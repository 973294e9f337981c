package inspector

import (
	"strings"
	"testing"

	"github.com/okvist/pagesync/internal/history"
	"github.com/okvist/pagesync/internal/ui/theme"
)

func newModel() Model {
	t := theme.Default()
	return New(t, theme.NewStyles(t))
}

func TestExpr(t *testing.T) {
	m := newModel()

	if _, ok := m.Expr(); ok {
		t.Error("no expression before the first entry")
	}

	m.SetEntry(history.Entry{Expr: "calc(600px - 240px - 0px)"})
	expr, ok := m.Expr()
	if !ok || expr != "calc(600px - 240px - 0px)" {
		t.Errorf("Expr() = %q, %v", expr, ok)
	}
}

func TestView_ShowsMeasurements(t *testing.T) {
	m := newModel()
	m.SetSize(60, 12)
	m.SetEntry(history.Entry{
		Intrinsic: "600px",
		Width:     "240px",
		Left:      "0px",
		Expr:      "calc(600px - 240px - 0px)",
		Resolved:  true,
		Px:        360,
		ViewportW: 1280,
		ViewportH: 800,
	})

	out := m.View()
	for _, want := range []string{"600px", "240px", "sidebar width", "360"} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestView_Empty(t *testing.T) {
	m := newModel()
	m.SetSize(60, 12)
	if !strings.Contains(m.View(), "waiting") {
		t.Error("empty inspector should say it is waiting")
	}
}

func TestHighlighter_FallsBackToSource(t *testing.T) {
	h := newHighlighter()
	out := h.render("#main { min-width: calc(600px - 240px); }")
	if out == "" {
		t.Error("highlighting should never eat the source")
	}
}
