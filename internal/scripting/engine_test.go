package scripting

import (
	"strings"
	"testing"
	"time"

	"github.com/okvist/pagesync/internal/page"
)

func TestRunResize_Breakpoint(t *testing.T) {
	d := page.DefaultDocument()
	d.SetViewport(page.Size{Width: 860, Height: 600})
	d.OnResize = `
		if (viewport.width < 900) {
			page.get("sidebar").set("width", "64px");
		}
	`

	res := NewEngine(0).RunResize(d)
	if res.Err != nil {
		t.Fatalf("hook failed: %v", res.Err)
	}
	if got := d.Sidebar().Computed("width"); got != "64px" {
		t.Errorf("sidebar width = %q, want 64px", got)
	}
}

func TestRunResize_NoHook(t *testing.T) {
	d := page.DefaultDocument()
	res := NewEngine(0).RunResize(d)
	if res.Err != nil || len(res.Logs) != 0 {
		t.Errorf("empty hook should be a clean no-op: %+v", res)
	}
}

func TestRunResize_ConsoleLog(t *testing.T) {
	d := page.DefaultDocument()
	d.OnResize = `console.log("w=", viewport.width);`

	res := NewEngine(0).RunResize(d)
	if res.Err != nil {
		t.Fatalf("hook failed: %v", res.Err)
	}
	if len(res.Logs) != 1 || !strings.Contains(res.Logs[0], "1280") {
		t.Errorf("logs = %v", res.Logs)
	}
}

func TestRunResize_MissingElement(t *testing.T) {
	d := page.DefaultDocument()
	d.OnResize = `
		var el = page.get("nope");
		if (el !== null) { throw "should be null"; }
	`
	if res := NewEngine(0).RunResize(d); res.Err != nil {
		t.Errorf("missing element should surface as null, not an error: %v", res.Err)
	}
}

func TestRunResize_ScriptError(t *testing.T) {
	d := page.DefaultDocument()
	d.OnResize = `throw new Error("boom");`
	if res := NewEngine(0).RunResize(d); res.Err == nil {
		t.Error("script throw should surface as Err")
	}
}

func TestRunResize_Timeout(t *testing.T) {
	d := page.DefaultDocument()
	d.OnResize = `while (true) {}`

	start := time.Now()
	res := NewEngine(50 * time.Millisecond).RunResize(d)
	if res.Err == nil {
		t.Fatal("infinite loop should be interrupted")
	}
	if time.Since(start) > 5*time.Second {
		t.Error("interrupt took too long")
	}
}
