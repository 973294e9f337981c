package layout

import (
	"testing"

	"github.com/okvist/pagesync/internal/event"
	"github.com/okvist/pagesync/internal/page"
)

func fixture() *page.Document {
	return page.DefaultDocument()
}

func mainOverride(t *testing.T, d *page.Document) string {
	t.Helper()
	v, ok := d.Main().Inline("min-width")
	if !ok {
		t.Fatal("no min-width override applied")
	}
	return v
}

func TestRecompute_Scenario(t *testing.T) {
	// sidebar 240px at left 0, intrinsic min-width 600px -> 360px effective.
	d := fixture()
	var rec Record
	s := New(d, WithObserver(func(r Record) { rec = r }))

	s.Recompute(TriggerLoad)

	want := "calc(600px - 240px - 0px)"
	if got := mainOverride(t, d); got != want {
		t.Errorf("override = %q, want %q", got, want)
	}
	if !rec.Resolved || rec.ResolvedPx != 360 {
		t.Errorf("resolved = %v (%v), want 360", rec.ResolvedPx, rec.Resolved)
	}
}

func TestRecompute_CollapsedSidebar(t *testing.T) {
	// Sidebar slid fully off-screen: left -240px cancels width 240px, so
	// the sidebar contributes zero net occlusion.
	d := fixture()
	d.Sidebar().SetDeclared("left", "-240px")

	var rec Record
	s := New(d, WithObserver(func(r Record) { rec = r }))
	s.Recompute(TriggerTransitionEnd)

	if !rec.Resolved || rec.ResolvedPx != 600 {
		t.Errorf("resolved = %v, want 600", rec.ResolvedPx)
	}
}

func TestRecompute_Idempotent(t *testing.T) {
	d := fixture()
	s := New(d)

	s.Recompute(TriggerLoad)
	first := mainOverride(t, d)
	s.Recompute(TriggerResize)
	second := mainOverride(t, d)

	if first != second {
		t.Errorf("repeat recompute changed the override: %q -> %q", first, second)
	}
}

func TestRecompute_ClearsStaleOverride(t *testing.T) {
	// Changing sidebar width between runs must yield a function of the
	// new width only, never a compound of the previous output.
	d := fixture()
	s := New(d)

	s.Recompute(TriggerLoad)
	d.Sidebar().SetDeclared("width", "64px")
	s.Recompute(TriggerResize)

	want := "calc(600px - 64px - 0px)"
	if got := mainOverride(t, d); got != want {
		t.Errorf("override = %q, want %q", got, want)
	}
}

func TestRecompute_MissingSidebar(t *testing.T) {
	d := fixture()
	s := New(d)

	s.Recompute(TriggerLoad)
	before := mainOverride(t, d)

	d.Remove("sidebar")
	s.Recompute(TriggerResize)

	if got := mainOverride(t, d); got != before {
		t.Errorf("style modified with sidebar missing: %q -> %q", before, got)
	}
}

func TestRecompute_MissingMain(t *testing.T) {
	d := fixture()
	d.Remove("main")

	observed := false
	s := New(d, WithObserver(func(Record) { observed = true }))
	s.Recompute(TriggerLoad)

	if observed {
		t.Error("no record should be produced without a main element")
	}
}

func TestRecompute_UnitIndependence(t *testing.T) {
	// Intrinsic in percent, sidebar geometry in pixels. The override
	// keeps both units; resolution against the viewport matches a manual
	// single-unit calculation. 50% of 1200 = 600, minus 240 = 360.
	d := fixture()
	d.SetViewport(page.Size{Width: 1200, Height: 800})
	d.Main().SetDeclared("min-width", "50%")

	var rec Record
	s := New(d, WithObserver(func(r Record) { rec = r }))
	s.Recompute(TriggerLoad)

	want := "calc(50% - 240px - 0px)"
	if got := mainOverride(t, d); got != want {
		t.Errorf("override = %q, want %q", got, want)
	}
	if !rec.Resolved || rec.ResolvedPx != 360 {
		t.Errorf("resolved = %v, want 360", rec.ResolvedPx)
	}
}

func TestRecompute_UnmeasurableRestoresOverride(t *testing.T) {
	d := fixture()
	s := New(d)

	s.Recompute(TriggerLoad)
	before := mainOverride(t, d)

	d.Sidebar().SetDeclared("width", "auto")
	s.Recompute(TriggerResize)

	if got := mainOverride(t, d); got != before {
		t.Errorf("failed measurement should fail open: %q -> %q", before, got)
	}
}

func TestAttach(t *testing.T) {
	d := fixture()
	bus := event.NewBus()

	var triggers []Trigger
	s := New(d, WithObserver(func(r Record) { triggers = append(triggers, r.Trigger) }))
	detach := s.Attach(bus)

	bus.Publish(event.Event{Kind: event.Load, Viewport: d.Viewport()})
	bus.Publish(event.Event{Kind: event.Resize, Viewport: d.Viewport()})
	bus.Publish(event.Event{Kind: event.TransitionEnd, Target: "sidebar"})
	bus.Publish(event.Event{Kind: event.TransitionEnd, Target: "main"}) // not ours

	if len(triggers) != 3 {
		t.Fatalf("got %d recomputes, want 3 (%v)", len(triggers), triggers)
	}
	if triggers[0] != TriggerLoad || triggers[1] != TriggerResize || triggers[2] != TriggerTransitionEnd {
		t.Errorf("triggers: %v", triggers)
	}

	detach()
	bus.Publish(event.Event{Kind: event.Resize})
	if len(triggers) != 3 {
		t.Error("recompute fired after detach")
	}
}

func TestAttach_ResponsiveBreakpoint(t *testing.T) {
	// A resize that shrinks the sidebar (media-query style) must grow
	// the effective minimum width on the next event.
	d := fixture()
	bus := event.NewBus()

	var last Record
	s := New(d, WithObserver(func(r Record) { last = r }))
	s.Attach(bus)

	bus.Publish(event.Event{Kind: event.Load, Viewport: d.Viewport()})
	if last.ResolvedPx != 360 {
		t.Fatalf("initial resolved = %v, want 360", last.ResolvedPx)
	}

	d.SetViewport(page.Size{Width: 860, Height: 600})
	d.Sidebar().SetDeclared("width", "64px")
	bus.Publish(event.Event{Kind: event.Resize, Viewport: d.Viewport()})

	if last.ResolvedPx != 536 {
		t.Errorf("resolved after breakpoint = %v, want 536", last.ResolvedPx)
	}
}
