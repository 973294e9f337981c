// Package layout keeps the main content region's minimum width in step
// with the sidebar's rendered geometry, so the two panes never overlap
// whatever state the sidebar is in.
package layout

import (
	"time"

	"github.com/okvist/pagesync/internal/css"
	"github.com/okvist/pagesync/internal/event"
	"github.com/okvist/pagesync/internal/page"
)

const (
	propMinWidth = "min-width"
	propWidth    = "width"
	propLeft     = "left"
)

// Trigger names what caused a recomputation.
type Trigger string

const (
	TriggerLoad          Trigger = "load"
	TriggerResize        Trigger = "resize"
	TriggerTransitionEnd Trigger = "transitionend"
	TriggerManual        Trigger = "manual"
)

// Record captures one applied recomputation.
type Record struct {
	Trigger Trigger

	Intrinsic    css.Length
	SidebarWidth css.Length
	SidebarLeft  css.Length

	Expr    css.Expr
	Applied string

	// ResolvedPx is the expression evaluated against the viewport at
	// recompute time. Resolved is false when evaluation wasn't possible
	// (e.g. font-relative units); the symbolic override still applies.
	ResolvedPx float64
	Resolved   bool

	Viewport page.Size
	At       time.Time
}

// Observer receives a Record after each applied recomputation.
type Observer func(Record)

// Synchronizer recomputes the main region's min-width override from the
// sidebar's current geometry. It owns exactly one piece of mutable
// state: that override.
type Synchronizer struct {
	doc      *page.Document
	observer Observer
}

// Option configures a Synchronizer.
type Option func(*Synchronizer)

// WithObserver registers fn to receive a Record per applied recompute.
func WithObserver(fn Observer) Option {
	return func(s *Synchronizer) { s.observer = fn }
}

// New creates a Synchronizer bound to doc's sidebar and main elements.
func New(doc *page.Document, opts ...Option) *Synchronizer {
	s := &Synchronizer{doc: doc}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Recompute rereads the sidebar and main geometry and rewrites the main
// region's min-width override as
//
//	intrinsic min-width - sidebar width - sidebar left
//
// composed as a deferred calc() expression, so operands keep their
// declared units. The prior override is cleared first: the intrinsic
// stylesheet value is what gets measured, never the synchronizer's own
// previous output.
//
// Recompute is idempotent and never fails visibly. A missing element
// leaves the page untouched; an unmeasurable style restores whatever
// override was in place and gives up.
func (s *Synchronizer) Recompute(t Trigger) {
	main := s.doc.Main()
	sidebar := s.doc.Sidebar()
	if main == nil || sidebar == nil {
		return
	}

	prev, hadPrev := main.Inline(propMinWidth)
	main.ClearInline(propMinWidth)

	intrinsic, err := css.Parse(main.Computed(propMinWidth))
	if err != nil {
		s.restore(main, prev, hadPrev)
		return
	}
	width, err := css.Parse(sidebar.Computed(propWidth))
	if err != nil {
		s.restore(main, prev, hadPrev)
		return
	}
	left, err := css.Parse(sidebar.Computed(propLeft))
	if err != nil {
		s.restore(main, prev, hadPrev)
		return
	}

	expr := css.Calc(intrinsic).Sub(width).Sub(left)
	applied := expr.String()
	main.SetInline(propMinWidth, applied)

	if s.observer == nil {
		return
	}
	rec := Record{
		Trigger:      t,
		Intrinsic:    intrinsic,
		SidebarWidth: width,
		SidebarLeft:  left,
		Expr:         expr,
		Applied:      applied,
		Viewport:     s.doc.Viewport(),
		At:           time.Now(),
	}
	vp := s.doc.Viewport()
	if px, err := expr.Resolve(css.Context{
		ViewportWidth:  float64(vp.Width),
		ViewportHeight: float64(vp.Height),
	}); err == nil {
		rec.ResolvedPx = px
		rec.Resolved = true
	}
	s.observer(rec)
}

func (s *Synchronizer) restore(main *page.Element, prev string, hadPrev bool) {
	if hadPrev {
		main.SetInline(propMinWidth, prev)
	}
}

// Attach subscribes the synchronizer to load, resize, and sidebar
// transition-end events on bus. Intermediate transition frames never
// reach the bus, so recomputation happens once per settled state, not
// per animation frame. The returned function detaches all three
// subscriptions.
func (s *Synchronizer) Attach(bus *event.Bus) (detach func()) {
	subs := []*event.Subscription{
		bus.Subscribe(event.Load, func(event.Event) {
			s.Recompute(TriggerLoad)
		}),
		bus.Subscribe(event.Resize, func(event.Event) {
			s.Recompute(TriggerResize)
		}),
		bus.Subscribe(event.TransitionEnd, func(e event.Event) {
			if e.Target != s.doc.SidebarID {
				return
			}
			s.Recompute(TriggerTransitionEnd)
		}),
	}
	return func() {
		for _, sub := range subs {
			sub.Cancel()
		}
	}
}
