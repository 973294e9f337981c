package event

import (
	"testing"

	"github.com/okvist/pagesync/internal/page"
)

func TestSubscribePublish(t *testing.T) {
	b := NewBus()

	var got []Event
	b.Subscribe(Resize, func(e Event) { got = append(got, e) })

	b.Publish(Event{Kind: Resize, Viewport: page.Size{Width: 800, Height: 600}})
	b.Publish(Event{Kind: Load})

	if len(got) != 1 {
		t.Fatalf("resize handler fired %d times, want 1", len(got))
	}
	if got[0].Viewport.Width != 800 {
		t.Errorf("event viewport: %+v", got[0].Viewport)
	}
	if got[0].Time.IsZero() {
		t.Error("publish should stamp a time")
	}
}

func TestDispatchOrder(t *testing.T) {
	b := NewBus()

	var order []int
	b.Subscribe(Load, func(Event) { order = append(order, 1) })
	b.Subscribe(Load, func(Event) { order = append(order, 2) })
	b.Subscribe(Load, func(Event) { order = append(order, 3) })

	b.Publish(Event{Kind: Load})

	if len(order) != 3 || order[0] != 1 || order[1] != 2 || order[2] != 3 {
		t.Errorf("handlers ran out of subscription order: %v", order)
	}
}

func TestCancel(t *testing.T) {
	b := NewBus()

	fired := 0
	sub := b.Subscribe(TransitionEnd, func(Event) { fired++ })

	b.Publish(Event{Kind: TransitionEnd, Target: "sidebar"})
	sub.Cancel()
	sub.Cancel() // second cancel is a no-op
	b.Publish(Event{Kind: TransitionEnd, Target: "sidebar"})

	if fired != 1 {
		t.Errorf("handler fired %d times after cancel, want 1", fired)
	}
}

func TestCancelDuringDispatch(t *testing.T) {
	b := NewBus()

	var sub2 *Subscription
	fired2 := 0
	b.Subscribe(Load, func(Event) { sub2.Cancel() })
	sub2 = b.Subscribe(Load, func(Event) { fired2++ })

	b.Publish(Event{Kind: Load})

	if fired2 != 0 {
		t.Error("subscription cancelled mid-dispatch should not fire")
	}
}

func TestKindString(t *testing.T) {
	if Load.String() != "load" || Resize.String() != "resize" || TransitionEnd.String() != "transitionend" {
		t.Error("unexpected kind names")
	}
}
