// Package event is a small synchronous event bus for page geometry
// events: load, resize, and transition end. Handlers subscribe through
// explicit registration calls and get a disposable handle back, so the
// owner controls attach/detach instead of leaking global hooks.
package event

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/okvist/pagesync/internal/page"
)

// Kind identifies a geometry event.
type Kind int

const (
	Load Kind = iota
	Resize
	TransitionEnd
)

func (k Kind) String() string {
	switch k {
	case Load:
		return "load"
	case Resize:
		return "resize"
	case TransitionEnd:
		return "transitionend"
	default:
		return "unknown"
	}
}

// Event is a geometry-affecting occurrence on the page.
type Event struct {
	Kind Kind

	// Target is the element the event concerns; empty for load/resize.
	Target string

	Viewport page.Size
	Time     time.Time
}

// Handler receives published events.
type Handler func(Event)

type entry struct {
	id string
	fn Handler
}

// Bus dispatches events to subscribed handlers, synchronously and in
// subscription order. The lock guards the handler table only; handlers
// run unlocked, so a handler may cancel its own subscription.
type Bus struct {
	mu       sync.Mutex
	handlers map[Kind][]entry
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{handlers: map[Kind][]entry{}}
}

// Subscribe registers fn for events of kind k and returns a handle that
// cancels the registration.
func (b *Bus) Subscribe(k Kind, fn Handler) *Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := uuid.NewString()
	b.handlers[k] = append(b.handlers[k], entry{id: id, fn: fn})
	return &Subscription{bus: b, kind: k, id: id}
}

// Publish delivers e to every live subscriber of e.Kind. Each handler
// runs to completion before the next starts.
func (b *Bus) Publish(e Event) {
	if e.Time.IsZero() {
		e.Time = time.Now()
	}

	b.mu.Lock()
	entries := make([]entry, len(b.handlers[e.Kind]))
	copy(entries, b.handlers[e.Kind])
	b.mu.Unlock()

	for _, en := range entries {
		if !b.alive(e.Kind, en.id) {
			continue
		}
		en.fn(e)
	}
}

func (b *Bus) alive(k Kind, id string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, en := range b.handlers[k] {
		if en.id == id {
			return true
		}
	}
	return false
}

func (b *Bus) cancel(k Kind, id string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	entries := b.handlers[k]
	for i, en := range entries {
		if en.id == id {
			b.handlers[k] = append(entries[:i], entries[i+1:]...)
			return
		}
	}
}

// Subscription is a disposable registration handle.
type Subscription struct {
	bus  *Bus
	kind Kind
	id   string
	once sync.Once
}

// ID returns the subscription's unique id.
func (s *Subscription) ID() string { return s.id }

// Cancel removes the registration. After Cancel returns the handler
// will not fire again; cancelling twice is a no-op.
func (s *Subscription) Cancel() {
	s.once.Do(func() { s.bus.cancel(s.kind, s.id) })
}
