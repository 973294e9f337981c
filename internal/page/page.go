// Package page is an in-memory model of the two-pane page skeleton:
// element handles with declared styles and inline overrides, plus the
// viewport they live in. It is the fixture the layout synchronizer runs
// against, in place of a live rendering engine.
package page

import "time"

// Size is a viewport size in CSS pixels.
type Size struct {
	Width  int
	Height int
}

// Element is a page element handle. Styles split into declared rules
// (the stylesheet) and inline overrides; Computed resolves the cascade
// as far as this model needs it: inline wins.
type Element struct {
	ID string

	declared map[string]string
	inline   map[string]string
}

// NewElement creates an element with the given declared styles.
func NewElement(id string, declared map[string]string) *Element {
	d := make(map[string]string, len(declared))
	for k, v := range declared {
		d[k] = v
	}
	return &Element{ID: id, declared: d, inline: map[string]string{}}
}

// Computed returns the current value for prop, or "" when neither an
// inline override nor a declared rule sets it.
func (e *Element) Computed(prop string) string {
	if v, ok := e.inline[prop]; ok {
		return v
	}
	return e.declared[prop]
}

// Inline returns the inline override for prop, if any.
func (e *Element) Inline(prop string) (string, bool) {
	v, ok := e.inline[prop]
	return v, ok
}

// SetInline sets an inline style override.
func (e *Element) SetInline(prop, value string) {
	e.inline[prop] = value
}

// ClearInline removes an inline override, restoring the declared value.
func (e *Element) ClearInline(prop string) {
	delete(e.inline, prop)
}

// SetDeclared updates a declared (stylesheet) rule.
func (e *Element) SetDeclared(prop, value string) {
	e.declared[prop] = value
}

// Declared returns the declared rule for prop, if any.
func (e *Element) Declared(prop string) (string, bool) {
	v, ok := e.declared[prop]
	return v, ok
}

// Document holds the page's elements and viewport.
type Document struct {
	// SidebarID and MainID name the two collaborating elements.
	SidebarID string
	MainID    string

	// Transition is how long the sidebar's width/left transition runs.
	Transition time.Duration

	// OnResize is an optional script run before each resize event.
	OnResize string

	viewport Size
	elements map[string]*Element
	order    []string
}

// NewDocument creates an empty document with the given viewport.
func NewDocument(viewport Size) *Document {
	return &Document{
		viewport: viewport,
		elements: map[string]*Element{},
	}
}

// Add registers an element. A second element with the same id replaces
// the first.
func (d *Document) Add(e *Element) {
	if _, ok := d.elements[e.ID]; !ok {
		d.order = append(d.order, e.ID)
	}
	d.elements[e.ID] = e
}

// Remove deletes an element from the document.
func (d *Document) Remove(id string) {
	if _, ok := d.elements[id]; !ok {
		return
	}
	delete(d.elements, id)
	for i, eid := range d.order {
		if eid == id {
			d.order = append(d.order[:i], d.order[i+1:]...)
			break
		}
	}
}

// ElementByID returns the element with the given id, or nil.
func (d *Document) ElementByID(id string) *Element {
	return d.elements[id]
}

// Elements returns all elements in declaration order.
func (d *Document) Elements() []*Element {
	out := make([]*Element, 0, len(d.order))
	for _, id := range d.order {
		out = append(out, d.elements[id])
	}
	return out
}

// Sidebar returns the sidebar element, or nil.
func (d *Document) Sidebar() *Element { return d.elements[d.SidebarID] }

// Main returns the main content element, or nil.
func (d *Document) Main() *Element { return d.elements[d.MainID] }

// Viewport returns the current viewport size.
func (d *Document) Viewport() Size { return d.viewport }

// SetViewport updates the viewport size.
func (d *Document) SetViewport(s Size) { d.viewport = s }

// DefaultDocument returns the canonical skeleton: a 240px sidebar at
// left 0 next to a main region with a 600px intrinsic minimum width.
func DefaultDocument() *Document {
	d := NewDocument(Size{Width: 1280, Height: 800})
	d.SidebarID = "sidebar"
	d.MainID = "main"
	d.Transition = 300 * time.Millisecond
	d.Add(NewElement("sidebar", map[string]string{
		"width": "240px",
		"left":  "0px",
	}))
	d.Add(NewElement("main", map[string]string{
		"min-width": "600px",
	}))
	return d
}
