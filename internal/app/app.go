// Package app is the root Bubble Tea model for the inspector: it owns
// the simulated page, drives geometry events through the bus, and lets
// the panels watch the synchronizer respond.
package app

import (
	"sync"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/okvist/pagesync/internal/config"
	"github.com/okvist/pagesync/internal/css"
	"github.com/okvist/pagesync/internal/devtools"
	"github.com/okvist/pagesync/internal/event"
	"github.com/okvist/pagesync/internal/history"
	"github.com/okvist/pagesync/internal/layout"
	"github.com/okvist/pagesync/internal/page"
	"github.com/okvist/pagesync/internal/scripting"
	"github.com/okvist/pagesync/internal/ui/components"
	"github.com/okvist/pagesync/internal/ui/msgs"
	"github.com/okvist/pagesync/internal/ui/panels/inspector"
	logpanel "github.com/okvist/pagesync/internal/ui/panels/log"
	"github.com/okvist/pagesync/internal/ui/panels/preview"
	"github.com/okvist/pagesync/internal/ui/panes"
	"github.com/okvist/pagesync/internal/ui/theme"
)

const minViewportWidth = 320

// recordSink collects synchronizer records published during event
// dispatch so Update can fold them into UI state afterwards.
type recordSink struct {
	mu      sync.Mutex
	pending []layout.Record
}

func (s *recordSink) add(r layout.Record) {
	s.mu.Lock()
	s.pending = append(s.pending, r)
	s.mu.Unlock()
}

func (s *recordSink) drain() []layout.Record {
	s.mu.Lock()
	out := s.pending
	s.pending = nil
	s.mu.Unlock()
	return out
}

// App is the root Bubble Tea model.
type App struct {
	doc    *page.Document
	bus    *event.Bus
	sink   *recordSink
	engine *scripting.Engine
	detach func()

	store *history.Store   // may be nil
	dev   *devtools.Server // may be nil

	preview   preview.Model
	inspector inspector.Model
	log       logpanel.Model

	statusBar components.StatusBar
	palette   components.CommandPalette
	help      components.Help
	toast     components.Toast

	anim      transition
	collapsed bool

	focus msgs.PanelFocus
	grid  panes.Grid
	keys  KeyMap

	cfg    config.Config
	theme  theme.Theme
	styles theme.Styles

	width  int
	height int
	ready  bool
}

// New creates a new App model. store and dev may be nil.
func New(doc *page.Document, cfg config.Config, store *history.Store, dev *devtools.Server) App {
	t := theme.ByName(cfg.Theme)
	s := theme.NewStyles(t)

	if cfg.Transition > 0 {
		doc.Transition = cfg.Transition
	}

	sink := &recordSink{}
	syncer := layout.New(doc, layout.WithObserver(sink.add))

	bus := event.NewBus()
	detach := syncer.Attach(bus)

	a := App{
		doc:    doc,
		bus:    bus,
		sink:   sink,
		engine: scripting.NewEngine(cfg.ScriptTimeout),
		detach: detach,

		store: store,
		dev:   dev,

		preview:   preview.New(doc, t, s),
		inspector: inspector.New(t, s),
		log:       logpanel.New(t, s),

		statusBar: components.NewStatusBar(t, s),
		palette:   components.NewCommandPalette(t, s),
		help:      components.NewHelp(t, s),
		toast:     components.NewToast(t, s),

		keys:   DefaultKeyMap(),
		cfg:    cfg,
		theme:  t,
		styles: s,
	}

	if store != nil {
		if entries, err := store.List(100, 0); err == nil {
			a.log.SetEntries(entries)
		}
	}

	vp := doc.Viewport()
	a.statusBar.SetViewport(vp.Width, vp.Height)
	return a
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	a.bus.Publish(event.Event{Kind: event.Load, Viewport: a.doc.Viewport()})
	return nil
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		a.applyGrid()

	case tea.KeyMsg:
		model, cmd, handled := a.handleKey(msg)
		if handled {
			return model, cmd
		}
		a = model.(App)
		if cmd != nil {
			cmds = append(cmds, cmd)
		}

	case transitionTickMsg:
		if a.anim.active {
			cmds = append(cmds, a.stepTransition())
		}

	case msgs.ToggleSidebarMsg:
		cmds = append(cmds, a.toggleSidebar())

	case msgs.ReplayLoadMsg:
		a.bus.Publish(event.Event{Kind: event.Load, Viewport: a.doc.Viewport()})

	case msgs.ResizeViewportMsg:
		a.resizeViewport(msg.DeltaW)

	case msgs.CopyExprMsg:
		cmds = append(cmds, a.copyExpr())

	case msgs.SwitchThemeMsg:
		next := "mono"
		if a.theme.Name == "mono" {
			next = "slate"
		}
		a.cfg.Theme = next
		a.detach()
		rebuilt := New(a.doc, a.cfg, a.store, a.dev)
		rebuilt.width, rebuilt.height, rebuilt.ready = a.width, a.height, a.ready
		rebuilt.collapsed = a.collapsed
		rebuilt.applyGrid()
		return rebuilt, rebuilt.toast.Show("theme: "+next, false)

	case msgs.ShowHelpMsg:
		a.help.Toggle()

	case tea.QuitMsg:
		a.detach()
		return a, tea.Quit
	}

	var cmd tea.Cmd
	a.toast, cmd = a.toast.Update(msg)
	if cmd != nil {
		cmds = append(cmds, cmd)
	}

	a.absorbRecords()
	return a, tea.Batch(cmds...)
}

// handleKey routes key input. handled=true means the key was consumed
// by an overlay and the update is complete.
func (a App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd, bool) {
	if a.palette.Visible {
		var cmd tea.Cmd
		var chosen tea.Msg
		a.palette, cmd, chosen = a.palette.Update(msg)
		if chosen != nil {
			model, cmd2 := a.Update(chosen)
			return model, cmd2, true
		}
		return a, cmd, true
	}

	if a.help.Visible {
		a.help.Visible = false
		return a, nil, true
	}

	if a.focus == msgs.FocusLog && a.log.Filtering() {
		var cmd tea.Cmd
		a.log, cmd = a.log.Update(msg)
		return a, cmd, true
	}

	switch {
	case key.Matches(msg, a.keys.Quit):
		a.detach()
		return a, tea.Quit, true
	case key.Matches(msg, a.keys.Palette):
		a.palette.Open()
		return a, nil, true
	case key.Matches(msg, a.keys.Help):
		a.help.Toggle()
		return a, nil, true
	case key.Matches(msg, a.keys.CycleFocus):
		a.focus = (a.focus + 1) % 3
		a.applyFocus()
		return a, nil, true
	case key.Matches(msg, a.keys.ToggleSidebar):
		return a, a.toggleSidebar(), false
	case key.Matches(msg, a.keys.ReplayLoad):
		a.bus.Publish(event.Event{Kind: event.Load, Viewport: a.doc.Viewport()})
		return a, nil, false
	case key.Matches(msg, a.keys.GrowViewport):
		a.resizeViewport(80)
		return a, nil, false
	case key.Matches(msg, a.keys.ShrinkVp):
		a.resizeViewport(-80)
		return a, nil, false
	case key.Matches(msg, a.keys.CopyExpr):
		return a, a.copyExpr(), false
	}

	if a.focus == msgs.FocusLog {
		var cmd tea.Cmd
		a.log, cmd = a.log.Update(msg)
		return a, cmd, false
	}
	return a, nil, false
}

// toggleSidebar starts the collapse/expand transition from the
// sidebar's current left offset.
func (a *App) toggleSidebar() tea.Cmd {
	sb := a.doc.Sidebar()
	if sb == nil || a.anim.active {
		return nil
	}

	vp := a.doc.Viewport()
	ctx := css.Context{ViewportWidth: float64(vp.Width), ViewportHeight: float64(vp.Height)}

	var width, from float64
	if l, err := css.Parse(sb.Computed("width")); err == nil {
		width, _ = l.ResolvePx(ctx)
	}
	if l, err := css.Parse(sb.Computed("left")); err == nil {
		from, _ = l.ResolvePx(ctx)
	}

	to := -width
	if a.collapsed {
		to = 0
	}
	a.collapsed = !a.collapsed
	return a.anim.begin(from, to, a.doc.Transition)
}

func (a *App) stepTransition() tea.Cmd {
	sb := a.doc.Sidebar()
	if sb == nil {
		a.anim.active = false
		return nil
	}

	value, done := a.anim.step(timeNow())
	sb.SetDeclared("left", pxString(value))
	if !done {
		return tickTransition()
	}
	a.bus.Publish(event.Event{
		Kind:     event.TransitionEnd,
		Target:   sb.ID,
		Viewport: a.doc.Viewport(),
	})
	return nil
}

// resizeViewport changes the simulated viewport, runs the page's
// responsive hook, then publishes the resize event.
func (a *App) resizeViewport(deltaW int) {
	vp := a.doc.Viewport()
	vp.Width += deltaW
	if vp.Width < minViewportWidth {
		vp.Width = minViewportWidth
	}
	a.doc.SetViewport(vp)
	a.statusBar.SetViewport(vp.Width, vp.Height)

	if res := a.engine.RunResize(a.doc); res.Err != nil {
		a.statusBar.SetMessage("onresize hook: "+res.Err.Error(), true)
	} else {
		a.statusBar.SetMessage("", false)
	}

	a.bus.Publish(event.Event{Kind: event.Resize, Viewport: vp})
}

func (a *App) copyExpr() tea.Cmd {
	expr, ok := a.inspector.Expr()
	if !ok {
		return a.toast.Show("nothing to copy yet", true)
	}
	if err := clipboard.WriteAll(expr); err != nil {
		return a.toast.Show("clipboard: "+err.Error(), true)
	}
	return a.toast.Show("copied "+expr, false)
}

// absorbRecords folds freshly produced synchronizer records into the
// panels, the history store, and the devtools stream.
func (a *App) absorbRecords() {
	for _, rec := range a.sink.drain() {
		entry := history.FromRecord(rec)
		if a.store != nil {
			if id, err := a.store.Add(entry); err == nil {
				entry.ID = id
			}
		}
		if a.dev != nil {
			a.dev.Publish(entry)
		}
		a.inspector.SetEntry(entry)
		a.log.Append(entry)
		a.statusBar.SetRecompute(entry.Trigger, entry.Expr, entry.Timestamp)
	}
}

func (a *App) applyGrid() {
	a.grid = panes.Calculate(a.width, a.height)
	if a.grid.Stacked {
		third := a.grid.ContentHeight / 3
		a.preview.SetSize(a.grid.PreviewWidth, third)
		a.inspector.SetSize(a.grid.SideWidth, third)
		a.log.SetSize(a.grid.SideWidth, a.grid.ContentHeight-2*third)
	} else {
		a.preview.SetSize(a.grid.PreviewWidth, a.grid.ContentHeight)
		a.inspector.SetSize(a.grid.SideWidth, a.grid.InspectorHeight)
		a.log.SetSize(a.grid.SideWidth, a.grid.LogHeight)
	}
	a.statusBar.SetWidth(a.width)
	a.applyFocus()
}

func (a *App) applyFocus() {
	a.preview.SetFocused(a.focus == msgs.FocusPreview)
	a.inspector.SetFocused(a.focus == msgs.FocusInspector)
	a.log.SetFocused(a.focus == msgs.FocusLog)
}

// View implements tea.Model.
func (a App) View() string {
	if !a.ready {
		return "loading..."
	}

	var main string
	if a.grid.Stacked {
		main = lipgloss.JoinVertical(lipgloss.Left,
			a.preview.View(), a.inspector.View(), a.log.View())
	} else {
		side := lipgloss.JoinVertical(lipgloss.Left, a.inspector.View(), a.log.View())
		main = lipgloss.JoinHorizontal(lipgloss.Top, a.preview.View(), side)
	}

	if a.palette.Visible {
		return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, a.palette.View())
	}
	if a.help.Visible {
		return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, a.help.View())
	}

	status := a.statusBar.View()
	if a.toast.Visible {
		status = lipgloss.PlaceHorizontal(a.width, lipgloss.Right, a.toast.View())
	}
	return lipgloss.JoinVertical(lipgloss.Left, main, status)
}
