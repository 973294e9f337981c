package app

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the application key bindings.
type KeyMap struct {
	ToggleSidebar key.Binding
	ReplayLoad    key.Binding
	GrowViewport  key.Binding
	ShrinkVp      key.Binding
	CopyExpr      key.Binding
	Palette       key.Binding
	Help          key.Binding
	CycleFocus    key.Binding
	Quit          key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		ToggleSidebar: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "toggle sidebar"),
		),
		ReplayLoad: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "replay load"),
		),
		GrowViewport: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "grow viewport"),
		),
		ShrinkVp: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", "shrink viewport"),
		),
		CopyExpr: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy expression"),
		),
		Palette: key.NewBinding(
			key.WithKeys("ctrl+k", ":"),
			key.WithHelp("ctrl+k", "command palette"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		CycleFocus: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "cycle focus"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
