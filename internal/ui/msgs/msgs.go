// Package msgs holds the Bubble Tea messages shared across panels.
package msgs

// PanelFocus identifies the focusable panels.
type PanelFocus int

const (
	FocusPreview PanelFocus = iota
	FocusInspector
	FocusLog
)

// ToggleSidebarMsg starts a sidebar collapse/expand transition.
type ToggleSidebarMsg struct{}

// ReplayLoadMsg refires the load event against the page.
type ReplayLoadMsg struct{}

// ResizeViewportMsg grows or shrinks the simulated viewport width.
type ResizeViewportMsg struct {
	DeltaW int
}

// CopyExprMsg copies the current expression to the clipboard.
type CopyExprMsg struct{}

// SwitchThemeMsg cycles to the next theme.
type SwitchThemeMsg struct{}

// ShowHelpMsg toggles the help overlay.
type ShowHelpMsg struct{}
