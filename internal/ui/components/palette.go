package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sahilm/fuzzy"

	"github.com/okvist/pagesync/internal/ui/msgs"
	"github.com/okvist/pagesync/internal/ui/theme"
)

// paletteCommand is a command entry in the palette.
type paletteCommand struct {
	Name     string
	Shortcut string
	Msg      tea.Msg
}

var defaultCommands = []paletteCommand{
	{Name: "Toggle Sidebar", Shortcut: "b", Msg: msgs.ToggleSidebarMsg{}},
	{Name: "Replay Load Event", Shortcut: "r", Msg: msgs.ReplayLoadMsg{}},
	{Name: "Grow Viewport", Shortcut: "+", Msg: msgs.ResizeViewportMsg{DeltaW: 80}},
	{Name: "Shrink Viewport", Shortcut: "-", Msg: msgs.ResizeViewportMsg{DeltaW: -80}},
	{Name: "Copy Expression", Shortcut: "y", Msg: msgs.CopyExprMsg{}},
	{Name: "Switch Theme", Shortcut: "", Msg: msgs.SwitchThemeMsg{}},
	{Name: "Help", Shortcut: "?", Msg: msgs.ShowHelpMsg{}},
	{Name: "Quit", Shortcut: "q", Msg: tea.Quit()},
}

// CommandPalette is a fuzzy command palette overlay.
type CommandPalette struct {
	Visible  bool
	input    textinput.Model
	commands []paletteCommand
	filtered []paletteCommand
	cursor   int
	theme    theme.Theme
	styles   theme.Styles
}

// NewCommandPalette creates a new command palette.
func NewCommandPalette(t theme.Theme, s theme.Styles) CommandPalette {
	ti := textinput.New()
	ti.Placeholder = "Type a command..."
	ti.CharLimit = 64
	ti.Width = 38

	return CommandPalette{
		input:    ti,
		commands: defaultCommands,
		filtered: defaultCommands,
		theme:    t,
		styles:   s,
	}
}

// Open shows the command palette.
func (m *CommandPalette) Open() {
	m.Visible = true
	m.input.SetValue("")
	m.input.Focus()
	m.filtered = m.commands
	m.cursor = 0
}

// Close hides the command palette.
func (m *CommandPalette) Close() {
	m.Visible = false
	m.input.Blur()
}

// Update handles key input while the palette is open. The second return
// is the selected command's message, if one was chosen.
func (m CommandPalette) Update(msg tea.Msg) (CommandPalette, tea.Cmd, tea.Msg) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil, nil
	}

	switch key.String() {
	case "esc":
		m.Close()
		return m, nil, nil
	case "enter":
		if m.cursor < len(m.filtered) {
			chosen := m.filtered[m.cursor].Msg
			m.Close()
			return m, nil, chosen
		}
		m.Close()
		return m, nil, nil
	case "up", "ctrl+k":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil, nil
	case "down", "ctrl+j":
		if m.cursor < len(m.filtered)-1 {
			m.cursor++
		}
		return m, nil, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.filter()
	return m, cmd, nil
}

func (m *CommandPalette) filter() {
	query := m.input.Value()
	if query == "" {
		m.filtered = m.commands
		m.cursor = 0
		return
	}

	names := make([]string, len(m.commands))
	for i, c := range m.commands {
		names[i] = c.Name
	}
	matches := fuzzy.Find(query, names)
	m.filtered = make([]paletteCommand, 0, len(matches))
	for _, match := range matches {
		m.filtered = append(m.filtered, m.commands[match.Index])
	}
	if m.cursor >= len(m.filtered) {
		m.cursor = 0
	}
}

// View renders the palette overlay.
func (m CommandPalette) View() string {
	if !m.Visible {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.input.View())
	b.WriteString("\n")

	for i, c := range m.filtered {
		line := c.Name
		if c.Shortcut != "" {
			line += "  " + m.styles.Hint.Render(c.Shortcut)
		}
		if i == m.cursor {
			line = m.styles.Cursor.Render("> ") + m.styles.Selected.Render(line)
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	if len(m.filtered) == 0 {
		b.WriteString(m.styles.Muted.Render("  no matching commands"))
	}

	return m.styles.FocusedBorder.
		Padding(0, 1).
		Render(b.String())
}
