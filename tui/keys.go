package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines the key bindings of the workbench.
type KeyMap struct {
	// Menu
	Up     key.Binding
	Down   key.Binding
	Select key.Binding

	// Composer field focus
	NextField key.Binding
	PrevField key.Binding

	// Editing views
	LoadSample key.Binding
	LoadFile   key.Binding
	ClearInput key.Binding
	ResetForm  key.Binding
	Submit     key.Binding
	Copy       key.Binding
	Save       key.Binding

	// Session summary scrolling
	ScrollUp   key.Binding
	ScrollDown key.Binding

	Back key.Binding
	Quit key.Binding
}

// DefaultKeyMap uses control chords in the editing views so plain keys
// always reach the text inputs.
var DefaultKeyMap = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	Select: key.NewBinding(
		key.WithKeys("enter", " "),
		key.WithHelp("enter", "select"),
	),
	NextField: key.NewBinding(
		key.WithKeys("tab", "down"),
		key.WithHelp("tab", "next field"),
	),
	PrevField: key.NewBinding(
		key.WithKeys("shift+tab", "up"),
		key.WithHelp("shift+tab", "previous field"),
	),
	LoadSample: key.NewBinding(
		key.WithKeys("ctrl+l"),
		key.WithHelp("ctrl+l", "sample"),
	),
	LoadFile: key.NewBinding(
		key.WithKeys("ctrl+f"),
		key.WithHelp("ctrl+f", "load file"),
	),
	ClearInput: key.NewBinding(
		key.WithKeys("ctrl+k"),
		key.WithHelp("ctrl+k", "clear"),
	),
	ResetForm: key.NewBinding(
		key.WithKeys("ctrl+r"),
		key.WithHelp("ctrl+r", "reset"),
	),
	Submit: key.NewBinding(
		key.WithKeys("ctrl+s"),
		key.WithHelp("ctrl+s", "submit"),
	),
	Copy: key.NewBinding(
		key.WithKeys("ctrl+y"),
		key.WithHelp("ctrl+y", "copy"),
	),
	Save: key.NewBinding(
		key.WithKeys("ctrl+o"),
		key.WithHelp("ctrl+o", "save"),
	),
	ScrollUp: key.NewBinding(
		key.WithKeys("pgup", "ctrl+u"),
		key.WithHelp("pgup", "scroll summary"),
	),
	ScrollDown: key.NewBinding(
		key.WithKeys("pgdown", "ctrl+d"),
		key.WithHelp("pgdn", "scroll summary"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "menu"),
	),
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "quit"),
	),
}

// helpLine renders bindings as "key action • key action".
func helpLine(bindings ...key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return helpStyle.Render(strings.Join(parts, " • "))
}
