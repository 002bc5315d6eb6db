package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap holds the bindings of the todo screen
type KeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Top    key.Binding
	Bottom key.Binding
	Add    key.Binding
	Edit   key.Binding
	Toggle key.Binding
	Delete key.Binding
	Copy   key.Binding
	Submit key.Binding
	Cancel key.Binding
	Help   key.Binding
	Quit   key.Binding
	Exit   key.Binding
}

// DefaultKeyMap is the standard set of bindings
var DefaultKeyMap = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("↓/j", "down"),
	),
	Top: key.NewBinding(
		key.WithKeys("g", "home"),
		key.WithHelp("g", "top"),
	),
	Bottom: key.NewBinding(
		key.WithKeys("G", "end"),
		key.WithHelp("G", "bottom"),
	),
	Add: key.NewBinding(
		key.WithKeys("a", "i", "n"),
		key.WithHelp("a", "add"),
	),
	Edit: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "edit"),
	),
	Toggle: key.NewBinding(
		key.WithKeys(" ", "x"),
		key.WithHelp("space/x", "toggle done"),
	),
	Delete: key.NewBinding(
		key.WithKeys("d", "delete"),
		key.WithHelp("d", "delete"),
	),
	Copy: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy"),
	),
	Submit: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "save"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "more"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q"),
		key.WithHelp("q", "quit"),
	),
	Exit: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "quit"),
	),
}

// listHelp is the help shown while moving through the list
type listHelp struct {
	keys KeyMap
}

func (h listHelp) ShortHelp() []key.Binding {
	return []key.Binding{h.keys.Add, h.keys.Edit, h.keys.Toggle, h.keys.Delete, h.keys.Help, h.keys.Quit}
}

func (h listHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{h.keys.Up, h.keys.Down, h.keys.Top, h.keys.Bottom},
		{h.keys.Add, h.keys.Edit, h.keys.Toggle, h.keys.Delete},
		{h.keys.Copy, h.keys.Help, h.keys.Quit},
	}
}

// inputHelp is the help shown while typing in the add or edit input
type inputHelp struct {
	keys KeyMap
}

func (h inputHelp) ShortHelp() []key.Binding {
	return []key.Binding{h.keys.Submit, h.keys.Cancel, h.keys.Exit}
}

func (h inputHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{h.ShortHelp()}
}
