package app

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/iw2rmb/rheia/editor"
)

// KeyMap holds the application shortcuts. Save is matched before anything
// reaches the editor.
type KeyMap struct {
	Save  key.Binding
	Open  key.Binding
	New   key.Binding
	Theme key.Binding
	Diff  key.Binding
	Quit  key.Binding

	Cancel key.Binding
	Accept key.Binding

	Editor editor.KeyMap
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Save:  key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
		Open:  key.NewBinding(key.WithKeys("ctrl+o"), key.WithHelp("ctrl+o", "open")),
		New:   key.NewBinding(key.WithKeys("ctrl+n"), key.WithHelp("ctrl+n", "new")),
		Theme: key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "theme")),
		Diff:  key.NewBinding(key.WithKeys("ctrl+d"), key.WithHelp("ctrl+d", "changes")),
		Quit:  key.NewBinding(key.WithKeys("ctrl+q"), key.WithHelp("ctrl+q", "quit")),

		Cancel: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		Accept: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "confirm")),

		Editor: editor.DefaultKeyMap(),
	}
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Save, k.Open, k.New, k.Theme, k.Diff, k.Quit}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return append([][]key.Binding{k.ShortHelp()}, k.Editor.FullHelp()...)
}

// promptKeys is the help shown while a dialog is open.
type promptKeys struct{ KeyMap }

func (k promptKeys) ShortHelp() []key.Binding { return []key.Binding{k.Accept, k.Cancel} }

func (k promptKeys) FullHelp() [][]key.Binding { return [][]key.Binding{k.ShortHelp()} }

// diffKeys is the help shown while the changes view is open.
type diffKeys struct{ KeyMap }

func (k diffKeys) ShortHelp() []key.Binding { return []key.Binding{k.Diff, k.Cancel} }

func (k diffKeys) FullHelp() [][]key.Binding { return [][]key.Binding{k.ShortHelp()} }
