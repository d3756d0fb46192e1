package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Toggle  key.Binding
	Edit    key.Binding
	ExtEdit key.Binding
	Quit    key.Binding

	// Active while a cell editor is open.
	Submit key.Binding
	Cancel key.Binding
}

var keys = keyMap{
	Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Left:    key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
	Right:   key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
	Toggle:  key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "expand/collapse")),
	Edit:    key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
	ExtEdit: key.NewBinding(key.WithKeys("E"), key.WithHelp("E", "$EDITOR")),
	Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	Submit:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "save")),
	Cancel:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
}

func (k keyMap) browseHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Toggle, k.Edit, k.ExtEdit, k.Quit}
}

func (k keyMap) editHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Cancel}
}
