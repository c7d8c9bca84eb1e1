package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up      key.Binding
	down    key.Binding
	enter   key.Binding
	esc     key.Binding
	tab     key.Binding
	backtab key.Binding
	quit    key.Binding
	logout  key.Binding
	newItem key.Binding
	sync    key.Binding
	edit    key.Binding
	delete  key.Binding
	move    key.Binding
	share   key.Binding
	verse   key.Binding
	save    key.Binding
	yes     key.Binding
	no      key.Binding
}

var keys = keyMap{
	up:      key.NewBinding(key.WithKeys("up", "k")),
	down:    key.NewBinding(key.WithKeys("down", "j")),
	enter:   key.NewBinding(key.WithKeys("enter")),
	esc:     key.NewBinding(key.WithKeys("esc")),
	tab:     key.NewBinding(key.WithKeys("tab")),
	backtab: key.NewBinding(key.WithKeys("shift+tab")),
	quit:    key.NewBinding(key.WithKeys("q", "ctrl+c")),
	logout:  key.NewBinding(key.WithKeys("l")),
	newItem: key.NewBinding(key.WithKeys("n")),
	sync:    key.NewBinding(key.WithKeys("s")),
	edit:    key.NewBinding(key.WithKeys("e")),
	delete:  key.NewBinding(key.WithKeys("d")),
	move:    key.NewBinding(key.WithKeys("m")),
	share:   key.NewBinding(key.WithKeys("c")),
	verse:   key.NewBinding(key.WithKeys("v")),
	save:    key.NewBinding(key.WithKeys("ctrl+s")),
	yes:     key.NewBinding(key.WithKeys("y")),
	no:      key.NewBinding(key.WithKeys("n")),
}
