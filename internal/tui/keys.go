package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up      key.Binding
	down    key.Binding
	prev    key.Binding
	next    key.Binding
	enter   key.Binding
	esc     key.Binding
	tab     key.Binding
	backtab key.Binding
	logout  key.Binding
	theme   key.Binding
	version key.Binding
	home    key.Binding
	search  key.Binding
	newItem key.Binding
	edit    key.Binding
	delete  key.Binding
	copy    key.Binding
	save    key.Binding
	toggle  key.Binding
	upload  key.Binding
	yes     key.Binding
	no      key.Binding
}

var keys = keyMap{
	up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	prev:    key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev page")),
	next:    key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next page")),
	enter:   key.NewBinding(key.WithKeys("enter")),
	esc:     key.NewBinding(key.WithKeys("esc")),
	tab:     key.NewBinding(key.WithKeys("tab")),
	backtab: key.NewBinding(key.WithKeys("shift+tab")),
	logout:  key.NewBinding(key.WithKeys("L"), key.WithHelp("L", "logout")),
	theme:   key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
	version: key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "version")),
	home:    key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "dashboard")),
	search:  key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
	newItem: key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new")),
	edit:    key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
	delete:  key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
	copy:    key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "copy")),
	save:    key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
	toggle:  key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle")),
	upload:  key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "upload")),
	yes:     key.NewBinding(key.WithKeys("y")),
	no:      key.NewBinding(key.WithKeys("n", "esc")),
}
