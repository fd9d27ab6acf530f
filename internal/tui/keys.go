package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the demo key bindings.
type keyMap struct {
	Open     key.Binding
	Push     key.Binding
	Replace  key.Binding
	Swap     key.Binding
	Navigate key.Binding
	Pop      key.Binding
	Close    key.Binding
	Escape   key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Open:     key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "open")),
		Push:     key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "push")),
		Replace:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "replace")),
		Swap:     key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "swap")),
		Navigate: key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "navigate")),
		Pop:      key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "pop")),
		Close:    key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "close")),
		Escape:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close/quit")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// helpBindings returns the bindings shown in the footer legend, in order.
func (k keyMap) helpBindings() []key.Binding {
	return []key.Binding{k.Open, k.Push, k.Replace, k.Swap, k.Navigate, k.Pop, k.Close, k.Quit}
}
