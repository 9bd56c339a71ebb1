package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Flip      key.Binding
	Prev      key.Binding
	Next      key.Binding
	Reshuffle key.Binding
	Help      key.Binding
	Quit      key.Binding
}

var defaultKeys = keyMap{
	Flip:      key.NewBinding(key.WithKeys(" ", "space"), key.WithHelp("space", "flip")),
	Prev:      key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "previous")),
	Next:      key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "next")),
	Reshuffle: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "reshuffle")),
	Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more")),
	Quit:      key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Flip, k.Prev, k.Next, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Flip, k.Prev, k.Next},
		{k.Reshuffle, k.Help, k.Quit},
	}
}
