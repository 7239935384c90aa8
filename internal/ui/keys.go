package ui

import "github.com/charmbracelet/bubbles/key"

type KeyMap struct {
	Next        key.Binding
	Prev        key.Binding
	CountryNext key.Binding
	CountryPrev key.Binding
	Submit      key.Binding
	Reload      key.Binding
	ToggleTheme key.Binding
	Dismiss     key.Binding
	Scroll      key.Binding
	Shortcuts   key.Binding
	Quit        key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Next:        key.NewBinding(key.WithKeys("tab", "down"), key.WithHelp("tab", "next field")),
		Prev:        key.NewBinding(key.WithKeys("shift+tab", "up"), key.WithHelp("shift+tab", "prev field")),
		CountryNext: key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "next code")),
		CountryPrev: key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "prev code")),
		Submit:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "submit")),
		Reload:      key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "reload")),
		ToggleTheme: key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "theme")),
		Dismiss:     key.NewBinding(key.WithKeys("esc", "ctrl+x"), key.WithHelp("esc", "close alert")),
		Scroll:      key.NewBinding(key.WithKeys("pgup", "pgdown"), key.WithHelp("pgup/pgdn", "scroll")),
		Shortcuts:   key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "help")),
		Quit:        key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Next, k.Reload, k.ToggleTheme, k.Shortcuts, k.Quit}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev, k.CountryNext, k.CountryPrev},
		{k.Submit, k.Reload, k.Scroll},
		{k.ToggleTheme, k.Dismiss, k.Shortcuts, k.Quit},
	}
}
