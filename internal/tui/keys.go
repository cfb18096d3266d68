package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	NextTab  key.Binding
	PrevTab  key.Binding
	JumpTab  key.Binding
	Currency key.Binding
	Search   key.Binding
	Blur     key.Binding
	NextPage key.Binding
	PrevPage key.Binding
	ShowAll  key.Binding
	Quit     key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		NextTab:  key.NewBinding(key.WithKeys("right", "tab"), key.WithHelp("→/tab", "next tab")),
		PrevTab:  key.NewBinding(key.WithKeys("left", "shift+tab"), key.WithHelp("←", "prev tab")),
		JumpTab:  key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6", "7"), key.WithHelp("1-7", "jump")),
		Currency: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "currency")),
		Search:   key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Blur:     key.NewBinding(key.WithKeys("enter", "esc")),
		NextPage: key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "next")),
		PrevPage: key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "previous")),
		ShowAll:  key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "show all")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) help() []key.Binding {
	return []key.Binding{k.NextTab, k.JumpTab, k.Currency, k.Search, k.PrevPage, k.NextPage, k.ShowAll, k.Quit}
}
