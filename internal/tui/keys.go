package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Continue  key.Binding
	Compose   key.Binding
	Expand    key.Binding
	Show      key.Binding
	FocusForm key.Binding
	Submit    key.Binding
	NextField key.Binding
	PrevField key.Binding
	Back      key.Binding
	Docs      key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Continue: key.NewBinding(
			key.WithKeys("enter", "c", " "),
			key.WithHelp("enter", "continue"),
		),
		Compose: key.NewBinding(
			key.WithKeys("+", "a"),
			key.WithHelp("+", "new entry"),
		),
		Expand: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "expand"),
		),
		Show: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "show"),
		),
		FocusForm: key.NewBinding(
			key.WithKeys("+", "a", "tab"),
			key.WithHelp("tab", "form"),
		),
		Submit: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "submit"),
		),
		NextField: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next"),
		),
		PrevField: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back to list"),
		),
		Docs: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}
