package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds the form's key bindings. It satisfies help.KeyMap.
type keyMap struct {
	Submit key.Binding
	Accept key.Binding
	Up     key.Binding
	Down   key.Binding
	Copy   key.Binding
	Raw    key.Binding
	Quit   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "get info"),
		),
		Accept: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "complete"),
		),
		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑/↓", "select"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
		),
		Copy: key.NewBinding(
			key.WithKeys("ctrl+y"),
			key.WithHelp("ctrl+y", "copy"),
		),
		Raw: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "raw"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Accept, k.Up, k.Copy, k.Raw, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Submit, k.Accept},
		{k.Up, k.Down, k.Copy, k.Raw},
		{k.Quit},
	}
}
