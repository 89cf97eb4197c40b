package form

import "github.com/charmbracelet/bubbles/key"

// keyMap defines key bindings for the form
type keyMap struct {
	Submit key.Binding
	Clear  key.Binding
	Quit   key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Clear, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Submit, k.Clear, k.Quit},
	}
}

func newKeyMap() keyMap {
	return keyMap{
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "consultar"),
		),
		Clear: key.NewBinding(
			key.WithKeys("esc", "ctrl+l"),
			key.WithHelp("esc", "limpar"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "sair"),
		),
	}
}

// setPending disables submission while a lookup is in flight so the help
// footer reflects it
func (k *keyMap) setPending(pending bool) {
	k.Submit.SetEnabled(!pending)
}
