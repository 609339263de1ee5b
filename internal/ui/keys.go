package ui

import (
	"charm.land/bubbles/v2/key"
	"github.com/idursun/ganache/internal/config"
	"github.com/idursun/ganache/internal/ui/widgets"
)

// KeyMap holds the bindings handled by the host itself. Widget bindings live
// in widgets.Keys.
type KeyMap struct {
	Next       key.Binding
	Previous   key.Binding
	Jump       key.Binding
	ToggleHelp key.Binding
	Cancel     key.Binding
	Quit       key.Binding
	// Accept ends jump mode on the best match.
	Accept key.Binding

	widgets widgets.Keys
}

func NewKeyMap(c *config.Config, resources widgets.Resources) KeyMap {
	return KeyMap{
		Next:       widgets.NewBinding(c.Keys.Next, "next"),
		Previous:   widgets.NewBinding(c.Keys.Previous, "previous"),
		Jump:       widgets.NewBinding(c.Keys.Jump, "jump"),
		ToggleHelp: widgets.NewBinding(c.Keys.ToggleHelp, "help"),
		Cancel:     widgets.NewBinding(c.Keys.Cancel, "cancel"),
		Quit:       widgets.NewBinding(c.Keys.Quit, "quit"),
		Accept:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "accept")),
		widgets:    resources.Keys,
	}
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.widgets.Activate, k.Jump, k.ToggleHelp, k.Quit}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Previous, k.Jump, k.Cancel},
		{k.widgets.Activate, k.widgets.Expand, k.widgets.Shrink},
		{k.ToggleHelp, k.Quit},
	}
}
