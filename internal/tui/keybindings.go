package tui

import (
	"charm.land/bubbles/v2/key"

	"github.com/colonyops/lobby/internal/tui/components"
)

// KeyMap holds the global bindings handled by the root model. Form
// navigation keys are listed for help only; the login card handles them.
type KeyMap struct {
	Quit    key.Binding
	Dismiss key.Binding
	Help    key.Binding
	Next    key.Binding
	Prev    key.Binding
	Submit  key.Binding
}

// DefaultKeyMap returns the built-in bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		Dismiss: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "dismiss notification"),
		),
		Help: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("f1", "toggle help"),
		),
		Next: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next field"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "previous field"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "login"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Submit, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev, k.Submit},
		{k.Dismiss, k.Help, k.Quit},
	}
}

func (k KeyMap) helpSections() []components.HelpDialogSection {
	return []components.HelpDialogSection{
		components.SectionFromBindings("Form", k.Next, k.Prev, k.Submit),
		components.SectionFromBindings("General", k.Dismiss, k.Help, k.Quit),
	}
}
