// Package form provides focusable input fields and a container that cycles
// focus between them.
package form

import tea "charm.land/bubbletea/v2"

// Field is the interface implemented by all form field types.
type Field interface {
	Update(msg tea.Msg) (Field, tea.Cmd)
	View() string
	Focus() tea.Cmd
	Blur()
	Focused() bool
	Value() string
	Label() string

	// Validate checks the current value, records the message for display,
	// and returns it. An empty string means the value is acceptable.
	Validate() string
}
