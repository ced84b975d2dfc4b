package form

import (
	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"
)

// Dialog is a form container that manages focus cycling and submission
// across a set of fields followed by a submit control.
//
// Focus positions run 0..len(fields); the last position is the submit
// control, which the owner renders itself.
type Dialog struct {
	fields    []Field
	focused   int
	submitted bool
}

// NewDialog creates a form dialog with the given fields.
// The first field is focused automatically.
func NewDialog(fields ...Field) *Dialog {
	d := &Dialog{fields: fields}
	if len(fields) > 0 {
		fields[0].Focus()
	}
	return d
}

// Update handles key input for the dialog, managing focus cycling and submit.
func (d *Dialog) Update(msg tea.Msg) (*Dialog, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return d.updateFocusedField(msg)
	}

	switch keyMsg.String() {
	case "tab", "down":
		return d.moveFocus(1)
	case "shift+tab", "up":
		return d.moveFocus(-1)
	case "enter":
		if d.focused < len(d.fields)-1 {
			return d.moveFocus(1)
		}
		d.Submit()
		return d, nil
	}

	return d.updateFocusedField(msg)
}

// Submit validates every field and marks the dialog submitted when all pass.
// Focus moves to the first invalid field otherwise.
func (d *Dialog) Submit() bool {
	firstInvalid := -1
	for i, f := range d.fields {
		if f.Validate() != "" && firstInvalid < 0 {
			firstInvalid = i
		}
	}

	if firstInvalid >= 0 {
		d.setFocus(firstInvalid)
		return false
	}

	d.submitted = true
	return true
}

// TakeSubmitted reports whether the dialog was submitted since the last call
// and clears the flag.
func (d *Dialog) TakeSubmitted() bool {
	s := d.submitted
	d.submitted = false
	return s
}

// View renders all fields vertically with spacing.
func (d *Dialog) View() string {
	parts := make([]string, 0, len(d.fields)*2)
	for i, field := range d.fields {
		if i > 0 {
			parts = append(parts, "")
		}
		parts = append(parts, field.View())
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// Fields returns the dialog's fields in focus order.
func (d *Dialog) Fields() []Field { return d.fields }

// FocusIndex returns the focused position.
func (d *Dialog) FocusIndex() int { return d.focused }

// SubmitFocused reports whether focus rests on the submit control.
func (d *Dialog) SubmitFocused() bool { return d.focused == len(d.fields) }

func (d *Dialog) moveFocus(delta int) (*Dialog, tea.Cmd) {
	slots := len(d.fields) + 1
	next := ((d.focused+delta)%slots + slots) % slots
	return d, d.setFocus(next)
}

func (d *Dialog) setFocus(i int) tea.Cmd {
	if d.focused < len(d.fields) {
		d.fields[d.focused].Blur()
	}
	d.focused = i
	if i < len(d.fields) {
		return d.fields[i].Focus()
	}
	return nil
}

func (d *Dialog) updateFocusedField(msg tea.Msg) (*Dialog, tea.Cmd) {
	if d.focused >= len(d.fields) {
		return d, nil
	}

	var cmd tea.Cmd
	d.fields[d.focused], cmd = d.fields[d.focused].Update(msg)
	return d, cmd
}
