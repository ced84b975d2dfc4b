// Package button renders clickable-looking action buttons in three variants.
package button

import (
	lipgloss "charm.land/lipgloss/v2"

	"github.com/colonyops/lobby/internal/core/styles"
)

// Variant selects the visual weight of a button.
type Variant int

const (
	Primary Variant = iota
	Secondary
	Tertiary
)

func (v Variant) String() string {
	switch v {
	case Secondary:
		return "secondary"
	case Tertiary:
		return "tertiary"
	default:
		return "primary"
	}
}

// Button is a stateless view element; the owner tracks focus and disabled state.
type Button struct {
	Label    string
	Variant  Variant
	Disabled bool
	Focused  bool
	Width    int // zero sizes the button to its label
}

// New returns a button with the given label and variant.
func New(label string, variant Variant) Button {
	return Button{Label: label, Variant: variant}
}

// Style returns the style the button renders with in its current state.
func (b Button) Style() lipgloss.Style {
	if b.Disabled {
		return styles.ButtonDisabledStyle
	}

	switch b.Variant {
	case Secondary:
		if b.Focused {
			return styles.ButtonSecondaryFocusedStyle
		}
		return styles.ButtonSecondaryStyle
	case Tertiary:
		if b.Focused {
			return styles.ButtonTertiaryFocusedStyle
		}
		return styles.ButtonTertiaryStyle
	default:
		if b.Focused {
			return styles.ButtonPrimaryFocusedStyle
		}
		return styles.ButtonPrimaryStyle
	}
}

func (b Button) View() string {
	style := b.Style()
	if b.Width > 0 {
		style = style.Width(b.Width)
	}

	label := b.Label
	if b.Focused && !b.Disabled {
		label = "› " + label + " ‹"
	}
	return style.Render(label)
}
