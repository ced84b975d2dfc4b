package styles

import (
	"image/color"

	"github.com/charmbracelet/huh"
	lipglossv1 "github.com/charmbracelet/lipgloss"
)

// v1Color converts a palette color for the lipgloss v1 styles huh uses.
func v1Color(c color.Color) lipglossv1.Color {
	if hex := colorHexPtr(c); hex != nil {
		return lipglossv1.Color(*hex)
	}
	return lipglossv1.Color("")
}

// FormTheme returns a huh theme matching the active palette.
func FormTheme() *huh.Theme {
	t := huh.ThemeBase()

	primary := v1Color(ColorPrimary)
	muted := v1Color(ColorMuted)
	fg := v1Color(ColorForeground)
	errColor := v1Color(ColorError)

	t.Focused.Base = t.Focused.Base.BorderForeground(primary)
	t.Focused.Title = t.Focused.Title.Foreground(primary).Bold(true)
	t.Focused.Description = t.Focused.Description.Foreground(muted)
	t.Focused.TextInput.Cursor = t.Focused.TextInput.Cursor.Foreground(primary)
	t.Focused.TextInput.Prompt = t.Focused.TextInput.Prompt.Foreground(primary)
	t.Focused.TextInput.Text = t.Focused.TextInput.Text.Foreground(fg)
	t.Focused.TextInput.Placeholder = t.Focused.TextInput.Placeholder.Foreground(muted)
	t.Focused.ErrorIndicator = t.Focused.ErrorIndicator.Foreground(errColor)
	t.Focused.ErrorMessage = t.Focused.ErrorMessage.Foreground(errColor)

	t.Blurred = t.Focused
	t.Blurred.Base = t.Blurred.Base.BorderForeground(muted)
	t.Blurred.Title = t.Blurred.Title.Foreground(muted).Bold(false)

	return t
}
