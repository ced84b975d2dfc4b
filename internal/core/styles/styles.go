// Package styles provides shared lipgloss v2 styles for CLI and TUI components.
package styles

import (
	"image/color"

	lipgloss "charm.land/lipgloss/v2"
)

// CurrentPalette holds the active theme palette.
var CurrentPalette Palette

// Exported color aliases for convenience.
var (
	ColorPrimary    color.Color
	ColorSecondary  color.Color
	ColorForeground color.Color
	ColorMuted      color.Color
	ColorBackground color.Color
	ColorSurface    color.Color
	ColorSuccess    color.Color
	ColorInfo       color.Color
	ColorWarning    color.Color
	ColorError      color.Color
)

// Style exports.
var (
	TextForegroundStyle lipgloss.Style
	TextMutedStyle      lipgloss.Style
	TextPrimaryStyle    lipgloss.Style
	TextErrorStyle      lipgloss.Style

	// Login card.
	CardStyle     lipgloss.Style
	TitleStyle    lipgloss.Style
	SubtitleStyle lipgloss.Style

	FormTitleStyle        lipgloss.Style
	FormTitleBlurredStyle lipgloss.Style
	FormFieldStyle        lipgloss.Style
	FormFieldFocusedStyle lipgloss.Style
	FormErrorStyle        lipgloss.Style
	FormHelpStyle         lipgloss.Style

	// Buttons, one set per variant.
	ButtonPrimaryStyle          lipgloss.Style
	ButtonPrimaryFocusedStyle   lipgloss.Style
	ButtonSecondaryStyle        lipgloss.Style
	ButtonSecondaryFocusedStyle lipgloss.Style
	ButtonTertiaryStyle         lipgloss.Style
	ButtonTertiaryFocusedStyle  lipgloss.Style
	ButtonDisabledStyle         lipgloss.Style

	ToastSuccessStyle lipgloss.Style
	ToastErrorStyle   lipgloss.Style
	ToastInfoStyle    lipgloss.Style
	ToastWarningStyle lipgloss.Style
	ToastCloseStyle   lipgloss.Style

	ModalStyle      lipgloss.Style
	ModalTitleStyle lipgloss.Style
	ModalHelpStyle  lipgloss.Style
)

// SetTheme sets the active palette and rebuilds all global styles.
func SetTheme(p Palette) {
	CurrentPalette = p

	ColorPrimary = p.Primary
	ColorSecondary = p.Secondary
	ColorForeground = p.Foreground
	ColorMuted = p.Muted
	ColorBackground = p.Background
	ColorSurface = p.Surface
	ColorSuccess = p.Success
	ColorInfo = p.Info
	ColorWarning = p.Warning
	ColorError = p.Error

	TextForegroundStyle = lipgloss.NewStyle().Foreground(ColorForeground)
	TextMutedStyle = lipgloss.NewStyle().Foreground(ColorMuted)
	TextPrimaryStyle = lipgloss.NewStyle().Foreground(ColorPrimary)
	TextErrorStyle = lipgloss.NewStyle().Foreground(ColorError)

	CardStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(blend(ColorSurface, ColorPrimary, 0.35)).
		Padding(1, 3)
	TitleStyle = lipgloss.NewStyle().
		Foreground(ColorForeground).
		Bold(true)
	SubtitleStyle = lipgloss.NewStyle().
		Foreground(ColorMuted)

	FormTitleStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true)
	FormTitleBlurredStyle = lipgloss.NewStyle().
		Foreground(ColorMuted)
	FormFieldStyle = lipgloss.NewStyle().
		Border(lipgloss.ThickBorder(), false, false, false, true).
		BorderForeground(ColorMuted).
		PaddingLeft(1)
	FormFieldFocusedStyle = lipgloss.NewStyle().
		Border(lipgloss.ThickBorder(), false, false, false, true).
		BorderForeground(ColorPrimary).
		PaddingLeft(1)
	FormErrorStyle = lipgloss.NewStyle().
		Foreground(ColorError)
	FormHelpStyle = lipgloss.NewStyle().
		Foreground(ColorMuted)

	button := lipgloss.NewStyle().Align(lipgloss.Center)
	ButtonPrimaryStyle = button.
		Padding(0, 3).
		Background(ColorPrimary).
		Foreground(ColorBackground).
		Bold(true)
	ButtonPrimaryFocusedStyle = ButtonPrimaryStyle.
		Background(blend(ColorPrimary, ColorForeground, 0.25))
	ButtonSecondaryStyle = button.
		Padding(0, 2).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorPrimary).
		Foreground(ColorPrimary)
	ButtonSecondaryFocusedStyle = ButtonSecondaryStyle.
		Background(ColorSurface)
	ButtonTertiaryStyle = button.
		Padding(0, 1).
		Foreground(ColorPrimary)
	ButtonTertiaryFocusedStyle = ButtonTertiaryStyle.
		Underline(true)
	ButtonDisabledStyle = button.
		Padding(0, 3).
		Background(blend(ColorSurface, ColorBackground, 0.5)).
		Foreground(ColorMuted)

	toast := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Foreground(ColorForeground).
		Background(blend(ColorBackground, ColorSurface, 0.5)).
		Padding(0, 1)
	ToastSuccessStyle = toast.BorderForeground(ColorSuccess)
	ToastErrorStyle = toast.BorderForeground(ColorError)
	ToastInfoStyle = toast.BorderForeground(ColorInfo)
	ToastWarningStyle = toast.BorderForeground(ColorWarning)
	ToastCloseStyle = lipgloss.NewStyle().Foreground(ColorMuted)

	ModalStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorPrimary).
		Padding(1, 2)
	ModalTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorForeground)
	ModalHelpStyle = lipgloss.NewStyle().
		Foreground(ColorMuted).
		MarginTop(1)
}

// SeverityColor returns the accent color for a severity name.
func SeverityColor(severity string) color.Color {
	switch severity {
	case "success":
		return ColorSuccess
	case "error":
		return ColorError
	case "warning":
		return ColorWarning
	default:
		return ColorInfo
	}
}

// nolint:gochecknoinits // bootstrap default theme before any style is accessed.
func init() {
	SetTheme(themes[DefaultTheme])
}
