package tui

import (
	lipgloss "charm.land/lipgloss/v2"

	"github.com/colonyops/lobby/internal/core/config"
	"github.com/colonyops/lobby/internal/core/styles"
	"github.com/colonyops/lobby/internal/core/toast"
)

const (
	toastWidth  = 44
	toastMargin = 1
	// closeZone is how many columns at the toast's right edge count as the
	// close target.
	closeZone = 4
)

// toastHit classifies a mouse position relative to the visible toast.
type toastHit int

const (
	hitOutside toastHit = iota
	hitBody
	hitClose
)

type rect struct {
	x, y, w, h int
}

func (r rect) contains(x, y int) bool {
	return x >= r.x && x < r.x+r.w && y >= r.y && y < r.y+r.h
}

// ToastView renders the current toast and composites it as an anchored overlay.
type ToastView struct {
	controller *ToastController
	anchor     config.Anchor
}

func NewToastView(controller *ToastController, anchor config.Anchor) *ToastView {
	return &ToastView{controller: controller, anchor: anchor}
}

// View renders the open toast, or an empty string when closed.
func (v *ToastView) View() string {
	if !v.controller.Visible() {
		return ""
	}
	return renderToast(v.controller.Current())
}

func renderToast(p toast.Packet) string {
	var icon string
	var style lipgloss.Style

	switch p.Severity {
	case toast.SeveritySuccess:
		icon = styles.IconNotifySuccess
		style = styles.ToastSuccessStyle
	case toast.SeverityError:
		icon = styles.IconNotifyError
		style = styles.ToastErrorStyle
	case toast.SeverityWarning:
		icon = styles.IconNotifyWarning
		style = styles.ToastWarningStyle
	default:
		icon = styles.IconNotifyInfo
		style = styles.ToastInfoStyle
	}

	// border and padding take two columns per side, the close glyph two more
	textWidth := toastWidth - 4 - 2

	iconStyle := lipgloss.NewStyle().Foreground(styles.SeverityColor(string(p.Severity))).Bold(true)
	text := lipgloss.NewStyle().Width(textWidth).Render(iconStyle.Render(icon) + " " + p.Message)
	closeBtn := " " + styles.ToastCloseStyle.Render(styles.IconClose)

	return style.Render(lipgloss.JoinHorizontal(lipgloss.Top, text, closeBtn))
}

// bounds returns where the toast is drawn on a width x height screen.
func (v *ToastView) bounds(content string, width, height int) rect {
	w := lipgloss.Width(content)
	h := lipgloss.Height(content)

	x := toastMargin
	if v.anchor.Right() {
		x = width - w - toastMargin
	}
	y := toastMargin
	if !v.anchor.Top() {
		y = height - h - toastMargin
	}

	return rect{x: max(x, 0), y: max(y, 0), w: w, h: h}
}

// HitTest reports what a click at (x, y) lands on.
func (v *ToastView) HitTest(x, y, width, height int) toastHit {
	content := v.View()
	if content == "" {
		return hitOutside
	}

	r := v.bounds(content, width, height)
	if !r.contains(x, y) {
		return hitOutside
	}
	if x >= r.x+r.w-closeZone {
		return hitClose
	}
	return hitBody
}

// Overlay composites the toast over background at the configured anchor.
func (v *ToastView) Overlay(background string, width, height int) string {
	content := v.View()
	if content == "" {
		return background
	}

	r := v.bounds(content, width, height)

	bgLayer := lipgloss.NewLayer(background)
	toastLayer := lipgloss.NewLayer(content)
	toastLayer.X(r.x).Y(r.y).Z(2)

	compositor := lipgloss.NewCompositor(bgLayer, toastLayer)
	return compositor.Render()
}
