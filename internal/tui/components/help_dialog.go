// Package components provides reusable TUI components.
package components

import (
	"strings"

	"charm.land/bubbles/v2/key"
	lipgloss "charm.land/lipgloss/v2"
	"github.com/charmbracelet/glamour"
	"github.com/rs/zerolog/log"

	"github.com/colonyops/lobby/internal/core/styles"
)

// HelpEntry represents a single keyboard shortcut entry.
type HelpEntry struct {
	Key  string
	Desc string
}

// HelpDialogSection groups related help entries under a title.
type HelpDialogSection struct {
	Title   string
	Entries []HelpEntry
}

// SectionFromBindings builds a section from key bindings, skipping disabled ones.
func SectionFromBindings(title string, bindings ...key.Binding) HelpDialogSection {
	section := HelpDialogSection{Title: title}
	for _, b := range bindings {
		if !b.Enabled() {
			continue
		}
		h := b.Help()
		section.Entries = append(section.Entries, HelpEntry{Key: h.Key, Desc: h.Desc})
	}
	return section
}

// HelpDialog displays a markdown introduction followed by keyboard shortcuts.
type HelpDialog struct {
	title    string
	markdown string
	sections []HelpDialogSection
	width    int
}

// NewHelpDialog creates a new help dialog. The markdown body is rendered with
// glamour using the active theme and wrapped to width.
func NewHelpDialog(title, markdown string, sections []HelpDialogSection, width int) *HelpDialog {
	return &HelpDialog{
		title:    title,
		markdown: markdown,
		sections: sections,
		width:    width,
	}
}

// View renders the help dialog.
func (h *HelpDialog) View() string {
	title := styles.ModalTitleStyle.Render(h.title)

	parts := []string{title}
	if body := h.renderMarkdown(); body != "" {
		parts = append(parts, body)
	}

	var lines []string
	separator := styles.TextMutedStyle.Render(strings.Repeat("─", 25))

	for i, section := range h.sections {
		if section.Title != "" {
			if i > 0 {
				lines = append(lines, "")
			}
			lines = append(lines, styles.FormTitleStyle.Render(section.Title))
			lines = append(lines, separator)
		}

		for _, entry := range section.Entries {
			lines = append(lines, formatKeyDesc(entry.Key, entry.Desc))
		}
	}
	if len(lines) > 0 {
		parts = append(parts, strings.Join(lines, "\n"))
	}

	parts = append(parts, styles.ModalHelpStyle.Render("esc/f1 close"))

	return styles.ModalStyle.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

func (h *HelpDialog) renderMarkdown() string {
	if h.markdown == "" {
		return ""
	}

	wrap := max(h.width-8, 20)
	r, err := glamour.NewTermRenderer(
		glamour.WithStyles(styles.GlamourStyle()),
		glamour.WithWordWrap(wrap),
	)
	if err != nil {
		log.Warn().Err(err).Msg("help: glamour renderer unavailable")
		return h.markdown
	}

	out, err := r.Render(h.markdown)
	if err != nil {
		log.Warn().Err(err).Msg("help: render markdown")
		return h.markdown
	}
	return strings.Trim(out, "\n")
}

// Overlay renders the help dialog as a layer over the given background.
func (h *HelpDialog) Overlay(background string, width, height int) string {
	modal := h.View()

	bgLayer := lipgloss.NewLayer(background)
	modalLayer := lipgloss.NewLayer(modal)

	modalW := lipgloss.Width(modal)
	modalH := lipgloss.Height(modal)
	centerX := max((width-modalW)/2, 0)
	centerY := max((height-modalH)/2, 0)
	modalLayer.X(centerX).Y(centerY).Z(3)

	compositor := lipgloss.NewCompositor(bgLayer, modalLayer)
	return compositor.Render()
}

// formatKeyDesc formats a key-description pair with consistent alignment.
func formatKeyDesc(k, desc string) string {
	const keyWidth = 12

	padded := k + strings.Repeat(" ", max(keyWidth-lipgloss.Width(k), 1))
	return styles.TextPrimaryStyle.Bold(true).Render(padded) + styles.TextForegroundStyle.Render(desc)
}
