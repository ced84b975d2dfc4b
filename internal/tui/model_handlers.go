package tui

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/colonyops/lobby/internal/core/toast"
)

func (m Model) handleWindowSize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	return m, nil
}

func (m Model) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		return m, nil
	case key.Matches(msg, m.keys.Dismiss):
		if m.showHelp {
			m.showHelp = false
			return m, nil
		}
		m.toasts.Dismiss(toast.ReasonEscapeKey)
		return m, nil
	}

	if m.showHelp {
		return m, nil
	}
	return m.updateLogin(msg)
}

func (m Model) handleMouseClick(msg tea.MouseClickMsg) (tea.Model, tea.Cmd) {
	mouse := msg.Mouse()
	if mouse.Button != tea.MouseLeft {
		return m, nil
	}

	switch m.toastView.HitTest(mouse.X, mouse.Y, m.width, m.height) {
	case hitClose:
		m.toasts.Dismiss(toast.ReasonCloseButton)
	case hitOutside:
		m.toasts.Dismiss(toast.ReasonClickAway)
	}
	return m, nil
}

func (m Model) handleToastExpired(msg toastExpiredMsg) (tea.Model, tea.Cmd) {
	m.toasts.Expire(msg)
	return m, nil
}

func (m Model) updateLogin(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.login, cmd = m.login.Update(msg)
	return m, cmd
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	if m.unsubscribe != nil {
		m.unsubscribe()
	}
	m.provider.Unmount()
	return m, tea.Quit
}
