// Package tui implements the interactive login screen and its toast overlay.
package tui

import (
	"context"
	_ "embed"

	"charm.land/bubbles/v2/help"
	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"

	"github.com/colonyops/lobby/internal/core/config"
	"github.com/colonyops/lobby/internal/core/logging"
	"github.com/colonyops/lobby/internal/core/toast"
	"github.com/colonyops/lobby/internal/tui/components"
	"github.com/colonyops/lobby/internal/tui/views/login"
)

//go:embed help.md
var helpMarkdown string

const (
	defaultWidth  = 80
	defaultHeight = 24
)

// Options configures the TUI behavior.
type Options struct {
	Config *config.Config
	Auth   login.Authenticator
}

// Model is the main Bubble Tea model for the TUI. It mounts the toast
// provider that every view below it resolves its dispatcher from.
type Model struct {
	provider    *toast.Provider
	toasts      *ToastController
	toastView   *ToastView
	login       login.Model
	keys        KeyMap
	help        help.Model
	showHelp    bool
	width       int
	height      int
	quitting    bool
	unsubscribe func()
}

// New creates the root model. The provider is mounted under ctx for the
// lifetime of the program and unmounted on quit.
func New(ctx context.Context, opts Options) Model {
	cfg := opts.Config

	provider := toast.NewProvider(cfg.Toast.Duration)
	mounted := provider.Mount(ctx)

	logger := logging.Component("toast")
	unsubscribe := provider.Channel().Subscribe(func(p toast.Packet) {
		logger.Debug().
			Bool("open", p.Open).
			Str("severity", string(p.Severity)).
			Uint64("gen", p.Gen).
			Str("message", p.Message).
			Msg("toast changed")
	})

	controller := NewToastController(provider.Channel())

	return Model{
		provider:    provider,
		toasts:      controller,
		toastView:   NewToastView(controller, cfg.Toast.Anchor),
		login:       login.New(mounted, opts.Auth, login.Options{Animations: cfg.TUI.AnimationsEnabled()}),
		keys:        DefaultKeyMap(),
		help:        help.New(),
		width:       defaultWidth,
		height:      defaultHeight,
		unsubscribe: unsubscribe,
	}
}

func (m Model) Init() tea.Cmd {
	return m.login.Init()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		next tea.Model
		cmd  tea.Cmd
	)

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		next, cmd = m.handleWindowSize(msg)
	case tea.KeyPressMsg:
		next, cmd = m.handleKey(msg)
	case tea.MouseClickMsg:
		next, cmd = m.handleMouseClick(msg)
	case toastExpiredMsg:
		next, cmd = m.handleToastExpired(msg)
	default:
		next, cmd = m.updateLogin(msg)
	}

	return next, tea.Batch(cmd, m.toasts.Sync())
}

func (m Model) View() tea.View {
	v := tea.NewView(m.render())
	v.AltScreen = true
	v.MouseMode = tea.MouseModeCellMotion
	return v
}

func (m Model) render() string {
	if m.quitting {
		return ""
	}

	footer := m.help.ShortHelpView(m.keys.ShortHelp())
	body := lipgloss.JoinVertical(lipgloss.Center, m.login.View(), "", footer)
	screen := lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)

	if m.showHelp {
		dialog := components.NewHelpDialog("Help", helpMarkdown, m.keys.helpSections(), min(m.width, 72))
		screen = dialog.Overlay(screen, m.width, m.height)
	}

	return m.toastView.Overlay(screen, m.width, m.height)
}
