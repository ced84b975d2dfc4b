// Package login implements the sign-in card: email and password fields, a
// submit button, and the request that reports its outcome through toasts.
package login

import (
	"context"
	"strings"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"
	"github.com/rs/zerolog"

	"github.com/colonyops/lobby/internal/core/auth"
	"github.com/colonyops/lobby/internal/core/logging"
	"github.com/colonyops/lobby/internal/core/styles"
	"github.com/colonyops/lobby/internal/core/toast"
	"github.com/colonyops/lobby/internal/tui/components/button"
	"github.com/colonyops/lobby/internal/tui/components/form"
)

const (
	title         = "Welcome Back"
	subtitle      = "Please login to continue"
	labelEmail    = "Email Address"
	labelPassword = "Password"
	labelSubmit   = "Login Securely"
	labelLoading  = "Logging in..."

	// contentWidth is the width of the card's fields and button.
	contentWidth = 38
)

// Card elements in reveal order.
const (
	elemHeader = iota
	elemEmail
	elemPassword
	elemButton
	elemCount
)

// Authenticator posts credentials to the login endpoint.
type Authenticator interface {
	Login(ctx context.Context, creds auth.Credentials) (*auth.Response, error)
}

// ResultMsg carries the outcome of a login request back to Update.
type ResultMsg struct {
	Response *auth.Response
	Err      error
}

// Options configures the login card.
type Options struct {
	Animations bool
}

// Model is the Bubble Tea model for the login card.
type Model struct {
	ctx      context.Context
	toasts   toast.Dispatcher
	auth     Authenticator
	logger   zerolog.Logger
	dialog   *form.Dialog
	email    *form.TextField
	password *form.TextField
	spinner  spinner.Model
	reveal   reveal
	loading  bool
}

// New creates the login card. ctx must descend from a mounted toast provider;
// New panics otherwise.
func New(ctx context.Context, authn Authenticator, opts Options) Model {
	required := form.WithValidation(form.FieldValidation{Required: true})
	width := form.WithWidth(contentWidth - 2)

	email := form.NewTextField(labelEmail, "you@example.com", required, width)
	password := form.NewTextField(labelPassword, "••••••••", required, width, form.WithPassword())

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(styles.ColorMuted)

	return Model{
		ctx:      ctx,
		toasts:   toast.MustFromContext(ctx),
		auth:     authn,
		logger:   logging.Component("login"),
		dialog:   form.NewDialog(email, password),
		email:    email,
		password: password,
		spinner:  s,
		reveal:   newReveal(elemCount, opts.Animations),
	}
}

func (m Model) Init() tea.Cmd {
	return m.reveal.start()
}

// Loading reports whether a login request is in flight.
func (m Model) Loading() bool { return m.loading }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case ResultMsg:
		return m.handleResult(msg), nil
	case revealTickMsg:
		return m, m.reveal.advance()
	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.dialog, cmd = m.dialog.Update(msg)

	if m.dialog.TakeSubmitted() {
		var submitCmd tea.Cmd
		m, submitCmd = m.submit()
		cmd = tea.Batch(cmd, submitCmd)
	}
	return m, cmd
}

// Submit triggers a login as if the submit button were activated.
func (m Model) Submit() (Model, tea.Cmd) {
	if !m.dialog.Submit() {
		return m, nil
	}
	m.dialog.TakeSubmitted()
	return m.submit()
}

func (m Model) submit() (Model, tea.Cmd) {
	if m.loading {
		m.logger.Debug().Msg("submit ignored, request in flight")
		return m, nil
	}
	m.loading = true

	creds := auth.Credentials{
		Email:    m.email.Value(),
		Password: m.password.Value(),
	}
	ctx := logging.WithEmail(m.ctx, creds.Email)
	m.logger.Info().Ctx(ctx).Msg("submitting credentials")

	return m, tea.Batch(m.spinner.Tick, loginCmd(ctx, m.auth, creds))
}

func loginCmd(ctx context.Context, a Authenticator, creds auth.Credentials) tea.Cmd {
	return func() tea.Msg {
		resp, err := a.Login(ctx, creds)
		return ResultMsg{Response: resp, Err: err}
	}
}

func (m Model) handleResult(msg ResultMsg) Model {
	m.loading = false

	message, severity := Outcome(msg.Response, msg.Err)

	evt := m.logger.Info()
	if msg.Err != nil {
		evt = m.logger.Warn().Err(msg.Err)
	}
	evt.Str("severity", string(severity)).Msg("login finished")

	m.toasts.ShowToast(message, severity)
	return m
}

func (m Model) View() string {
	var parts []string

	if m.reveal.visible(elemHeader) {
		parts = append(parts,
			styles.TitleStyle.Render(title),
			styles.SubtitleStyle.Render(subtitle),
			"",
		)
	}

	fields := m.dialog.Fields()
	for i, elem := range []int{elemEmail, elemPassword} {
		if m.reveal.visible(elem) {
			parts = append(parts, fields[i].View(), "")
		}
	}

	if m.reveal.visible(elemButton) {
		parts = append(parts, m.submitButton().View())
	}

	content := strings.TrimRight(lipgloss.JoinVertical(lipgloss.Left, parts...), "\n")
	return styles.CardStyle.Render(content)
}

func (m Model) submitButton() button.Button {
	b := button.New(labelSubmit, button.Primary)
	b.Width = contentWidth
	b.Focused = m.dialog.SubmitFocused()
	if m.loading {
		b.Label = m.spinner.View() + " " + labelLoading
		b.Disabled = true
	}
	return b
}
