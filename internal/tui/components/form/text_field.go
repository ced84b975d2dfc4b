package form

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"

	"github.com/colonyops/lobby/internal/core/styles"
)

const defaultFieldWidth = 40

// TextFieldOption configures a TextField.
type TextFieldOption func(*TextField)

// WithPassword masks the typed value.
func WithPassword() TextFieldOption {
	return func(f *TextField) {
		f.input.EchoMode = textinput.EchoPassword
		f.input.EchoCharacter = '•'
	}
}

// WithValidation attaches validation rules checked by Validate.
func WithValidation(v FieldValidation) TextFieldOption {
	return func(f *TextField) { f.validation = v }
}

// WithWidth sets the input width in cells.
func WithWidth(w int) TextFieldOption {
	return func(f *TextField) { f.input.SetWidth(w) }
}

// TextField is a single-line text input form field.
type TextField struct {
	input      textinput.Model
	label      string
	focused    bool
	validation FieldValidation
	err        string
}

// NewTextField creates a new single-line text input field.
func NewTextField(label, placeholder string, opts ...TextFieldOption) *TextField {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = ""
	ti.SetWidth(defaultFieldWidth)

	inputStyles := textinput.DefaultStyles(!styles.CurrentPalette.IsLight())
	inputStyles.Cursor.Color = styles.ColorPrimary
	inputStyles.Focused.Placeholder = lipgloss.NewStyle().Foreground(styles.ColorMuted)
	inputStyles.Blurred.Placeholder = lipgloss.NewStyle().Foreground(styles.ColorMuted)
	ti.SetStyles(inputStyles)

	f := &TextField{
		input: ti,
		label: label,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func (f *TextField) Update(msg tea.Msg) (Field, tea.Cmd) {
	if !f.focused {
		return f, nil
	}

	before := f.input.Value()

	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)

	if f.err != "" && f.input.Value() != before {
		f.err = ""
	}
	return f, cmd
}

func (f *TextField) View() string {
	titleStyle := styles.TextMutedStyle
	if f.focused {
		titleStyle = styles.FormTitleStyle
	}
	title := titleStyle.Render(f.label)

	parts := []string{title, f.input.View()}
	if f.err != "" {
		parts = append(parts, styles.FormErrorStyle.Render(f.err))
	}
	content := lipgloss.JoinVertical(lipgloss.Left, parts...)

	borderStyle := styles.FormFieldStyle
	if f.focused {
		borderStyle = styles.FormFieldFocusedStyle
	}

	return borderStyle.Render(content)
}

func (f *TextField) Focus() tea.Cmd {
	f.focused = true
	return f.input.Focus()
}

func (f *TextField) Blur() {
	f.focused = false
	f.input.Blur()
}

func (f *TextField) Validate() string {
	f.err = f.validation.ValidateText(f.input.Value())
	return f.err
}

// SetValue replaces the current value and clears any validation message.
func (f *TextField) SetValue(v string) {
	f.input.SetValue(v)
	f.err = ""
}

func (f *TextField) Focused() bool  { return f.focused }
func (f *TextField) Value() string  { return f.input.Value() }
func (f *TextField) Label() string  { return f.label }
func (f *TextField) Error() string  { return f.err }
func (f *TextField) Password() bool { return f.input.EchoMode == textinput.EchoPassword }
