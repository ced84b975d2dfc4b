package button

import (
	"testing"

	lipgloss "charm.land/lipgloss/v2"
	"github.com/stretchr/testify/assert"

	"github.com/colonyops/lobby/internal/core/styles"
	"github.com/colonyops/lobby/pkg/tuitest"
)

func TestButton_View(t *testing.T) {
	tests := []struct {
		name string
		btn  Button
		want string
	}{
		{"primary", New("Login Securely", Primary), "Login Securely"},
		{"focused adds markers", Button{Label: "Go", Focused: true}, "› Go ‹"},
		{"disabled drops markers", Button{Label: "Logging in...", Focused: true, Disabled: true}, "Logging in..."},
		{"tertiary", New("Forgot password?", Tertiary), "Forgot password?"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tuitest.StripANSI(tt.btn.View())
			assert.Contains(t, got, tt.want)
		})
	}
}

func TestButton_Width(t *testing.T) {
	b := New("OK", Secondary)
	b.Width = 20
	assert.GreaterOrEqual(t, lipgloss.Width(b.View()), 20)
}

func TestButton_Style(t *testing.T) {
	assert.Equal(t, styles.ButtonDisabledStyle, Button{Variant: Tertiary, Disabled: true}.Style())
	assert.Equal(t, styles.ButtonSecondaryFocusedStyle, Button{Variant: Secondary, Focused: true}.Style())
	assert.Equal(t, styles.ButtonPrimaryStyle, Button{}.Style())
}

func TestVariant_String(t *testing.T) {
	assert.Equal(t, "primary", Primary.String())
	assert.Equal(t, "secondary", Secondary.String())
	assert.Equal(t, "tertiary", Tertiary.String())
}
