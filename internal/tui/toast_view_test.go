package tui

import (
	"strings"
	"testing"
	"time"

	lipgloss "charm.land/lipgloss/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/lobby/internal/core/config"
	"github.com/colonyops/lobby/internal/core/styles"
	"github.com/colonyops/lobby/internal/core/toast"
	"github.com/colonyops/lobby/pkg/tuitest"
)

func newToastView(anchor config.Anchor) (*toast.Channel, *ToastView) {
	ch := toast.NewChannel(time.Second)
	return ch, NewToastView(NewToastController(ch), anchor)
}

func grid(width, height int) string {
	row := strings.Repeat(".", width)
	rows := make([]string, height)
	for i := range rows {
		rows[i] = row
	}
	return strings.Join(rows, "\n")
}

func TestToastView_View_empty_when_closed(t *testing.T) {
	ch, v := newToastView(config.AnchorTopRight)
	assert.Empty(t, v.View())

	ch.Show("bye", toast.SeverityInfo)
	ch.Dismiss(toast.ReasonEscapeKey)
	assert.Empty(t, v.View())
}

func TestToastView_View_renders_each_severity(t *testing.T) {
	tests := []struct {
		severity toast.Severity
		icon     string
	}{
		{toast.SeveritySuccess, styles.IconNotifySuccess},
		{toast.SeverityError, styles.IconNotifyError},
		{toast.SeverityInfo, styles.IconNotifyInfo},
		{toast.SeverityWarning, styles.IconNotifyWarning},
	}

	for _, tt := range tests {
		t.Run(string(tt.severity), func(t *testing.T) {
			ch, v := newToastView(config.AnchorTopRight)
			ch.Show("test msg", tt.severity)

			out := tuitest.StripANSI(v.View())
			require.NotEmpty(t, out)
			assert.Contains(t, out, tt.icon)
			assert.Contains(t, out, "test msg")
			assert.Contains(t, out, styles.IconClose)
		})
	}
}

func TestToastView_Overlay_empty_returns_background(t *testing.T) {
	_, v := newToastView(config.AnchorTopRight)
	bg := "background content"
	assert.Equal(t, bg, v.Overlay(bg, 80, 24))
}

func TestToastView_Overlay_anchors(t *testing.T) {
	const width, height = 100, 30

	tests := []struct {
		anchor   config.Anchor
		wantTop  bool
		wantLeft bool
	}{
		{config.AnchorTopRight, true, false},
		{config.AnchorTopLeft, true, true},
		{config.AnchorBottomRight, false, false},
		{config.AnchorBottomLeft, false, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.anchor), func(t *testing.T) {
			ch, v := newToastView(tt.anchor)
			ch.Show("positioned", toast.SeverityInfo)

			out := tuitest.StripANSI(v.Overlay(grid(width, height), width, height))
			lines := strings.Split(out, "\n")
			require.Len(t, lines, height)

			row := -1
			for i, line := range lines {
				if strings.Contains(line, "positioned") {
					row = i
					break
				}
			}
			require.NotEqual(t, -1, row)

			if tt.wantTop {
				assert.Less(t, row, height/2)
			} else {
				assert.Greater(t, row, height/2)
			}

			col := strings.Index(lines[row], "positioned")
			if tt.wantLeft {
				assert.Less(t, col, width/2)
			} else {
				assert.Greater(t, col, width/2)
			}
		})
	}
}

func TestToastView_HitTest(t *testing.T) {
	const width, height = 100, 30

	ch, v := newToastView(config.AnchorTopRight)
	assert.Equal(t, hitOutside, v.HitTest(90, 2, width, height), "nothing to hit while closed")

	ch.Show("click me", toast.SeverityInfo)
	content := v.View()
	w := lipgloss.Width(content)
	r := v.bounds(content, width, height)

	assert.Equal(t, width-w-toastMargin, r.x)
	assert.Equal(t, toastMargin, r.y)

	assert.Equal(t, hitClose, v.HitTest(r.x+r.w-2, r.y+1, width, height))
	assert.Equal(t, hitBody, v.HitTest(r.x+2, r.y+1, width, height))
	assert.Equal(t, hitOutside, v.HitTest(0, 0, width, height))
	assert.Equal(t, hitOutside, v.HitTest(r.x, r.y+r.h, width, height))
}
