package toast

import (
	"fmt"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewChannel_starts_closed(t *testing.T) {
	c := NewChannel(0)

	p := c.Current()
	assert.False(t, p.Open)
	assert.Empty(t, p.Message)
	assert.Equal(t, SeverityInfo, p.Severity)
	assert.Equal(t, DefaultDuration, c.Duration())
}

func TestChannel_Show_last_call_wins(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	sevs := Severities()

	for i := range 50 {
		t.Run(fmt.Sprintf("sequence_%d", i), func(t *testing.T) {
			c := NewChannel(time.Second)

			var lastMsg string
			var lastSev Severity
			for j := range r.IntN(10) + 1 {
				lastMsg = fmt.Sprintf("msg-%d-%d", i, j)
				lastSev = sevs[r.IntN(len(sevs))]
				if r.IntN(3) == 0 {
					c.Dismiss(ReasonCloseButton)
				}
				c.Show(lastMsg, lastSev)
			}

			p := c.Current()
			assert.True(t, p.Open)
			assert.Equal(t, lastMsg, p.Message)
			assert.Equal(t, lastSev, p.Severity)
		})
	}
}

func TestChannel_Show_overwrites_open_toast(t *testing.T) {
	c := NewChannel(0)

	c.Show("Saved", SeveritySuccess)
	c.Show("Oops", SeverityError)

	assert.Equal(t, Packet{Message: "Oops", Severity: SeverityError, Open: true, Gen: 2}, c.Current())
}

func TestChannel_Show_empty_severity_is_info(t *testing.T) {
	c := NewChannel(0)
	c.Show("hello", "")
	assert.Equal(t, SeverityInfo, c.Current().Severity)
}

func TestChannel_Dismiss_keeps_content(t *testing.T) {
	reasons := []DismissReason{ReasonTimeout, ReasonEscapeKey, ReasonCloseButton, ""}

	for _, reason := range reasons {
		t.Run(string(reason), func(t *testing.T) {
			c := NewChannel(0)
			c.Show("still here", SeverityWarning)

			changed := c.Dismiss(reason)

			assert.True(t, changed)
			p := c.Current()
			assert.False(t, p.Open)
			assert.Equal(t, "still here", p.Message)
			assert.Equal(t, SeverityWarning, p.Severity)
		})
	}
}

func TestChannel_Dismiss_clickaway_is_ignored(t *testing.T) {
	c := NewChannel(0)
	c.Show("read me", SeverityInfo)

	changed := c.Dismiss(ReasonClickAway)

	assert.False(t, changed)
	assert.True(t, c.Current().Open)

	c.Dismiss(ReasonCloseButton)
	c.Dismiss(ReasonClickAway)
	assert.False(t, c.Current().Open, "clickaway must not reopen either")
}

func TestChannel_Expire_closes_current_generation(t *testing.T) {
	c := NewChannel(0)
	p := c.Show("bye", SeverityInfo)

	assert.True(t, c.Expire(p.Gen))
	assert.False(t, c.Current().Open)
	assert.Equal(t, "bye", c.Current().Message)
}

func TestChannel_Expire_ignores_superseded_generation(t *testing.T) {
	c := NewChannel(0)
	first := c.Show("first", SeverityInfo)
	second := c.Show("second", SeverityError)

	assert.False(t, c.Expire(first.Gen), "stale timer must not close the newer toast")
	assert.True(t, c.Current().Open)

	assert.True(t, c.Expire(second.Gen))
	assert.False(t, c.Current().Open)
}

func TestChannel_Reset_keeps_generation(t *testing.T) {
	c := NewChannel(0)
	p := c.Show("x", SeverityError)

	c.Reset()

	assert.False(t, c.Current().Open)
	assert.Empty(t, c.Current().Message)
	assert.Equal(t, p.Gen, c.Current().Gen)

	next := c.Show("y", SeverityInfo)
	assert.Greater(t, next.Gen, p.Gen)
}

func TestChannel_Subscribe_receives_changes(t *testing.T) {
	c := NewChannel(0)

	var got []Packet
	unsubscribe := c.Subscribe(func(p Packet) {
		got = append(got, p)
	})

	c.Show("one", SeveritySuccess)
	c.Dismiss(ReasonClickAway)
	c.Dismiss(ReasonEscapeKey)

	require.Len(t, got, 2)
	assert.True(t, got[0].Open)
	assert.Equal(t, "one", got[0].Message)
	assert.False(t, got[1].Open)

	unsubscribe()
	c.Show("two", SeverityInfo)
	assert.Len(t, got, 2)
}

func TestChannel_Subscribe_preserves_order(t *testing.T) {
	c := NewChannel(0)

	var order []string
	c.Subscribe(func(Packet) { order = append(order, "a") })
	unsubB := c.Subscribe(func(Packet) { order = append(order, "b") })
	c.Subscribe(func(Packet) { order = append(order, "c") })

	c.Show("x", SeverityInfo)
	unsubB()
	c.Show("y", SeverityInfo)

	assert.Equal(t, []string{"a", "b", "c", "a", "c"}, order)
}

func TestParseSeverity(t *testing.T) {
	tests := []struct {
		in      string
		want    Severity
		wantErr bool
	}{
		{in: "", want: SeverityInfo},
		{in: "success", want: SeveritySuccess},
		{in: "error", want: SeverityError},
		{in: "info", want: SeverityInfo},
		{in: "warning", want: SeverityWarning},
		{in: "fatal", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseSeverity(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
