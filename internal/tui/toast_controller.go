package tui

import (
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/colonyops/lobby/internal/core/toast"
)

// toastExpiredMsg fires when the display timer for a shown packet runs out.
type toastExpiredMsg struct {
	gen uint64
}

func scheduleToastExpiry(d time.Duration, gen uint64) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return toastExpiredMsg{gen: gen}
	})
}

// ToastController drives the auto-dismiss timer for a toast channel.
// At most one timer matters at a time: timers carry the generation they were
// scheduled for and expire nothing once a newer packet has been shown.
type ToastController struct {
	channel   *toast.Channel
	scheduled uint64
}

func NewToastController(channel *toast.Channel) *ToastController {
	return &ToastController{channel: channel}
}

// Sync returns a timer command when an open packet has no timer yet.
func (c *ToastController) Sync() tea.Cmd {
	p := c.channel.Current()
	if !p.Open || p.Gen == c.scheduled {
		return nil
	}
	c.scheduled = p.Gen
	return scheduleToastExpiry(c.channel.Duration(), p.Gen)
}

// Expire closes the packet the timer was scheduled for, if it is still shown.
func (c *ToastController) Expire(msg toastExpiredMsg) bool {
	return c.channel.Expire(msg.gen)
}

// Dismiss closes the current packet for the given reason.
func (c *ToastController) Dismiss(reason toast.DismissReason) bool {
	return c.channel.Dismiss(reason)
}

// Visible reports whether a packet is currently open.
func (c *ToastController) Visible() bool {
	return c.channel.Current().Open
}

// Current returns the packet being presented.
func (c *ToastController) Current() toast.Packet {
	return c.channel.Current()
}
