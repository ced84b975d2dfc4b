package toast

import (
	"slices"
	"sync"
	"time"
)

// Subscriber is invoked after every state change of a channel.
type Subscriber func(Packet)

// Channel holds at most one notification. A show replaces whatever was there
// before, open or not.
//
// State changes are expected to come from a single goroutine (the Bubble Tea
// Update loop). The mutex only guards subscriber registration.
type Channel struct {
	packet   Packet
	duration time.Duration

	mu          sync.Mutex
	subscribers []subscription
	nextSubID   int
}

type subscription struct {
	id int
	fn Subscriber
}

// NewChannel creates a closed channel whose toasts auto-dismiss after d.
// A non-positive d falls back to DefaultDuration.
func NewChannel(d time.Duration) *Channel {
	if d <= 0 {
		d = DefaultDuration
	}
	return &Channel{
		packet:   defaultPacket(),
		duration: d,
	}
}

// Duration returns the auto-dismiss timeout.
func (c *Channel) Duration() time.Duration { return c.duration }

// Current returns a copy of the current packet.
func (c *Channel) Current() Packet { return c.packet }

// Show replaces the current packet with an open one and restarts the
// auto-dismiss window. The returned packet carries the generation the caller
// must pass to Expire once the duration elapses.
func (c *Channel) Show(message string, severity Severity) Packet {
	if severity == "" {
		severity = SeverityInfo
	}
	c.packet = Packet{
		Message:  message,
		Severity: severity,
		Open:     true,
		Gen:      c.packet.Gen + 1,
	}
	c.notify()
	return c.packet
}

// Dismiss closes the current packet, keeping its message and severity so an
// exit transition can still render them. ReasonClickAway is a no-op.
// It reports whether the visible state changed.
func (c *Channel) Dismiss(reason DismissReason) bool {
	if reason == ReasonClickAway || !c.packet.Open {
		return false
	}
	c.packet.Open = false
	c.notify()
	return true
}

// Expire handles an elapsed auto-dismiss timer scheduled for gen. Timers
// belonging to a superseded show are ignored.
func (c *Channel) Expire(gen uint64) bool {
	if gen != c.packet.Gen {
		return false
	}
	return c.Dismiss(ReasonTimeout)
}

// Reset returns the channel to its initial closed state. The generation keeps
// counting so timers scheduled before the reset stay stale.
func (c *Channel) Reset() {
	gen := c.packet.Gen
	c.packet = defaultPacket()
	c.packet.Gen = gen
	c.notify()
}

// Subscribe registers fn for every state change and returns a function that
// removes it.
func (c *Channel) Subscribe(fn Subscriber) func() {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := c.nextSubID
	c.nextSubID++
	c.subscribers = append(c.subscribers, subscription{id: id, fn: fn})

	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		c.subscribers = slices.DeleteFunc(c.subscribers, func(s subscription) bool {
			return s.id == id
		})
	}
}

func (c *Channel) notify() {
	c.mu.Lock()
	subs := make([]subscription, len(c.subscribers))
	copy(subs, c.subscribers)
	c.mu.Unlock()

	p := c.packet
	for _, s := range subs {
		s.fn(p)
	}
}
