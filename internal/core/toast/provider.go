package toast

import (
	"context"
	"errors"
	"time"
)

// ErrNoProvider is returned when a dispatcher is looked up from a context
// that is not rooted at a mounted Provider. It always indicates a wiring
// mistake in the caller.
var ErrNoProvider = errors.New("toast: dispatcher requested outside of a mounted provider")

type providerKey struct{}

// Provider owns one Channel and makes its dispatcher reachable through every
// context derived from the one returned by Mount.
type Provider struct {
	channel    *Channel
	dispatcher *ChannelDispatcher
	mounted    bool
}

// NewProvider creates an unmounted provider whose toasts auto-dismiss after d.
func NewProvider(d time.Duration) *Provider {
	ch := NewChannel(d)
	return &Provider{
		channel:    ch,
		dispatcher: NewDispatcher(ch),
	}
}

// Mount activates the provider and returns a child of parent that carries it.
// The channel starts closed.
func (p *Provider) Mount(parent context.Context) context.Context {
	p.channel.Reset()
	p.mounted = true
	return context.WithValue(parent, providerKey{}, p)
}

// Unmount deactivates the provider and clears its channel. Contexts returned
// by Mount no longer resolve a dispatcher afterwards.
func (p *Provider) Unmount() {
	p.mounted = false
	p.channel.Reset()
}

// Mounted reports whether the provider is active.
func (p *Provider) Mounted() bool { return p.mounted }

// Channel returns the provider's channel for rendering layers.
func (p *Provider) Channel() *Channel { return p.channel }

// Dispatcher returns the provider's dispatcher.
func (p *Provider) Dispatcher() *ChannelDispatcher { return p.dispatcher }

// FromContext resolves the dispatcher of the nearest mounted provider.
func FromContext(ctx context.Context) (Dispatcher, error) {
	if ctx == nil {
		return nil, ErrNoProvider
	}
	p, ok := ctx.Value(providerKey{}).(*Provider)
	if !ok || p == nil || !p.mounted {
		return nil, ErrNoProvider
	}
	return p.dispatcher, nil
}

// MustFromContext is like FromContext but panics when no provider is mounted.
func MustFromContext(ctx context.Context) Dispatcher {
	d, err := FromContext(ctx)
	if err != nil {
		panic(err)
	}
	return d
}
