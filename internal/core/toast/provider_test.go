package toast

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromContext_without_provider(t *testing.T) {
	d, err := FromContext(context.Background())

	assert.Nil(t, d)
	assert.ErrorIs(t, err, ErrNoProvider)
}

func TestFromContext_nil_context(t *testing.T) {
	//nolint:staticcheck // nil context is the case under test
	_, err := FromContext(nil)
	assert.ErrorIs(t, err, ErrNoProvider)
}

func TestMustFromContext_panics_without_provider(t *testing.T) {
	assert.PanicsWithError(t, ErrNoProvider.Error(), func() {
		MustFromContext(context.Background())
	})
}

func TestFromContext_inside_provider(t *testing.T) {
	p := NewProvider(0)
	ctx := p.Mount(context.Background())

	d, err := FromContext(ctx)
	require.NoError(t, err)

	d.Success("Saved")

	cur := p.Channel().Current()
	assert.True(t, cur.Open)
	assert.Equal(t, "Saved", cur.Message)
	assert.Equal(t, SeveritySuccess, cur.Severity)
}

func TestFromContext_descendant_context(t *testing.T) {
	p := NewProvider(0)
	ctx := p.Mount(context.Background())

	type otherKey struct{}
	child, cancel := context.WithCancel(context.WithValue(ctx, otherKey{}, "v"))
	defer cancel()

	assert.NotPanics(t, func() {
		MustFromContext(child).Warning("careful")
	})
	assert.Equal(t, SeverityWarning, p.Channel().Current().Severity)
}

func TestProvider_Unmount_invalidates_lookup(t *testing.T) {
	p := NewProvider(0)
	ctx := p.Mount(context.Background())
	p.Dispatcher().Error("boom")

	p.Unmount()

	assert.False(t, p.Mounted())
	_, err := FromContext(ctx)
	assert.ErrorIs(t, err, ErrNoProvider)
	cur := p.Channel().Current()
	assert.False(t, cur.Open)
	assert.Empty(t, cur.Message)
	assert.Equal(t, SeverityInfo, cur.Severity)
}

func TestProviders_are_independent(t *testing.T) {
	a := NewProvider(0)
	b := NewProvider(0)
	ctxA := a.Mount(context.Background())
	ctxB := b.Mount(context.Background())

	MustFromContext(ctxA).Info("for a")

	assert.True(t, a.Channel().Current().Open)
	assert.False(t, b.Channel().Current().Open)

	MustFromContext(ctxB).Error("for b")
	assert.Equal(t, "for a", a.Channel().Current().Message)
}

func TestDispatcher_severity_helpers(t *testing.T) {
	tests := []struct {
		name string
		call func(Dispatcher)
		want Severity
	}{
		{"success", func(d Dispatcher) { d.Success("m") }, SeveritySuccess},
		{"error", func(d Dispatcher) { d.Error("m") }, SeverityError},
		{"info", func(d Dispatcher) { d.Info("m") }, SeverityInfo},
		{"warning", func(d Dispatcher) { d.Warning("m") }, SeverityWarning},
		{"show default", func(d Dispatcher) { d.ShowToast("m", "") }, SeverityInfo},
		{"show explicit", func(d Dispatcher) { d.ShowToast("m", SeverityError) }, SeverityError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ch := NewChannel(0)
			tt.call(NewDispatcher(ch))

			assert.Equal(t, Packet{Message: "m", Severity: tt.want, Open: true, Gen: 1}, ch.Current())
		})
	}
}
