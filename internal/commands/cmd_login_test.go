package commands

import (
	"bytes"
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/lobby/internal/core/auth"
	"github.com/colonyops/lobby/internal/core/toast"
	"github.com/colonyops/lobby/internal/mockapi"
	"github.com/colonyops/lobby/internal/printer"
	"github.com/colonyops/lobby/internal/tui/views/login"
	"github.com/colonyops/lobby/pkg/tuitest"
)

func TestLoginOnce(t *testing.T) {
	srv := httptest.NewServer(mockapi.New(mockapi.Options{}).Routes())
	t.Cleanup(srv.Close)

	client, err := auth.NewClient(auth.Options{BaseURL: srv.URL})
	require.NoError(t, err)

	tests := []struct {
		name     string
		password string
		message  string
		severity toast.Severity
	}{
		{"accepted", mockapi.DefaultPassword, login.MessageSuccess, toast.SeveritySuccess},
		{"rejected", "wrong", "Invalid credentials", toast.SeverityError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			creds := auth.Credentials{Email: mockapi.DefaultEmail, Password: tt.password}

			final := loginOnce(context.Background(), client, printer.New(&buf), time.Second, creds)

			assert.True(t, final.Open)
			assert.Equal(t, tt.message, final.Message)
			assert.Equal(t, tt.severity, final.Severity)

			out := tuitest.StripANSI(buf.String())
			assert.Contains(t, out, tt.message)
			assert.Equal(t, 1, bytes.Count(buf.Bytes(), []byte("\n")), "one line per toast")
		})
	}
}

func TestLoginOnce_unreachable(t *testing.T) {
	srv := httptest.NewServer(mockapi.New(mockapi.Options{}).Routes())
	srv.Close()

	client, err := auth.NewClient(auth.Options{BaseURL: srv.URL})
	require.NoError(t, err)

	var buf bytes.Buffer
	final := loginOnce(context.Background(), client, printer.New(&buf), time.Second, auth.Credentials{Email: "a", Password: "b"})

	assert.Equal(t, login.MessageNetwork, final.Message)
	assert.Equal(t, toast.SeverityError, final.Severity)
}

func TestRequired(t *testing.T) {
	assert.Error(t, required("email")("  "))
	assert.NoError(t, required("email")("a@b.c"))
}
