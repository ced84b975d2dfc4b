package logging

import (
	"context"
	"testing"
)

func TestWithRequestID(t *testing.T) {
	ctx := WithRequestID(context.Background(), "req-123")

	if got := GetRequestID(ctx); got != "req-123" {
		t.Errorf("GetRequestID() = %q, want %q", got, "req-123")
	}
}

func TestWithEmail(t *testing.T) {
	ctx := WithEmail(context.Background(), "ada@example.com")

	if got := GetEmail(ctx); got != "ada@example.com" {
		t.Errorf("GetEmail() = %q, want %q", got, "ada@example.com")
	}
}

func TestGetRequestID_NotPresent(t *testing.T) {
	if got := GetRequestID(context.Background()); got != "" {
		t.Errorf("GetRequestID() = %q, want empty string", got)
	}
}

func TestGetEmail_NotPresent(t *testing.T) {
	if got := GetEmail(context.Background()); got != "" {
		t.Errorf("GetEmail() = %q, want empty string", got)
	}
}
