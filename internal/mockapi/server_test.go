package mockapi

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/lobby/internal/core/auth"
)

func post(t *testing.T, h http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, auth.DefaultLoginPath, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestHandleLogin(t *testing.T) {
	h := New(Options{}).Routes()

	t.Run("accepts demo credentials", func(t *testing.T) {
		rec := post(t, h, `{"email":"demo@lobby.dev","password":"password"}`)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

		body := decode(t, rec)
		assert.Equal(t, "demo@lobby.dev", body["email"])
		_, err := uuid.Parse(body["token"].(string))
		assert.NoError(t, err)
	})

	t.Run("rejects wrong password", func(t *testing.T) {
		rec := post(t, h, `{"email":"demo@lobby.dev","password":"nope"}`)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, map[string]any{"message": "Invalid credentials"}, decode(t, rec))
	})

	t.Run("malformed body", func(t *testing.T) {
		rec := post(t, h, `{"email":`)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.NotEmpty(t, decode(t, rec)["message"])
	})

	t.Run("wrong method", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, auth.DefaultLoginPath, nil)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	})
}

func TestNew_custom_options(t *testing.T) {
	h := New(Options{Email: "a@b.c", Password: "pw", LoginPath: "/auth"}).Routes()

	req := httptest.NewRequest(http.MethodPost, "/auth", strings.NewReader(`{"email":"a@b.c","password":"pw"}`))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestServer_works_with_auth_client(t *testing.T) {
	srv := httptest.NewServer(New(Options{}).Routes())
	t.Cleanup(srv.Close)

	client, err := auth.NewClient(auth.Options{BaseURL: srv.URL})
	require.NoError(t, err)

	resp, err := client.Login(context.Background(), auth.Credentials{Email: DefaultEmail, Password: DefaultPassword})
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.Status)

	_, err = client.Login(context.Background(), auth.Credentials{Email: DefaultEmail, Password: "bad"})
	var appErr *auth.ApplicationError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "Invalid credentials", appErr.Message)
}

func TestRun_shuts_down_on_cancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	addrc := make(chan net.Addr, 1)
	errc := make(chan error, 1)
	go func() {
		errc <- New(Options{}).Run(ctx, "127.0.0.1:0", func(a net.Addr) { addrc <- a })
	}()

	var addr net.Addr
	select {
	case addr = <-addrc:
	case err := <-errc:
		t.Fatalf("server exited early: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not start")
	}

	resp, err := http.Get("http://" + addr.String() + "/healthz")
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	cancel()
	select {
	case err := <-errc:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}
