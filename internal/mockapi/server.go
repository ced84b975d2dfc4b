// Package mockapi serves a local stand-in for the login endpoint so the client
// can be exercised without the real backend.
package mockapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/colonyops/lobby/internal/core/auth"
	"github.com/colonyops/lobby/internal/core/logging"
)

const (
	DefaultAddr     = "127.0.0.1:8090"
	DefaultEmail    = "demo@lobby.dev"
	DefaultPassword = "password"

	shutdownTimeout = 5 * time.Second
)

// Options configures the accepted credentials and route.
type Options struct {
	Email     string
	Password  string
	LoginPath string
}

// Server answers login requests against one fixed set of credentials.
type Server struct {
	opts   Options
	logger zerolog.Logger
}

func New(opts Options) *Server {
	if opts.Email == "" {
		opts.Email = DefaultEmail
	}
	if opts.Password == "" {
		opts.Password = DefaultPassword
	}
	if opts.LoginPath == "" {
		opts.LoginPath = auth.DefaultLoginPath
	}
	return &Server{opts: opts, logger: logging.Component("mockapi")}
}

type loginResponse struct {
	Token string `json:"token"`
	Email string `json:"email"`
}

type errorResponse struct {
	Message string `json:"message"`
}

// Routes returns the HTTP handler for the mock API.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.requestLogger)

	r.Post(s.opts.LoginPath, s.handleLogin)
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	return r
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var creds auth.Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: "malformed request body"})
		return
	}

	ctx := logging.WithEmail(r.Context(), creds.Email)
	if creds.Email != s.opts.Email || creds.Password != s.opts.Password {
		s.logger.Info().Ctx(ctx).Msg("rejected credentials")
		writeJSON(w, http.StatusUnauthorized, errorResponse{Message: "Invalid credentials"})
		return
	}

	s.logger.Info().Ctx(ctx).Msg("accepted credentials")
	writeJSON(w, http.StatusOK, loginResponse{Token: uuid.NewString(), Email: creds.Email})
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if id := r.Header.Get(auth.RequestIDHeader); id != "" {
			ctx = logging.WithRequestID(ctx, id)
		}

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r.WithContext(ctx))

		s.logger.Debug().Ctx(ctx).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("elapsed", time.Since(start)).
			Msg("request")
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// Run listens on addr and serves until ctx is cancelled, then shuts down
// gracefully. ready, when non-nil, receives the bound address once listening.
func (s *Server) Run(ctx context.Context, addr string, ready func(net.Addr)) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", addr, err)
	}

	srv := &http.Server{
		Handler:           s.Routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	if ready != nil {
		ready(ln.Addr())
	}
	s.logger.Info().Str("addr", ln.Addr().String()).Str("path", s.opts.LoginPath).Msg("mock api listening")

	errc := make(chan error, 1)
	go func() {
		errc <- srv.Serve(ln)
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
