// Package auth is the client for the external login endpoint.
package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/colonyops/lobby/internal/core/logging"
)

const (
	DefaultLoginPath = "/api/v1/login"
	DefaultTimeout   = 10 * time.Second

	// RequestIDHeader carries the per-attempt id so client and server logs line up.
	RequestIDHeader = "X-Request-ID"
)

// Credentials is the request body of a login call.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Response is a successful login answer. The body shape is owned by the
// server and kept opaque.
type Response struct {
	Status    int
	Body      any
	RequestID string
}

// Options configures a Client.
type Options struct {
	BaseURL   string
	LoginPath string
	Timeout   time.Duration

	// HTTPClient overrides the transport; Timeout is ignored when set.
	HTTPClient *http.Client
}

// Client posts credentials to the login endpoint.
type Client struct {
	endpoint string
	http     *http.Client
	logger   zerolog.Logger
}

// NewClient builds a client for opts. BaseURL must be an absolute URL.
func NewClient(opts Options) (*Client, error) {
	base, err := url.Parse(strings.TrimRight(opts.BaseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("parse base url: %q is not absolute", opts.BaseURL)
	}

	path := opts.LoginPath
	if path == "" {
		path = DefaultLoginPath
	}

	hc := opts.HTTPClient
	if hc == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		hc = &http.Client{Timeout: timeout}
	}

	return &Client{
		endpoint: base.String() + "/" + strings.TrimLeft(path, "/"),
		http:     hc,
		logger:   logging.Component("auth"),
	}, nil
}

// Endpoint returns the full login URL.
func (c *Client) Endpoint() string { return c.endpoint }

// Login sends creds and decodes the JSON answer.
//
// A non-success status yields *ApplicationError. Transport failures and
// bodies that are not valid JSON yield *NetworkError, whatever the status.
func (c *Client) Login(ctx context.Context, creds Credentials) (*Response, error) {
	requestID := logging.GetRequestID(ctx)
	if requestID == "" {
		requestID = uuid.NewString()
		ctx = logging.WithRequestID(ctx, requestID)
	}

	payload, err := json.Marshal(creds)
	if err != nil {
		return nil, &NetworkError{Op: "encode credentials", Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, &NetworkError{Op: "create request", Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set(RequestIDHeader, requestID)

	c.logger.Debug().Ctx(ctx).Str("endpoint", c.endpoint).Msg("posting credentials")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &NetworkError{Op: "post credentials", Err: err}
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			c.logger.Debug().Ctx(ctx).Err(err).Msg("close login response body")
		}
	}()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &NetworkError{Op: "read response", Err: err}
	}

	var body any
	if err := json.Unmarshal(raw, &body); err != nil {
		return nil, &NetworkError{Op: "decode response", Err: err}
	}

	c.logger.Debug().Ctx(ctx).Int("status", resp.StatusCode).Msg("login response received")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &ApplicationError{
			Status:  resp.StatusCode,
			Message: messageField(body),
		}
	}

	return &Response{
		Status:    resp.StatusCode,
		Body:      body,
		RequestID: requestID,
	}, nil
}

// messageField extracts a string "message" from a decoded JSON object.
func messageField(body any) string {
	obj, ok := body.(map[string]any)
	if !ok {
		return ""
	}
	msg, _ := obj["message"].(string)
	return msg
}
