// Package backend is the HTTP client for the esports REST backend.
//
// Every call carries the request context, a per-call timeout and, for
// authenticated endpoints, the bearer token found in that context. Responses
// are decoded into DTOs and validated before they reach a gateway.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/arenahq/arena/internal/platform/requestctx"
	"github.com/arenahq/arena/internal/platform/timeouts"
	"github.com/go-playground/validator/v10"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// maxResponseBytes caps how much of a backend response is read.
const maxResponseBytes = 4 << 20

// Config configures a Client.
type Config struct {
	BaseURL   string
	Timeout   time.Duration
	Transport http.RoundTripper
}

// Client calls the backend REST API.
type Client struct {
	baseURL  *url.URL
	http     *http.Client
	timeout  time.Duration
	validate *validator.Validate
}

// New builds a client. The transport is wrapped with OpenTelemetry
// instrumentation so backend calls join the inbound request trace.
func New(cfg Config) (*Client, error) {
	raw := strings.TrimSpace(cfg.BaseURL)
	if raw == "" {
		return nil, fmt.Errorf("backend base url is required")
	}
	base, err := url.Parse(raw)
	if err != nil || base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("backend base url %q is invalid", raw)
	}
	base.Path = strings.TrimSuffix(base.Path, "/")

	transport := cfg.Transport
	if transport == nil {
		transport = http.DefaultTransport
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = timeouts.APIRequest
	}
	return &Client{
		baseURL: base,
		http: &http.Client{
			Transport: otelhttp.NewTransport(transport,
				otelhttp.WithSpanNameFormatter(func(_ string, r *http.Request) string {
					return "backend " + r.Method + " " + r.URL.Path
				}),
			),
		},
		timeout:  timeout,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}, nil
}

// call describes one backend request.
type call struct {
	method  string
	path    string
	body    any
	auth    bool
	headers map[string]string
	// bodyless accepts a 2xx answer with no payload.
	bodyless bool
}

// do executes c and decodes the response into out (which may be nil).
func (c *Client) do(ctx context.Context, rc call, out any) error {
	token := ""
	if rc.auth {
		token = requestctx.BearerTokenFromContext(ctx)
		if token == "" {
			return &Error{Status: http.StatusUnauthorized, Path: rc.path}
		}
	}

	var body io.Reader
	if rc.body != nil {
		payload, err := json.Marshal(rc.body)
		if err != nil {
			return fmt.Errorf("encode %s body: %w", rc.path, err)
		}
		body = bytes.NewReader(payload)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, rc.method, c.baseURL.String()+rc.path, body)
	if err != nil {
		return fmt.Errorf("build %s request: %w", rc.path, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	for key, value := range rc.headers {
		req.Header.Set(key, value)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &UnreachableError{Path: rc.path, Err: err}
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return &UnreachableError{Path: rc.path, Err: err}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &Error{Status: resp.StatusCode, Path: rc.path, Message: errorMessage(payload)}
	}
	if out == nil {
		return nil
	}
	if rc.bodyless && (resp.StatusCode == http.StatusNoContent || len(bytes.TrimSpace(payload)) == 0) {
		return nil
	}
	if err := json.Unmarshal(payload, out); err != nil {
		return &DecodeError{Path: rc.path, Err: err}
	}
	if err := c.validate.StructCtx(ctx, out); err != nil {
		return &DecodeError{Path: rc.path, Err: err}
	}
	return nil
}

// messageEnvelope is the subset of every backend response that may carry a
// human-readable message.
type messageEnvelope struct {
	Message string `json:"message"`
	Detail  string `json:"detail"`
	Error   string `json:"error"`
}

// errorMessage picks message, then detail, then error from a JSON body.
func errorMessage(payload []byte) string {
	var envelope messageEnvelope
	if err := json.Unmarshal(payload, &envelope); err != nil {
		return ""
	}
	for _, candidate := range []string{envelope.Message, envelope.Detail, envelope.Error} {
		if candidate = strings.TrimSpace(candidate); candidate != "" {
			return candidate
		}
	}
	return ""
}

// messageResponse decodes bodies that only report a message.
type messageResponse struct {
	Message string `json:"message"`
}

// mutate runs an authenticated POST and returns the backend message.
func (c *Client) mutate(ctx context.Context, path string, body any) (string, error) {
	var out messageResponse
	if err := c.do(ctx, call{method: http.MethodPost, path: path, body: body, auth: true, bodyless: true}, &out); err != nil {
		return "", err
	}
	return strings.TrimSpace(out.Message), nil
}

// IsNotFound reports whether err is a backend 404.
func IsNotFound(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound
}

// requestHasToken reports whether ctx carries a bearer token. Endpoints that
// personalise public data send it when available.
func requestHasToken(ctx context.Context) bool {
	return requestctx.BearerTokenFromContext(ctx) != ""
}
