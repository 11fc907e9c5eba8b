// Package api is the typed HTTP client for the quiniela REST API.
//
// The API is the single source of truth: match data, predictions, ranking
// rows, and scoring all live server-side. The client authenticates with a
// bearer token, rate-limits itself with a token bucket, and maps HTTP
// failures onto a small error taxonomy callers can branch on.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Sentinel errors for the two conditions callers branch on.
var (
	// ErrUnauthorized means the token was rejected. The client clears its
	// session and fires the OnUnauthorized hook before returning this.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrNoSession means an authenticated call was attempted before login.
	ErrNoSession = errors.New("no active session")
)

// StatusError is a non-2xx response that is not an auth failure, carrying
// the server's detail message (validation errors, unknown invite codes,
// duplicate predictions, and so on).
type StatusError struct {
	StatusCode int
	Path       string
	Detail     string
}

func (e *StatusError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("%s returned %d", e.Path, e.StatusCode)
	}
	return fmt.Sprintf("%s returned %d: %s", e.Path, e.StatusCode, e.Detail)
}

// Session is the immutable login state: token plus the numeric user id
// the server returned with it. Login and logout are whole-value
// transitions, never field-level mutation.
type Session struct {
	Token  string
	UserID int
}

// Client is the quiniela API client. Safe for concurrent use.
type Client struct {
	httpClient *http.Client
	baseURL    string
	limiter    *rate.Limiter
	logger     *slog.Logger

	mu             sync.RWMutex
	session        Session
	onUnauthorized func()
}

// NewClient creates an API client with rate limiting.
func NewClient(baseURL string, requestsPerMinute int, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	rps := float64(requestsPerMinute) / 60.0
	return &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    strings.TrimRight(baseURL, "/"),
		limiter:    rate.NewLimiter(rate.Limit(rps), 1),
		logger:     logger,
	}
}

// SetSession installs a session, e.g. one restored from the local store.
func (c *Client) SetSession(s Session) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.session = s
}

// Session returns the current session (zero value when logged out).
func (c *Client) Session() Session {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.session
}

// ClearSession drops the session.
func (c *Client) ClearSession() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.session = Session{}
}

// OnUnauthorized registers the global logout hook, invoked once per 401
// response after the session has been cleared.
func (c *Client) OnUnauthorized(fn func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onUnauthorized = fn
}

// errorBody is the server's error shape: {"detail": "..."}.
type errorBody struct {
	Detail string `json:"detail"`
}

// do performs one rate-limited unauthenticated request. Extra headers
// (admin secrets) ride along. A JSON body is marshalled when body is
// non-nil; the response is decoded into out when out is non-nil.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, headers map[string]string, body, out any) error {
	var payload io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		payload = bytes.NewReader(b)
	}

	req, err := c.newRequest(ctx, method, path, query, payload)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	return c.send(req, path, out)
}

// doAuthed is do with the bearer token attached. Fails fast with
// ErrNoSession when logged out.
func (c *Client) doAuthed(ctx context.Context, method, path string, query url.Values, body, out any) error {
	s := c.Session()
	if s.Token == "" {
		return fmt.Errorf("%s: %w", path, ErrNoSession)
	}
	var payload io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		payload = bytes.NewReader(b)
	}

	req, err := c.newRequest(ctx, method, path, query, payload)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Authorization", "Bearer "+s.Token)
	return c.send(req, path, out)
}

// doForm posts form-encoded values (the credential exchange).
func (c *Client) doForm(ctx context.Context, path string, form url.Values, out any) error {
	req, err := c.newRequest(ctx, http.MethodPost, path, nil, strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return c.send(req, path, out)
}

func (c *Client) newRequest(ctx context.Context, method, path string, query url.Values, body io.Reader) (*http.Request, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	return req, nil
}

func (c *Client) send(req *http.Request, path string, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("http request %s: %w", path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		c.handleUnauthorized(path)
		return fmt.Errorf("%s: %w", path, ErrUnauthorized)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var eb errorBody
		_ = json.Unmarshal(raw, &eb)
		return &StatusError{StatusCode: resp.StatusCode, Path: path, Detail: eb.Detail}
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("decode %s response: %w", path, err)
		}
	}
	return nil
}

// handleUnauthorized clears the session and fires the logout hook. The
// hook runs at most once per response, outside the lock.
func (c *Client) handleUnauthorized(path string) {
	c.mu.Lock()
	hadSession := c.session.Token != ""
	c.session = Session{}
	hook := c.onUnauthorized
	c.mu.Unlock()

	c.logger.Warn("Token rejected, session cleared", "path", path)
	if hadSession && hook != nil {
		hook()
	}
}
