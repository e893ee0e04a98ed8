// Paprikasync - Paprika Recipe Sync Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/paprikasync

/*
client.go - Paprika sync API client

Endpoints (all relative to https://www.paprikaapp.com):

	POST /api/v1/account/login/     form email/password -> bearer token
	GET  /api/v2/sync/recipes/      manifest of {uid, hash} pairs
	GET  /api/v2/sync/recipe/{uid}/ one full recipe
	POST /api/v2/sync/recipe/{uid}/ upsert; body is a multipart "data"
	                                part holding gzipped recipe JSON
	POST /api/v2/sync/notify/       tell other devices to re-sync

Every response is wrapped in {"result": ...} or {"error": {...}}.
*/

package paprika

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/goccy/go-json"
	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/paprikasync/internal/logging"
	"github.com/tomtom215/paprikasync/internal/models"
)

// DefaultBaseURL is the production service endpoint.
const DefaultBaseURL = "https://www.paprikaapp.com"

// maxErrorBodySize caps how much of an error response body is read for
// diagnostics.
const maxErrorBodySize = 64 * 1024

// Options configures a Client. The zero value of every field selects a
// sensible default; MinRequestInterval < 0 disables pacing entirely.
type Options struct {
	BaseURL  string
	Email    string
	Password string

	// MinRequestInterval spaces consecutive requests. 0 means
	// DefaultMinRequestInterval; negative disables pacing.
	MinRequestInterval time.Duration

	// Timeout bounds a single HTTP exchange. Default 30s.
	Timeout time.Duration

	// MaxAttempts bounds attempts for transient failures (default 3).
	MaxAttempts int

	// RateLimitBackoff is the single-retry delay after an HTTP 429
	// (default 30s).
	RateLimitBackoff time.Duration

	// RetryBaseDelay seeds the exponential backoff between transient
	// retries (default 1s).
	RetryBaseDelay time.Duration

	// Transport overrides the base RoundTripper beneath the pacer.
	Transport http.RoundTripper
}

// Client talks to the Paprika sync API on behalf of one account.
//
// Session state: a Client starts unauthenticated; Login moves it to
// authenticated; any call answered with an auth failure drops the
// cached token, so the session must be re-established explicitly before
// further calls succeed. The client never re-logs-in behind the
// caller's back.
//
// Safe for concurrent use; pacing and token state are both mutexed.
type Client struct {
	baseURL          string
	email            string
	password         string
	httpClient       *http.Client
	maxAttempts      int
	rateLimitBackoff time.Duration
	retryBaseDelay   time.Duration
	breaker          *gobreaker.CircuitBreaker[[]byte]

	mu    sync.Mutex
	token string
}

// RecipeListItem is one manifest entry: enough to decide whether the
// full record needs transferring.
type RecipeListItem struct {
	UID  string `json:"uid"`
	Hash string `json:"hash"`
}

// envelope is the service's universal response wrapper.
type envelope struct {
	Result json.RawMessage `json:"result"`
	Error  *apiError       `json:"error"`
}

type apiError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewClient creates a client for the given account.
func NewClient(opts Options) *Client {
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}
	if opts.MinRequestInterval == 0 {
		opts.MinRequestInterval = DefaultMinRequestInterval
	}
	if opts.Timeout == 0 {
		opts.Timeout = 30 * time.Second
	}
	if opts.MaxAttempts == 0 {
		opts.MaxAttempts = 3
	}
	if opts.RateLimitBackoff == 0 {
		opts.RateLimitBackoff = 30 * time.Second
	}
	if opts.RetryBaseDelay == 0 {
		opts.RetryBaseDelay = time.Second
	}

	return &Client{
		baseURL:  strings.TrimSuffix(opts.BaseURL, "/"),
		email:    opts.Email,
		password: opts.Password,
		httpClient: &http.Client{
			Timeout:   opts.Timeout,
			Transport: newPacedTransport(opts.MinRequestInterval, opts.Transport),
		},
		maxAttempts:      opts.MaxAttempts,
		rateLimitBackoff: opts.RateLimitBackoff,
		retryBaseDelay:   opts.RetryBaseDelay,
		breaker:          newBreaker(),
	}
}

// Authenticated reports whether the client holds a session token.
func (c *Client) Authenticated() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.token != ""
}

func (c *Client) currentToken() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.token
}

func (c *Client) setToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
}

// Login authenticates against the v1 login endpoint and caches the
// bearer token. The v2 endpoint rejects unofficial clients; v1 does not.
func (c *Client) Login(ctx context.Context) error {
	form := url.Values{}
	form.Set("email", c.email)
	form.Set("password", c.password)

	result, err := c.call(ctx, request{
		method:      http.MethodPost,
		path:        "/api/v1/account/login/",
		body:        []byte(form.Encode()),
		contentType: "application/x-www-form-urlencoded",
	})
	if err != nil {
		return err
	}

	var session struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(result, &session); err != nil || session.Token == "" {
		return fmt.Errorf("%w: login response carried no session token", ErrAuth)
	}

	c.setToken(session.Token)
	logging.Debug().Str("email", c.email).Msg("authenticated")
	return nil
}

// ListRecipes retrieves the manifest of every remote recipe and its
// current content hash, trashed records included.
func (c *Client) ListRecipes(ctx context.Context) ([]RecipeListItem, error) {
	result, err := c.call(ctx, request{
		method: http.MethodGet,
		path:   "/api/v2/sync/recipes/",
		authed: true,
	})
	if err != nil {
		return nil, err
	}

	var items []RecipeListItem
	if err := json.Unmarshal(result, &items); err != nil {
		return nil, fmt.Errorf("%w: recipe manifest: %v", ErrProtocol, err)
	}
	return items, nil
}

// FetchRecipe retrieves one full recipe by identifier.
func (c *Client) FetchRecipe(ctx context.Context, uid string) (*models.Recipe, error) {
	result, err := c.call(ctx, request{
		method: http.MethodGet,
		path:   "/api/v2/sync/recipe/" + url.PathEscape(uid) + "/",
		authed: true,
	})
	if err != nil {
		return nil, err
	}

	r, err := models.RecipeFromWire(result)
	if err != nil {
		return nil, fmt.Errorf("%w: recipe %s: %v", ErrProtocol, uid, err)
	}
	return r, nil
}

// UpsertRecipe creates or overwrites the record matching the recipe's
// uid and returns the server's authoritative echo, including the hash
// the server now holds. Re-uploading unchanged content is a harmless
// no-op on the server side.
func (c *Client) UpsertRecipe(ctx context.Context, r *models.Recipe) (*models.Recipe, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}

	archive, err := r.WireArchive()
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)
	part, err := form.CreateFormFile("data", "data")
	if err != nil {
		return nil, fmt.Errorf("build upload body: %w", err)
	}
	if _, err := part.Write(archive); err != nil {
		return nil, fmt.Errorf("build upload body: %w", err)
	}
	if err := form.Close(); err != nil {
		return nil, fmt.Errorf("build upload body: %w", err)
	}

	if _, err := c.call(ctx, request{
		method:      http.MethodPost,
		path:        "/api/v2/sync/recipe/" + url.PathEscape(r.UID) + "/",
		body:        buf.Bytes(),
		contentType: form.FormDataContentType(),
		authed:      true,
	}); err != nil {
		return nil, err
	}

	// The upsert response body is an empty result; the echo comes from
	// fetching the record back.
	return c.FetchRecipe(ctx, r.UID)
}

// Notify asks the service to tell the account's other devices to
// re-sync. Callers treat failure as non-fatal.
func (c *Client) Notify(ctx context.Context) error {
	_, err := c.call(ctx, request{
		method: http.MethodPost,
		path:   "/api/v2/sync/notify/",
		authed: true,
	})
	return err
}

// request describes one API call before retry/pacing plumbing.
type request struct {
	method      string
	path        string
	body        []byte
	contentType string
	authed      bool
}

// call runs one API request through the retry policy: transient
// failures get bounded exponential backoff, a 429 gets a single long
// pause, everything else surfaces immediately. An auth failure also
// drops the cached token so the session state is honest.
func (c *Client) call(ctx context.Context, rq request) (json.RawMessage, error) {
	if rq.authed && !c.Authenticated() {
		if err := c.Login(ctx); err != nil {
			return nil, err
		}
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = c.retryBaseDelay
	bo.MaxInterval = 30 * time.Second

	rateLimitRetried := false
	for attempt := 1; ; attempt++ {
		result, err := c.once(ctx, rq)
		if err == nil {
			return result, nil
		}
		if errors.Is(err, ErrAuth) {
			c.setToken("")
			return nil, err
		}

		var delay time.Duration
		switch {
		case errors.Is(err, ErrRateLimited) && !rateLimitRetried:
			rateLimitRetried = true
			delay = c.rateLimitBackoff
		case errors.Is(err, ErrTransient) && attempt < c.maxAttempts:
			delay = bo.NextBackOff()
		default:
			return nil, err
		}

		logging.Warn().
			Err(err).
			Int("attempt", attempt).
			Dur("delay", delay).
			Str("path", rq.path).
			Msg("retrying request")

		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
}

// once performs a single exchange through the circuit breaker.
func (c *Client) once(ctx context.Context, rq request) ([]byte, error) {
	result, err := c.breaker.Execute(func() ([]byte, error) {
		return c.exchange(ctx, rq)
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return nil, fmt.Errorf("%w: circuit open, service treated as unavailable", ErrTransient)
	}
	return result, err
}

// exchange issues the HTTP request and maps the response onto the error
// taxonomy. Raw transport errors never escape this method.
func (c *Client) exchange(ctx context.Context, rq request) ([]byte, error) {
	var body io.Reader = http.NoBody
	if rq.body != nil {
		body = bytes.NewReader(rq.body)
	}

	req, err := http.NewRequestWithContext(ctx, rq.method, c.baseURL+rq.path, body)
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %v", ErrProtocol, err)
	}
	if rq.contentType != "" {
		req.Header.Set("Content-Type", rq.contentType)
	}
	if rq.authed {
		req.Header.Set("Authorization", "Bearer "+c.currentToken())
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("%w: %v", ErrTransient, err)
	}
	defer resp.Body.Close()

	if err := mapStatus(resp); err != nil {
		return nil, err
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("%w: decode envelope: %v", ErrProtocol, err)
	}
	if env.Error != nil {
		return nil, fmt.Errorf("%w: service error %d: %s", ErrProtocol, env.Error.Code, env.Error.Message)
	}
	return env.Result, nil
}

// mapStatus converts a non-2xx response into a typed error.
func mapStatus(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	snippet := readBodyForError(resp.Body)
	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return fmt.Errorf("%w: HTTP %d: %s", ErrAuth, resp.StatusCode, snippet)
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%w: HTTP 404: %s", ErrNotFound, snippet)
	case resp.StatusCode == http.StatusTooManyRequests:
		return fmt.Errorf("%w: HTTP 429: %s", ErrRateLimited, snippet)
	case resp.StatusCode >= 500:
		return fmt.Errorf("%w: HTTP %d: %s", ErrTransient, resp.StatusCode, snippet)
	default:
		return fmt.Errorf("%w: HTTP %d: %s", ErrProtocol, resp.StatusCode, snippet)
	}
}

// readBodyForError reads at most maxErrorBodySize of a response body for
// diagnostics; it never fails.
func readBodyForError(r io.Reader) []byte {
	body, err := io.ReadAll(io.LimitReader(r, maxErrorBodySize))
	if err != nil {
		return []byte("(failed to read response body)")
	}
	return bytes.TrimSpace(body)
}
