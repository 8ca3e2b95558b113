// Package client is the HTTP transport to the comment service.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/hay-kot/threads/internal/core/comment"
	"github.com/hay-kot/threads/internal/core/logging"
)

// DefaultTimeout bounds a single request when no timeout is configured.
const DefaultTimeout = 10 * time.Second

// maxErrorBody caps how much of a failed response is read for its message.
const maxErrorBody = 64 << 10

// StatusError is returned when the service answers with a non-2xx status.
type StatusError struct {
	Code    int
	Message string // from the {"error": ...} body, when present
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("%d %s", e.Code, http.StatusText(e.Code))
}

// Client talks to the comment service over HTTP.
type Client struct {
	base   *url.URL
	http   *http.Client
	logger zerolog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.http.Timeout = d
		}
	}
}

// WithLogger sets the logger used for request tracing.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// New creates a client for the service at baseURL.
func New(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse server url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("server url %q must use http or https", baseURL)
	}

	c := &Client{
		base:   u,
		http:   &http.Client{Timeout: DefaultTimeout},
		logger: logging.Component("client"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// All fetches the complete comment tree.
func (c *Client) All(ctx context.Context) ([]*comment.Comment, error) {
	var out []*comment.Comment
	if err := c.do(ctx, http.MethodGet, "/comments/all", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Create posts a new comment; a non-nil ParentID makes it a reply.
func (c *Client) Create(ctx context.Context, req comment.CreateRequest) error {
	return c.do(ctx, http.MethodPost, "/comments", req, nil)
}

// Delete removes the comment with the given id.
func (c *Client) Delete(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, "/comments/"+strconv.Itoa(id), nil, nil)
}

// Search returns the comment trees matching text.
func (c *Client) Search(ctx context.Context, text string) ([]*comment.Comment, error) {
	var out []*comment.Comment
	if err := c.do(ctx, http.MethodPost, "/comments/search", comment.SearchRequest{Text: text}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) endpoint(path string) string {
	u := *c.base
	u.Path = strings.TrimRight(u.Path, "/") + path
	return u.String()
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		bits, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(bits)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.endpoint(path), reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	requestID := uuid.NewString()
	ctx = logging.WithRequestID(ctx, requestID)
	req.Header.Set("X-Request-Id", requestID)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Error().Ctx(ctx).Err(err).
			Str("method", method).
			Str("path", path).
			Msg("request failed")
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	c.logger.Debug().Ctx(ctx).
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("request completed")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return readStatusError(resp)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func readStatusError(resp *http.Response) error {
	statusErr := &StatusError{Code: resp.StatusCode}

	bits, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err != nil || len(bits) == 0 {
		return statusErr
	}

	var payload struct {
		Error string `json:"error"`
	}
	if json.Unmarshal(bits, &payload) == nil {
		statusErr.Message = payload.Error
	}
	return statusErr
}

// IsStatus reports whether err carries the given HTTP status code.
func IsStatus(err error, code int) bool {
	var statusErr *StatusError
	return errors.As(err, &statusErr) && statusErr.Code == code
}
