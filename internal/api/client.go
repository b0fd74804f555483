package api

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/net/context/ctxhttp"
)

// maxErrorBody caps how much of a failed response body is kept in a StatusError
const maxErrorBody = 512

// Client issues the single GET behind each action
type Client struct {
	baseURL    string
	httpClient *http.Client
	decode     DecodeOptions
	logger     *log.Logger
}

// Option configures a Client
type Option func(*Client)

// WithBaseURL points the client at another API root (tests, mirrors)
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		if baseURL != "" {
			c.baseURL = strings.TrimSuffix(baseURL, "/")
		}
	}
}

// WithTimeout sets an overall request timeout. Zero means no timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithHTTPClient replaces the underlying HTTP client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithLenientDecoding keeps unknown enum values instead of failing
func WithLenientDecoding(lenient bool) Option {
	return func(c *Client) {
		c.decode.Lenient = lenient
	}
}

// NewClient creates a new API client.
// There is no default timeout: a stalled server stalls the request until ctx is done.
func NewClient(logger *log.Logger, opts ...Option) *Client {
	c := &Client{
		baseURL:    DefaultBaseURL,
		httpClient: &http.Client{},
		logger:     logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the API root the client talks to
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Fetch performs one GET and returns the full body of a 2xx response
func (c *Client) Fetch(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequest(http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, &TransportError{URL: rawURL, Err: fmt.Errorf("failed to create request: %w", err)}
	}
	req.Header.Set("Accept", "application/json")

	if c.logger != nil {
		c.logger.Debug("GET", "url", rawURL)
	}

	start := time.Now()
	resp, err := ctxhttp.Do(ctx, c.httpClient, req)
	if err != nil {
		return nil, &TransportError{URL: rawURL, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{URL: rawURL, Err: fmt.Errorf("failed to read response: %w", err)}
	}

	if c.logger != nil {
		c.logger.Debug("response", "status", resp.StatusCode, "bytes", len(body), "elapsed", time.Since(start))
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := strings.TrimSpace(string(body))
		if len(msg) > maxErrorBody {
			msg = msg[:maxErrorBody] + "..."
		}
		return nil, &StatusError{URL: rawURL, StatusCode: resp.StatusCode, Body: msg}
	}

	return body, nil
}

// Result is the outcome of running one action
type Result struct {
	Action Action
	URL    string
	// Page is *models.CharacterPage, *models.EpisodePage or *models.LocationPage
	Page any
	// Body is the raw payload as received
	Body []byte
}

// Run dispatches an action: build the URL, fetch it once, decode it
func (c *Client) Run(ctx context.Context, action Action, name string) (*Result, error) {
	rawURL, err := BuildURL(c.baseURL, action, name)
	if err != nil {
		return nil, err
	}

	body, err := c.Fetch(ctx, rawURL)
	if err != nil {
		return nil, err
	}

	page, err := Decode(action.Kind(), body, c.decode)
	if err != nil {
		return nil, err
	}

	if c.logger != nil {
		c.logger.Info("decoded response", "action", action.Label(), "kind", action.Kind())
	}

	return &Result{
		Action: action,
		URL:    rawURL,
		Page:   page,
		Body:   body,
	}, nil
}
