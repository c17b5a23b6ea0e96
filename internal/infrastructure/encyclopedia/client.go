package encyclopedia

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const (
	DefaultBaseURL = "https://en.wikipedia.org/api/rest_v1"
	DefaultTimeout = 5 * time.Second

	maxSummaryBytes = 1 << 20
)

// Summary is the subset of the page summary payload the service reads.
// Extract is nil when the payload carries no "extract" field.
type Summary struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Extract     *string `json:"extract"`
}

type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

type Client struct {
	baseURL   string
	userAgent string
	timeout   time.Duration
	http      HTTPDoer
}

type Option func(*Client)

func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.timeout = timeout
	}
}

func WithHTTPDoer(doer HTTPDoer) Option {
	return func(c *Client) {
		c.http = doer
	}
}

func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		timeout: DefaultTimeout,
		http: &http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// SummaryURL returns the endpoint for a page title, path-escaped.
func (c *Client) SummaryURL(title string) string {
	return c.baseURL + "/page/summary/" + url.PathEscape(title)
}

// Summary fetches the page summary for title. One attempt, bounded by the
// client timeout.
func (c *Client) Summary(ctx context.Context, title string) (*Summary, error) {
	if title == "" {
		return nil, ErrEmptyTitle
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.SummaryURL(title), nil)
	if err != nil {
		return nil, fmt.Errorf("encyclopedia: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("encyclopedia: request %q: %w", title, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxSummaryBytes))
		return nil, &StatusError{StatusCode: resp.StatusCode, Title: title}
	}

	var summary Summary
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxSummaryBytes)).Decode(&summary); err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, fmt.Errorf("encyclopedia: read %q: %w", title, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}

	return &summary, nil
}
