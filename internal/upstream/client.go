// Package upstream wraps the HTTP plumbing shared by every third-party data
// source: a fixed User-Agent, a per-attempt timeout, bounded retries and
// status checking.
package upstream

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	json "github.com/goccy/go-json"

	"github.com/pfsn365/transfer-portal-tracker-sub001/internal/retry"
)

// Upstream bodies larger than this are rejected
const maxBodyBytes = 32 << 20

// StatusError is returned for responses with status >= 400
type StatusError struct {
	Source     string
	URL        string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s API error: status=%d, url=%s, body=%s", e.Source, e.StatusCode, e.URL, e.Body)
}

// Observer records the outcome of every upstream request
type Observer interface {
	ObserveUpstream(source string, took time.Duration, err error)
}

type nopObserver struct{}

func (nopObserver) ObserveUpstream(string, time.Duration, error) {}

// Options configures a Client
type Options struct {
	Source     string // "espn", "transfer_portal", "news"
	UserAgent  string
	Timeout    time.Duration // per attempt
	Retry      *retry.Policy
	HTTPClient *http.Client
	Observer   Observer
}

// Client performs GET requests against one upstream
type Client struct {
	source     string
	userAgent  string
	timeout    time.Duration
	retry      *retry.Policy
	httpClient *http.Client
	observer   Observer
}

// New creates an upstream client. Two attempts with a fixed 500ms backoff
// and a 15s timeout are used unless overridden.
func New(opts Options) *Client {
	c := &Client{
		source:     opts.Source,
		userAgent:  opts.UserAgent,
		timeout:    opts.Timeout,
		retry:      opts.Retry,
		httpClient: opts.HTTPClient,
		observer:   opts.Observer,
	}
	if c.userAgent == "" {
		c.userAgent = "Mozilla/5.0 (compatible; CFBHQ/1.0)"
	}
	if c.timeout <= 0 {
		c.timeout = 15 * time.Second
	}
	if c.retry == nil {
		c.retry = retry.Fixed(2, 500*time.Millisecond)
	}
	if c.httpClient == nil {
		c.httpClient = &http.Client{}
	}
	if c.observer == nil {
		c.observer = nopObserver{}
	}
	return c
}

// Source returns the configured source name
func (c *Client) Source() string {
	return c.source
}

// Get fetches url and returns the response body
func (c *Client) Get(ctx context.Context, url string) ([]byte, error) {
	start := time.Now()

	var body []byte
	err := c.retry.Do(ctx, func(ctx context.Context) error {
		b, err := c.fetch(ctx, url)
		if err != nil {
			return err
		}
		body = b
		return nil
	})

	c.observer.ObserveUpstream(c.source, time.Since(start), err)
	if err != nil {
		return nil, err
	}
	return body, nil
}

// GetJSON fetches url and decodes the JSON body into v
func (c *Client) GetJSON(ctx context.Context, url string, v any) error {
	body, err := c.Get(ctx, url)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("decoding %s response: %w", c.source, err)
	}
	return nil
}

// fetch makes a single HTTP GET request
func (c *Client) fetch(ctx context.Context, url string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, retry.Permanent(fmt.Errorf("creating request: %w", err))
	}

	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json, application/rss+xml, application/xml;q=0.9, */*;q=0.8")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("making request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		statusErr := &StatusError{
			Source:     c.source,
			URL:        url,
			StatusCode: resp.StatusCode,
			Body:       string(b),
		}
		if isPermanent(resp.StatusCode) {
			return nil, retry.Permanent(statusErr)
		}
		return nil, statusErr
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}
	return body, nil
}

// 4xx responses other than timeouts and rate limiting won't change on retry
func isPermanent(status int) bool {
	return status < http.StatusInternalServerError &&
		status != http.StatusRequestTimeout &&
		status != http.StatusTooManyRequests
}
