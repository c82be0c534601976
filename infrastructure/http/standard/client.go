// ABOUTME: Standard HTTP client implementation with retry logic and timeout support
// ABOUTME: Provides HTTP functionality with exponential backoff for resilient content API calls

package standard

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"catcare-web/core/interfaces"
)

const (
	defaultMaxAttempts = 3
	userAgent          = "CatCareHub/1.0"
)

// StandardHTTPClient implements the HTTPClient interface using standard library
type StandardHTTPClient struct {
	client      *http.Client
	maxAttempts int
}

// Option configures a StandardHTTPClient
type Option func(*StandardHTTPClient)

// WithTransport replaces the underlying round tripper (e.g. a logging transport)
func WithTransport(rt http.RoundTripper) Option {
	return func(c *StandardHTTPClient) {
		if rt != nil {
			c.client.Transport = rt
		}
	}
}

// WithMaxAttempts sets how many times a request is sent before giving up.
// One attempt disables retries; values below one are treated as one.
func WithMaxAttempts(n int) Option {
	return func(c *StandardHTTPClient) {
		if n < 1 {
			n = 1
		}
		c.maxAttempts = n
	}
}

// NewStandardHTTPClient creates a new HTTP client with the specified timeout
func NewStandardHTTPClient(timeout time.Duration, opts ...Option) *StandardHTTPClient {
	c := &StandardHTTPClient{
		client: &http.Client{
			Timeout: timeout,
		},
		maxAttempts: defaultMaxAttempts,
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Get performs an HTTP GET request
func (c *StandardHTTPClient) Get(ctx context.Context, url string, headers interfaces.Headers) (interfaces.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	// Perform request with retry logic
	var resp *http.Response
	var lastErr error

	for attempt := 0; attempt < c.maxAttempts; attempt++ {
		if attempt > 0 {
			// Exponential backoff: 100ms, 200ms
			backoff := time.Duration(100*(1<<(attempt-1))) * time.Millisecond
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		resp, err = c.client.Do(req)
		if err != nil {
			resp = nil
			lastErr = err
			continue
		}

		// Don't retry on success or 4xx errors
		if resp.StatusCode < 500 {
			break
		}

		// Keep the last 5xx response readable for the caller
		if attempt == c.maxAttempts-1 {
			break
		}

		lastErr = fmt.Errorf("server returned %d", resp.StatusCode)
		resp.Body.Close()
		resp = nil
	}

	if resp == nil {
		return nil, lastErr
	}

	return &httpResponse{
		statusCode: resp.StatusCode,
		body:       resp.Body,
		headers:    resp.Header,
	}, nil
}

// httpResponse implements the Response interface
type httpResponse struct {
	statusCode int
	body       io.ReadCloser
	headers    http.Header
}

// StatusCode returns the HTTP status code
func (r *httpResponse) StatusCode() int {
	return r.statusCode
}

// Body returns the response body
func (r *httpResponse) Body() io.ReadCloser {
	return r.body
}

// Header returns the value of the specified header
func (r *httpResponse) Header(key string) string {
	return r.headers.Get(key)
}
