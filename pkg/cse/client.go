// Package cse provides a client for the Google Programmable Search Engine
// JSON API, used to harvest lead candidates from web search results.
package cse

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rotisserie/eris"
)

// pageSize is the fixed CSE result page size; pagination advances by it.
const pageSize = 10

// Client defines the search operations.
type Client interface {
	// Search runs the query and returns up to maxResults items.
	Search(ctx context.Context, query string, maxResults int, opts ...SearchOption) ([]Item, error)
}

// Item is a single search result.
type Item struct {
	Title        string `json:"title"`
	Link         string `json:"link"`
	Snippet      string `json:"snippet"`
	FormattedURL string `json:"formattedUrl"`
}

type searchResponse struct {
	Items []Item `json:"items"`
}

// SearchOption configures a search request.
type SearchOption func(*searchOpts)

type searchOpts struct {
	site string
}

// WithSiteRestrict prefixes the query with a site: filter unless the query
// already carries one.
func WithSiteRestrict(domain string) SearchOption {
	return func(o *searchOpts) {
		o.site = domain
	}
}

// Option configures the CSE client.
type Option func(*httpClient)

// WithBaseURL sets a custom base URL (for testing).
func WithBaseURL(u string) Option {
	return func(c *httpClient) {
		c.baseURL = u
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *httpClient) {
		c.http = hc
	}
}

type httpClient struct {
	key     string
	cx      string
	baseURL string
	http    *http.Client
}

// NewClient creates a Programmable Search client for the given API key and
// engine ID.
func NewClient(key, cx string, opts ...Option) Client {
	c := &httpClient{
		key:     key,
		cx:      cx,
		baseURL: "https://www.googleapis.com/customsearch/v1",
		http: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// retryableStatusCode returns true if the HTTP status code should trigger a retry.
func retryableStatusCode(code int) bool {
	return code == http.StatusTooManyRequests ||
		code == http.StatusInternalServerError ||
		code == http.StatusBadGateway ||
		code == http.StatusServiceUnavailable
}

// retryDo executes a request with exponential backoff on transient failures.
func (c *httpClient) retryDo(ctx context.Context, req *http.Request) ([]byte, int, error) {
	const maxAttempts = 3
	backoff := 1 * time.Second

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		resp, err := c.http.Do(req.Clone(ctx))
		if err != nil {
			lastErr = err
			if attempt < maxAttempts {
				select {
				case <-ctx.Done():
					return nil, 0, ctx.Err()
				case <-time.After(backoff):
				}
				backoff *= 2
				continue
			}
			return nil, 0, lastErr
		}

		body, readErr := io.ReadAll(resp.Body)
		_ = resp.Body.Close()
		if readErr != nil {
			return nil, resp.StatusCode, eris.Wrap(readErr, "cse: read response body")
		}

		if retryableStatusCode(resp.StatusCode) && attempt < maxAttempts {
			lastErr = eris.Errorf("cse: status %d: %s", resp.StatusCode, string(body))
			select {
			case <-ctx.Done():
				return nil, 0, ctx.Err()
			case <-time.After(backoff):
			}
			backoff *= 2
			continue
		}

		return body, resp.StatusCode, nil
	}

	return nil, 0, lastErr
}

func (c *httpClient) Search(ctx context.Context, query string, maxResults int, opts ...SearchOption) ([]Item, error) {
	var o searchOpts
	for _, opt := range opts {
		opt(&o)
	}

	q := strings.TrimSpace(query)
	if o.site != "" && !strings.Contains(q, "site:") {
		q = "site:" + o.site + " " + q
	}

	var items []Item
	for start := 1; len(items) < maxResults; start += pageSize {
		params := url.Values{}
		params.Set("key", c.key)
		params.Set("cx", c.cx)
		params.Set("q", q)
		params.Set("start", strconv.Itoa(start))

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
		if err != nil {
			return nil, eris.Wrap(err, "cse: create request")
		}

		body, statusCode, err := c.retryDo(ctx, req)
		if err != nil {
			return nil, eris.Wrap(err, "cse: request failed")
		}
		if statusCode != http.StatusOK {
			return nil, eris.Errorf("cse: unexpected status %d: %s", statusCode, string(body))
		}

		var page searchResponse
		if err := json.Unmarshal(body, &page); err != nil {
			return nil, eris.Wrap(err, "cse: decode response")
		}
		if len(page.Items) == 0 {
			break
		}
		items = append(items, page.Items...)
	}

	if len(items) > maxResults {
		items = items[:maxResults]
	}
	return items, nil
}
