// Package hubspot provides a client for the HubSpot CRM v3 REST API. It is
// the outbound collaborator that receives the pipeline's export table; the
// core never talks to it directly.
package hubspot

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"golang.org/x/time/rate"
)

// Contact mirrors the CRM contact properties the export schema produces.
type Contact struct {
	Company        string `json:"company"`
	FirstName      string `json:"firstname"`
	LastName       string `json:"lastname"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	Website        string `json:"website"`
	City           string `json:"city"`
	State          string `json:"state"`
	Country        string `json:"country"`
	JobTitle       string `json:"jobtitle"`
	Industry       string `json:"industry"`
	LifecycleStage string `json:"lifecyclestage"`
	LeadSource     string `json:"lead_source"`
	PriorityRegion string `json:"priority_region"`
	CompetitorFlag string `json:"competitor_flag"`
	LeadScore      int    `json:"lead_score"`
	Notes          string `json:"notes"`
}

// SyncResult summarizes an upsert batch.
type SyncResult struct {
	ContactsCreated  int `json:"contacts_created"`
	ContactsUpdated  int `json:"contacts_updated"`
	CompaniesCreated int `json:"companies_created"`
}

// Client defines the CRM sync operations.
type Client interface {
	// EnsureCompany finds a company by domain or creates it, returning its ID.
	EnsureCompany(ctx context.Context, domain, name string) (string, error)
	// UpsertContact creates or updates a contact (matched by email) and
	// associates it with companyID when non-empty. Returns the contact ID
	// and whether it was newly created.
	UpsertContact(ctx context.Context, c Contact, companyID string) (string, bool, error)
	// SyncAll pushes a batch of contacts, resolving companies as it goes.
	SyncAll(ctx context.Context, contacts []Contact) (*SyncResult, error)
}

// Option configures the HubSpot client.
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

// WithRateLimit overrides the default request pacing.
func WithRateLimit(perSec float64) Option {
	return func(c *httpClient) {
		c.limiter = rate.NewLimiter(rate.Limit(perSec), 1)
	}
}

type httpClient struct {
	token   string
	baseURL string
	http    *http.Client
	limiter *rate.Limiter
}

// NewClient creates a HubSpot client for a private-app token. Requests are
// paced at 5/s by default to stay inside HubSpot's burst limits.
func NewClient(token string, opts ...Option) Client {
	c := &httpClient{
		token:   token,
		baseURL: "https://api.hubapi.com",
		http: &http.Client{
			Timeout: 30 * time.Second,
		},
		limiter: rate.NewLimiter(rate.Limit(5), 1),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// do executes one paced, authenticated request and returns body + status.
func (c *httpClient) do(ctx context.Context, method, path string, query url.Values, payload any) ([]byte, int, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, 0, eris.Wrap(err, "hubspot: rate limit wait")
	}

	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return nil, 0, eris.Wrap(err, "hubspot: encode payload")
		}
		body = bytes.NewReader(raw)
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, 0, eris.Wrap(err, "hubspot: create request")
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, 0, eris.Wrap(err, "hubspot: request failed")
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, eris.Wrap(err, "hubspot: read response")
	}
	return raw, resp.StatusCode, nil
}

// Domain extracts the bare domain from a website value for company lookup.
func Domain(website string) string {
	w := strings.TrimSpace(website)
	w = strings.TrimPrefix(w, "http://")
	w = strings.TrimPrefix(w, "https://")
	if i := strings.Index(w, "/"); i >= 0 {
		w = w[:i]
	}
	return w
}
