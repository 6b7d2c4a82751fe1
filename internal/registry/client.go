// Package registry is a small client for the company-registry REST API.
//
// Each lookup is a single authenticated GET scoped to one company number.
// The client does not retry, throttle or cache; callers decide how to treat
// failures.
package registry

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"go.uber.org/zap"
)

// DefaultBaseURL is the public registry API.
const DefaultBaseURL = "https://api.company-information.service.gov.uk"

// Client performs registry lookups.
type Client struct {
	baseURL    string
	apiKey     string
	userAgent  string
	httpClient *http.Client
	logger     *zap.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(c *Client) { c.userAgent = ua }
}

// WithLogger sets the logger used for request tracing.
func WithLogger(l *zap.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// New creates a Client. The API key is sent as the basic-auth username with
// an empty password.
func New(baseURL, apiKey string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{},
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Charges returns every charge registered against the company. A response
// without an items list yields an empty slice.
func (c *Client) Charges(ctx context.Context, number string) ([]Charge, error) {
	var list chargeList
	if err := c.get(ctx, EndpointCharges, number, "/charges", &list); err != nil {
		return nil, err
	}
	if list.Items == nil {
		return []Charge{}, nil
	}
	return list.Items, nil
}

// Profile returns the company profile.
func (c *Client) Profile(ctx context.Context, number string) (CompanyProfile, error) {
	var p CompanyProfile
	if err := c.get(ctx, EndpointProfile, number, "", &p); err != nil {
		return CompanyProfile{}, err
	}
	return p, nil
}

// Officers returns the company's officers in registry order.
func (c *Client) Officers(ctx context.Context, number string) ([]Officer, error) {
	var list officerList
	if err := c.get(ctx, EndpointOfficers, number, "/officers", &list); err != nil {
		return nil, err
	}
	if list.Items == nil {
		return []Officer{}, nil
	}
	return list.Items, nil
}

func (c *Client) companyURL(number, suffix string) string {
	return c.baseURL + "/company/" + url.PathEscape(number) + suffix
}

func (c *Client) get(ctx context.Context, ep Endpoint, number, suffix string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.companyURL(number, suffix), nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.SetBasicAuth(c.apiKey, "")
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to fetch %s for company %s: %w", ep, number, err)
	}
	defer resp.Body.Close()

	c.logger.Debug("registry response",
		zap.String("endpoint", string(ep)),
		zap.String("company_number", number),
		zap.Int("status", resp.StatusCode))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))
		return &StatusError{Endpoint: ep, Number: number, StatusCode: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("failed to decode %s for company %s: %w", ep, number, err)
	}
	return nil
}
