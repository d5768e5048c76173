// Package geo resolves visitor IP addresses to a coarse location using
// the ipapi.co JSON endpoint. Lookups are best effort; callers should
// treat a zero Location as "unknown".
package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

const defaultBaseURL = "https://ipapi.co"

// Location is the subset of the ipapi.co response the audit trail keeps.
type Location struct {
	IP      string `json:"ip"`
	City    string `json:"city"`
	Region  string `json:"region"`
	Country string `json:"country_name"`
}

// Client queries the ipapi.co geolocation API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *slog.Logger
}

// NewClient creates a geolocation client with a short request timeout so
// a slow upstream never delays request handling.
func NewClient(logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 3 * time.Second},
		baseURL:    defaultBaseURL,
		logger:     logger,
	}
}

// Lookup resolves the given IP. An empty ip resolves the caller's own
// address, matching the upstream API behavior.
func (c *Client) Lookup(ctx context.Context, ip string) (Location, error) {
	url := c.baseURL + "/json/"
	if ip != "" {
		url = fmt.Sprintf("%s/%s/json/", c.baseURL, ip)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Location{}, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Location{}, fmt.Errorf("geo lookup failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Location{}, fmt.Errorf("geo lookup returned status %d", resp.StatusCode)
	}

	var loc Location
	if err := json.NewDecoder(resp.Body).Decode(&loc); err != nil {
		return Location{}, fmt.Errorf("geo lookup decode failed: %w", err)
	}
	return loc, nil
}
