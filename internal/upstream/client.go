// Package upstream contains the HTTP client for the trips feed.
// No business logic lives here, only the fetch, status check, and decode.
package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/antmarasia/MyRides/internal/domain"
)

// DefaultTripsURL is the endpoint the original mobile client shipped with.
const DefaultTripsURL = "https://storage.googleapis.com/hsd-interview-resources/mobile_coding_challenge_data.json"

// Client fetches the trip list from the upstream JSON endpoint.
type Client struct {
	tripsURL   string
	httpClient *http.Client
}

// NewClient constructs a Client for the given trips URL.
// A zero timeout falls back to 10 seconds.
func NewClient(tripsURL string, timeout time.Duration) *Client {
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		tripsURL: tripsURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// FetchTrips performs a single GET of the trips feed and decodes the
// {"trips": [...]} wrapper.
//
// Error kinds: domain.ErrInvalidURL when the target cannot be constructed,
// domain.ErrBadRequest for any non-2xx status, and a wrapped decode error
// when the body does not match the expected shape.
func (c *Client) FetchTrips(ctx context.Context) ([]domain.Trip, error) {
	if _, err := url.ParseRequestURI(c.tripsURL); err != nil {
		return nil, fmt.Errorf("upstream.Client.FetchTrips: %q: %w", c.tripsURL, domain.ErrInvalidURL)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.tripsURL, nil)
	if err != nil {
		return nil, fmt.Errorf("upstream.Client.FetchTrips: build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("upstream.Client.FetchTrips: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("upstream.Client.FetchTrips: status %d: %w", resp.StatusCode, domain.ErrBadRequest)
	}

	var wrapper domain.TripResponse
	if err := json.NewDecoder(resp.Body).Decode(&wrapper); err != nil {
		return nil, fmt.Errorf("upstream.Client.FetchTrips: decode: %w", err)
	}

	return wrapper.Trips, nil
}
