package spacex

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/five82/liftoff/internal/launches"
)

// LaunchFetcher defines the interface for reading the launch dataset.
// This interface is implemented by *Client and can be used for testing.
type LaunchFetcher interface {
	FetchLaunches(ctx context.Context) ([]launches.Launch, error)
}

// Ensure Client implements LaunchFetcher at compile time.
var _ LaunchFetcher = (*Client)(nil)

// DefaultEndpoint is the public v3 launches list.
const DefaultEndpoint = "https://api.spacexdata.com/v3/launches"

// Version is reported in the User-Agent header.
var Version = "dev"

// Client reads the launch list from the SpaceX API.
type Client struct {
	endpoint  *url.URL
	http      *http.Client
	userAgent string
}

// NewClient builds a Client for the given launches endpoint. An empty
// endpoint uses DefaultEndpoint. The client sets no timeout; callers cancel
// through the request context.
func NewClient(endpoint string) (*Client, error) {
	u, err := parseEndpoint(endpoint)
	if err != nil {
		return nil, err
	}
	return &Client{
		endpoint:  u,
		http:      &http.Client{},
		userAgent: "liftoff/" + Version,
	}, nil
}

// Endpoint returns the resolved endpoint URL.
func (c *Client) Endpoint() string {
	if c == nil || c.endpoint == nil {
		return ""
	}
	return c.endpoint.String()
}

// FetchLaunches performs one GET of the launch list and normalizes every record.
func (c *Client) FetchLaunches(ctx context.Context) ([]launches.Launch, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	var payload []launchPayload
	if err := c.do(ctx, &payload); err != nil {
		return nil, err
	}
	out := make([]launches.Launch, 0, len(payload))
	for _, p := range payload {
		out = append(out, p.normalize())
	}
	return out, nil
}

func (c *Client) do(ctx context.Context, dest any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint.String(), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("api %s returned status %d", c.endpoint.Path, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func parseEndpoint(endpoint string) (*url.URL, error) {
	trimmed := strings.TrimSpace(endpoint)
	if trimmed == "" {
		trimmed = DefaultEndpoint
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "https://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse endpoint %q: %w", endpoint, err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("parse endpoint %q: missing host", endpoint)
	}
	u.Fragment = ""
	return u, nil
}
