// Package ergast fetches the race calendar from an Ergast-compatible JSON feed
// (ergast.com, api.jolpi.ca).
//
// The feed nests the race array as MRData -> RaceTable -> Races. Unknown
// fields are ignored; a race missing a required field fails the whole fetch.
// Requests go through a token bucket limiter.
package ergast

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/01speed1/skg-bot/internal/race"
)

var (
	// ErrFetch wraps transport failures and non-200 responses.
	ErrFetch = errors.New("fetch race schedule")
	// ErrMalformed wraps bodies that do not decode into a complete calendar.
	ErrMalformed = errors.New("malformed race schedule")
)

// Client is the HTTP client for the race schedule feed.
type Client struct {
	httpClient *http.Client
	endpoint   string
	limiter    *rate.Limiter
	logger     *slog.Logger
}

// Options tunes a Client. Zero values fall back to defaults.
type Options struct {
	RequestsPerMinute int
	Timeout           time.Duration
	HTTPClient        *http.Client
}

// NewClient creates a feed client with rate limiting.
func NewClient(endpoint string, opts Options, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	if opts.RequestsPerMinute <= 0 {
		opts.RequestsPerMinute = 30
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 30 * time.Second
	}
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: opts.Timeout}
	}
	rps := float64(opts.RequestsPerMinute) / 60.0
	return &Client{
		httpClient: httpClient,
		endpoint:   endpoint,
		limiter:    rate.NewLimiter(rate.Limit(rps), 1),
		logger:     logger,
	}
}

// FetchRaces performs one GET against the feed and returns its races in feed
// order.
func (c *Client) FetchRaces(ctx context.Context) ([]race.Race, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: rate limit wait: %v", ErrFetch, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: create request: %v", ErrFetch, err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: http request: %w", ErrFetch, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read response body: %w", ErrFetch, err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: feed returned %d: %s", ErrFetch, resp.StatusCode, truncate(body, 200))
	}

	races, err := Decode(body)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetch, err)
	}

	c.logger.Debug("Fetched race schedule",
		"races", len(races), "duration", time.Since(start).Round(time.Millisecond))
	return races, nil
}

// truncate returns a truncated string representation for error messages.
func truncate(b []byte, maxLen int) string {
	if len(b) <= maxLen {
		return string(b)
	}
	return string(b[:maxLen]) + "..."
}
