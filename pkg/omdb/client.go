// Package omdb provides a client for the OMDB movie metadata API.
package omdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const defaultBaseURL = "https://www.omdbapi.com/"

// Sentinel errors for OMDB API responses.
var (
	ErrNotFound      = errors.New("title not found")
	ErrMissingAPIKey = errors.New("omdb api key is not configured")
	ErrInvalidAPIKey = errors.New("unauthorized: invalid api key")
	ErrRateLimited   = errors.New("rate limited: too many requests")
)

// Client is an OMDB API client.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	log        *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL sets a custom base URL (for testing).
func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.baseURL = url
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithTimeout sets the request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithLogger sets a logger for debug output.
func WithLogger(log *slog.Logger) Option {
	return func(c *Client) {
		c.log = log.With("component", "omdb")
	}
}

// New creates a new OMDB client.
func New(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FetchByID fetches the full raw record for an IMDB-style identifier.
func (c *Client) FetchByID(ctx context.Context, id string) (*RawMovie, error) {
	start := time.Now()

	params := url.Values{}
	params.Set("i", id)
	params.Set("plot", "full")

	var raw RawMovie
	if err := c.get(ctx, params, &raw); err != nil {
		return nil, err
	}

	if raw.Response == "False" {
		if c.log != nil {
			c.log.Debug("title not found", "id", id, "reason", raw.Error)
		}
		return nil, ErrNotFound
	}

	if c.log != nil {
		c.log.Debug("fetched title", "id", id, "title", raw.Title, "duration_ms", time.Since(start).Milliseconds())
	}

	return &raw, nil
}

// Search fetches one ranked page of lightweight results for a query.
func (c *Client) Search(ctx context.Context, query string, page int) (*SearchPage, error) {
	start := time.Now()

	if page < 1 {
		page = 1
	}

	params := url.Values{}
	params.Set("s", query)
	params.Set("page", strconv.Itoa(page))
	params.Set("type", "movie")

	var resp searchResponse
	if err := c.get(ctx, params, &resp); err != nil {
		return nil, err
	}

	if resp.Response == "False" {
		if c.log != nil {
			c.log.Debug("no search matches", "query", query, "reason", resp.Error)
		}
		return nil, ErrNotFound
	}

	// OMDB reports the total as a string; fall back to the page length.
	total, err := strconv.Atoi(resp.TotalResults)
	if err != nil {
		total = len(resp.Search)
	}

	if c.log != nil {
		c.log.Debug("search completed", "query", query, "page", page, "results", len(resp.Search), "total", total, "duration_ms", time.Since(start).Milliseconds())
	}

	return &SearchPage{Items: resp.Search, TotalResults: total}, nil
}

func (c *Client) get(ctx context.Context, params url.Values, out any) error {
	if c.apiKey == "" {
		return ErrMissingAPIKey
	}
	params.Set("apikey", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if err := checkResponse(resp); err != nil {
		return err
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// checkResponse maps HTTP status codes to sentinel errors.
func checkResponse(resp *http.Response) error {
	switch resp.StatusCode {
	case http.StatusOK:
		return nil
	case http.StatusUnauthorized:
		return ErrInvalidAPIKey
	case http.StatusTooManyRequests:
		return ErrRateLimited
	default:
		return fmt.Errorf("OMDB API error: %s", resp.Status)
	}
}
