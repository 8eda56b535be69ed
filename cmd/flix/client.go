package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Client wraps HTTP calls to the movieflix server.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// NewClient creates a new movieflix API client.
func NewClient(serverURL, token string) *Client {
	return &Client{
		baseURL: serverURL,
		token:   token,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (c *Client) do(method, path string, body any, result any) error {
	var reader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal error: %w", err)
		}
		reader = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequest(method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("request creation failed: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("server error %d: %s", resp.StatusCode, string(respBody))
	}

	if result != nil {
		return json.NewDecoder(resp.Body).Decode(result)
	}
	return nil
}

func (c *Client) get(path string, result any) error {
	return c.do(http.MethodGet, path, nil, result)
}

// API response types (mirror server types)

type MovieResponse struct {
	ID             string   `json:"id"`
	IMDBID         string   `json:"imdbId"`
	Title          string   `json:"title"`
	Year           *int     `json:"year,omitempty"`
	Rated          *string  `json:"rated,omitempty"`
	RuntimeMinutes *int     `json:"runtimeMinutes,omitempty"`
	Genres         []string `json:"genres"`
	Directors      []string `json:"directors"`
	Actors         []string `json:"actors"`
	Plot           *string  `json:"plot,omitempty"`
	IMDBRating     *float64 `json:"imdbRating,omitempty"`
	MediaType      string   `json:"mediaType"`
	LastFetchedAt  string   `json:"lastFetchedAt"`
}

type SearchResponse struct {
	Items        []MovieResponse `json:"items"`
	Page         int             `json:"page"`
	Limit        int             `json:"limit"`
	Total        int             `json:"total"`
	TotalPages   int             `json:"totalPages"`
	TotalResults int             `json:"totalResults"`
}

type CachedSearchResponse struct {
	Items []MovieResponse `json:"items"`
	Total int             `json:"total"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

type RefreshResponse struct {
	Refreshed int `json:"refreshed"`
}

type StatusResponse struct {
	Status       string `json:"status"`
	Version      string `json:"version"`
	CachedMovies int    `json:"cachedMovies"`
}

type GenreStat struct {
	Genre         string   `json:"genre"`
	Count         int      `json:"count"`
	AverageRating *float64 `json:"averageRating,omitempty"`
}

type YearStat struct {
	Year           int      `json:"year"`
	Count          int      `json:"count"`
	AverageRuntime *float64 `json:"averageRuntime,omitempty"`
}

type StatsResponse struct {
	TotalMovies   int         `json:"totalMovies"`
	AverageRating *float64    `json:"averageRating,omitempty"`
	Genres        []GenreStat `json:"genres"`
	Years         []YearStat  `json:"years"`
}

// API methods

func (c *Client) Search(query string, page, limit int, sort, genre, year string) (*SearchResponse, error) {
	params := url.Values{}
	params.Set("q", query)
	if page > 0 {
		params.Set("page", fmt.Sprint(page))
	}
	if limit > 0 {
		params.Set("limit", fmt.Sprint(limit))
	}
	if sort != "" {
		params.Set("sort", sort)
	}
	if genre != "" {
		params.Set("genre", genre)
	}
	if year != "" {
		params.Set("year", year)
	}

	var resp SearchResponse
	if err := c.get("/api/v1/movies?"+params.Encode(), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) SearchCached(query string, limit int) (*CachedSearchResponse, error) {
	params := url.Values{}
	params.Set("q", query)
	if limit > 0 {
		params.Set("limit", fmt.Sprint(limit))
	}

	var resp CachedSearchResponse
	if err := c.get("/api/v1/movies/cached?"+params.Encode(), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) Movie(id string) (*MovieResponse, error) {
	var resp MovieResponse
	if err := c.get("/api/v1/movies/"+url.PathEscape(id), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) Login(email, password string) (*LoginResponse, error) {
	req := map[string]string{"email": email, "password": password}
	var resp LoginResponse
	if err := c.do(http.MethodPost, "/api/v1/auth/login", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) RefreshCache() (*RefreshResponse, error) {
	var resp RefreshResponse
	if err := c.do(http.MethodPost, "/api/v1/admin/cache/refresh", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) RemoveMovie(id string) error {
	return c.do(http.MethodDelete, "/api/v1/admin/movies/"+url.PathEscape(id), nil, nil)
}

func (c *Client) Status() (*StatusResponse, error) {
	var resp StatusResponse
	if err := c.get("/api/v1/status", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) Stats() (*StatsResponse, error) {
	var resp StatsResponse
	if err := c.get("/api/v1/stats", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
