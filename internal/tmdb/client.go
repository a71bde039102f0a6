package tmdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const (
	defaultBaseURL      = "https://api.themoviedb.org"
	defaultImageBaseURL = "https://image.tmdb.org/t/p/w500"
	defaultCacheTTL     = 24 * time.Hour
)

// ErrNotFound is returned when the requested series or season doesn't exist.
var ErrNotFound = errors.New("not found")

// Client is a TMDB API client.
type Client struct {
	apiKey       string
	language     string
	baseURL      string
	imageBaseURL string
	httpClient   *http.Client
	cache        *cache
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL sets a custom API base URL (for testing).
func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.baseURL = url
	}
}

// WithImageBaseURL sets a custom image base URL (for testing).
func WithImageBaseURL(url string) Option {
	return func(c *Client) {
		c.imageBaseURL = url
	}
}

// WithCacheTTL sets the season cache TTL.
func WithCacheTTL(ttl time.Duration) Option {
	return func(c *Client) {
		c.cache = newCache(ttl)
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// NewClient creates a new TMDB client. language is passed to every request
// so titles come back localized.
func NewClient(apiKey, language string, opts ...Option) *Client {
	c := &Client{
		apiKey:       apiKey,
		language:     language,
		baseURL:      defaultBaseURL,
		imageBaseURL: defaultImageBaseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		cache: newCache(defaultCacheTTL),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SearchTV searches for TV series by name.
func (c *Client) SearchTV(ctx context.Context, query string) ([]TVResult, error) {
	var resp searchTVResponse
	if err := c.get(ctx, "/3/search/tv", url.Values{"query": {query}}, &resp); err != nil {
		return nil, err
	}
	return resp.Results, nil
}

// SearchMovie searches for movies by title.
func (c *Client) SearchMovie(ctx context.Context, query string) ([]MovieResult, error) {
	var resp searchMovieResponse
	if err := c.get(ctx, "/3/search/movie", url.Values{"query": {query}}, &resp); err != nil {
		return nil, err
	}
	return resp.Results, nil
}

// SeriesDetail fetches a series by ID. Unlike search results, the detail
// payload carries number_of_seasons, which selection needs.
func (c *Client) SeriesDetail(ctx context.Context, seriesID int64) (*TVResult, error) {
	var resp TVResult
	if err := c.get(ctx, fmt.Sprintf("/3/tv/%d", seriesID), nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// MovieDetail fetches a movie by ID.
func (c *Client) MovieDetail(ctx context.Context, movieID int64) (*MovieResult, error) {
	var resp MovieResult
	if err := c.get(ctx, fmt.Sprintf("/3/movie/%d", movieID), nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// SeasonEpisodes fetches the episode number -> title map for one season.
// Results are cached.
func (c *Client) SeasonEpisodes(ctx context.Context, seriesID int64, season int) (map[int]string, error) {
	if episodes, ok := c.cache.get(seriesID, season); ok {
		return episodes, nil
	}

	var resp seasonResponse
	if err := c.get(ctx, fmt.Sprintf("/3/tv/%d/season/%d", seriesID, season), nil, &resp); err != nil {
		return nil, err
	}

	episodes := make(map[int]string, len(resp.Episodes))
	for _, ep := range resp.Episodes {
		episodes[ep.EpisodeNumber] = ep.Name
	}

	c.cache.set(seriesID, season, episodes)
	return episodes, nil
}

// get executes a GET request against path and decodes the JSON body into v.
func (c *Client) get(ctx context.Context, path string, query url.Values, v any) error {
	if query == nil {
		query = url.Values{}
	}
	query.Set("api_key", c.apiKey)
	query.Set("language", c.language)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+query.Encode(), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("TMDB API error: %s", resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
