package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/mammidi-vikram/netflix/pkg/apperr"
)

// Movie is a catalog item relayed verbatim from the provider
type Movie struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Overview    string  `json:"overview"`
	PosterPath  string  `json:"poster_path"`
	ReleaseDate string  `json:"release_date"`
	VoteAverage float64 `json:"vote_average"`
}

type resultsPage struct {
	Results []Movie `json:"results"`
}

// TMDBClient is a thin pass-through to the movie metadata provider. One
// attempt per call, no retries; any failure collapses into a single
// upstream-unavailable outcome.
type TMDBClient struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewTMDBClient creates a new metadata provider client
func NewTMDBClient(baseURL, apiKey string, timeout time.Duration) *TMDBClient {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &TMDBClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		client: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

// CategoryLookup fetches a named category listing (popular, top_rated, ...)
func (c *TMDBClient) CategoryLookup(ctx context.Context, category string) ([]Movie, error) {
	return c.fetch(ctx, "/movie/"+url.PathEscape(category), nil)
}

// Search fetches movies matching a free-text query
func (c *TMDBClient) Search(ctx context.Context, query string) ([]Movie, error) {
	return c.fetch(ctx, "/search/movie", url.Values{"query": {query}})
}

func (c *TMDBClient) fetch(ctx context.Context, endpoint string, params url.Values) ([]Movie, error) {
	u, err := url.Parse(c.baseURL + endpoint)
	if err != nil {
		return nil, fmt.Errorf("invalid provider url: %w", err)
	}

	q := u.Query()
	q.Set("api_key", c.apiKey)
	for k, vs := range params {
		for _, v := range vs {
			q.Set(k, v)
		}
	}
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, apperr.Upstream(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apperr.Upstream(fmt.Errorf("provider returned %d", resp.StatusCode))
	}

	var page resultsPage
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return nil, apperr.Upstream(fmt.Errorf("malformed provider payload: %w", err))
	}

	if page.Results == nil {
		page.Results = []Movie{}
	}
	return page.Results, nil
}
