package retrieval

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Houeta/price-radar/internal/models"
)

// Client talks to the remote search/compare API.
type Client struct {
	log           *slog.Logger
	client        *http.Client
	baseURL       string
	searchTimeout time.Duration
	healthTimeout time.Duration
}

// NewClient creates a Client for the API rooted at baseURL.
func NewClient(log *slog.Logger, baseURL string, searchTimeout, healthTimeout time.Duration) *Client {
	return &Client{
		log:           log,
		client:        http.DefaultClient,
		baseURL:       strings.TrimRight(baseURL, "/"),
		searchTimeout: searchTimeout,
		healthTimeout: healthTimeout,
	}
}

// Search asks every requested platform for query.
func (c *Client) Search(ctx context.Context, query string, platforms []string) ([]models.PlatformBucket, error) {
	const opn = "retrieval.Client.Search"

	params := url.Values{}
	params.Set("q", query)
	params.Set("platforms", strings.Join(platforms, ","))

	var body searchResponse
	if err := c.getJSON(ctx, "/search", params, c.searchTimeout, &body); err != nil {
		return nil, fmt.Errorf("%s: %w", opn, err)
	}

	buckets := body.buckets(platforms)
	c.log.InfoContext(ctx, "Search response received", "op", opn, "query", query, "total", body.Total, "platforms", len(buckets))

	return buckets, nil
}

// Compare asks for the best offer of productName on every platform.
func (c *Client) Compare(ctx context.Context, productName string) ([]models.ComparisonRow, error) {
	const opn = "retrieval.Client.Compare"

	params := url.Values{}
	params.Set("q", productName)

	var body compareResponse
	if err := c.getJSON(ctx, "/compare", params, c.searchTimeout, &body); err != nil {
		return nil, fmt.Errorf("%s: %w", opn, err)
	}

	rows := make([]models.ComparisonRow, 0, len(body.Results))
	for _, p := range body.Results {
		if p.valid() {
			rows = append(rows, p.comparisonRow())
		}
	}

	return rows, nil
}

// Ping checks the API health endpoint with the short timeout.
func (c *Client) Ping(ctx context.Context) error {
	const opn = "retrieval.Client.Ping"

	var body map[string]any
	if err := c.getJSON(ctx, "/health", nil, c.healthTimeout, &body); err != nil {
		return fmt.Errorf("%s: %w", opn, err)
	}

	return nil
}

func (c *Client) getJSON(ctx context.Context, path string, params url.Values, timeout time.Duration, dst any) error {
	reqURL, err := url.Parse(c.baseURL + path)
	if err != nil {
		return fmt.Errorf("failed to parse destination URL %s: %w", c.baseURL+path, err)
	}
	if params != nil {
		reqURL.RawQuery = params.Encode()
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return fmt.Errorf("failed to create new request %s: %w", reqURL.String(), err)
	}
	req.Header.Add("Accept", "application/json")

	c.log.DebugContext(ctx, "Send request", "method", req.Method, "URL", req.URL)

	res, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to request %s: %w", reqURL.String(), err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return fmt.Errorf("status code error: [%d] %s", res.StatusCode, res.Status)
	}

	if err = json.NewDecoder(res.Body).Decode(dst); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}
