package hh

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/andrei/vacancy-tracker/internal/listing"
)

// Defaults for the search client. The page budget caps worst-case latency
// of a refresh; the upstream serves 50 items per page at most.
const (
	DefaultBaseURL   = "https://api.hh.ru/vacancies"
	DefaultTimeout   = 10 * time.Second
	DefaultPerPage   = 50
	DefaultMaxPages  = 5
	DefaultUserAgent = "vacancy-tracker/1.0"
)

// Options configures the search client.
type Options struct {
	BaseURL   string
	Timeout   time.Duration
	PerPage   int
	MaxPages  int
	UserAgent string
}

// DefaultOptions returns sensible defaults for the public API.
func DefaultOptions() *Options {
	return &Options{
		BaseURL:   DefaultBaseURL,
		Timeout:   DefaultTimeout,
		PerPage:   DefaultPerPage,
		MaxPages:  DefaultMaxPages,
		UserAgent: DefaultUserAgent,
	}
}

// Client queries the vacancy search API.
type Client struct {
	opts   Options
	client *http.Client
}

// NewClient constructs a client with a shared HTTP client. Nil or partial
// options fall back to defaults field by field.
func NewClient(opts *Options) *Client {
	o := *DefaultOptions()
	if opts != nil {
		if opts.BaseURL != "" {
			o.BaseURL = opts.BaseURL
		}
		if opts.Timeout > 0 {
			o.Timeout = opts.Timeout
		}
		if opts.PerPage > 0 {
			o.PerPage = opts.PerPage
		}
		if opts.MaxPages > 0 {
			o.MaxPages = opts.MaxPages
		}
		if opts.UserAgent != "" {
			o.UserAgent = opts.UserAgent
		}
	}
	return &Client{
		opts:   o,
		client: &http.Client{Timeout: o.Timeout},
	}
}

// fetchPage retrieves one page of search results for a sub-query.
func (c *Client) fetchPage(ctx context.Context, q SubQuery, dateFrom string, page int) (*apiResponse, error) {
	params := url.Values{}
	params.Set("text", q.Text)
	params.Set("per_page", strconv.Itoa(c.opts.PerPage))
	params.Set("page", strconv.Itoa(page))
	params.Set("date_from", dateFrom)
	for _, area := range q.Areas {
		params.Add("area", strconv.Itoa(area))
	}
	if q.Schedule != "" {
		params.Set("schedule", q.Schedule)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.opts.BaseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.opts.UserAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http GET: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("upstream returned %d", resp.StatusCode)
	}

	var apiResp apiResponse
	if err := json.Unmarshal(body, &apiResp); err != nil {
		return nil, fmt.Errorf("json unmarshal: %w", err)
	}
	return &apiResp, nil
}

// runSubQuery paginates one sub-query up to the page budget, normalizing
// items as they arrive. A page failure returns whatever was accumulated so
// far together with the error.
func (c *Client) runSubQuery(ctx context.Context, q SubQuery, dateFrom string, loadedAt time.Time) ([]listing.Listing, error) {
	var results []listing.Listing
	for page := 0; page < c.opts.MaxPages; page++ {
		resp, err := c.fetchPage(ctx, q, dateFrom, page)
		if err != nil {
			return results, fmt.Errorf("page %d: %w", page, err)
		}
		for _, item := range resp.Items {
			results = append(results, normalizeItem(item, loadedAt))
		}
		if page >= resp.Pages-1 {
			break
		}
	}
	return results, nil
}
