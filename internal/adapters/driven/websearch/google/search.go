// Package google implements the web search port over the Google Custom
// Search JSON API.
package google

import (
	"context"
	"fmt"

	"golang.org/x/time/rate"
	customsearch "google.golang.org/api/customsearch/v1"
	"google.golang.org/api/option"

	"github.com/ryukaizen/marai/internal/core/ports/driven"
)

// Ensure Client implements the interface.
var _ driven.WebSearcher = (*Client)(nil)

// maxResultsPerQuery is the API's page-size ceiling; requests are capped to
// a small count well below it anyway.
const maxResultsPerQuery = 10

// Client searches the web through a Custom Search Engine. Requests are rate
// limited to stay polite on repeated fallback queries.
type Client struct {
	svc      *customsearch.Service
	engineID string
	limiter  *rate.Limiter
}

// Config holds the Custom Search credentials and rate limit.
type Config struct {
	// APIKey authenticates against the Custom Search JSON API.
	APIKey string

	// EngineID is the Programmable Search Engine identifier (cx).
	EngineID string

	// RequestsPerSecond is the sustained query rate. Zero means 1/s.
	RequestsPerSecond float64
}

// New creates a Custom Search client.
func New(ctx context.Context, cfg Config) (*Client, error) {
	if cfg.APIKey == "" || cfg.EngineID == "" {
		return nil, fmt.Errorf("google search: api key and engine id are required")
	}
	svc, err := customsearch.NewService(ctx, option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, fmt.Errorf("google search: %w", err)
	}
	rps := cfg.RequestsPerSecond
	if rps <= 0 {
		rps = 1.0
	}
	return &Client{
		svc:      svc,
		engineID: cfg.EngineID,
		limiter:  rate.NewLimiter(rate.Limit(rps), 1),
	}, nil
}

// Search runs the query and returns up to limit result URLs in rank order.
func (c *Client) Search(ctx context.Context, query string, limit int) ([]string, error) {
	if limit <= 0 || limit > maxResultsPerQuery {
		limit = maxResultsPerQuery
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	resp, err := c.svc.Cse.List().
		Q(query).
		Cx(c.engineID).
		Num(int64(limit)).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("google search: %w", err)
	}

	urls := make([]string, 0, len(resp.Items))
	for _, item := range resp.Items {
		if item.Link != "" {
			urls = append(urls, item.Link)
		}
	}
	return urls, nil
}
