package services

import (
	"context"
	"fmt"

	"github.com/ryukaizen/marai/internal/core/domain"
	"github.com/ryukaizen/marai/internal/core/ports/driven"
	"github.com/ryukaizen/marai/internal/logger"
	"github.com/ryukaizen/marai/internal/text"
)

// Fallback answers a query from the web when the local corpus comes up
// short: scoped search, first-result fetch, citation cleanup, truncation.
type Fallback struct {
	searcher   driven.WebSearcher
	fetcher    driven.ArticleFetcher
	site       string
	maxResults int
}

// NewFallback creates the web fallback. searcher may be nil when no search
// client is configured; Fetch then fails with ErrSearchUnavailable.
func NewFallback(searcher driven.WebSearcher, fetcher driven.ArticleFetcher, site string, maxResults int) *Fallback {
	return &Fallback{
		searcher:   searcher,
		fetcher:    fetcher,
		site:       site,
		maxResults: maxResults,
	}
}

// Fetch searches the scoped site for the query, extracts the first result's
// article text, and returns it truncated. Every failure mode carries a
// typed error so callers can tell no-results, fetch, and parse failures
// apart; all of them surface to the user as the apology string.
func (f *Fallback) Fetch(ctx context.Context, query string) (string, error) {
	if f.searcher == nil || f.fetcher == nil {
		return "", domain.ErrSearchUnavailable
	}

	scoped := fmt.Sprintf("%s site:%s", query, f.site)
	logger.Debug("Web search: %q", scoped)

	urls, err := f.searcher.Search(ctx, scoped, f.maxResults)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrFetchFailed, err)
	}
	if len(urls) == 0 {
		return "", domain.ErrNoResults
	}

	logger.Debug("Fetching %s", urls[0])
	article, err := f.fetcher.FetchArticle(ctx, urls[0])
	if err != nil {
		return "", err
	}

	answer := text.Truncate(text.CleanCitations(article), text.MaxAnswerChars)
	if answer == "" {
		return "", fmt.Errorf("%w: article reduced to nothing", domain.ErrParseFailed)
	}
	return answer, nil
}
