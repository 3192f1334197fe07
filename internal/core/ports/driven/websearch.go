package driven

import "context"

// WebSearcher issues a web search and returns result URLs in rank order.
// Implementations cap the result count at the requested limit.
type WebSearcher interface {
	Search(ctx context.Context, query string, limit int) ([]string, error)
}

// ArticleFetcher retrieves a page and extracts the visible text of its
// paragraph-level elements, concatenated in document order.
type ArticleFetcher interface {
	FetchArticle(ctx context.Context, url string) (string, error)
}
