// Package wiki implements the article fetching port: plain HTTP retrieval
// plus paragraph-level text extraction for encyclopedia pages.
package wiki

import (
	"context"
	"fmt"
	"html"
	"io"
	"net/http"
	"regexp"
	"time"

	"github.com/ryukaizen/marai/internal/core/domain"
	"github.com/ryukaizen/marai/internal/core/ports/driven"
)

// Ensure Fetcher implements the interface.
var _ driven.ArticleFetcher = (*Fetcher)(nil)

const (
	defaultTimeout = 20 * time.Second
	userAgent      = "marai/1.0 (retrieval bot)"

	// maxBodyBytes caps the page read; encyclopedia articles fit easily.
	maxBodyBytes = 4 << 20
)

// Pre-compiled regular expressions for paragraph extraction.
var (
	scriptTag    = regexp.MustCompile(`(?is)<script[^>]*>.*?</script>`)
	styleTag     = regexp.MustCompile(`(?is)<style[^>]*>.*?</style>`)
	paragraphTag = regexp.MustCompile(`(?is)<p[^>]*>(.*?)</p>`)
	allTags      = regexp.MustCompile(`<[^>]+>`)
)

// Fetcher downloads a page and extracts its paragraph text.
type Fetcher struct {
	client *http.Client
}

// New creates a fetcher with the given timeout; zero uses the default.
func New(timeout time.Duration) *Fetcher {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Fetcher{client: &http.Client{Timeout: timeout}}
}

// FetchArticle retrieves the page and returns the visible text of every
// paragraph element concatenated in document order, with no separators
// added between paragraphs. Network errors map to ErrFetchFailed; a page
// without any paragraph text maps to ErrParseFailed.
func (f *Fetcher) FetchArticle(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrFetchFailed, err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrFetchFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: %s returned %s", domain.ErrFetchFailed, url, resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrFetchFailed, err)
	}

	article := extractParagraphs(string(body))
	if article == "" {
		return "", fmt.Errorf("%w: no paragraph text in %s", domain.ErrParseFailed, url)
	}
	return article, nil
}

// extractParagraphs pulls the inner text of every <p> element in order.
// Paragraph boundaries rely on whitespace already present in the source.
func extractParagraphs(page string) string {
	page = scriptTag.ReplaceAllString(page, "")
	page = styleTag.ReplaceAllString(page, "")

	var article string
	for _, match := range paragraphTag.FindAllStringSubmatch(page, -1) {
		inner := allTags.ReplaceAllString(match[1], "")
		article += html.UnescapeString(inner)
	}
	return article
}
