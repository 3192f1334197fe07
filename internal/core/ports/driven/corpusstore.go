package driven

import (
	"context"

	"github.com/ryukaizen/marai/internal/core/domain"
)

// CorpusStore persists corpus documents.
// Backed by a flat directory of UTF-8 text files.
type CorpusStore interface {
	// List reads every recognised document. The returned order is stable
	// across calls for an unchanged directory.
	List(ctx context.Context) (domain.Corpus, error)

	// Write creates or overwrites the document stored under the sanitized
	// form of name. Partial writes on crash are an accepted risk.
	Write(ctx context.Context, name, body string) error
}
