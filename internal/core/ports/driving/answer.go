package driving

import "context"

// AnswerService answers a natural-language query from the local corpus,
// falling back to the web when the local match is judged insufficient.
type AnswerService interface {
	// Answer returns non-empty text for every recoverable condition; the
	// fixed apology stands in for any fallback failure. An error is
	// returned only for setup failures (unreadable or empty corpus).
	Answer(ctx context.Context, query string) (string, error)
}
