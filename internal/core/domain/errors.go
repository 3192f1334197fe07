package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrEmptyCorpus indicates the corpus directory holds no documents, so
	// no index can be built. Fatal to the current request.
	ErrEmptyCorpus = errors.New("empty corpus")

	// ErrNoResults indicates the web search returned no result URLs.
	ErrNoResults = errors.New("no search results")

	// ErrFetchFailed indicates the result page could not be retrieved.
	ErrFetchFailed = errors.New("page fetch failed")

	// ErrParseFailed indicates the fetched page yielded no readable text.
	ErrParseFailed = errors.New("page parse failed")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrSearchUnavailable indicates no web search client is configured.
	// The fallback path degrades to the apology response.
	ErrSearchUnavailable = errors.New("web search unavailable")
)
