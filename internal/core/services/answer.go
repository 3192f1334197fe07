package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/ryukaizen/marai/internal/core/domain"
	"github.com/ryukaizen/marai/internal/core/ports/driven"
	"github.com/ryukaizen/marai/internal/core/ports/driving"
	"github.com/ryukaizen/marai/internal/index/tfidf"
	"github.com/ryukaizen/marai/internal/logger"
	"github.com/ryukaizen/marai/internal/text"
)

// Ensure Answerer implements the interface.
var _ driving.AnswerService = (*Answerer)(nil)

// Answerer is the retrieval orchestrator: rebuild index, try the local
// corpus, consult the gate, fall back to the web, persist what the web
// taught us.
type Answerer struct {
	store      driven.CorpusStore
	normalizer *text.Normalizer
	retriever  *Retriever
	gate       *Gate
	fallback   *Fallback
}

// NewAnswerer wires the orchestrator from its collaborators.
func NewAnswerer(
	store driven.CorpusStore,
	normalizer *text.Normalizer,
	retriever *Retriever,
	gate *Gate,
	fallback *Fallback,
) *Answerer {
	return &Answerer{
		store:      store,
		normalizer: normalizer,
		retriever:  retriever,
		gate:       gate,
		fallback:   fallback,
	}
}

// Answer processes one query end to end. The index is rebuilt from the
// on-disk corpus on every call, trading latency for freshness: an answer
// persisted a moment ago is found locally on the next identical query.
func (a *Answerer) Answer(ctx context.Context, query string) (string, error) {
	rid := uuid.NewString()[:8]
	logger.Section("Query " + rid)
	logger.Debug("[%s] Query: %q", rid, query)

	corpus, err := a.store.List(ctx)
	if err != nil {
		return "", fmt.Errorf("load corpus: %w", err)
	}
	logger.Debug("[%s] Corpus: %d documents", rid, len(corpus))

	index, err := a.buildIndex(corpus)
	if err != nil {
		return "", fmt.Errorf("build index: %w", err)
	}

	candidate := a.retriever.Search(query, corpus, index)
	if a.gate.IsAcceptable(query, candidate) {
		logger.Info("[%s] Answered from corpus document %s", rid, candidate.SourceName)
		return candidate.Text, nil
	}

	logger.Info("[%s] Local result insufficient or irrelevant, querying online sources", rid)
	answer, err := a.fallback.Fetch(ctx, query)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNoResults):
			logger.Info("[%s] Web search returned no results", rid)
		case errors.Is(err, domain.ErrParseFailed):
			logger.Warn("[%s] Result page yielded no text: %v", rid, err)
		default:
			logger.Warn("[%s] Web fallback failed: %v", rid, err)
		}
		return domain.Apology, nil
	}

	// The already-computed answer is returned even if the write fails.
	if answer != domain.Apology {
		if err := a.store.Write(ctx, query, answer); err != nil {
			logger.Warn("[%s] Persisting answer failed: %v", rid, err)
		} else {
			logger.Info("[%s] Saved new corpus document %s", rid, domain.SanitizeName(query))
		}
	}
	return answer, nil
}

// buildIndex fits a fresh vector space over the stopword-stripped corpus.
func (a *Answerer) buildIndex(corpus domain.Corpus) (*tfidf.VectorSpace, error) {
	texts := make([]string, len(corpus))
	for i, doc := range corpus {
		texts[i] = a.normalizer.Normalize(doc.Body, true)
	}
	index, err := tfidf.Build(texts)
	if err != nil {
		if errors.Is(err, tfidf.ErrEmptyCorpus) {
			return nil, domain.ErrEmptyCorpus
		}
		return nil, err
	}
	return index, nil
}
