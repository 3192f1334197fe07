package services

import (
	"sort"
	"strings"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"

	"github.com/ryukaizen/marai/internal/core/domain"
	"github.com/ryukaizen/marai/internal/index/tfidf"
	"github.com/ryukaizen/marai/internal/logger"
	"github.com/ryukaizen/marai/internal/text"
)

// topCandidates is the similarity window rescored with the composite rule.
const topCandidates = 5

// Retriever finds the best-matching corpus document for a query.
type Retriever struct {
	normalizer *text.Normalizer
}

// NewRetriever creates a local corpus retriever.
func NewRetriever(normalizer *text.Normalizer) *Retriever {
	return &Retriever{normalizer: normalizer}
}

// Search ranks every document by cosine similarity, rescores the top five
// with term overlap and fuzzy name similarity, and returns the winner with
// its body truncated. It returns nil when no document scores above zero.
// The index must have been built from the same corpus snapshot, in order.
func (r *Retriever) Search(query string, corpus domain.Corpus, index *tfidf.VectorSpace) *domain.CandidateAnswer {
	// Full query text kept intact for vectorisation; stopwords matter for
	// overlap too, so both normalisations keep them.
	processed := r.normalizer.Normalize(query, false)
	sims := index.Similarities(index.Transform(processed))

	order := make([]int, len(sims))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return sims[order[a]] > sims[order[b]]
	})
	if len(order) > topCandidates {
		order = order[:topCandidates]
	}

	logger.Debug("Top %d similar documents:", len(order))
	for rank, idx := range order {
		logger.Debug("%d. %s (similarity: %.4f)", rank+1, corpus[idx].Name, sims[idx])
	}

	queryTerms := termSet(processed)
	lowerQuery := strings.ToLower(query)

	bestIdx := -1
	bestScore := 0.0
	for _, idx := range order {
		if sims[idx] <= 0 {
			continue
		}
		doc := corpus[idx]
		docTerms := r.normalizer.TermSet(doc.Body, false)
		matches := text.Intersection(queryTerms, docTerms)
		nameSim := float64(fuzzy.PartialRatio(lowerQuery, strings.ToLower(doc.Name))) / 100

		score := sims[idx] * float64(matches+1) * (nameSim + 1)
		logger.Debug("Document: %s, score: %.4f, matches: %d, name similarity: %.4f",
			doc.Name, score, matches, nameSim)

		if score > bestScore {
			bestScore = score
			bestIdx = idx
		}
	}

	if bestIdx < 0 {
		return nil
	}
	winner := corpus[bestIdx]
	return &domain.CandidateAnswer{
		Text:       text.Truncate(winner.Body, text.MaxAnswerChars),
		Score:      sims[bestIdx],
		SourceName: winner.Name,
	}
}

func termSet(normalized string) map[string]struct{} {
	fields := strings.Fields(strings.ToLower(normalized))
	set := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		set[f] = struct{}{}
	}
	return set
}
