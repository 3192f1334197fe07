package services

import (
	"strings"
	"unicode/utf8"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"

	"github.com/ryukaizen/marai/internal/core/domain"
	"github.com/ryukaizen/marai/internal/logger"
	"github.com/ryukaizen/marai/internal/text"
)

// Acceptance thresholds. Empirically chosen; answer quality is sensitive
// to the exact values.
const (
	minAnswerRunes        = 50
	minRelevanceScore     = 0.2
	minTermMatchRatio     = 0.3
	minNameSimilarityPass = 0.8
)

// Gate decides whether a retrieved candidate is good enough to answer
// without consulting the web.
type Gate struct {
	normalizer *text.Normalizer
}

// NewGate creates a relevance gate.
func NewGate(normalizer *text.Normalizer) *Gate {
	return &Gate{normalizer: normalizer}
}

// IsAcceptable applies the acceptance rule: enough text, enough of the
// query's terms covered, and either a sufficient similarity score or a
// near-match on the document name.
func (g *Gate) IsAcceptable(query string, candidate *domain.CandidateAnswer) bool {
	if candidate == nil {
		return false
	}
	if utf8.RuneCountInString(strings.TrimSpace(candidate.Text)) < minAnswerRunes {
		return false
	}

	queryTerms := g.normalizer.TermSet(query, true)
	if len(queryTerms) == 0 {
		// An empty or all-stopword query has nothing to match against.
		return false
	}
	candidateTerms := g.normalizer.TermSet(candidate.Text, true)
	matchRatio := float64(text.Intersection(queryTerms, candidateTerms)) / float64(len(queryTerms))

	nameSimilarity := float64(fuzzy.PartialRatio(
		strings.ToLower(query), strings.ToLower(candidate.SourceName))) / 100

	logger.Debug("Relevance score: %.4f, term match ratio: %.4f, name similarity: %.4f",
		candidate.Score, matchRatio, nameSimilarity)

	if matchRatio <= minTermMatchRatio {
		return false
	}
	return candidate.Score > minRelevanceScore || nameSimilarity > minNameSimilarityPass
}
