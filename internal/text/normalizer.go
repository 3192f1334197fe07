// Package text implements lexical preprocessing for Marathi: normalisation
// on top of the segmentation capability, sentence-bounded truncation, and
// citation cleanup for web-sourced articles.
package text

import (
	"strings"

	"github.com/ryukaizen/marai/internal/core/ports/driven"
)

// Normalizer turns raw text into a single space-joined string of target
// language tokens, optionally with stopwords removed.
type Normalizer struct {
	segmenter driven.Segmenter
}

// NewNormalizer creates a normaliser over the given segmentation capability.
func NewNormalizer(segmenter driven.Segmenter) *Normalizer {
	return &Normalizer{segmenter: segmenter}
}

// Normalize strips foreign-script content, segments the remainder into
// tokens, optionally drops stopwords, and rejoins with single spaces.
// Empty input yields an empty result.
func (n *Normalizer) Normalize(text string, removeStopwords bool) string {
	tokens := n.segmenter.Segment(n.segmenter.StripForeign(text))
	if removeStopwords {
		kept := tokens[:0]
		for _, tok := range tokens {
			if n.segmenter.IsStopword(tok) {
				continue
			}
			kept = append(kept, tok)
		}
		tokens = kept
	}
	return strings.Join(tokens, " ")
}

// TermSet returns the normalised text's distinct lower-cased terms.
func (n *Normalizer) TermSet(text string, removeStopwords bool) map[string]struct{} {
	fields := strings.Fields(strings.ToLower(n.Normalize(text, removeStopwords)))
	set := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		set[f] = struct{}{}
	}
	return set
}

// Intersection counts the terms present in both sets.
func Intersection(a, b map[string]struct{}) int {
	count := 0
	for term := range a {
		if _, ok := b[term]; ok {
			count++
		}
	}
	return count
}
