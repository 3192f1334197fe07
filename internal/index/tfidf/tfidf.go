// Package tfidf implements the TF-IDF vector space used for lexical
// retrieval. The space is cheap to build and is reconstructed from the
// corpus on every query, so the index always reflects the documents
// currently on disk.
package tfidf

import (
	"errors"
	"math"
	"sort"
	"strings"
)

// ErrEmptyCorpus is returned by Build when there are no documents to index.
var ErrEmptyCorpus = errors.New("tfidf: empty corpus")

// VectorSpace is an immutable TF-IDF space fitted over a corpus snapshot.
// Row i of the document matrix corresponds to document i of the input slice.
type VectorSpace struct {
	vocabulary map[string]int
	idf        []float64
	matrix     [][]float64
}

// Build fits a vector space over the given document texts. The texts are
// expected to be pre-normalised; tokenisation here is a plain lower-cased
// whitespace split. The vocabulary ordering is sorted, so building twice on
// the same snapshot yields identical weights.
func Build(texts []string) (*VectorSpace, error) {
	if len(texts) == 0 {
		return nil, ErrEmptyCorpus
	}

	// Document frequencies over distinct terms per document.
	df := make(map[string]int)
	for _, text := range texts {
		seen := make(map[string]struct{})
		for _, tok := range tokenize(text) {
			if _, ok := seen[tok]; ok {
				continue
			}
			seen[tok] = struct{}{}
			df[tok]++
		}
	}

	terms := make([]string, 0, len(df))
	for term := range df {
		terms = append(terms, term)
	}
	sort.Strings(terms)

	vs := &VectorSpace{
		vocabulary: make(map[string]int, len(terms)),
		idf:        make([]float64, len(terms)),
	}
	n := float64(len(texts))
	for i, term := range terms {
		vs.vocabulary[term] = i
		// Smoothed IDF, matching the conventional formulation.
		vs.idf[i] = math.Log((1+n)/(1+float64(df[term]))) + 1.0
	}

	vs.matrix = make([][]float64, len(texts))
	for i, text := range texts {
		vs.matrix[i] = vs.Transform(text)
	}
	return vs, nil
}

// Len returns the number of indexed documents.
func (vs *VectorSpace) Len() int { return len(vs.matrix) }

// Dimension returns the vocabulary size.
func (vs *VectorSpace) Dimension() int { return len(vs.idf) }

// Transform vectorises arbitrary text into the fitted space. Terms unseen at
// build time contribute nothing. The result is L2-normalised, so cosine
// similarity between transformed vectors reduces to a dot product.
func (vs *VectorSpace) Transform(text string) []float64 {
	vec := make([]float64, len(vs.idf))
	tf := make(map[int]int)
	for _, tok := range tokenize(text) {
		if idx, ok := vs.vocabulary[tok]; ok {
			tf[idx]++
		}
	}
	for idx, count := range tf {
		vec[idx] = float64(count) * vs.idf[idx]
	}
	normalize(vec)
	return vec
}

// Similarities returns the cosine similarity of the query vector against
// every indexed document, in document order.
func (vs *VectorSpace) Similarities(query []float64) []float64 {
	sims := make([]float64, len(vs.matrix))
	for i, row := range vs.matrix {
		sims[i] = dot(query, row)
	}
	return sims
}

func tokenize(text string) []string {
	return strings.Fields(strings.ToLower(text))
}

func normalize(vec []float64) {
	var norm float64
	for _, v := range vec {
		norm += v * v
	}
	norm = math.Sqrt(norm)
	if norm == 0 {
		return
	}
	for i := range vec {
		vec[i] /= norm
	}
}

func dot(a, b []float64) float64 {
	var sum float64
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}
