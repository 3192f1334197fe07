// Package marathi implements the segmentation capability for Marathi text
// written in the Devanagari script.
package marathi

import (
	"strings"
	"unicode"

	"github.com/ryukaizen/marai/internal/core/ports/driven"
)

// Ensure Segmenter implements the interface.
var _ driven.Segmenter = (*Segmenter)(nil)

// Segmenter segments Devanagari text and knows the Marathi stopword set.
type Segmenter struct {
	stopwords map[string]struct{}
}

// New creates a Marathi segmenter with the default stopword set.
func New() *Segmenter {
	return &Segmenter{stopwords: stopwordSet()}
}

// StripForeign drops every rune outside the Devanagari script, keeping
// whitespace so token boundaries survive.
func (s *Segmenter) StripForeign(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if unicode.Is(unicode.Devanagari, r) || unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Segment splits text into an ordered flat sequence of tokens. Any rune that
// is not a Devanagari letter or digit separates tokens, so the danda and
// other punctuation never leak into the token stream.
func (s *Segmenter) Segment(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.Is(unicode.Devanagari, r) || r == '।' || r == '॥'
	})
}

// IsStopword reports whether the token is a Marathi function word.
func (s *Segmenter) IsStopword(token string) bool {
	_, ok := s.stopwords[token]
	return ok
}
