package driven

// Segmenter provides the language-specific text capabilities the normaliser
// builds on: script filtering, token segmentation, and the stopword set.
type Segmenter interface {
	// StripForeign removes content not written in the target script.
	StripForeign(text string) string

	// Segment splits text into an ordered, flat sequence of tokens.
	Segment(text string) []string

	// IsStopword reports whether the token carries no lexical weight.
	IsStopword(token string) bool
}
