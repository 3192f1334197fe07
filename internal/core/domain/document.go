package domain

import "strings"

// CorpusExtension is the file extension recognised by the corpus store.
const CorpusExtension = ".txt"

// Apology is the fixed user-facing reply when no answer could be found,
// locally or online. It is returned verbatim and never persisted.
const Apology = "माफ करा, मला या प्रश्नाचे उत्तर सापडले नाही."

// Document is a single corpus entry. Name is the raw filename including the
// extension; Body is the full file contents. Documents are immutable once
// created and are never deleted by the system.
type Document struct {
	Name string
	Body string
}

// Corpus is the ordered set of documents loaded from the corpus directory.
// The order is the enumeration order at load time; the lexical index relies
// on it staying fixed between build and query.
type Corpus []Document

// CandidateAnswer is a retrieved answer awaiting the relevance gate.
type CandidateAnswer struct {
	// Text is the (already truncated) answer text.
	Text string

	// Score is the cosine similarity of the winning document.
	Score float64

	// SourceName is the document name the text came from, or the query
	// itself for web-sourced answers.
	SourceName string
}

// SanitizeName derives a corpus filename from a free-form name such as a
// query string: whitespace runs become underscores and the corpus extension
// is appended.
func SanitizeName(name string) string {
	return strings.Join(strings.Fields(name), "_") + CorpusExtension
}
