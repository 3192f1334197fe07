package text

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// MaxAnswerChars is the truncation cap applied to every answer, counted in
// runes. A sentence that would push past the cap is excluded entirely.
const MaxAnswerChars = 1000

// SentenceTerminator is the glyph used to rejoin kept sentences.
const SentenceTerminator = "।"

var (
	sentenceSplitPattern = regexp.MustCompile(`[।॥|!?.]`)
	citationPattern      = regexp.MustCompile(`\[\d+\]`)
)

// Truncate splits text on sentence terminators and keeps whole sentences in
// order while the cumulative rune count stays within maxChars. Empty or
// whitespace-only sentences are skipped without charging the budget. The
// kept sentences are rejoined with the primary terminator glyph.
func Truncate(text string, maxChars int) string {
	var kept []string
	count := 0
	for _, sentence := range sentenceSplitPattern.Split(text, -1) {
		sentence = strings.TrimSpace(sentence)
		if sentence == "" {
			continue
		}
		length := utf8.RuneCountInString(sentence)
		if count+length > maxChars {
			break
		}
		kept = append(kept, sentence)
		count += length + 1
	}
	return strings.Join(kept, SentenceTerminator)
}

// CleanCitations removes bracketed numeric citation markers such as [12]
// anywhere in the text.
func CleanCitations(text string) string {
	return citationPattern.ReplaceAllString(text, "")
}
