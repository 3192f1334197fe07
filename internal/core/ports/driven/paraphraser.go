package driven

import "context"

// Paraphraser rewrites text while preserving its meaning. The model behind
// it is a stateless external text-to-text service.
type Paraphraser interface {
	Rephrase(ctx context.Context, text string) (string, error)
}
