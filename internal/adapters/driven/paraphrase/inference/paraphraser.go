// Package inference implements the paraphrasing port against a hosted
// text-to-text inference endpoint. The endpoint wraps a multilingual
// paraphrase model; this adapter only speaks its JSON protocol.
package inference

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/ryukaizen/marai/internal/core/ports/driven"
)

// Ensure Paraphraser implements the interface.
var _ driven.Paraphraser = (*Paraphraser)(nil)

const defaultTimeout = 30 * time.Second

// Paraphraser posts text to an inference endpoint and returns the rewrite.
type Paraphraser struct {
	endpoint string
	token    string
	client   *http.Client
}

// New creates a paraphraser for the given endpoint. token may be empty for
// unauthenticated endpoints. A zero timeout uses the default.
func New(endpoint, token string, timeout time.Duration) *Paraphraser {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Paraphraser{
		endpoint: endpoint,
		token:    token,
		client:   &http.Client{Timeout: timeout},
	}
}

type request struct {
	Inputs string `json:"inputs"`
}

type generation struct {
	GeneratedText string `json:"generated_text"`
}

// Rephrase sends the text to the endpoint and returns the generated
// paraphrase. The input is returned unchanged when it is blank.
func (p *Paraphraser) Rephrase(ctx context.Context, text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return text, nil
	}

	payload, err := json.Marshal(request{Inputs: text})
	if err != nil {
		return "", fmt.Errorf("paraphrase: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("paraphrase: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if p.token != "" {
		req.Header.Set("Authorization", "Bearer "+p.token)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("paraphrase: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("paraphrase: endpoint returned %s", resp.Status)
	}

	var generations []generation
	if err := json.NewDecoder(resp.Body).Decode(&generations); err != nil {
		return "", fmt.Errorf("paraphrase: decode response: %w", err)
	}
	if len(generations) == 0 || strings.TrimSpace(generations[0].GeneratedText) == "" {
		return "", fmt.Errorf("paraphrase: empty generation")
	}
	return generations[0].GeneratedText, nil
}
