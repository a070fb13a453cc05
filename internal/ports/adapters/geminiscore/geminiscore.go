// Package geminiscore scores text with a Gemini model. Multiple API keys are
// rotated on quota errors so long arcs survive free-tier rate limits.
package geminiscore

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"google.golang.org/genai"

	"github.com/ShaikhWarsi/Creator-Catalyst/internal/ports"
)

const scorePrompt = `Rate the emotional sentiment of the following video caption text.
Reply with ONLY a decimal number between -1.0 (strongly negative) and 1.0 (strongly positive).
Use 0.0 only for genuinely neutral text. No words, no explanation.

Caption text:
---
%s
---`

type Adapter struct {
	apiKeys []string
	model   string

	// Score is called concurrently per bucket; key rotation is shared state.
	mu         sync.Mutex
	currentKey int
}

func New(apiKeys []string, model string) *Adapter {
	if model == "" {
		model = "gemini-2.5-flash"
	}
	return &Adapter{apiKeys: apiKeys, model: model}
}

func (a *Adapter) Score(ctx context.Context, text string) (float64, error) {
	prompt := fmt.Sprintf(scorePrompt, text)

	attempts := len(a.apiKeys)
	var lastErr error

	for range attempts {
		key := a.activeKey()

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  key,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			lastErr = fmt.Errorf("create client: %w", err)
			a.rotateKey()
			continue
		}

		result, err := client.Models.GenerateContent(ctx, a.model, genai.Text(prompt), nil)
		if err != nil {
			msg := err.Error()
			if strings.Contains(msg, "429") || strings.Contains(msg, "quota") || strings.Contains(msg, "RESOURCE_EXHAUSTED") {
				a.rotateKey()
				lastErr = err
				continue
			}
			return 0, fmt.Errorf("%w: gemini: %v", ports.ErrScoringUnavailable, err)
		}

		if result == nil || len(result.Candidates) == 0 || result.Candidates[0].Content == nil {
			return 0, fmt.Errorf("%w: gemini: empty response", ports.ErrScoringUnavailable)
		}

		var b strings.Builder
		for _, part := range result.Candidates[0].Content.Parts {
			b.WriteString(part.Text)
		}
		return parseScore(b.String())
	}

	return 0, fmt.Errorf("%w: gemini: all API keys exhausted: %v", ports.ErrScoringUnavailable, lastErr)
}

func (a *Adapter) activeKey() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.apiKeys[a.currentKey]
}

func (a *Adapter) rotateKey() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.currentKey = (a.currentKey + 1) % len(a.apiKeys)
}

func parseScore(raw string) (float64, error) {
	s := strings.TrimSpace(raw)
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: gemini: unexpected reply %q", ports.ErrScoringUnavailable, truncate(s, 80))
	}
	return clamp(v, -1, 1), nil
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

func clamp(x, a, b float64) float64 {
	if x < a {
		return a
	}
	if x > b {
		return b
	}
	return x
}
