// Package openaiscore scores text with an OpenAI model through the Responses
// API, constrained to a strict JSON schema so the polarity comes back as a
// machine-readable number instead of prose.
package openaiscore

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/responses"

	"github.com/ShaikhWarsi/Creator-Catalyst/internal/ports"
)

const instructions = `You rate the emotional sentiment of video caption text. ` +
	`Respond with a single polarity score between -1.0 (strongly negative) and 1.0 (strongly positive). ` +
	`Use 0.0 only for genuinely neutral text. Judge the speaker's tone, not the topic.`

type scoreResponse struct {
	Score float64 `json:"score" jsonschema_description:"Sentiment polarity in [-1.0, 1.0]"`
}

var scoreSchema = generateSchema[scoreResponse]()

type Adapter struct {
	client *openai.Client
	model  string
}

func New(apiKey, model string) *Adapter {
	if model == "" {
		model = "gpt-4o-mini"
	}
	client := openai.NewClient(option.WithAPIKey(apiKey))
	return &Adapter{client: &client, model: model}
}

func (a *Adapter) Score(ctx context.Context, text string) (float64, error) {
	params := responses.ResponseNewParams{
		Model:           a.model,
		MaxOutputTokens: openai.Int(50),
		Instructions:    openai.String(instructions),
		Input: responses.ResponseNewParamsInputUnion{
			OfInputItemList: []responses.ResponseInputItemUnionParam{
				responses.ResponseInputItemParamOfMessage(text, responses.EasyInputMessageRoleUser),
			},
		},
		Text: responses.ResponseTextConfigParam{
			Format: responses.ResponseFormatTextConfigUnionParam{
				OfJSONSchema: &responses.ResponseFormatTextJSONSchemaConfigParam{
					Name:   "SentimentScore",
					Schema: scoreSchema,
					Strict: openai.Bool(true),
					Type:   "json_schema",
				},
			},
		},
	}

	resp, err := callWithRetry(ctx, a.client, params)
	if err != nil {
		return 0, fmt.Errorf("%w: openai: %v", ports.ErrScoringUnavailable, err)
	}

	var out scoreResponse
	if err := json.Unmarshal([]byte(resp.OutputText()), &out); err != nil {
		return 0, fmt.Errorf("%w: openai: unmarshal score: %v", ports.ErrScoringUnavailable, err)
	}
	return clamp(out.Score, -1, 1), nil
}

func callWithRetry(ctx context.Context, client *openai.Client, params responses.ResponseNewParams) (*responses.Response, error) {
	const maxRetries = 3
	rateLimitWaits := []time.Duration{20 * time.Second, 40 * time.Second, 60 * time.Second}
	serverErrorWaits := []time.Duration{2 * time.Second, 10 * time.Second, 30 * time.Second}

	var lastErr error
	for attempt := 0; attempt < maxRetries; attempt++ {
		resp, err := client.Responses.New(ctx, params)
		if err == nil {
			return resp, nil
		}
		lastErr = err

		var wait time.Duration
		switch {
		case isRateLimitError(err):
			wait = rateLimitWaits[attempt]
		case isServerError(err):
			wait = serverErrorWaits[attempt]
		default:
			return nil, err
		}
		if attempt == maxRetries-1 {
			break
		}
		select {
		case <-time.After(wait):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return nil, fmt.Errorf("failed after %d attempts: %w", maxRetries, lastErr)
}

func isRateLimitError(err error) bool {
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "429") ||
		strings.Contains(s, "rate limit") ||
		strings.Contains(s, "too many requests")
}

func isServerError(err error) bool {
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "500") ||
		strings.Contains(s, "internal server error") ||
		strings.Contains(s, "server_error")
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
