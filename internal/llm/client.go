package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"
)

var (
	// ErrModelUnavailable means the client is not configured or could not be
	// constructed. Callers decide whether to degrade or propagate.
	ErrModelUnavailable = errors.New("llm: model unavailable")

	// ErrEmptyResponse means the model answered with no usable text.
	ErrEmptyResponse = errors.New("llm: empty response")
)

// TextGenerator is the only thing the rest of the codebase knows about the
// AI: text in, text out, may fail. Swapping Gemini for another backend means
// implementing this one method.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// GeminiClient wraps a langchaingo Gemini model behind TextGenerator.
type GeminiClient struct {
	model llms.Model
}

// NewGeminiClient builds the client once at startup. An empty API key is an
// ErrModelUnavailable, not a fatal: the job engine runs fine without AI.
func NewGeminiClient(ctx context.Context, apiKey, modelName string) (*GeminiClient, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("%w: no API key configured", ErrModelUnavailable)
	}

	model, err := googleai.New(ctx,
		googleai.WithAPIKey(apiKey),
		googleai.WithDefaultModel(modelName),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrModelUnavailable, err)
	}

	return &GeminiClient{model: model}, nil
}

func (c *GeminiClient) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := llms.GenerateFromSinglePrompt(ctx, c.model, prompt)
	if err != nil {
		return "", fmt.Errorf("llm: generation failed: %w", err)
	}
	if strings.TrimSpace(resp) == "" {
		return "", ErrEmptyResponse
	}
	return resp, nil
}
