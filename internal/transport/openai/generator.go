package openai

import (
	"context"
	"errors"
	"fmt"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/gemacjr/product-recommender-engine/internal/domain"
	"github.com/gemacjr/product-recommender-engine/internal/metrics"
)

// Generator produces free text via an OpenAI-compatible chat completions API.
// Output is returned verbatim; callers treat it as opaque text.
type Generator struct {
	client      *openai.Client
	model       string
	temperature float32
	logger      *zap.Logger
}

// NewGenerator creates a chat completion text generator.
func NewGenerator(client *openai.Client, cfg *Config) *Generator {
	return &Generator{
		client:      client,
		model:       cfg.ChatModel,
		temperature: cfg.Temperature,
		logger:      cfg.Logger,
	}
}

// Generate implements domain.Generator. An empty system prompt sends the user
// message alone.
func (g *Generator) Generate(ctx context.Context, system, user string) (string, error) {
	messages := make([]openai.ChatCompletionMessage, 0, 2)
	if system != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: system,
		})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: user,
	})

	start := time.Now()

	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       g.model,
		Messages:    messages,
		Temperature: g.temperature,
	})

	duration := time.Since(start)

	if err != nil {
		metrics.GenerationRequestsTotal.WithLabelValues(g.model, "error").Inc()
		return "", parseChatError(err)
	}

	if len(resp.Choices) == 0 {
		metrics.GenerationRequestsTotal.WithLabelValues(g.model, "error").Inc()
		return "", fmt.Errorf("empty chat completion response: %w", domain.ErrGenerationUnavailable)
	}

	metrics.GenerationRequestsTotal.WithLabelValues(g.model, "success").Inc()
	metrics.GenerationRequestDuration.WithLabelValues(g.model).Observe(duration.Seconds())

	return resp.Choices[0].Message.Content, nil
}

func parseChatError(err error) error {
	wrap := domain.ErrGenerationUnavailable

	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return fmt.Errorf("chat API error %d: %s: %w",
			reqErr.HTTPStatusCode, string(reqErr.Body), wrap)
	}

	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return fmt.Errorf("chat API error %d: %s: %w",
			apiErr.HTTPStatusCode, apiErr.Message, wrap)
	}

	return fmt.Errorf("chat completion failed: %w", wrap)
}
