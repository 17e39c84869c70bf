package ai

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"

	openai "github.com/sashabaranov/go-openai"

	"github.com/vivekevdt/FlexiBuy/internal/config"
)

// ErrMissingAPIKey is returned when no completion credential is configured.
var ErrMissingAPIKey = errors.New("ai: LLM_API_KEY not set")

type OpenAIClient struct {
	client    *openai.Client
	model     string
	maxTokens int
	hasKey    bool
}

// NewOpenAIClient builds a client for the configured OpenAI-compatible
// endpoint. A missing credential is reported per request, not at startup,
// so the rest of the service still comes up.
func NewOpenAIClient(cfg *config.Config) *OpenAIClient {
	cc := openai.DefaultConfig(cfg.LLMAPIKey)
	if cfg.LLMAPIBase != "" {
		cc.BaseURL = cfg.LLMAPIBase
	}

	return &OpenAIClient{
		client:    openai.NewClientWithConfig(cc),
		model:     cfg.LLMModel,
		maxTokens: cfg.LLMMaxTokens,
		hasKey:    cfg.LLMAPIKey != "",
	}
}

func (c *OpenAIClient) Complete(
	ctx context.Context,
	messages []Message,
	temperature float32,
) (string, error) {
	if !c.hasKey {
		return "", ErrMissingAPIKey
	}

	msgs := make([]openai.ChatCompletionMessage, 0, len(messages))
	for _, m := range messages {
		msgs = append(msgs, openai.ChatCompletionMessage{
			Role:    m.Role,
			Content: m.Content,
		})
	}

	// The request encoding drops a zero temperature, leaving the
	// upstream sampling default in place. Substitute the smallest
	// positive value so 0 actually reaches the wire.
	if temperature == 0 {
		temperature = math.SmallestNonzeroFloat32
	}

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Messages:    msgs,
		Temperature: temperature,
		MaxTokens:   c.maxTokens,
	})
	if err != nil {
		log.Println("[ai] completion error:", err)
		return "", fmt.Errorf("ai: completion: %w", err)
	}

	// Extraction never fails: no choices or an empty content is an
	// empty reply, and the caller decides what to say instead.
	if len(resp.Choices) == 0 {
		log.Println("[ai] empty choices")
		return "", nil
	}

	return resp.Choices[0].Message.Content, nil
}
