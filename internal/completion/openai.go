package completion

import (
	"context"
	"errors"
	"math"
	"strings"
	"time"

	"interviewcoach/internal/config"

	openai "github.com/sashabaranov/go-openai"
)

type openAIClient struct {
	client      *openai.Client
	model       string
	maxTokens   int
	temperature float32
	timeout     time.Duration
}

func newOpenAI(cfg config.Completion) *openAIClient {
	oc := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		oc.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	}
	return &openAIClient{
		client:      openai.NewClientWithConfig(oc),
		model:       cfg.Model,
		maxTokens:   cfg.MaxTokens,
		temperature: cfg.Temperature,
		timeout:     cfg.Timeout,
	}
}

func (c *openAIClient) Complete(ctx context.Context, req Request) (string, error) {
	ctx, cancel := withTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: req.System},
			{Role: openai.ChatMessageRoleUser, Content: req.User},
		},
		MaxTokens:   c.maxTokens,
		Temperature: wireTemperature(c.temperature),
	})
	if err != nil {
		return "", backendError(config.ProviderOpenAI, err)
	}
	if len(resp.Choices) == 0 {
		return "", backendError(config.ProviderOpenAI, errors.New("completion returned no choices"))
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// go-openai drops a zero temperature (omitempty), which the API reads as its
// default of 1. The smallest positive float32 is sent instead.
func wireTemperature(t float32) float32 {
	if t == 0 {
		return math.SmallestNonzeroFloat32
	}
	return t
}
