package completion

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"interviewcoach/internal/config"

	"google.golang.org/genai"
)

type geminiClient struct {
	apiKey      string
	baseURL     string
	model       string
	maxTokens   int32
	temperature float32
	timeout     time.Duration
}

func newGemini(cfg config.Completion) *geminiClient {
	return &geminiClient{
		apiKey:      cfg.APIKey,
		baseURL:     cfg.BaseURL,
		model:       cfg.Model,
		maxTokens:   int32(cfg.MaxTokens),
		temperature: cfg.Temperature,
		timeout:     cfg.Timeout,
	}
}

// The SDK client is built per call so a missing key surfaces on the request
// that needs it rather than at startup.
func (c *geminiClient) newClient(ctx context.Context) (*genai.Client, error) {
	if c.apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY not set")
	}
	cc := &genai.ClientConfig{
		APIKey:  c.apiKey,
		Backend: genai.BackendGeminiAPI,
	}
	if c.baseURL != "" {
		cc.HTTPOptions = genai.HTTPOptions{BaseURL: c.baseURL}
	}
	return genai.NewClient(ctx, cc)
}

func (c *geminiClient) buildConfig(req Request) *genai.GenerateContentConfig {
	temperature := c.temperature
	cfg := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: req.System}},
		},
		Temperature:     &temperature,
		MaxOutputTokens: c.maxTokens,
	}
	if req.ResponseSchema != nil {
		cfg.ResponseMIMEType = "application/json"
		cfg.ResponseJsonSchema = req.ResponseSchema
	}
	return cfg
}

func buildContents(req Request) []*genai.Content {
	return []*genai.Content{{
		Role:  genai.RoleUser,
		Parts: []*genai.Part{{Text: req.User}},
	}}
}

func (c *geminiClient) Complete(ctx context.Context, req Request) (string, error) {
	ctx, cancel := withTimeout(ctx, c.timeout)
	defer cancel()

	client, err := c.newClient(ctx)
	if err != nil {
		return "", backendError(config.ProviderGemini, err)
	}
	result, err := client.Models.GenerateContent(ctx, c.model, buildContents(req), c.buildConfig(req))
	if err != nil {
		return "", backendError(config.ProviderGemini, err)
	}
	if len(result.Candidates) == 0 {
		return "", backendError(config.ProviderGemini, errors.New("completion returned no candidates"))
	}
	return strings.TrimSpace(result.Text()), nil
}
