// internal/llm/openai_client.go
// Klien LLM untuk narasi explain_forecast (opsional).

package llm

import (
	"context"
	"errors"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// Client: kontrak umum supaya handler tidak terikat ke SDK OpenAI.
type Client interface {
	// Jawaban naratif (non-JSON, non-stream)
	Narrate(ctx context.Context, system, prompt string) (string, error)

	// Ambil nama model aktif
	Model() string
}

type OpenAIClient struct {
	api   *openai.Client
	model string
}

// New membuat klien dari konfigurasi eksplisit.
// base boleh kosong (pakai endpoint default OpenAI).
func New(apiKey, base, model string) (Client, error) {
	key := strings.TrimSpace(apiKey)
	if key == "" {
		return nil, errors.New("openai api key not set")
	}

	cfg := openai.DefaultConfig(key)
	if b := strings.TrimSpace(base); b != "" {
		cfg.BaseURL = b
	}
	if strings.TrimSpace(model) == "" {
		model = "gpt-4o-mini"
	}

	return &OpenAIClient{
		api:   openai.NewClientWithConfig(cfg),
		model: model,
	}, nil
}

func (c *OpenAIClient) Model() string { return c.model }

func (c *OpenAIClient) Narrate(ctx context.Context, system, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	req := openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: 0.2,
	}
	resp, err := c.api.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("empty completion")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
