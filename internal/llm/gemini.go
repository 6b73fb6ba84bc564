// Package llm содержит клиент внешнего генеративного сервиса.
// Используется OpenAI-совместимый эндпоинт Gemini API.
package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// geminiBaseURL OpenAI-совместимый эндпоинт Gemini API.
const geminiBaseURL = "https://generativelanguage.googleapis.com/v1beta/openai/"

// Client клиент генерации текстовых сводок.
type Client struct {
	api   *openai.Client
	model string
}

// NewGemini создаёт клиент Gemini с заданным ключом, моделью и таймаутом.
func NewGemini(apiKey, model string, timeout time.Duration) *Client {
	cfg := openai.DefaultConfig(apiKey)
	cfg.BaseURL = geminiBaseURL
	cfg.HTTPClient = &http.Client{Timeout: timeout}

	return &Client{
		api:   openai.NewClientWithConfig(cfg),
		model: model,
	}
}

// Summarize отправляет промпт и возвращает текст ответа.
// Одна попытка, без ретраев.
func (c *Client) Summarize(ctx context.Context, prompt string) (string, error) {
	const op = "llm.Summarize"

	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("empty completion response")
	}
	return resp.Choices[0].Message.Content, nil
}
