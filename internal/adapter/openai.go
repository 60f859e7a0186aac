package adapter

import (
	"context"

	"github.com/sashabaranov/go-openai"
)

// OpenAIClient defines an interface for the chat completion and image generation API to enable mocking
//
//go:generate mockgen -source=openai.go -destination=../mocks/openai.go -package=mocks -mock_names=OpenAIClient=MockOpenAIClient
type OpenAIClient interface {
	CreateChatCompletion(ctx context.Context, request openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
	CreateImage(ctx context.Context, request openai.ImageRequest) (openai.ImageResponse, error)
}

// NewOpenAIClient creates a new OpenAI client. baseURL may be empty to use the public API.
func NewOpenAIClient(apiKey string, baseURL string) OpenAIClient {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return openai.NewClientWithConfig(cfg)
}
