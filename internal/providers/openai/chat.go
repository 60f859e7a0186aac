package openai

import (
	"context"
	"errors"
	"fmt"

	goopenai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/feral-file/ff-race-nft/internal/adapter"
	"github.com/feral-file/ff-race-nft/internal/logger"
)

// ErrNoCompletionChoice is returned when the provider answers without any choice
var ErrNoCompletionChoice = errors.New("completion returned no choices")

// Completer runs chat completions
//
//go:generate mockgen -source=chat.go -destination=../../mocks/completer.go -package=mocks -mock_names=Completer=MockCompleter
type Completer interface {
	// Complete returns the first completion choice as the provider sent it
	Complete(ctx context.Context, messages []goopenai.ChatCompletionMessage) (*goopenai.ChatCompletionChoice, error)
}

type completer struct {
	client adapter.OpenAIClient
	model  string
}

// NewCompleter creates a chat completer for the given model
func NewCompleter(client adapter.OpenAIClient, model string) Completer {
	if model == "" {
		model = goopenai.GPT4o
	}
	return &completer{
		client: client,
		model:  model,
	}
}

// Complete returns the first completion choice as the provider sent it
func (c *completer) Complete(ctx context.Context, messages []goopenai.ChatCompletionMessage) (*goopenai.ChatCompletionChoice, error) {
	resp, err := c.client.CreateChatCompletion(ctx, goopenai.ChatCompletionRequest{
		Model:    c.model,
		Messages: messages,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create chat completion: %w", err)
	}

	if len(resp.Choices) == 0 {
		return nil, ErrNoCompletionChoice
	}

	logger.DebugCtx(ctx, "Chat completion finished",
		zap.String("model", resp.Model),
		zap.Int("promptTokens", resp.Usage.PromptTokens),
		zap.Int("completionTokens", resp.Usage.CompletionTokens),
	)

	return &resp.Choices[0], nil
}
