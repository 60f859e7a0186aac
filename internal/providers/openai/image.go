package openai

import (
	"context"
	"errors"
	"fmt"
	"strings"

	goopenai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/feral-file/ff-race-nft/internal/adapter"
	"github.com/feral-file/ff-race-nft/internal/domain"
	"github.com/feral-file/ff-race-nft/internal/logger"
)

// ImageConfig holds the image generation settings
type ImageConfig struct {
	Model  string
	Size   string
	Prompt string
}

// ImageGenerator generates an image for a prompt and returns the provider hosted URL
//
//go:generate mockgen -source=image.go -destination=../../mocks/image_generator.go -package=mocks -mock_names=ImageGenerator=MockImageGenerator
type ImageGenerator interface {
	// Generate returns the transient URL of a freshly generated image.
	// An empty prompt falls back to the configured default prompt.
	Generate(ctx context.Context, prompt string) (string, error)
}

type imageGenerator struct {
	client adapter.OpenAIClient
	config ImageConfig
}

// NewImageGenerator creates an image generator backed by the OpenAI images API
func NewImageGenerator(client adapter.OpenAIClient, config ImageConfig) ImageGenerator {
	if config.Prompt == "" {
		config.Prompt = domain.DEFAULT_IMAGE_PROMPT
	}
	if config.Model == "" {
		config.Model = goopenai.CreateImageModelDallE3
	}
	if config.Size == "" {
		config.Size = goopenai.CreateImageSize1024x1024
	}

	return &imageGenerator{
		client: client,
		config: config,
	}
}

// Generate returns the transient URL of a freshly generated image
func (g *imageGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		prompt = g.config.Prompt
	}

	logger.InfoCtx(ctx, "Generating image", zap.String("model", g.config.Model))

	resp, err := g.client.CreateImage(ctx, goopenai.ImageRequest{
		Prompt:         prompt,
		Model:          g.config.Model,
		N:              1,
		Size:           g.config.Size,
		ResponseFormat: goopenai.CreateImageResponseFormatURL,
	})
	if err != nil {
		return "", errors.Join(domain.ErrImageGenerationFailed, fmt.Errorf("failed to create image: %w", err))
	}

	if len(resp.Data) == 0 || resp.Data[0].URL == "" {
		return "", fmt.Errorf("%w: provider returned no image", domain.ErrImageGenerationFailed)
	}

	logger.InfoCtx(ctx, "Image generated", zap.String("url", resp.Data[0].URL))
	return resp.Data[0].URL, nil
}
