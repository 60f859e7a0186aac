package openai_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	goopenai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-race-nft/internal/domain"
	"github.com/feral-file/ff-race-nft/internal/mocks"
	"github.com/feral-file/ff-race-nft/internal/providers/openai"
)

func TestGenerate_DefaultPrompt(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockOpenAIClient(ctrl)
	gen := openai.NewImageGenerator(client, openai.ImageConfig{})

	ctx := context.Background()
	client.EXPECT().
		CreateImage(ctx, goopenai.ImageRequest{
			Prompt:         domain.DEFAULT_IMAGE_PROMPT,
			Model:          goopenai.CreateImageModelDallE3,
			N:              1,
			Size:           goopenai.CreateImageSize1024x1024,
			ResponseFormat: goopenai.CreateImageResponseFormatURL,
		}).
		Return(goopenai.ImageResponse{Data: []goopenai.ImageResponseDataInner{{URL: "https://oai.example/img.png"}}}, nil)

	url, err := gen.Generate(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, "https://oai.example/img.png", url)
}

func TestGenerate_CustomPrompt(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockOpenAIClient(ctrl)
	gen := openai.NewImageGenerator(client, openai.ImageConfig{Model: "dall-e-2", Size: "512x512"})

	client.EXPECT().
		CreateImage(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req goopenai.ImageRequest) (goopenai.ImageResponse, error) {
			assert.Equal(t, "a red kart", req.Prompt)
			assert.Equal(t, "dall-e-2", req.Model)
			assert.Equal(t, "512x512", req.Size)
			return goopenai.ImageResponse{Data: []goopenai.ImageResponseDataInner{{URL: "https://oai.example/kart.png"}}}, nil
		})

	url, err := gen.Generate(context.Background(), "a red kart")
	require.NoError(t, err)
	assert.Equal(t, "https://oai.example/kart.png", url)
}

func TestGenerate_Failures(t *testing.T) {
	tests := []struct {
		name    string
		resp    goopenai.ImageResponse
		respErr error
	}{
		{name: "provider error", respErr: errors.New("content policy violation")},
		{name: "no data", resp: goopenai.ImageResponse{}},
		{name: "empty url", resp: goopenai.ImageResponse{Data: []goopenai.ImageResponseDataInner{{URL: ""}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			client := mocks.NewMockOpenAIClient(ctrl)
			gen := openai.NewImageGenerator(client, openai.ImageConfig{})

			client.EXPECT().CreateImage(gomock.Any(), gomock.Any()).Return(tt.resp, tt.respErr)

			url, err := gen.Generate(context.Background(), "")
			assert.Empty(t, url)
			assert.ErrorIs(t, err, domain.ErrImageGenerationFailed)
			if tt.respErr != nil {
				assert.ErrorIs(t, err, tt.respErr)
			}
		})
	}
}
