package mint

import (
	"context"
	"fmt"

	"github.com/alitto/pond/v2"
	"go.uber.org/zap"

	"github.com/feral-file/ff-race-nft/internal/logger"
	"github.com/feral-file/ff-race-nft/internal/providers/cloudflare"
)

// PinnedImage is a generated image that has been pinned to IPFS
type PinnedImage struct {
	SourceURL string
	CID       string
}

// preparePinnedImage generates an image, downloads it, stages it in scratch storage and pins it.
// The scratch file is removed on every exit path.
func preparePinnedImage(ctx context.Context, deps Deps, prefix string, prompt string) (*PinnedImage, error) {
	sourceURL, err := deps.Generator.Generate(ctx, prompt)
	if err != nil {
		return nil, err
	}

	img, err := deps.Downloader.Download(ctx, sourceURL)
	if err != nil {
		return nil, fmt.Errorf("failed to download generated image: %w", err)
	}

	staged, err := deps.Scratch.Stage(ctx, prefix, img.Extension, img.Data)
	if err != nil {
		return nil, fmt.Errorf("failed to stage image: %w", err)
	}
	defer staged.Release(ctx)

	cid, err := deps.Pinner.Pin(ctx, staged.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to pin image: %w", err)
	}

	return &PinnedImage{SourceURL: sourceURL, CID: cid}, nil
}

// ImageService generates standalone images
//
//go:generate mockgen -source=image.go -destination=../mocks/image_service.go -package=mocks -mock_names=ImageService=MockImageService
type ImageService interface {
	// GenerateDurable generates an image and relays it to durable storage
	GenerateDurable(ctx context.Context, prompt string) (string, error)
	// Pregenerate generates and pins count images with at most concurrency in flight.
	// Failed items are logged and left out; the CIDs of the others are returned in submission order.
	Pregenerate(ctx context.Context, count int, concurrency int) ([]string, error)
}

type imageService struct {
	deps  Deps
	relay cloudflare.Relay
}

// NewImageService creates an image service
func NewImageService(deps Deps, relay cloudflare.Relay) ImageService {
	return &imageService{
		deps:  deps,
		relay: relay,
	}
}

// GenerateDurable generates an image and relays it to durable storage
func (s *imageService) GenerateDurable(ctx context.Context, prompt string) (string, error) {
	sourceURL, err := s.deps.Generator.Generate(ctx, prompt)
	if err != nil {
		return "", err
	}

	durableURL, err := s.relay.Relay(ctx, sourceURL)
	if err != nil {
		return "", fmt.Errorf("failed to relay image: %w", err)
	}

	return durableURL, nil
}

// Pregenerate generates and pins count images with at most concurrency in flight
func (s *imageService) Pregenerate(ctx context.Context, count int, concurrency int) ([]string, error) {
	if count <= 0 {
		return []string{}, nil
	}
	if concurrency <= 0 {
		concurrency = 1
	}

	pool := pond.NewResultPool[*PinnedImage](concurrency, pond.WithContext(ctx))
	defer pool.StopAndWait()

	tasks := make([]pond.Result[*PinnedImage], count)
	for i := 0; i < count; i++ {
		tasks[i] = pool.SubmitErr(func() (*PinnedImage, error) {
			return preparePinnedImage(ctx, s.deps, PREGENERATED_PREFIX, "")
		})
	}

	cids := make([]string, 0, count)
	for i, task := range tasks {
		img, err := task.Wait()
		if err != nil {
			logger.WarnCtx(ctx, "Failed to pregenerate image", zap.Int("index", i+1), zap.Int("count", count), zap.Error(err))
			continue
		}
		logger.InfoCtx(ctx, "Image pregenerated", zap.Int("index", i+1), zap.Int("count", count), zap.String("cid", img.CID))
		cids = append(cids, img.CID)
	}

	if err := ctx.Err(); err != nil {
		return cids, err
	}

	return cids, nil
}
