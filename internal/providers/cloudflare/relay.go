package cloudflare

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path"

	"github.com/cloudflare/cloudflare-go"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/feral-file/ff-race-nft/internal/adapter"
	"github.com/feral-file/ff-race-nft/internal/downloader"
	"github.com/feral-file/ff-race-nft/internal/logger"
)

const (
	// PUBLIC_VARIANT is the Cloudflare Images variant preferred for the durable URL
	PUBLIC_VARIANT = "public"
)

// Config holds configuration for Cloudflare Images
type Config struct {
	// AccountID is the Cloudflare account ID for Images
	AccountID string
}

// Relay copies a remote image into durable storage
//
//go:generate mockgen -source=relay.go -destination=../../mocks/relay.go -package=mocks -mock_names=Relay=MockRelay
type Relay interface {
	// Relay downloads the image at sourceURL, stores it under a new unique key and returns the durable URL
	Relay(ctx context.Context, sourceURL string) (string, error)
}

type relay struct {
	images     adapter.CloudflareImages
	downloader downloader.Downloader
	rc         *cloudflare.ResourceContainer
}

// NewRelay creates a blob relay backed by Cloudflare Images
func NewRelay(images adapter.CloudflareImages, dl downloader.Downloader, config Config) Relay {
	return &relay{
		images:     images,
		downloader: dl,
		rc: &cloudflare.ResourceContainer{
			Level:      cloudflare.AccountRouteLevel,
			Identifier: config.AccountID,
		},
	}
}

// Relay downloads the image at sourceURL, stores it under a new unique key and returns the durable URL
func (r *relay) Relay(ctx context.Context, sourceURL string) (string, error) {
	img, err := r.downloader.Download(ctx, sourceURL)
	if err != nil {
		return "", fmt.Errorf("failed to download image: %w", err)
	}

	key := uuid.NewString()
	params := cloudflare.UploadImageParams{
		File: io.NopCloser(bytes.NewReader(img.Data)),
		Name: key + img.Extension,
		Metadata: map[string]interface{}{
			"key":       key,
			"mime_type": img.MimeType,
		},
	}

	image, err := r.images.UploadImage(ctx, r.rc, params)
	if err != nil {
		return "", fmt.Errorf("failed to upload image: %w", err)
	}

	durableURL := pickVariant(image.Variants)
	if durableURL == "" {
		// Unreachable uploads only cost storage
		if err := r.images.DeleteImage(ctx, r.rc, image.ID); err != nil {
			logger.WarnCtx(ctx, "Failed to delete unusable upload", zap.String("imageID", image.ID), zap.Error(err))
		}
		return "", fmt.Errorf("uploaded image %s has no delivery variants", image.ID)
	}

	logger.InfoCtx(ctx, "Relayed image to Cloudflare Images",
		zap.String("imageID", image.ID),
		zap.String("key", key),
		zap.String("url", durableURL),
	)

	return durableURL, nil
}

// pickVariant returns the public variant URL, falling back to the first variant.
// Variant URLs look like https://imagedelivery.net/{account_hash}/{image_id}/{variant_name}
func pickVariant(variants []string) string {
	for _, v := range variants {
		if path.Base(v) == PUBLIC_VARIANT {
			return v
		}
	}
	if len(variants) > 0 {
		return variants[0]
	}
	return ""
}
