package adapter

import (
	"context"

	"github.com/cloudflare/cloudflare-go"
)

// CloudflareImages is the slice of the Cloudflare Images API the blob relay uses
//
//go:generate mockgen -source=cloudflare.go -destination=../mocks/cloudflare.go -package=mocks -mock_names=CloudflareImages=MockCloudflareImages
type CloudflareImages interface {
	UploadImage(ctx context.Context, rc *cloudflare.ResourceContainer, params cloudflare.UploadImageParams) (cloudflare.Image, error)
	DeleteImage(ctx context.Context, rc *cloudflare.ResourceContainer, id string) error
}

// NewCloudflareImages authenticates against Cloudflare with an API token
func NewCloudflareImages(apiToken string) (CloudflareImages, error) {
	api, err := cloudflare.NewWithAPIToken(apiToken)
	if err != nil {
		return nil, err
	}
	return api, nil
}
