package downloader

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"go.uber.org/zap"

	"github.com/feral-file/ff-race-nft/internal/adapter"
	"github.com/feral-file/ff-race-nft/internal/domain"
	"github.com/feral-file/ff-race-nft/internal/logger"
)

// Image is a fully downloaded image
type Image struct {
	Data      []byte
	MimeType  string
	Extension string
}

// Downloader defines the interface for downloading generated images
//
//go:generate mockgen -source=downloader.go -destination=../mocks/downloader.go -package=mocks -mock_names=Downloader=MockDownloader
type Downloader interface {
	// Download fetches the bytes at url and verifies they are an image
	Download(ctx context.Context, url string) (*Image, error)
}

type downloader struct {
	httpClient adapter.HTTPClient
	maxBytes   int64
}

// NewDownloader creates a downloader that refuses bodies larger than maxBytes
func NewDownloader(httpClient adapter.HTTPClient, maxBytes int64) Downloader {
	return &downloader{
		httpClient: httpClient,
		maxBytes:   maxBytes,
	}
}

// Download fetches the bytes at url and verifies they are an image
func (d *downloader) Download(ctx context.Context, url string) (*Image, error) {
	logger.DebugCtx(ctx, "Downloading file", zap.String("url", url))

	resp, err := d.httpClient.GetResponse(ctx, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to download: %w", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			logger.WarnCtx(ctx, "failed to close response body", zap.Error(err), zap.String("url", url))
		}
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &adapter.StatusError{StatusCode: resp.StatusCode}
	}

	if d.maxBytes > 0 && resp.ContentLength > d.maxBytes {
		return nil, fmt.Errorf("%w: content length %d exceeds %d", domain.ErrPayloadTooLarge, resp.ContentLength, d.maxBytes)
	}

	reader := io.Reader(resp.Body)
	if d.maxBytes > 0 {
		// read one extra byte to detect bodies without content length that exceed the limit
		reader = io.LimitReader(resp.Body, d.maxBytes+1)
	}

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read body: %w", err)
	}
	if d.maxBytes > 0 && int64(len(data)) > d.maxBytes {
		return nil, fmt.Errorf("%w: body exceeds %d bytes", domain.ErrPayloadTooLarge, d.maxBytes)
	}

	mtype := mimetype.Detect(data)
	if !strings.HasPrefix(mtype.String(), "image/") {
		return nil, fmt.Errorf("%w: detected %s", domain.ErrNotAnImage, mtype.String())
	}

	logger.DebugCtx(ctx, "Download completed",
		zap.String("url", url),
		zap.String("mimeType", mtype.String()),
		zap.Int("bytes", len(data)),
	)

	return &Image{
		Data:      data,
		MimeType:  mtype.String(),
		Extension: mtype.Extension(),
	}, nil
}
