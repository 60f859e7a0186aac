package pinata

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/ipfs/go-cid"
	"go.uber.org/zap"

	"github.com/feral-file/ff-race-nft/internal/adapter"
	"github.com/feral-file/ff-race-nft/internal/domain"
	"github.com/feral-file/ff-race-nft/internal/logger"
)

const (
	PIN_FILE_PATH    = "/pinning/pinFileToIPFS"
	FILE_FORM_FIELD  = "file"
	DEFAULT_API_URL  = "https://api.pinata.cloud"
	AUTHORIZATION    = "Authorization"
	BEARER_TOKEN_FMT = "Bearer %s"
)

// Config holds the Pinata settings
type Config struct {
	JWT    string
	APIURL string
}

// PinResponse is the body returned by pinFileToIPFS
type PinResponse struct {
	IpfsHash  string `json:"IpfsHash"`
	PinSize   int64  `json:"PinSize"`
	Timestamp string `json:"Timestamp"`
}

// Pinner pins local files to IPFS
//
//go:generate mockgen -source=client.go -destination=../../mocks/pinner.go -package=mocks -mock_names=Pinner=MockPinner
type Pinner interface {
	// Pin uploads the file at path and returns its CID
	Pin(ctx context.Context, path string) (string, error)
}

type client struct {
	httpClient adapter.HTTPClient
	fs         adapter.FileSystem
	json       adapter.JSON
	config     Config
}

// NewClient creates a Pinata client
func NewClient(httpClient adapter.HTTPClient, fs adapter.FileSystem, json adapter.JSON, config Config) Pinner {
	if config.APIURL == "" {
		config.APIURL = DEFAULT_API_URL
	}
	config.APIURL = strings.TrimRight(config.APIURL, "/")

	return &client{
		httpClient: httpClient,
		fs:         fs,
		json:       json,
		config:     config,
	}
}

// Pin uploads the file at path and returns its CID
func (c *client) Pin(ctx context.Context, path string) (string, error) {
	f, err := c.fs.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open file: %w", err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			logger.WarnCtx(ctx, "Failed to close pinned file", zap.String("path", path), zap.Error(err))
		}
	}()

	pr, pw := io.Pipe()
	mw := multipart.NewWriter(pw)

	// the request body is produced while the request is sent
	done := make(chan struct{})
	go func() {
		defer close(done)
		part, err := mw.CreateFormFile(FILE_FORM_FIELD, filepath.Base(path))
		if err != nil {
			_ = pw.CloseWithError(err)
			return
		}
		if _, err := io.Copy(part, f); err != nil {
			_ = pw.CloseWithError(err)
			return
		}
		_ = pw.CloseWithError(mw.Close())
	}()

	headers := map[string]string{
		AUTHORIZATION: fmt.Sprintf(BEARER_TOKEN_FMT, c.config.JWT),
	}

	logger.InfoCtx(ctx, "Pinning file to IPFS", zap.String("path", path))

	body, err := c.httpClient.PostBytes(ctx, c.config.APIURL+PIN_FILE_PATH, headers, mw.FormDataContentType(), pr)
	// unblock the writer if the request ended before the body was consumed
	_ = pr.Close()
	<-done
	if err != nil {
		return "", fmt.Errorf("failed to pin file: %w", err)
	}

	var resp PinResponse
	if err := c.json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrInvalidPinResponse, err)
	}

	if resp.IpfsHash == "" {
		return "", fmt.Errorf("%w: missing IpfsHash", domain.ErrInvalidPinResponse)
	}
	if _, err := cid.Decode(resp.IpfsHash); err != nil {
		return "", fmt.Errorf("%w: %q is not a CID: %v", domain.ErrInvalidPinResponse, resp.IpfsHash, err)
	}

	logger.InfoCtx(ctx, "File pinned", zap.String("cid", resp.IpfsHash), zap.Int64("pinSize", resp.PinSize))
	return resp.IpfsHash, nil
}
