package pinata_test

import (
	"context"
	"errors"
	"io"
	"mime"
	"mime/multipart"
	"os"
	"path/filepath"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-race-nft/internal/adapter"
	"github.com/feral-file/ff-race-nft/internal/domain"
	"github.com/feral-file/ff-race-nft/internal/mocks"
	"github.com/feral-file/ff-race-nft/internal/providers/pinata"
)

const validCID = "QmYwAPJzv5CZsnA625s3Xf2nemtYgPpHdWEz79ojWnPbdG"

func writeTempFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "race_nft_image-1.png")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestPin_StreamsMultipartUpload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	httpClient := mocks.NewMockHTTPClient(ctrl)
	client := pinata.NewClient(httpClient, adapter.NewFileSystem(), adapter.NewJSON(), pinata.Config{
		JWT:    "jwt-token",
		APIURL: "https://pinata.example/",
	})
	path := writeTempFile(t, "png-bytes")

	httpClient.EXPECT().
		PostBytes(gomock.Any(), "https://pinata.example/pinning/pinFileToIPFS", map[string]string{"Authorization": "Bearer jwt-token"}, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, _ map[string]string, contentType string, body io.Reader) ([]byte, error) {
			mediaType, params, err := mime.ParseMediaType(contentType)
			require.NoError(t, err)
			assert.Equal(t, "multipart/form-data", mediaType)

			reader := multipart.NewReader(body, params["boundary"])
			part, err := reader.NextPart()
			require.NoError(t, err)
			assert.Equal(t, "file", part.FormName())
			assert.Equal(t, "race_nft_image-1.png", part.FileName())

			data, err := io.ReadAll(part)
			require.NoError(t, err)
			assert.Equal(t, "png-bytes", string(data))

			_, err = reader.NextPart()
			assert.ErrorIs(t, err, io.EOF)

			return []byte(`{"IpfsHash":"` + validCID + `","PinSize":9,"Timestamp":"2024-07-27T16:00:00Z"}`), nil
		})

	got, err := client.Pin(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, validCID, got)
}

func TestPin_InvalidResponses(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "not json", body: `<html>bad gateway</html>`},
		{name: "missing hash", body: `{"PinSize":9}`},
		{name: "empty hash", body: `{"IpfsHash":""}`},
		{name: "not a cid", body: `{"IpfsHash":"!not-a-cid"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			httpClient := mocks.NewMockHTTPClient(ctrl)
			client := pinata.NewClient(httpClient, adapter.NewFileSystem(), adapter.NewJSON(), pinata.Config{JWT: "jwt"})
			path := writeTempFile(t, "data")

			httpClient.EXPECT().
				PostBytes(gomock.Any(), pinata.DEFAULT_API_URL+pinata.PIN_FILE_PATH, gomock.Any(), gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, _ string, _ map[string]string, _ string, body io.Reader) ([]byte, error) {
					_, _ = io.Copy(io.Discard, body)
					return []byte(tt.body), nil
				})

			got, err := client.Pin(context.Background(), path)
			assert.Empty(t, got)
			assert.ErrorIs(t, err, domain.ErrInvalidPinResponse)
		})
	}
}

func TestPin_UpstreamError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	httpClient := mocks.NewMockHTTPClient(ctrl)
	client := pinata.NewClient(httpClient, adapter.NewFileSystem(), adapter.NewJSON(), pinata.Config{JWT: "jwt"})
	path := writeTempFile(t, "data")

	upstream := &adapter.StatusError{StatusCode: 401, Body: "unauthorized"}
	// the body is never consumed; Pin must still return
	httpClient.EXPECT().PostBytes(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, upstream)

	_, err := client.Pin(context.Background(), path)
	assert.True(t, adapter.IsStatus(err, 401))
}

func TestPin_MissingFile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	httpClient := mocks.NewMockHTTPClient(ctrl)
	client := pinata.NewClient(httpClient, adapter.NewFileSystem(), adapter.NewJSON(), pinata.Config{JWT: "jwt"})

	_, err := client.Pin(context.Background(), filepath.Join(t.TempDir(), "missing.png"))
	require.Error(t, err)
	assert.False(t, errors.Is(err, domain.ErrInvalidPinResponse))
}
