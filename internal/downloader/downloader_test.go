package downloader_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-race-nft/internal/adapter"
	"github.com/feral-file/ff-race-nft/internal/domain"
	"github.com/feral-file/ff-race-nft/internal/downloader"
	"github.com/feral-file/ff-race-nft/internal/mocks"
)

// pngHeader is enough for content sniffing to detect image/png
var pngHeader = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0x0d, 'I', 'H', 'D', 'R'}

func response(status int, body []byte, contentLength int64) *http.Response {
	return &http.Response{
		StatusCode:    status,
		Body:          io.NopCloser(bytes.NewReader(body)),
		ContentLength: contentLength,
	}
}

func TestDownload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockHTTP := mocks.NewMockHTTPClient(ctrl)
	dl := downloader.NewDownloader(mockHTTP, 1024)

	ctx := context.Background()
	mockHTTP.EXPECT().
		GetResponse(ctx, "https://img.example/a", nil).
		Return(response(http.StatusOK, pngHeader, int64(len(pngHeader))), nil)

	img, err := dl.Download(ctx, "https://img.example/a")
	require.NoError(t, err)
	assert.Equal(t, pngHeader, img.Data)
	assert.Equal(t, "image/png", img.MimeType)
	assert.Equal(t, ".png", img.Extension)
}

func TestDownload_Errors(t *testing.T) {
	tests := []struct {
		name     string
		resp     *http.Response
		respErr  error
		maxBytes int64
		checkErr func(t *testing.T, err error)
	}{
		{
			name:    "transport error",
			respErr: errors.New("connection reset"),
			checkErr: func(t *testing.T, err error) {
				assert.Contains(t, err.Error(), "connection reset")
			},
		},
		{
			name: "non 2xx status",
			resp: response(http.StatusForbidden, nil, 0),
			checkErr: func(t *testing.T, err error) {
				assert.True(t, adapter.IsStatus(err, http.StatusForbidden))
			},
		},
		{
			name:     "declared length over limit",
			resp:     response(http.StatusOK, pngHeader, 4096),
			maxBytes: 16,
			checkErr: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, domain.ErrPayloadTooLarge)
			},
		},
		{
			name:     "streamed body over limit",
			resp:     response(http.StatusOK, append(append([]byte{}, pngHeader...), 1, 2, 3), -1),
			maxBytes: int64(len(pngHeader)),
			checkErr: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, domain.ErrPayloadTooLarge)
			},
		},
		{
			name: "not an image",
			resp: response(http.StatusOK, []byte("<html><body>denied</body></html>"), -1),
			checkErr: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, domain.ErrNotAnImage)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockHTTP := mocks.NewMockHTTPClient(ctrl)
			maxBytes := tt.maxBytes
			if maxBytes == 0 {
				maxBytes = 1024
			}
			dl := downloader.NewDownloader(mockHTTP, maxBytes)

			mockHTTP.EXPECT().
				GetResponse(gomock.Any(), "https://img.example/a", nil).
				Return(tt.resp, tt.respErr)

			img, err := dl.Download(context.Background(), "https://img.example/a")
			require.Error(t, err)
			assert.Nil(t, img)
			tt.checkErr(t, err)
		})
	}
}
