package server_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-race-nft/internal/api/middleware"
	"github.com/feral-file/ff-race-nft/internal/api/server"
	"github.com/feral-file/ff-race-nft/internal/mocks"
)

func TestRouterAuthGuardsWriteEndpoints(t *testing.T) {
	ctrl := gomock.NewController(t)
	handler := mocks.NewMockAPIHandler(ctrl)

	handler.EXPECT().HealthCheck(gomock.Any()).Do(func(c *gin.Context) { c.Status(http.StatusOK) })
	handler.EXPECT().MintNFT(gomock.Any()).Do(func(c *gin.Context) { c.Status(http.StatusOK) })

	srv := server.New(server.Config{
		Auth: middleware.AuthConfig{APIKeys: []string{"secret-key"}},
	}, handler)
	router, err := srv.Router()
	require.NoError(t, err)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get(middleware.REQUEST_ID_HEADER))

	// Rejected before reaching the handler
	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/mint-nft", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	req := httptest.NewRequest(http.MethodPost, "/mint-nft", nil)
	req.Header.Set("Authorization", "ApiKey secret-key")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRouterWithoutAuth(t *testing.T) {
	ctrl := gomock.NewController(t)
	handler := mocks.NewMockAPIHandler(ctrl)

	handler.EXPECT().GenerateImage(gomock.Any()).Do(func(c *gin.Context) { c.Status(http.StatusOK) })

	router, err := server.New(server.Config{}, handler).Router()
	require.NoError(t, err)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/generate-image", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRouterInvalidJWTKey(t *testing.T) {
	ctrl := gomock.NewController(t)

	_, err := server.New(server.Config{
		Auth: middleware.AuthConfig{JWTPublicKey: "garbage"},
	}, mocks.NewMockAPIHandler(ctrl)).Router()
	assert.Error(t, err)
}
