package rest

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/feral-file/ff-race-nft/internal/api/apierrors"
	"github.com/feral-file/ff-race-nft/internal/api/rest/dto"
	"github.com/feral-file/ff-race-nft/internal/logger"
	"github.com/feral-file/ff-race-nft/internal/mint"
	"github.com/feral-file/ff-race-nft/internal/providers/geocoding"
	"github.com/feral-file/ff-race-nft/internal/providers/openai"
	"github.com/feral-file/ff-race-nft/internal/query"
)

const SERVICE_NAME = "ff-race-nft-api"

// Handler defines the interface for REST API handlers
//
//go:generate mockgen -source=handler.go -destination=../../mocks/api_handler.go -package=mocks -mock_names=Handler=MockAPIHandler
type Handler interface {
	// MintNFT mints a race NFT for the player
	// POST /mint-nft
	MintNFT(c *gin.Context)

	// MintAchievement mints an achievement NFT for the player
	// POST /mint-achievement
	MintAchievement(c *gin.Context)

	// GenerateImage generates an image and relays it to durable storage
	// POST /generate-image
	GenerateImage(c *gin.Context)

	// Geocode resolves a free-text location
	// GET /geocode?location=<location>
	Geocode(c *gin.Context)

	// GPTCompletion returns the first chat completion choice
	// POST /gpt-completion
	GPTCompletion(c *gin.Context)

	// ListRaces lists the race records owned by a player
	// GET /players/:address/races?collectionId=<id>
	ListRaces(c *gin.Context)

	// ListAchievements lists the achievement records owned by a player
	// GET /players/:address/achievements?collectionId=<id>
	ListAchievements(c *gin.Context)

	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)
}

// Config holds the collection ids used by the read endpoints when no override is given
type Config struct {
	RaceCollectionID        uint64
	AchievementCollectionID uint64
}

// Services are the collaborators behind the endpoints
type Services struct {
	Orchestrator mint.Orchestrator
	Images       mint.ImageService
	Geocoder     geocoding.Geocoder
	Completer    openai.Completer
	Query        query.Client
}

type handler struct {
	Services
	config Config
}

// NewHandler creates a new REST API handler
func NewHandler(services Services, config Config) Handler {
	return &handler{
		Services: services,
		config:   config,
	}
}

// MintNFT mints a race NFT
func (h *handler) MintNFT(c *gin.Context) {
	var req dto.MintRaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	result, err := h.Orchestrator.MintRace(c.Request.Context(), req.ToDomain())
	if err != nil {
		respondInternalError(c, err, "Failed to mint NFT", zap.String("player_address", req.PlayerAddress))
		return
	}

	c.JSON(http.StatusOK, result)
}

// MintAchievement mints an achievement NFT
func (h *handler) MintAchievement(c *gin.Context) {
	var req dto.MintAchievementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	result, err := h.Orchestrator.MintAchievement(c.Request.Context(), req.ToDomain())
	if err != nil {
		respondInternalError(c, err, "Failed to mint achievement NFT", zap.String("player_address", req.PlayerAddress))
		return
	}

	c.JSON(http.StatusOK, result)
}

// GenerateImage generates an image and returns its relayed URL
func (h *handler) GenerateImage(c *gin.Context) {
	var req dto.GenerateImageRequest
	// The body is optional
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}

	imageURL, err := h.Images.GenerateDurable(c.Request.Context(), req.Prompt)
	if err != nil {
		respondInternalError(c, err, "Failed to generate image")
		return
	}

	c.JSON(http.StatusOK, dto.GenerateImageResponse{ImageURL: imageURL})
}

// Geocode resolves a location to coordinates, city and country
func (h *handler) Geocode(c *gin.Context) {
	var params GeocodeQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBadRequest(c, "Invalid query parameters", err.Error())
		return
	}
	if err := params.Validate(); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	location, err := h.Geocoder.Geocode(c.Request.Context(), params.Location)
	if err != nil {
		respondInternalError(c, err, "Failed to geocode location", zap.String("location", params.Location))
		return
	}

	c.JSON(http.StatusOK, location)
}

// GPTCompletion forwards the messages and returns the first choice unmodified
func (h *handler) GPTCompletion(c *gin.Context) {
	var req dto.CompletionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}
	messages, err := req.ParseMessages()
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	choice, err := h.Completer.Complete(c.Request.Context(), messages)
	if err != nil {
		respondInternalError(c, err, "Failed to get GPT completion", zap.Int("message_count", len(messages)))
		return
	}

	c.JSON(http.StatusOK, choice)
}

// ListRaces lists a player's race records
func (h *handler) ListRaces(c *gin.Context) {
	params, err := ParsePlayerTokensQuery(c, h.config.RaceCollectionID)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	listing, err := h.Query.ListRaces(c.Request.Context(), params.Address, params.CollectionID)
	if err != nil {
		respondServiceError(c, err, "Failed to list races",
			zap.String("address", params.Address),
			zap.Uint64("collection_id", params.CollectionID))
		return
	}

	c.JSON(http.StatusOK, listing)
}

// ListAchievements lists a player's achievement records
func (h *handler) ListAchievements(c *gin.Context) {
	params, err := ParsePlayerTokensQuery(c, h.config.AchievementCollectionID)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	listing, err := h.Query.ListAchievements(c.Request.Context(), params.Address, params.CollectionID)
	if err != nil {
		respondServiceError(c, err, "Failed to list achievements",
			zap.String("address", params.Address),
			zap.Uint64("collection_id", params.CollectionID))
		return
	}

	c.JSON(http.StatusOK, listing)
}

// HealthCheck returns the health status of the API
func (h *handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, dto.HealthResponse{
		Status:  "ok",
		Service: SERVICE_NAME,
	})
}

// respondBadRequest sends a 400 for a request that could not be decoded
func respondBadRequest(c *gin.Context, message string, details ...string) {
	apierrors.Respond(c, http.StatusBadRequest, apierrors.ErrCodeBadRequest, message, details...)
}

// respondValidationError sends a 400 for a decoded request that failed validation
func respondValidationError(c *gin.Context, details string) {
	apierrors.Respond(c, http.StatusBadRequest, apierrors.ErrCodeValidationFailed, "Validation failed", details)
}

// respondInternalError logs err with the request id and sends a 500 carrying only message
func respondInternalError(c *gin.Context, err error, message string, fields ...zap.Field) {
	logger.ErrorCtx(c.Request.Context(), err, append(fields, zap.String("path", c.Request.URL.Path))...)
	apierrors.Respond(c, http.StatusInternalServerError, apierrors.ErrCodeInternalError, message)
}

// respondServiceError is respondInternalError for upstream read failures
func respondServiceError(c *gin.Context, err error, message string, fields ...zap.Field) {
	logger.ErrorCtx(c.Request.Context(), err, append(fields, zap.String("path", c.Request.URL.Path))...)
	apierrors.Respond(c, http.StatusInternalServerError, apierrors.ErrCodeServiceError, message)
}
