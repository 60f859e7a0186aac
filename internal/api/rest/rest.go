package rest

import (
	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all REST API routes.
// auth guards the endpoints that spend provider credits or write to the ledger.
func SetupRoutes(router *gin.Engine, handler Handler, auth gin.HandlerFunc) {
	router.GET("/health", handler.HealthCheck)

	// Write endpoints
	router.POST("/mint-nft", auth, handler.MintNFT)
	router.POST("/mint-achievement", auth, handler.MintAchievement)
	router.POST("/generate-image", auth, handler.GenerateImage)
	router.POST("/gpt-completion", auth, handler.GPTCompletion)

	// Read endpoints
	router.GET("/geocode", handler.Geocode)
	router.GET("/players/:address/races", handler.ListRaces)
	router.GET("/players/:address/achievements", handler.ListAchievements)
}
