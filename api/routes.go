package api

import (
	"github.com/gin-gonic/gin"

	"github.com/nxterminal/protocol-wars/api/handlers"
)

// SetupRoutes initializes all API endpoints
func SetupRoutes(router *gin.Engine, h *handlers.Handler) {
	api := router.Group("/api")
	{
		api.GET("/devs", h.ListDevs)
		api.GET("/devs/:id", h.GetDev)
		api.GET("/devs/:id/history", h.GetDevHistory)
		api.GET("/devs/:id/protocols", h.GetDevProtocols)
		api.POST("/prompts", h.SendPrompt)
		api.GET("/protocols", h.ListProtocols)
		api.GET("/ais", h.ListAIs)
		api.GET("/chat", h.GetChat)
		api.GET("/feed", h.GetFeed)
		api.GET("/leaderboard", h.GetLeaderboard)
		api.GET("/players/:wallet", h.GetPlayer)
		api.GET("/players/:wallet/snapshots", h.GetPlayerSnapshots)
		api.GET("/status", h.GetStatus)
		api.GET("/events", h.ListWorldEvents)
		api.POST("/events", h.SpawnWorldEvent)
	}

	// Webhook for the chain listener; not part of the public surface.
	router.POST("/internal/mint", h.MintDev)

	router.GET("/ws", h.HandleWebSocket)
}
