package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nxterminal/protocol-wars/core"
)

// GetChat returns recent chat messages. channel defaults to trollbox;
// channel=location plus a location query scopes to one room.
func (h *Handler) GetChat(c *gin.Context) {
	channel := c.DefaultQuery("channel", "trollbox")
	location := c.Query("location")
	if channel == "location" && location != "" && !core.ValidLocation(location) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown location"})
		return
	}

	msgs, err := h.store.RecentChat(channel, location, limitParam(c, 50, 100))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, msgs)
}

// GetFeed returns the global action feed, newest first.
func (h *Handler) GetFeed(c *gin.Context) {
	actions, err := h.store.RecentActions(limitParam(c, 50, 100))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, actions)
}

// GetLeaderboard ranks devs by balance or reputation.
func (h *Handler) GetLeaderboard(c *gin.Context) {
	limit := limitParam(c, 20, 100)

	var devs []core.Dev
	var err error
	switch by := c.DefaultQuery("by", "balance"); by {
	case "balance":
		devs, err = h.store.TopDevsByBalance(limit)
	case "reputation":
		devs, err = h.store.TopDevsByReputation(limit)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown leaderboard: " + by})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, devs)
}
