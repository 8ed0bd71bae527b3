package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nxterminal/protocol-wars/config"
)

// GetStatus reports aggregate simulation stats plus recent throughput.
func (h *Handler) GetStatus(c *gin.Context) {
	stats, err := h.store.Stats()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	lastHour, err := h.store.ActionCountSince(time.Now().UTC().Add(-time.Hour))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"stats":             stats,
		"actions_last_hour": lastHour,
	})
}

// ListWorldEvents returns world events, newest first.
func (h *Handler) ListWorldEvents(c *gin.Context) {
	events, err := h.store.ListWorldEvents(limitParam(c, 50, 100))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, events)
}

type worldEventRequest struct {
	DurationHours int `json:"duration_hours"`
}

// SpawnWorldEvent starts a random world event. Admin surface; the
// scheduler also triggers these on its own cadence.
func (h *Handler) SpawnWorldEvent(c *gin.Context) {
	var req worldEventRequest
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	duration := config.HackathonDuration
	if req.DurationHours > 0 {
		duration = time.Duration(req.DurationHours) * time.Hour
	}
	if err := h.engine.SpawnWorldEvent(duration); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "started", "duration_hours": int(duration / time.Hour)})
}

type mintRequest struct {
	TokenID      int64  `json:"token_id"`
	OwnerAddress string `json:"owner_address" binding:"required"`
	Corporation  string `json:"corporation" binding:"required"`
}

// MintDev handles the mint webhook from the chain listener. A zero
// token_id lets the engine allocate the next one (local runs).
func (h *Handler) MintDev(c *gin.Context) {
	var req mintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	addr, ok := normalizeWallet(req.OwnerAddress)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid wallet address"})
		return
	}

	dev, err := h.engine.MintDev(req.TokenID, addr, req.Corporation)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, dev)
}
