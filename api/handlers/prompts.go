package handlers

import (
	"database/sql"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/nxterminal/protocol-wars/core"
)

type promptRequest struct {
	PlayerAddress string `json:"player_address" binding:"required"`
	DevID         int64  `json:"dev_id" binding:"required"`
	PromptText    string `json:"prompt_text" binding:"required"`
}

// SendPrompt queues a player prompt for their dev. The engine picks it
// up on the dev's next cycle. One unconsumed prompt per dev at a time.
func (h *Handler) SendPrompt(c *gin.Context) {
	var req promptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	addr, ok := normalizeWallet(req.PlayerAddress)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid wallet address"})
		return
	}

	dev, err := h.store.GetDev(req.DevID)
	if err == sql.ErrNoRows {
		c.JSON(http.StatusNotFound, gin.H{"error": "dev not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if strings.ToLower(dev.OwnerAddress) != addr {
		c.JSON(http.StatusForbidden, gin.H{"error": "you don't own this dev"})
		return
	}

	pending, err := h.store.HasPendingPrompt(req.DevID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if pending {
		c.JSON(http.StatusTooManyRequests, gin.H{
			"error": "dev already has a pending prompt, wait for it to be processed"})
		return
	}

	text := req.PromptText
	if len(text) > 500 {
		text = text[:500]
	}
	prompt := core.PlayerPrompt{
		ID:            uuid.NewString(),
		DevID:         req.DevID,
		PlayerAddress: addr,
		PromptText:    text,
		CreatedAt:     time.Now().UTC(),
	}
	if err := h.store.InsertPrompt(&prompt); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":         prompt.ID,
		"dev_id":     prompt.DevID,
		"dev_name":   dev.Name,
		"prompt":     prompt.PromptText,
		"status":     "queued",
		"created_at": prompt.CreatedAt,
	})
}
