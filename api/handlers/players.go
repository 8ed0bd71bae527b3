package handlers

import (
	"database/sql"
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetPlayer returns a player profile by wallet address.
func (h *Handler) GetPlayer(c *gin.Context) {
	addr, ok := normalizeWallet(c.Param("wallet"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid wallet address"})
		return
	}

	player, err := h.store.GetPlayer(addr)
	if err == sql.ErrNoRows {
		c.JSON(http.StatusNotFound, gin.H{"error": "player not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, player)
}

// GetPlayerSnapshots returns the player's daily balance history.
func (h *Handler) GetPlayerSnapshots(c *gin.Context) {
	addr, ok := normalizeWallet(c.Param("wallet"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid wallet address"})
		return
	}

	snaps, err := h.store.ListSnapshots(addr, limitParam(c, 30, 365))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, snaps)
}
