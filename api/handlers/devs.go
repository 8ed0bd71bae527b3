package handlers

import (
	"database/sql"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// ListDevs returns all devs, optionally filtered by owner wallet.
func (h *Handler) ListDevs(c *gin.Context) {
	if owner := c.Query("owner"); owner != "" {
		addr, ok := normalizeWallet(owner)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid wallet address"})
			return
		}
		devs, err := h.store.ListDevsByOwner(addr)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, devs)
		return
	}

	devs, err := h.store.ListDevs()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, devs)
}

// GetDev returns a single dev's full profile.
func (h *Handler) GetDev(c *gin.Context) {
	tokenID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid dev id"})
		return
	}

	dev, err := h.store.GetDev(tokenID)
	if err == sql.ErrNoRows {
		c.JSON(http.StatusNotFound, gin.H{"error": "dev not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, dev)
}

// GetDevHistory returns a dev's recent actions, newest first.
func (h *Handler) GetDevHistory(c *gin.Context) {
	tokenID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid dev id"})
		return
	}

	actions, err := h.store.DevActions(tokenID, limitParam(c, 30, 100))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, actions)
}

// GetDevProtocols returns the protocols a dev created.
func (h *Handler) GetDevProtocols(c *gin.Context) {
	tokenID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid dev id"})
		return
	}

	protos, err := h.store.DevProtocols(tokenID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, protos)
}
