package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ListProtocols returns protocols ordered by value.
func (h *Handler) ListProtocols(c *gin.Context) {
	protos, err := h.store.ListProtocols(limitParam(c, 50, 200))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, protos)
}

// ListAIs returns absurd AIs ordered by weighted votes.
func (h *Handler) ListAIs(c *gin.Context) {
	ais, err := h.store.ListAIs(limitParam(c, 50, 200))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, ais)
}
