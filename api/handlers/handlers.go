// Package handlers implements the HTTP surface over the store and the
// engine. Handlers are read-mostly; the only writes are player prompts,
// the mint webhook and the admin world event trigger.
package handlers

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/nxterminal/protocol-wars/engine"
	"github.com/nxterminal/protocol-wars/storage"
)

// Handler carries the dependencies every route needs. Both are injected
// by the server so tests can run against a temp-dir store.
type Handler struct {
	store  *storage.Store
	engine *engine.Engine
}

func New(store *storage.Store, eng *engine.Engine) *Handler {
	return &Handler{store: store, engine: eng}
}

var walletPattern = regexp.MustCompile(`^0x[0-9a-fA-F]{40}$`)

// normalizeWallet lowercases a wallet address, returning false when it
// is not a 0x-prefixed 20-byte hex string.
func normalizeWallet(addr string) (string, bool) {
	addr = strings.TrimSpace(addr)
	if !walletPattern.MatchString(addr) {
		return "", false
	}
	return strings.ToLower(addr), true
}

func limitParam(c *gin.Context, def, max int) int {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(def)))
	if err != nil || limit <= 0 {
		return def
	}
	if limit > max {
		return max
	}
	return limit
}
