package api

import (
	"github.com/gin-gonic/gin"

	"github.com/nxterminal/protocol-wars/api/handlers"
	"github.com/nxterminal/protocol-wars/engine"
	"github.com/nxterminal/protocol-wars/storage"
)

// NewRouter builds the gin engine with all routes registered.
func NewRouter(store *storage.Store, eng *engine.Engine) *gin.Engine {
	r := gin.Default()
	SetupRoutes(r, handlers.New(store, eng))
	return r
}

// StartServer initializes the REST API and blocks serving it.
func StartServer(addr string, store *storage.Store, eng *engine.Engine) error {
	return NewRouter(store, eng).Run(addr)
}
