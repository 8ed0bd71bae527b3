package main

import (
	"context"
	"log"
	"math/rand"
	"os/signal"
	"syscall"
	"time"

	natsserver "github.com/nats-io/nats-server/v2/server"
	"go.uber.org/zap"

	"github.com/nxterminal/protocol-wars/api"
	"github.com/nxterminal/protocol-wars/communication"
	"github.com/nxterminal/protocol-wars/config"
	"github.com/nxterminal/protocol-wars/core"
	"github.com/nxterminal/protocol-wars/engine"
	"github.com/nxterminal/protocol-wars/storage"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()
	sugar := logger.Sugar()

	dbPath := config.Env("NX_DB_PATH", "nxterminal.db")
	store, err := storage.Open(dbPath)
	if err != nil {
		sugar.Fatalw("failed to open store", "path", dbPath, "error", err)
	}
	defer store.Close()

	natsURL := config.Env("NATS_URL", "nats://127.0.0.1:4222")
	if config.EnvInt("NX_EMBEDDED_NATS", 1) == 1 {
		ns := startEmbeddedNATS(sugar)
		if ns != nil {
			defer ns.Shutdown()
			natsURL = ns.ClientURL()
		}
	}

	broker := core.SetupNATS(natsURL)
	defer broker.Close()
	communication.StartFeedBridge(broker)

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	eng := engine.New(store, broker, rng, sugar)

	go func() {
		if err := eng.Run(ctx); err != nil && err != context.Canceled {
			sugar.Errorw("engine exited", "error", err)
		}
	}()
	go runWorldEvents(ctx, eng, sugar)

	addr := config.Env("NX_API_ADDR", ":8080")
	sugar.Infow("api listening", "addr", addr)
	go func() {
		if err := api.StartServer(addr, store, eng); err != nil {
			sugar.Fatalw("api server failed", "error", err)
		}
	}()

	<-ctx.Done()
	sugar.Info("shutting down")
}

// startEmbeddedNATS runs an in-process NATS server so a single binary
// carries the whole stack. Returns nil when it fails to come up; the
// feed then falls back to whatever NATS_URL points at.
func startEmbeddedNATS(sugar *zap.SugaredLogger) *natsserver.Server {
	opts := &natsserver.Options{
		Host: "127.0.0.1",
		Port: config.EnvInt("NX_NATS_PORT", 4222),
	}
	ns, err := natsserver.NewServer(opts)
	if err != nil {
		sugar.Warnw("embedded NATS failed to initialize", "error", err)
		return nil
	}
	go ns.Start()
	if !ns.ReadyForConnections(5 * time.Second) {
		sugar.Warn("embedded NATS not ready, feed may be disabled")
		ns.Shutdown()
		return nil
	}
	sugar.Infow("embedded NATS started", "url", ns.ClientURL())
	return ns
}

// runWorldEvents spawns a fresh world event on a fixed cadence.
func runWorldEvents(ctx context.Context, eng *engine.Engine, sugar *zap.SugaredLogger) {
	ticker := time.NewTicker(config.WorldEventInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := eng.SpawnWorldEvent(config.HackathonDuration); err != nil {
				sugar.Errorw("world event spawn failed", "error", err)
			}
		}
	}
}
