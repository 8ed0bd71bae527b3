package engine

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/nxterminal/protocol-wars/config"
	"github.com/nxterminal/protocol-wars/core"
	"github.com/nxterminal/protocol-wars/storage"
)

// Engine owns the simulation loop. The store, feed broker, random
// source and clock are all injected so tests can substitute them.
// mu serializes the rng between the loop and API-driven entry points
// (MintDev, SpawnWorldEvent).
type Engine struct {
	store  *storage.Store
	broker *core.NATSBroker
	rng    *rand.Rand
	log    *zap.SugaredLogger
	now    func() time.Time
	mu     sync.Mutex
}

// New creates an engine. broker may be nil to run without a live feed.
func New(store *storage.Store, broker *core.NATSBroker, rng *rand.Rand, log *zap.SugaredLogger) *Engine {
	return &Engine{
		store:  store,
		broker: broker,
		rng:    rng,
		log:    log,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// Run drives the simulation until ctx is cancelled: salaries hourly,
// balance snapshots daily, and a scheduler tick every poll interval.
func (e *Engine) Run(ctx context.Context) error {
	e.log.Infow("engine started",
		"scheduler_interval", config.SchedulerInterval,
		"batch_size", config.SchedulerBatchSize)

	lastSalary := e.now()
	lastSnapshot := e.now()
	ticker := time.NewTicker(config.SchedulerInterval)
	defer ticker.Stop()

	cycle := 0
	for {
		select {
		case <-ctx.Done():
			e.log.Info("engine stopping")
			return ctx.Err()
		case <-ticker.C:
		}

		now := e.now()
		if now.Sub(lastSalary) >= config.SalaryInterval {
			if n, err := e.PaySalaries(); err != nil {
				e.log.Errorw("salary run failed", "error", err)
			} else {
				e.log.Infow("salaries paid", "devs", n, "amount", config.SalaryPerInterval)
			}
			lastSalary = now
		}
		if now.Sub(lastSnapshot) >= config.SnapshotInterval {
			if n, err := e.TakeBalanceSnapshots(now); err != nil {
				e.log.Errorw("balance snapshot failed", "error", err)
			} else {
				e.log.Infow("balance snapshots saved", "players", n)
			}
			lastSnapshot = now
		}

		processed, err := e.RunTick(now)
		if err != nil {
			e.log.Errorw("scheduler tick failed", "error", err)
			continue
		}
		if processed > 0 {
			cycle++
			if cycle%10 == 0 {
				e.log.Infow("scheduler progress", "cycle", cycle, "processed", processed)
			}
		}
	}
}
