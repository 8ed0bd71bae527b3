package engine

import (
	"time"

	"github.com/google/uuid"

	"github.com/nxterminal/protocol-wars/config"
	"github.com/nxterminal/protocol-wars/templates"
)

// PaySalaries credits every active dev the hourly salary plus the
// rarity-scaled energy regen. Idempotence is not required here; the
// loop's wall clock gates how often it runs.
func (e *Engine) PaySalaries() (int64, error) {
	return e.store.PaySalaries(config.SalaryPerInterval)
}

// TakeBalanceSnapshots upserts today's per-player balance snapshot.
// Safe to call repeatedly within a day; the snapshot is keyed by date.
func (e *Engine) TakeBalanceSnapshots(now time.Time) (int64, error) {
	return e.store.SnapshotBalances(now.Format("2006-01-02"))
}

// SpawnWorldEvent activates a random world event for the given
// duration and retires any event whose window has passed.
func (e *Engine) SpawnWorldEvent(duration time.Duration) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	now := e.now()
	if _, err := e.store.DeactivateExpiredEvents(now); err != nil {
		return err
	}

	ev := templates.WorldEvent(e.rng, int(duration/time.Hour))
	ev.ID = uuid.NewString()
	ev.IsActive = true
	ev.StartsAt = now
	ev.EndsAt = now.Add(duration)
	if err := e.store.InsertWorldEvent(&ev); err != nil {
		return err
	}
	e.log.Infow("world event started",
		"title", ev.Title, "type", ev.EventType, "ends_at", ev.EndsAt)
	return nil
}
