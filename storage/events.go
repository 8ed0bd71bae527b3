package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nxterminal/protocol-wars/core"
)

// InsertWorldEvent activates a world event.
func (s *Store) InsertWorldEvent(ev *core.WorldEvent) error {
	effects, err := json.Marshal(ev.Effects)
	if err != nil {
		return fmt.Errorf("marshal event effects: %w", err)
	}
	_, err = s.db.Exec(`
		INSERT INTO world_events (id, title, description, event_type, effects, is_active, starts_at, ends_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		ev.ID, ev.Title, ev.Description, ev.EventType, string(effects),
		boolToInt(ev.IsActive), ev.StartsAt, ev.EndsAt)
	if err != nil {
		return fmt.Errorf("insert world event: %w", err)
	}
	return nil
}

// ActiveEventEffects returns the effects of the most recent active
// event covering now, or nil when the world is quiet.
func (s *Store) ActiveEventEffects(now time.Time) (core.EventEffects, error) {
	var raw string
	err := s.db.QueryRow(`
		SELECT effects FROM world_events
		WHERE is_active = 1 AND starts_at <= ? AND ends_at >= ?
		ORDER BY starts_at DESC LIMIT 1`, now, now).Scan(&raw)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load active event: %w", err)
	}
	var effects core.EventEffects
	if err := json.Unmarshal([]byte(raw), &effects); err != nil {
		return nil, fmt.Errorf("decode event effects: %w", err)
	}
	return effects, nil
}

// ListWorldEvents returns events newest first.
func (s *Store) ListWorldEvents(limit int) ([]core.WorldEvent, error) {
	rows, err := s.db.Query(`
		SELECT id, title, description, event_type, effects, is_active, starts_at, ends_at
		FROM world_events ORDER BY starts_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("list world events: %w", err)
	}
	defer rows.Close()
	var out []core.WorldEvent
	for rows.Next() {
		var ev core.WorldEvent
		var raw string
		var active int
		if err := rows.Scan(&ev.ID, &ev.Title, &ev.Description, &ev.EventType,
			&raw, &active, &ev.StartsAt, &ev.EndsAt); err != nil {
			return nil, fmt.Errorf("scan world event: %w", err)
		}
		if err := json.Unmarshal([]byte(raw), &ev.Effects); err != nil {
			return nil, fmt.Errorf("decode event effects: %w", err)
		}
		ev.IsActive = active != 0
		out = append(out, ev)
	}
	return out, rows.Err()
}

// DeactivateExpiredEvents turns off events whose window has passed.
func (s *Store) DeactivateExpiredEvents(now time.Time) (int64, error) {
	res, err := s.db.Exec(`UPDATE world_events SET is_active = 0 WHERE is_active = 1 AND ends_at < ?`, now)
	if err != nil {
		return 0, fmt.Errorf("deactivate events: %w", err)
	}
	return res.RowsAffected()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
