package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/nxterminal/protocol-wars/core"
)

// InsertPrompt queues a player prompt for a dev.
func (s *Store) InsertPrompt(p *core.PlayerPrompt) error {
	_, err := s.db.Exec(`
		INSERT INTO player_prompts (id, dev_id, player_address, prompt_text, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		p.ID, p.DevID, p.PlayerAddress, p.PromptText, p.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert prompt: %w", err)
	}
	return nil
}

// HasPendingPrompt reports whether the dev already has an unconsumed
// prompt queued. The submission endpoint rejects a second one.
func (s *Store) HasPendingPrompt(devID int64) (bool, error) {
	var n int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM player_prompts WHERE dev_id = ? AND consumed = 0`, devID).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("count pending prompts: %w", err)
	}
	return n > 0, nil
}

// OldestPendingPrompt returns the dev's oldest unconsumed prompt, or
// sql.ErrNoRows when none is queued.
func (s *Store) OldestPendingPrompt(tx *sql.Tx, devID int64) (core.PlayerPrompt, error) {
	var p core.PlayerPrompt
	row := tx.QueryRow(`
		SELECT id, dev_id, player_address, prompt_text, created_at
		FROM player_prompts
		WHERE dev_id = ? AND consumed = 0
		ORDER BY created_at ASC
		LIMIT 1`, devID)
	err := row.Scan(&p.ID, &p.DevID, &p.PlayerAddress, &p.PromptText, &p.CreatedAt)
	return p, err
}

// ConsumePrompt marks a prompt consumed exactly once.
func (s *Store) ConsumePrompt(tx *sql.Tx, id string, at time.Time) error {
	_, err := tx.Exec(`UPDATE player_prompts SET consumed = 1, consumed_at = ? WHERE id = ?`, at, id)
	return err
}
