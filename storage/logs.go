package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/nxterminal/protocol-wars/core"
)

// InsertAction appends one audit log row for an executed turn.
func (s *Store) InsertAction(tx *sql.Tx, e *core.ActionLogEntry) error {
	_, err := tx.Exec(`
		INSERT INTO actions (dev_id, dev_name, archetype, action_type, details, energy_cost, nxt_cost, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		e.DevID, e.DevName, e.Archetype, e.ActionType, e.Details, e.EnergyCost, e.NXTCost, e.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert action log: %w", err)
	}
	return nil
}

// InsertChat appends a chat line. Location is recorded only for the
// location channel.
func (s *Store) InsertChat(tx *sql.Tx, m *core.ChatMessage) error {
	var loc any
	if m.Channel == "location" && m.Location != "" {
		loc = m.Location
	}
	_, err := tx.Exec(`
		INSERT INTO chat_messages (dev_id, dev_name, archetype, channel, location, message, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		m.DevID, m.DevName, m.Archetype, m.Channel, loc, truncate(m.Message, 500), m.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert chat message: %w", err)
	}
	return nil
}

// RecentActions returns the newest audit rows, newest first.
func (s *Store) RecentActions(limit int) ([]core.ActionLogEntry, error) {
	rows, err := s.db.Query(`
		SELECT id, dev_id, dev_name, archetype, action_type, details, energy_cost, nxt_cost, created_at
		FROM actions ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("list actions: %w", err)
	}
	defer rows.Close()
	var out []core.ActionLogEntry
	for rows.Next() {
		var e core.ActionLogEntry
		if err := rows.Scan(&e.ID, &e.DevID, &e.DevName, &e.Archetype, &e.ActionType,
			&e.Details, &e.EnergyCost, &e.NXTCost, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan action: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// RecentChat returns the newest chat lines for a channel, optionally
// narrowed to one location.
func (s *Store) RecentChat(channel, location string, limit int) ([]core.ChatMessage, error) {
	query := `
		SELECT id, dev_id, dev_name, archetype, channel, COALESCE(location, ''), message, created_at
		FROM chat_messages WHERE channel = ?`
	args := []any{channel}
	if location != "" {
		query += ` AND location = ?`
		args = append(args, location)
	}
	query += ` ORDER BY id DESC LIMIT ?`
	args = append(args, limit)

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list chat: %w", err)
	}
	defer rows.Close()
	var out []core.ChatMessage
	for rows.Next() {
		var m core.ChatMessage
		if err := rows.Scan(&m.ID, &m.DevID, &m.DevName, &m.Archetype, &m.Channel,
			&m.Location, &m.Message, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan chat: %w", err)
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

// ActionCountSince counts executed turns after a cutoff, used by the
// status endpoint.
func (s *Store) ActionCountSince(cutoff time.Time) (int64, error) {
	var n int64
	err := s.db.QueryRow(`SELECT COUNT(*) FROM actions WHERE created_at >= ?`, cutoff).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count actions: %w", err)
	}
	return n, nil
}
