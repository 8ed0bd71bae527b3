package storage

import (
	"fmt"

	"github.com/nxterminal/protocol-wars/core"
)

// SimStats aggregates the economy for the status endpoint.
type SimStats struct {
	TotalDevs       int64   `json:"total_devs"`
	ActiveDevs      int64   `json:"active_devs"`
	TotalNXT        int64   `json:"total_nxt_in_wallets"`
	TotalProtocols  int64   `json:"total_protocols"`
	ActiveProtocols int64   `json:"active_protocols"`
	TotalAIs        int64   `json:"total_absurd_ais"`
	AvgEnergy       float64 `json:"avg_energy"`
	AvgReputation   float64 `json:"avg_reputation"`
}

func (s *Store) Stats() (SimStats, error) {
	var st SimStats
	err := s.db.QueryRow(`
		SELECT COUNT(*),
		       COALESCE(SUM(CASE WHEN status = 'active' THEN 1 ELSE 0 END), 0),
		       COALESCE(SUM(balance_nxt), 0),
		       COALESCE(SUM(protocols_created), 0),
		       COALESCE(SUM(ais_created), 0),
		       COALESCE(AVG(energy), 0),
		       COALESCE(AVG(reputation), 0)
		FROM devs`).Scan(
		&st.TotalDevs, &st.ActiveDevs, &st.TotalNXT,
		&st.TotalProtocols, &st.TotalAIs, &st.AvgEnergy, &st.AvgReputation)
	if err != nil {
		return st, fmt.Errorf("failed to aggregate dev stats: %w", err)
	}
	if err := s.db.QueryRow(
		`SELECT COUNT(*) FROM protocols WHERE status = 'active'`).Scan(&st.ActiveProtocols); err != nil {
		return st, fmt.Errorf("failed to count protocols: %w", err)
	}
	return st, nil
}

// DevActions returns a single dev's action history, newest first.
func (s *Store) DevActions(devID int64, limit int) ([]core.ActionLogEntry, error) {
	rows, err := s.db.Query(`
		SELECT id, dev_id, dev_name, archetype, action_type, details, created_at
		FROM actions WHERE dev_id = ? ORDER BY id DESC LIMIT ?`, devID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query dev actions: %w", err)
	}
	defer rows.Close()

	var entries []core.ActionLogEntry
	for rows.Next() {
		var e core.ActionLogEntry
		if err := rows.Scan(&e.ID, &e.DevID, &e.DevName, &e.Archetype,
			&e.ActionType, &e.Details, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan action: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// DevProtocols returns the protocols a dev created, newest first.
func (s *Store) DevProtocols(devID int64) ([]core.Protocol, error) {
	rows, err := s.db.Query(`
		SELECT id, name, description, creator_dev_id, code_quality, value,
		       total_invested, investor_count, status, created_at
		FROM protocols WHERE creator_dev_id = ? ORDER BY id DESC`, devID)
	if err != nil {
		return nil, fmt.Errorf("failed to query dev protocols: %w", err)
	}
	defer rows.Close()

	var protos []core.Protocol
	for rows.Next() {
		var p core.Protocol
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.CreatorDevID,
			&p.CodeQuality, &p.Value, &p.TotalInvested, &p.InvestorCount,
			&p.Status, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan protocol: %w", err)
		}
		protos = append(protos, p)
	}
	return protos, rows.Err()
}

// MaxTokenID returns the highest minted token id, or 0 when no devs exist.
func (s *Store) MaxTokenID() (int64, error) {
	var id int64
	if err := s.db.QueryRow(`SELECT COALESCE(MAX(token_id), 0) FROM devs`).Scan(&id); err != nil {
		return 0, fmt.Errorf("failed to query max token id: %w", err)
	}
	return id, nil
}
