package storage

import (
	"database/sql"
	"fmt"

	"github.com/nxterminal/protocol-wars/core"
)

// InsertProtocol creates a protocol and returns its id.
func (s *Store) InsertProtocol(tx *sql.Tx, p *core.Protocol) (int64, error) {
	res, err := tx.Exec(`
		INSERT INTO protocols (name, description, creator_dev_id, code_quality, value)
		VALUES (?, ?, ?, ?, ?)`,
		p.Name, p.Description, p.CreatorDevID, p.CodeQuality, p.Value)
	if err != nil {
		return 0, fmt.Errorf("insert protocol: %w", err)
	}
	return res.LastInsertId()
}

// RandomActiveProtocol picks a uniformly random active protocol, or
// sql.ErrNoRows when the market is empty.
func (s *Store) RandomActiveProtocol(tx *sql.Tx) (core.Protocol, error) {
	var p core.Protocol
	row := tx.QueryRow(`
		SELECT id, name, code_quality, value FROM protocols
		WHERE status = 'active' ORDER BY RANDOM() LIMIT 1`)
	err := row.Scan(&p.ID, &p.Name, &p.CodeQuality, &p.Value)
	return p, err
}

// UpsertInvestment accumulates amount into the (dev, protocol) position.
func (s *Store) UpsertInvestment(tx *sql.Tx, devID, protocolID, amount int64) error {
	_, err := tx.Exec(`
		INSERT INTO protocol_investments (dev_id, protocol_id, shares, nxt_invested)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (dev_id, protocol_id)
		DO UPDATE SET shares = shares + excluded.shares,
			nxt_invested = nxt_invested + excluded.nxt_invested`,
		devID, protocolID, amount, amount)
	if err != nil {
		return fmt.Errorf("upsert investment: %w", err)
	}
	return nil
}

// ApplyInvestment bumps the protocol's value by half the invested
// amount and refreshes its investor statistics.
func (s *Store) ApplyInvestment(tx *sql.Tx, protocolID, amount int64) error {
	_, err := tx.Exec(`
		UPDATE protocols SET
			value = value + ?,
			total_invested = total_invested + ?,
			investor_count = (SELECT COUNT(DISTINCT dev_id) FROM protocol_investments WHERE protocol_id = ?)
		WHERE id = ?`, amount/2, amount, protocolID, protocolID)
	return err
}

// investmentPick is a position joined with its protocol for selling.
type investmentPick struct {
	ProtocolID  int64
	Shares      int64
	NXTInvested int64
	Name        string
}

// RandomInvestment picks a random position held by the dev, or
// sql.ErrNoRows when it has none.
func (s *Store) RandomInvestment(tx *sql.Tx, devID int64) (protocolID, shares, invested int64, name string, err error) {
	var pick investmentPick
	row := tx.QueryRow(`
		SELECT pi.protocol_id, pi.shares, pi.nxt_invested, p.name
		FROM protocol_investments pi
		JOIN protocols p ON p.id = pi.protocol_id
		WHERE pi.dev_id = ?
		ORDER BY RANDOM() LIMIT 1`, devID)
	err = row.Scan(&pick.ProtocolID, &pick.Shares, &pick.NXTInvested, &pick.Name)
	return pick.ProtocolID, pick.Shares, pick.NXTInvested, pick.Name, err
}

// DeleteInvestment removes the position entirely.
func (s *Store) DeleteInvestment(tx *sql.Tx, devID, protocolID int64) error {
	_, err := tx.Exec(`DELETE FROM protocol_investments WHERE dev_id = ? AND protocol_id = ?`,
		devID, protocolID)
	return err
}

// ReduceProtocolValue lowers a protocol's value, floored at zero.
func (s *Store) ReduceProtocolValue(tx *sql.Tx, protocolID, by int64) error {
	_, err := tx.Exec(`UPDATE protocols SET value = MAX(0, value - ?) WHERE id = ?`, by, protocolID)
	return err
}

// DamageProtocol applies a found bug: value and quality both drop,
// floored at zero.
func (s *Store) DamageProtocol(tx *sql.Tx, protocolID int64, damage int64, qualityDrop int) error {
	_, err := tx.Exec(`
		UPDATE protocols SET
			value = MAX(0, value - ?),
			code_quality = MAX(0, code_quality - ?)
		WHERE id = ?`, damage, qualityDrop, protocolID)
	return err
}

// HasActiveProtocols reports whether any protocol is investable.
func (s *Store) HasActiveProtocols() (bool, error) {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM protocols WHERE status = 'active'`).Scan(&n); err != nil {
		return false, fmt.Errorf("count protocols: %w", err)
	}
	return n > 0, nil
}

// HasInvestments reports whether the dev holds any position.
func (s *Store) HasInvestments(devID int64) (bool, error) {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM protocol_investments WHERE dev_id = ?`, devID).Scan(&n); err != nil {
		return false, fmt.Errorf("count investments: %w", err)
	}
	return n > 0, nil
}

// ActiveProtocolNames lists names for prompt protocol mentions.
func (s *Store) ActiveProtocolNames(tx *sql.Tx) ([]string, error) {
	rows, err := tx.Query(`SELECT name FROM protocols WHERE status = 'active'`)
	if err != nil {
		return nil, fmt.Errorf("list protocol names: %w", err)
	}
	defer rows.Close()
	var names []string
	for rows.Next() {
		var n string
		if err := rows.Scan(&n); err != nil {
			return nil, err
		}
		names = append(names, n)
	}
	return names, rows.Err()
}

// ListProtocols returns protocols by descending value.
func (s *Store) ListProtocols(limit int) ([]core.Protocol, error) {
	rows, err := s.db.Query(`
		SELECT id, name, description, creator_dev_id, code_quality, value,
			total_invested, investor_count, status, created_at
		FROM protocols ORDER BY value DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("list protocols: %w", err)
	}
	defer rows.Close()
	var out []core.Protocol
	for rows.Next() {
		var p core.Protocol
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.CreatorDevID, &p.CodeQuality,
			&p.Value, &p.TotalInvested, &p.InvestorCount, &p.Status, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan protocol: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// InsertAI creates an absurd AI and returns its id.
func (s *Store) InsertAI(tx *sql.Tx, ai *core.AbsurdAI) (int64, error) {
	res, err := tx.Exec(`
		INSERT INTO absurd_ais (name, description, creator_dev_id)
		VALUES (?, ?, ?)`, ai.Name, ai.Description, ai.CreatorDevID)
	if err != nil {
		return 0, fmt.Errorf("insert ai: %w", err)
	}
	return res.LastInsertId()
}

// RandomOtherAI picks an AI not created by the voter, or sql.ErrNoRows.
func (s *Store) RandomOtherAI(tx *sql.Tx, voterDevID int64) (int64, error) {
	var id int64
	err := tx.QueryRow(`
		SELECT id FROM absurd_ais WHERE creator_dev_id != ?
		ORDER BY RANDOM() LIMIT 1`, voterDevID).Scan(&id)
	return id, err
}

// InsertVote records one vote per (voter, ai) pair; repeats are no-ops.
func (s *Store) InsertVote(tx *sql.Tx, voterDevID, aiID int64, weight float64) error {
	_, err := tx.Exec(`
		INSERT INTO ai_votes (voter_dev_id, ai_id, weight)
		VALUES (?, ?, ?)
		ON CONFLICT (voter_dev_id, ai_id) DO NOTHING`,
		voterDevID, aiID, weight)
	return err
}

// RecountVotes recomputes the AI's denormalized vote totals from the
// votes table.
func (s *Store) RecountVotes(tx *sql.Tx, aiID int64) error {
	_, err := tx.Exec(`
		UPDATE absurd_ais SET
			vote_count = (SELECT COUNT(*) FROM ai_votes WHERE ai_id = ?),
			weighted_votes = (SELECT COALESCE(SUM(weight), 0) FROM ai_votes WHERE ai_id = ?)
		WHERE id = ?`, aiID, aiID, aiID)
	return err
}

// ListAIs returns AIs by descending weighted votes.
func (s *Store) ListAIs(limit int) ([]core.AbsurdAI, error) {
	rows, err := s.db.Query(`
		SELECT id, name, description, creator_dev_id, vote_count, weighted_votes, created_at
		FROM absurd_ais ORDER BY weighted_votes DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("list ais: %w", err)
	}
	defer rows.Close()
	var out []core.AbsurdAI
	for rows.Next() {
		var ai core.AbsurdAI
		if err := rows.Scan(&ai.ID, &ai.Name, &ai.Description, &ai.CreatorDevID,
			&ai.VoteCount, &ai.WeightedVotes, &ai.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan ai: %w", err)
		}
		out = append(out, ai)
	}
	return out, rows.Err()
}
