package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/nxterminal/protocol-wars/core"
)

const devColumns = `token_id, name, owner_address, archetype, corporation, rarity_tier,
	personality_seed, species, background, accessory, expression, special_effect,
	energy, max_energy, mood, location, balance_nxt, reputation,
	protocols_created, ais_created, total_earned, total_spent, total_invested,
	code_reviews_done, bugs_found, cycles_active, status,
	COALESCE(last_action_type, ''), COALESCE(last_message, ''),
	next_cycle_at, cycle_interval_sec, created_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDev(row rowScanner) (core.Dev, error) {
	var d core.Dev
	err := row.Scan(
		&d.TokenID, &d.Name, &d.OwnerAddress, &d.Archetype, &d.Corporation, &d.RarityTier,
		&d.PersonalitySeed, &d.Species, &d.Background, &d.Accessory, &d.Expression, &d.SpecialEffect,
		&d.Energy, &d.MaxEnergy, &d.Mood, &d.Location, &d.BalanceNXT, &d.Reputation,
		&d.ProtocolsMade, &d.AIsMade, &d.TotalEarned, &d.TotalSpent, &d.TotalInvested,
		&d.CodeReviewsDone, &d.BugsFound, &d.CyclesActive, &d.Status,
		&d.LastActionType, &d.LastMessage,
		&d.NextCycleAt, &d.CycleInterval, &d.CreatedAt,
	)
	return d, err
}

// InsertDev creates a freshly minted dev row.
func (s *Store) InsertDev(tx *sql.Tx, d *core.Dev) error {
	_, err := tx.Exec(`
		INSERT INTO devs (token_id, name, owner_address, archetype, corporation, rarity_tier,
			personality_seed, species, background, accessory, expression, special_effect,
			balance_nxt, total_earned, next_cycle_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		d.TokenID, d.Name, d.OwnerAddress, d.Archetype, d.Corporation, d.RarityTier,
		d.PersonalitySeed, d.Species, d.Background, d.Accessory, d.Expression, d.SpecialEffect,
		d.BalanceNXT, d.TotalEarned, d.NextCycleAt)
	if err != nil {
		return fmt.Errorf("insert dev %d: %w", d.TokenID, err)
	}
	return nil
}

// GetDev loads a single dev by token id.
func (s *Store) GetDev(tokenID int64) (core.Dev, error) {
	row := s.db.QueryRow(`SELECT `+devColumns+` FROM devs WHERE token_id = ?`, tokenID)
	d, err := scanDev(row)
	if err == sql.ErrNoRows {
		return d, err
	}
	if err != nil {
		return d, fmt.Errorf("get dev %d: %w", tokenID, err)
	}
	return d, nil
}

// GetDevTx loads a dev inside a transaction so the executor sees its
// own writes.
func (s *Store) GetDevTx(tx *sql.Tx, tokenID int64) (core.Dev, error) {
	row := tx.QueryRow(`SELECT `+devColumns+` FROM devs WHERE token_id = ?`, tokenID)
	return scanDev(row)
}

// ListDevs returns all devs, newest mint first.
func (s *Store) ListDevs() ([]core.Dev, error) {
	rows, err := s.db.Query(`SELECT ` + devColumns + ` FROM devs ORDER BY token_id DESC`)
	if err != nil {
		return nil, fmt.Errorf("list devs: %w", err)
	}
	defer rows.Close()
	var devs []core.Dev
	for rows.Next() {
		d, err := scanDev(rows)
		if err != nil {
			return nil, fmt.Errorf("scan dev: %w", err)
		}
		devs = append(devs, d)
	}
	return devs, rows.Err()
}

// ListDevsByOwner returns a player's devs.
func (s *Store) ListDevsByOwner(owner string) ([]core.Dev, error) {
	rows, err := s.db.Query(`SELECT `+devColumns+` FROM devs WHERE owner_address = ? ORDER BY token_id`, owner)
	if err != nil {
		return nil, fmt.Errorf("list devs for %s: %w", owner, err)
	}
	defer rows.Close()
	var devs []core.Dev
	for rows.Next() {
		d, err := scanDev(rows)
		if err != nil {
			return nil, fmt.Errorf("scan dev: %w", err)
		}
		devs = append(devs, d)
	}
	return devs, rows.Err()
}

// DueDevs returns active devs whose next cycle time has passed, oldest
// due first, capped at limit.
func (s *Store) DueDevs(now time.Time, limit int) ([]core.Dev, error) {
	rows, err := s.db.Query(`
		SELECT `+devColumns+`
		FROM devs
		WHERE status = 'active' AND next_cycle_at <= ?
		ORDER BY next_cycle_at ASC
		LIMIT ?`, now, limit)
	if err != nil {
		return nil, fmt.Errorf("fetch due devs: %w", err)
	}
	defer rows.Close()
	var devs []core.Dev
	for rows.Next() {
		d, err := scanDev(rows)
		if err != nil {
			return nil, fmt.Errorf("scan due dev: %w", err)
		}
		devs = append(devs, d)
	}
	return devs, rows.Err()
}

// DevNames returns the set of taken dev names for mint collision checks.
func (s *Store) DevNames(tx *sql.Tx) (map[string]bool, error) {
	rows, err := tx.Query(`SELECT name FROM devs`)
	if err != nil {
		return nil, fmt.Errorf("load dev names: %w", err)
	}
	defer rows.Close()
	names := map[string]bool{}
	for rows.Next() {
		var n string
		if err := rows.Scan(&n); err != nil {
			return nil, err
		}
		names[n] = true
	}
	return names, rows.Err()
}

// SpendOnCreateProtocol debits the creation costs and credits the
// reputation gain from shipping.
func (s *Store) SpendOnCreateProtocol(tx *sql.Tx, devID int64, energy int, nxt int64, repGain int) error {
	_, err := tx.Exec(`
		UPDATE devs SET
			energy = energy - ?,
			balance_nxt = balance_nxt - ?,
			total_spent = total_spent + ?,
			protocols_created = protocols_created + 1,
			reputation = reputation + ?
		WHERE token_id = ?`, energy, nxt, nxt, repGain, devID)
	return err
}

// SpendOnCreateAI debits the AI creation costs.
func (s *Store) SpendOnCreateAI(tx *sql.Tx, devID int64, energy int, nxt int64) error {
	_, err := tx.Exec(`
		UPDATE devs SET
			energy = energy - ?,
			balance_nxt = balance_nxt - ?,
			total_spent = total_spent + ?,
			ais_created = ais_created + 1
		WHERE token_id = ?`, energy, nxt, nxt, devID)
	return err
}

// SpendOnInvest debits the invested amount plus the energy cost.
func (s *Store) SpendOnInvest(tx *sql.Tx, devID int64, energy int, amount int64) error {
	_, err := tx.Exec(`
		UPDATE devs SET
			energy = energy - ?,
			balance_nxt = balance_nxt - ?,
			total_spent = total_spent + ?,
			total_invested = total_invested + ?
		WHERE token_id = ?`, energy, amount, amount, amount, devID)
	return err
}

// CreditSale adds sale proceeds to balance and lifetime earnings.
func (s *Store) CreditSale(tx *sql.Tx, devID int64, amount int64) error {
	_, err := tx.Exec(`
		UPDATE devs SET
			balance_nxt = balance_nxt + ?,
			total_earned = total_earned + ?
		WHERE token_id = ?`, amount, amount, devID)
	return err
}

// MoveDev relocates a dev and charges the travel energy.
func (s *Store) MoveDev(tx *sql.Tx, devID int64, energy int, location string) error {
	_, err := tx.Exec(`UPDATE devs SET energy = energy - ?, location = ? WHERE token_id = ?`,
		energy, location, devID)
	return err
}

// ApplyReview charges the review energy and credits reputation, more
// when a bug was found.
func (s *Store) ApplyReview(tx *sql.Tx, devID int64, energy int, foundBug bool) error {
	rep, bugInc := 1, 0
	if foundBug {
		rep, bugInc = 5, 1
	}
	_, err := tx.Exec(`
		UPDATE devs SET
			energy = energy - ?,
			code_reviews_done = code_reviews_done + 1,
			bugs_found = bugs_found + ?,
			reputation = reputation + ?
		WHERE token_id = ?`, energy, bugInc, rep, devID)
	return err
}

// RestoreEnergy adds energy capped at max_energy.
func (s *Store) RestoreEnergy(tx *sql.Tx, devID int64, amount int) error {
	_, err := tx.Exec(`UPDATE devs SET energy = MIN(max_energy, energy + ?) WHERE token_id = ?`,
		amount, devID)
	return err
}

// SetMood replaces the dev's mood.
func (s *Store) SetMood(tx *sql.Tx, devID int64, mood string) error {
	_, err := tx.Exec(`UPDATE devs SET mood = ? WHERE token_id = ?`, mood, devID)
	return err
}

// FinishCycle records the last action, the chat line if any, and
// schedules the next cycle.
func (s *Store) FinishCycle(tx *sql.Tx, devID int64, actionType, detailJSON, chatMsg, chatChannel string, now, next time.Time, intervalSec int) error {
	var msg, channel any
	if chatMsg != "" {
		msg = truncate(chatMsg, 500)
		channel = chatChannel
	}
	_, err := tx.Exec(`
		UPDATE devs SET
			last_action_type = ?,
			last_action_detail = ?,
			last_action_at = ?,
			last_message = ?,
			last_message_channel = ?,
			next_cycle_at = ?,
			cycle_interval_sec = ?,
			cycles_active = cycles_active + 1
		WHERE token_id = ?`,
		actionType, truncate(detailJSON, 500), now, msg, channel, next, intervalSec, devID)
	return err
}

// PaySalaries credits every active dev the salary plus energy regen,
// with rare tiers regenerating faster. Returns the devs paid.
func (s *Store) PaySalaries(amount int64) (int64, error) {
	res, err := s.db.Exec(`
		UPDATE devs SET
			balance_nxt = balance_nxt + ?,
			total_earned = total_earned + ?,
			energy = MIN(max_energy, energy + 1 +
				CASE rarity_tier
					WHEN 'rare' THEN 1
					WHEN 'legendary' THEN 1
					WHEN 'mythic' THEN 2
					ELSE 0
				END)
		WHERE status = 'active'`, amount, amount)
	if err != nil {
		return 0, fmt.Errorf("pay salaries: %w", err)
	}
	return res.RowsAffected()
}

func truncate(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}
