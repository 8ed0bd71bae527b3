package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/nxterminal/protocol-wars/core"
)

// UpsertPlayerOnMint creates the player row on first mint or bumps the
// mint counter on later ones.
func (s *Store) UpsertPlayerOnMint(tx *sql.Tx, wallet, corporation string, now time.Time) error {
	_, err := tx.Exec(`
		INSERT INTO players (wallet_address, corporation, last_active_at)
		VALUES (?, ?, ?)
		ON CONFLICT (wallet_address) DO UPDATE SET
			total_devs_minted = total_devs_minted + 1,
			last_active_at = excluded.last_active_at`,
		wallet, corporation, now)
	if err != nil {
		return fmt.Errorf("upsert player %s: %w", wallet, err)
	}
	return nil
}

// GetPlayer loads a player by wallet.
func (s *Store) GetPlayer(wallet string) (core.Player, error) {
	var p core.Player
	row := s.db.QueryRow(`
		SELECT wallet_address, corporation, total_devs_minted, balance_claimed,
			balance_total_earned, last_active_at
		FROM players WHERE wallet_address = ?`, wallet)
	err := row.Scan(&p.WalletAddress, &p.Corporation, &p.TotalDevsMinted,
		&p.BalanceClaimed, &p.BalanceEarned, &p.LastActiveAt)
	if err == sql.ErrNoRows {
		return p, err
	}
	if err != nil {
		return p, fmt.Errorf("get player %s: %w", wallet, err)
	}
	return p, nil
}

// SnapshotBalances upserts one balance snapshot per player for the
// given date, summing the player's dev balances as claimable. Running
// it twice on the same date overwrites, never duplicates.
func (s *Store) SnapshotBalances(date string) (int64, error) {
	res, err := s.db.Exec(`
		INSERT INTO balance_snapshots (wallet_address, balance_claimable, balance_claimed, balance_total_earned, snapshot_date)
		SELECT
			p.wallet_address,
			COALESCE(SUM(d.balance_nxt), 0),
			p.balance_claimed,
			p.balance_total_earned,
			?
		FROM players p
		LEFT JOIN devs d ON d.owner_address = p.wallet_address
		GROUP BY p.wallet_address, p.balance_claimed, p.balance_total_earned
		ON CONFLICT (wallet_address, snapshot_date) DO UPDATE SET
			balance_claimable = excluded.balance_claimable,
			balance_claimed = excluded.balance_claimed,
			balance_total_earned = excluded.balance_total_earned`, date)
	if err != nil {
		return 0, fmt.Errorf("snapshot balances: %w", err)
	}
	return res.RowsAffected()
}

// ListSnapshots returns a wallet's snapshots, newest date first.
func (s *Store) ListSnapshots(wallet string, limit int) ([]core.BalanceSnapshot, error) {
	rows, err := s.db.Query(`
		SELECT wallet_address, balance_claimable, balance_claimed, balance_total_earned, snapshot_date, created_at
		FROM balance_snapshots WHERE wallet_address = ?
		ORDER BY snapshot_date DESC LIMIT ?`, wallet, limit)
	if err != nil {
		return nil, fmt.Errorf("list snapshots: %w", err)
	}
	defer rows.Close()
	var out []core.BalanceSnapshot
	for rows.Next() {
		var b core.BalanceSnapshot
		if err := rows.Scan(&b.WalletAddress, &b.BalanceClaimable, &b.BalanceClaimed,
			&b.BalanceEarned, &b.SnapshotDate, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan snapshot: %w", err)
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

// TopDevsByBalance is the richest-devs leaderboard.
func (s *Store) TopDevsByBalance(limit int) ([]core.Dev, error) {
	rows, err := s.db.Query(`SELECT `+devColumns+` FROM devs ORDER BY balance_nxt DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("leaderboard devs: %w", err)
	}
	defer rows.Close()
	var out []core.Dev
	for rows.Next() {
		d, err := scanDev(rows)
		if err != nil {
			return nil, fmt.Errorf("scan dev: %w", err)
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

// TopDevsByReputation is the reputation leaderboard.
func (s *Store) TopDevsByReputation(limit int) ([]core.Dev, error) {
	rows, err := s.db.Query(`SELECT `+devColumns+` FROM devs ORDER BY reputation DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("leaderboard reputation: %w", err)
	}
	defer rows.Close()
	var out []core.Dev
	for rows.Next() {
		d, err := scanDev(rows)
		if err != nil {
			return nil, fmt.Errorf("scan dev: %w", err)
		}
		out = append(out, d)
	}
	return out, rows.Err()
}
