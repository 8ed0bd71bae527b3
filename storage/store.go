// Package storage is the relational persistence layer. All simulation
// state lives in SQLite; every mutating engine path runs inside a
// transaction obtained from WithTx so one dev's turn commits or rolls
// back as a unit.
package storage

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// Store wraps the database handle and exposes the repository methods.
type Store struct {
	db *sql.DB
}

// Open opens (and creates if needed) the database at path and applies
// the schema. Use ":memory:" for tests.
func Open(path string) (*Store, error) {
	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	// SQLite allows a single writer; serializing through one
	// connection avoids SQLITE_BUSY under the scheduler.
	db.SetMaxOpenConns(1)

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the underlying handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// DB exposes the raw handle for read-only API queries.
func (s *Store) DB() *sql.DB {
	return s.db
}

// WithTx runs fn inside a transaction, committing on nil and rolling
// back on error or panic.
func (s *Store) WithTx(fn func(tx *sql.Tx) error) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			panic(p)
		}
	}()
	if err := fn(tx); err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS devs (
		token_id INTEGER PRIMARY KEY,
		name TEXT NOT NULL UNIQUE,
		owner_address TEXT NOT NULL,
		archetype TEXT NOT NULL,
		corporation TEXT NOT NULL DEFAULT '',
		rarity_tier TEXT NOT NULL DEFAULT 'common',
		personality_seed INTEGER NOT NULL DEFAULT 0,
		species TEXT NOT NULL DEFAULT '',
		background TEXT NOT NULL DEFAULT '',
		accessory TEXT NOT NULL DEFAULT '',
		expression TEXT NOT NULL DEFAULT '',
		special_effect TEXT NOT NULL DEFAULT '',
		energy INTEGER NOT NULL DEFAULT 10,
		max_energy INTEGER NOT NULL DEFAULT 10,
		mood TEXT NOT NULL DEFAULT 'neutral',
		location TEXT NOT NULL DEFAULT 'BOARD_ROOM',
		balance_nxt INTEGER NOT NULL DEFAULT 0,
		reputation INTEGER NOT NULL DEFAULT 0,
		protocols_created INTEGER NOT NULL DEFAULT 0,
		ais_created INTEGER NOT NULL DEFAULT 0,
		total_earned INTEGER NOT NULL DEFAULT 0,
		total_spent INTEGER NOT NULL DEFAULT 0,
		total_invested INTEGER NOT NULL DEFAULT 0,
		code_reviews_done INTEGER NOT NULL DEFAULT 0,
		bugs_found INTEGER NOT NULL DEFAULT 0,
		cycles_active INTEGER NOT NULL DEFAULT 0,
		status TEXT NOT NULL DEFAULT 'active',
		last_action_type TEXT,
		last_action_detail TEXT,
		last_action_at TIMESTAMP,
		last_message TEXT,
		last_message_channel TEXT,
		next_cycle_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		cycle_interval_sec INTEGER NOT NULL DEFAULT 720,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE INDEX IF NOT EXISTS idx_devs_due ON devs (status, next_cycle_at)`,
	`CREATE INDEX IF NOT EXISTS idx_devs_owner ON devs (owner_address)`,

	`CREATE TABLE IF NOT EXISTS protocols (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		creator_dev_id INTEGER NOT NULL REFERENCES devs(token_id),
		code_quality INTEGER NOT NULL DEFAULT 0,
		value INTEGER NOT NULL DEFAULT 0,
		total_invested INTEGER NOT NULL DEFAULT 0,
		investor_count INTEGER NOT NULL DEFAULT 0,
		status TEXT NOT NULL DEFAULT 'active',
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE INDEX IF NOT EXISTS idx_protocols_status ON protocols (status)`,

	`CREATE TABLE IF NOT EXISTS protocol_investments (
		dev_id INTEGER NOT NULL REFERENCES devs(token_id),
		protocol_id INTEGER NOT NULL REFERENCES protocols(id),
		shares INTEGER NOT NULL DEFAULT 0,
		nxt_invested INTEGER NOT NULL DEFAULT 0,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (dev_id, protocol_id)
	)`,

	`CREATE TABLE IF NOT EXISTS absurd_ais (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		creator_dev_id INTEGER NOT NULL REFERENCES devs(token_id),
		vote_count INTEGER NOT NULL DEFAULT 0,
		weighted_votes REAL NOT NULL DEFAULT 0,
		status TEXT NOT NULL DEFAULT 'active',
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,

	`CREATE TABLE IF NOT EXISTS ai_votes (
		voter_dev_id INTEGER NOT NULL REFERENCES devs(token_id),
		ai_id INTEGER NOT NULL REFERENCES absurd_ais(id),
		weight REAL NOT NULL DEFAULT 1,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (voter_dev_id, ai_id)
	)`,

	`CREATE TABLE IF NOT EXISTS player_prompts (
		id TEXT PRIMARY KEY,
		dev_id INTEGER NOT NULL REFERENCES devs(token_id),
		player_address TEXT NOT NULL,
		prompt_text TEXT NOT NULL,
		consumed INTEGER NOT NULL DEFAULT 0,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		consumed_at TIMESTAMP
	)`,
	`CREATE INDEX IF NOT EXISTS idx_prompts_pending ON player_prompts (dev_id, consumed, created_at)`,

	`CREATE TABLE IF NOT EXISTS actions (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		dev_id INTEGER NOT NULL,
		dev_name TEXT NOT NULL,
		archetype TEXT NOT NULL,
		action_type TEXT NOT NULL,
		details TEXT NOT NULL DEFAULT '{}',
		energy_cost INTEGER NOT NULL DEFAULT 0,
		nxt_cost INTEGER NOT NULL DEFAULT 0,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE INDEX IF NOT EXISTS idx_actions_created ON actions (created_at DESC)`,

	`CREATE TABLE IF NOT EXISTS chat_messages (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		dev_id INTEGER NOT NULL,
		dev_name TEXT NOT NULL,
		archetype TEXT NOT NULL,
		channel TEXT NOT NULL,
		location TEXT,
		message TEXT NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE INDEX IF NOT EXISTS idx_chat_channel ON chat_messages (channel, created_at DESC)`,

	`CREATE TABLE IF NOT EXISTS world_events (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		event_type TEXT NOT NULL,
		effects TEXT NOT NULL DEFAULT '{}',
		is_active INTEGER NOT NULL DEFAULT 1,
		starts_at TIMESTAMP NOT NULL,
		ends_at TIMESTAMP NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,

	`CREATE TABLE IF NOT EXISTS players (
		wallet_address TEXT PRIMARY KEY,
		corporation TEXT NOT NULL DEFAULT '',
		total_devs_minted INTEGER NOT NULL DEFAULT 1,
		balance_claimed INTEGER NOT NULL DEFAULT 0,
		balance_total_earned INTEGER NOT NULL DEFAULT 0,
		last_active_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,

	`CREATE TABLE IF NOT EXISTS balance_snapshots (
		wallet_address TEXT NOT NULL,
		balance_claimable INTEGER NOT NULL DEFAULT 0,
		balance_claimed INTEGER NOT NULL DEFAULT 0,
		balance_total_earned INTEGER NOT NULL DEFAULT 0,
		snapshot_date TEXT NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (wallet_address, snapshot_date)
	)`,
}

func (s *Store) migrate() error {
	for _, stmt := range schema {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("apply schema: %w", err)
		}
	}
	return nil
}
