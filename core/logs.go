package core

import "time"

// ActionLogEntry is the audit record appended for every executed turn.
// It is the sole channel external observers learn what happened.
type ActionLogEntry struct {
	ID         int64     `json:"id"`
	DevID      int64     `json:"dev_id"`
	DevName    string    `json:"dev_name"`
	Archetype  string    `json:"archetype"`
	ActionType string    `json:"action_type"`
	Details    string    `json:"details"` // JSON-encoded ActionDetails
	EnergyCost int       `json:"energy_cost"`
	NXTCost    int64     `json:"nxt_cost"`
	CreatedAt  time.Time `json:"created_at"`
}

// ChatMessage is one flavor line a dev said on a channel.
type ChatMessage struct {
	ID        int64     `json:"id"`
	DevID     int64     `json:"dev_id"`
	DevName   string    `json:"dev_name"`
	Archetype string    `json:"archetype"`
	Channel   string    `json:"channel"`
	Location  string    `json:"location,omitempty"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// BalanceSnapshot is the daily per-owner balance capture used for
// historical charting. Upserts are keyed by (wallet, date).
type BalanceSnapshot struct {
	WalletAddress    string    `json:"wallet_address"`
	BalanceClaimable int64     `json:"balance_claimable"`
	BalanceClaimed   int64     `json:"balance_claimed"`
	BalanceEarned    int64     `json:"balance_total_earned"`
	SnapshotDate     string    `json:"snapshot_date"` // YYYY-MM-DD
	CreatedAt        time.Time `json:"created_at"`
}
