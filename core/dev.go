package core

import "time"

// Dev is an autonomous simulated developer owned by a player wallet.
type Dev struct {
	TokenID         int64     `json:"token_id"`
	Name            string    `json:"name"`
	OwnerAddress    string    `json:"owner_address"`
	Archetype       string    `json:"archetype"`
	Corporation     string    `json:"corporation"`
	RarityTier      string    `json:"rarity_tier"`
	PersonalitySeed int64     `json:"personality_seed"`
	Species         string    `json:"species"`
	Background      string    `json:"background"`
	Accessory       string    `json:"accessory"`
	Expression      string    `json:"expression"`
	SpecialEffect   string    `json:"special_effect"`
	Energy          int       `json:"energy"`
	MaxEnergy       int       `json:"max_energy"`
	Mood            string    `json:"mood"`
	Location        string    `json:"location"`
	BalanceNXT      int64     `json:"balance_nxt"`
	Reputation      int       `json:"reputation"`
	ProtocolsMade   int       `json:"protocols_created"`
	AIsMade         int       `json:"ais_created"`
	TotalEarned     int64     `json:"total_earned"`
	TotalSpent      int64     `json:"total_spent"`
	TotalInvested   int64     `json:"total_invested"`
	CodeReviewsDone int       `json:"code_reviews_done"`
	BugsFound       int       `json:"bugs_found"`
	CyclesActive    int       `json:"cycles_active"`
	Status          string    `json:"status"`
	LastActionType  string    `json:"last_action_type,omitempty"`
	LastMessage     string    `json:"last_message,omitempty"`
	NextCycleAt     time.Time `json:"next_cycle_at"`
	CycleInterval   int       `json:"cycle_interval_sec"`
	CreatedAt       time.Time `json:"created_at"`
}

// Player is the wallet-level aggregate a dev belongs to.
type Player struct {
	WalletAddress    string    `json:"wallet_address"`
	Corporation      string    `json:"corporation"`
	TotalDevsMinted  int       `json:"total_devs_minted"`
	BalanceClaimed   int64     `json:"balance_claimed"`
	BalanceEarned    int64     `json:"balance_total_earned"`
	LastActiveAt     time.Time `json:"last_active_at"`
}

// PlayerPrompt is a free-text instruction a player queued for a dev.
// At most one unconsumed prompt may exist per dev; the submission path
// enforces that and the engine consumes the oldest one per turn.
type PlayerPrompt struct {
	ID            string     `json:"id"`
	DevID         int64      `json:"dev_id"`
	PlayerAddress string     `json:"player_address"`
	PromptText    string     `json:"prompt_text"`
	Consumed      bool       `json:"consumed"`
	CreatedAt     time.Time  `json:"created_at"`
	ConsumedAt    *time.Time `json:"consumed_at,omitempty"`
}

// VisualTraits are the cosmetic attributes rolled at mint time.
type VisualTraits struct {
	Species       string `json:"species"`
	Background    string `json:"background"`
	Accessory     string `json:"accessory"`
	Expression    string `json:"expression"`
	SpecialEffect string `json:"special_effect"`
}
