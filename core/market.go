package core

import "time"

// Protocol is an investable asset created by a dev. Protocols are never
// deleted; a non-active status retires them from the market.
type Protocol struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	CreatorDevID  int64     `json:"creator_dev_id"`
	CodeQuality   int       `json:"code_quality"`
	Value         int64     `json:"value"`
	TotalInvested int64     `json:"total_invested"`
	InvestorCount int       `json:"investor_count"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

// Investment is the accumulated (dev, protocol) position. Repeated
// investment accumulates into the same row; a sale removes it entirely.
type Investment struct {
	DevID       int64 `json:"dev_id"`
	ProtocolID  int64 `json:"protocol_id"`
	Shares      int64 `json:"shares"`
	NXTInvested int64 `json:"nxt_invested"`
}

// AbsurdAI is the secondary creatable asset devs vote on.
type AbsurdAI struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	CreatorDevID  int64     `json:"creator_dev_id"`
	VoteCount     int       `json:"vote_count"`
	WeightedVotes float64   `json:"weighted_votes"`
	CreatedAt     time.Time `json:"created_at"`
}

// AIVote records one dev voting for one AI, at most once per pair.
type AIVote struct {
	VoterDevID int64   `json:"voter_dev_id"`
	AIID       int64   `json:"ai_id"`
	Weight     float64 `json:"weight"`
}
