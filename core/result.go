package core

// ActionDetails is the typed per-action payload of an executed turn.
// Each action has its own struct so the executor's branches are
// coverage-checked at compile time; JSON encoding happens only at the
// storage boundary.
type ActionDetails interface {
	actionDetails()
}

// CreateProtocolDetails for CREATE_PROTOCOL.
type CreateProtocolDetails struct {
	ProtocolID  int64  `json:"protocol_id"`
	Name        string `json:"name"`
	Quality     int    `json:"quality"`
	Description string `json:"description"`
}

// CreateAIDetails for CREATE_AI.
type CreateAIDetails struct {
	AIID        int64  `json:"ai_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// InvestDetails for INVEST.
type InvestDetails struct {
	ProtocolID int64  `json:"protocol_id"`
	Name       string `json:"name"`
	Amount     int64  `json:"amount"`
}

// SellDetails for SELL.
type SellDetails struct {
	ProtocolID int64  `json:"protocol_id"`
	Name       string `json:"name"`
	SoldFor    int64  `json:"sold_for"`
	Invested   int64  `json:"invested"`
	PnL        int64  `json:"pnl"`
}

// MoveDetails for MOVE.
type MoveDetails struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// ChatDetails for CHAT.
type ChatDetails struct {
	Location string `json:"location"`
}

// CodeReviewDetails for CODE_REVIEW.
type CodeReviewDetails struct {
	ProtocolID int64  `json:"protocol_id"`
	Name       string `json:"name"`
	FoundBug   bool   `json:"found_bug"`
}

// RestDetails for REST.
type RestDetails struct {
	EnergyRestored int `json:"energy_restored"`
}

// PromptResponseDetails records an interpreted player prompt in the
// audit log.
type PromptResponseDetails struct {
	Event        string `json:"event"`
	PlayerPrompt string `json:"player_prompt"`
	Intent       string `json:"intent"`
	Compliance   string `json:"compliance"`
	Response     string `json:"response"`
}

// NoDetails marks a skipped action whose target vanished between the
// decision and the execution.
type NoDetails struct{}

func (CreateProtocolDetails) actionDetails() {}
func (CreateAIDetails) actionDetails()       {}
func (InvestDetails) actionDetails()         {}
func (SellDetails) actionDetails()           {}
func (MoveDetails) actionDetails()           {}
func (ChatDetails) actionDetails()           {}
func (CodeReviewDetails) actionDetails()     {}
func (RestDetails) actionDetails()           {}
func (PromptResponseDetails) actionDetails() {}
func (NoDetails) actionDetails()             {}

// ActionResult is what the executor hands back to the scheduler after
// one turn.
type ActionResult struct {
	Action      Action
	DevID       int64
	DevName     string
	Archetype   string
	Details     ActionDetails
	ChatMsg     string
	ChatChannel string // "trollbox" or "location", empty when silent
	EnergyCost  int
	NXTCost     int64
}
