package core

// Action is one of the eight things a dev can do on its turn.
type Action string

const (
	ActionCreateProtocol Action = "CREATE_PROTOCOL"
	ActionCreateAI       Action = "CREATE_AI"
	ActionInvest         Action = "INVEST"
	ActionSell           Action = "SELL"
	ActionMove           Action = "MOVE"
	ActionChat           Action = "CHAT"
	ActionCodeReview     Action = "CODE_REVIEW"
	ActionRest           Action = "REST"
)

// AllActions in a fixed order so weighted sampling is deterministic
// under a fixed random source.
var AllActions = []Action{
	ActionCreateProtocol,
	ActionCreateAI,
	ActionInvest,
	ActionSell,
	ActionMove,
	ActionChat,
	ActionCodeReview,
	ActionRest,
}

// Moods a dev can be in.
var Moods = []string{"neutral", "excited", "angry", "depressed", "focused"}

// Locations in the simulation world.
var Locations = []string{
	"HACKATHON_HALL",
	"THE_PIT",
	"DARK_WEB",
	"VC_TOWER",
	"HYPE_HAUS",
	"SERVER_FARM",
	"OPEN_SOURCE_GARDEN",
	"GOVERNANCE_HALL",
	"THE_GRAVEYARD",
	"BOARD_ROOM",
}

// ValidLocation reports whether loc is part of the world map.
func ValidLocation(loc string) bool {
	for _, l := range Locations {
		if l == loc {
			return true
		}
	}
	return false
}
