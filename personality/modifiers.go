package personality

import "github.com/nxterminal/protocol-wars/core"

// MoodModifiers maps mood -> action weight multipliers. Neutral has no
// entry; absent actions multiply by 1.
var MoodModifiers = map[string]map[core.Action]float64{
	"angry":     {core.ActionChat: 2.0, core.ActionCodeReview: 1.5, core.ActionRest: 0.5},
	"excited":   {core.ActionCreateProtocol: 1.5, core.ActionCreateAI: 2.0, core.ActionInvest: 1.5},
	"depressed": {core.ActionRest: 2.0, core.ActionChat: 0.5, core.ActionCreateProtocol: 0.3},
	"focused":   {core.ActionCreateProtocol: 2.0, core.ActionCodeReview: 1.5, core.ActionChat: 0.3},
}

// LocationModifiers maps location -> action weight multipliers.
// BOARD_ROOM is deliberately flavorless.
var LocationModifiers = map[string]map[core.Action]float64{
	"HACKATHON_HALL":     {core.ActionCreateProtocol: 2.5, core.ActionCreateAI: 2.0},
	"THE_PIT":            {core.ActionInvest: 2.5, core.ActionSell: 2.0},
	"DARK_WEB":           {core.ActionCodeReview: 2.0, core.ActionChat: 1.5},
	"VC_TOWER":           {core.ActionInvest: 2.0},
	"HYPE_HAUS":          {core.ActionChat: 3.0, core.ActionCreateAI: 1.5},
	"SERVER_FARM":        {core.ActionCreateProtocol: 1.8},
	"OPEN_SOURCE_GARDEN": {core.ActionCreateProtocol: 1.5},
	"GOVERNANCE_HALL":    {core.ActionCodeReview: 2.0, core.ActionRest: 1.5},
	"THE_GRAVEYARD":      {core.ActionChat: 1.5, core.ActionMove: 1.5},
	"BOARD_ROOM":         {},
}

// ComplianceRates maps archetype -> base probability of following a
// player prompt.
var ComplianceRates = map[string]float64{
	"10X_DEV":       0.75,
	"LURKER":        0.50,
	"DEGEN":         0.30,
	"GRINDER":       0.85,
	"INFLUENCER":    0.60,
	"HACKTIVIST":    0.20,
	"FED":           0.70,
	"SCRIPT_KIDDIE": 0.65,
}

// MoodComplianceMod maps mood -> compliance rate multiplier.
var MoodComplianceMod = map[string]float64{
	"neutral":   1.0,
	"excited":   1.2,
	"angry":     0.5,
	"depressed": 0.7,
	"focused":   1.3,
}

// ComplianceRate returns the effective, mood-adjusted compliance rate
// capped at 0.95. Unknown archetypes use the default archetype's base
// rate and unknown moods multiply by 1.
func ComplianceRate(archetype, mood string) float64 {
	base, ok := ComplianceRates[archetype]
	if !ok {
		base = ComplianceRates[DefaultArchetype]
	}
	mod, ok := MoodComplianceMod[mood]
	if !ok {
		mod = 1.0
	}
	rate := base * mod
	if rate > 0.95 {
		rate = 0.95
	}
	return rate
}
