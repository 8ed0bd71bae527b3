package templates

import (
	"math/rand"
	"strconv"
	"strings"

	"github.com/nxterminal/protocol-wars/core"
)

type worldEventTemplate struct {
	Title   string
	Type    string
	Desc    string
	Effects core.EventEffects
}

var worldEventTemplates = []worldEventTemplate{
	{"DeFi Hackathon", "hackathon",
		"Build the best DeFi protocol. Creation rewards DOUBLED for {hours} hours!",
		core.EventEffects{"create_protocol_multiplier": 2.0, "create_ai_multiplier": 1.5}},
	{"AI Innovation Sprint", "hackathon",
		"Absurd AI competition! AI creation rewards TRIPLED for {hours} hours!",
		core.EventEffects{"create_ai_multiplier": 3.0, "vote_weight_multiplier": 2.0}},
	{"Market Crash", "crash",
		"Black swan event! All protocol values drop 20%. Time to buy the dip?",
		core.EventEffects{"protocol_value_multiplier": 0.8, "invest_weight_boost": 2.0}},
	{"Bull Run", "boom",
		"Markets pumping! All protocol values up 30%. WAGMI!",
		core.EventEffects{"protocol_value_multiplier": 1.3, "sell_weight_boost": 1.5}},
	{"Security Audit Week", "special",
		"Code review rewards doubled. Find bugs, earn reputation.",
		core.EventEffects{"review_reputation_multiplier": 2.0, "bug_find_chance_boost": 1.5}},
	{"Governance Crisis", "special",
		"All Fed devs called to Governance Hall. Triple reputation rewards there.",
		core.EventEffects{"reputation_multiplier": 3.0}},
	{"Meme Season", "special",
		"Absurd AI votes count DOUBLE. Influencers get 2x chat visibility.",
		core.EventEffects{"vote_weight_multiplier": 2.0, "influencer_chat_boost": 2.0}},
	{"VC Funding Round", "boom",
		"VC Tower investments yield 50% more returns for {hours} hours.",
		core.EventEffects{"invest_returns_multiplier": 1.5}},
	{"Open Source Festival", "special",
		"Protocol creation costs halved! Build in the Open Source Garden for bonus.",
		core.EventEffects{"create_protocol_cost_multiplier": 0.5}},
	{"Compute Shortage", "crash",
		"Server Farm capacity limited. Protocol builds 50% slower everywhere.",
		core.EventEffects{"create_protocol_energy_multiplier": 1.5}},
}

// WorldEvent rolls a random event template sized to durationHours.
// Times and activation are left to the caller.
func WorldEvent(rng *rand.Rand, durationHours int) core.WorldEvent {
	t := worldEventTemplates[rng.Intn(len(worldEventTemplates))]
	effects := make(core.EventEffects, len(t.Effects))
	for k, v := range t.Effects {
		effects[k] = v
	}
	return core.WorldEvent{
		Title:       t.Title,
		Description: strings.ReplaceAll(t.Desc, "{hours}", strconv.Itoa(durationHours)),
		EventType:   t.Type,
		Effects:     effects,
	}
}
