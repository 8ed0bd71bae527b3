package engine

import (
	"math/rand"

	"github.com/nxterminal/protocol-wars/config"
	"github.com/nxterminal/protocol-wars/core"
	"github.com/nxterminal/protocol-wars/personality"
)

// ApplyModifiers layers every constraint onto the base weights in a
// fixed order: hard zeroing first, then multiplicative stacking, then
// the per-dev seeded jitter. The map is mutated in place.
func ApplyModifiers(w map[core.Action]float64, dev *core.Dev, ctx *Context) {
	// Energy gates. Investing and selling share the same gate.
	if dev.Energy < config.CostCreateProtocolEnergy {
		w[core.ActionCreateProtocol] = 0
	}
	if dev.Energy < config.CostCreateAIEnergy {
		w[core.ActionCreateAI] = 0
	}
	if dev.Energy < config.CostReviewEnergy {
		w[core.ActionCodeReview] = 0
	}
	if dev.Energy < config.CostMoveEnergy {
		w[core.ActionMove] = 0
	}
	if dev.Energy < config.CostInvestEnergy {
		w[core.ActionInvest] = 0
		w[core.ActionSell] = 0
	}

	// Energy bands.
	switch {
	case dev.Energy <= 2:
		w[core.ActionRest] *= 4.0
		w[core.ActionCreateProtocol] *= 0.1
		w[core.ActionCreateAI] *= 0.1
		w[core.ActionCodeReview] *= 0.1
	case dev.Energy <= 5:
		w[core.ActionRest] *= 1.5
		w[core.ActionCreateProtocol] *= 0.5
	case dev.Energy >= 8:
		w[core.ActionCreateProtocol] *= 2.0
		w[core.ActionRest] *= 0.1
	}

	// Balance gates.
	if dev.BalanceNXT < config.CostCreateProtocolNXT {
		w[core.ActionCreateProtocol] = 0
	}
	if dev.BalanceNXT < config.CostCreateAINXT {
		w[core.ActionCreateAI] = 0
	}
	if dev.BalanceNXT < config.MinInvestBalance {
		w[core.ActionInvest] = 0
	}

	// Mood and location.
	for action, mult := range personality.MoodModifiers[dev.Mood] {
		w[action] *= mult
	}
	for action, mult := range personality.LocationModifiers[dev.Location] {
		w[action] *= mult
	}

	// Structural gates: nothing to invest in, review, or sell.
	if !ctx.HasProtocols {
		w[core.ActionInvest] = 0
		w[core.ActionSell] = 0
		w[core.ActionCodeReview] = 0
	}
	if !ctx.HasInvestments {
		w[core.ActionSell] = 0
	}

	// Active world event.
	w[core.ActionCreateProtocol] *= ctx.EventEffects.Multiplier(core.EffectCreateProtocolMultiplier)
	w[core.ActionCreateAI] *= ctx.EventEffects.Multiplier(core.EffectCreateAIMultiplier)
	w[core.ActionInvest] *= ctx.EventEffects.Multiplier(core.EffectInvestWeightBoost)
	w[core.ActionSell] *= ctx.EventEffects.Multiplier(core.EffectSellWeightBoost)

	// Player prompt modifiers.
	for action, mult := range ctx.PromptMods {
		w[action] *= mult
	}

	// Personality jitter, deterministic per dev. The seeded source
	// gives each dev a stable bias of up to 15% either way.
	jitter := rand.New(rand.NewSource(dev.PersonalitySeed))
	for _, action := range core.AllActions {
		if w[action] > 0 {
			w[action] *= 0.85 + jitter.Float64()*0.30
		}
	}
}

// Decide picks the dev's next action by weighted random sampling over
// the modified personality weights. A fully zeroed table means the dev
// can do nothing but rest.
func Decide(rng *rand.Rand, dev *core.Dev, ctx *Context) core.Action {
	w := personality.BaseWeights(dev.Archetype)
	ApplyModifiers(w, dev, ctx)

	var total float64
	for _, a := range core.AllActions {
		total += w[a]
	}
	if total == 0 {
		return core.ActionRest
	}

	r := rng.Float64() * total
	for _, a := range core.AllActions {
		r -= w[a]
		if r < 0 {
			return a
		}
	}
	return core.ActionRest
}
