// Package personality holds the static behavior tables for the eight
// dev archetypes. Everything here is immutable configuration shared
// across concurrent decision evaluations; nothing mutates these maps.
package personality

import "github.com/nxterminal/protocol-wars/core"

// Archetypes in mint-weight order.
var Archetypes = []string{
	"10X_DEV", "LURKER", "DEGEN", "GRINDER",
	"INFLUENCER", "HACKTIVIST", "FED", "SCRIPT_KIDDIE",
}

// DefaultArchetype is the fallback for unknown archetype strings.
const DefaultArchetype = "GRINDER"

// Matrix maps archetype -> base action weights.
var Matrix = map[string]map[core.Action]float64{
	"10X_DEV":       {core.ActionCreateProtocol: 30, core.ActionCreateAI: 10, core.ActionInvest: 15, core.ActionSell: 5, core.ActionMove: 5, core.ActionChat: 15, core.ActionCodeReview: 15, core.ActionRest: 5},
	"LURKER":        {core.ActionCreateProtocol: 5, core.ActionCreateAI: 5, core.ActionInvest: 30, core.ActionSell: 15, core.ActionMove: 10, core.ActionChat: 5, core.ActionCodeReview: 20, core.ActionRest: 10},
	"DEGEN":         {core.ActionCreateProtocol: 10, core.ActionCreateAI: 10, core.ActionInvest: 35, core.ActionSell: 15, core.ActionMove: 5, core.ActionChat: 15, core.ActionCodeReview: 2, core.ActionRest: 8},
	"GRINDER":       {core.ActionCreateProtocol: 25, core.ActionCreateAI: 8, core.ActionInvest: 10, core.ActionSell: 5, core.ActionMove: 5, core.ActionChat: 10, core.ActionCodeReview: 25, core.ActionRest: 12},
	"INFLUENCER":    {core.ActionCreateProtocol: 8, core.ActionCreateAI: 20, core.ActionInvest: 10, core.ActionSell: 10, core.ActionMove: 10, core.ActionChat: 30, core.ActionCodeReview: 2, core.ActionRest: 10},
	"HACKTIVIST":    {core.ActionCreateProtocol: 15, core.ActionCreateAI: 10, core.ActionInvest: 10, core.ActionSell: 10, core.ActionMove: 15, core.ActionChat: 15, core.ActionCodeReview: 20, core.ActionRest: 5},
	"FED":           {core.ActionCreateProtocol: 15, core.ActionCreateAI: 5, core.ActionInvest: 10, core.ActionSell: 5, core.ActionMove: 5, core.ActionChat: 15, core.ActionCodeReview: 30, core.ActionRest: 15},
	"SCRIPT_KIDDIE": {core.ActionCreateProtocol: 20, core.ActionCreateAI: 15, core.ActionInvest: 15, core.ActionSell: 10, core.ActionMove: 10, core.ActionChat: 15, core.ActionCodeReview: 5, core.ActionRest: 10},
}

// BaseWeights returns a mutable copy of the archetype's base weights.
// Unknown archetypes fall back to the default archetype's table.
func BaseWeights(archetype string) map[core.Action]float64 {
	base, ok := Matrix[archetype]
	if !ok {
		base = Matrix[DefaultArchetype]
	}
	w := make(map[core.Action]float64, len(base))
	for a, v := range base {
		w[a] = v
	}
	return w
}

// Meta is per-archetype metadata beyond action weights.
type Meta struct {
	VoteWeight      float64
	QualityLow      int
	QualityHigh     int
	PromptInfluence float64
}

// ArchetypeMeta maps archetype -> metadata.
var ArchetypeMeta = map[string]Meta{
	"10X_DEV":       {VoteWeight: 1.0, QualityLow: 75, QualityHigh: 98, PromptInfluence: 1.2},
	"LURKER":        {VoteWeight: 2.0, QualityLow: 60, QualityHigh: 85, PromptInfluence: 0.7},
	"DEGEN":         {VoteWeight: 1.0, QualityLow: 30, QualityHigh: 70, PromptInfluence: 0.5},
	"GRINDER":       {VoteWeight: 1.0, QualityLow: 65, QualityHigh: 90, PromptInfluence: 1.5},
	"INFLUENCER":    {VoteWeight: 0.5, QualityLow: 20, QualityHigh: 60, PromptInfluence: 1.0},
	"HACKTIVIST":    {VoteWeight: 1.0, QualityLow: 50, QualityHigh: 80, PromptInfluence: 0.3},
	"FED":           {VoteWeight: 0.3, QualityLow: 70, QualityHigh: 95, PromptInfluence: 0.8},
	"SCRIPT_KIDDIE": {VoteWeight: 1.0, QualityLow: 15, QualityHigh: 75, PromptInfluence: 1.0},
}

// MetaFor returns the archetype's metadata, falling back to the default
// archetype for unknown strings.
func MetaFor(archetype string) Meta {
	if m, ok := ArchetypeMeta[archetype]; ok {
		return m
	}
	return ArchetypeMeta[DefaultArchetype]
}
