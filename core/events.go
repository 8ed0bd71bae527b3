package core

import "time"

// EventEffects is the structured effects bag of a world event. The
// engine only applies the keys it recognizes; everything else is
// carried opaquely for the API and future event types.
type EventEffects map[string]float64

// Multiplier returns the effect for key, or 1 when absent or zero.
func (e EventEffects) Multiplier(key string) float64 {
	if e == nil {
		return 1
	}
	if v, ok := e[key]; ok && v != 0 {
		return v
	}
	return 1
}

// Recognized effect keys.
const (
	EffectCreateProtocolMultiplier = "create_protocol_multiplier"
	EffectCreateAIMultiplier       = "create_ai_multiplier"
	EffectInvestWeightBoost        = "invest_weight_boost"
	EffectSellWeightBoost          = "sell_weight_boost"
)

// WorldEvent is a time-boxed global modifier on the simulation.
type WorldEvent struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	EventType   string       `json:"event_type"`
	Effects     EventEffects `json:"effects"`
	IsActive    bool         `json:"is_active"`
	StartsAt    time.Time    `json:"starts_at"`
	EndsAt      time.Time    `json:"ends_at"`
}
