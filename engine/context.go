// Package engine runs the simulation: the scheduler loop, the weighted
// decision engine and the transactional action executor. All randomness
// flows through an injected source so tests can fix outcomes.
package engine

import (
	"time"

	"github.com/nxterminal/protocol-wars/core"
)

// Context is the world snapshot a dev decides against.
type Context struct {
	HasProtocols   bool
	HasInvestments bool
	EventEffects   core.EventEffects

	// Set when a player prompt was consumed this turn.
	PromptMods           map[core.Action]float64
	PromptTargetLocation string
}

// BuildContext assembles the decision context for one dev.
func (e *Engine) BuildContext(dev *core.Dev, now time.Time) (*Context, error) {
	hasProtocols, err := e.store.HasActiveProtocols()
	if err != nil {
		return nil, err
	}
	hasInvestments, err := e.store.HasInvestments(dev.TokenID)
	if err != nil {
		return nil, err
	}
	effects, err := e.store.ActiveEventEffects(now)
	if err != nil {
		return nil, err
	}
	return &Context{
		HasProtocols:   hasProtocols,
		HasInvestments: hasInvestments,
		EventEffects:   effects,
	}, nil
}
