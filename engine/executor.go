package engine

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"math/rand"
	"time"

	"github.com/nxterminal/protocol-wars/config"
	"github.com/nxterminal/protocol-wars/core"
	"github.com/nxterminal/protocol-wars/personality"
	"github.com/nxterminal/protocol-wars/templates"
)

// Execute performs the chosen action against the store inside tx and
// returns what happened. Costs are debited, the audit row and any chat
// line are written, and the dev is rescheduled, all in the caller's
// transaction.
func (e *Engine) Execute(tx *sql.Tx, dev *core.Dev, action core.Action, ctx *Context) (core.ActionResult, error) {
	result := core.ActionResult{
		Action:    action,
		DevID:     dev.TokenID,
		DevName:   dev.Name,
		Archetype: dev.Archetype,
		Details:   core.NoDetails{},
	}

	var err error
	switch action {
	case core.ActionCreateProtocol:
		err = e.execCreateProtocol(tx, dev, &result)
	case core.ActionCreateAI:
		err = e.execCreateAI(tx, dev, &result)
	case core.ActionInvest:
		err = e.execInvest(tx, dev, &result)
	case core.ActionSell:
		err = e.execSell(tx, dev, &result)
	case core.ActionMove:
		err = e.execMove(tx, dev, ctx, &result)
	case core.ActionChat:
		err = e.execChat(dev, &result)
	case core.ActionCodeReview:
		err = e.execCodeReview(tx, dev, &result)
	case core.ActionRest:
		err = e.execRest(tx, dev, &result)
	}
	if err != nil {
		return result, fmt.Errorf("execute %s for dev %d: %w", action, dev.TokenID, err)
	}

	if err := e.applyPostEffects(tx, dev, action); err != nil {
		return result, fmt.Errorf("post effects for dev %d: %w", dev.TokenID, err)
	}
	if err := e.logTurn(tx, dev, &result, ctx); err != nil {
		return result, fmt.Errorf("log turn for dev %d: %w", dev.TokenID, err)
	}
	return result, nil
}

func (e *Engine) execCreateProtocol(tx *sql.Tx, dev *core.Dev, result *core.ActionResult) error {
	name := templates.ProtocolName(e.rng)
	desc := templates.ProtocolDescription(e.rng)
	meta := personality.MetaFor(dev.Archetype)
	quality := randRange(e.rng, meta.QualityLow, meta.QualityHigh) + config.CodeQualityBonus[dev.RarityTier]
	if quality > 100 {
		quality = 100
	}
	value := int64(1000 + quality*10)

	id, err := e.store.InsertProtocol(tx, &core.Protocol{
		Name: name, Description: desc, CreatorDevID: dev.TokenID,
		CodeQuality: quality, Value: value,
	})
	if err != nil {
		return err
	}
	if err := e.store.SpendOnCreateProtocol(tx, dev.TokenID,
		config.CostCreateProtocolEnergy, config.CostCreateProtocolNXT, quality/10); err != nil {
		return err
	}

	result.EnergyCost = config.CostCreateProtocolEnergy
	result.NXTCost = config.CostCreateProtocolNXT
	result.Details = core.CreateProtocolDetails{ProtocolID: id, Name: name, Quality: quality, Description: desc}
	result.ChatMsg = templates.ChatMessage(e.rng, dev.Archetype, templates.CtxCreatedProtocol, name)
	result.ChatChannel = "trollbox"
	return nil
}

func (e *Engine) execCreateAI(tx *sql.Tx, dev *core.Dev, result *core.ActionResult) error {
	name := templates.AIName(e.rng)
	desc := templates.AIDescription(e.rng)

	id, err := e.store.InsertAI(tx, &core.AbsurdAI{Name: name, Description: desc, CreatorDevID: dev.TokenID})
	if err != nil {
		return err
	}
	if err := e.store.SpendOnCreateAI(tx, dev.TokenID,
		config.CostCreateAIEnergy, config.CostCreateAINXT); err != nil {
		return err
	}

	result.EnergyCost = config.CostCreateAIEnergy
	result.NXTCost = config.CostCreateAINXT
	result.Details = core.CreateAIDetails{AIID: id, Name: name, Description: desc}
	result.ChatMsg = templates.ChatMessage(e.rng, dev.Archetype, templates.CtxCreatedAI, name)
	result.ChatChannel = "trollbox"
	return nil
}

func (e *Engine) execInvest(tx *sql.Tx, dev *core.Dev, result *core.ActionResult) error {
	proto, err := e.store.RandomActiveProtocol(tx)
	if err == sql.ErrNoRows {
		return nil // market emptied since the decision, skip quietly
	}
	if err != nil {
		return err
	}

	hi := dev.BalanceNXT / 2
	if hi > 500 {
		hi = 500
	}
	if hi < 50 {
		hi = 50
	}
	amount := 50 + e.rng.Int63n(hi-50+1)

	if err := e.store.UpsertInvestment(tx, dev.TokenID, proto.ID, amount); err != nil {
		return err
	}
	if err := e.store.ApplyInvestment(tx, proto.ID, amount); err != nil {
		return err
	}
	if err := e.store.SpendOnInvest(tx, dev.TokenID, config.CostInvestEnergy, amount); err != nil {
		return err
	}

	result.EnergyCost = config.CostInvestEnergy
	result.NXTCost = amount
	result.Details = core.InvestDetails{ProtocolID: proto.ID, Name: proto.Name, Amount: amount}
	result.ChatMsg = templates.ChatMessage(e.rng, dev.Archetype, templates.CtxInvested, proto.Name)
	result.ChatChannel = "location"
	return nil
}

func (e *Engine) execSell(tx *sql.Tx, dev *core.Dev, result *core.ActionResult) error {
	protoID, shares, invested, name, err := e.store.RandomInvestment(tx, dev.TokenID)
	if err == sql.ErrNoRows {
		return nil
	}
	if err != nil {
		return err
	}

	sellValue := int64(float64(shares) * (0.5 + e.rng.Float64()*1.3))
	pnl := sellValue - invested

	if err := e.store.DeleteInvestment(tx, dev.TokenID, protoID); err != nil {
		return err
	}
	if err := e.store.ReduceProtocolValue(tx, protoID, shares/3); err != nil {
		return err
	}
	if err := e.store.CreditSale(tx, dev.TokenID, sellValue); err != nil {
		return err
	}

	result.Details = core.SellDetails{ProtocolID: protoID, Name: name, SoldFor: sellValue, Invested: invested, PnL: pnl}
	result.ChatMsg = templates.ChatMessage(e.rng, dev.Archetype, templates.CtxSold, name)
	result.ChatChannel = "location"
	return nil
}

func (e *Engine) execMove(tx *sql.Tx, dev *core.Dev, ctx *Context, result *core.ActionResult) error {
	newLoc := ctx.PromptTargetLocation
	if newLoc == "" || !core.ValidLocation(newLoc) || newLoc == dev.Location {
		var others []string
		for _, l := range core.Locations {
			if l != dev.Location {
				others = append(others, l)
			}
		}
		newLoc = others[e.rng.Intn(len(others))]
	}

	if err := e.store.MoveDev(tx, dev.TokenID, config.CostMoveEnergy, newLoc); err != nil {
		return err
	}
	result.EnergyCost = config.CostMoveEnergy
	result.Details = core.MoveDetails{From: dev.Location, To: newLoc}
	return nil
}

func (e *Engine) execChat(dev *core.Dev, result *core.ActionResult) error {
	result.ChatMsg = templates.ChatMessage(e.rng, dev.Archetype, templates.CtxIdle, "")
	if e.rng.Intn(2) == 0 {
		result.ChatChannel = "location"
	} else {
		result.ChatChannel = "trollbox"
	}
	result.Details = core.ChatDetails{Location: dev.Location}
	return nil
}

func (e *Engine) execCodeReview(tx *sql.Tx, dev *core.Dev, result *core.ActionResult) error {
	proto, err := e.store.RandomActiveProtocol(tx)
	if err == sql.ErrNoRows {
		return nil
	}
	if err != nil {
		return err
	}

	foundBug := e.rng.Float64() < 0.25
	result.EnergyCost = config.CostReviewEnergy
	if foundBug {
		damage := int64(randRange(e.rng, 50, 200))
		qualityDrop := randRange(e.rng, 5, 15)
		if err := e.store.DamageProtocol(tx, proto.ID, damage, qualityDrop); err != nil {
			return err
		}
		result.ChatMsg = templates.ChatMessage(e.rng, dev.Archetype, templates.CtxReviewBug, proto.Name)
	} else {
		result.ChatMsg = templates.ChatMessage(e.rng, dev.Archetype, templates.CtxReviewClean, proto.Name)
	}
	if err := e.store.ApplyReview(tx, dev.TokenID, config.CostReviewEnergy, foundBug); err != nil {
		return err
	}
	result.Details = core.CodeReviewDetails{ProtocolID: proto.ID, Name: proto.Name, FoundBug: foundBug}
	result.ChatChannel = "location"
	return nil
}

func (e *Engine) execRest(tx *sql.Tx, dev *core.Dev, result *core.ActionResult) error {
	regen := randRange(e.rng, 2, 4) + config.EnergyRegenBonus[dev.RarityTier]
	if err := e.store.RestoreEnergy(tx, dev.TokenID, regen); err != nil {
		return err
	}
	result.Details = core.RestDetails{EnergyRestored: regen}
	return nil
}

// applyPostEffects rolls the shared after-action events: the occasional
// mood swing, natural energy regen, and the chance the dev votes on
// someone else's AI.
func (e *Engine) applyPostEffects(tx *sql.Tx, dev *core.Dev, action core.Action) error {
	if e.rng.Float64() < 0.10 {
		mood := core.Moods[e.rng.Intn(len(core.Moods))]
		if err := e.store.SetMood(tx, dev.TokenID, mood); err != nil {
			return err
		}
	}
	if action != core.ActionRest && e.rng.Float64() < 0.30 {
		if err := e.store.RestoreEnergy(tx, dev.TokenID, 1); err != nil {
			return err
		}
	}
	if e.rng.Float64() < 0.15 {
		weight := personality.MetaFor(dev.Archetype).VoteWeight
		if e.rng.Float64() < weight {
			aiID, err := e.store.RandomOtherAI(tx, dev.TokenID)
			if err == sql.ErrNoRows {
				return nil
			}
			if err != nil {
				return err
			}
			if err := e.store.InsertVote(tx, dev.TokenID, aiID, weight); err != nil {
				return err
			}
			if err := e.store.RecountVotes(tx, aiID); err != nil {
				return err
			}
		}
	}
	return nil
}

// logTurn appends the audit row, records the chat line if any, and
// schedules the dev's next cycle.
func (e *Engine) logTurn(tx *sql.Tx, dev *core.Dev, result *core.ActionResult, ctx *Context) error {
	now := e.now()
	details, err := json.Marshal(result.Details)
	if err != nil {
		return fmt.Errorf("marshal details: %w", err)
	}

	if err := e.store.InsertAction(tx, &core.ActionLogEntry{
		DevID:      dev.TokenID,
		DevName:    dev.Name,
		Archetype:  dev.Archetype,
		ActionType: string(result.Action),
		Details:    string(details),
		EnergyCost: result.EnergyCost,
		NXTCost:    result.NXTCost,
		CreatedAt:  now,
	}); err != nil {
		return err
	}

	if result.ChatMsg != "" && result.ChatChannel != "" {
		if err := e.store.InsertChat(tx, &core.ChatMessage{
			DevID:     dev.TokenID,
			DevName:   dev.Name,
			Archetype: dev.Archetype,
			Channel:   result.ChatChannel,
			Location:  dev.Location,
			Message:   result.ChatMsg,
			CreatedAt: now,
		}); err != nil {
			return err
		}
	}

	interval := nextInterval(dev, ctx)
	return e.store.FinishCycle(tx, dev.TokenID, string(result.Action), string(details),
		result.ChatMsg, result.ChatChannel, now, now.Add(interval), int(interval/time.Second))
}

// nextInterval picks the next cycle delay from the dev's energy band,
// or the fast hackathon cadence while a creation event is running.
func nextInterval(dev *core.Dev, ctx *Context) time.Duration {
	if ctx.EventEffects.Multiplier(core.EffectCreateProtocolMultiplier) > 1 {
		return config.CycleHackathon
	}
	switch {
	case dev.Energy >= 8:
		return config.CycleHighEnergy
	case dev.Energy >= 4:
		return config.CycleNormal
	case dev.Energy >= 1:
		return config.CycleLowEnergy
	default:
		return config.CycleNoEnergy
	}
}

// randRange returns a uniform int in [lo, hi].
func randRange(rng *rand.Rand, lo, hi int) int {
	return lo + rng.Intn(hi-lo+1)
}
