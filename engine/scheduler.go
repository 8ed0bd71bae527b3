package engine

import (
	"database/sql"
	"encoding/json"
	"time"

	"github.com/nxterminal/protocol-wars/config"
	"github.com/nxterminal/protocol-wars/core"
	"github.com/nxterminal/protocol-wars/prompts"
)

// RunTick processes one batch of due devs, each in its own transaction
// so a failing dev never takes the batch down with it. Returns how many
// devs completed a turn.
func (e *Engine) RunTick(now time.Time) (int, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	devs, err := e.store.DueDevs(now, config.SchedulerBatchSize)
	if err != nil {
		return 0, err
	}
	if len(devs) == 0 {
		return 0, nil
	}

	processed := 0
	for i := range devs {
		dev := &devs[i]
		result, err := e.ProcessDev(dev, now)
		if err != nil {
			e.log.Errorw("dev turn failed", "dev_id", dev.TokenID, "name", dev.Name, "error", err)
			continue
		}
		processed++
		e.log.Infow("dev turn",
			"dev", dev.Name, "archetype", dev.Archetype, "action", result.Action)
		e.publishResult(&result)
	}
	return processed, nil
}

// ProcessDev runs one full turn: consume any pending prompt, decide,
// execute. Everything commits atomically per dev.
func (e *Engine) ProcessDev(dev *core.Dev, now time.Time) (core.ActionResult, error) {
	ctx, err := e.BuildContext(dev, now)
	if err != nil {
		return core.ActionResult{}, err
	}

	var result core.ActionResult
	err = e.store.WithTx(func(tx *sql.Tx) error {
		if err := e.consumePrompt(tx, dev, ctx); err != nil {
			return err
		}
		action := Decide(e.rng, dev, ctx)
		var execErr error
		result, execErr = e.Execute(tx, dev, action, ctx)
		return execErr
	})
	return result, err
}

// consumePrompt processes the dev's oldest pending player prompt, if
// any: the reply lands in the trollbox, the interpretation is audit
// logged, and the weight modifiers flow into this turn's context.
func (e *Engine) consumePrompt(tx *sql.Tx, dev *core.Dev, ctx *Context) error {
	prompt, err := e.store.OldestPendingPrompt(tx, dev.TokenID)
	if err == sql.ErrNoRows {
		return nil
	}
	if err != nil {
		return err
	}

	known, err := e.store.ActiveProtocolNames(tx)
	if err != nil {
		return err
	}

	res := prompts.Interpret(e.rng, dev, prompt.PromptText, known)
	now := e.now()
	if err := e.store.ConsumePrompt(tx, prompt.ID, now); err != nil {
		return err
	}

	if res.Response != "" {
		if err := e.store.InsertChat(tx, &core.ChatMessage{
			DevID:     dev.TokenID,
			DevName:   dev.Name,
			Archetype: dev.Archetype,
			Channel:   "trollbox",
			Message:   res.Response,
			CreatedAt: now,
		}); err != nil {
			return err
		}
	}

	details, err := json.Marshal(core.PromptResponseDetails{
		Event:        "prompt_response",
		PlayerPrompt: clip(prompt.PromptText, 200),
		Intent:       res.Intent,
		Compliance:   res.Compliance,
		Response:     res.Response,
	})
	if err != nil {
		return err
	}
	if err := e.store.InsertAction(tx, &core.ActionLogEntry{
		DevID:      dev.TokenID,
		DevName:    dev.Name,
		Archetype:  dev.Archetype,
		ActionType: string(core.ActionChat),
		Details:    string(details),
		CreatedAt:  now,
	}); err != nil {
		return err
	}

	ctx.PromptMods = res.WeightMods
	ctx.PromptTargetLocation = res.TargetLocation
	e.log.Infow("prompt consumed",
		"dev", dev.Name, "intent", res.Intent, "compliance", res.Compliance)
	return nil
}

// publishResult fans the turn out to the live feed. A nil broker makes
// this a no-op.
func (e *Engine) publishResult(result *core.ActionResult) {
	data, err := json.Marshal(map[string]any{
		"action":    result.Action,
		"dev_id":    result.DevID,
		"dev_name":  result.DevName,
		"archetype": result.Archetype,
		"details":   result.Details,
		"chat_msg":  result.ChatMsg,
		"channel":   result.ChatChannel,
	})
	if err != nil {
		return
	}
	if err := e.broker.Publish(core.SubjectActions, data); err != nil {
		e.log.Warnw("feed publish failed", "error", err)
	}
	if result.ChatMsg != "" {
		if err := e.broker.Publish(core.SubjectChat, data); err != nil {
			e.log.Warnw("chat publish failed", "error", err)
		}
	}
}

func clip(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}
