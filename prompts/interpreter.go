package prompts

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/nxterminal/protocol-wars/core"
	"github.com/nxterminal/protocol-wars/personality"
)

// Result is the full outcome of interpreting one player prompt.
type Result struct {
	Intent         string
	Topic          string
	Compliance     string
	Response       string
	WeightMods     map[core.Action]float64
	DurationCycles int
	// TargetLocation is set for comply and partial outcomes so a
	// boosted MOVE lands where the player asked.
	TargetLocation string
}

// RollCompliance buckets a uniform roll into an outcome using the
// dev's mood-adjusted compliance rate: [0,rate) comply, then 0.15 of
// partial, then 0.10 of misinterpretation, refuse for the rest.
func RollCompliance(rng *rand.Rand, archetype, mood string) string {
	rate := personality.ComplianceRate(archetype, mood)
	roll := rng.Float64()
	switch {
	case roll < rate:
		return Comply
	case roll < rate+0.15:
		return Partial
	case roll < rate+0.25:
		return Misinterpret
	default:
		return Refuse
	}
}

func pickResponse(rng *rand.Rand, archetype, intent, compliance string) string {
	archTables, ok := responses[archetype]
	if !ok {
		archTables = responses[personality.DefaultArchetype]
	}
	intentTables, ok := archTables[intent]
	if !ok {
		intentTables = archTables[IntentChat]
	}
	lines, ok := intentTables[compliance]
	if !ok || len(lines) == 0 {
		lines = intentTables[Comply]
	}
	if len(lines) == 0 {
		return "..."
	}
	return lines[rng.Intn(len(lines))]
}

func fillPlaceholders(msg string, dev *core.Dev, topic, location, protocol string, protoCount int) string {
	if topic == "" {
		topic = "something interesting"
	}
	if location == "" {
		location = "somewhere"
	}
	if protocol == "" {
		protocol = "that protocol"
	}
	r := strings.NewReplacer(
		"{topic}", topic,
		"{location}", strings.ReplaceAll(location, "_", " "),
		"{protocol}", protocol,
		"{energy}", fmt.Sprintf("%d", dev.Energy),
		"{balance}", fmt.Sprintf("%d", dev.BalanceNXT),
		"{protocols}", fmt.Sprintf("%d", dev.ProtocolsMade),
		"{ais}", fmt.Sprintf("%d", dev.AIsMade),
		"{bugs}", fmt.Sprintf("%d", dev.BugsFound),
		"{reviews}", fmt.Sprintf("%d", dev.CodeReviewsDone),
		"{proto_count}", fmt.Sprintf("%d", protoCount),
	)
	return r.Replace(msg)
}

// Interpret classifies a player prompt, rolls compliance for the dev
// and produces the in-character reply plus the decision weight
// modifiers applied to upcoming cycles.
func Interpret(rng *rand.Rand, dev *core.Dev, text string, knownProtocols []string) Result {
	intent := ClassifyIntent(text)
	topic := ExtractTopic(text)
	location := ExtractLocation(text)
	mentioned := ExtractProtocolMention(text, knownProtocols)
	compliance := RollCompliance(rng, dev.Archetype, dev.Mood)

	response := pickResponse(rng, dev.Archetype, intent, compliance)
	response = fillPlaceholders(response, dev, topic, location, mentioned, len(knownProtocols))

	res := Result{
		Intent:     intent,
		Topic:      topic,
		Compliance: compliance,
		Response:   response,
		WeightMods: map[core.Action]float64{},
	}

	var strength float64
	duration := 3
	switch compliance {
	case Comply:
		strength = 3.0
	case Partial, Misinterpret:
		strength = 1.5
	default:
		duration = 0
	}

	if strength > 0 {
		switch intent {
		case IntentCommandCreate:
			res.WeightMods[core.ActionCreateProtocol] = strength
			res.WeightMods[core.ActionCreateAI] = strength * 0.5
		case IntentCommandInvest:
			res.WeightMods[core.ActionInvest] = strength
		case IntentCommandSell:
			res.WeightMods[core.ActionSell] = strength
		case IntentCommandMove:
			res.WeightMods[core.ActionMove] = 100.0
		case IntentCommandRest:
			res.WeightMods[core.ActionRest] = strength * 2
		case IntentCommandReview:
			res.WeightMods[core.ActionCodeReview] = strength
		}

		// A misinterpreting dev boosts some action the player did
		// not ask for.
		if compliance == Misinterpret {
			var candidates []core.Action
			for _, a := range core.AllActions {
				if _, targeted := res.WeightMods[a]; !targeted {
					candidates = append(candidates, a)
				}
			}
			wrong := candidates[rng.Intn(len(candidates))]
			res.WeightMods = map[core.Action]float64{wrong: strength}
		}

		if intent == IntentStrategy {
			res.WeightMods = map[core.Action]float64{
				core.ActionCreateProtocol: 1.5,
				core.ActionCodeReview:     1.3,
				core.ActionInvest:         1.3,
			}
			duration = 5
		}

		if location != "" && (compliance == Comply || compliance == Partial) {
			res.TargetLocation = location
		}
	}
	res.DurationCycles = duration
	return res
}
