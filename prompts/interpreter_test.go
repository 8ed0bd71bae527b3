package prompts

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nxterminal/protocol-wars/core"
)

func promptDev(archetype, mood string) *core.Dev {
	return &core.Dev{
		TokenID:    1,
		Name:       "PromptDev",
		Archetype:  archetype,
		Mood:       mood,
		Energy:     7,
		BalanceNXT: 1500,
	}
}

func TestClassifyIntent(t *testing.T) {
	cases := []struct {
		text string
		want string
	}{
		{"Build me a DeFi protocol", IntentCommandCreate},
		{"ship something great", IntentCommandCreate},
		{"ape into the best protocol", IntentCommandInvest},
		{"dump everything now", IntentCommandSell},
		{"go to the pit", IntentCommandMove},
		{"take a break, you earned it", IntentCommandRest},
		{"audit that contract for vulnerabilities", IntentCommandReview},
		{"how are you doing today?", IntentQuestionStatus},
		{"what do you think about NFTs", IntentQuestionOpinion},
		{"is the bull run real", IntentQuestionMarket},
		{"you're the goat", IntentEncourage},
		{"wtf was that trade", IntentCriticize},
		{"focus on a long term plan", IntentStrategy},
		{"hola amigo", IntentChat},
		{"", IntentChat},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ClassifyIntent(tc.text), "text=%q", tc.text)
	}
}

func TestExtractTopicAndLocation(t *testing.T) {
	assert.Equal(t, "defi", ExtractTopic("Build me a DeFi protocol"))
	assert.Equal(t, "nft", ExtractTopic("mint an nft collection"))
	assert.Equal(t, "", ExtractTopic("hello there"))

	assert.Equal(t, "THE_PIT", ExtractLocation("go to the pit"))
	assert.Equal(t, "DARK_WEB", ExtractLocation("hide in the dark web"))
	assert.Equal(t, "", ExtractLocation("nothing spatial here"))
}

func TestExtractProtocolMention(t *testing.T) {
	known := []string{"MegaSwap Protocol", "TurboYield Finance"}
	assert.Equal(t, "MegaSwap Protocol", ExtractProtocolMention("invest in megaswap protocol pls", known))
	assert.Equal(t, "", ExtractProtocolMention("invest in whatever", known))
}

func TestRollComplianceBuckets(t *testing.T) {
	// DEGEN at neutral mood sits at 0.30, leaving visible mass in all
	// four buckets.
	rng := rand.New(rand.NewSource(5))
	counts := map[string]int{}
	const trials = 20000
	for i := 0; i < trials; i++ {
		counts[RollCompliance(rng, "DEGEN", "neutral")]++
	}

	assert.InDelta(t, 0.30, float64(counts[Comply])/trials, 0.02)
	assert.InDelta(t, 0.15, float64(counts[Partial])/trials, 0.02)
	assert.InDelta(t, 0.10, float64(counts[Misinterpret])/trials, 0.02)
	assert.InDelta(t, 0.45, float64(counts[Refuse])/trials, 0.02)
	assert.Equal(t, trials, counts[Comply]+counts[Partial]+counts[Misinterpret]+counts[Refuse])
}

func interpretUntil(t *testing.T, rng *rand.Rand, dev *core.Dev, text, compliance string) Result {
	t.Helper()
	for i := 0; i < 500; i++ {
		res := Interpret(rng, dev, text, nil)
		if res.Compliance == compliance {
			return res
		}
	}
	t.Fatalf("never rolled %s in 500 tries", compliance)
	return Result{}
}

func TestInterpretComplyBoostsTargets(t *testing.T) {
	rng := rand.New(rand.NewSource(6))
	dev := promptDev("GRINDER", "neutral")

	res := interpretUntil(t, rng, dev, "Build me a DeFi protocol", Comply)
	assert.Equal(t, IntentCommandCreate, res.Intent)
	assert.Equal(t, "defi", res.Topic)
	assert.Equal(t, 3.0, res.WeightMods[core.ActionCreateProtocol])
	assert.Equal(t, 1.5, res.WeightMods[core.ActionCreateAI])
	assert.Equal(t, 3, res.DurationCycles)
	assert.NotEmpty(t, res.Response)
}

func TestInterpretRefuseLeavesNoTrace(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	dev := promptDev("HACKTIVIST", "neutral") // 20% base, refuses a lot

	res := interpretUntil(t, rng, dev, "Build me a DeFi protocol", Refuse)
	assert.Empty(t, res.WeightMods)
	assert.Zero(t, res.DurationCycles)
	assert.Empty(t, res.TargetLocation)
	assert.NotEmpty(t, res.Response, "a refusal still talks back")
}

func TestInterpretMisinterpretRedirects(t *testing.T) {
	rng := rand.New(rand.NewSource(8))
	dev := promptDev("DEGEN", "neutral")

	res := interpretUntil(t, rng, dev, "Build me a DeFi protocol", Misinterpret)
	require.Len(t, res.WeightMods, 1)
	for action, strength := range res.WeightMods {
		assert.NotEqual(t, core.ActionCreateProtocol, action)
		assert.NotEqual(t, core.ActionCreateAI, action)
		assert.Equal(t, 1.5, strength)
	}
}

func TestInterpretMoveSetsTarget(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	dev := promptDev("GRINDER", "neutral")

	res := interpretUntil(t, rng, dev, "go to the pit", Comply)
	assert.Equal(t, IntentCommandMove, res.Intent)
	assert.Equal(t, "THE_PIT", res.TargetLocation)
	assert.Equal(t, 100.0, res.WeightMods[core.ActionMove])
}

func TestInterpretStrategyOverride(t *testing.T) {
	rng := rand.New(rand.NewSource(10))
	dev := promptDev("GRINDER", "neutral")

	res := interpretUntil(t, rng, dev, "focus on a long term plan", Comply)
	assert.Equal(t, IntentStrategy, res.Intent)
	assert.Equal(t, map[core.Action]float64{
		core.ActionCreateProtocol: 1.5,
		core.ActionCodeReview:     1.3,
		core.ActionInvest:         1.3,
	}, res.WeightMods)
	assert.Equal(t, 5, res.DurationCycles)
}

func TestInterpretUnknownArchetypeFallsBack(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	dev := promptDev("MYSTERY_TYPE", "neutral")

	res := Interpret(rng, dev, "how are you doing today?", nil)
	assert.NotEmpty(t, res.Response)
	assert.NotContains(t, res.Response, "{", "all placeholders must be filled")
}

func TestResponsesFillPlaceholders(t *testing.T) {
	rng := rand.New(rand.NewSource(12))
	dev := promptDev("10X_DEV", "neutral")

	for i := 0; i < 200; i++ {
		res := Interpret(rng, dev, "what do you think about defi yield farming", []string{"MegaSwap"})
		assert.False(t, strings.ContainsAny(res.Response, "{}"),
			"unfilled placeholder in %q", res.Response)
	}
}
