package engine

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nxterminal/protocol-wars/core"
	"github.com/nxterminal/protocol-wars/personality"
)

func testDev(archetype string) *core.Dev {
	return &core.Dev{
		TokenID:         1,
		Name:            "test_dev",
		Archetype:       archetype,
		RarityTier:      "common",
		PersonalitySeed: 42,
		Energy:          10,
		MaxEnergy:       10,
		Mood:            "neutral",
		Location:        "BOARD_ROOM",
		BalanceNXT:      2000,
	}
}

func openCtx() *Context {
	return &Context{HasProtocols: true, HasInvestments: true, EventEffects: core.EventEffects{}}
}

func TestDecideIsDeterministic(t *testing.T) {
	dev := testDev("10X_DEV")
	ctx := openCtx()

	a := rand.New(rand.NewSource(99))
	b := rand.New(rand.NewSource(99))
	for i := 0; i < 100; i++ {
		require.Equal(t, Decide(a, dev, ctx), Decide(b, dev, ctx), "diverged at draw %d", i)
	}
}

func TestApplyModifiersEnergyGates(t *testing.T) {
	dev := testDev("DEGEN")
	dev.Energy = 0
	w := personality.BaseWeights(dev.Archetype)
	ApplyModifiers(w, dev, openCtx())

	assert.Zero(t, w[core.ActionCreateProtocol])
	assert.Zero(t, w[core.ActionCreateAI])
	assert.Zero(t, w[core.ActionCodeReview])
	assert.Zero(t, w[core.ActionMove])
	assert.Zero(t, w[core.ActionInvest])
	assert.Zero(t, w[core.ActionSell])
	assert.Greater(t, w[core.ActionChat], 0.0, "chat costs nothing and stays available")
	assert.Greater(t, w[core.ActionRest], 0.0)
}

func TestApplyModifiersBalanceGates(t *testing.T) {
	dev := testDev("GRINDER")
	dev.BalanceNXT = 10
	w := personality.BaseWeights(dev.Archetype)
	ApplyModifiers(w, dev, openCtx())

	assert.Zero(t, w[core.ActionCreateProtocol], "cannot afford protocol at 10 NXT")
	assert.Zero(t, w[core.ActionInvest], "below minimum invest balance")
	assert.Greater(t, w[core.ActionCreateAI], 0.0, "AI only costs 5 NXT")
}

func TestApplyModifiersStructuralGates(t *testing.T) {
	dev := testDev("DEGEN")

	w := personality.BaseWeights(dev.Archetype)
	ApplyModifiers(w, dev, &Context{HasProtocols: false, HasInvestments: false})
	assert.Zero(t, w[core.ActionInvest])
	assert.Zero(t, w[core.ActionSell])
	assert.Zero(t, w[core.ActionCodeReview])

	w = personality.BaseWeights(dev.Archetype)
	ApplyModifiers(w, dev, &Context{HasProtocols: true, HasInvestments: false})
	assert.Greater(t, w[core.ActionInvest], 0.0)
	assert.Zero(t, w[core.ActionSell], "nothing held, nothing to sell")
}

func TestApplyModifiersEventMultiplier(t *testing.T) {
	dev := testDev("10X_DEV")

	base := personality.BaseWeights(dev.Archetype)
	ApplyModifiers(base, dev, openCtx())

	boosted := personality.BaseWeights(dev.Archetype)
	ctx := openCtx()
	ctx.EventEffects = core.EventEffects{core.EffectCreateProtocolMultiplier: 3.0}
	ApplyModifiers(boosted, dev, ctx)

	assert.InDelta(t, base[core.ActionCreateProtocol]*3.0, boosted[core.ActionCreateProtocol], 1e-9)
	assert.InDelta(t, base[core.ActionChat], boosted[core.ActionChat], 1e-9)
}

func TestApplyModifiersPromptMods(t *testing.T) {
	dev := testDev("LURKER")

	base := personality.BaseWeights(dev.Archetype)
	ApplyModifiers(base, dev, openCtx())

	prompted := personality.BaseWeights(dev.Archetype)
	ctx := openCtx()
	ctx.PromptMods = map[core.Action]float64{core.ActionInvest: 3.0}
	ApplyModifiers(prompted, dev, ctx)

	assert.InDelta(t, base[core.ActionInvest]*3.0, prompted[core.ActionInvest], 1e-9)
}

func TestDecideAllWeightsZeroedRests(t *testing.T) {
	dev := testDev("GRINDER")
	ctx := openCtx()
	ctx.PromptMods = map[core.Action]float64{}
	for _, a := range core.AllActions {
		ctx.PromptMods[a] = 0
	}

	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 20; i++ {
		assert.Equal(t, core.ActionRest, Decide(rng, dev, ctx))
	}
}

func TestDecideHighEnergyBuilderFavorsShipping(t *testing.T) {
	dev := testDev("10X_DEV")
	ctx := openCtx()
	rng := rand.New(rand.NewSource(1))

	counts := map[core.Action]int{}
	for i := 0; i < 2000; i++ {
		counts[Decide(rng, dev, ctx)]++
	}

	for _, a := range core.AllActions {
		if a == core.ActionCreateProtocol {
			continue
		}
		assert.Greater(t, counts[core.ActionCreateProtocol], counts[a],
			"expected CREATE_PROTOCOL to dominate, lost to %s", a)
	}
	assert.Less(t, counts[core.ActionRest], 100, "a full-energy dev barely rests")
}

func TestDecideDrainedDevMostlyRests(t *testing.T) {
	dev := testDev("DEGEN")
	dev.Energy = 1
	ctx := openCtx()
	rng := rand.New(rand.NewSource(2))

	rests := 0
	for i := 0; i < 1000; i++ {
		if Decide(rng, dev, ctx) == core.ActionRest {
			rests++
		}
	}
	assert.Greater(t, rests, 250, "low energy should push hard toward rest")
}

func TestPersonalityJitterIsStablePerDev(t *testing.T) {
	dev := testDev("FED")

	w1 := personality.BaseWeights(dev.Archetype)
	ApplyModifiers(w1, dev, openCtx())
	w2 := personality.BaseWeights(dev.Archetype)
	ApplyModifiers(w2, dev, openCtx())
	assert.Equal(t, w1, w2, "same seed must produce identical weights")

	other := testDev("FED")
	other.PersonalitySeed = 4242
	w3 := personality.BaseWeights(other.Archetype)
	ApplyModifiers(w3, other, openCtx())
	assert.NotEqual(t, w1, w3, "different seeds should bias differently")
}
