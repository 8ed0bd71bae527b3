package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nxterminal/protocol-wars/core"
)

func TestRunTickRespectsSchedule(t *testing.T) {
	e, store := newTestEngine(t, 20)
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	e.now = func() time.Time { return base }

	dev, err := e.MintDev(1, "0x2222222222222222222222222222222222222222", "Y_AI")
	require.NoError(t, err)
	require.Equal(t, base, dev.NextCycleAt.UTC())

	processed, err := e.RunTick(base.Add(-time.Minute))
	require.NoError(t, err)
	assert.Zero(t, processed, "dev is not due yet")

	processed, err = e.RunTick(base)
	require.NoError(t, err)
	assert.Equal(t, 1, processed)

	after, err := store.GetDev(1)
	require.NoError(t, err)
	assert.True(t, after.NextCycleAt.After(base), "turn must reschedule the dev")
	assert.Equal(t, 1, after.CyclesActive)

	processed, err = e.RunTick(base)
	require.NoError(t, err)
	assert.Zero(t, processed, "rescheduled dev must not run twice in one window")
}

func TestRunTickProcessesWholeBatch(t *testing.T) {
	e, store := newTestEngine(t, 21)
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	e.now = func() time.Time { return base }

	for i := 0; i < 5; i++ {
		_, err := e.MintDev(0, "0x3333333333333333333333333333333333333333", "ZUCK_LABS")
		require.NoError(t, err)
	}

	processed, err := e.RunTick(base)
	require.NoError(t, err)
	assert.Equal(t, 5, processed)

	entries, err := store.RecentActions(50)
	require.NoError(t, err)
	assert.Len(t, entries, 5, "every turn leaves exactly one audit row")
}

func TestPromptConsumedExactlyOnce(t *testing.T) {
	e, store := newTestEngine(t, 22)
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	e.now = func() time.Time { return base }

	minted, err := e.MintDev(1, "0x4444444444444444444444444444444444444444", "MISANTHROPIC")
	require.NoError(t, err)

	require.NoError(t, store.InsertPrompt(&core.PlayerPrompt{
		ID:            "prompt-1",
		DevID:         minted.TokenID,
		PlayerAddress: minted.OwnerAddress,
		PromptText:    "build me a defi protocol",
		CreatedAt:     base,
	}))

	dev, err := store.GetDev(1)
	require.NoError(t, err)
	_, err = e.ProcessDev(&dev, base)
	require.NoError(t, err)

	pending, err := store.HasPendingPrompt(1)
	require.NoError(t, err)
	assert.False(t, pending, "prompt must be consumed on the first cycle")

	var responses int
	require.NoError(t, store.DB().QueryRow(
		`SELECT COUNT(*) FROM actions WHERE dev_id = 1 AND details LIKE '%prompt_response%'`).
		Scan(&responses))
	assert.Equal(t, 1, responses)

	// A second turn must not reply again.
	dev, err = store.GetDev(1)
	require.NoError(t, err)
	_, err = e.ProcessDev(&dev, base)
	require.NoError(t, err)
	require.NoError(t, store.DB().QueryRow(
		`SELECT COUNT(*) FROM actions WHERE dev_id = 1 AND details LIKE '%prompt_response%'`).
		Scan(&responses))
	assert.Equal(t, 1, responses)
}

func TestMintDevPopulatesIdentity(t *testing.T) {
	e, store := newTestEngine(t, 23)

	dev, err := e.MintDev(0, "0x5555555555555555555555555555555555555555", "MISTRIAL_SYSTEMS")
	require.NoError(t, err)
	assert.Equal(t, int64(1), dev.TokenID)
	assert.NotEmpty(t, dev.Name)
	assert.Contains(t, []string{"common", "uncommon", "rare", "legendary", "mythic"}, dev.RarityTier)
	assert.Greater(t, dev.BalanceNXT, int64(0))
	assert.NotEmpty(t, dev.Species)

	player, err := store.GetPlayer("0x5555555555555555555555555555555555555555")
	require.NoError(t, err)
	assert.Equal(t, 1, player.TotalDevsMinted)

	second, err := e.MintDev(0, "0x5555555555555555555555555555555555555555", "MISTRIAL_SYSTEMS")
	require.NoError(t, err)
	assert.Equal(t, int64(2), second.TokenID)
	assert.NotEqual(t, dev.Name, second.Name, "names are unique")

	player, err = store.GetPlayer("0x5555555555555555555555555555555555555555")
	require.NoError(t, err)
	assert.Equal(t, 2, player.TotalDevsMinted)
}

func TestMintDistributionSanity(t *testing.T) {
	e, _ := newTestEngine(t, 24)

	rarities := map[string]int{}
	for i := 0; i < 300; i++ {
		dev, err := e.MintDev(0, "0x6666666666666666666666666666666666666666", "SHALLOW_MIND")
		require.NoError(t, err)
		rarities[dev.RarityTier]++
	}
	assert.Greater(t, rarities["common"], rarities["rare"], "commons outnumber rares")
	assert.Greater(t, rarities["common"], 100)
}
