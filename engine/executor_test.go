package engine

import (
	"database/sql"
	"fmt"
	"math/rand"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/nxterminal/protocol-wars/core"
	"github.com/nxterminal/protocol-wars/storage"
)

func newTestEngine(t *testing.T, seed int64) (*Engine, *storage.Store) {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	e := New(store, nil, rand.New(rand.NewSource(seed)), zap.NewNop().Sugar())
	return e, store
}

// seedDev inserts a dev and returns it with the schema defaults
// (energy 10, neutral mood, BOARD_ROOM) applied.
func seedDev(t *testing.T, store *storage.Store, tokenID int64, archetype string) core.Dev {
	t.Helper()
	dev := core.Dev{
		TokenID:         tokenID,
		Name:            fmt.Sprintf("TestDev%d", tokenID),
		OwnerAddress:    "0x1111111111111111111111111111111111111111",
		Archetype:       archetype,
		Corporation:     "CLOSED_AI",
		RarityTier:      "common",
		PersonalitySeed: tokenID * 17,
		BalanceNXT:      2000,
		TotalEarned:     2000,
		NextCycleAt:     time.Now().UTC(),
	}
	require.NoError(t, store.WithTx(func(tx *sql.Tx) error {
		return store.InsertDev(tx, &dev)
	}))
	got, err := store.GetDev(tokenID)
	require.NoError(t, err)
	return got
}

func setDev(t *testing.T, store *storage.Store, tokenID int64, column string, value any) {
	t.Helper()
	_, err := store.DB().Exec(
		fmt.Sprintf("UPDATE devs SET %s = ? WHERE token_id = ?", column), value, tokenID)
	require.NoError(t, err)
}

func execute(t *testing.T, e *Engine, dev *core.Dev, action core.Action, ctx *Context) core.ActionResult {
	t.Helper()
	var result core.ActionResult
	require.NoError(t, e.store.WithTx(func(tx *sql.Tx) error {
		var err error
		result, err = e.Execute(tx, dev, action, ctx)
		return err
	}))
	return result
}

func seedProtocol(t *testing.T, store *storage.Store, creator int64) int64 {
	t.Helper()
	var id int64
	require.NoError(t, store.WithTx(func(tx *sql.Tx) error {
		var err error
		id, err = store.InsertProtocol(tx, &core.Protocol{
			Name: "TestSwap Protocol", Description: "a swap thing",
			CreatorDevID: creator, CodeQuality: 80, Value: 1800,
		})
		return err
	}))
	return id
}

func TestCreateProtocolDebitsAndLogs(t *testing.T) {
	e, store := newTestEngine(t, 1)
	dev := seedDev(t, store, 1, "10X_DEV")

	result := execute(t, e, &dev, core.ActionCreateProtocol, openCtx())

	details, ok := result.Details.(core.CreateProtocolDetails)
	require.True(t, ok)
	assert.NotEmpty(t, details.Name)
	assert.GreaterOrEqual(t, details.Quality, 75)
	assert.LessOrEqual(t, details.Quality, 98)

	after, err := store.GetDev(1)
	require.NoError(t, err)
	assert.Equal(t, int64(2000-15), after.BalanceNXT)
	// 10 - 1 cost, plus the occasional post-action regen point.
	assert.GreaterOrEqual(t, after.Energy, 9)
	assert.LessOrEqual(t, after.Energy, 10)
	assert.Equal(t, 1, after.ProtocolsMade)
	assert.Equal(t, details.Quality/10, after.Reputation)
	assert.Equal(t, string(core.ActionCreateProtocol), after.LastActionType)
	assert.True(t, after.NextCycleAt.After(time.Now().UTC().Add(time.Minute)))

	protos, err := store.ListProtocols(10)
	require.NoError(t, err)
	require.Len(t, protos, 1)
	assert.Equal(t, int64(1000+details.Quality*10), protos[0].Value)
}

func TestInvestClampsToSmallBalance(t *testing.T) {
	e, store := newTestEngine(t, 2)
	dev := seedDev(t, store, 1, "DEGEN")
	creator := seedDev(t, store, 2, "GRINDER")
	seedProtocol(t, store, creator.TokenID)

	setDev(t, store, 1, "balance_nxt", 100)
	dev.BalanceNXT = 100

	result := execute(t, e, &dev, core.ActionInvest, openCtx())
	details, ok := result.Details.(core.InvestDetails)
	require.True(t, ok)
	assert.Equal(t, int64(50), details.Amount, "half of 100 clamps to the floor")

	after, err := store.GetDev(1)
	require.NoError(t, err)
	assert.Equal(t, 100-details.Amount, after.BalanceNXT)
	assert.Equal(t, details.Amount, after.TotalInvested)
}

func TestInvestAccumulatesIntoOnePosition(t *testing.T) {
	e, store := newTestEngine(t, 3)
	dev := seedDev(t, store, 1, "DEGEN")
	creator := seedDev(t, store, 2, "GRINDER")
	protoID := seedProtocol(t, store, creator.TokenID)

	first := execute(t, e, &dev, core.ActionInvest, openCtx()).Details.(core.InvestDetails)
	second := execute(t, e, &dev, core.ActionInvest, openCtx()).Details.(core.InvestDetails)

	var shares, rows int64
	require.NoError(t, store.DB().QueryRow(
		`SELECT COUNT(*), COALESCE(SUM(shares), 0) FROM protocol_investments WHERE dev_id = 1`).
		Scan(&rows, &shares))
	assert.Equal(t, int64(1), rows, "repeat investment must merge into one row")
	assert.Equal(t, first.Amount+second.Amount, shares)

	protos, err := store.ListProtocols(10)
	require.NoError(t, err)
	require.Len(t, protos, 1)
	assert.Equal(t, protoID, protos[0].ID)
	assert.Equal(t, first.Amount+second.Amount, protos[0].TotalInvested)
	assert.Equal(t, 1, protos[0].InvestorCount)
}

func TestSellRemovesPositionAndCredits(t *testing.T) {
	e, store := newTestEngine(t, 4)
	dev := seedDev(t, store, 1, "LURKER")
	creator := seedDev(t, store, 2, "GRINDER")
	protoID := seedProtocol(t, store, creator.TokenID)

	require.NoError(t, store.WithTx(func(tx *sql.Tx) error {
		return store.UpsertInvestment(tx, dev.TokenID, protoID, 300)
	}))

	result := execute(t, e, &dev, core.ActionSell, openCtx())
	details, ok := result.Details.(core.SellDetails)
	require.True(t, ok)
	assert.Equal(t, protoID, details.ProtocolID)
	assert.GreaterOrEqual(t, details.SoldFor, int64(150), "floor is 0.5x shares")
	assert.LessOrEqual(t, details.SoldFor, int64(540), "cap is 1.8x shares")
	assert.Equal(t, details.SoldFor-300, details.PnL)

	has, err := store.HasInvestments(dev.TokenID)
	require.NoError(t, err)
	assert.False(t, has, "sold position must be gone")

	after, err := store.GetDev(1)
	require.NoError(t, err)
	assert.Equal(t, 2000+details.SoldFor, after.BalanceNXT)

	protos, err := store.ListProtocols(10)
	require.NoError(t, err)
	assert.Equal(t, int64(1800-300/3), protos[0].Value, "dumping shares dents the protocol")
}

func TestSellWithNothingHeldIsQuietNoop(t *testing.T) {
	e, store := newTestEngine(t, 5)
	dev := seedDev(t, store, 1, "LURKER")

	result := execute(t, e, &dev, core.ActionSell, openCtx())
	_, isNoop := result.Details.(core.NoDetails)
	assert.True(t, isNoop)
}

func TestRestCapsAtMaxEnergy(t *testing.T) {
	e, store := newTestEngine(t, 6)
	dev := seedDev(t, store, 1, "FED")
	setDev(t, store, 1, "energy", 9)
	dev.Energy = 9

	execute(t, e, &dev, core.ActionRest, openCtx())

	after, err := store.GetDev(1)
	require.NoError(t, err)
	assert.Equal(t, after.MaxEnergy, after.Energy, "regen of 2-4 must clamp at max")
}

func TestMoveChangesLocation(t *testing.T) {
	e, store := newTestEngine(t, 7)
	dev := seedDev(t, store, 1, "HACKTIVIST")

	result := execute(t, e, &dev, core.ActionMove, openCtx())
	details := result.Details.(core.MoveDetails)
	assert.Equal(t, "BOARD_ROOM", details.From)
	assert.NotEqual(t, details.From, details.To)
	assert.True(t, core.ValidLocation(details.To))

	after, err := store.GetDev(1)
	require.NoError(t, err)
	assert.Equal(t, details.To, after.Location)
	assert.GreaterOrEqual(t, after.Energy, 8)
	assert.LessOrEqual(t, after.Energy, 9)
}

func TestMoveHonorsPromptTarget(t *testing.T) {
	e, store := newTestEngine(t, 8)
	dev := seedDev(t, store, 1, "HACKTIVIST")

	ctx := openCtx()
	ctx.PromptTargetLocation = "DARK_WEB"
	result := execute(t, e, &dev, core.ActionMove, ctx)
	assert.Equal(t, "DARK_WEB", result.Details.(core.MoveDetails).To)
}

func TestCodeReviewBugRateNearQuarter(t *testing.T) {
	e, store := newTestEngine(t, 9)
	dev := seedDev(t, store, 1, "FED")
	creator := seedDev(t, store, 2, "GRINDER")
	seedProtocol(t, store, creator.TokenID)

	const trials = 400
	bugs := 0
	for i := 0; i < trials; i++ {
		setDev(t, store, 1, "energy", 10)
		result := execute(t, e, &dev, core.ActionCodeReview, openCtx())
		if result.Details.(core.CodeReviewDetails).FoundBug {
			bugs++
		}
	}

	rate := float64(bugs) / trials
	assert.Greater(t, rate, 0.15)
	assert.Less(t, rate, 0.35)
}

func TestCodeReviewBugDamagesProtocol(t *testing.T) {
	e, store := newTestEngine(t, 10)
	dev := seedDev(t, store, 1, "FED")
	creator := seedDev(t, store, 2, "GRINDER")
	seedProtocol(t, store, creator.TokenID)

	var found bool
	for i := 0; i < 50 && !found; i++ {
		setDev(t, store, 1, "energy", 10)
		result := execute(t, e, &dev, core.ActionCodeReview, openCtx())
		found = result.Details.(core.CodeReviewDetails).FoundBug
	}
	require.True(t, found, "expected at least one bug in 50 reviews")

	protos, err := store.ListProtocols(10)
	require.NoError(t, err)
	assert.Less(t, protos[0].Value, int64(1800))
	assert.Less(t, protos[0].CodeQuality, 80)

	after, err := store.GetDev(1)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, after.BugsFound, 1)
	assert.GreaterOrEqual(t, after.Reputation, 5)
}

func TestChatCostsNothing(t *testing.T) {
	e, store := newTestEngine(t, 11)
	dev := seedDev(t, store, 1, "INFLUENCER")

	result := execute(t, e, &dev, core.ActionChat, openCtx())
	assert.NotEmpty(t, result.ChatMsg)
	assert.Contains(t, []string{"trollbox", "location"}, result.ChatChannel)

	after, err := store.GetDev(1)
	require.NoError(t, err)
	assert.Equal(t, int64(2000), after.BalanceNXT)
	assert.Equal(t, 10, after.Energy, "chat spends no energy")
}

func TestNextIntervalBands(t *testing.T) {
	quiet := &Context{EventEffects: core.EventEffects{}}
	hackathon := &Context{EventEffects: core.EventEffects{core.EffectCreateProtocolMultiplier: 3}}

	cases := []struct {
		energy int
		ctx    *Context
		want   time.Duration
	}{
		{10, quiet, 480 * time.Second},
		{8, quiet, 480 * time.Second},
		{7, quiet, 720 * time.Second},
		{4, quiet, 720 * time.Second},
		{3, quiet, 1200 * time.Second},
		{1, quiet, 1200 * time.Second},
		{0, quiet, 2700 * time.Second},
		{0, hackathon, 300 * time.Second},
		{10, hackathon, 300 * time.Second},
	}
	for _, tc := range cases {
		dev := &core.Dev{Energy: tc.energy}
		assert.Equal(t, tc.want, nextInterval(dev, tc.ctx), "energy=%d", tc.energy)
	}
}
