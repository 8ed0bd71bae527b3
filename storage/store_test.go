package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nxterminal/protocol-wars/core"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	store, err := Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func insertDev(t *testing.T, store *Store, tokenID int64, rarity string, nextCycle time.Time) {
	t.Helper()
	require.NoError(t, store.WithTx(func(tx *sql.Tx) error {
		return store.InsertDev(tx, &core.Dev{
			TokenID:      tokenID,
			Name:         fmt.Sprintf("StoreDev%d", tokenID),
			OwnerAddress: "0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa",
			Archetype:    "GRINDER",
			RarityTier:   rarity,
			BalanceNXT:   1000,
			TotalEarned:  1000,
			NextCycleAt:  nextCycle,
		})
	}))
}

func TestOpenIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reopen.db")
	store, err := Open(path)
	require.NoError(t, err)
	insertDev(t, store, 1, "common", time.Now().UTC())
	require.NoError(t, store.Close())

	// Reopening applies the schema again without clobbering data.
	store, err = Open(path)
	require.NoError(t, err)
	defer store.Close()
	dev, err := store.GetDev(1)
	require.NoError(t, err)
	assert.Equal(t, "StoreDev1", dev.Name)
}

func TestWithTxRollsBackOnError(t *testing.T) {
	store := newTestStore(t)
	insertDev(t, store, 1, "common", time.Now().UTC())

	boom := errors.New("boom")
	err := store.WithTx(func(tx *sql.Tx) error {
		if err := store.SetMood(tx, 1, "angry"); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	dev, err := store.GetDev(1)
	require.NoError(t, err)
	assert.Equal(t, "neutral", dev.Mood, "failed tx must not leak writes")
}

func TestDueDevsOrderAndCutoff(t *testing.T) {
	store := newTestStore(t)
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	insertDev(t, store, 1, "common", base.Add(10*time.Minute))
	insertDev(t, store, 2, "common", base.Add(-2*time.Minute))
	insertDev(t, store, 3, "common", base.Add(-5*time.Minute))

	due, err := store.DueDevs(base, 10)
	require.NoError(t, err)
	require.Len(t, due, 2)
	assert.Equal(t, int64(3), due[0].TokenID, "longest overdue first")
	assert.Equal(t, int64(2), due[1].TokenID)

	due, err = store.DueDevs(base, 1)
	require.NoError(t, err)
	require.Len(t, due, 1, "limit caps the batch")
}

func TestPaySalariesRespectsRarityAndCap(t *testing.T) {
	store := newTestStore(t)
	now := time.Now().UTC()
	insertDev(t, store, 1, "common", now)
	insertDev(t, store, 2, "mythic", now)
	_, err := store.DB().Exec(`UPDATE devs SET energy = 5`)
	require.NoError(t, err)

	paid, err := store.PaySalaries(9)
	require.NoError(t, err)
	assert.Equal(t, int64(2), paid)

	common, err := store.GetDev(1)
	require.NoError(t, err)
	assert.Equal(t, int64(1009), common.BalanceNXT)
	assert.Equal(t, 6, common.Energy)

	mythic, err := store.GetDev(2)
	require.NoError(t, err)
	assert.Equal(t, 8, mythic.Energy, "mythic regenerates 1+2 per payout")

	// Cap at max_energy.
	for i := 0; i < 5; i++ {
		_, err = store.PaySalaries(9)
		require.NoError(t, err)
	}
	mythic, err = store.GetDev(2)
	require.NoError(t, err)
	assert.Equal(t, mythic.MaxEnergy, mythic.Energy)
}

func TestSnapshotBalancesUpsertsPerDay(t *testing.T) {
	store := newTestStore(t)
	now := time.Now().UTC()
	insertDev(t, store, 1, "common", now)
	require.NoError(t, store.WithTx(func(tx *sql.Tx) error {
		return store.UpsertPlayerOnMint(tx, "0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", "CLOSED_AI", now)
	}))

	n, err := store.SnapshotBalances("2026-03-01")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	// Same day again: still one row, updated in place.
	_, err = store.DB().Exec(`UPDATE devs SET balance_nxt = 5000`)
	require.NoError(t, err)
	_, err = store.SnapshotBalances("2026-03-01")
	require.NoError(t, err)

	snaps, err := store.ListSnapshots("0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", 10)
	require.NoError(t, err)
	require.Len(t, snaps, 1)
	assert.Equal(t, int64(5000), snaps[0].BalanceClaimable)

	_, err = store.SnapshotBalances("2026-03-02")
	require.NoError(t, err)
	snaps, err = store.ListSnapshots("0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", 10)
	require.NoError(t, err)
	assert.Len(t, snaps, 2)
}

func TestInsertVoteIgnoresDuplicates(t *testing.T) {
	store := newTestStore(t)
	now := time.Now().UTC()
	insertDev(t, store, 1, "common", now)
	insertDev(t, store, 2, "common", now)

	var aiID int64
	require.NoError(t, store.WithTx(func(tx *sql.Tx) error {
		var err error
		aiID, err = store.InsertAI(tx, &core.AbsurdAI{Name: "Toaster Oracle", CreatorDevID: 2})
		return err
	}))

	require.NoError(t, store.WithTx(func(tx *sql.Tx) error {
		if err := store.InsertVote(tx, 1, aiID, 2.0); err != nil {
			return err
		}
		if err := store.InsertVote(tx, 1, aiID, 2.0); err != nil {
			return err
		}
		return store.RecountVotes(tx, aiID)
	}))

	ais, err := store.ListAIs(10)
	require.NoError(t, err)
	require.Len(t, ais, 1)
	assert.Equal(t, 1, ais[0].VoteCount, "double vote must count once")
	assert.Equal(t, 2.0, ais[0].WeightedVotes)
}

func TestActiveEventEffectsWindow(t *testing.T) {
	store := newTestStore(t)
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, store.InsertWorldEvent(&core.WorldEvent{
		ID: "ev-1", Title: "DeFi Hackathon", EventType: "hackathon",
		Effects:  core.EventEffects{"create_protocol_multiplier": 2.0},
		IsActive: true, StartsAt: now.Add(-time.Hour), EndsAt: now.Add(time.Hour),
	}))

	effects, err := store.ActiveEventEffects(now)
	require.NoError(t, err)
	assert.Equal(t, 2.0, effects.Multiplier("create_protocol_multiplier"))

	effects, err = store.ActiveEventEffects(now.Add(2 * time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 1.0, effects.Multiplier("create_protocol_multiplier"),
		"expired events contribute nothing")

	n, err := store.DeactivateExpiredEvents(now.Add(2 * time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestChatLocationRecordedOnlyForLocationChannel(t *testing.T) {
	store := newTestStore(t)
	now := time.Now().UTC()
	insertDev(t, store, 1, "common", now)

	require.NoError(t, store.WithTx(func(tx *sql.Tx) error {
		if err := store.InsertChat(tx, &core.ChatMessage{
			DevID: 1, DevName: "StoreDev1", Archetype: "GRINDER",
			Channel: "trollbox", Location: "THE_PIT", Message: "gm", CreatedAt: now,
		}); err != nil {
			return err
		}
		return store.InsertChat(tx, &core.ChatMessage{
			DevID: 1, DevName: "StoreDev1", Archetype: "GRINDER",
			Channel: "location", Location: "THE_PIT", Message: "anyone here", CreatedAt: now,
		})
	}))

	trollbox, err := store.RecentChat("trollbox", "", 10)
	require.NoError(t, err)
	require.Len(t, trollbox, 1)
	assert.Empty(t, trollbox[0].Location, "trollbox messages are room-less")

	pit, err := store.RecentChat("location", "THE_PIT", 10)
	require.NoError(t, err)
	require.Len(t, pit, 1)
	assert.Equal(t, "THE_PIT", pit[0].Location)
}

func TestMaxTokenIDAndStats(t *testing.T) {
	store := newTestStore(t)

	id, err := store.MaxTokenID()
	require.NoError(t, err)
	assert.Zero(t, id)

	now := time.Now().UTC()
	insertDev(t, store, 7, "common", now)
	insertDev(t, store, 3, "common", now)

	id, err = store.MaxTokenID()
	require.NoError(t, err)
	assert.Equal(t, int64(7), id)

	stats, err := store.Stats()
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.TotalDevs)
	assert.Equal(t, int64(2), stats.ActiveDevs)
	assert.Equal(t, int64(2000), stats.TotalNXT)
	assert.Equal(t, 10.0, stats.AvgEnergy)
}
