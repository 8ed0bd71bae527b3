package engine

import (
	"database/sql"
	"encoding/json"
	"math/rand"
	"strings"

	"github.com/nxterminal/protocol-wars/config"
	"github.com/nxterminal/protocol-wars/core"
	"github.com/nxterminal/protocol-wars/personality"
	"github.com/nxterminal/protocol-wars/templates"
)

var rarityOrder = []string{"common", "uncommon", "rare", "legendary", "mythic"}

func weightedPick(rng *rand.Rand, order []string, weights map[string]int) string {
	total := 0
	for _, k := range order {
		total += weights[k]
	}
	r := rng.Intn(total)
	for _, k := range order {
		r -= weights[k]
		if r < 0 {
			return k
		}
	}
	return order[len(order)-1]
}

// MintDev rolls a new dev's identity and writes it, creating or
// bumping the owning player row in the same transaction. The dev is
// scheduled immediately so its first cycle runs on the next tick.
// A zero tokenID allocates the next free one.
func (e *Engine) MintDev(tokenID int64, ownerAddress, corporation string) (core.Dev, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	now := e.now()
	ownerAddress = strings.ToLower(ownerAddress)

	if tokenID == 0 {
		maxID, err := e.store.MaxTokenID()
		if err != nil {
			return core.Dev{}, err
		}
		tokenID = maxID + 1
	}

	archetype := weightedPick(e.rng, personality.Archetypes, config.ArchetypeWeights)
	rarity := weightedPick(e.rng, rarityOrder, config.RarityWeights)
	seed := int64(e.rng.Uint64())
	traits := templates.VisualTraits(e.rng, rarity)
	balance := int64(config.StartingBalance[rarity])

	dev := core.Dev{
		TokenID:         tokenID,
		OwnerAddress:    ownerAddress,
		Archetype:       archetype,
		Corporation:     corporation,
		RarityTier:      rarity,
		PersonalitySeed: seed,
		Species:         traits.Species,
		Background:      traits.Background,
		Accessory:       traits.Accessory,
		Expression:      traits.Expression,
		SpecialEffect:   traits.SpecialEffect,
		BalanceNXT:      balance,
		TotalEarned:     balance,
		NextCycleAt:     now,
	}

	err := e.store.WithTx(func(tx *sql.Tx) error {
		taken, err := e.store.DevNames(tx)
		if err != nil {
			return err
		}
		dev.Name = templates.DevName(e.rng, taken)

		if err := e.store.UpsertPlayerOnMint(tx, ownerAddress, corporation, now); err != nil {
			return err
		}
		return e.store.InsertDev(tx, &dev)
	})
	if err != nil {
		return dev, err
	}

	e.log.Infow("dev minted",
		"token_id", tokenID, "name", dev.Name, "archetype", archetype,
		"rarity", rarity, "owner", ownerAddress)
	if data, err := json.Marshal(dev); err == nil {
		e.broker.Publish(core.SubjectMints, data)
	}
	return dev, nil
}
