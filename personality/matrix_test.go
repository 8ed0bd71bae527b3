package personality

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nxterminal/protocol-wars/core"
)

func TestMatrixCoversEveryArchetypeAndAction(t *testing.T) {
	for _, archetype := range Archetypes {
		weights, ok := Matrix[archetype]
		require.True(t, ok, "missing weights for %s", archetype)

		var sum float64
		for _, action := range core.AllActions {
			w, ok := weights[action]
			require.True(t, ok, "%s missing weight for %s", archetype, action)
			assert.GreaterOrEqual(t, w, 0.0)
			sum += w
		}
		assert.Equal(t, 100.0, sum, "%s weights should total 100", archetype)

		_, ok = ArchetypeMeta[archetype]
		assert.True(t, ok, "missing meta for %s", archetype)
		_, ok = ComplianceRates[archetype]
		assert.True(t, ok, "missing compliance rate for %s", archetype)
	}
}

func TestBaseWeightsReturnsCopy(t *testing.T) {
	w := BaseWeights("10X_DEV")
	w[core.ActionCreateProtocol] = 0
	assert.Equal(t, 30.0, Matrix["10X_DEV"][core.ActionCreateProtocol],
		"mutating the copy must not touch the matrix")
}

func TestBaseWeightsUnknownFallsBack(t *testing.T) {
	assert.Equal(t, BaseWeights(DefaultArchetype), BaseWeights("NO_SUCH_TYPE"))
}

func TestMetaForQualityRanges(t *testing.T) {
	for _, archetype := range Archetypes {
		m := MetaFor(archetype)
		assert.Greater(t, m.QualityHigh, m.QualityLow, "%s quality range inverted", archetype)
		assert.LessOrEqual(t, m.QualityHigh, 100)
		assert.Greater(t, m.VoteWeight, 0.0)
	}
	assert.Equal(t, ArchetypeMeta[DefaultArchetype], MetaFor("NO_SUCH_TYPE"))
}

func TestComplianceRateCapAndMoods(t *testing.T) {
	assert.Equal(t, 0.95, ComplianceRate("GRINDER", "focused"), "0.85 * 1.3 caps at 0.95")
	assert.InDelta(t, 0.10, ComplianceRate("HACKTIVIST", "angry"), 1e-9)
	assert.InDelta(t, 0.30, ComplianceRate("DEGEN", "neutral"), 1e-9)
	assert.InDelta(t, ComplianceRates[DefaultArchetype], ComplianceRate("NO_SUCH_TYPE", "unknown_mood"), 1e-9)
}

func TestLocationModifiersCoverAllLocations(t *testing.T) {
	for _, loc := range core.Locations {
		_, ok := LocationModifiers[loc]
		assert.True(t, ok, "missing modifiers for %s", loc)
	}
}

func TestMoodModifiersCoverNonNeutralMoods(t *testing.T) {
	for _, mood := range core.Moods {
		if mood == "neutral" {
			continue
		}
		mods, ok := MoodModifiers[mood]
		assert.True(t, ok, "missing modifiers for %s", mood)
		assert.NotEmpty(t, mods)
	}
}
