package templates

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDevNameAvoidsCollisions(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	taken := map[string]bool{}
	for i := 0; i < 500; i++ {
		name := DevName(rng, taken)
		assert.False(t, taken[name], "duplicate name %q", name)
		assert.NotEmpty(t, name)
		taken[name] = true
	}
}

func TestGeneratedTextHasNoPlaceholders(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for i := 0; i < 200; i++ {
		for _, s := range []string{
			ProtocolName(rng),
			ProtocolDescription(rng),
			AIName(rng),
			AIDescription(rng),
		} {
			assert.NotEmpty(t, s)
			assert.False(t, strings.ContainsAny(s, "{}"), "unfilled placeholder in %q", s)
		}
	}
}

func TestVisualTraitsGuaranteedEffects(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 50; i++ {
		for _, rarity := range []string{"legendary", "mythic"} {
			traits := VisualTraits(rng, rarity)
			assert.NotEqual(t, "None", traits.SpecialEffect,
				"%s must always get a special effect", rarity)
		}
	}

	none := 0
	for i := 0; i < 200; i++ {
		if VisualTraits(rng, "common").SpecialEffect == "None" {
			none++
		}
	}
	assert.Greater(t, none, 0, "commons frequently get no effect")
}

func TestChatMessageFallsBackForUnknownArchetype(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	msg := ChatMessage(rng, "NO_SUCH_TYPE", CtxIdle, "")
	assert.NotEmpty(t, msg)

	msg = ChatMessage(rng, "DEGEN", "no_such_context", "")
	assert.NotEmpty(t, msg, "unknown context falls back to idle lines")
}

func TestChatMessageMentionsSubject(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	seen := false
	for i := 0; i < 50; i++ {
		msg := ChatMessage(rng, "INFLUENCER", CtxCreatedProtocol, "MegaSwap")
		assert.False(t, strings.Contains(msg, "{name}"))
		if strings.Contains(msg, "MegaSwap") {
			seen = true
		}
	}
	assert.True(t, seen, "creation lines should name the protocol")
}

func TestWorldEventTemplatesFillHours(t *testing.T) {
	rng := rand.New(rand.NewSource(6))
	for i := 0; i < 50; i++ {
		ev := WorldEvent(rng, 6)
		assert.NotEmpty(t, ev.Title)
		assert.NotEmpty(t, ev.EventType)
		assert.False(t, strings.Contains(ev.Description, "{hours}"))
		for key, val := range ev.Effects {
			assert.NotEmpty(t, key)
			assert.Greater(t, val, 0.0)
		}
	}
}
