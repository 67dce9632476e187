package game

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/scrapscramble/scrapscramble-go/internal/game/creature"
	"github.com/scrapscramble/scrapscramble-go/internal/game/random"
)

// gameHarness starts a game with an empty card pool so shops stay empty
// unless a test stocks them.
type gameHarness struct {
	t    *testing.T
	game *Game
	pool *CardPool
}

func newGameHarness(t *testing.T, rng random.Source, names ...string) *gameHarness {
	t.Helper()
	return newGameHarnessWithPool(t, rng, NewCardPool(rng), names...)
}

func newGameHarnessWithPool(t *testing.T, rng random.Source, pool *CardPool, names ...string) *gameHarness {
	t.Helper()
	g := NewGame(DefaultSettings(), rng, zaptest.NewLogger(t))
	require.NoError(t, g.Start(len(names), names, pool))
	return &gameHarness{t: t, game: g, pool: pool}
}

func (h *gameHarness) player(name string) *Player {
	h.t.Helper()
	p, ok := h.game.Player(name)
	require.True(h.t, ok, "player %s not found", name)
	return p
}

// setStats overwrites a player's mech for a combat scenario.
func (h *gameHarness) setStats(name string, attack, health int, keywords map[creature.Keyword]int) *Player {
	p := h.player(name)
	p.Creature = creature.New(attack, health)
	for k, v := range keywords {
		p.Creature.SetKeyword(k, v)
	}
	return p
}

// counter counts activations of the effects built from it.
type counter struct {
	calls int
}

func (c *counter) effect(trigger EffectTrigger) *Effect {
	return On(trigger, func(*Context) error {
		c.calls++
		return nil
	})
}

func testUpgrade(name string, cost, attack, health int, rarity Rarity) *Upgrade {
	return UpgradeSpec{Name: name, Cost: cost, Attack: attack, Health: health, Rarity: rarity}.Build()
}
