package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/scrapscramble/scrapscramble-go/internal/game/creature"
	"github.com/scrapscramble/scrapscramble-go/internal/game/random"
)

func TestStartRejectsDuplicateNames(t *testing.T) {
	g := NewGame(DefaultSettings(), random.New(1), zaptest.NewLogger(t))
	err := g.Start(3, []string{"a", "b", "a"}, NewCardPool(random.New(1)))
	assert.ErrorIs(t, err, ErrDuplicateNames)
	assert.False(t, g.Started())
}

func TestStartRejectsMissingNames(t *testing.T) {
	g := NewGame(DefaultSettings(), random.New(1), nil)
	assert.ErrorIs(t, g.Start(3, []string{"a", "b"}, NewCardPool(random.New(1))), ErrNotEnoughNames)
	assert.ErrorIs(t, g.Start(0, nil, NewCardPool(random.New(1))), ErrNoPlayers)
}

func TestStartCreatesPlayers(t *testing.T) {
	rng := random.New(1)
	h := newGameHarnessWithPool(t, rng, newTestPool(rng), "a", "b", "c")
	g := h.game

	assert.True(t, g.Started())
	assert.Equal(t, 1, g.Round())
	require.Len(t, g.Players(), 3)
	for _, p := range g.Players() {
		assert.Equal(t, 1, p.Creature.Attack)
		assert.Equal(t, 1, p.Creature.Health)
		assert.Equal(t, 3, p.Lives())
		assert.Equal(t, 10, p.Mana.Current)
		assert.Equal(t, 30, p.Mana.Cap)
		assert.Equal(t, 10, p.Shop.Count())
		assert.NotSame(t, h.pool, p.Pool)

		opp, ok := g.Opponent(p)
		require.True(t, ok)
		back, _ := g.Opponent(opp)
		assert.Same(t, p, back)
	}
}

func TestNewGameDefaults(t *testing.T) {
	g := NewGame(Settings{StartingLives: 5, StartingMana: 7, MaximumMana: 20}, nil, nil)
	assert.Equal(t, Settings{
		ShopQuantity:  DefaultSettings().ShopQuantity,
		StartingLives: 5,
		StartingMana:  7,
		MaximumMana:   20,
	}, g.Settings())
	assert.NotNil(t, g.Rng())
	_, ok := g.Opponent(&Player{})
	assert.False(t, ok)
}

func TestNextRoundRequiresStart(t *testing.T) {
	g := NewGame(DefaultSettings(), random.New(1), nil)
	assert.ErrorIs(t, g.NextRound(), ErrNotStarted)
}

func TestNextRoundManaNeverExceedsCap(t *testing.T) {
	h := newGameHarness(t, random.New(1), "a", "b")
	p := h.player("a")

	for round := 2; round <= 10; round++ {
		p.Creature.SetKeyword(creature.Overload, round%3)
		require.NoError(t, h.game.NextRound())
		assert.Equal(t, round, h.game.Round())
		assert.LessOrEqual(t, p.Mana.Maximum, p.Mana.Cap)
		assert.Equal(t, p.Mana.Maximum-p.Mana.Overloaded, p.Mana.Current)
		assert.Equal(t, round%3, p.Mana.Overloaded)
		assert.Empty(t, p.Creature.PresentKeywords())
	}
	assert.Equal(t, 30, p.Mana.Maximum)
}

func TestNextRoundOverloadNeverMakesManaNegative(t *testing.T) {
	h := newGameHarness(t, random.New(1), "a", "b")
	p := h.player("a")
	p.Creature.SetKeyword(creature.Overload, 40)

	require.NoError(t, h.game.NextRound())

	assert.Equal(t, 15, p.Mana.Maximum)
	assert.Equal(t, 40, p.Mana.Overloaded)
	assert.Equal(t, 0, p.Mana.Current)
	assert.False(t, p.Mana.CanAfford(1))
}

func TestNextRoundOpensHistoryLayers(t *testing.T) {
	h := newGameHarness(t, random.New(1), "a", "b")
	p := h.player("a")
	p.AddAftermathMessage("stale")

	require.NoError(t, h.game.NextRound())

	assert.Equal(t, 2, p.Attached.Layers())
	assert.Equal(t, 2, p.Bought.Layers())
	assert.Equal(t, 2, p.Played.Layers())
	assert.Empty(t, p.AftermathMessages())
}

func TestNextRoundAftermathRunsInTwoPasses(t *testing.T) {
	h := newGameHarness(t, random.New(1), "a", "b")
	a, b := h.player("a"), h.player("b")

	var sawOpponentShields int
	a.Effects = []*Effect{On(TriggerAftermathOpponent, func(ctx *Context) error {
		opp, ok := ctx.Opponent()
		require.True(t, ok)
		sawOpponentShields = opp.Creature.Keyword(creature.Shields)
		return nil
	})}
	b.Effects = []*Effect{On(TriggerAftermathPlayer, func(ctx *Context) error {
		ctx.Player.Creature.ChangeKeyword(creature.Shields, 5)
		return nil
	})}

	require.NoError(t, h.game.NextRound())
	assert.Equal(t, 5, sawOpponentShields)
	assert.Equal(t, 5, b.Creature.Keyword(creature.Shields))
}

func TestNextRoundSwapsInPendingEffects(t *testing.T) {
	h := newGameHarness(t, random.New(1), "a", "b")
	p := h.player("a")
	pending := On(TriggerStartOfCombat, nil)
	p.Effects = []*Effect{On(TriggerBattlecry, nil)}
	p.NextRoundEffects = []*Effect{pending}

	require.NoError(t, h.game.NextRound())

	assert.Equal(t, []*Effect{pending}, p.Effects)
	assert.Empty(t, p.NextRoundEffects)
}

func TestConductFights(t *testing.T) {
	h := newGameHarness(t, random.New(11), "a", "b", "c", "d", "e")
	outputs := h.game.ConductFights()
	require.Len(t, outputs, 2)

	lost := 0
	seen := make(map[*Player]bool)
	for _, out := range outputs {
		assert.False(t, seen[out.Player1])
		assert.False(t, seen[out.Player2])
		seen[out.Player1], seen[out.Player2] = true, true
		assert.NotNil(t, out.Winner)
		assert.NotNil(t, out.Loser)
	}
	for _, p := range h.game.Players() {
		lost += 3 - p.Lives()
	}
	assert.Equal(t, 2, lost)
}

func TestConductFightsSkipsEliminated(t *testing.T) {
	h := newGameHarness(t, random.New(11), "a", "b", "c")
	c := h.player("c")
	for c.Lives() > 0 {
		c.LoseLife()
	}
	require.NoError(t, h.game.NextRound())

	outputs := h.game.ConductFights()
	require.Len(t, outputs, 1)
	assert.NotSame(t, c, outputs[0].Player1)
	assert.NotSame(t, c, outputs[0].Player2)
	assert.Len(t, h.game.ActivePlayers(), 2)
}

func TestGameOver(t *testing.T) {
	h := newGameHarness(t, random.New(11), "a", "b")
	assert.False(t, h.game.IsOver())
	_, ok := h.game.Winner()
	assert.False(t, ok)

	b := h.player("b")
	for b.Lives() > 0 {
		b.LoseLife()
	}
	assert.True(t, h.game.IsOver())
	winner, ok := h.game.Winner()
	require.True(t, ok)
	assert.Equal(t, "a", winner.Name)
}
