package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scrapscramble/scrapscramble-go/internal/game/creature"
	"github.com/scrapscramble/scrapscramble-go/internal/game/random"
)

func stockShop(p *Player, upgrades ...*Upgrade) {
	p.Shop.Clear()
	for _, u := range upgrades {
		p.Shop.Add(u)
	}
}

func blank(name string) *Upgrade {
	return testUpgrade(name, 0, 0, 0, RarityCommon)
}

func TestShopBuyEmptyPosition(t *testing.T) {
	h := newGameHarness(t, random.New(1), "alice", "bob")
	p := h.player("alice")
	stockShop(p, blank("a"), blank("b"), blank("c"), blank("d"), blank("e"))
	p.Shop.RemoveAt(2)

	assert.Equal(t, EmptyPosition, p.Shop.Buy(2, h.game, p))
}

func TestShopBuyOutOfRangePanics(t *testing.T) {
	h := newGameHarness(t, random.New(1), "alice", "bob")
	p := h.player("alice")
	stockShop(p, blank("a"), blank("b"), blank("c"))

	assert.Panics(t, func() { p.Shop.Buy(-1, h.game, p) })
	assert.Panics(t, func() { p.Shop.Buy(p.Shop.Size(), h.game, p) })
}

func TestShopBuyTooExpensive(t *testing.T) {
	h := newGameHarness(t, random.New(1), "alice", "bob")
	p := h.player("alice")
	stockShop(p, blank("a"), blank("b"), testUpgrade("big", 8, 5, 5, RarityCommon), blank("d"))
	p.Mana.Current = 5

	assert.Equal(t, NotEnoughMana, p.Shop.Buy(2, h.game, p))
	assert.Equal(t, 5, p.Mana.Current)
}

func TestShopBuyFrozenUpgrade(t *testing.T) {
	h := newGameHarness(t, random.New(1), "alice", "bob")
	p := h.player("alice")
	frozen := UpgradeSpec{
		Name: "ice", Cost: 3, Rarity: RarityCommon,
		Keywords: map[creature.Keyword]int{creature.Frozen: 3},
	}.Build()
	stockShop(p, blank("a"), blank("b"), frozen, blank("d"))

	for i := 0; i < 3; i++ {
		assert.Equal(t, FrozenUpgrade, p.Shop.Buy(2, h.game, p))
	}
	assert.Equal(t, 10, p.Mana.Current)
	assert.Same(t, frozen, p.Shop.Get(2))
}

func TestShopBuySuccessful(t *testing.T) {
	h := newGameHarness(t, random.New(1), "alice", "bob")
	p := h.player("alice")

	battlecry, aftermath, onBuy := &counter{}, &counter{}, &counter{}
	p.Effects = append(p.Effects, onBuy.effect(TriggerOnBuyingUpgrade))

	bought := UpgradeSpec{
		Name: "brawler", Cost: 4, Attack: 4, Health: 4, Rarity: RarityCommon,
		Keywords: map[creature.Keyword]int{creature.Rush: 2},
		Effects: []*Effect{
			battlecry.effect(TriggerBattlecry),
			aftermath.effect(TriggerAftermathPlayer),
		},
	}.Build()
	stockShop(p, blank("a"), blank("b"), bought, blank("d"))

	require.Equal(t, Successful, p.Shop.Buy(2, h.game, p))

	assert.Nil(t, p.Shop.Get(2))
	assert.Equal(t, 5, p.Creature.Attack)
	assert.Equal(t, 5, p.Creature.Health)
	assert.Equal(t, 2, p.Creature.Keyword(creature.Rush))
	assert.Equal(t, 6, p.Mana.Current)

	require.Len(t, p.Effects, 3)
	for _, e := range bought.Effects {
		for _, active := range p.Effects {
			assert.NotSame(t, e, active)
		}
	}
	assert.Equal(t, 1, battlecry.calls)
	assert.Equal(t, 0, aftermath.calls)
	assert.Equal(t, 1, onBuy.calls)

	assert.Equal(t, []*Upgrade{bought}, p.Bought.LastLayer())
	assert.Equal(t, []Card{bought}, p.Played.LastLayer())
	assert.Equal(t, []*Upgrade{bought}, p.Attached.LastLayer())
}

func TestShopRefreshRespectsQuantitiesAndCost(t *testing.T) {
	rng := random.New(9)
	h := newGameHarnessWithPool(t, rng, newTestPool(rng), "alice", "bob")
	p := h.player("alice")
	settings := h.game.Settings()

	for i := 0; i < 20; i++ {
		p.Shop.Refresh(h.game, p, true)
		perRarity := make(map[Rarity]int)
		for _, u := range p.Shop.Cards() {
			perRarity[u.Rarity]++
			assert.LessOrEqual(t, u.Cost, p.Mana.Maximum-ShopCostMargin)
			assert.NotEqual(t, "Pricey", u.Name)
		}
		for _, r := range ShopRarities {
			assert.Equal(t, settings.Quantity(r), perRarity[r])
		}
	}

	// Legendary first, Common last.
	cards := p.Shop.Cards()
	assert.Equal(t, RarityLegendary, cards[0].Rarity)
	assert.Equal(t, RarityCommon, cards[len(cards)-1].Rarity)
}

func TestShopRefreshThawsFrozenUpgrades(t *testing.T) {
	rng := random.New(9)
	h := newGameHarnessWithPool(t, rng, newTestPool(rng), "alice", "bob")
	p := h.player("alice")

	frozen := UpgradeSpec{
		Name: "ice", Cost: 1, Rarity: RarityCommon,
		Keywords: map[creature.Keyword]int{creature.Frozen: 1},
	}.Build()
	stockShop(p, frozen)

	p.Shop.Refresh(h.game, p, true)

	assert.Equal(t, 10, p.Shop.Count())
	idx := p.Shop.IndexOf(frozen)
	require.Equal(t, p.Shop.Size()-1, idx, "frozen upgrades are re-added last")
	assert.False(t, frozen.Creature.HasKeyword(creature.Frozen))

	commons := 0
	for _, u := range p.Shop.Cards() {
		if u.Rarity == RarityCommon {
			commons++
		}
	}
	assert.Equal(t, 4, commons)

	assert.Equal(t, Successful, p.Shop.Buy(idx, h.game, p))
}

func TestShopRefreshWithoutDecreaseKeepsFrozen(t *testing.T) {
	rng := random.New(9)
	h := newGameHarnessWithPool(t, rng, newTestPool(rng), "alice", "bob")
	p := h.player("alice")

	frozen := UpgradeSpec{
		Name: "ice", Cost: 1, Rarity: RarityRare,
		Keywords: map[creature.Keyword]int{creature.Frozen: 2},
	}.Build()
	stockShop(p, frozen)

	p.Shop.Refresh(h.game, p, false)
	assert.Equal(t, 2, frozen.Keyword(creature.Frozen))

	p.Shop.Refresh(h.game, p, true)
	assert.Equal(t, 1, frozen.Keyword(creature.Frozen))
	assert.Equal(t, FrozenUpgrade, p.Shop.Buy(p.Shop.IndexOf(frozen), h.game, p))
}

func TestShopRefreshEmptyPool(t *testing.T) {
	h := newGameHarness(t, random.New(1), "alice", "bob")
	p := h.player("alice")
	p.Shop.Refresh(h.game, p, true)
	assert.Equal(t, 0, p.Shop.Size())
}
