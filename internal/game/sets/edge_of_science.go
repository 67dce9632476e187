package sets

import (
	"github.com/scrapscramble/scrapscramble-go/internal/game"
	"github.com/scrapscramble/scrapscramble-go/internal/game/creature"
)

var edgeOfScience = []Entry{
	{Name: "Orbital Mechanosphere", Set: EdgeOfScience, New: OrbitalMechanosphere},
	{Name: "Giant Photon", Set: EdgeOfScience, New: GiantPhoton},
	{Name: "Traffic Cone", Set: EdgeOfScience, New: TrafficCone},
	{Name: "Stasis Crystal", Set: EdgeOfScience, New: StasisCrystal},
	{Name: "Voltage Tracker", Set: EdgeOfScience, New: VoltageTracker},
	{Name: "Shieldbot Clanker", Set: EdgeOfScience, New: ShieldbotClanker},
	{Name: "Spikebot Shanker", Set: EdgeOfScience, New: SpikebotShanker},
	{Name: "Pool of Bronze", Set: EdgeOfScience, New: PoolOfBronze},
	{Name: "Indecisive Autoshopper", Set: EdgeOfScience, New: IndecisiveAutoshopper},
	{Name: "Energy Field", Set: EdgeOfScience, New: EnergyField},
	{Name: "Light Chaser", Set: EdgeOfScience, New: LightChaser},
	{Name: "Philosopher's Stone", Set: EdgeOfScience, New: PhilosophersStone},
	{Name: "Paradox Engine", Set: EdgeOfScience, New: ParadoxEngine},
	{Name: "Earth's Prototype Core", Set: EdgeOfScience, New: EarthsPrototypeCore},
}

func OrbitalMechanosphere() *game.Upgrade {
	return game.UpgradeSpec{
		Name: "Orbital Mechanosphere", Cost: 22, Attack: 33, Health: 33,
		Rarity: game.RarityCommon,
	}.Build()
}

func GiantPhoton() *game.Upgrade {
	return game.UpgradeSpec{
		Name: "Giant Photon", Cost: 4, Attack: 5, Health: 4,
		Rarity:   game.RarityCommon,
		Text:     "Rush. Overload: (3)",
		Keywords: map[creature.Keyword]int{creature.Rush: 1, creature.Overload: 3},
	}.Build()
}

func TrafficCone() *game.Upgrade {
	return game.UpgradeSpec{
		Name: "Traffic Cone", Cost: 2, Attack: 2, Health: 1,
		Rarity:   game.RarityCommon,
		Text:     "Binary. Battlecry: Gain +2 Spikes. Overload: (1)",
		Keywords: map[creature.Keyword]int{creature.Binary: 1, creature.Overload: 1},
		Effects:  []*game.Effect{game.On(game.TriggerBattlecry, gain(creature.Spikes, 2))},
	}.Build()
}

func StasisCrystal() *game.Upgrade {
	return game.UpgradeSpec{
		Name: "Stasis Crystal", Cost: 2, Attack: 0, Health: 2,
		Rarity: game.RarityCommon,
		Text:   "Battlecry: Increase your Maximum Mana by 1.",
		Effects: []*game.Effect{game.On(game.TriggerBattlecry, func(ctx *game.Context) error {
			ctx.Player.Mana.RaiseMaximum(1)
			return nil
		})},
	}.Build()
}

// overloadedMana counts locked mana plus the Overload waiting for next round.
func overloadedMana(p *game.Player) int {
	return p.Mana.Overloaded + p.Creature.Keyword(creature.Overload)
}

func VoltageTracker() *game.Upgrade {
	return game.UpgradeSpec{
		Name: "Voltage Tracker", Cost: 4, Attack: 2, Health: 3,
		Rarity: game.RarityCommon,
		Text:   "Battlecry: Gain +1/+1 for each Overloaded Mana Crystal you have.",
		Effects: []*game.Effect{game.On(game.TriggerBattlecry, func(ctx *game.Context) error {
			n := overloadedMana(ctx.Player)
			ctx.Player.Creature.Attack += n
			ctx.Player.Creature.Health += n
			return nil
		})},
	}.Build()
}

func ShieldbotClanker() *game.Upgrade {
	return game.UpgradeSpec{
		Name: "Shieldbot Clanker", Cost: 5, Attack: 2, Health: 4,
		Rarity: game.RarityCommon,
		Text:   "Battlecry and Aftermath: Gain +8 Shields.",
		Effects: []*game.Effect{
			game.On(game.TriggerBattlecry, gain(creature.Shields, 8)),
			game.On(game.TriggerAftermathPlayer, func(ctx *game.Context) error {
				ctx.Player.Creature.ChangeKeyword(creature.Shields, 8)
				ctx.Player.AddAftermathMessage("Shieldbot Clanker gives you +8 Shields.")
				return nil
			}),
		},
	}.Build()
}

func SpikebotShanker() *game.Upgrade {
	return game.UpgradeSpec{
		Name: "Spikebot Shanker", Cost: 5, Attack: 4, Health: 2,
		Rarity: game.RarityCommon,
		Text:   "Battlecry and Aftermath: Gain +8 Spikes.",
		Effects: []*game.Effect{
			game.On(game.TriggerBattlecry, gain(creature.Spikes, 8)),
			game.On(game.TriggerAftermathPlayer, func(ctx *game.Context) error {
				ctx.Player.Creature.ChangeKeyword(creature.Spikes, 8)
				ctx.Player.AddAftermathMessage("Spikebot Shanker gives you +8 Spikes.")
				return nil
			}),
		},
	}.Build()
}

func PoolOfBronze() *game.Upgrade {
	return game.UpgradeSpec{
		Name: "Pool of Bronze", Cost: 2, Attack: 6, Health: 2,
		Rarity: game.RarityCommon,
		Text:   "Aftermath: Replace your shop with 6 Common Upgrades.",
		Effects: []*game.Effect{game.On(game.TriggerAftermathPlayer, func(ctx *game.Context) error {
			cards := ctx.Player.Pool.RandomUpgrades(6, func(u *game.Upgrade) bool {
				return u.Rarity == game.RarityCommon
			})
			if cards == nil {
				return nil
			}
			ctx.Player.Shop.Clear()
			ctx.Player.Shop.AddAll(cards)
			ctx.Player.AddAftermathMessage("Pool of Bronze replaced your shop with 6 Common Upgrades.")
			return nil
		})},
	}.Build()
}

func IndecisiveAutoshopper() *game.Upgrade {
	return game.UpgradeSpec{
		Name: "Indecisive Autoshopper", Cost: 4, Attack: 2, Health: 4,
		Rarity:   game.RarityRare,
		Text:     "Binary. Battlecry: Refresh your shop.",
		Keywords: map[creature.Keyword]int{creature.Binary: 1},
		Effects: []*game.Effect{game.On(game.TriggerBattlecry, func(ctx *game.Context) error {
			ctx.Player.Shop.Refresh(ctx.Game, ctx.Player, false)
			return nil
		})},
	}.Build()
}

func EnergyField() *game.Upgrade {
	return game.UpgradeSpec{
		Name: "Energy Field", Cost: 3, Attack: 3, Health: 3,
		Rarity: game.RarityRare,
		Text:   "Battlecry: If you're Overloaded, add 3 random Upgrades that Overload to your hand.",
		Effects: []*game.Effect{game.On(game.TriggerBattlecry, func(ctx *game.Context) error {
			if !ctx.Player.IsOverloaded() {
				return nil
			}
			for _, u := range ctx.Player.Pool.RandomUpgrades(3, func(u *game.Upgrade) bool {
				return u.Creature.HasKeyword(creature.Overload)
			}) {
				ctx.Player.Hand.Add(u)
			}
			return nil
		})},
	}.Build()
}

func LightChaser() *game.Upgrade {
	return game.UpgradeSpec{
		Name: "Light Chaser", Cost: 12, Attack: 9, Health: 7,
		Rarity: game.RarityRare,
		Text:   "Battlecry: Gain Rush x1 for each Overloaded Mana Crystal you have.",
		Effects: []*game.Effect{game.On(game.TriggerBattlecry, func(ctx *game.Context) error {
			ctx.Player.Creature.ChangeKeyword(creature.Rush, overloadedMana(ctx.Player))
			return nil
		})},
	}.Build()
}

func PhilosophersStone() *game.Upgrade {
	return game.UpgradeSpec{
		Name: "Philosopher's Stone", Cost: 3, Attack: 1, Health: 1,
		Rarity: game.RarityEpic,
		Text:   "Battlecry: Transform your Common Upgrades into random Legendary ones.",
		Effects: []*game.Effect{game.On(game.TriggerBattlecry, func(ctx *game.Context) error {
			shop := ctx.Player.Shop
			for i, u := range shop.Slots() {
				if u == nil || u.Rarity != game.RarityCommon {
					continue
				}
				legendary := ctx.Player.Pool.RandomUpgrade(func(c *game.Upgrade) bool {
					return c.Rarity == game.RarityLegendary
				})
				if legendary == nil {
					return nil
				}
				shop.Set(i, legendary)
			}
			return nil
		})},
	}.Build()
}

func ParadoxEngine() *game.Upgrade {
	return game.UpgradeSpec{
		Name: "Paradox Engine", Cost: 12, Attack: 10, Health: 10,
		Rarity: game.RarityLegendary,
		Text:   "After you buy an Upgrade, refresh your shop.",
		Effects: []*game.Effect{
			game.On(game.TriggerOnBuyingUpgrade, func(ctx *game.Context) error {
				ctx.Player.Shop.Refresh(ctx.Game, ctx.Player, false)
				return nil
			}).Shown("After you buy an Upgrade, refresh your shop.", game.ScopePublic),
		},
	}.Build()
}

func EarthsPrototypeCore() *game.Upgrade {
	return game.UpgradeSpec{
		Name: "Earth's Prototype Core", Cost: 7, Attack: 0, Health: 12,
		Rarity: game.RarityLegendary,
		Text:   "Battlecry: For each Overload Upgrade applied to your Mech this game, increase your Maximum Mana by 1.",
		Effects: []*game.Effect{game.On(game.TriggerBattlecry, func(ctx *game.Context) error {
			n := ctx.Player.Attached.CountAll(func(u *game.Upgrade) bool {
				return u.Creature.HasKeyword(creature.Overload)
			})
			ctx.Player.Mana.RaiseMaximum(n)
			return nil
		})},
	}.Build()
}
