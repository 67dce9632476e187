package sets

import (
	"github.com/scrapscramble/scrapscramble-go/internal/game"
	"github.com/scrapscramble/scrapscramble-go/internal/game/creature"
)

const prizePlushie = "Prize Plushie"

var ironmoonFaire = []Entry{
	{Name: "Toy Tank", Set: IronmoonFaire, New: ToyTank},
	{Name: "Toy Rocket", Set: IronmoonFaire, New: ToyRocket},
	{Name: "Swindler's Coin", Set: IronmoonFaire, New: SwindlersCoin},
	{Name: prizePlushie, Set: IronmoonFaire, Token: true, New: PrizePlushie},
	{Name: "Claw Machine", Set: IronmoonFaire, New: ClawMachine},
	{Name: "Prize Stacker", Set: IronmoonFaire, New: PrizeStacker},
	{Name: "Highroller", Set: IronmoonFaire, New: Highroller},
}

func ToyTank() *game.Upgrade {
	return game.UpgradeSpec{
		Name: "Toy Tank", Cost: 1, Attack: 1, Health: 3,
		Rarity:   game.RarityCommon,
		Text:     "Taunt",
		Keywords: map[creature.Keyword]int{creature.Taunt: 1},
	}.Build()
}

func ToyRocket() *game.Upgrade {
	return game.UpgradeSpec{
		Name: "Toy Rocket", Cost: 4, Attack: 3, Health: 1,
		Rarity:   game.RarityCommon,
		Text:     "Rush",
		Keywords: map[creature.Keyword]int{creature.Rush: 1},
	}.Build()
}

func SwindlersCoin() *game.Upgrade {
	return game.UpgradeSpec{
		Name: "Swindler's Coin", Cost: 1, Attack: 0, Health: 1,
		Rarity: game.RarityCommon,
		Text:   "Binary, Tiebreaker. Overload: (1)",
		Keywords: map[creature.Keyword]int{
			creature.Binary:     1,
			creature.Tiebreaker: 1,
			creature.Overload:   1,
		},
	}.Build()
}

func PrizePlushie() *game.Upgrade {
	return game.UpgradeSpec{
		Name: prizePlushie, Cost: 1, Attack: 1, Health: 1,
		Rarity: game.RarityNone,
	}.Build()
}

func ClawMachine() *game.Upgrade {
	return game.UpgradeSpec{
		Name: "Claw Machine", Cost: 3, Attack: 3, Health: 2,
		Rarity: game.RarityCommon,
		Text:   "Battlecry: Add three 1/1 Plushies to your hand.",
		Effects: []*game.Effect{game.On(game.TriggerBattlecry, func(ctx *game.Context) error {
			for i := 0; i < 3; i++ {
				token := ctx.Player.Pool.LookupUpgrade(prizePlushie)
				if token == nil {
					return nil
				}
				ctx.Player.Hand.Add(token)
			}
			return nil
		})},
	}.Build()
}

func PrizeStacker() *game.Upgrade {
	return game.UpgradeSpec{
		Name: "Prize Stacker", Cost: 4, Attack: 2, Health: 4,
		Rarity: game.RarityRare,
		Text:   "Battlecry: Give your Mech +1/+1 for each card in your hand.",
		Effects: []*game.Effect{game.On(game.TriggerBattlecry, func(ctx *game.Context) error {
			n := ctx.Player.Hand.Count()
			ctx.Player.Creature.Attack += n
			ctx.Player.Creature.Health += n
			return nil
		})},
	}.Build()
}

func Highroller() *game.Upgrade {
	return game.UpgradeSpec{
		Name: "Highroller", Cost: 4, Attack: 3, Health: 3,
		Rarity: game.RarityEpic,
		Text:   "Aftermath: Reduce the cost of a random Upgrade in your shop by (4).",
		Effects: []*game.Effect{game.On(game.TriggerAftermathPlayer, func(ctx *game.Context) error {
			u, ok := ctx.Player.Shop.RandomCard(ctx.Game.Rng())
			if !ok {
				return nil
			}
			u.SetCost(u.Cost - 4)
			ctx.Player.AddAftermathMessage("Highroller discounts your " + u.Name + " by (4).")
			return nil
		})},
	}.Build()
}
