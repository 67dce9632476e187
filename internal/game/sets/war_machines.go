package sets

import (
	"github.com/scrapscramble/scrapscramble-go/internal/game"
	"github.com/scrapscramble/scrapscramble-go/internal/game/creature"
)

var warMachines = []Entry{
	{Name: "Arm of Exotron", Set: WarMachines, New: ArmOfExotron},
	{Name: "Leg of Exotron", Set: WarMachines, New: LegOfExotron},
	{Name: "Motherboard of Exotron", Set: WarMachines, New: MotherboardOfExotron},
	{Name: "Wheel of Exotron", Set: WarMachines, New: WheelOfExotron},
	{Name: "Heavy-Duty Plating", Set: WarMachines, New: HeavyDutyPlating},
	{Name: "Sixpistol Constable", Set: WarMachines, New: SixpistolConstable},
	{Name: "Helicopter Blades", Set: WarMachines, New: HelicopterBlades},
	{Name: "Tank Threads", Set: WarMachines, New: TankThreads},
}

func ArmOfExotron() *game.Upgrade {
	return game.UpgradeSpec{
		Name: "Arm of Exotron", Cost: 2, Attack: 2, Health: 1,
		Rarity:  game.RarityCommon,
		Text:    "Battlecry: Gain +2 Spikes.",
		Effects: []*game.Effect{game.On(game.TriggerBattlecry, gain(creature.Spikes, 2))},
	}.Build()
}

func LegOfExotron() *game.Upgrade {
	return game.UpgradeSpec{
		Name: "Leg of Exotron", Cost: 2, Attack: 1, Health: 2,
		Rarity:  game.RarityCommon,
		Text:    "Battlecry: Gain +2 Shields.",
		Effects: []*game.Effect{game.On(game.TriggerBattlecry, gain(creature.Shields, 2))},
	}.Build()
}

func MotherboardOfExotron() *game.Upgrade {
	return game.UpgradeSpec{
		Name: "Motherboard of Exotron", Cost: 2, Attack: 2, Health: 2,
		Rarity:   game.RarityCommon,
		Text:     "Tiebreaker. Overload: (1)",
		Keywords: map[creature.Keyword]int{creature.Tiebreaker: 1, creature.Overload: 1},
	}.Build()
}

func WheelOfExotron() *game.Upgrade {
	return game.UpgradeSpec{
		Name: "Wheel of Exotron", Cost: 2, Attack: 1, Health: 1,
		Rarity: game.RarityCommon,
		Text:   "Battlecry: Gain +2 Spikes and +2 Shields.",
		Effects: []*game.Effect{game.On(game.TriggerBattlecry, func(ctx *game.Context) error {
			ctx.Player.Creature.ChangeKeyword(creature.Spikes, 2)
			ctx.Player.Creature.ChangeKeyword(creature.Shields, 2)
			return nil
		})},
	}.Build()
}

func HeavyDutyPlating() *game.Upgrade {
	return game.UpgradeSpec{
		Name: "Heavy-Duty Plating", Cost: 3, Attack: 5, Health: 5,
		Rarity:   game.RarityCommon,
		Text:     "Taunt x2",
		Keywords: map[creature.Keyword]int{creature.Taunt: 2},
	}.Build()
}

func SixpistolConstable() *game.Upgrade {
	return game.UpgradeSpec{
		Name: "Sixpistol Constable", Cost: 15, Attack: 6, Health: 6,
		Rarity:   game.RarityCommon,
		Text:     "Rush x6",
		Keywords: map[creature.Keyword]int{creature.Rush: 6},
	}.Build()
}

func HelicopterBlades() *game.Upgrade {
	return game.UpgradeSpec{
		Name: "Helicopter Blades", Cost: 5, Attack: 4, Health: 3,
		Rarity:   game.RarityCommon,
		Text:     "Rush. Battlecry: Gain +4 Spikes. Overload: (3)",
		Keywords: map[creature.Keyword]int{creature.Rush: 1, creature.Overload: 3},
		Effects:  []*game.Effect{game.On(game.TriggerBattlecry, gain(creature.Spikes, 4))},
	}.Build()
}

func TankThreads() *game.Upgrade {
	return game.UpgradeSpec{
		Name: "Tank Threads", Cost: 2, Attack: 3, Health: 4,
		Rarity:   game.RarityCommon,
		Text:     "Taunt. Battlecry: Gain +4 Shields. Overload: (3)",
		Keywords: map[creature.Keyword]int{creature.Taunt: 1, creature.Overload: 3},
		Effects:  []*game.Effect{game.On(game.TriggerBattlecry, gain(creature.Shields, 4))},
	}.Build()
}
