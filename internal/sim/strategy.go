package sim

import (
	"github.com/scrapscramble/scrapscramble-go/internal/game"
	"github.com/scrapscramble/scrapscramble-go/internal/game/creature"
)

// MaxActions bounds how many cards a strategy may buy or play in one turn.
const MaxActions = 64

// Strategy decides what a bot does during the buy phase.
type Strategy interface {
	// TakeTurn buys and plays cards for p and returns how many succeeded.
	TakeTurn(g *game.Game, p *game.Player) int
	// Name returns a human-readable identifier for logs.
	Name() string
}

// Greedy buys the strongest affordable shop upgrade until nothing is
// affordable, then plays every affordable card in hand.
type Greedy struct{}

func (Greedy) Name() string { return "greedy" }

func (Greedy) TakeTurn(g *game.Game, p *game.Player) int {
	actions := 0
	for actions < MaxActions {
		idx := bestOffer(p)
		if idx < 0 || p.Shop.Buy(idx, g, p) != game.Successful {
			break
		}
		actions++
	}
	for actions < MaxActions {
		idx := firstPlayable(p)
		if idx < 0 || p.Hand.Play(idx, g, p) != game.Successful {
			break
		}
		actions++
	}
	return actions
}

// bestOffer picks the buyable upgrade with the most total stats, ties going
// to the more expensive one. It returns -1 when nothing can be bought.
func bestOffer(p *game.Player) int {
	best, bestScore, bestCost := -1, -1, -1
	for i, u := range p.Shop.Slots() {
		if u == nil || u.Creature.HasKeyword(creature.Frozen) || !p.Mana.CanAfford(u.Cost) {
			continue
		}
		score := u.Creature.Attack + u.Creature.Health
		if score > bestScore || (score == bestScore && u.Cost > bestCost) {
			best, bestScore, bestCost = i, score, u.Cost
		}
	}
	return best
}

func firstPlayable(p *game.Player) int {
	for i, c := range p.Hand.Slots() {
		if c != nil && p.Mana.CanAfford(c.Info().Cost) {
			return i
		}
	}
	return -1
}

// Idle never buys anything.
type Idle struct{}

func (Idle) Name() string { return "idle" }

func (Idle) TakeTurn(*game.Game, *game.Player) int { return 0 }
