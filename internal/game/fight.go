package game

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/scrapscramble/scrapscramble-go/internal/game/creature"
)

// Location groups fight messages for display.
type Location int

const (
	Player1Upgrades Location = iota
	Player2Upgrades
	Player1Effects
	Player2Effects
	BeforeCombat
	DuringCombat
)

// Locations lists every location in display order.
var Locations = []Location{
	Player1Upgrades, Player2Upgrades, Player1Effects, Player2Effects, BeforeCombat, DuringCombat,
}

func (l Location) String() string {
	switch l {
	case Player1Upgrades:
		return "Player1Upgrades"
	case Player2Upgrades:
		return "Player2Upgrades"
	case Player1Effects:
		return "Player1Effects"
	case Player2Effects:
		return "Player2Effects"
	case BeforeCombat:
		return "BeforeCombat"
	case DuringCombat:
		return "DuringCombat"
	default:
		return "Unknown"
	}
}

// FightOutput is the record of one fight.
type FightOutput struct {
	Player1 *Player
	Player2 *Player
	Winner  *Player
	Loser   *Player

	messages map[Location][]string
}

func newFightOutput(p1, p2 *Player) *FightOutput {
	return &FightOutput{
		Player1:  p1,
		Player2:  p2,
		messages: make(map[Location][]string),
	}
}

// AddMessage appends msg to a location.
func (f *FightOutput) AddMessage(loc Location, msg string) {
	f.messages[loc] = append(f.messages[loc], msg)
}

// Messages returns a copy of a location's messages.
func (f *FightOutput) Messages(loc Location) []string {
	return append([]string{}, f.messages[loc]...)
}

// Fight resolves combat between two members of the game. It returns nil if
// either is not a member. Attack and health are restored afterwards; only
// the loser's life total changes.
func (g *Game) Fight(p1, p2 *Player) *FightOutput {
	if !g.isMember(p1) || !g.isMember(p2) {
		return nil
	}

	out := newFightOutput(p1, p2)
	for _, u := range p1.Attached.LastLayer() {
		out.AddMessage(Player1Upgrades, u.Name)
	}
	for _, u := range p2.Attached.LastLayer() {
		out.AddMessage(Player2Upgrades, u.Name)
	}
	for _, line := range p1.effectSummary() {
		out.AddMessage(Player1Effects, line)
	}
	for _, line := range p2.effectSummary() {
		out.AddMessage(Player2Effects, line)
	}

	attack1, health1 := p1.Creature.Attack, p1.Creature.Health
	attack2, health2 := p2.Creature.Attack, p2.Creature.Health

	first, second, coinflip := g.attackOrder(p1, p2)
	if coinflip {
		out.AddMessage(BeforeCombat, fmt.Sprintf("%s wins the coinflip for Attack Priority.", first.Name))
	} else {
		out.AddMessage(BeforeCombat, fmt.Sprintf("%s has Attack Priority.", first.Name))
	}

	g.caller.Activate(&first.Effects, &Context{Trigger: TriggerStartOfCombat, Game: g, Player: first, Fight: out})
	g.caller.Activate(&second.Effects, &Context{Trigger: TriggerStartOfCombat, Game: g, Player: second, Fight: out})

	for turn := 0; p1.IsAlive() && p2.IsAlive(); turn++ {
		if turn >= MaxAttacks {
			out.AddMessage(DuringCombat, "The fight ends in a stalemate.")
			break
		}
		attacker, defender := first, second
		if turn%2 == 1 {
			attacker, defender = second, first
		}
		attacker.attack(defender, out)
	}

	winner, loser := p1, p2
	switch {
	case !p2.IsAlive():
	case !p1.IsAlive():
		winner, loser = p2, p1
	case p1.Creature.Health < p2.Creature.Health:
		winner, loser = p2, p1
	}
	out.AddMessage(DuringCombat, fmt.Sprintf("%s has won!", winner.Name))
	loser.LoseLife()
	out.Winner, out.Loser = winner, loser

	p1.Creature.Attack, p1.Creature.Health = attack1, health1
	p2.Creature.Attack, p2.Creature.Health = attack2, health2

	g.logger.Info("fight resolved",
		zap.String("game_id", g.ID.String()),
		zap.Int("round", g.round),
		zap.String("winner", winner.Name),
		zap.String("loser", loser.Name),
		zap.Int("loser_lives", loser.Lives()),
	)
	return out
}

// attackOrder compares priority, then Tiebreaker, then flips a coin.
func (g *Game) attackOrder(p1, p2 *Player) (first, second *Player, coinflip bool) {
	s1, s2 := p1.PriorityScore(), p2.PriorityScore()
	if s1 != s2 {
		if s1 > s2 {
			return p1, p2, false
		}
		return p2, p1, false
	}
	t1, t2 := p1.Creature.Keyword(creature.Tiebreaker), p2.Creature.Keyword(creature.Tiebreaker)
	if t1 != t2 {
		if t1 > t2 {
			return p1, p2, false
		}
		return p2, p1, false
	}
	if g.rng.Intn(2) == 1 {
		return p2, p1, true
	}
	return p1, p2, true
}
