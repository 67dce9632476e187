package game

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/scrapscramble/scrapscramble-go/internal/game/creature"
	"github.com/scrapscramble/scrapscramble-go/internal/game/history"
	"github.com/scrapscramble/scrapscramble-go/internal/game/mana"
)

// Player is one participant's mech and economy.
type Player struct {
	ID       uuid.UUID
	Name     string
	Creature *creature.Data
	Shop     *Shop
	Hand     *Hand
	Mana     *mana.Pool
	Pool     *CardPool

	Attached *history.History[*Upgrade]
	Bought   *history.History[*Upgrade]
	Played   *history.History[Card]

	// Effects are active this round. NextRoundEffects replace them when the
	// round advances.
	Effects          []*Effect
	NextRoundEffects []*Effect

	aftermath []string
	lives     int
}

// NewPlayer creates a player with the game's starting economy and a private
// clone of pool.
func NewPlayer(name string, settings Settings, pool *CardPool) *Player {
	return &Player{
		ID:       uuid.New(),
		Name:     name,
		Creature: creature.New(1, 1),
		Shop:     NewShop(),
		Hand:     NewHand(),
		Mana:     mana.NewPool(settings.StartingMana, settings.MaximumMana),
		Pool:     pool.Clone(),
		Attached: history.New[*Upgrade](),
		Bought:   history.New[*Upgrade](),
		Played:   history.New[Card](),
		lives:    settings.StartingLives,
	}
}

// Lives returns the remaining lives.
func (p *Player) Lives() int { return p.lives }

// LoseLife removes one life.
func (p *Player) LoseLife() { p.lives-- }

// IsEliminated reports whether the player has no lives left.
func (p *Player) IsEliminated() bool { return p.lives <= 0 }

// IsAlive reports whether the mech still has health during a fight.
func (p *Player) IsAlive() bool { return p.Creature.Health > 0 }

// PriorityScore decides attack order: Rush minus Taunt.
func (p *Player) PriorityScore() int {
	return p.Creature.Keyword(creature.Rush) - p.Creature.Keyword(creature.Taunt)
}

// IsOverloaded reports whether mana is locked this round or will be next round.
func (p *Player) IsOverloaded() bool {
	return p.Mana.Overloaded > 0 || p.Creature.HasKeyword(creature.Overload)
}

// AftermathMessages returns this round's aftermath notes.
func (p *Player) AftermathMessages() []string {
	return append([]string(nil), p.aftermath...)
}

// AddAftermathMessage records a note for the presentation layer.
func (p *Player) AddAftermathMessage(msg string) {
	p.aftermath = append(p.aftermath, msg)
}

// ClearAftermathMessages drops every aftermath note.
func (p *Player) ClearAftermathMessages() {
	p.aftermath = nil
}

// GainNextRoundEffects swaps in the pending effects.
func (p *Player) GainNextRoundEffects() {
	p.Effects = p.NextRoundEffects
	p.NextRoundEffects = nil
}

// AttachUpgrade merges u into the player and takes over its effects.
func (p *Player) AttachUpgrade(g *Game, u *Upgrade) {
	g.caller.Activate(&u.Effects, &Context{Trigger: TriggerOnPlay, Game: g, Player: p, Origin: u})

	if binary := u.Keyword(creature.Binary); binary > 0 {
		if cp := p.Pool.LookupUpgrade(u.Name); cp != nil {
			cp.Creature.SetKeyword(creature.Binary, binary-1)
			cp.Text = stripBinaryText(cp.Text)
			p.Hand.Add(cp)
		}
	}

	p.Creature.Add(u.Creature)
	for _, k := range creature.TransientKeywords {
		p.Creature.ClearKeyword(k)
	}

	g.caller.Activate(&u.Effects, &Context{Trigger: TriggerBattlecry, Game: g, Player: p, Origin: u})
	if len(p.Played.LastLayer()) > 0 {
		g.caller.Activate(&u.Effects, &Context{Trigger: TriggerCombo, Game: g, Player: p, Origin: u})
	}

	p.Attached.Append(u)
	p.Effects = append(p.Effects, cloneEffects(u.Effects)...)

	g.logger.Debug("upgrade attached",
		zap.String("game_id", g.ID.String()),
		zap.String("player", p.Name),
		zap.String("upgrade", u.Name),
		zap.Stringer("stats", p.Creature),
	)
}

// CastSpell fires the spell's own OnPlay effects, then the player's
// AfterYouCastASpell effects.
func (p *Player) CastSpell(g *Game, s *Spell) {
	g.caller.Activate(&s.Effects, &Context{Trigger: TriggerOnPlay, Game: g, Player: p, Origin: s})
	g.caller.Activate(&p.Effects, &Context{Trigger: TriggerAfterYouCastASpell, Game: g, Player: p, Origin: s})
}

func stripBinaryText(text string) string {
	if strings.HasPrefix(text, "Binary. ") || strings.HasPrefix(text, "Binary, ") {
		return text[len("Binary. "):]
	}
	return text + " (no Binary)"
}

// attack resolves one hit on defender and records it in out.
func (p *Player) attack(defender *Player, out *FightOutput) {
	base := p.Creature.Attack
	damage := base
	msg := fmt.Sprintf("%s attacks for %d damage, ", p.Name, base)

	spikes := p.Creature.Keyword(creature.Spikes)
	if spikes > 0 {
		damage += spikes
		msg += fmt.Sprintf("increased to %d by Spikes, ", damage)
	}
	if shields := defender.Creature.Keyword(creature.Shields); shields > 0 {
		damage -= shields
		if damage < 0 {
			damage = 0
		}
		if spikes > 0 {
			msg = fmt.Sprintf("%s attacks for %d damage, adjusted to %d by Spikes and Shields, ", p.Name, base, damage)
		} else {
			msg += fmt.Sprintf("reduced to %d by Shields, ", damage)
		}
	}
	p.Creature.ClearKeyword(creature.Spikes)
	defender.Creature.ClearKeyword(creature.Shields)

	defender.takeDamage(p, damage, msg, out)
}

func (p *Player) takeDamage(attacker *Player, damage int, msg string, out *FightOutput) {
	health := p.Creature.Health - damage
	if damage > 0 && attacker.Creature.HasKeyword(creature.Poisonous) {
		health = 0
	}
	if health < 0 {
		health = 0
	}
	p.Creature.Health = health

	if p.IsAlive() {
		msg += fmt.Sprintf("reducing %s to %d Health.", p.Name, health)
	} else {
		msg += fmt.Sprintf("destroying %s.", p.Name)
	}
	out.AddMessage(DuringCombat, msg)
}

// effectSummary lists keywords and public effect texts for a fight report.
func (p *Player) effectSummary() []string {
	lines := p.Creature.KeywordSummary()
	for _, e := range p.Effects {
		if e.Scope == ScopePublic && e.Text != "" {
			lines = append(lines, e.Text)
		}
	}
	return lines
}

func (p *Player) String() string {
	return p.Name
}
