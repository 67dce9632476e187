package game

import (
	"github.com/scrapscramble/scrapscramble-go/internal/game/random"
)

// CardPool is the registry cards are drawn from. Upgrades can be drawn at
// random; tokens and spells are only reachable by name. Every card handed
// out is a fresh clone.
type CardPool struct {
	upgrades []*Upgrade
	tokens   []*Upgrade
	spells   []*Spell
	rng      random.Source
}

// NewCardPool creates an empty pool drawing with rng.
func NewCardPool(rng random.Source) *CardPool {
	return &CardPool{rng: rng}
}

// AddUpgrade registers an upgrade that can appear in shops.
func (p *CardPool) AddUpgrade(u *Upgrade) {
	p.upgrades = append(p.upgrades, u)
}

// AddToken registers an upgrade that can only be created by other cards.
func (p *CardPool) AddToken(u *Upgrade) {
	p.tokens = append(p.tokens, u)
}

// AddSpell registers a spell.
func (p *CardPool) AddSpell(s *Spell) {
	p.spells = append(p.spells, s)
}

// Clone returns a deep copy sharing the same random source, so a player
// can modify its pool without touching anyone else's.
func (p *CardPool) Clone() *CardPool {
	cp := &CardPool{rng: p.rng}
	for _, u := range p.upgrades {
		cp.upgrades = append(cp.upgrades, u.CloneUpgrade())
	}
	for _, u := range p.tokens {
		cp.tokens = append(cp.tokens, u.CloneUpgrade())
	}
	for _, s := range p.spells {
		cp.spells = append(cp.spells, s.Clone().(*Spell))
	}
	return cp
}

// Upgrades returns the drawable upgrades. The slice must not be modified.
func (p *CardPool) Upgrades() []*Upgrade {
	return p.upgrades
}

// Tokens returns the token upgrades. The slice must not be modified.
func (p *CardPool) Tokens() []*Upgrade {
	return p.tokens
}

// Size returns the number of drawable upgrades.
func (p *CardPool) Size() int {
	return len(p.upgrades)
}

func (p *CardPool) matching(pred func(*Upgrade) bool) []*Upgrade {
	var out []*Upgrade
	for _, u := range p.upgrades {
		if pred == nil || pred(u) {
			out = append(out, u)
		}
	}
	return out
}

// RandomUpgrade draws a clone of a uniformly chosen matching upgrade, or nil
// if nothing matches.
func (p *CardPool) RandomUpgrade(pred func(*Upgrade) bool) *Upgrade {
	candidates := p.matching(pred)
	if len(candidates) == 0 {
		return nil
	}
	return candidates[p.rng.Intn(len(candidates))].CloneUpgrade()
}

// RandomUpgrades makes n independent draws with replacement. It returns nil
// when n > 0 and nothing matches; otherwise exactly n clones.
func (p *CardPool) RandomUpgrades(n int, pred func(*Upgrade) bool) []*Upgrade {
	if n <= 0 {
		return []*Upgrade{}
	}
	candidates := p.matching(pred)
	if len(candidates) == 0 {
		return nil
	}
	out := make([]*Upgrade, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, candidates[p.rng.Intn(len(candidates))].CloneUpgrade())
	}
	return out
}

// Lookup returns a clone of the card with exactly this name, searching
// upgrades, then tokens, then spells. It returns nil if there is none.
func (p *CardPool) Lookup(name string) Card {
	if u := p.LookupUpgrade(name); u != nil {
		return u
	}
	for _, s := range p.spells {
		if s.Name == name {
			return s.Clone()
		}
	}
	return nil
}

// LookupUpgrade is Lookup restricted to upgrades and tokens.
func (p *CardPool) LookupUpgrade(name string) *Upgrade {
	for _, u := range p.upgrades {
		if u.Name == name {
			return u.CloneUpgrade()
		}
	}
	for _, u := range p.tokens {
		if u.Name == name {
			return u.CloneUpgrade()
		}
	}
	return nil
}
