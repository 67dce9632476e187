package game

import (
	"fmt"

	"github.com/scrapscramble/scrapscramble-go/internal/game/creature"
)

// Rarity controls how many copies of a card a shop offers.
type Rarity int

const (
	RarityNone Rarity = iota
	RarityCommon
	RarityRare
	RarityEpic
	RarityLegendary
)

// ShopRarities is the order in which a shop is stocked.
var ShopRarities = []Rarity{RarityLegendary, RarityEpic, RarityRare, RarityCommon}

func (r Rarity) String() string {
	switch r {
	case RarityNone:
		return "None"
	case RarityCommon:
		return "Common"
	case RarityRare:
		return "Rare"
	case RarityEpic:
		return "Epic"
	case RarityLegendary:
		return "Legendary"
	default:
		return "Unknown"
	}
}

// ParseRarity resolves a rarity from its display name.
func ParseRarity(name string) (Rarity, bool) {
	for r := RarityNone; r <= RarityLegendary; r++ {
		if r.String() == name {
			return r, true
		}
	}
	return RarityNone, false
}

// CardInfo holds the fields shared by every card variant.
type CardInfo struct {
	Name    string
	Cost    int
	Text    string
	Rarity  Rarity
	Effects []*Effect
}

// SetCost changes the cost, never below 0.
func (c *CardInfo) SetCost(cost int) {
	if cost < 0 {
		cost = 0
	}
	c.Cost = cost
}

func (c *CardInfo) cloneInfo() CardInfo {
	cp := *c
	cp.Effects = cloneEffects(c.Effects)
	return cp
}

// Card is anything that can sit in a hand.
type Card interface {
	Info() *CardInfo
	Clone() Card
	UIString() string
}

// Upgrade is a card whose stats and keywords are merged into the player
// that attaches it.
type Upgrade struct {
	CardInfo
	Creature *creature.Data
}

func (u *Upgrade) Info() *CardInfo { return &u.CardInfo }

// Clone returns a deep copy with independent stats and effects.
func (u *Upgrade) Clone() Card {
	return u.CloneUpgrade()
}

// CloneUpgrade is Clone without the interface conversion.
func (u *Upgrade) CloneUpgrade() *Upgrade {
	return &Upgrade{
		CardInfo: u.cloneInfo(),
		Creature: u.Creature.Clone(),
	}
}

// Keyword is shorthand for the upgrade's keyword value.
func (u *Upgrade) Keyword(k creature.Keyword) int {
	return u.Creature.Keyword(k)
}

func (u *Upgrade) UIString() string {
	return fmt.Sprintf("%s - %d/%d/%d - %s - %s",
		u.Name, u.Cost, u.Creature.Attack, u.Creature.Health, u.Rarity, u.Text)
}

func (u *Upgrade) String() string {
	return u.Name
}

// Spell is a card that is cast for its effects instead of being attached.
type Spell struct {
	CardInfo
}

func (s *Spell) Info() *CardInfo { return &s.CardInfo }

func (s *Spell) Clone() Card {
	return &Spell{CardInfo: s.cloneInfo()}
}

func (s *Spell) UIString() string {
	return fmt.Sprintf("%s - %d - %s - %s", s.Name, s.Cost, s.Rarity, s.Text)
}

func (s *Spell) String() string {
	return s.Name
}

// UpgradeSpec describes an upgrade. Build can be called any number of times
// and every call returns an independent upgrade.
type UpgradeSpec struct {
	Name     string
	Cost     int
	Attack   int
	Health   int
	Rarity   Rarity
	Text     string
	Keywords map[creature.Keyword]int
	Effects  []*Effect
}

// Build creates a new upgrade. Negative keyword values panic.
func (s UpgradeSpec) Build() *Upgrade {
	data := creature.New(s.Attack, s.Health)
	for k, v := range s.Keywords {
		if v < 0 {
			panic(fmt.Sprintf("upgrade %q: keyword %s cannot be negative", s.Name, k))
		}
		data.SetKeyword(k, v)
	}
	u := &Upgrade{
		CardInfo: CardInfo{
			Name:    s.Name,
			Text:    s.Text,
			Rarity:  s.Rarity,
			Effects: cloneEffects(s.Effects),
		},
		Creature: data,
	}
	u.SetCost(s.Cost)
	return u
}

// SpellSpec describes a spell.
type SpellSpec struct {
	Name    string
	Cost    int
	Rarity  Rarity
	Text    string
	Effects []*Effect
}

// Build creates a new spell.
func (s SpellSpec) Build() *Spell {
	sp := &Spell{CardInfo: CardInfo{
		Name:    s.Name,
		Text:    s.Text,
		Rarity:  s.Rarity,
		Effects: cloneEffects(s.Effects),
	}}
	sp.SetCost(s.Cost)
	return sp
}
