package game

import (
	"go.uber.org/zap"

	"github.com/scrapscramble/scrapscramble-go/internal/game/container"
	"github.com/scrapscramble/scrapscramble-go/internal/game/creature"
)

// Shop holds the upgrades a player can buy this round.
type Shop struct {
	container.Container[*Upgrade]
}

// NewShop returns an empty shop.
func NewShop() *Shop {
	return &Shop{}
}

// Refresh restocks the shop. Frozen upgrades are kept and count against
// their rarity's quantity; with decreaseFreeze their Frozen value drops by one.
func (s *Shop) Refresh(g *Game, p *Player, decreaseFreeze bool) {
	var frozen []*Upgrade
	for _, u := range s.Cards() {
		if u.Creature.HasKeyword(creature.Frozen) {
			frozen = append(frozen, u)
		}
	}
	if decreaseFreeze {
		for _, u := range frozen {
			u.Creature.ChangeKeyword(creature.Frozen, -1)
		}
	}

	s.Clear()

	maxCost := p.Mana.Maximum - ShopCostMargin
	for _, rarity := range ShopRarities {
		quantity := g.settings.Quantity(rarity)
		for _, u := range frozen {
			if u.Rarity == rarity {
				quantity--
			}
		}
		for i := 0; i < quantity; i++ {
			r := rarity
			u := p.Pool.RandomUpgrade(func(c *Upgrade) bool {
				return c.Rarity == r && c.Cost <= maxCost
			})
			if u == nil {
				break
			}
			s.Add(u)
		}
	}

	s.AddAll(frozen)

	g.logger.Debug("shop refreshed",
		zap.String("game_id", g.ID.String()),
		zap.String("player", p.Name),
		zap.Int("offers", s.Count()),
		zap.Int("frozen", len(frozen)),
	)
}

// Buy purchases the upgrade at index. An out-of-range index panics.
func (s *Shop) Buy(index int, g *Game, p *Player) CardUseFeedback {
	u := s.Get(index)
	if u == nil {
		return EmptyPosition
	}
	if !p.Mana.CanAfford(u.Cost) {
		return NotEnoughMana
	}
	if u.Creature.HasKeyword(creature.Frozen) {
		return FrozenUpgrade
	}

	s.Remove(u)
	p.Mana.Spend(u.Cost)

	g.caller.Activate(&p.Effects, &Context{
		Trigger: TriggerOnBuyingUpgrade,
		Game:    g,
		Player:  p,
	})

	p.AttachUpgrade(g, u)
	p.Bought.Append(u)
	p.Played.Append(u)

	g.logger.Debug("upgrade bought",
		zap.String("game_id", g.ID.String()),
		zap.String("player", p.Name),
		zap.String("upgrade", u.Name),
		zap.Int("cost", u.Cost),
		zap.Int("mana_left", p.Mana.Current),
	)
	return Successful
}
