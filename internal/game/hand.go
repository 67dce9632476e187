package game

import (
	"go.uber.org/zap"

	"github.com/scrapscramble/scrapscramble-go/internal/game/container"
)

// Hand holds cards a player owns but has not played yet.
type Hand struct {
	container.Container[Card]
}

// NewHand returns an empty hand.
func NewHand() *Hand {
	return &Hand{}
}

// Play plays the card at index. An out-of-range index panics.
func (h *Hand) Play(index int, g *Game, p *Player) CardUseFeedback {
	card := h.Get(index)
	if card == nil {
		return EmptyPosition
	}
	info := card.Info()
	if !p.Mana.CanAfford(info.Cost) {
		return NotEnoughMana
	}

	h.Remove(card)
	p.Mana.Spend(info.Cost)

	switch c := card.(type) {
	case *Upgrade:
		p.AttachUpgrade(g, c)
	case *Spell:
		p.CastSpell(g, c)
	}
	p.Played.Append(card)

	g.logger.Debug("card played",
		zap.String("game_id", g.ID.String()),
		zap.String("player", p.Name),
		zap.String("card", info.Name),
		zap.Int("mana_left", p.Mana.Current),
	)
	return Successful
}
