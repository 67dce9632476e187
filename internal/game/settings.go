package game

const (
	// ManaPerRound is how much a player's maximum mana grows each round.
	ManaPerRound = 5
	// ShopCostMargin keeps shop offers this far below the player's maximum mana.
	ShopCostMargin = 5
	// MaxAttacks ends a fight in which neither side can finish the other.
	MaxAttacks = 200
)

// Settings are the per-game tunables.
type Settings struct {
	ShopQuantity  map[Rarity]int
	StartingLives int
	StartingMana  int
	MaximumMana   int
}

// DefaultSettings returns the standard configuration.
func DefaultSettings() Settings {
	return Settings{
		ShopQuantity: map[Rarity]int{
			RarityCommon:    4,
			RarityRare:      3,
			RarityEpic:      2,
			RarityLegendary: 1,
		},
		StartingLives: 3,
		StartingMana:  10,
		MaximumMana:   30,
	}
}

// Quantity returns how many upgrades of a rarity a shop offers.
func (s Settings) Quantity(r Rarity) int {
	q := s.ShopQuantity[r]
	if q < 0 {
		return 0
	}
	return q
}

// SetQuantity overrides a rarity's shop quantity, never below 0.
func (s *Settings) SetQuantity(r Rarity, quantity int) {
	if quantity < 0 {
		quantity = 0
	}
	if s.ShopQuantity == nil {
		s.ShopQuantity = make(map[Rarity]int)
	}
	s.ShopQuantity[r] = quantity
}

// Clone returns a copy with its own quantity map.
func (s Settings) Clone() Settings {
	cp := s
	cp.ShopQuantity = make(map[Rarity]int, len(s.ShopQuantity))
	for r, q := range s.ShopQuantity {
		cp.ShopQuantity[r] = q
	}
	return cp
}
