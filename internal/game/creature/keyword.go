package creature

// Keyword is a status keyword carried by a creature or an upgrade.
type Keyword int

const (
	Rush Keyword = iota
	Taunt
	Tiebreaker
	Binary
	Spikes
	Shields
	Overload
	Echo
	Frozen
	Magnetic
	Poisonous
)

// AllKeywords lists every keyword in display order.
var AllKeywords = []Keyword{
	Rush, Taunt, Tiebreaker, Binary, Spikes, Shields,
	Overload, Echo, Frozen, Magnetic, Poisonous,
}

// TransientKeywords only matter while an upgrade is in a shop or hand and
// are dropped once the upgrade's stats are merged into a player.
var TransientKeywords = []Keyword{Binary, Magnetic, Echo, Frozen}

func (k Keyword) String() string {
	switch k {
	case Rush:
		return "Rush"
	case Taunt:
		return "Taunt"
	case Tiebreaker:
		return "Tiebreaker"
	case Binary:
		return "Binary"
	case Spikes:
		return "Spikes"
	case Shields:
		return "Shields"
	case Overload:
		return "Overload"
	case Echo:
		return "Echo"
	case Frozen:
		return "Frozen"
	case Magnetic:
		return "Magnetic"
	case Poisonous:
		return "Poisonous"
	default:
		return "Unknown"
	}
}

// ParseKeyword resolves a keyword from its display name.
func ParseKeyword(name string) (Keyword, bool) {
	for _, k := range AllKeywords {
		if k.String() == name {
			return k, true
		}
	}
	return 0, false
}
