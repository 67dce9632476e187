package game

// CardUseFeedback is the outcome of buying or playing a card.
type CardUseFeedback int

const (
	Successful CardUseFeedback = iota
	NotEnoughMana
	EmptyPosition
	FrozenUpgrade
)

func (f CardUseFeedback) String() string {
	switch f {
	case Successful:
		return "Successful"
	case NotEnoughMana:
		return "NotEnoughMana"
	case EmptyPosition:
		return "EmptyPosition"
	case FrozenUpgrade:
		return "FrozenUpgrade"
	default:
		return "Unknown"
	}
}
