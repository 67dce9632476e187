// Package pairing assigns opponents each round.
package pairing

import "github.com/scrapscramble/scrapscramble-go/internal/game/random"

// RetryBudget is how many shuffles are tried before accepting an
// unvalidated one.
const RetryBudget = 8

// Contestant is anything that can be paired. Contestants with no lives left
// drop out of pairing permanently.
type Contestant interface {
	comparable
	Lives() int
}

// PairMaker maps each live contestant to an opponent. A contestant mapped to
// itself has a bye.
type PairMaker[P Contestant] struct {
	players   []P
	opponents map[P]P
	rng       random.Source

	lastBye   P
	hasBye    bool
	fellBack  bool
	attempted int
}

// New creates a pair maker in which every contestant starts on a bye.
func New[P Contestant](players []P, rng random.Source) *PairMaker[P] {
	pm := &PairMaker[P]{
		players:   append([]P(nil), players...),
		opponents: make(map[P]P, len(players)),
		rng:       rng,
	}
	for _, p := range pm.players {
		pm.opponents[p] = p
	}
	return pm
}

// Opponent returns p's opponent, p itself on a bye, or false if p is not tracked.
func (pm *PairMaker[P]) Opponent(p P) (P, bool) {
	opp, ok := pm.opponents[p]
	return opp, ok
}

// HasBye reports whether p sits out the current round.
func (pm *PairMaker[P]) HasBye(p P) bool {
	opp, ok := pm.opponents[p]
	return ok && opp == p
}

// Players returns the live contestants in their current order.
func (pm *PairMaker[P]) Players() []P {
	return append([]P(nil), pm.players...)
}

// FellBack reports whether the latest Generate ran out of retries and kept
// the last shuffle without validating it.
func (pm *PairMaker[P]) FellBack() bool {
	return pm.fellBack
}

// Attempts returns how many shuffles the latest Generate used.
func (pm *PairMaker[P]) Attempts() int {
	return pm.attempted
}

// Generate computes the next round's pairings.
func (pm *PairMaker[P]) Generate() {
	pm.removeEliminated()
	pm.fellBack = false
	pm.attempted = 0

	switch len(pm.players) {
	case 0:
		return
	case 1:
		only := pm.players[0]
		pm.opponents = map[P]P{only: only}
		pm.recordBye()
		return
	case 2:
		a, b := pm.players[0], pm.players[1]
		pm.opponents = map[P]P{a: b, b: a}
		pm.recordBye()
		return
	}

	accepted := false
	for attempt := 1; attempt <= RetryBudget; attempt++ {
		pm.attempted = attempt
		pm.rng.Shuffle(len(pm.players), func(i, j int) {
			pm.players[i], pm.players[j] = pm.players[j], pm.players[i]
		})
		if pm.valid() {
			accepted = true
			break
		}
	}
	if !accepted {
		pm.fellBack = true
	}

	pm.opponents = pm.pairFromOrder()
	pm.recordBye()
}

// valid checks the current order against the previous round: the bye must
// move to someone else and no pair may repeat.
func (pm *PairMaker[P]) valid() bool {
	odd := len(pm.players) % 2
	if odd == 1 && pm.hasBye && pm.players[0] == pm.lastBye {
		return false
	}
	for i := odd; i+1 < len(pm.players); i += 2 {
		if prev, ok := pm.opponents[pm.players[i]]; ok && prev == pm.players[i+1] {
			return false
		}
	}
	return true
}

func (pm *PairMaker[P]) pairFromOrder() map[P]P {
	next := make(map[P]P, len(pm.players))
	odd := len(pm.players) % 2
	if odd == 1 {
		next[pm.players[0]] = pm.players[0]
	}
	for i := odd; i+1 < len(pm.players); i += 2 {
		a, b := pm.players[i], pm.players[i+1]
		next[a] = b
		next[b] = a
	}
	return next
}

func (pm *PairMaker[P]) recordBye() {
	var zero P
	pm.lastBye, pm.hasBye = zero, false
	for _, p := range pm.players {
		if pm.opponents[p] == p {
			pm.lastBye, pm.hasBye = p, true
			return
		}
	}
}

func (pm *PairMaker[P]) removeEliminated() {
	live := pm.players[:0]
	for _, p := range pm.players {
		if p.Lives() > 0 {
			live = append(live, p)
		}
	}
	pm.players = live
}
