// Package sets holds every card definition, grouped by set.
package sets

import (
	"fmt"
	"sort"

	"github.com/scrapscramble/scrapscramble-go/internal/game"
	"github.com/scrapscramble/scrapscramble-go/internal/game/creature"
	"github.com/scrapscramble/scrapscramble-go/internal/game/random"
)

const (
	EdgeOfScience = "Edge of Science"
	IronmoonFaire = "Ironmoon Faire"
	WarMachines   = "War Machines"
)

// Entry registers one card factory.
type Entry struct {
	Name string
	Set  string
	// Token cards are created by other cards and never offered in shops.
	Token bool
	New   func() *game.Upgrade
}

// Registry lists every card in every set.
var Registry = concat(edgeOfScience, ironmoonFaire, warMachines)

func concat(groups ...[]Entry) []Entry {
	var all []Entry
	for _, g := range groups {
		all = append(all, g...)
	}
	return all
}

// Names returns the known set names in alphabetical order.
func Names() []string {
	seen := make(map[string]struct{})
	var names []string
	for _, e := range Registry {
		if _, ok := seen[e.Set]; !ok {
			seen[e.Set] = struct{}{}
			names = append(names, e.Set)
		}
	}
	sort.Strings(names)
	return names
}

// InSet returns the entries of one set.
func InSet(set string) []Entry {
	var out []Entry
	for _, e := range Registry {
		if e.Set == set {
			out = append(out, e)
		}
	}
	return out
}

// Lookup finds an entry by card name.
func Lookup(name string) (Entry, bool) {
	for _, e := range Registry {
		if e.Name == name {
			return e, true
		}
	}
	return Entry{}, false
}

// NewPool builds a card pool from the named sets, or from every set when
// none are given.
func NewPool(rng random.Source, setNames ...string) (*game.CardPool, error) {
	return buildPool(rng, setNames, nil)
}

func buildPool(rng random.Source, setNames []string, exclude map[string]bool) (*game.CardPool, error) {
	if len(setNames) == 0 {
		setNames = Names()
	}
	pool := game.NewCardPool(rng)
	for _, set := range setNames {
		entries := InSet(set)
		if len(entries) == 0 {
			return nil, fmt.Errorf("unknown card set %q", set)
		}
		for _, e := range entries {
			if exclude[e.Name] {
				continue
			}
			if e.Token {
				pool.AddToken(e.New())
			} else {
				pool.AddUpgrade(e.New())
			}
		}
	}
	return pool, nil
}

func gain(k creature.Keyword, amount int) game.BehaviorFunc {
	return func(ctx *game.Context) error {
		ctx.Player.Creature.ChangeKeyword(k, amount)
		return nil
	}
}
