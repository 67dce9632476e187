package container

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scrapscramble/scrapscramble-go/internal/game/random"
)

type card struct{ name string }

func filled(names ...string) (*Container[*card], []*card) {
	c := New[*card]()
	cards := make([]*card, 0, len(names))
	for _, n := range names {
		cd := &card{name: n}
		cards = append(cards, cd)
		c.Add(cd)
	}
	return c, cards
}

func TestAddAndCount(t *testing.T) {
	c, _ := filled("a", "b", "c")
	assert.Equal(t, 3, c.Size())
	assert.Equal(t, 3, c.Count())
	assert.False(t, c.IsEmpty())
}

func TestAddEmptyPanics(t *testing.T) {
	c := New[*card]()
	assert.Panics(t, func() { c.Add(nil) })
}

func TestRemoveAtKeepsInteriorGaps(t *testing.T) {
	c, cards := filled("a", "b", "c")

	removed := c.RemoveAt(1)
	assert.Same(t, cards[1], removed)
	assert.Equal(t, 3, c.Size())
	assert.Equal(t, 2, c.Count())
	assert.Nil(t, c.Get(1))

	// Appending never fills the interior gap.
	extra := &card{name: "d"}
	c.Add(extra)
	assert.Equal(t, 3, c.IndexOf(extra))
	assert.Nil(t, c.Get(1))
}

func TestRemoveAtCompactsTrailingSlots(t *testing.T) {
	c, _ := filled("a", "b", "c")
	c.RemoveAt(1)
	c.RemoveAt(2)
	assert.Equal(t, 1, c.Size())

	assert.Equal(t, "a", c.RemoveAt(0).name)
	assert.Equal(t, 0, c.Size())
}

func TestRemoveAtOutOfRangePanics(t *testing.T) {
	c, _ := filled("a")
	assert.Panics(t, func() { c.RemoveAt(1) })
	assert.Panics(t, func() { c.RemoveAt(-1) })
	assert.Panics(t, func() { c.Get(5) })
}

func TestRemoveInstance(t *testing.T) {
	c, cards := filled("a", "b")
	assert.True(t, c.Remove(cards[1]))
	assert.Equal(t, 1, c.Size())
	assert.False(t, c.Remove(cards[1]))
	assert.False(t, c.Remove(nil))
}

func TestSetNilCompacts(t *testing.T) {
	c, _ := filled("a", "b")
	c.Set(1, nil)
	assert.Equal(t, 1, c.Size())

	replacement := &card{name: "z"}
	c.Set(0, replacement)
	assert.Same(t, replacement, c.Get(0))
}

func TestIndexOf(t *testing.T) {
	c, cards := filled("a", "b")
	assert.Equal(t, 1, c.IndexOf(cards[1]))
	assert.Equal(t, -1, c.IndexOf(&card{name: "a"}))
	assert.Panics(t, func() { c.IndexOf(nil) })
}

func TestRandomCardOnlyPicksOccupiedSlots(t *testing.T) {
	c, cards := filled("a", "b", "c")
	c.RemoveAt(0)

	rng := random.New(7)
	for i := 0; i < 50; i++ {
		got, ok := c.RandomCard(rng)
		require.True(t, ok)
		assert.NotSame(t, cards[0], got)
		assert.NotNil(t, got)
	}

	empty := New[*card]()
	_, ok := empty.RandomCard(rng)
	assert.False(t, ok)
}

func TestCardsAndClear(t *testing.T) {
	c, cards := filled("a", "b", "c")
	c.RemoveAt(1)
	assert.Equal(t, []*card{cards[0], cards[2]}, c.Cards())
	assert.Len(t, c.Slots(), 3)

	c.Clear()
	assert.Equal(t, 0, c.Size())
	assert.Empty(t, c.Cards())
}
