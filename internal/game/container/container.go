// Package container implements positional card slots shared by shops and hands.
package container

import (
	"fmt"

	"github.com/scrapscramble/scrapscramble-go/internal/game/random"
)

// Container is an ordered list of slots. A slot holding the zero value of T
// is empty. Interior gaps keep their positions; trailing empty slots are
// always compacted away.
type Container[T comparable] struct {
	slots []T
}

// New returns an empty container.
func New[T comparable]() *Container[T] {
	return &Container[T]{}
}

// Size returns the number of slots, empty ones included.
func (c *Container[T]) Size() int {
	return len(c.slots)
}

// Count returns the number of occupied slots.
func (c *Container[T]) Count() int {
	var zero T
	n := 0
	for _, card := range c.slots {
		if card != zero {
			n++
		}
	}
	return n
}

// IsEmpty reports whether no slot is occupied.
func (c *Container[T]) IsEmpty() bool {
	return c.Count() == 0
}

// Add appends card after the last slot. Adding an empty card panics.
func (c *Container[T]) Add(card T) {
	var zero T
	if card == zero {
		panic("container: cannot add an empty card")
	}
	c.slots = append(c.slots, card)
}

// AddAll appends each card in order.
func (c *Container[T]) AddAll(cards []T) {
	for _, card := range cards {
		c.Add(card)
	}
}

// RemoveAt empties the slot at index and returns what it held.
func (c *Container[T]) RemoveAt(index int) T {
	c.checkIndex(index)
	var zero T
	card := c.slots[index]
	c.slots[index] = zero
	c.compact()
	return card
}

// Remove empties the first slot holding card. It reports whether one was found.
func (c *Container[T]) Remove(card T) bool {
	var zero T
	if card == zero {
		return false
	}
	for i, held := range c.slots {
		if held == card {
			c.slots[i] = zero
			c.compact()
			return true
		}
	}
	return false
}

// Get returns the card at index, or the zero value for an empty slot.
func (c *Container[T]) Get(index int) T {
	c.checkIndex(index)
	return c.slots[index]
}

// Set overwrites the slot at index. Setting the zero value clears the slot.
func (c *Container[T]) Set(index int, card T) {
	c.checkIndex(index)
	c.slots[index] = card
	var zero T
	if card == zero {
		c.compact()
	}
}

// IndexOf returns the position of card, or -1. Looking up an empty card panics.
func (c *Container[T]) IndexOf(card T) int {
	var zero T
	if card == zero {
		panic("container: cannot look up an empty card")
	}
	for i, held := range c.slots {
		if held == card {
			return i
		}
	}
	return -1
}

// RandomCard picks uniformly among occupied slots. ok is false when there are none.
func (c *Container[T]) RandomCard(rng random.Source) (card T, ok bool) {
	cards := c.Cards()
	if len(cards) == 0 {
		return card, false
	}
	return cards[rng.Intn(len(cards))], true
}

// Cards returns the occupied slots in order.
func (c *Container[T]) Cards() []T {
	var zero T
	cards := make([]T, 0, len(c.slots))
	for _, card := range c.slots {
		if card != zero {
			cards = append(cards, card)
		}
	}
	return cards
}

// Slots returns a copy of every slot, empty ones included.
func (c *Container[T]) Slots() []T {
	return append([]T(nil), c.slots...)
}

// Clear drops every slot.
func (c *Container[T]) Clear() {
	c.slots = nil
}

func (c *Container[T]) checkIndex(index int) {
	if index < 0 || index >= len(c.slots) {
		panic(fmt.Sprintf("container: index %d out of range [0, %d)", index, len(c.slots)))
	}
}

func (c *Container[T]) compact() {
	var zero T
	n := len(c.slots)
	for n > 0 && c.slots[n-1] == zero {
		n--
	}
	c.slots = c.slots[:n]
}
