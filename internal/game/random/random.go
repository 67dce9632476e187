// Package random provides the injectable random source used for card draws,
// pairing shuffles and combat coinflips.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"
)

// Source is the subset of *rand.Rand the game depends on. Tests substitute
// fakes to force coinflips or shuffle orders.
type Source interface {
	Intn(n int) int
	Shuffle(n int, swap func(i, j int))
}

// New returns a deterministic source seeded with seed.
func New(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// NewSeed returns a cryptographically random seed.
func NewSeed() (int64, error) {
	var buf [8]byte
	if _, err := crand.Read(buf[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return int64(binary.LittleEndian.Uint64(buf[:])), nil
}

// Fixed is a Source that always returns the same Intn result and leaves
// shuffled slices untouched. Results are clamped into [0, n).
type Fixed struct {
	Value int
}

func (f Fixed) Intn(n int) int {
	if f.Value >= n {
		return n - 1
	}
	if f.Value < 0 {
		return 0
	}
	return f.Value
}

func (Fixed) Shuffle(int, func(i, j int)) {}
