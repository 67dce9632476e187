package random

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIsDeterministic(t *testing.T) {
	a := New(42)
	b := New(42)
	for i := 0; i < 10; i++ {
		assert.Equal(t, a.Intn(100), b.Intn(100))
	}
}

func TestNewSeed(t *testing.T) {
	_, err := NewSeed()
	require.NoError(t, err)
}

func TestFixed(t *testing.T) {
	f := Fixed{Value: 1}
	assert.Equal(t, 1, f.Intn(2))
	assert.Equal(t, 0, f.Intn(1))

	items := []int{1, 2, 3}
	f.Shuffle(len(items), func(i, j int) { items[i], items[j] = items[j], items[i] })
	assert.Equal(t, []int{1, 2, 3}, items)
}
