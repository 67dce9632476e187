// Package history records cards in per-round layers.
package history

// History is an append-only list of layers. It always holds at least one layer.
type History[T comparable] struct {
	layers [][]T
}

// New returns a history with a single empty layer.
func New[T comparable]() *History[T] {
	return &History[T]{layers: [][]T{{}}}
}

// Append records card in the current layer. Appending the zero value panics.
func (h *History[T]) Append(card T) {
	var zero T
	if card == zero {
		panic("history: cannot append an empty card")
	}
	last := len(h.layers) - 1
	h.layers[last] = append(h.layers[last], card)
}

// NewLayer opens a fresh layer.
func (h *History[T]) NewLayer() {
	h.layers = append(h.layers, []T{})
}

// Layers returns the number of layers.
func (h *History[T]) Layers() int {
	return len(h.layers)
}

// Layer returns a copy of layer i.
func (h *History[T]) Layer(i int) []T {
	return append([]T{}, h.layers[i]...)
}

// LastLayer returns a copy of the current layer in insertion order.
func (h *History[T]) LastLayer() []T {
	return h.Layer(len(h.layers) - 1)
}

// All concatenates every layer chronologically.
func (h *History[T]) All() []T {
	var all []T
	for _, layer := range h.layers {
		all = append(all, layer...)
	}
	return all
}

// Len returns the number of recorded cards across all layers.
func (h *History[T]) Len() int {
	n := 0
	for _, layer := range h.layers {
		n += len(layer)
	}
	return n
}

// CountLastLayer counts cards in the current layer matching pred.
func (h *History[T]) CountLastLayer(pred func(T) bool) int {
	return count(h.layers[len(h.layers)-1], pred)
}

// CountAll counts cards across all layers matching pred.
func (h *History[T]) CountAll(pred func(T) bool) int {
	n := 0
	for _, layer := range h.layers {
		n += count(layer, pred)
	}
	return n
}

func count[T any](cards []T, pred func(T) bool) int {
	n := 0
	for _, card := range cards {
		if pred(card) {
			n++
		}
	}
	return n
}
