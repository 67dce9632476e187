// Package mana tracks a player's mana economy across rounds.
package mana

// Pool represents a player's mana: what is left this round, the per-round
// maximum, the ceiling the maximum can grow to, and how much of this round's
// mana was locked by Overload.
type Pool struct {
	Current    int
	Maximum    int
	Cap        int
	Overloaded int
}

// NewPool creates a full pool.
func NewPool(maximum, cap int) *Pool {
	return &Pool{
		Current: maximum,
		Maximum: maximum,
		Cap:     cap,
	}
}

// CanAfford reports whether amount can be paid from current mana.
func (p *Pool) CanAfford(amount int) bool {
	return amount <= p.Current
}

// Spend attempts to pay amount.
// Returns true if successful, false if insufficient mana.
func (p *Pool) Spend(amount int) bool {
	if amount <= 0 {
		return true
	}
	if amount > p.Current {
		return false
	}
	p.Current -= amount
	return true
}

// Refill raises the maximum by increase, never past the cap, then resets
// current mana to the new maximum.
func (p *Pool) Refill(increase int) {
	p.Maximum += increase
	if p.Maximum > p.Cap {
		p.Maximum = p.Cap
	}
	p.Current = p.Maximum
}

// ApplyOverload locks amount of the current round's mana. Current mana
// never drops below 0; Overloaded keeps the full amount.
func (p *Pool) ApplyOverload(amount int) {
	if amount < 0 {
		amount = 0
	}
	p.Overloaded = amount
	p.Current -= amount
	if p.Current < 0 {
		p.Current = 0
	}
}

// RaiseMaximum grows both the maximum and the cap. Used by effects that
// permanently expand a player's mana.
func (p *Pool) RaiseMaximum(amount int) {
	p.Maximum += amount
	p.Cap += amount
}
