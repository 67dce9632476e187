package creature

import (
	"fmt"
	"sort"
)

// Data holds attack, health and keyword values. Keyword entries are always
// positive: setting or changing a keyword to zero or below removes it.
type Data struct {
	Attack   int
	Health   int
	keywords map[Keyword]int
}

// New creates creature data with the given stats and no keywords.
func New(attack, health int) *Data {
	return &Data{
		Attack:   attack,
		Health:   health,
		keywords: make(map[Keyword]int),
	}
}

// Keyword returns the value of a keyword, 0 if absent.
func (d *Data) Keyword(k Keyword) int {
	return d.keywords[k]
}

// HasKeyword reports whether the keyword holds a positive value.
func (d *Data) HasKeyword(k Keyword) bool {
	return d.keywords[k] > 0
}

// SetKeyword overwrites a keyword value. Non-positive values remove it.
func (d *Data) SetKeyword(k Keyword, value int) {
	if d.keywords == nil {
		d.keywords = make(map[Keyword]int)
	}
	if value <= 0 {
		delete(d.keywords, k)
		return
	}
	d.keywords[k] = value
}

// ChangeKeyword adds delta to a keyword value and prunes it at or below 0.
func (d *Data) ChangeKeyword(k Keyword, delta int) {
	d.SetKeyword(k, d.keywords[k]+delta)
}

// ClearKeyword removes a single keyword.
func (d *Data) ClearKeyword(k Keyword) {
	delete(d.keywords, k)
}

// ClearKeywords removes every keyword.
func (d *Data) ClearKeywords() {
	d.keywords = make(map[Keyword]int)
}

// PresentKeywords returns the keywords holding a positive value in display order.
func (d *Data) PresentKeywords() []Keyword {
	present := make([]Keyword, 0, len(d.keywords))
	for k := range d.keywords {
		present = append(present, k)
	}
	sort.Slice(present, func(i, j int) bool { return present[i] < present[j] })
	return present
}

// Add merges other into d: stats and keyword values are summed.
func (d *Data) Add(other *Data) {
	if other == nil {
		return
	}
	d.Attack += other.Attack
	d.Health += other.Health
	for k, v := range other.keywords {
		d.ChangeKeyword(k, v)
	}
}

// Clone returns an independent copy.
func (d *Data) Clone() *Data {
	cp := New(d.Attack, d.Health)
	for k, v := range d.keywords {
		cp.keywords[k] = v
	}
	return cp
}

// KeywordSummary renders present keywords as "Name: value" strings.
func (d *Data) KeywordSummary() []string {
	present := d.PresentKeywords()
	out := make([]string, 0, len(present))
	for _, k := range present {
		out = append(out, fmt.Sprintf("%s: %d", k, d.keywords[k]))
	}
	return out
}

func (d *Data) String() string {
	return fmt.Sprintf("%d/%d", d.Attack, d.Health)
}
