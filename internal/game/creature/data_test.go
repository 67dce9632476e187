package creature

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetKeywordPrunesNonPositive(t *testing.T) {
	d := New(1, 1)
	d.SetKeyword(Rush, 2)
	assert.Equal(t, []Keyword{Rush}, d.PresentKeywords())

	d.SetKeyword(Rush, 0)
	assert.Empty(t, d.PresentKeywords())
	assert.Equal(t, 0, d.Keyword(Rush))

	d.SetKeyword(Taunt, -3)
	assert.False(t, d.HasKeyword(Taunt))
	assert.Empty(t, d.PresentKeywords())
}

func TestChangeKeyword(t *testing.T) {
	d := New(0, 0)
	d.ChangeKeyword(Frozen, 1)
	assert.Equal(t, 1, d.Keyword(Frozen))

	d.ChangeKeyword(Frozen, -1)
	assert.NotContains(t, d.PresentKeywords(), Frozen)

	d.ChangeKeyword(Spikes, -4)
	assert.NotContains(t, d.PresentKeywords(), Spikes)
}

func TestAddMergesStatsAndKeywords(t *testing.T) {
	player := New(1, 1)
	player.SetKeyword(Rush, 1)

	upgrade := New(4, 5)
	upgrade.SetKeyword(Rush, 1)
	upgrade.SetKeyword(Overload, 3)

	player.Add(upgrade)

	assert.Equal(t, 5, player.Attack)
	assert.Equal(t, 6, player.Health)
	assert.Equal(t, 2, player.Keyword(Rush))
	assert.Equal(t, 3, player.Keyword(Overload))
	assert.Equal(t, []Keyword{Rush, Overload}, player.PresentKeywords())
}

func TestCloneIsIndependent(t *testing.T) {
	d := New(2, 3)
	d.SetKeyword(Shields, 4)

	cp := d.Clone()
	cp.Attack = 10
	cp.SetKeyword(Shields, 0)

	assert.Equal(t, 2, d.Attack)
	assert.Equal(t, 4, d.Keyword(Shields))
	assert.Equal(t, 0, cp.Keyword(Shields))
}

func TestKeywordSummary(t *testing.T) {
	d := New(0, 0)
	d.SetKeyword(Taunt, 2)
	d.SetKeyword(Rush, 1)
	assert.Equal(t, []string{"Rush: 1", "Taunt: 2"}, d.KeywordSummary())
}

func TestParseKeyword(t *testing.T) {
	k, ok := ParseKeyword("Tiebreaker")
	assert.True(t, ok)
	assert.Equal(t, Tiebreaker, k)

	_, ok = ParseKeyword("Flying")
	assert.False(t, ok)
}
