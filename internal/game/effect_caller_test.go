package game

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zaptest"
)

func TestEffectCallerRunsMatchingEffectsInOrder(t *testing.T) {
	caller := NewEffectCaller(zaptest.NewLogger(t))
	var order []string
	record := func(name string) BehaviorFunc {
		return func(*Context) error {
			order = append(order, name)
			return nil
		}
	}
	effects := []*Effect{
		On(TriggerBattlecry, record("first")),
		On(TriggerAftermathPlayer, record("aftermath")),
		On(TriggerBattlecry, record("second")),
	}

	caller.Activate(&effects, &Context{Trigger: TriggerBattlecry})

	assert.Equal(t, []string{"first", "second"}, order)
	assert.Len(t, effects, 3)
}

func TestEffectCallerIsolatesFailures(t *testing.T) {
	caller := NewEffectCaller(zaptest.NewLogger(t))
	ran := 0
	effects := []*Effect{
		On(TriggerBattlecry, func(*Context) error { return errors.New("boom") }),
		On(TriggerBattlecry, func(*Context) error { panic("kaboom") }),
		On(TriggerBattlecry, func(*Context) error {
			ran++
			return nil
		}),
		{Triggers: []EffectTrigger{TriggerBattlecry}},
	}

	assert.NotPanics(t, func() {
		caller.Activate(&effects, &Context{Trigger: TriggerBattlecry})
	})
	assert.Equal(t, 1, ran)
	assert.Len(t, effects, 4)
}

func TestEffectCallerPrunesExpired(t *testing.T) {
	caller := NewEffectCaller(nil)
	effects := []*Effect{
		On(TriggerStartOfCombat, func(ctx *Context) error { return nil }),
	}
	expiring := &Effect{Triggers: []EffectTrigger{TriggerStartOfCombat}}
	expiring.Behavior = BehaviorFunc(func(*Context) error {
		expiring.Expire()
		return nil
	})
	effects = append(effects, expiring)

	caller.Activate(&effects, &Context{Trigger: TriggerStartOfCombat})
	assert.Len(t, effects, 1)
	assert.NotSame(t, expiring, effects[0])
}

func TestEffectCallerActivateOnceRemovesBeforeRunning(t *testing.T) {
	caller := NewEffectCaller(nil)
	var effects []*Effect
	runs := 0
	var reAdd *Effect
	reAdd = On(TriggerAftermathPlayer, func(*Context) error {
		runs++
		effects = append(effects, reAdd)
		return nil
	})
	other := On(TriggerBattlecry, nil)
	effects = []*Effect{reAdd, other}

	caller.ActivateOnce(&effects, &Context{Trigger: TriggerAftermathPlayer})

	assert.Equal(t, 1, runs)
	assert.Equal(t, []*Effect{other, reAdd}, effects)
}

func TestEffectCloneIsIndependent(t *testing.T) {
	e := On(TriggerBattlecry, nil).Shown("Gain armor.", ScopePublic)
	e.Triggers = append(e.Triggers, TriggerCombo)

	cp := e.Clone()
	cp.Triggers[0] = TriggerOnPlay
	cp.Expire()

	assert.Equal(t, TriggerBattlecry, e.Triggers[0])
	assert.False(t, e.Expired)
	assert.True(t, cp.HasTrigger(TriggerCombo))
	assert.Equal(t, "Gain armor.", cp.Text)
	assert.Equal(t, ScopePublic, cp.Scope)
}

type stackCounter struct{ stacks int }

func (s *stackCounter) Activate(*Context) error {
	s.stacks++
	return nil
}

func (s *stackCounter) CloneBehavior() Behavior {
	cp := *s
	return &cp
}

func TestEffectCloneCopiesStatefulBehavior(t *testing.T) {
	state := &stackCounter{}
	e := &Effect{Triggers: []EffectTrigger{TriggerBattlecry}, Behavior: state}
	cp := e.Clone()

	effects := []*Effect{cp}
	NewEffectCaller(nil).Activate(&effects, &Context{Trigger: TriggerBattlecry})

	assert.Equal(t, 0, state.stacks)
	assert.Equal(t, 1, cp.Behavior.(*stackCounter).stacks)
}
