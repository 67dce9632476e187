package game

// EffectTrigger names the moment an effect reacts to.
type EffectTrigger int

const (
	TriggerNone EffectTrigger = iota
	TriggerBattlecry
	TriggerOnPlay
	TriggerCombo
	TriggerOnBuyingUpgrade
	TriggerAftermathPlayer
	TriggerAftermathOpponent
	TriggerStartOfCombat
	TriggerWhenPlayer
	TriggerAfterYouCastASpell
)

func (t EffectTrigger) String() string {
	switch t {
	case TriggerNone:
		return "None"
	case TriggerBattlecry:
		return "Battlecry"
	case TriggerOnPlay:
		return "OnPlay"
	case TriggerCombo:
		return "Combo"
	case TriggerOnBuyingUpgrade:
		return "OnBuyingUpgrade"
	case TriggerAftermathPlayer:
		return "AftermathPlayer"
	case TriggerAftermathOpponent:
		return "AftermathOpponent"
	case TriggerStartOfCombat:
		return "StartOfCombat"
	case TriggerWhenPlayer:
		return "WhenPlayer"
	case TriggerAfterYouCastASpell:
		return "AfterYouCastASpell"
	default:
		return "Unknown"
	}
}

// DisplayScope controls who may see an effect's text.
type DisplayScope int

const (
	ScopeHidden DisplayScope = iota
	ScopePrivate
	ScopePublic
)

func (s DisplayScope) String() string {
	switch s {
	case ScopeHidden:
		return "Hidden"
	case ScopePrivate:
		return "Private"
	case ScopePublic:
		return "Public"
	default:
		return "Unknown"
	}
}

// Behavior is what an effect does when triggered.
type Behavior interface {
	Activate(ctx *Context) error
}

// BehaviorFunc adapts a function to Behavior. Functions must not capture
// mutable state: clones of the effect share the same function.
type BehaviorFunc func(ctx *Context) error

func (f BehaviorFunc) Activate(ctx *Context) error { return f(ctx) }

// ClonableBehavior is implemented by behaviors that carry mutable state and
// must be deep-copied when their effect is cloned.
type ClonableBehavior interface {
	Behavior
	CloneBehavior() Behavior
}

// Effect is a trigger-tagged behavior attached to a card or player.
type Effect struct {
	Triggers []EffectTrigger
	Text     string
	Scope    DisplayScope
	Expired  bool
	Behavior Behavior
}

// On builds a hidden effect for a single trigger.
func On(trigger EffectTrigger, fn BehaviorFunc) *Effect {
	e := &Effect{Triggers: []EffectTrigger{trigger}}
	if fn != nil {
		e.Behavior = fn
	}
	return e
}

// Shown sets the display text and scope and returns the effect.
func (e *Effect) Shown(text string, scope DisplayScope) *Effect {
	e.Text = text
	e.Scope = scope
	return e
}

// HasTrigger reports whether the effect reacts to trigger.
func (e *Effect) HasTrigger(trigger EffectTrigger) bool {
	for _, t := range e.Triggers {
		if t == trigger {
			return true
		}
	}
	return false
}

// Expire marks the effect for removal after the current activation pass.
func (e *Effect) Expire() {
	e.Expired = true
}

// Clone returns an independent copy of the effect.
func (e *Effect) Clone() *Effect {
	cp := *e
	cp.Triggers = append([]EffectTrigger(nil), e.Triggers...)
	if cb, ok := e.Behavior.(ClonableBehavior); ok {
		cp.Behavior = cb.CloneBehavior()
	}
	return &cp
}

func cloneEffects(effects []*Effect) []*Effect {
	if len(effects) == 0 {
		return nil
	}
	out := make([]*Effect, 0, len(effects))
	for _, e := range effects {
		out = append(out, e.Clone())
	}
	return out
}

// Context is passed to an effect when it activates.
type Context struct {
	Trigger EffectTrigger
	Game    *Game
	Player  *Player
	// Origin is the card whose effect is running, nil for player-level effects.
	Origin Card
	// Fight is set for StartOfCombat.
	Fight *FightOutput
}

// Opponent returns the current opponent of the context's player.
func (c *Context) Opponent() (*Player, bool) {
	if c.Game == nil || c.Player == nil {
		return nil, false
	}
	return c.Game.Opponent(c.Player)
}

// WriteMessage records a pre-combat message. It is a no-op outside a fight.
func (c *Context) WriteMessage(msg string) {
	if c.Fight != nil {
		c.Fight.AddMessage(BeforeCombat, msg)
	}
}
