package game

import (
	"fmt"

	"go.uber.org/zap"
)

// EffectCaller dispatches triggers to effect lists. A failing effect is
// logged and skipped; the remaining effects still run.
type EffectCaller struct {
	logger *zap.Logger
}

// NewEffectCaller creates a caller. A nil logger discards output.
func NewEffectCaller(logger *zap.Logger) *EffectCaller {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EffectCaller{logger: logger}
}

// Activate runs every effect in *effects that matches ctx.Trigger, in list
// order, then drops the effects that expired.
func (c *EffectCaller) Activate(effects *[]*Effect, ctx *Context) {
	c.activate(effects, ctx, false)
}

// ActivateOnce removes the matching effects from *effects before running
// them, so they fire at most once.
func (c *EffectCaller) ActivateOnce(effects *[]*Effect, ctx *Context) {
	c.activate(effects, ctx, true)
}

func (c *EffectCaller) activate(effects *[]*Effect, ctx *Context, removeAfter bool) {
	if effects == nil || len(*effects) == 0 {
		return
	}

	var matched []*Effect
	for _, e := range *effects {
		if e.HasTrigger(ctx.Trigger) {
			matched = append(matched, e)
		}
	}
	if len(matched) == 0 {
		return
	}

	if removeAfter {
		kept := make([]*Effect, 0, len(*effects)-len(matched))
		for _, e := range *effects {
			if !e.HasTrigger(ctx.Trigger) {
				kept = append(kept, e)
			}
		}
		*effects = kept
	}

	for _, e := range matched {
		if err := c.invoke(e, ctx); err != nil {
			c.logger.Error("effect activation failed",
				zap.String("trigger", ctx.Trigger.String()),
				zap.String("player", playerName(ctx.Player)),
				zap.String("origin", originName(ctx.Origin)),
				zap.Error(err),
			)
		}
	}

	if !removeAfter {
		kept := (*effects)[:0]
		for _, e := range *effects {
			if !e.Expired {
				kept = append(kept, e)
			}
		}
		*effects = kept
	}
}

func (c *EffectCaller) invoke(e *Effect, ctx *Context) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("effect panicked: %v", r)
		}
	}()
	if e.Behavior == nil {
		return nil
	}
	return e.Behavior.Activate(ctx)
}

func playerName(p *Player) string {
	if p == nil {
		return ""
	}
	return p.Name
}

func originName(card Card) string {
	if card == nil {
		return ""
	}
	return card.Info().Name
}
