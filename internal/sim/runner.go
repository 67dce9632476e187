// Package sim plays whole games with bot strategies.
package sim

import (
	"context"

	"go.uber.org/zap"

	"github.com/scrapscramble/scrapscramble-go/internal/game"
)

// Standing is a player's position at the end of a run.
type Standing struct {
	Name  string
	Lives int
	Stats string
}

// Result summarises a finished run.
type Result struct {
	Rounds    int
	Fights    int
	Winner    string
	Finished  bool
	Standings []Standing
}

// RoundObserver receives the fights of every round.
type RoundObserver func(round int, fights []*game.FightOutput)

// Runner drives a started game with one strategy for every player.
type Runner struct {
	game      *game.Game
	strategy  Strategy
	maxRounds int
	observer  RoundObserver
	logger    *zap.Logger
}

// NewRunner creates a runner. maxRounds <= 0 means no limit and a nil
// strategy plays Greedy.
func NewRunner(g *game.Game, strategy Strategy, maxRounds int, logger *zap.Logger) *Runner {
	if strategy == nil {
		strategy = Greedy{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{
		game:      g,
		strategy:  strategy,
		maxRounds: maxRounds,
		logger:    logger,
	}
}

// Observe registers a callback for each round's fights.
func (r *Runner) Observe(fn RoundObserver) {
	r.observer = fn
}

// Run plays rounds until one player remains, the round limit is reached or
// ctx is cancelled.
func (r *Runner) Run(ctx context.Context) (*Result, error) {
	if !r.game.Started() {
		return nil, game.ErrNotStarted
	}

	res := &Result{}
	for {
		if err := ctx.Err(); err != nil {
			return r.finish(res), err
		}

		round := r.game.Round()
		for _, p := range r.game.ActivePlayers() {
			n := r.strategy.TakeTurn(r.game, p)
			r.logger.Debug("bot turn",
				zap.Int("round", round),
				zap.String("player", p.Name),
				zap.String("strategy", r.strategy.Name()),
				zap.Int("actions", n),
			)
		}

		fights := r.game.ConductFights()
		res.Fights += len(fights)
		res.Rounds = round
		if r.observer != nil {
			r.observer(round, fights)
		}

		if r.game.IsOver() || (r.maxRounds > 0 && round >= r.maxRounds) {
			break
		}
		if err := r.game.NextRound(); err != nil {
			return r.finish(res), err
		}
	}

	r.finish(res)
	r.logger.Info("simulation finished",
		zap.String("game_id", r.game.ID.String()),
		zap.Int("rounds", res.Rounds),
		zap.Int("fights", res.Fights),
		zap.String("winner", res.Winner),
		zap.Bool("finished", res.Finished),
	)
	return res, nil
}

func (r *Runner) finish(res *Result) *Result {
	res.Finished = r.game.IsOver()
	if w, ok := r.game.Winner(); ok {
		res.Winner = w.Name
	}
	res.Standings = res.Standings[:0]
	for _, p := range r.game.Players() {
		res.Standings = append(res.Standings, Standing{
			Name:  p.Name,
			Lives: p.Lives(),
			Stats: p.Creature.String(),
		})
	}
	return res
}
