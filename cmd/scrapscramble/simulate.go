package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/scrapscramble/scrapscramble-go/internal/config"
	"github.com/scrapscramble/scrapscramble-go/internal/game"
	"github.com/scrapscramble/scrapscramble-go/internal/game/random"
	"github.com/scrapscramble/scrapscramble-go/internal/game/sets"
	"github.com/scrapscramble/scrapscramble-go/internal/lobby"
	"github.com/scrapscramble/scrapscramble-go/internal/sim"
)

type simulateOptions struct {
	players int
	rounds  int
	games   int
	seed    int64
	sets    []string
	quiet   bool
}

func newSimulateCommand(load func() (*config.Config, *zap.Logger, error)) *cobra.Command {
	var opts simulateOptions

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Play games between greedy bots and print every fight",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, logger, err := load()
			if err != nil {
				return err
			}
			defer logger.Sync() //nolint:errcheck
			if !cmd.Flags().Changed("seed") {
				opts.seed = cfg.Cards.Seed
			}
			return runSimulation(cmd.Context(), cmd.OutOrStdout(), cfg, opts, logger)
		},
	}

	f := cmd.Flags()
	f.IntVar(&opts.players, "players", 4, "number of bot players")
	f.IntVar(&opts.rounds, "rounds", 0, "stop after this many rounds (0 = play to the end)")
	f.IntVar(&opts.games, "games", 1, "number of games to play one after another")
	f.Int64Var(&opts.seed, "seed", 0, "random seed (0 = random)")
	f.StringSliceVar(&opts.sets, "set", nil, "card sets to use (default: pool file or every set)")
	f.BoolVar(&opts.quiet, "quiet", false, "only print the final standings")
	return cmd
}

// runSimulation plays every game in its own lobby, prints the standings of
// each one and drops the finished lobbies afterwards.
func runSimulation(ctx context.Context, w io.Writer, cfg *config.Config, opts simulateOptions, logger *zap.Logger) error {
	if opts.players < lobby.MinPlayers {
		return fmt.Errorf("need at least %d players, got %d", lobby.MinPlayers, opts.players)
	}
	if opts.games < 1 {
		return fmt.Errorf("need at least 1 game, got %d", opts.games)
	}

	seed := opts.seed
	if seed == 0 {
		s, err := random.NewSeed()
		if err != nil {
			return err
		}
		seed = s
	}
	rng := random.New(seed)
	logger.Info("simulation starting",
		zap.Int64("seed", seed),
		zap.Int("players", opts.players),
		zap.Int("games", opts.games),
	)

	pool, err := buildPool(cfg, opts.sets, rng)
	if err != nil {
		return err
	}

	mgr := lobby.NewManager(logger)
	played := make([]*lobby.Lobby, 0, opts.games)
	for i := 1; i <= opts.games; i++ {
		l, err := seatBots(mgr, cfg, opts.players, fmt.Sprintf("Simulation %d", i))
		if err != nil {
			return err
		}
		g, err := mgr.StartLobby(l.ID, pool, rng)
		if err != nil {
			return err
		}

		r := sim.NewRunner(g, sim.Greedy{}, opts.rounds, logger)
		if !opts.quiet {
			r.Observe(func(round int, fights []*game.FightOutput) {
				renderRound(w, round, fights)
			})
		}
		res, err := r.Run(ctx)
		if err != nil {
			return err
		}
		l.Finish()
		played = append(played, l)
		renderStandings(w, l.Snapshot(), res.Fights)
	}

	if opts.games > 1 {
		renderSummary(w, played)
	}

	for _, l := range mgr.GetAllLobbies() {
		if l.State() == lobby.StateFinished {
			if err := mgr.RemoveLobby(l.ID); err != nil {
				return err
			}
		}
	}
	logger.Info("simulation finished",
		zap.Int("games", opts.games),
		zap.Int("unfinished_lobbies", mgr.GetActiveLobbyCount()),
	)
	return nil
}

func seatBots(mgr *lobby.Manager, cfg *config.Config, players int, name string) (*lobby.Lobby, error) {
	l := mgr.CreateLobby(name)
	if err := l.SetSettings(cfg.Game.Settings()); err != nil {
		return nil, err
	}
	for i := 1; i <= players; i++ {
		if err := l.AddPlayer(fmt.Sprintf("Bot %d", i)); err != nil {
			return nil, err
		}
	}
	return l, nil
}

func buildPool(cfg *config.Config, setNames []string, rng random.Source) (*game.CardPool, error) {
	if len(setNames) == 0 && cfg.Cards.PoolFile != "" {
		pf, err := sets.ParsePoolFile(cfg.Cards.PoolFile)
		if err != nil {
			return nil, fmt.Errorf("pool file %s: %w", cfg.Cards.PoolFile, err)
		}
		return pf.Build(rng)
	}
	return sets.NewPool(rng, setNames...)
}

func renderStandings(w io.Writer, snap lobby.Snapshot, fights int) {
	fmt.Fprintln(w, bold(fmt.Sprintf("%s, after %d rounds and %d fights:", snap.Name, snap.Round, fights)))
	for _, p := range snap.Players {
		lives := green(fmt.Sprintf("%d lives", p.Lives))
		if p.Eliminated {
			lives = red("eliminated")
		}
		fmt.Fprintf(w, "  %s (%s) %s\n", p.Name, p.Stats, lives)
	}
	if snap.Winner != "" {
		fmt.Fprintln(w, yellow(snap.Winner+" wins the game!"))
	} else {
		fmt.Fprintln(w, "No winner yet.")
	}
}

func renderSummary(w io.Writer, lobbies []*lobby.Lobby) {
	wins := make(map[string]int)
	fmt.Fprintln(w, bold("Summary:"))
	for _, l := range lobbies {
		snap := l.Snapshot()
		winner := snap.Winner
		if winner == "" {
			winner = "no winner"
		} else {
			wins[winner]++
		}
		fmt.Fprintf(w, "  %s: %s (%s, round %d)\n", snap.Name, winner, snap.State, snap.Round)
	}
	for _, p := range lobbies[0].Snapshot().Players {
		fmt.Fprintf(w, "  %s won %d of %d\n", p.Name, wins[p.Name], len(lobbies))
	}
}
