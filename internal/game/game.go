// Package game implements the rules engine: shops, hands, players, effect
// dispatch, pairing each round and combat.
package game

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/scrapscramble/scrapscramble-go/internal/game/creature"
	"github.com/scrapscramble/scrapscramble-go/internal/game/pairing"
	"github.com/scrapscramble/scrapscramble-go/internal/game/random"
)

var (
	// ErrNotStarted is returned when a round is advanced before Start.
	ErrNotStarted = errors.New("game has not started")
	// ErrDuplicateNames is returned when two players share a name.
	ErrDuplicateNames = errors.New("duplicate player names")
	// ErrNotEnoughNames is returned when fewer names than players are given.
	ErrNotEnoughNames = errors.New("not enough player names")
	// ErrNoPlayers is returned when a game is started without players.
	ErrNoPlayers = errors.New("a game needs at least one player")
)

// Game owns the players of one session and drives its rounds. It is not
// safe for concurrent use; callers serialize access per game.
type Game struct {
	ID uuid.UUID

	settings Settings
	pool     *CardPool
	players  []*Player
	round    int
	started  bool
	pairs    *pairing.PairMaker[*Player]
	caller   *EffectCaller
	rng      random.Source
	logger   *zap.Logger
}

// NewGame creates a game that has not started yet. A nil rng is seeded from
// crypto/rand and a nil logger discards output.
func NewGame(settings Settings, rng random.Source, logger *zap.Logger) *Game {
	if logger == nil {
		logger = zap.NewNop()
	}
	if rng == nil {
		seed, err := random.NewSeed()
		if err != nil {
			logger.Warn("falling back to fixed seed", zap.Error(err))
		}
		rng = random.New(seed)
	}
	settings = settings.Clone()
	if len(settings.ShopQuantity) == 0 {
		settings.ShopQuantity = DefaultSettings().ShopQuantity
	}
	return &Game{
		ID:       uuid.New(),
		settings: settings,
		pool:     NewCardPool(rng),
		round:    1,
		caller:   NewEffectCaller(logger),
		rng:      rng,
		logger:   logger,
	}
}

// Settings returns the game's settings.
func (g *Game) Settings() Settings { return g.settings }

// Pool returns the card pool players were cloned from.
func (g *Game) Pool() *CardPool { return g.pool }

// Rng returns the game's random source.
func (g *Game) Rng() random.Source { return g.rng }

// Logger returns the game's logger.
func (g *Game) Logger() *zap.Logger { return g.logger }

// EffectCaller returns the dispatcher used for every trigger in this game.
func (g *Game) EffectCaller() *EffectCaller { return g.caller }

// Round returns the current round, starting at 1.
func (g *Game) Round() int { return g.round }

// Started reports whether Start has been called.
func (g *Game) Started() bool { return g.started }

// Start creates playerCount players named from names, stocks their shops and
// pairs them for the first round.
func (g *Game) Start(playerCount int, names []string, pool *CardPool) error {
	if playerCount <= 0 {
		return ErrNoPlayers
	}
	if len(names) < playerCount {
		return fmt.Errorf("start game with %d players: %w", playerCount, ErrNotEnoughNames)
	}
	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		if _, ok := seen[name]; ok {
			return fmt.Errorf("start game: %q: %w", name, ErrDuplicateNames)
		}
		seen[name] = struct{}{}
	}

	g.started = true
	g.pool = pool
	g.round = 1
	g.players = make([]*Player, 0, playerCount)
	for i := 0; i < playerCount; i++ {
		p := NewPlayer(names[i], g.settings, pool)
		g.players = append(g.players, p)
		p.Shop.Refresh(g, p, true)
	}

	g.pairs = pairing.New(g.players, g.rng)
	g.pairs.Generate()

	g.logger.Info("game started",
		zap.String("game_id", g.ID.String()),
		zap.Int("players", playerCount),
		zap.Int("pool_size", pool.Size()),
	)
	return nil
}

// Players returns every player, eliminated ones included.
func (g *Game) Players() []*Player {
	return append([]*Player(nil), g.players...)
}

// ActivePlayers returns players that still have lives.
func (g *Game) ActivePlayers() []*Player {
	var active []*Player
	for _, p := range g.players {
		if !p.IsEliminated() {
			active = append(active, p)
		}
	}
	return active
}

// Player looks up a player by name.
func (g *Game) Player(name string) (*Player, bool) {
	for _, p := range g.players {
		if p.Name == name {
			return p, true
		}
	}
	return nil, false
}

// Opponent returns p's current opponent, p itself on a bye, or false if p
// is not being paired.
func (g *Game) Opponent(p *Player) (*Player, bool) {
	if g.pairs == nil {
		return nil, false
	}
	return g.pairs.Opponent(p)
}

// IsOver reports whether at most one player is left.
func (g *Game) IsOver() bool {
	return g.started && len(g.ActivePlayers()) <= 1
}

// Winner returns the last player standing once the game is over.
func (g *Game) Winner() (*Player, bool) {
	active := g.ActivePlayers()
	if !g.started || len(active) != 1 {
		return nil, false
	}
	return active[0], true
}

// NextRound advances to the next round: new pairings, more mana, restocked
// shops, cleared keywords, then every aftermath effect.
func (g *Game) NextRound() error {
	if !g.started {
		return ErrNotStarted
	}

	g.round++
	g.pairs.Generate()

	for _, p := range g.players {
		p.ClearAftermathMessages()
		p.Mana.Refill(ManaPerRound)
		p.Shop.Refresh(g, p, true)
		p.Mana.ApplyOverload(p.Creature.Keyword(creature.Overload))
		p.Bought.NewLayer()
		p.Played.NewLayer()
		p.Creature.ClearKeywords()
	}

	for _, p := range g.players {
		g.caller.Activate(&p.Effects, &Context{Trigger: TriggerAftermathPlayer, Game: g, Player: p})
	}
	for _, p := range g.players {
		g.caller.Activate(&p.Effects, &Context{Trigger: TriggerAftermathOpponent, Game: g, Player: p})
	}

	for _, p := range g.players {
		p.GainNextRoundEffects()
		p.Attached.NewLayer()
	}

	g.logger.Info("round advanced",
		zap.String("game_id", g.ID.String()),
		zap.Int("round", g.round),
		zap.Int("active_players", len(g.ActivePlayers())),
		zap.Bool("pairing_fallback", g.pairs.FellBack()),
	)
	return nil
}

// ConductFights resolves one fight per pairing. Byes produce no output.
func (g *Game) ConductFights() []*FightOutput {
	var outputs []*FightOutput
	fought := make(map[*Player]bool)
	for _, p := range g.players {
		if fought[p] {
			continue
		}
		opp, ok := g.Opponent(p)
		if !ok || opp == p {
			continue
		}
		if out := g.Fight(p, opp); out != nil {
			outputs = append(outputs, out)
		}
		fought[p] = true
		fought[opp] = true
	}
	return outputs
}

func (g *Game) isMember(p *Player) bool {
	if p == nil {
		return false
	}
	for _, member := range g.players {
		if member == p {
			return true
		}
	}
	return false
}
