// Package lobby gathers players by nickname before a game starts and keeps
// track of the games it started.
package lobby

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/scrapscramble/scrapscramble-go/internal/game"
	"github.com/scrapscramble/scrapscramble-go/internal/game/random"
)

var (
	ErrLobbyInGame      = errors.New("lobby already in game")
	ErrPlayerExists     = errors.New("player already in lobby")
	ErrPlayerNotFound   = errors.New("player not found")
	ErrNotEnoughPlayers = errors.New("not enough players")
	ErrLobbyNotFound    = errors.New("lobby not found")
)

// MinPlayers is the smallest lobby that can start a game.
const MinPlayers = 2

// DefaultName is used when a lobby is created without a name.
const DefaultName = "Default Lobby Name"

// State is the lifecycle state of a lobby.
type State int

const (
	StateWaiting State = iota
	StateInGame
	StateFinished
)

func (s State) String() string {
	switch s {
	case StateWaiting:
		return "WAITING"
	case StateInGame:
		return "IN_GAME"
	case StateFinished:
		return "FINISHED"
	default:
		return "UNKNOWN"
	}
}

// PlayerSnapshot captures one member for external use. Lives and Stats
// are empty before the game starts.
type PlayerSnapshot struct {
	Name       string
	Lives      int
	Eliminated bool
	Stats      string
}

// Snapshot captures a consistent view of a lobby.
type Snapshot struct {
	ID         string
	Name       string
	State      State
	Players    []PlayerSnapshot
	Round      int
	Winner     string
	CreateTime time.Time
	StartTime  *time.Time
	EndTime    *time.Time
}

// Lobby is a named group of players. Nicknames keep join order, which is
// the seating order of the game.
type Lobby struct {
	ID         string
	CreateTime time.Time

	name      string
	state     State
	nicknames []string
	settings  game.Settings
	game      *game.Game
	startTime *time.Time
	endTime   *time.Time
	mu        sync.RWMutex
}

// NewLobby creates an empty lobby using default game settings.
func NewLobby(name string) *Lobby {
	if name == "" {
		name = DefaultName
	}
	return &Lobby{
		ID:         uuid.New().String(),
		CreateTime: time.Now(),
		name:       name,
		state:      StateWaiting,
		nicknames:  make([]string, 0),
		settings:   game.DefaultSettings(),
	}
}

// Name returns the lobby name.
func (l *Lobby) Name() string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.name
}

// SetName renames the lobby.
func (l *Lobby) SetName(name string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.name = name
}

// State returns the lifecycle state.
func (l *Lobby) State() State {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.state
}

// InGame reports whether a game has been started.
func (l *Lobby) InGame() bool {
	return l.State() != StateWaiting
}

// AddPlayer joins a nickname to a waiting lobby.
func (l *Lobby) AddPlayer(nickname string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.state != StateWaiting {
		return ErrLobbyInGame
	}
	for _, n := range l.nicknames {
		if n == nickname {
			return fmt.Errorf("add %q: %w", nickname, ErrPlayerExists)
		}
	}
	l.nicknames = append(l.nicknames, nickname)
	return nil
}

// RemovePlayer removes a nickname from a waiting lobby.
func (l *Lobby) RemovePlayer(nickname string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.state != StateWaiting {
		return ErrLobbyInGame
	}
	for i, n := range l.nicknames {
		if n == nickname {
			l.nicknames = append(l.nicknames[:i], l.nicknames[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("remove %q: %w", nickname, ErrPlayerNotFound)
}

// Size returns the number of joined players.
func (l *Lobby) Size() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.nicknames)
}

// Nicknames returns the joined players in join order.
func (l *Lobby) Nicknames() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return append([]string(nil), l.nicknames...)
}

// Settings returns a copy of the settings the game will use.
func (l *Lobby) Settings() game.Settings {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.settings.Clone()
}

// SetSettings replaces the game settings of a waiting lobby.
func (l *Lobby) SetSettings(s game.Settings) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.state != StateWaiting {
		return ErrLobbyInGame
	}
	l.settings = s.Clone()
	return nil
}

// Start creates the game from the joined players and deals their first
// shops.
func (l *Lobby) Start(pool *game.CardPool, rng random.Source, logger *zap.Logger) (*game.Game, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.state != StateWaiting {
		return nil, ErrLobbyInGame
	}
	if len(l.nicknames) < MinPlayers {
		return nil, fmt.Errorf("start lobby with %d players: %w", len(l.nicknames), ErrNotEnoughPlayers)
	}

	g := game.NewGame(l.settings, rng, logger)
	if err := g.Start(len(l.nicknames), l.nicknames, pool); err != nil {
		return nil, fmt.Errorf("start lobby %s: %w", l.ID, err)
	}

	now := time.Now()
	l.game = g
	l.state = StateInGame
	l.startTime = &now
	return g, nil
}

// Game returns the running game, if any.
func (l *Lobby) Game() (*game.Game, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.game, l.game != nil
}

// Finish marks an in-game lobby as finished once its game is over. It
// reports whether the state changed.
func (l *Lobby) Finish() bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.state != StateInGame || !l.game.IsOver() {
		return false
	}
	now := time.Now()
	l.state = StateFinished
	l.endTime = &now
	return true
}

// Snapshot returns a consistent copy of the lobby state.
func (l *Lobby) Snapshot() Snapshot {
	l.mu.RLock()
	defer l.mu.RUnlock()

	snap := Snapshot{
		ID:         l.ID,
		Name:       l.name,
		State:      l.state,
		Players:    make([]PlayerSnapshot, 0, len(l.nicknames)),
		CreateTime: l.CreateTime,
		StartTime:  cloneTime(l.startTime),
		EndTime:    cloneTime(l.endTime),
	}
	for _, name := range l.nicknames {
		ps := PlayerSnapshot{Name: name}
		if l.game != nil {
			if p, ok := l.game.Player(name); ok {
				ps.Lives = p.Lives()
				ps.Eliminated = p.IsEliminated()
				ps.Stats = p.Creature.String()
			}
		}
		snap.Players = append(snap.Players, ps)
	}
	if l.game != nil {
		snap.Round = l.game.Round()
		if w, ok := l.game.Winner(); ok {
			snap.Winner = w.Name
		}
	}
	return snap
}

func cloneTime(src *time.Time) *time.Time {
	if src == nil {
		return nil
	}
	cp := *src
	return &cp
}
