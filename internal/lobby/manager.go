package lobby

import (
	"fmt"
	"sort"
	"sync"

	"go.uber.org/zap"

	"github.com/scrapscramble/scrapscramble-go/internal/game"
	"github.com/scrapscramble/scrapscramble-go/internal/game/random"
)

// Manager manages lobbies
type Manager struct {
	lobbies map[string]*Lobby
	mu      sync.RWMutex
	logger  *zap.Logger
}

// NewManager creates a new lobby manager
func NewManager(logger *zap.Logger) *Manager {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Manager{
		lobbies: make(map[string]*Lobby),
		logger:  logger,
	}
}

// CreateLobby creates a new lobby
func (m *Manager) CreateLobby(name string) *Lobby {
	m.mu.Lock()
	defer m.mu.Unlock()

	l := NewLobby(name)
	m.lobbies[l.ID] = l

	m.logger.Info("lobby created",
		zap.String("lobby_id", l.ID),
		zap.String("name", l.Name()),
	)
	return l
}

// GetLobby retrieves a lobby by ID
func (m *Manager) GetLobby(lobbyID string) (*Lobby, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	l, ok := m.lobbies[lobbyID]
	return l, ok
}

// StartLobby starts the game of a lobby
func (m *Manager) StartLobby(lobbyID string, pool *game.CardPool, rng random.Source) (*game.Game, error) {
	l, ok := m.GetLobby(lobbyID)
	if !ok {
		return nil, fmt.Errorf("start %s: %w", lobbyID, ErrLobbyNotFound)
	}

	g, err := l.Start(pool, rng, m.logger.With(zap.String("lobby_id", lobbyID)))
	if err != nil {
		m.logger.Warn("lobby start rejected",
			zap.String("lobby_id", lobbyID),
			zap.Error(err),
		)
		return nil, err
	}

	m.logger.Info("lobby started",
		zap.String("lobby_id", lobbyID),
		zap.String("game_id", g.ID.String()),
		zap.Strings("players", l.Nicknames()),
	)
	return g, nil
}

// RemoveLobby removes a lobby
func (m *Manager) RemoveLobby(lobbyID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.lobbies[lobbyID]; !ok {
		return fmt.Errorf("remove %s: %w", lobbyID, ErrLobbyNotFound)
	}
	delete(m.lobbies, lobbyID)

	m.logger.Info("lobby removed", zap.String("lobby_id", lobbyID))
	return nil
}

// GetAllLobbies returns all lobbies, oldest first
func (m *Manager) GetAllLobbies() []*Lobby {
	m.mu.RLock()
	defer m.mu.RUnlock()

	lobbies := make([]*Lobby, 0, len(m.lobbies))
	for _, l := range m.lobbies {
		lobbies = append(lobbies, l)
	}
	sort.Slice(lobbies, func(i, j int) bool {
		return lobbies[i].CreateTime.Before(lobbies[j].CreateTime)
	})
	return lobbies
}

// GetActiveLobbyCount returns the count of lobbies whose game is not over
func (m *Manager) GetActiveLobbyCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	count := 0
	for _, l := range m.lobbies {
		if l.State() != StateFinished {
			count++
		}
	}
	return count
}
