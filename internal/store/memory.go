// apps/go-cli/internal/store/memory.go
//
// In-memory implementation of the Store interface.
// Holds live game sessions for `wordle serve`; nothing is persisted.
//
// Characteristics:
//   - Stores *game.Game objects keyed by ID in a map.
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - Update runs its callback under the write lock so two guesses for the
//     same game never interleave.
//   - State is lost when the process restarts.

package store

import (
	"context"
	"errors"
	"sync"

	"github.com/robalobadob/wordle/apps/go-cli/internal/game"
)

// ErrNotFound is returned for unknown game IDs.
var ErrNotFound = errors.New("not found")

// Store defines the persistence interface for game sessions.
type Store interface {
	// Save persists or updates a game state.
	Save(ctx context.Context, g *game.Game) error

	// Update runs fn on the stored game while holding exclusive access.
	// Games are only reachable through Update, so fn must not retain g.
	// Returns ErrNotFound for unknown ids; otherwise fn's error unchanged.
	Update(ctx context.Context, id string, fn func(*game.Game) error) error

	// Len reports the number of stored games.
	Len() int
}

// memory is an in-memory map-based Store implementation.
type memory struct {
	mu    sync.RWMutex          // guards games map and the games in it
	games map[string]*game.Game // keyed by Game.ID
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{games: make(map[string]*game.Game)}
}

// Save adds or updates the game in the map.
func (m *memory) Save(ctx context.Context, g *game.Game) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.games[g.ID] = g
	return nil
}

func (m *memory) Update(ctx context.Context, id string, fn func(*game.Game) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	g, ok := m.games[id]
	if !ok {
		return ErrNotFound
	}
	return fn(g)
}

func (m *memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.games)
}
