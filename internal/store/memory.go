// internal/store/memory.go
//
// In-memory implementation of the Store interface.
// Holds the latest board.Sheet snapshot per player so readers (the spectator
// API) never touch a live game.
//
// Characteristics:
//   - Stores board.Sheet values keyed by player name in a map.
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - State is lost when the process exits.
//   - ErrNotFound is returned for unknown players on Get().

package store

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/robalobadob/bowling/internal/board"
)

// ErrNotFound is returned by Get for an unknown player.
var ErrNotFound = errors.New("not found")

// Store defines where score sheet snapshots are published.
type Store interface {
	// Save records the latest snapshot for sheet.Player.
	Save(ctx context.Context, sheet board.Sheet) error

	// Get retrieves the snapshot for a player.
	// Returns ErrNotFound if the player has no sheet.
	Get(ctx context.Context, player string) (board.Sheet, error)

	// List returns every snapshot in seat order.
	List(ctx context.Context) ([]board.Sheet, error)
}

// memory is an in-memory map-based Store implementation.
type memory struct {
	mu     sync.RWMutex           // guards sheets and seats
	sheets map[string]board.Sheet // keyed by Sheet.Player
	seats  map[string]int         // order of first Save
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{
		sheets: make(map[string]board.Sheet),
		seats:  make(map[string]int),
	}
}

// Save adds or replaces the player's snapshot.
func (m *memory) Save(ctx context.Context, sheet board.Sheet) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.seats[sheet.Player]; !ok {
		m.seats[sheet.Player] = len(m.seats)
	}
	m.sheets[sheet.Player] = sheet
	return nil
}

// Get looks up a snapshot by player.
func (m *memory) Get(ctx context.Context, player string) (board.Sheet, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if s, ok := m.sheets[player]; ok {
		return s, nil
	}
	return board.Sheet{}, ErrNotFound
}

// List returns the snapshots ordered by when each player was first saved.
func (m *memory) List(ctx context.Context) ([]board.Sheet, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]board.Sheet, 0, len(m.sheets))
	for _, s := range m.sheets {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool {
		return m.seats[out[i].Player] < m.seats[out[j].Player]
	})
	return out, nil
}
