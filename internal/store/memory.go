// internal/store/memory.go
//
// In-memory cache of solved puzzles for the current process.
// The interactive loop can be asked the same puzzle again (a mistyped
// confirmation, re-running to auto-type); a hit skips the whole pipeline.
//
// Characteristics:
//   - Results keyed by Key(letters, minLength).
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - State is lost when the process exits; nothing is persisted.

package store

import (
	"context"
	"errors"
	"strconv"
	"sync"

	"github.com/robalobadob/spellbee/internal/puzzle"
	"github.com/robalobadob/spellbee/internal/solver"
)

// ErrNotFound is returned by Get for unknown keys.
var ErrNotFound = errors.New("store: not found")

// Store caches solver results.
type Store interface {
	// Save stores or replaces the result under key.
	Save(ctx context.Context, key string, res *solver.Result) error

	// Get retrieves a result by key, or ErrNotFound.
	Get(ctx context.Context, key string) (*solver.Result, error)

	// Len reports the number of cached results.
	Len() int
}

// Key builds the cache key for a puzzle solved at a given minimum length.
func Key(letters puzzle.LetterSet, minLength int) string {
	return letters.Key() + "/" + strconv.Itoa(minLength)
}

// memory is an in-memory map-based Store implementation.
type memory struct {
	mu      sync.RWMutex              // guards results
	results map[string]*solver.Result // keyed by Key()
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{results: make(map[string]*solver.Result)}
}

// Save adds or updates the result in the map.
func (m *memory) Save(ctx context.Context, key string, res *solver.Result) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.results[key] = res
	return nil
}

// Get looks up a result by key.
func (m *memory) Get(ctx context.Context, key string) (*solver.Result, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if r, ok := m.results[key]; ok {
		return r, nil
	}
	return nil, ErrNotFound
}

func (m *memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.results)
}
