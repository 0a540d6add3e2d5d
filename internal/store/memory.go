// internal/store/memory.go
//
// In-memory registry of live game tables.
//
// Characteristics:
//   - Stores *play.Table objects keyed by table ID in a map.
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - State is lost when the process restarts.
//   - Sweep evicts tables whose last player action is older than a cutoff.

package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/robalobadob/wordle/apps/wordle-go/internal/play"
)

// ErrNotFound is returned by Get for unknown IDs.
var ErrNotFound = errors.New("store: table not found")

// Store defines the registry interface for game tables.
type Store interface {
	// Save adds or replaces a table.
	Save(ctx context.Context, t *play.Table) error

	// Get retrieves a table by ID.
	// Returns ErrNotFound if the table is not registered.
	Get(ctx context.Context, id string) (*play.Table, error)

	// Delete removes and closes a table. Unknown IDs are ignored.
	Delete(ctx context.Context, id string) error

	// Sweep removes and closes every table idle since before now-idle and
	// reports how many were evicted.
	Sweep(ctx context.Context, now time.Time, idle time.Duration) int

	// Len reports the number of registered tables.
	Len() int
}

// memory is an in-memory map-based Store implementation.
type memory struct {
	mu     sync.RWMutex           // guards tables map
	tables map[string]*play.Table // keyed by Table.ID()
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{tables: make(map[string]*play.Table)}
}

// Save adds or updates the table in the map. A different table previously
// stored under the same ID is closed.
func (m *memory) Save(ctx context.Context, t *play.Table) error {
	m.mu.Lock()
	old := m.tables[t.ID()]
	m.tables[t.ID()] = t
	m.mu.Unlock()
	if old != nil && old != t {
		old.Close()
	}
	return nil
}

// Get looks up a table by ID.
func (m *memory) Get(ctx context.Context, id string) (*play.Table, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if t, ok := m.tables[id]; ok {
		return t, nil
	}
	return nil, ErrNotFound
}

func (m *memory) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	t := m.tables[id]
	delete(m.tables, id)
	m.mu.Unlock()
	if t != nil {
		t.Close()
	}
	return nil
}

func (m *memory) Sweep(ctx context.Context, now time.Time, idle time.Duration) int {
	cutoff := now.Add(-idle)

	m.mu.Lock()
	var evicted []*play.Table
	for id, t := range m.tables {
		if t.LastActive().Before(cutoff) {
			evicted = append(evicted, t)
			delete(m.tables, id)
		}
	}
	m.mu.Unlock()

	// Closing takes each table's own lock; do it outside ours.
	for _, t := range evicted {
		t.Close()
	}
	return len(evicted)
}

func (m *memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.tables)
}
