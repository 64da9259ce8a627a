package catalog

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"gamelib/internal/feed"
	"gamelib/pkg/models"
)

// Snapshot is one immutable catalog: the records of a single successful load
// plus its metadata. Consumers hold the snapshot they were handed; a reload
// never mutates it.
type Snapshot struct {
	Games    []models.Game `json:"games"`
	LoadID   string        `json:"load_id"`
	LoadedAt time.Time     `json:"loaded_at"`
	Stats    feed.Stats    `json:"stats"`
}

// Store holds the current snapshot and swaps it wholesale on reload.
// Readers only ever see a complete catalog: either the previous one or the
// new one, never a mix.
type Store struct {
	mu      sync.RWMutex
	current *Snapshot
	lastErr error
}

func NewStore() *Store {
	return &Store{
		// start degraded: empty catalog, no load yet
		current: &Snapshot{Games: []models.Game{}},
	}
}

// Replace installs a freshly-built catalog and clears any previous failure.
func (s *Store) Replace(games []models.Game, stats feed.Stats) *Snapshot {
	snap := &Snapshot{
		Games:    games,
		LoadID:   uuid.NewString(),
		LoadedAt: time.Now().UTC(),
		Stats:    stats,
	}

	s.mu.Lock()
	s.current = snap
	s.lastErr = nil
	s.mu.Unlock()
	return snap
}

// Fail records a failed load. The catalog becomes empty: a failed retrieval
// never leaves partial rows behind.
func (s *Store) Fail(err error) {
	s.mu.Lock()
	s.current = &Snapshot{Games: []models.Game{}}
	s.lastErr = err
	s.mu.Unlock()
}

// Current returns the live snapshot and the last load error, if any.
func (s *Store) Current() (*Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current, s.lastErr
}

// Ready reports whether a load has ever succeeded.
func (s *Store) Ready() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastErr == nil && s.current.LoadID != ""
}
