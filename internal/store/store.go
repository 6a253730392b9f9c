package store

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/fraudwatch/fraudwatch/internal/report"
)

// evictInterval is how often the background loop scans for expired runs.
const evictInterval = time.Minute

// Entry is a run together with the time it was stored.
type Entry struct {
	Run       *report.Run
	UpdatedAt time.Time
}

// Store is a thread-safe, bounded in-memory run history.
type Store struct {
	limit int
	ttl   time.Duration

	mu    sync.RWMutex
	data  map[string]*Entry
	order []string         // run IDs, oldest first
	now   func() time.Time // injectable for deterministic tests
}

// New creates a Store retaining at most limit runs for at most ttl.
func New(limit int, ttl time.Duration) *Store {
	return &Store{
		limit: limit,
		ttl:   ttl,
		data:  make(map[string]*Entry),
		now:   time.Now,
	}
}

// Put stores run. When the store is full the oldest run is dropped.
// Callers must not modify run after calling Put.
func (s *Store) Put(run *report.Run) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.data[run.ID]; !exists {
		s.order = append(s.order, run.ID)
	}
	s.data[run.ID] = &Entry{Run: run, UpdatedAt: s.now()}

	for len(s.order) > s.limit {
		oldest := s.order[0]
		s.order = s.order[1:]
		delete(s.data, oldest)
	}
}

// Get returns the entry for the given run ID and whether it was found.
func (s *Store) Get(id string) (*Entry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.data[id]
	return e, ok
}

// Latest returns the most recently stored run, or false when the store is
// empty.
func (s *Store) Latest() (*Entry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.order) == 0 {
		return nil, false
	}
	e := s.data[s.order[len(s.order)-1]]
	return e, true
}

// List returns all live entries, newest first. Entries past the TTL that
// have not yet been evicted are excluded.
func (s *Store) List() []*Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cutoff := s.now().Add(-s.ttl)
	out := make([]*Entry, 0, len(s.order))
	for i := len(s.order) - 1; i >= 0; i-- {
		e := s.data[s.order[i]]
		if e.UpdatedAt.After(cutoff) {
			out = append(out, e)
		}
	}
	return out
}

// Count returns the number of stored runs, including not-yet-evicted stale
// ones.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}

// Evict removes entries older than the TTL relative to now and returns how
// many were removed.
func (s *Store) Evict(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := now.Add(-s.ttl)
	kept := s.order[:0]
	removed := 0
	for _, id := range s.order {
		if s.data[id].UpdatedAt.After(cutoff) {
			kept = append(kept, id)
			continue
		}
		delete(s.data, id)
		removed++
	}
	s.order = kept
	return removed
}

// Run drives periodic TTL eviction until ctx is cancelled.
func (s *Store) Run(ctx context.Context) {
	t := time.NewTicker(evictInterval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-t.C:
			if n := s.Evict(now); n > 0 {
				slog.Debug("store: evicted expired runs", "count", n)
			}
		}
	}
}
