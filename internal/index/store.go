// Package index holds the committed catalog of scanned entries and
// answers ranked queries against it.
package index

import (
	"sync"

	"lantern/internal/entry"
)

// Store holds the current committed snapshot of entries. Replacement
// is the single commit point of a scan: readers always observe one
// consistent, fully-formed snapshot, never a mix of two scans.
type Store struct {
	mu      sync.RWMutex
	entries []entry.Entry
}

// NewStore returns an empty Store.
func NewStore() *Store {
	return &Store{}
}

// Replace atomically swaps the visible snapshot.
func (s *Store) Replace(entries []entry.Entry) {
	s.mu.Lock()
	s.entries = entries
	s.mu.Unlock()
}

// Snapshot returns the most recently committed snapshot, or nil if no
// scan has committed yet. The returned slice is shared and treated as
// immutable by all callers.
func (s *Store) Snapshot() []entry.Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.entries
}

// Count returns the size of the current snapshot.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}
