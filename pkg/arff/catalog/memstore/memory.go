package memstore

import (
	"context"
	"sort"
	"sync"

	"github.com/cognicore/arff/pkg/arff/catalog"
)

// Store is an in-memory implementation of catalog.Store for tests.
type Store struct {
	mu        sync.RWMutex
	entries   map[string]catalog.Entry // by ID
	pathIndex map[string]string        // path → ID
}

// New creates a new in-memory store.
func New() *Store {
	return &Store{
		entries:   make(map[string]catalog.Entry),
		pathIndex: make(map[string]string),
	}
}

// Close implements catalog.Store.
func (s *Store) Close() error { return nil }

// UpsertEntry inserts or updates an entry, keyed by path. An existing
// path keeps its original ID.
func (s *Store) UpsertEntry(ctx context.Context, e catalog.Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if e.Path == "" {
		return nil
	}
	if existingID, ok := s.pathIndex[e.Path]; ok {
		e.ID = existingID
	}
	s.pathIndex[e.Path] = e.ID
	s.entries[e.ID] = copyEntry(e)
	return nil
}

// GetEntry returns an entry by ID.
func (s *Store) GetEntry(ctx context.Context, id string) (catalog.Entry, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if e, ok := s.entries[id]; ok {
		return copyEntry(e), true, nil
	}
	return catalog.Entry{}, false, nil
}

// GetEntryByPath returns an entry by its source file path.
func (s *Store) GetEntryByPath(ctx context.Context, path string) (catalog.Entry, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if id, ok := s.pathIndex[path]; ok {
		return copyEntry(s.entries[id]), true, nil
	}
	return catalog.Entry{}, false, nil
}

// ListEntries returns up to limit entries sorted by path. A
// non-positive limit returns everything.
func (s *Store) ListEntries(ctx context.Context, limit int) ([]catalog.Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]catalog.Entry, 0, len(s.entries))
	for _, e := range s.entries {
		out = append(out, copyEntry(e))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Path < out[j].Path })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func copyEntry(e catalog.Entry) catalog.Entry {
	c := e
	c.ClassLabels = append([]string(nil), e.ClassLabels...)
	c.Features = append([]catalog.Feature(nil), e.Features...)
	return c
}
