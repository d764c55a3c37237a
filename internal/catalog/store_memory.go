package catalog

import (
	"context"
	"sort"
	"sync"
)

type MemStore struct {
	mu sync.RWMutex
	m  map[int]Artwork
}

// NewMemStore seeds the in-memory gallery used outside of Postgres
// deployments and in tests.
func NewMemStore() *MemStore {
	s := &MemStore{m: map[int]Artwork{}}
	for _, a := range SeedArtworks() {
		s.m[a.ID] = a
	}
	return s
}

func (s *MemStore) Ping(ctx context.Context) error { return nil }

func (s *MemStore) ListSortedByID(ctx context.Context) ([]Artwork, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Artwork, 0, len(s.m))
	for _, a := range s.m {
		out = append(out, a)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *MemStore) Get(ctx context.Context, id int) (Artwork, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.m[id]
	return a, ok, nil
}
