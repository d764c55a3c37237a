package cart

import (
	"context"
	"sync"
)

type MemStore struct {
	mu sync.RWMutex
	m  map[string][]Line
}

func NewMemStore() *MemStore {
	return &MemStore{m: make(map[string][]Line)}
}

func (s *MemStore) Load(ctx context.Context, owner string) ([]Line, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Line, len(s.m[owner]))
	copy(out, s.m[owner])
	return out, nil
}

func (s *MemStore) Save(ctx context.Context, owner string, lines []Line) error {
	cp := make([]Line, len(lines))
	copy(cp, lines)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.m[owner] = cp
	return nil
}
