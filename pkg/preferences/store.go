package preferences

import (
	"context"
	"sync"
)

// Store loads and saves preferences.
type Store interface {
	Load(ctx context.Context) (Preferences, error)
	Save(ctx context.Context, p Preferences) error
}

// MemoryStore keeps preferences in process memory.
type MemoryStore struct {
	mu    sync.RWMutex
	prefs Preferences
}

// NewMemoryStore returns a store holding Default.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{prefs: Default()}
}

func (s *MemoryStore) Load(context.Context) (Preferences, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.prefs, nil
}

func (s *MemoryStore) Save(_ context.Context, p Preferences) error {
	if err := p.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prefs = p
	return nil
}
