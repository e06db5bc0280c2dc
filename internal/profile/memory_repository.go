package profile

import (
	"context"
	"sync"
	"time"
)

type memoryRepository struct {
	mu      sync.RWMutex
	storage map[string]Progression
}

// NewMemoryRepository constructs an in-memory repository for tests and
// development mode.
func NewMemoryRepository() Repository {
	return &memoryRepository{storage: make(map[string]Progression)}
}

func (r *memoryRepository) Create(_ context.Context, p Progression) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.storage[p.UserID]; exists {
		return ErrExists
	}
	r.storage[p.UserID] = p
	return nil
}

func (r *memoryRepository) Get(_ context.Context, userID string) (Progression, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.storage[userID]
	if !ok {
		return Progression{}, ErrNotFound
	}
	return p, nil
}

func (r *memoryRepository) Update(_ context.Context, p Progression) (Progression, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.storage[p.UserID]
	if !ok {
		return Progression{}, ErrNotFound
	}
	if stored.Version != p.Version {
		return Progression{}, ErrVersionConflict
	}
	p.Version++
	p.UpdatedAt = time.Now().UTC()
	r.storage[p.UserID] = p
	return p, nil
}
