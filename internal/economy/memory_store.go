package economy

import (
	"context"
	"sync"
)

type memoryStore struct {
	mu     sync.RWMutex
	byUser map[string][]Transaction
}

// NewMemoryStore creates a concurrency-safe in-memory transaction log
// useful for unit tests and development mode.
func NewMemoryStore() Store {
	return &memoryStore{byUser: make(map[string][]Transaction)}
}

func (s *memoryStore) Append(_ context.Context, tx Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.byUser[tx.UserID] = append(s.byUser[tx.UserID], tx)
	return nil
}

func (s *memoryStore) ListByUser(_ context.Context, userID string, limit int) ([]Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	history := s.byUser[userID]
	if limit <= 0 || limit > len(history) {
		limit = len(history)
	}

	// Newest first.
	out := make([]Transaction, 0, limit)
	for i := len(history) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, history[i])
	}
	return out, nil
}
