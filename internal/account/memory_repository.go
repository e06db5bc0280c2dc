package account

import (
	"context"
	"errors"
	"sync"
)

type memoryRepository struct {
	mu    sync.RWMutex
	users map[string]User
}

// NewMemoryRepository builds an in-memory account store for tests and
// development mode.
func NewMemoryRepository() Repository {
	return &memoryRepository{users: make(map[string]User)}
}

func (r *memoryRepository) Create(_ context.Context, user User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.users[user.Handle]; exists {
		return errors.New("handle taken")
	}
	r.users[user.Handle] = user
	return nil
}

func (r *memoryRepository) FindByHandle(_ context.Context, handle string) (User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	user, ok := r.users[handle]
	if !ok {
		return User{}, ErrNotFound
	}
	return user, nil
}

func (r *memoryRepository) FindByID(_ context.Context, id string) (User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, user := range r.users {
		if user.ID == id {
			return user, nil
		}
	}
	return User{}, ErrNotFound
}

func (r *memoryRepository) UpdateDevice(_ context.Context, id, deviceID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for handle, user := range r.users {
		if user.ID == id {
			user.DeviceID = deviceID
			r.users[handle] = user
			return nil
		}
	}
	return ErrNotFound
}

func (r *memoryRepository) UpdateTokenVersion(_ context.Context, id string, version int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for handle, user := range r.users {
		if user.ID == id {
			user.TokenVersion = version
			r.users[handle] = user
			return nil
		}
	}
	return ErrNotFound
}
