package user

import (
	"context"
	"sync"

	"classroom/internal/auth/models"
)

// InMemoryStore keeps users in a map keyed by email. It backs unit tests
// and secret-less local runs; PostgreSQL is the production store.
type InMemoryStore struct {
	mu    sync.RWMutex
	users map[string]models.User
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{users: make(map[string]models.User)}
}

func (s *InMemoryStore) Create(_ context.Context, u models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.users[u.Email]; exists {
		return ErrDuplicateEmail
	}
	s.users[u.Email] = u
	return nil
}

func (s *InMemoryStore) FindByEmail(_ context.Context, email string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if u, ok := s.users[email]; ok {
		return u, nil
	}
	return models.User{}, ErrNotFound
}
