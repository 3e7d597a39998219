package course

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
)

// InMemoryStore keeps courses in a map. It backs handler tests and local runs
// without a database.
type InMemoryStore struct {
	mu      sync.RWMutex
	courses map[uuid.UUID]Course
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{courses: make(map[uuid.UUID]Course)}
}

func (s *InMemoryStore) Create(_ context.Context, c Course) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.courses[c.ID] = c
	return nil
}

func (s *InMemoryStore) Get(_ context.Context, id uuid.UUID) (Course, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.courses[id]
	if !ok {
		return Course{}, ErrNotFound
	}
	return c, nil
}

func (s *InMemoryStore) List(_ context.Context) ([]Course, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Course, 0, len(s.courses))
	for _, c := range s.courses {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (s *InMemoryStore) Update(_ context.Context, id uuid.UUID, in CourseIn) (Course, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.courses[id]
	if !ok {
		return Course{}, ErrNotFound
	}
	c.DisciplineID = in.DisciplineID
	c.OwnerID = in.OwnerID
	c.Name = in.Name
	s.courses[id] = c
	return c, nil
}

func (s *InMemoryStore) Delete(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.courses[id]; !ok {
		return ErrNotFound
	}
	delete(s.courses, id)
	return nil
}
