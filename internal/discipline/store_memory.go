package discipline

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
)

// InMemoryStore keeps disciplines in a map. It backs handler tests and local
// runs without a database.
type InMemoryStore struct {
	mu          sync.RWMutex
	disciplines map[uuid.UUID]Discipline
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{disciplines: make(map[uuid.UUID]Discipline)}
}

func (s *InMemoryStore) Create(_ context.Context, d Discipline) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.disciplines[d.ID] = d
	return nil
}

func (s *InMemoryStore) Get(_ context.Context, id uuid.UUID) (Discipline, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	d, ok := s.disciplines[id]
	if !ok {
		return Discipline{}, ErrNotFound
	}
	return d, nil
}

func (s *InMemoryStore) List(_ context.Context) ([]Discipline, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Discipline, 0, len(s.disciplines))
	for _, d := range s.disciplines {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *InMemoryStore) Update(_ context.Context, id uuid.UUID, in DisciplineIn) (Discipline, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.disciplines[id]
	if !ok {
		return Discipline{}, ErrNotFound
	}
	d.Name = in.Name
	s.disciplines[id] = d
	return d, nil
}

func (s *InMemoryStore) Delete(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.disciplines[id]; !ok {
		return ErrNotFound
	}
	delete(s.disciplines, id)
	return nil
}
