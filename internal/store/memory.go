package store

import (
	"errors"
	"sync"

	"github.com/Miguelll86/customer-segmentation/internal/model"
)

// ErrNotFound is returned when no analysis exists under an identifier.
var ErrNotFound = errors.New("analysis not found")

// MemoryStore keeps analysis results in memory for the process lifetime,
// keyed by their opaque identifier. When a capacity is set, inserting past
// it evicts the oldest analyses.
type MemoryStore struct {
	analyses   map[string]*model.Analysis
	order      []string
	maxEntries int
	mu         sync.RWMutex
}

// NewMemoryStore creates a store. maxEntries <= 0 disables eviction.
func NewMemoryStore(maxEntries int) *MemoryStore {
	return &MemoryStore{
		analyses:   make(map[string]*model.Analysis),
		maxEntries: maxEntries,
	}
}

// Put stores an analysis, evicting the oldest entries beyond capacity.
func (s *MemoryStore) Put(a *model.Analysis) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.analyses[a.ID]; !exists {
		s.order = append(s.order, a.ID)
	}
	s.analyses[a.ID] = a

	for s.maxEntries > 0 && len(s.order) > s.maxEntries {
		oldest := s.order[0]
		s.order = s.order[1:]
		delete(s.analyses, oldest)
	}
}

// Get retrieves an analysis by id.
func (s *MemoryStore) Get(id string) (*model.Analysis, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.analyses[id]
	if !ok {
		return nil, ErrNotFound
	}
	return a, nil
}

// Delete removes an analysis; removing an unknown id is a no-op.
func (s *MemoryStore) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.analyses[id]; !ok {
		return
	}
	delete(s.analyses, id)
	for i, v := range s.order {
		if v == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

// Count returns the number of stored analyses.
func (s *MemoryStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.analyses)
}
