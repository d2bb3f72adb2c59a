package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/voacatofe/Supabase-Free-Connector-sub000/internal/core/domain"
	"github.com/voacatofe/Supabase-Free-Connector-sub000/internal/core/ports/driven"
)

// Ensure MappingStore implements the interface.
var _ driven.MappingStore = (*MappingStore)(nil)

// MappingStore is an in-memory implementation of driven.MappingStore.
type MappingStore struct {
	mu   sync.RWMutex
	sets map[string][]domain.FieldMapping
}

// NewMappingStore creates a new in-memory mapping store.
func NewMappingStore() *MappingStore {
	return &MappingStore{
		sets: make(map[string][]domain.FieldMapping),
	}
}

// Save stores or replaces the mapping set for a table.
func (s *MappingStore) Save(_ context.Context, table string, mappings []domain.FieldMapping) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sets[table] = append([]domain.FieldMapping(nil), mappings...)
	return nil
}

// Get retrieves the mapping set for a table.
func (s *MappingStore) Get(_ context.Context, table string) ([]domain.FieldMapping, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	set, ok := s.sets[table]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return append([]domain.FieldMapping(nil), set...), nil
}

// Delete removes the mapping set for a table.
func (s *MappingStore) Delete(_ context.Context, table string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sets[table]; !ok {
		return domain.ErrNotFound
	}
	delete(s.sets, table)
	return nil
}

// Tables returns the tables with a stored mapping, sorted.
func (s *MappingStore) Tables(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	tables := make([]string, 0, len(s.sets))
	for table := range s.sets {
		tables = append(tables, table)
	}
	sort.Strings(tables)
	return tables, nil
}
