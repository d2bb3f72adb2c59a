package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/voacatofe/Supabase-Free-Connector-sub000/internal/core/domain"
	"github.com/voacatofe/Supabase-Free-Connector-sub000/internal/core/ports/driven"
)

// Ensure CollectionStore implements the interface.
var _ driven.CollectionStore = (*CollectionStore)(nil)

// CollectionStore is an in-memory implementation of
// driven.CollectionStore with real upsert-by-id semantics, so tests
// can assert what a pass would have written.
type CollectionStore struct {
	mu     sync.RWMutex
	fields []domain.DestinationField
	items  map[string]domain.SyncItem
}

// NewCollectionStore creates a new in-memory collection store.
func NewCollectionStore() *CollectionStore {
	return &CollectionStore{
		items: make(map[string]domain.SyncItem),
	}
}

// GetFields returns the current field definitions.
func (s *CollectionStore) GetFields(_ context.Context) ([]domain.DestinationField, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.DestinationField(nil), s.fields...), nil
}

// SetFields replaces the field definitions.
func (s *CollectionStore) SetFields(_ context.Context, fields []domain.DestinationField) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fields = append([]domain.DestinationField(nil), fields...)
	return nil
}

// UpsertItems inserts or replaces items keyed by id.
func (s *CollectionStore) UpsertItems(_ context.Context, items []domain.SyncItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, item := range items {
		s.items[item.ID] = item
	}
	return nil
}

// Items returns all stored items sorted by id, for assertions.
func (s *CollectionStore) Items() []domain.SyncItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.SyncItem, 0, len(s.items))
	for _, item := range s.items {
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Len returns the number of stored items.
func (s *CollectionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}
