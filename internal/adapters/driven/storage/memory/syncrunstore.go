package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/voacatofe/Supabase-Free-Connector-sub000/internal/core/domain"
	"github.com/voacatofe/Supabase-Free-Connector-sub000/internal/core/ports/driven"
)

// Ensure SyncRunStore implements the interface.
var _ driven.SyncRunStore = (*SyncRunStore)(nil)

// SyncRunStore is an in-memory implementation of driven.SyncRunStore.
type SyncRunStore struct {
	mu   sync.RWMutex
	runs []domain.SyncRun
}

// NewSyncRunStore creates a new in-memory sync run store.
func NewSyncRunStore() *SyncRunStore {
	return &SyncRunStore{}
}

// Save appends a run to history.
func (s *SyncRunStore) Save(_ context.Context, run domain.SyncRun) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.runs = append(s.runs, run)
	return nil
}

// ListByTable returns a table's runs, newest first. limit <= 0 means
// all runs.
func (s *SyncRunStore) ListByTable(_ context.Context, table string, limit int) ([]domain.SyncRun, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []domain.SyncRun
	for _, run := range s.runs {
		if run.Table == table {
			out = append(out, run)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].StartedAt.After(out[j].StartedAt)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
