package driven

import (
	"context"

	"github.com/voacatofe/Supabase-Free-Connector-sub000/internal/core/domain"
)

// SyncRunStore persists the history of sync passes.
type SyncRunStore interface {
	// Save records one finished pass.
	Save(ctx context.Context, run domain.SyncRun) error

	// ListByTable returns the most recent runs for a table, newest first,
	// capped at limit.
	ListByTable(ctx context.Context, table string, limit int) ([]domain.SyncRun, error)
}
