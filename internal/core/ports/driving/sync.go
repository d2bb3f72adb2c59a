package driving

import (
	"context"
	"time"

	"github.com/voacatofe/Supabase-Free-Connector-sub000/internal/core/domain"
)

// SyncEngine runs sync passes against the destination collection.
//
// The engine does not serialize passes: two concurrent passes over the same
// table are a caller error. Callers must gate invocations per table, using
// Status as the busy signal.
type SyncEngine interface {
	// Run executes one full fetch, transform, reconcile, upsert pass for a
	// table. The outcome is always populated; it never panics.
	Run(ctx context.Context, table string) domain.SyncOutcome

	// DryRun executes the validate, fetch and transform phases and reports
	// what a real pass would submit, without touching the destination.
	DryRun(ctx context.Context, table string) domain.SyncOutcome

	// Status reports whether a pass is currently active for the table.
	Status(table string) SyncStatus
}

// SyncStatus is the current state of sync activity for one table.
type SyncStatus struct {
	// Table identifies the source table.
	Table string

	// Running indicates a pass is currently in progress.
	Running bool

	// StartedAt is the active pass's start time, zero when not running.
	StartedAt time.Time
}
