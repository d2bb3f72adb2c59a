package driven

import (
	"context"

	"github.com/voacatofe/Supabase-Free-Connector-sub000/internal/core/domain"
)

// CollectionStore reads and writes the destination managed collection.
// The store owns upsert semantics: items are keyed by their ID and the
// engine performs no read-before-write diffing.
type CollectionStore interface {
	// GetFields returns the collection's current field descriptors.
	GetFields(ctx context.Context) ([]domain.DestinationField, error)

	// SetFields replaces the collection's field descriptors.
	SetFields(ctx context.Context, fields []domain.DestinationField) error

	// UpsertItems submits one batch of items. Existing items with matching
	// IDs are updated, unseen IDs are created.
	UpsertItems(ctx context.Context, items []domain.SyncItem) error
}
