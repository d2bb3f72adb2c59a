package driving

import (
	"context"

	"github.com/voacatofe/Supabase-Free-Connector-sub000/internal/core/domain"
)

// MappingService builds and edits the field mapping of a table.
// Every mutation persists immediately through the mapping store.
type MappingService interface {
	// Build returns the table's mapping: the persisted set verbatim when
	// one exists, otherwise a freshly inferred set (target = source name,
	// primary key pre-marked when introspection identifies one) which is
	// persisted before returning.
	Build(ctx context.Context, table string) ([]domain.FieldMapping, error)

	// Get returns the persisted mapping set.
	// Returns domain.ErrNotFound when none was saved.
	Get(ctx context.Context, table string) ([]domain.FieldMapping, error)

	// Validate re-checks the persisted set against the sync-time rules.
	Validate(ctx context.Context, table string) error

	// SetType changes the destination type of one entry.
	SetType(ctx context.Context, table, sourceField string, t domain.FieldType) error

	// SetTarget renames the destination field of one entry.
	SetTarget(ctx context.Context, table, sourceField, targetField string) error

	// SetPrimaryKey marks one entry as the primary key and clears the mark
	// from every other entry.
	SetPrimaryKey(ctx context.Context, table, sourceField string) error

	// Remove drops one entry from the set.
	Remove(ctx context.Context, table, sourceField string) error

	// Save replaces the whole persisted set (used by mapping import).
	Save(ctx context.Context, table string, mappings []domain.FieldMapping) error

	// Reset deletes the persisted set so the next Build re-infers it.
	Reset(ctx context.Context, table string) error
}
