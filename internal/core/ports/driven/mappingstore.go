package driven

import (
	"context"

	"github.com/voacatofe/Supabase-Free-Connector-sub000/internal/core/domain"
)

// MappingStore persists field mappings between sessions, keyed per table.
type MappingStore interface {
	// Save stores or replaces the mapping set for a table.
	Save(ctx context.Context, table string, mappings []domain.FieldMapping) error

	// Get retrieves the mapping set for a table.
	// Returns domain.ErrNotFound when none was saved.
	Get(ctx context.Context, table string) ([]domain.FieldMapping, error)

	// Delete removes the mapping set for a table.
	Delete(ctx context.Context, table string) error

	// Tables lists the tables that have a saved mapping.
	Tables(ctx context.Context) ([]string, error)
}
