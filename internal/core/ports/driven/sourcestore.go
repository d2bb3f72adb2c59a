package driven

import (
	"context"

	"github.com/voacatofe/Supabase-Free-Connector-sub000/internal/core/domain"
)

// SourceStore reads schema and data from the relational system of record.
// Each source kind (postgrest, postgres) implements this interface.
type SourceStore interface {
	// Kind returns the source kind identifier (e.g. "postgrest").
	Kind() string

	// Validate checks the source is reachable and credentials work.
	// Makes one lightweight call; nil means ready to sync.
	Validate(ctx context.Context) error

	// ListTables returns the names of the syncable tables.
	ListTables(ctx context.Context) ([]string, error)

	// ListColumns introspects one table's columns.
	ListColumns(ctx context.Context, table string) ([]domain.ColumnDescriptor, error)

	// FetchRows pulls up to limit rows from the table in one snapshot.
	// No pagination happens beyond the limit.
	FetchRows(ctx context.Context, table string, limit int) ([]domain.Row, error)

	// Close releases connections.
	Close() error
}
