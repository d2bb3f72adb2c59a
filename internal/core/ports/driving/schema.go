package driving

import (
	"context"

	"github.com/voacatofe/Supabase-Free-Connector-sub000/internal/core/domain"
)

// SchemaExplorer exposes the source schema to the CLI, with each column
// annotated by its inferred destination type.
type SchemaExplorer interface {
	// Tables lists the syncable source tables.
	Tables(ctx context.Context) ([]string, error)

	// Columns introspects one table and annotates every column.
	Columns(ctx context.Context, table string) ([]AnnotatedColumn, error)
}

// AnnotatedColumn is a source column plus the field type inference chose.
type AnnotatedColumn struct {
	domain.ColumnDescriptor

	// Inferred is the destination type the mapping builder would pick.
	Inferred domain.FieldType
}
