package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/voacatofe/Supabase-Free-Connector-sub000/internal/core/domain"
	"github.com/voacatofe/Supabase-Free-Connector-sub000/internal/core/ports/driven"
	"github.com/voacatofe/Supabase-Free-Connector-sub000/internal/core/ports/driving"
	"github.com/voacatofe/Supabase-Free-Connector-sub000/internal/infer"
)

// Ensure SchemaService implements the driving port.
var _ driving.SchemaExplorer = (*SchemaService)(nil)

// SchemaService exposes the source schema for discovery: table listing
// and column inspection annotated with the destination type each
// column would map to.
type SchemaService struct {
	source driven.SourceStore
}

// NewSchemaService creates a schema explorer over the given source.
func NewSchemaService(source driven.SourceStore) *SchemaService {
	return &SchemaService{source: source}
}

// Tables lists the syncable tables of the source.
func (s *SchemaService) Tables(ctx context.Context) ([]string, error) {
	if s.source == nil {
		return nil, domain.ErrNotConfigured
	}
	tables, err := s.source.ListTables(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tables: %w", err)
	}
	return tables, nil
}

// Columns describes the columns of one table, each annotated with the
// field type the mapping builder would infer for it.
func (s *SchemaService) Columns(ctx context.Context, table string) ([]driving.AnnotatedColumn, error) {
	if strings.TrimSpace(table) == "" {
		return nil, domain.ErrTableRequired
	}
	if s.source == nil {
		return nil, domain.ErrNotConfigured
	}

	columns, err := s.source.ListColumns(ctx, table)
	if err != nil {
		return nil, fmt.Errorf("list columns: %w", err)
	}

	annotated := make([]driving.AnnotatedColumn, 0, len(columns))
	for _, col := range columns {
		annotated = append(annotated, driving.AnnotatedColumn{
			ColumnDescriptor: col,
			Inferred:         infer.Infer(col),
		})
	}
	return annotated, nil
}
