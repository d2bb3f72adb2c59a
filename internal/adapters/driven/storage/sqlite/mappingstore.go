package sqlite

import (
	"context"
	"fmt"

	"github.com/voacatofe/Supabase-Free-Connector-sub000/internal/core/domain"
	"github.com/voacatofe/Supabase-Free-Connector-sub000/internal/core/ports/driven"
)

// mappingStore implements driven.MappingStore.
type mappingStore struct {
	store *Store
}

var _ driven.MappingStore = (*mappingStore)(nil)

// Save stores or replaces the mapping set for a table. The whole set is
// rewritten in one transaction so a partial write never survives.
func (s *mappingStore) Save(ctx context.Context, table string, mappings []domain.FieldMapping) error {
	tx, err := s.store.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	if _, err := tx.ExecContext(ctx, "DELETE FROM mappings WHERE table_name = ?", table); err != nil {
		return fmt.Errorf("clearing mappings: %w", err)
	}

	for i, m := range mappings {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO mappings (table_name, source_field, target_field, field_type, is_primary_key, position)
			VALUES (?, ?, ?, ?, ?, ?)
		`, table, m.SourceField, m.TargetField, string(m.Type), boolToInt(m.PrimaryKey), i)
		if err != nil {
			return fmt.Errorf("saving mapping %s: %w", m.SourceField, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing mappings: %w", err)
	}
	return nil
}

// Get retrieves the mapping set for a table in the order it was saved.
func (s *mappingStore) Get(ctx context.Context, table string) ([]domain.FieldMapping, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT source_field, target_field, field_type, is_primary_key
		FROM mappings
		WHERE table_name = ?
		ORDER BY position
	`, table)
	if err != nil {
		return nil, fmt.Errorf("querying mappings: %w", err)
	}
	defer rows.Close()

	var mappings []domain.FieldMapping //nolint:prealloc // size unknown from query
	for rows.Next() {
		var m domain.FieldMapping
		var fieldType string
		var primaryKey int
		if err := rows.Scan(&m.SourceField, &m.TargetField, &fieldType, &primaryKey); err != nil {
			return nil, fmt.Errorf("scanning mapping: %w", err)
		}
		m.Type = domain.FieldType(fieldType)
		m.PrimaryKey = primaryKey == 1
		mappings = append(mappings, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating mappings: %w", err)
	}

	if len(mappings) == 0 {
		return nil, domain.ErrNotFound
	}
	return mappings, nil
}

// Delete removes the mapping set for a table.
func (s *mappingStore) Delete(ctx context.Context, table string) error {
	result, err := s.store.db.ExecContext(ctx, "DELETE FROM mappings WHERE table_name = ?", table)
	if err != nil {
		return fmt.Errorf("deleting mappings: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting mappings: %w", err)
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Tables lists the tables that have a saved mapping.
func (s *mappingStore) Tables(ctx context.Context) ([]string, error) {
	rows, err := s.store.db.QueryContext(ctx, "SELECT DISTINCT table_name FROM mappings ORDER BY table_name")
	if err != nil {
		return nil, fmt.Errorf("querying mapped tables: %w", err)
	}
	defer rows.Close()

	var tables []string //nolint:prealloc // size unknown from query
	for rows.Next() {
		var table string
		if err := rows.Scan(&table); err != nil {
			return nil, fmt.Errorf("scanning table name: %w", err)
		}
		tables = append(tables, table)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating mapped tables: %w", err)
	}
	return tables, nil
}
