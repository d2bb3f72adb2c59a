package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/voacatofe/Supabase-Free-Connector-sub000/internal/core/domain"
	"github.com/voacatofe/Supabase-Free-Connector-sub000/internal/core/ports/driven"
	"github.com/voacatofe/Supabase-Free-Connector-sub000/internal/core/ports/driving"
	"github.com/voacatofe/Supabase-Free-Connector-sub000/internal/infer"
	"github.com/voacatofe/Supabase-Free-Connector-sub000/internal/logger"
)

// Ensure MappingService implements the driving port.
var _ driving.MappingService = (*MappingService)(nil)

// MappingService builds and edits field mappings for source tables.
// A mapping is built once per table (inferred from the source schema)
// and persisted; later edits load, modify and save the stored set.
type MappingService struct {
	source driven.SourceStore
	store  driven.MappingStore
}

// NewMappingService creates a mapping service backed by the given
// source store (for schema introspection) and mapping store (for
// persistence).
func NewMappingService(source driven.SourceStore, store driven.MappingStore) *MappingService {
	return &MappingService{
		source: source,
		store:  store,
	}
}

// Build returns the mapping for a table, restoring a previously saved
// set when one exists and inferring a fresh one from the source schema
// otherwise. Inferred mappings are persisted before being returned, so
// a build followed by an edit always operates on the same stored set.
func (s *MappingService) Build(ctx context.Context, table string) ([]domain.FieldMapping, error) {
	if strings.TrimSpace(table) == "" {
		return nil, domain.ErrTableRequired
	}
	if s.store == nil || s.source == nil {
		return nil, domain.ErrNotConfigured
	}

	// 1. Restore a saved mapping when present.
	saved, err := s.store.Get(ctx, table)
	if err == nil {
		logger.Debug("Restored %d saved mappings for table %s", len(saved), table)
		return saved, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("load mapping: %w", err)
	}

	// 2. No saved set: infer one from the source schema.
	columns, err := s.source.ListColumns(ctx, table)
	if err != nil {
		return nil, fmt.Errorf("list columns: %w", err)
	}
	if len(columns) == 0 {
		return nil, fmt.Errorf("table %s: %w", table, domain.ErrNotFound)
	}

	mappings := InferMappings(columns)
	logger.Debug("Inferred %d mappings for table %s", len(mappings), table)

	// 3. Persist the inferred set so edits have a stable base.
	if err := s.store.Save(ctx, table, mappings); err != nil {
		return nil, fmt.Errorf("save mapping: %w", err)
	}
	return mappings, nil
}

// Get returns the stored mapping for a table without inferring one.
func (s *MappingService) Get(ctx context.Context, table string) ([]domain.FieldMapping, error) {
	if strings.TrimSpace(table) == "" {
		return nil, domain.ErrTableRequired
	}
	if s.store == nil {
		return nil, domain.ErrNotConfigured
	}
	return s.store.Get(ctx, table)
}

// Validate checks the stored mapping for a table against the rules a
// sync pass enforces: at least one entry, exactly one primary key,
// unique non-empty target fields and no internal field types.
func (s *MappingService) Validate(ctx context.Context, table string) error {
	mappings, err := s.Get(ctx, table)
	if err != nil {
		return err
	}
	return domain.ValidateMappings(mappings)
}

// SetType changes the destination type of one mapping entry.
// Internal types (object, array) are rejected: they exist only as
// transformation targets and are never offered to users.
func (s *MappingService) SetType(ctx context.Context, table, sourceField string, t domain.FieldType) error {
	if !t.IsValid() {
		return fmt.Errorf("type %q: %w", t, domain.ErrUnknownFieldType)
	}
	if t.IsInternal() {
		return fmt.Errorf("type %q: %w", t, domain.ErrInternalFieldType)
	}
	return s.update(ctx, table, sourceField, func(m *domain.FieldMapping) {
		m.Type = t
	})
}

// SetTarget renames the destination field of one mapping entry.
// Collisions with other targets are allowed here and surface later
// through Validate, so users can swap two names in any order.
func (s *MappingService) SetTarget(ctx context.Context, table, sourceField, targetField string) error {
	targetField = strings.TrimSpace(targetField)
	if targetField == "" {
		return domain.ErrEmptyTargetField
	}
	return s.update(ctx, table, sourceField, func(m *domain.FieldMapping) {
		m.TargetField = targetField
	})
}

// SetPrimaryKey marks one entry as the primary key and clears the
// flag from every other entry, keeping the set at exactly one key.
func (s *MappingService) SetPrimaryKey(ctx context.Context, table, sourceField string) error {
	if strings.TrimSpace(table) == "" {
		return domain.ErrTableRequired
	}
	if s.store == nil {
		return domain.ErrNotConfigured
	}

	mappings, err := s.store.Get(ctx, table)
	if err != nil {
		return err
	}

	found := false
	for i := range mappings {
		if mappings[i].SourceField == sourceField {
			mappings[i].PrimaryKey = true
			found = true
		} else {
			mappings[i].PrimaryKey = false
		}
	}
	if !found {
		return fmt.Errorf("field %s: %w", sourceField, domain.ErrNotFound)
	}
	return s.store.Save(ctx, table, mappings)
}

// Remove drops one entry from the mapping. Removing the last entry is
// allowed; the resulting empty set fails validation at sync time.
func (s *MappingService) Remove(ctx context.Context, table, sourceField string) error {
	if strings.TrimSpace(table) == "" {
		return domain.ErrTableRequired
	}
	if s.store == nil {
		return domain.ErrNotConfigured
	}

	mappings, err := s.store.Get(ctx, table)
	if err != nil {
		return err
	}

	kept := mappings[:0]
	found := false
	for _, m := range mappings {
		if m.SourceField == sourceField {
			found = true
			continue
		}
		kept = append(kept, m)
	}
	if !found {
		return fmt.Errorf("field %s: %w", sourceField, domain.ErrNotFound)
	}
	return s.store.Save(ctx, table, kept)
}

// Save replaces the stored mapping for a table with the given set,
// used by mapping import. Entries must be structurally sound (known
// public types, non-empty fields, unique targets, at most one key) but
// a missing primary key is tolerated so a set can be imported first
// and keyed afterwards.
func (s *MappingService) Save(ctx context.Context, table string, mappings []domain.FieldMapping) error {
	if strings.TrimSpace(table) == "" {
		return domain.ErrTableRequired
	}
	if s.store == nil {
		return domain.ErrNotConfigured
	}
	if len(mappings) == 0 {
		return domain.ErrEmptyMapping
	}
	if err := checkEditable(mappings); err != nil {
		return err
	}
	return s.store.Save(ctx, table, mappings)
}

// Reset deletes the stored mapping for a table so the next Build
// infers a fresh one. Resetting a table without a mapping is a no-op.
func (s *MappingService) Reset(ctx context.Context, table string) error {
	if strings.TrimSpace(table) == "" {
		return domain.ErrTableRequired
	}
	if s.store == nil {
		return domain.ErrNotConfigured
	}
	if err := s.store.Delete(ctx, table); err != nil && !errors.Is(err, domain.ErrNotFound) {
		return err
	}
	return nil
}

// update loads the mapping for a table, applies fn to the entry with
// the given source field and saves the result.
func (s *MappingService) update(ctx context.Context, table, sourceField string, fn func(*domain.FieldMapping)) error {
	if strings.TrimSpace(table) == "" {
		return domain.ErrTableRequired
	}
	if s.store == nil {
		return domain.ErrNotConfigured
	}

	mappings, err := s.store.Get(ctx, table)
	if err != nil {
		return err
	}
	for i := range mappings {
		if mappings[i].SourceField == sourceField {
			fn(&mappings[i])
			return s.store.Save(ctx, table, mappings)
		}
	}
	return fmt.Errorf("field %s: %w", sourceField, domain.ErrNotFound)
}

// checkEditable verifies the structural rules an imported set must
// already satisfy. Unlike domain.ValidateMappings it does not require
// a primary key to be present.
func checkEditable(mappings []domain.FieldMapping) error {
	err := domain.ValidateMappings(mappings)
	if err != nil && !errors.Is(err, domain.ErrNoPrimaryKey) {
		return err
	}
	return nil
}

// InferMappings derives a default mapping from introspected columns:
// target fields keep the source names, types come from name and
// source-type inference, and the column marked as primary key in the
// source schema (the first one, for composite keys) carries the flag.
func InferMappings(columns []domain.ColumnDescriptor) []domain.FieldMapping {
	mappings := make([]domain.FieldMapping, 0, len(columns))
	keyed := false
	for _, col := range columns {
		m := domain.FieldMapping{
			SourceField: col.Name,
			TargetField: col.Name,
			Type:        infer.Infer(col),
		}
		if col.PrimaryKey && !keyed {
			m.PrimaryKey = true
			keyed = true
		}
		mappings = append(mappings, m)
	}
	return mappings
}
