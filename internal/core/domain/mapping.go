package domain

import "fmt"

// FieldMapping declares where one source column lands in the destination
// collection. A mapping set is built once per table (restored from storage
// or inferred) and may be edited by the caller before a sync pass; it is
// re-validated at sync time.
type FieldMapping struct {
	// SourceField is the source column name.
	SourceField string

	// TargetField is the destination field name. Must be unique within a
	// mapping set.
	TargetField string

	// Type is the destination field type values are converted to.
	Type FieldType

	// PrimaryKey marks the entry whose value derives each item's stable id.
	// Exactly one entry per mapping set must carry it before a sync pass.
	PrimaryKey bool
}

// ValidateMappings checks a mapping set against the rules a sync pass
// requires: at least one entry, unique non-empty target names, public field
// types only, and exactly one primary key. Violations are never
// auto-resolved; the caller fixes the set and retries.
func ValidateMappings(mappings []FieldMapping) error {
	if len(mappings) == 0 {
		return ErrEmptyMapping
	}

	seen := make(map[string]struct{}, len(mappings))
	keys := 0
	for _, m := range mappings {
		if m.TargetField == "" {
			return fmt.Errorf("%w: source column %q", ErrEmptyTargetField, m.SourceField)
		}
		if !m.Type.IsValid() {
			return fmt.Errorf("%w: %q on %q", ErrUnknownFieldType, m.Type, m.SourceField)
		}
		if m.Type.IsInternal() {
			return fmt.Errorf("%w: %q on %q", ErrInternalFieldType, m.Type, m.SourceField)
		}
		if _, dup := seen[m.TargetField]; dup {
			return fmt.Errorf("%w: %q", ErrDuplicateTargetField, m.TargetField)
		}
		seen[m.TargetField] = struct{}{}
		if m.PrimaryKey {
			keys++
		}
	}

	switch {
	case keys == 0:
		return ErrNoPrimaryKey
	case keys > 1:
		return ErrMultiplePrimaryKeys
	}
	return nil
}

// PrimaryKeyMapping returns the entry marked as primary key, or nil when
// none is marked.
func PrimaryKeyMapping(mappings []FieldMapping) *FieldMapping {
	for i := range mappings {
		if mappings[i].PrimaryKey {
			return &mappings[i]
		}
	}
	return nil
}
