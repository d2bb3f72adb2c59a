package domain

import "strings"

// DestinationField describes one field of the destination collection's
// schema. Fields are reconciled by Name each pass: an existing field keeps
// its descriptor (including its type) even when inference would now choose
// differently.
type DestinationField struct {
	// ID is deterministically derived from Name; see FieldID.
	ID string

	// Name is the human-visible field name (the mapping's target field).
	Name string

	// Type is the field's value type.
	Type FieldType
}

// SyncItem is one record as submitted to the destination collection. Items
// are constructed fresh each pass; the destination store owns upsert
// semantics keyed by ID.
type SyncItem struct {
	// ID is the stringified primary-key value, or an opaque random token
	// when the key value was absent.
	ID string

	// Slug is a URL-safe derivation of a title-like field, or of ID.
	Slug string

	// FieldData maps destination field ids to converted values.
	FieldData map[string]any
}

// FieldID derives the deterministic field identifier from a field name:
// lowercase, with every run of non-alphanumeric characters collapsed to a
// single underscore. The derivation is stable so the same name always
// reconciles to the same field.
func FieldID(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	pendingSep := false
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			if pendingSep && b.Len() > 0 {
				b.WriteByte('_')
			}
			pendingSep = false
			b.WriteRune(r)
		default:
			pendingSep = true
		}
	}
	if b.Len() == 0 {
		return "field"
	}
	return b.String()
}
