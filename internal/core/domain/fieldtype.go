package domain

import (
	"fmt"
	"strings"
)

// FieldType identifies one of the canonical destination value types of a
// managed collection. The twelve public types are what a human can choose
// for a field; Object and Array exist only as transient shapes inside the
// transformation pipeline and must never reach a type picker.
type FieldType string

// Public field types.
const (
	// FieldTypeString stores plain text.
	FieldTypeString FieldType = "string"

	// FieldTypeNumber stores numeric values (integer or float).
	FieldTypeNumber FieldType = "number"

	// FieldTypeBoolean stores true/false values.
	FieldTypeBoolean FieldType = "boolean"

	// FieldTypeDate stores ISO-8601 timestamp strings.
	FieldTypeDate FieldType = "date"

	// FieldTypeColor stores hex or rgb() colour values.
	FieldTypeColor FieldType = "color"

	// FieldTypeFormattedText stores HTML fragments.
	FieldTypeFormattedText FieldType = "formattedText"

	// FieldTypeImage stores image references ({url: ...}).
	FieldTypeImage FieldType = "image"

	// FieldTypeFile stores file references ({url: ...}).
	FieldTypeFile FieldType = "file"

	// FieldTypeLink stores URLs, tolerating free text.
	FieldTypeLink FieldType = "link"

	// FieldTypeEnum stores one option out of a fixed set.
	FieldTypeEnum FieldType = "enum"

	// FieldTypeCollectionReference stores the id of one item in a
	// referenced collection.
	FieldTypeCollectionReference FieldType = "collectionReference"

	// FieldTypeMultiCollectionReference stores a list of referenced
	// item ids.
	FieldTypeMultiCollectionReference FieldType = "multiCollectionReference"
)

// Internal field types, used transiently by the transformation pipeline.
const (
	// FieldTypeObject carries a nested object between pipeline stages.
	FieldTypeObject FieldType = "object"

	// FieldTypeArray carries a nested array between pipeline stages.
	FieldTypeArray FieldType = "array"
)

// PickerFieldTypes returns the public field types in display order.
// Internal types are deliberately absent.
func PickerFieldTypes() []FieldType {
	return []FieldType{
		FieldTypeString,
		FieldTypeNumber,
		FieldTypeBoolean,
		FieldTypeDate,
		FieldTypeColor,
		FieldTypeFormattedText,
		FieldTypeImage,
		FieldTypeFile,
		FieldTypeLink,
		FieldTypeEnum,
		FieldTypeCollectionReference,
		FieldTypeMultiCollectionReference,
	}
}

// IsValid returns true if the field type is recognised, internal types
// included.
func (t FieldType) IsValid() bool {
	switch t {
	case FieldTypeString, FieldTypeNumber, FieldTypeBoolean, FieldTypeDate,
		FieldTypeColor, FieldTypeFormattedText, FieldTypeImage, FieldTypeFile,
		FieldTypeLink, FieldTypeEnum, FieldTypeCollectionReference,
		FieldTypeMultiCollectionReference, FieldTypeObject, FieldTypeArray:
		return true
	default:
		return false
	}
}

// IsInternal returns true for the pipeline-only types.
func (t FieldType) IsInternal() bool {
	return t == FieldTypeObject || t == FieldTypeArray
}

// String returns the string representation.
func (t FieldType) String() string {
	return string(t)
}

// Description returns the authoritative, human-readable semantics of the
// type. The consistency checks in the transform package and the CLI type
// listing are both generated from this table so the two can never drift.
func (t FieldType) Description() string {
	switch t {
	case FieldTypeString:
		return "Plain text; dates become ISO-8601 strings, objects are JSON-encoded, everything else is coerced"
	case FieldTypeNumber:
		return "Numeric value; numeric strings are parsed, booleans map to 0/1, dates to epoch milliseconds"
	case FieldTypeBoolean:
		return "True/false; accepts bilingual truthy/falsy words (yes/no, sim/não) and non-zero numbers"
	case FieldTypeDate:
		return "ISO-8601 timestamp string in UTC; parses date strings and epoch-millisecond numbers"
	case FieldTypeColor:
		return "Hex (#RGB or #RRGGBB) or rgb(r,g,b) colour; common English and Portuguese colour names are resolved"
	case FieldTypeFormattedText:
		return "HTML fragment; markup passes through, plain text is wrapped in paragraph tags line by line"
	case FieldTypeImage:
		return "Image reference {url: ...}; URL strings are wrapped, invalid URLs are rejected"
	case FieldTypeFile:
		return "File reference {url: ...}; URL strings are wrapped, invalid URLs are rejected"
	case FieldTypeLink:
		return "URL string; https:// is prepended when the scheme is missing, free text is kept as-is"
	case FieldTypeEnum:
		return "One option out of a fixed set; any primitive is coerced to its string form"
	case FieldTypeCollectionReference:
		return "Id of one item in a referenced collection; objects contribute their id/_id, anything else is stringified"
	case FieldTypeMultiCollectionReference:
		return "List of referenced item ids; arrays are mapped element-wise, scalars become a single-entry list"
	case FieldTypeObject:
		return "Internal: nested object passed between pipeline stages"
	case FieldTypeArray:
		return "Internal: nested array passed between pipeline stages"
	default:
		return "Unknown"
	}
}

// ParseFieldType converts a string into a FieldType.
// Matching is case-insensitive on the canonical names.
func ParseFieldType(s string) (FieldType, error) {
	candidate := FieldType(s)
	if candidate.IsValid() {
		return candidate, nil
	}
	for _, t := range PickerFieldTypes() {
		if strings.EqualFold(s, string(t)) {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFieldType, s)
}
