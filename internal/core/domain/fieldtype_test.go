package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFieldType_Constants tests all public field type constants
func TestFieldType_Constants(t *testing.T) {
	tests := []struct {
		name      string
		fieldType FieldType
		expected  string
	}{
		{
			name:      "string type",
			fieldType: FieldTypeString,
			expected:  "string",
		},
		{
			name:      "number type",
			fieldType: FieldTypeNumber,
			expected:  "number",
		},
		{
			name:      "boolean type",
			fieldType: FieldTypeBoolean,
			expected:  "boolean",
		},
		{
			name:      "date type",
			fieldType: FieldTypeDate,
			expected:  "date",
		},
		{
			name:      "color type",
			fieldType: FieldTypeColor,
			expected:  "color",
		},
		{
			name:      "formatted text type",
			fieldType: FieldTypeFormattedText,
			expected:  "formattedText",
		},
		{
			name:      "image type",
			fieldType: FieldTypeImage,
			expected:  "image",
		},
		{
			name:      "file type",
			fieldType: FieldTypeFile,
			expected:  "file",
		},
		{
			name:      "link type",
			fieldType: FieldTypeLink,
			expected:  "link",
		},
		{
			name:      "enum type",
			fieldType: FieldTypeEnum,
			expected:  "enum",
		},
		{
			name:      "collection reference type",
			fieldType: FieldTypeCollectionReference,
			expected:  "collectionReference",
		},
		{
			name:      "multi collection reference type",
			fieldType: FieldTypeMultiCollectionReference,
			expected:  "multiCollectionReference",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, string(tt.fieldType))
			assert.Equal(t, tt.expected, tt.fieldType.String())
		})
	}
}

// TestFieldType_InternalConstants tests the pipeline-only type constants
func TestFieldType_InternalConstants(t *testing.T) {
	assert.Equal(t, "object", string(FieldTypeObject))
	assert.Equal(t, "array", string(FieldTypeArray))
}

// TestPickerFieldTypes_Contents tests the picker list holds exactly the
// twelve public types in display order
func TestPickerFieldTypes_Contents(t *testing.T) {
	picker := PickerFieldTypes()

	require.Len(t, picker, 12)
	assert.Equal(t, FieldTypeString, picker[0])
	assert.Equal(t, FieldTypeMultiCollectionReference, picker[11])
	assert.NotContains(t, picker, FieldTypeObject)
	assert.NotContains(t, picker, FieldTypeArray)
}

// TestPickerFieldTypes_AllValid tests every picker entry is valid and public
func TestPickerFieldTypes_AllValid(t *testing.T) {
	for _, ft := range PickerFieldTypes() {
		assert.True(t, ft.IsValid(), "picker type %q should be valid", ft)
		assert.False(t, ft.IsInternal(), "picker type %q should not be internal", ft)
	}
}

// TestFieldType_IsValid tests validity across public, internal and bogus values
func TestFieldType_IsValid(t *testing.T) {
	tests := []struct {
		name      string
		fieldType FieldType
		valid     bool
	}{
		{
			name:      "public type is valid",
			fieldType: FieldTypeNumber,
			valid:     true,
		},
		{
			name:      "internal object type is valid",
			fieldType: FieldTypeObject,
			valid:     true,
		},
		{
			name:      "internal array type is valid",
			fieldType: FieldTypeArray,
			valid:     true,
		},
		{
			name:      "empty string is invalid",
			fieldType: FieldType(""),
			valid:     false,
		},
		{
			name:      "unknown name is invalid",
			fieldType: FieldType("varchar"),
			valid:     false,
		},
		{
			name:      "wrong case is invalid",
			fieldType: FieldType("String"),
			valid:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, tt.fieldType.IsValid())
		})
	}
}

// TestFieldType_IsInternal tests internal classification
func TestFieldType_IsInternal(t *testing.T) {
	assert.True(t, FieldTypeObject.IsInternal())
	assert.True(t, FieldTypeArray.IsInternal())

	for _, ft := range PickerFieldTypes() {
		assert.False(t, ft.IsInternal())
	}
}

// TestFieldType_Description tests every valid type carries a description
func TestFieldType_Description(t *testing.T) {
	all := append(PickerFieldTypes(), FieldTypeObject, FieldTypeArray)
	for _, ft := range all {
		desc := ft.Description()
		assert.NotEmpty(t, desc)
		assert.NotEqual(t, "Unknown", desc, "type %q should have a real description", ft)
	}

	assert.Equal(t, "Unknown", FieldType("bogus").Description())
}

// TestParseFieldType_Canonical tests parsing canonical type names
func TestParseFieldType_Canonical(t *testing.T) {
	for _, ft := range PickerFieldTypes() {
		parsed, err := ParseFieldType(string(ft))
		require.NoError(t, err)
		assert.Equal(t, ft, parsed)
	}
}

// TestParseFieldType_CaseInsensitive tests parsing tolerates case variants
func TestParseFieldType_CaseInsensitive(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected FieldType
	}{
		{
			name:     "upper case simple name",
			input:    "STRING",
			expected: FieldTypeString,
		},
		{
			name:     "mixed case simple name",
			input:    "Number",
			expected: FieldTypeNumber,
		},
		{
			name:     "lower case camel name",
			input:    "formattedtext",
			expected: FieldTypeFormattedText,
		},
		{
			name:     "mixed case reference name",
			input:    "collectionreference",
			expected: FieldTypeCollectionReference,
		},
		{
			name:     "upper case multi reference name",
			input:    "MULTICOLLECTIONREFERENCE",
			expected: FieldTypeMultiCollectionReference,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed, err := ParseFieldType(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, parsed)
		})
	}
}

// TestParseFieldType_Unknown tests unknown names are rejected
func TestParseFieldType_Unknown(t *testing.T) {
	_, err := ParseFieldType("varchar")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownFieldType)

	_, err = ParseFieldType("")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownFieldType)
}

// TestParseFieldType_InternalExact tests internal types parse only when exact
func TestParseFieldType_InternalExact(t *testing.T) {
	parsed, err := ParseFieldType("object")
	require.NoError(t, err)
	assert.Equal(t, FieldTypeObject, parsed)

	// Case folding only applies to picker types.
	_, err = ParseFieldType("OBJECT")
	assert.Error(t, err)
}
