package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewDefaults_CanonicalValues tests the canonical default per type
func TestNewDefaults_CanonicalValues(t *testing.T) {
	defaults := NewDefaults()

	tests := []struct {
		name      string
		fieldType FieldType
		expected  any
	}{
		{
			name:      "string defaults to empty",
			fieldType: FieldTypeString,
			expected:  "",
		},
		{
			name:      "number defaults to zero",
			fieldType: FieldTypeNumber,
			expected:  float64(0),
		},
		{
			name:      "boolean defaults to false",
			fieldType: FieldTypeBoolean,
			expected:  false,
		},
		{
			name:      "date defaults to nil",
			fieldType: FieldTypeDate,
			expected:  nil,
		},
		{
			name:      "color defaults to black",
			fieldType: FieldTypeColor,
			expected:  "#000000",
		},
		{
			name:      "formatted text defaults to empty",
			fieldType: FieldTypeFormattedText,
			expected:  "",
		},
		{
			name:      "image defaults to nil",
			fieldType: FieldTypeImage,
			expected:  nil,
		},
		{
			name:      "file defaults to nil",
			fieldType: FieldTypeFile,
			expected:  nil,
		},
		{
			name:      "link defaults to empty",
			fieldType: FieldTypeLink,
			expected:  "",
		},
		{
			name:      "enum defaults to empty",
			fieldType: FieldTypeEnum,
			expected:  "",
		},
		{
			name:      "collection reference defaults to nil",
			fieldType: FieldTypeCollectionReference,
			expected:  nil,
		},
		{
			name:      "multi reference defaults to empty list",
			fieldType: FieldTypeMultiCollectionReference,
			expected:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, defaults.Value(tt.fieldType))
		})
	}
}

// TestNewDefaults_CoversEveryType tests the table has an entry per valid type
func TestNewDefaults_CoversEveryType(t *testing.T) {
	defaults := NewDefaults()

	all := append(PickerFieldTypes(), FieldTypeObject, FieldTypeArray)
	require.Len(t, defaults, len(all))
	for _, ft := range all {
		_, ok := defaults[ft]
		assert.True(t, ok, "missing default for %q", ft)
	}
}

// TestDefaults_Value_UnknownType tests unknown types yield nil
func TestDefaults_Value_UnknownType(t *testing.T) {
	defaults := NewDefaults()
	assert.Nil(t, defaults.Value(FieldType("bogus")))
}

// TestDefaults_With_CopyOnWrite tests With never mutates the receiver
func TestDefaults_With_CopyOnWrite(t *testing.T) {
	original := NewDefaults()
	modified := original.With(FieldTypeColor, "#FFFFFF")

	assert.Equal(t, "#FFFFFF", modified.Value(FieldTypeColor))
	assert.Equal(t, "#000000", original.Value(FieldTypeColor))

	// Unrelated entries carry over.
	assert.Equal(t, float64(0), modified.Value(FieldTypeNumber))
}
