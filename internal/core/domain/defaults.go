package domain

// Defaults maps every field type to the canonical value a failed or absent
// conversion must produce. Transformers are handed a Defaults table at
// construction instead of reading a package variable, so tests can
// substitute entries without touching global state.
//
// The table is copy-on-write: With returns a modified copy and the zero
// methods never mutate the receiver, so a Defaults value can be shared
// freely once built.
type Defaults map[FieldType]any

// NewDefaults returns the canonical default-value table.
//
// Types whose natural absence differs from the generic empty value carry
// nil (date, image, file, collectionReference); list-shaped types carry an
// empty list.
func NewDefaults() Defaults {
	return Defaults{
		FieldTypeString:                   "",
		FieldTypeNumber:                   float64(0),
		FieldTypeBoolean:                  false,
		FieldTypeDate:                     nil,
		FieldTypeColor:                    "#000000",
		FieldTypeFormattedText:            "",
		FieldTypeImage:                    nil,
		FieldTypeFile:                     nil,
		FieldTypeLink:                     "",
		FieldTypeEnum:                     "",
		FieldTypeCollectionReference:      nil,
		FieldTypeMultiCollectionReference: []string{},
		FieldTypeObject:                   nil,
		FieldTypeArray:                    []any{},
	}
}

// Value returns the default for a type. Unknown types yield nil.
func (d Defaults) Value(t FieldType) any {
	return d[t]
}

// With returns a copy of the table with one entry replaced.
func (d Defaults) With(t FieldType, value any) Defaults {
	out := make(Defaults, len(d))
	for k, v := range d {
		out[k] = v
	}
	out[t] = value
	return out
}
