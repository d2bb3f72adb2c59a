package domain

// ColumnDescriptor describes one column of a source table as reported by
// introspection. Immutable once produced; consumed by type inference and
// the mapping builder.
type ColumnDescriptor struct {
	// Name is the column name as it appears in the source.
	Name string

	// SourceType is the raw type name the source reports (e.g. "int4",
	// "text", "timestamp with time zone").
	SourceType string

	// Nullable indicates whether the column admits NULL values.
	Nullable bool

	// PrimaryKey indicates the source marks this column as (part of) the
	// table's primary key. Used to pre-select the sync key when building
	// a mapping.
	PrimaryKey bool
}

// Row is one source record: column name to raw value. Values are whatever
// the source adapter produced (JSON-decoded or driver-scanned scalars,
// slices and maps); the transformation pipeline owns making sense of them.
type Row = map[string]any
