// Package domain defines the core business entities for Supasync.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - FieldType: A destination field type with its value contract
//   - FieldMapping: One source column bound to one destination field
//   - ColumnDescriptor: An introspected source column
//   - SyncItem: A record shaped for the destination collection
//   - SyncOutcome: The result of one sync pass
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
