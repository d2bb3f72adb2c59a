package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent business rule failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrNotConfigured indicates a required store or service was not wired.
	ErrNotConfigured = errors.New("not configured")

	// ErrTableRequired indicates an operation was invoked without a table name.
	ErrTableRequired = errors.New("table name required")

	// Mapping validation errors. All of these are detected before any
	// network call is made.

	// ErrEmptyMapping indicates a sync was attempted with no mapping entries.
	ErrEmptyMapping = errors.New("mapping has no entries")

	// ErrNoPrimaryKey indicates no mapping entry is marked as the primary key.
	ErrNoPrimaryKey = errors.New("mapping has no primary key")

	// ErrMultiplePrimaryKeys indicates more than one entry claims the primary key.
	ErrMultiplePrimaryKeys = errors.New("mapping has multiple primary keys")

	// ErrDuplicateTargetField indicates two entries map to the same target name.
	ErrDuplicateTargetField = errors.New("duplicate target field")

	// ErrEmptyTargetField indicates a mapping entry with a blank target name.
	ErrEmptyTargetField = errors.New("empty target field")

	// ErrInternalFieldType indicates a pipeline-only type was used in a mapping.
	ErrInternalFieldType = errors.New("internal field type not allowed in mapping")

	// ErrUnknownFieldType indicates a type string outside the closed enumeration.
	ErrUnknownFieldType = errors.New("unknown field type")
)

// IsValidationError reports whether err belongs to the mapping validation
// taxonomy. Validation failures abort a sync pass before the fetch phase.
func IsValidationError(err error) bool {
	for _, sentinel := range []error{
		ErrEmptyMapping,
		ErrNoPrimaryKey,
		ErrMultiplePrimaryKeys,
		ErrDuplicateTargetField,
		ErrEmptyTargetField,
		ErrInternalFieldType,
		ErrUnknownFieldType,
		ErrTableRequired,
	} {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}

// ConnectionError indicates the source or destination store was unreachable.
// Fatal to a sync pass; no partial writes happen after one.
type ConnectionError struct {
	// Store names the unreachable side: "source" or "collection".
	Store string

	// Op is the operation that failed (e.g. "fetch rows").
	Op string

	// Err is the underlying transport error.
	Err error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("%s unreachable: %s: %v", e.Store, e.Op, e.Err)
}

func (e *ConnectionError) Unwrap() error { return e.Err }

// IsConnectionError reports whether err is a ConnectionError.
func IsConnectionError(err error) bool {
	var ce *ConnectionError
	return errors.As(err, &ce)
}

// SchemaReconcileError indicates the destination rejected the reconciled
// field definitions. Fatal; aborts the pass before any item is written.
type SchemaReconcileError struct {
	Err error
}

func (e *SchemaReconcileError) Error() string {
	return fmt.Sprintf("schema reconcile rejected: %v", e.Err)
}

func (e *SchemaReconcileError) Unwrap() error { return e.Err }

// UpsertError indicates the destination rejected the item batch. Fatal; the
// engine makes no row-level retry within a failed batch.
type UpsertError struct {
	// Items is the size of the rejected batch.
	Items int

	Err error
}

func (e *UpsertError) Error() string {
	return fmt.Sprintf("upsert of %d items rejected: %v", e.Items, e.Err)
}

func (e *UpsertError) Unwrap() error { return e.Err }
