// Package memory provides in-memory implementations of the driven
// storage ports. Used by tests and as throwaway backing when no state
// database is configured.
package memory
