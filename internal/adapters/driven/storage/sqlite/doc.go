// Package sqlite provides a unified SQLite-based implementation of the
// persistence ports: saved field mappings and sync run history.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation
// that requires no CGO, enabling easy cross-compilation. It exposes the
// MappingStore and SyncRunStore interfaces through wrapper views over a
// single database connection.
//
// # Schema
//
// The database schema is managed through versioned migrations stored in
// the migrations/ directory.
//
// # Data Location
//
// By default, the database is stored at ~/.supasync/data/state.db
//
// # Thread Safety
//
// All operations are thread-safe. The store uses database-level locking
// provided by SQLite in WAL mode.
package sqlite
